package smsgateway

import (
	"context"
	"fmt"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics интерфейс счетчика отправок (реализуется pkg/metrics через адаптер)
type Metrics interface {
	ObserveSend(provider string, success bool)
}

// defaultRetryDelays задержки между повторами отправки через основного провайдера
var defaultRetryDelays = []time.Duration{
	1 * time.Second,
	5 * time.Second,
	30 * time.Second,
}

// FailoverSender отправитель SMS с резервным провайдером
// Схема: ограниченное число повторов с нарастающей задержкой против основного провайдера,
// затем ровно одна попытка через резервного. Полный отказ - мягкая ошибка
type FailoverSender struct {
	primary     Provider
	secondary   Provider // может быть nil
	retryDelays []time.Duration
	metrics     Metrics // может быть nil
	log         Logger
}

// NewFailoverSender создает отправителя с failover-схемой
func NewFailoverSender(primary, secondary Provider, metrics Metrics, log Logger) *FailoverSender {
	return &FailoverSender{
		primary:     primary,
		secondary:   secondary,
		retryDelays: defaultRetryDelays,
		metrics:     metrics,
		log:         log,
	}
}

// Send отправляет сообщение с повторами и failover
// Возвращает ErrAllProvidersFailed, только если не сработал никто
func (s *FailoverSender) Send(ctx context.Context, msg Message) error {
	var lastErr error

	// Основной провайдер: первая попытка + повторы по расписанию задержек
	for attempt := 0; attempt <= len(s.retryDelays); attempt++ {
		if attempt > 0 {
			delay := s.retryDelays[attempt-1]
			s.log.Warn("SMS: retrying via %s in %s (attempt %d/%d): %v",
				s.primary.Name(), delay, attempt+1, len(s.retryDelays)+1, lastErr)

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return fmt.Errorf("%w: context cancelled: %v", ErrAllProvidersFailed, ctx.Err())
			}
		}

		lastErr = s.primary.Send(ctx, msg)
		s.observe(s.primary.Name(), lastErr == nil)
		if lastErr == nil {
			return nil
		}
	}

	s.log.Error("SMS: primary provider %s exhausted all attempts: %v", s.primary.Name(), lastErr)

	// Резервный провайдер: одна попытка без повторов
	if s.secondary != nil {
		err := s.secondary.Send(ctx, msg)
		s.observe(s.secondary.Name(), err == nil)
		if err == nil {
			s.log.Info("SMS: delivered via secondary provider %s", s.secondary.Name())
			return nil
		}
		s.log.Error("SMS: secondary provider %s failed: %v", s.secondary.Name(), err)
		lastErr = err
	}

	return fmt.Errorf("%w: last error: %v", ErrAllProvidersFailed, lastErr)
}

func (s *FailoverSender) observe(provider string, success bool) {
	if s.metrics != nil {
		s.metrics.ObserveSend(provider, success)
	}
}

package smsgateway

import "errors"

var (
	// ErrSendFailed возвращается при неудачной отправке через конкретного провайдера
	ErrSendFailed = errors.New("smsgateway: send failed")

	// ErrAllProvidersFailed возвращается, когда не сработали ни основной, ни резервный провайдер
	// Вызывающая сторона трактует это как мягкую ошибку (логирует, но не роняет запрос)
	ErrAllProvidersFailed = errors.New("smsgateway: all providers failed")
)

package smsgateway

// Message SMS сообщение
type Message struct {
	Phone string // номер получателя в формате E.164
	Text  string
}

// sendRequest тело запроса к API провайдера
type sendRequest struct {
	Phone  string `json:"phone"`
	Text   string `json:"text"`
	Sender string `json:"sender"`
}

// sendResponse ответ API провайдера
type sendResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

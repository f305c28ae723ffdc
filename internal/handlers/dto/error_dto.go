package dto

import "encoding/xml"

// ErrorWrapper é o payload de erro devolvido ao cliente.
// HTTPStatusCode 0 significa "não definido".
type ErrorWrapper interface {
	HTTPStatusCode() int
	SetHTTPStatusCode(status int)
	Messages() []ErrorMessageWrapper
	AddMessage(msg ErrorMessageWrapper)
}

// ErrorMessageWrapper é uma mensagem localizada dentro do payload de erro
type ErrorMessageWrapper interface {
	MessageKey() string
	SetMessageKey(key string)
	Message() string
	SetMessage(msg string)
}

// WrapperFactory cria instâncias vazias dos payloads de erro.
// Permite trocar o formato do payload sem alterar o mapper.
type WrapperFactory interface {
	NewErrorWrapper() ErrorWrapper
	NewErrorMessageWrapper() ErrorMessageWrapper
}

// ErrorResponse é o formato padrão de erro
// {"httpStatusCode": 404, "messages": [{"messageKey": "...", "message": "..."}]}
type ErrorResponse struct {
	XMLName    xml.Name        `json:"-" xml:"error"`
	StatusCode int             `json:"httpStatusCode" xml:"httpStatusCode"`
	Items      []*ErrorMessage `json:"messages" xml:"messages>message"`
}

// ErrorMessage representa uma mensagem de erro com sua chave
type ErrorMessage struct {
	Key  string `json:"messageKey" xml:"messageKey"`
	Text string `json:"message" xml:"message"`
}

func (r *ErrorResponse) HTTPStatusCode() int {
	return r.StatusCode
}

func (r *ErrorResponse) SetHTTPStatusCode(status int) {
	r.StatusCode = status
}

func (r *ErrorResponse) Messages() []ErrorMessageWrapper {
	return toWrappers(r.Items)
}

func (r *ErrorResponse) AddMessage(msg ErrorMessageWrapper) {
	r.Items = append(r.Items, toErrorMessage(msg))
}

func (m *ErrorMessage) MessageKey() string {
	return m.Key
}

func (m *ErrorMessage) SetMessageKey(key string) {
	m.Key = key
}

func (m *ErrorMessage) Message() string {
	return m.Text
}

func (m *ErrorMessage) SetMessage(msg string) {
	m.Text = msg
}

// DefaultWrapperFactory cria ErrorResponse/ErrorMessage
type DefaultWrapperFactory struct{}

func (DefaultWrapperFactory) NewErrorWrapper() ErrorWrapper {
	return &ErrorResponse{Items: []*ErrorMessage{}}
}

func (DefaultWrapperFactory) NewErrorMessageWrapper() ErrorMessageWrapper {
	return &ErrorMessage{}
}

func toWrappers(items []*ErrorMessage) []ErrorMessageWrapper {
	out := make([]ErrorMessageWrapper, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

// toErrorMessage aceita implementações alternativas copiando os campos
func toErrorMessage(msg ErrorMessageWrapper) *ErrorMessage {
	if m, ok := msg.(*ErrorMessage); ok {
		return m
	}
	return &ErrorMessage{Key: msg.MessageKey(), Text: msg.Message()}
}

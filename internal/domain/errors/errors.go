package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

// MessageKeyPrefix é o namespace de todas as chaves de mensagem de ServiceError.
// Corresponde ao nome qualificado do tipo (pacote.Tipo) seguido de ponto.
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
const MessageKeyPrefix = "errors.ServiceError."

// Chaves reservadas (message IDs para i18n)
const (
	KeyUnknownError             = MessageKeyPrefix + "unknownError"
	KeyNotFound                 = MessageKeyPrefix + "notFound"
	KeyQueryParameterNotPresent = MessageKeyPrefix + "queryParameterNotPresent"
	KeyInvalidParameter         = MessageKeyPrefix + "invalidParameter"
	KeyInvalidID                = MessageKeyPrefix + "invalidId"
	KeyProductNotFound          = MessageKeyPrefix + "productNotFound"
	KeyCategoryNotFound         = MessageKeyPrefix + "categoryNotFound"
)

// Message é uma chave de mensagem com seus argumentos de formatação
type Message struct {
	Key  string
	Args []any
}

// ServiceError representa uma falha de negócio esperada, com status HTTP,
// locale opcional e mensagens localizáveis.
//
// Os métodos With*/AddMessage existem apenas para a construção; depois de
// retornado pelo serviço o erro não deve mais ser alterado.
type ServiceError struct {
	httpStatus int
	locale     language.Tag
	messages   []Message
	cause      error
}

// New cria um ServiceError com o status HTTP informado
func New(httpStatus int) *ServiceError {
	return &ServiceError{httpStatus: httpStatus, locale: language.Und}
}

// Build cria um ServiceError completo de uma só vez
func Build(httpStatus int, locale language.Tag, cause error, messages ...Message) *ServiceError {
	e := New(httpStatus).WithLocale(locale).WithCause(cause)
	for _, m := range messages {
		e.AddMessage(m.Key, m.Args...)
	}
	return e
}

// NotFound cria um ServiceError 404 com uma mensagem
func NotFound(key string, args ...any) *ServiceError {
	return New(http.StatusNotFound).AddMessage(key, args...)
}

// BadRequest cria um ServiceError 400 com uma mensagem
func BadRequest(key string, args ...any) *ServiceError {
	return New(http.StatusBadRequest).AddMessage(key, args...)
}

// AddMessage adiciona uma chave de mensagem.
// Se a chave já existir, os argumentos são substituídos e a posição é mantida.
func (e *ServiceError) AddMessage(key string, args ...any) *ServiceError {
	for i := range e.messages {
		if e.messages[i].Key == key {
			e.messages[i].Args = args
			return e
		}
	}
	e.messages = append(e.messages, Message{Key: key, Args: args})
	return e
}

// WithLocale define o locale explícito do erro (language.Und = nenhum)
func (e *ServiceError) WithLocale(locale language.Tag) *ServiceError {
	e.locale = locale
	return e
}

// WithCause define o erro subjacente
func (e *ServiceError) WithCause(cause error) *ServiceError {
	e.cause = cause
	return e
}

// HTTPStatusCode retorna o status HTTP declarado
func (e *ServiceError) HTTPStatusCode() int {
	return e.httpStatus
}

// Locale retorna o locale explícito ou language.Und
func (e *ServiceError) Locale() language.Tag {
	return e.locale
}

// Messages retorna uma cópia das mensagens na ordem de inserção
func (e *ServiceError) Messages() []Message {
	out := make([]Message, len(e.messages))
	copy(out, e.messages)
	return out
}

// Cause retorna o erro subjacente, se houver
func (e *ServiceError) Cause() error {
	return e.cause
}

func (e *ServiceError) Unwrap() error {
	return e.cause
}

func (e *ServiceError) Error() string {
	keys := make([]string, len(e.messages))
	for i, m := range e.messages {
		keys[i] = m.Key
	}

	msg := fmt.Sprintf("service error (status %d)", e.httpStatus)
	if len(keys) > 0 {
		msg += ": " + strings.Join(keys, ", ")
	}
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

// AsServiceError procura um ServiceError na cadeia de err
func AsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if stderrors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}

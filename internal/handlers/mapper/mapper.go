// Package mapper converte erros em payloads de erro localizados.
//
// Um *errors.ServiceError (mesmo embrulhado com %w) é tratado como falha
// reconhecida: seu status e suas chaves de mensagem viram o payload. Qualquer
// outro erro é registrado em log e vira um 500 com a mensagem genérica
// errors.KeyUnknownError.
//
// ExceptionMapper é imutável depois de New e pode ser usado por várias
// goroutines ao mesmo tempo.
package mapper

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"

	svcerrors "github.com/rafabene/avantpro-commerce/internal/domain/errors"
	"github.com/rafabene/avantpro-commerce/internal/domain/ports"
	"github.com/rafabene/avantpro-commerce/internal/handlers/dto"
)

const logMessage = "an error occurred invoking a REST service"

// StatusCodeResolver decide o status HTTP efetivo da resposta
type StatusCodeResolver func(err error, payload dto.ErrorWrapper) int

// ClientKeyResolver converte a chave interna na chave exposta ao cliente
type ClientKeyResolver func(key string) string

// ExceptionMapper converte erros em dto.ErrorWrapper
type ExceptionMapper struct {
	resolver           ports.MessageResolver
	logger             ports.Logger
	factory            dto.WrapperFactory
	messageKeyPrefix   string
	defaultLocale      language.Tag
	statusCodeResolver StatusCodeResolver
	clientKeyResolver  ClientKeyResolver
}

// Option configura o ExceptionMapper
type Option func(*ExceptionMapper)

// WithMessageKeyPrefix define o prefixo removido das chaves (vazio = nenhum)
func WithMessageKeyPrefix(prefix string) Option {
	return func(m *ExceptionMapper) {
		m.messageKeyPrefix = prefix
	}
}

// WithDefaultLocale define o locale usado quando nem o erro nem a requisição informam um
func WithDefaultLocale(locale language.Tag) Option {
	return func(m *ExceptionMapper) {
		m.defaultLocale = locale
	}
}

// WithStatusCodeResolver substitui a estratégia de status HTTP
func WithStatusCodeResolver(fn StatusCodeResolver) Option {
	return func(m *ExceptionMapper) {
		m.statusCodeResolver = fn
	}
}

// WithClientKeyResolver substitui a estratégia de chaves expostas ao cliente
func WithClientKeyResolver(fn ClientKeyResolver) Option {
	return func(m *ExceptionMapper) {
		m.clientKeyResolver = fn
	}
}

// New cria um ExceptionMapper.
// Padrões: prefixo errors.MessageKeyPrefix, locale inglês, DefaultStatusCode e StripPrefix.
func New(resolver ports.MessageResolver, logger ports.Logger, factory dto.WrapperFactory, opts ...Option) *ExceptionMapper {
	m := &ExceptionMapper{
		resolver:           resolver,
		logger:             logger,
		factory:            factory,
		messageKeyPrefix:   svcerrors.MessageKeyPrefix,
		defaultLocale:      language.English,
		statusCodeResolver: DefaultStatusCode,
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.clientKeyResolver == nil {
		m.clientKeyResolver = StripPrefix(m.messageKeyPrefix)
	}

	return m
}

// ToResponse monta o payload de erro para err.
// requestLocale é o idioma da requisição (language.Und quando ausente).
func (m *ExceptionMapper) ToResponse(err error, requestLocale language.Tag) dto.ErrorWrapper {
	payload := m.factory.NewErrorWrapper()
	locale := requestLocale

	svcErr, ok := svcerrors.AsServiceError(err)
	if !ok {
		m.logger.Error(logMessage, "error", err)
		payload.SetHTTPStatusCode(http.StatusInternalServerError)
		payload.AddMessage(m.newMessage(svcerrors.KeyUnknownError, nil, m.effectiveLocale(locale)))
		return payload
	}

	if cause := svcErr.Cause(); cause != nil {
		m.logger.Error(logMessage, "error", cause)
	}

	payload.SetHTTPStatusCode(svcErr.HTTPStatusCode())
	if svcErr.Locale() != language.Und {
		locale = svcErr.Locale()
	}
	locale = m.effectiveLocale(locale)

	messages := svcErr.Messages()
	if len(messages) == 0 {
		payload.AddMessage(m.newMessage(svcerrors.KeyUnknownError, nil, locale))
		return payload
	}

	for _, msg := range messages {
		payload.AddMessage(m.newMessage(msg.Key, msg.Args, locale))
	}

	return payload
}

// ResolveResponseStatusCode retorna o status HTTP a ser escrito na resposta
func (m *ExceptionMapper) ResolveResponseStatusCode(err error, payload dto.ErrorWrapper) int {
	return m.statusCodeResolver(err, payload)
}

// ResolveClientMessageKey retorna a chave exposta ao cliente
func (m *ExceptionMapper) ResolveClientMessageKey(key string) string {
	return m.clientKeyResolver(key)
}

// MessageKeyPrefix retorna o prefixo configurado
func (m *ExceptionMapper) MessageKeyPrefix() string {
	return m.messageKeyPrefix
}

func (m *ExceptionMapper) newMessage(key string, args []any, locale language.Tag) dto.ErrorMessageWrapper {
	msg := m.factory.NewErrorMessageWrapper()
	msg.SetMessageKey(m.ResolveClientMessageKey(key))
	msg.SetMessage(m.resolver.Resolve(key, args, key, locale))
	return msg
}

func (m *ExceptionMapper) effectiveLocale(locale language.Tag) language.Tag {
	if locale == language.Und {
		return m.defaultLocale
	}
	return locale
}

// DefaultStatusCode usa o status do payload, ou 500 quando não definido
func DefaultStatusCode(_ error, payload dto.ErrorWrapper) int {
	if payload == nil || payload.HTTPStatusCode() == 0 {
		return http.StatusInternalServerError
	}
	return payload.HTTPStatusCode()
}

// AlwaysOK responde sempre 200; o status real fica no corpo
func AlwaysOK(_ error, _ dto.ErrorWrapper) int {
	return http.StatusOK
}

// StripPrefix remove a primeira ocorrência de prefix da chave.
// Não exige que prefix esteja no início. Prefixo vazio mantém a chave.
func StripPrefix(prefix string) ClientKeyResolver {
	return func(key string) string {
		if prefix == "" {
			return key
		}
		return strings.Replace(key, prefix, "", 1)
	}
}

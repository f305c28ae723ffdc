package mapper_test

import (
	"errors"
	"fmt"
	"net/http"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/text/language"

	svcerrors "github.com/rafabene/avantpro-commerce/internal/domain/errors"
	"github.com/rafabene/avantpro-commerce/internal/handlers/dto"
	"github.com/rafabene/avantpro-commerce/internal/handlers/mapper"
	"github.com/rafabene/avantpro-commerce/internal/infrastructure/logging"
)

type resolveCall struct {
	key      string
	args     []any
	fallback string
	locale   language.Tag
}

// recordingResolver devolve "<locale>:<key>" e registra cada chamada
type recordingResolver struct {
	mu    sync.Mutex
	calls []resolveCall
}

func (r *recordingResolver) Resolve(key string, args []any, fallback string, locale language.Tag) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, resolveCall{key: key, args: args, fallback: fallback, locale: locale})
	return locale.String() + ":" + key
}

func (r *recordingResolver) Calls() []resolveCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]resolveCall(nil), r.calls...)
}

func keysOf(payload dto.ErrorWrapper) []string {
	var keys []string
	for _, msg := range payload.Messages() {
		keys = append(keys, msg.MessageKey())
	}
	return keys
}

var _ = Describe("ExceptionMapper", func() {
	var (
		resolver *recordingResolver
		logs     *observer.ObservedLogs
		m        *mapper.ExceptionMapper
	)

	BeforeEach(func() {
		resolver = &recordingResolver{}
		core, observed := observer.New(zap.DebugLevel)
		logs = observed
		m = mapper.New(resolver, logging.FromZap(zap.New(core)), dto.DefaultWrapperFactory{})
	})

	Describe("ToResponse", func() {
		Context("com ServiceError e mensagens", func() {
			It("preserva ordem, remove o prefixo e resolve com argumentos", func() {
				err := svcerrors.New(http.StatusBadRequest).
					AddMessage(svcerrors.KeyInvalidID, "abc").
					AddMessage(svcerrors.KeyQueryParameterNotPresent, "name").
					AddMessage(svcerrors.KeyProductNotFound, "42")

				payload := m.ToResponse(err, language.Und)

				Expect(payload.HTTPStatusCode()).To(Equal(http.StatusBadRequest))
				Expect(keysOf(payload)).To(Equal([]string{"invalidId", "queryParameterNotPresent", "productNotFound"}))
				Expect(payload.Messages()[0].Message()).To(Equal("en:" + svcerrors.KeyInvalidID))

				calls := resolver.Calls()
				Expect(calls).To(HaveLen(3))
				Expect(calls[0].args).To(Equal([]any{"abc"}))
				Expect(calls[0].fallback).To(Equal(svcerrors.KeyInvalidID))
			})

			It("não registra log quando não há causa", func() {
				m.ToResponse(svcerrors.NotFound(svcerrors.KeyProductNotFound), language.Und)
				Expect(logs.Len()).To(BeZero())
			})

			It("registra a causa em nível de erro", func() {
				cause := errors.New("connection refused")
				m.ToResponse(svcerrors.NotFound(svcerrors.KeyProductNotFound).WithCause(cause), language.Und)

				entries := logs.All()
				Expect(entries).To(HaveLen(1))
				Expect(entries[0].Level).To(Equal(zap.ErrorLevel))
				Expect(entries[0].ContextMap()).To(HaveKeyWithValue("error", "connection refused"))
			})

			It("reconhece ServiceError embrulhado", func() {
				err := fmt.Errorf("loading product: %w", svcerrors.NotFound(svcerrors.KeyProductNotFound))

				payload := m.ToResponse(err, language.Und)

				Expect(payload.HTTPStatusCode()).To(Equal(http.StatusNotFound))
				Expect(keysOf(payload)).To(Equal([]string{"productNotFound"}))
			})
		})

		Context("com ServiceError sem mensagens", func() {
			It("adiciona exatamente uma mensagem unknownError", func() {
				payload := m.ToResponse(svcerrors.New(http.StatusConflict), language.Und)

				Expect(payload.HTTPStatusCode()).To(Equal(http.StatusConflict))
				Expect(keysOf(payload)).To(Equal([]string{"unknownError"}))

				calls := resolver.Calls()
				Expect(calls).To(HaveLen(1))
				Expect(calls[0].key).To(Equal(svcerrors.KeyUnknownError))
				Expect(calls[0].args).To(BeNil())
			})
		})

		Context("com erro não reconhecido", func() {
			DescribeTable("sempre responde 500 com unknownError e registra log",
				func(err error) {
					payload := m.ToResponse(err, language.Und)

					Expect(payload.HTTPStatusCode()).To(Equal(http.StatusInternalServerError))
					Expect(keysOf(payload)).To(Equal([]string{"unknownError"}))
					Expect(resolver.Calls()[0].args).To(BeNil())
					Expect(logs.FilterMessage("an error occurred invoking a REST service").Len()).To(Equal(1))
				},
				Entry("erro simples", errors.New("boom")),
				Entry("erro embrulhado", fmt.Errorf("query: %w", errors.New("timeout"))),
			)

			It("trata erro nil como não reconhecido", func() {
				payload := m.ToResponse(nil, language.Und)

				Expect(payload.HTTPStatusCode()).To(Equal(http.StatusInternalServerError))
				Expect(keysOf(payload)).To(Equal([]string{"unknownError"}))
			})
		})

		Context("precedência de locale", func() {
			var m2 *mapper.ExceptionMapper

			BeforeEach(func() {
				m2 = mapper.New(resolver, logging.NewNopLogger(), dto.DefaultWrapperFactory{},
					mapper.WithDefaultLocale(language.Spanish))
			})

			It("usa o locale do erro antes do locale da requisição", func() {
				err := svcerrors.NotFound(svcerrors.KeyNotFound).WithLocale(language.BrazilianPortuguese)
				m2.ToResponse(err, language.French)
				Expect(resolver.Calls()[0].locale).To(Equal(language.BrazilianPortuguese))
			})

			It("usa o locale da requisição quando o erro não informa", func() {
				m2.ToResponse(svcerrors.NotFound(svcerrors.KeyNotFound), language.French)
				Expect(resolver.Calls()[0].locale).To(Equal(language.French))
			})

			It("usa o locale padrão quando nenhum é informado", func() {
				m2.ToResponse(svcerrors.NotFound(svcerrors.KeyNotFound), language.Und)
				Expect(resolver.Calls()[0].locale).To(Equal(language.Spanish))
			})

			It("usa o locale da requisição para erros não reconhecidos", func() {
				m2.ToResponse(errors.New("boom"), language.French)
				Expect(resolver.Calls()[0].locale).To(Equal(language.French))
			})
		})

		It("é idempotente com resolvedor determinístico", func() {
			err := svcerrors.BadRequest(svcerrors.KeyInvalidParameter, "page").
				AddMessage(svcerrors.KeyNotFound)

			first := m.ToResponse(err, language.German)
			second := m.ToResponse(err, language.German)

			Expect(second).To(Equal(first))
		})

		It("é seguro para uso concorrente", func() {
			var wg sync.WaitGroup
			for i := 0; i < 50; i++ {
				i := i
				wg.Add(1)
				go func() {
					defer wg.Done()
					defer GinkgoRecover()
					payload := m.ToResponse(svcerrors.NotFound(svcerrors.KeyProductNotFound, i), language.Und)
					Expect(payload.Messages()).To(HaveLen(1))
				}()
			}
			wg.Wait()
			Expect(resolver.Calls()).To(HaveLen(50))
		})

		It("usa a fábrica injetada para criar o payload", func() {
			pm := mapper.New(resolver, logging.NewNopLogger(), dto.ProblemWrapperFactory{BaseURL: "http://x"})

			payload := pm.ToResponse(svcerrors.NotFound(svcerrors.KeyProductNotFound), language.Und)

			problem, ok := payload.(*dto.ProblemResponse)
			Expect(ok).To(BeTrue())
			Expect(problem.Status).To(Equal(http.StatusNotFound))
			Expect(problem.Detail).To(Equal("en:" + svcerrors.KeyProductNotFound))
		})
	})

	Describe("ResolveClientMessageKey", func() {
		It("remove o prefixo configurado", func() {
			pm := mapper.New(resolver, logging.NewNopLogger(), dto.DefaultWrapperFactory{},
				mapper.WithMessageKeyPrefix("org.example.Err."))
			Expect(pm.ResolveClientMessageKey("org.example.Err.unknownError")).To(Equal("unknownError"))
		})

		It("mantém a chave sem prefixo configurado", func() {
			pm := mapper.New(resolver, logging.NewNopLogger(), dto.DefaultWrapperFactory{},
				mapper.WithMessageKeyPrefix(""))
			Expect(pm.ResolveClientMessageKey("org.example.Err.unknownError")).To(Equal("org.example.Err.unknownError"))
		})

		It("remove apenas a primeira ocorrência, em qualquer posição", func() {
			strip := mapper.StripPrefix("Err.")
			Expect(strip("x.Err.a.Err.b")).To(Equal("x.a.Err.b"))
		})

		It("usa errors.MessageKeyPrefix por padrão", func() {
			Expect(m.MessageKeyPrefix()).To(Equal(svcerrors.MessageKeyPrefix))
			Expect(m.ResolveClientMessageKey(svcerrors.KeyUnknownError)).To(Equal("unknownError"))
		})

		It("aceita estratégia substituída", func() {
			pm := mapper.New(resolver, logging.NewNopLogger(), dto.DefaultWrapperFactory{},
				mapper.WithClientKeyResolver(func(key string) string { return "x-" + key }))

			payload := pm.ToResponse(svcerrors.New(http.StatusBadRequest), language.Und)
			Expect(keysOf(payload)).To(Equal([]string{"x-" + svcerrors.KeyUnknownError}))
		})
	})

	Describe("ResolveResponseStatusCode", func() {
		It("retorna o status do payload", func() {
			payload := dto.DefaultWrapperFactory{}.NewErrorWrapper()
			payload.SetHTTPStatusCode(http.StatusNotFound)
			Expect(m.ResolveResponseStatusCode(errors.New("x"), payload)).To(Equal(http.StatusNotFound))
		})

		It("retorna 500 quando o status não está definido", func() {
			payload := dto.DefaultWrapperFactory{}.NewErrorWrapper()
			Expect(m.ResolveResponseStatusCode(errors.New("x"), payload)).To(Equal(http.StatusInternalServerError))
		})

		It("aceita estratégia AlwaysOK", func() {
			pm := mapper.New(resolver, logging.NewNopLogger(), dto.DefaultWrapperFactory{},
				mapper.WithStatusCodeResolver(mapper.AlwaysOK))

			payload := pm.ToResponse(errors.New("boom"), language.Und)
			Expect(payload.HTTPStatusCode()).To(Equal(http.StatusInternalServerError))
			Expect(pm.ResolveResponseStatusCode(errors.New("boom"), payload)).To(Equal(http.StatusOK))
		})
	})
})

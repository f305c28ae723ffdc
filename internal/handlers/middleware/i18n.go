package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"

	"github.com/rafabene/avantpro-commerce/internal/infrastructure/i18n"
)

const (
	// LanguageContextKey é a chave usada para armazenar o idioma (language.Tag) no contexto do Gin
	LanguageContextKey = "language"
	// I18nServiceContextKey é a chave usada para armazenar o serviço i18n no contexto
	I18nServiceContextKey = "i18n_service"
)

// I18nMiddleware gerencia a detecção de idioma nas requisições
type I18nMiddleware struct {
	i18nService *i18n.Service
}

// NewI18nMiddleware cria um novo middleware de i18n
func NewI18nMiddleware(i18nService *i18n.Service) *I18nMiddleware {
	return &I18nMiddleware{
		i18nService: i18nService,
	}
}

// DetectLanguage detecta e configura o idioma da requisição
// Prioridade:
// 1. Query parameter ?lang=pt-BR (override explícito)
// 2. Accept-Language header (preferência do browser)
// 3. Idioma padrão (fallback)
func (m *I18nMiddleware) DetectLanguage() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := language.Und

		// 1. Verificar query parameter
		if queryLang := c.Query("lang"); queryLang != "" {
			if tag, err := language.Parse(queryLang); err == nil {
				if best, ok := m.i18nService.Match(tag); ok {
					lang = best
				}
			}
		}

		// 2. Se não encontrou, verificar Accept-Language header
		if lang == language.Und {
			lang = m.parseAcceptLanguage(c.GetHeader("Accept-Language"))
		}

		// 3. Se ainda não encontrou, usar idioma padrão
		if lang == language.Und {
			lang = m.i18nService.DefaultTag()
		}

		// Armazenar idioma e serviço no contexto
		c.Set(LanguageContextKey, lang)
		c.Set(I18nServiceContextKey, m.i18nService)

		c.Next()
	}
}

// parseAcceptLanguage analisa o header Accept-Language e retorna o melhor idioma suportado
// Exemplo: "pt-BR,pt;q=0.9,en-US;q=0.8,en;q=0.7" -> pt-BR
func (m *I18nMiddleware) parseAcceptLanguage(acceptLang string) language.Tag {
	if acceptLang == "" {
		return language.Und
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLang)
	if err != nil {
		return language.Und
	}

	best, ok := m.i18nService.Match(tags...)
	if !ok {
		return language.Und
	}
	return best
}

// LanguageFromContext retorna o idioma detectado, ou language.Und se ausente
func LanguageFromContext(c *gin.Context) language.Tag {
	lang, exists := c.Get(LanguageContextKey)
	if !exists {
		return language.Und
	}

	tag, ok := lang.(language.Tag)
	if !ok {
		return language.Und
	}

	return tag
}

package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/avantpro-commerce/internal/handlers/mapper"
)

// ErrorHandler converte o último erro registrado com c.Error em resposta HTTP.
// Os handlers apenas chamam c.Error(err) e retornam.
func ErrorHandler(m *mapper.ExceptionMapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		writeError(c, m, c.Errors.Last().Err)
	}
}

// Recovery converte panics em erros não reconhecidos (500)
func Recovery(m *mapper.ExceptionMapper) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		err, ok := recovered.(error)
		if !ok {
			err = fmt.Errorf("panic: %v", recovered)
		}
		writeError(c, m, err)
		c.Abort()
	})
}

func writeError(c *gin.Context, m *mapper.ExceptionMapper, err error) {
	payload := m.ToResponse(err, LanguageFromContext(c))
	status := m.ResolveResponseStatusCode(err, payload)

	if p, ok := payload.(interface{ SetInstance(string) }); ok {
		p.SetInstance(c.Request.URL.Path)
	}

	// Payloads com media type próprio (RFC 7807) são sempre JSON
	if ct, ok := payload.(interface{ ContentType() string }); ok {
		c.Header("Content-Type", ct.ContentType())
		c.JSON(status, payload)
		return
	}

	// XML apenas quando pedido explicitamente; qualquer outro Accept recebe JSON
	if c.NegotiateFormat(gin.MIMEJSON, gin.MIMEXML) == gin.MIMEXML {
		c.XML(status, payload)
		return
	}
	c.JSON(status, payload)
}

package dto

import (
	"encoding/json"
	"encoding/xml"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// customMessage simula um formato alternativo de mensagem
type customMessage struct{ key, text string }

func (m *customMessage) MessageKey() string     { return m.key }
func (m *customMessage) SetMessageKey(k string) { m.key = k }
func (m *customMessage) Message() string        { return m.text }
func (m *customMessage) SetMessage(t string)    { m.text = t }

func TestErrorResponse(t *testing.T) {
	factory := DefaultWrapperFactory{}

	t.Run("formato JSON", func(t *testing.T) {
		payload := factory.NewErrorWrapper()
		payload.SetHTTPStatusCode(http.StatusNotFound)

		msg := factory.NewErrorMessageWrapper()
		msg.SetMessageKey("productNotFound")
		msg.SetMessage("Product 1 was not found.")
		payload.AddMessage(msg)

		body, err := json.Marshal(payload)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"httpStatusCode": 404,
			"messages": [{"messageKey": "productNotFound", "message": "Product 1 was not found."}]
		}`, string(body))
	})

	t.Run("formato XML", func(t *testing.T) {
		payload := factory.NewErrorWrapper()
		payload.SetHTTPStatusCode(http.StatusInternalServerError)
		payload.AddMessage(&ErrorMessage{Key: "unknownError", Text: "boom"})

		body, err := xml.Marshal(payload)
		require.NoError(t, err)
		assert.Equal(t,
			`<error><httpStatusCode>500</httpStatusCode><messages><message><messageKey>unknownError</messageKey><message>boom</message></message></messages></error>`,
			string(body))
	})

	t.Run("status não definido é zero", func(t *testing.T) {
		assert.Equal(t, 0, factory.NewErrorWrapper().HTTPStatusCode())
	})

	t.Run("aceita implementação alternativa de mensagem", func(t *testing.T) {
		payload := factory.NewErrorWrapper()
		payload.AddMessage(&customMessage{key: "k", text: "t"})

		msgs := payload.Messages()
		require.Len(t, msgs, 1)
		assert.Equal(t, "k", msgs[0].MessageKey())
		assert.Equal(t, "t", msgs[0].Message())
	})
}

func TestProblemResponse(t *testing.T) {
	factory := ProblemWrapperFactory{BaseURL: "https://api.example.com"}

	payload := factory.NewErrorWrapper()
	payload.SetHTTPStatusCode(http.StatusNotFound)
	payload.AddMessage(&ErrorMessage{Key: "productNotFound", Text: "Product 1 was not found."})
	payload.AddMessage(&ErrorMessage{Key: "notFound", Text: "Not found."})

	problem, ok := payload.(*ProblemResponse)
	require.True(t, ok)
	problem.SetInstance("/api/v1/catalog/products/1")

	assert.Equal(t, "application/problem+json", problem.ContentType())
	assert.Equal(t, http.StatusNotFound, payload.HTTPStatusCode())

	body, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "https://api.example.com/problems/not-found",
		"title": "Not Found",
		"status": 404,
		"detail": "Product 1 was not found.",
		"instance": "/api/v1/catalog/products/1",
		"errors": [
			{"messageKey": "productNotFound", "message": "Product 1 was not found."},
			{"messageKey": "notFound", "message": "Not found."}
		]
	}`, string(body))
}

func TestProblemType(t *testing.T) {
	tests := map[int]string{
		http.StatusBadRequest:          ProblemTypeBadRequest,
		http.StatusUnprocessableEntity: ProblemTypeValidation,
		http.StatusNotFound:            ProblemTypeNotFound,
		http.StatusConflict:            ProblemTypeConflict,
		http.StatusUnauthorized:        ProblemTypeUnauthorized,
		http.StatusForbidden:           ProblemTypeForbidden,
		http.StatusInternalServerError: ProblemTypeInternal,
		http.StatusTeapot:              ProblemTypeInternal,
	}

	for status, expected := range tests {
		assert.Equal(t, expected, problemType(status), "status %d", status)
	}
}

package dto

import (
	"net/http"

	"github.com/moogar0880/problems"
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
//
//nolint:misspell
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeForbidden    = "/problems/forbidden"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeBadRequest   = "/problems/bad-request"
)

// ProblemResponse segue RFC 7807 (Problem Details for HTTP APIs)
// e carrega as mensagens localizadas em "errors".
type ProblemResponse struct {
	*problems.DefaultProblem
	Errors []*ErrorMessage `json:"errors"`

	baseURL string
}

func (p *ProblemResponse) HTTPStatusCode() int {
	return p.Status
}

func (p *ProblemResponse) SetHTTPStatusCode(status int) {
	p.Status = status
	p.Title = http.StatusText(status)
	p.Type = p.baseURL + problemType(status)
}

func (p *ProblemResponse) Messages() []ErrorMessageWrapper {
	return toWrappers(p.Errors)
}

// AddMessage adiciona a mensagem; a primeira também vira o "detail"
func (p *ProblemResponse) AddMessage(msg ErrorMessageWrapper) {
	m := toErrorMessage(msg)
	if len(p.Errors) == 0 {
		p.Detail = m.Text
	}
	p.Errors = append(p.Errors, m)
}

// SetInstance define o URI da ocorrência (caminho da requisição)
func (p *ProblemResponse) SetInstance(instance string) {
	p.Instance = instance
}

// ContentType retorna o media type RFC 7807
func (p *ProblemResponse) ContentType() string {
	return problems.ProblemMediaType
}

func problemType(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ProblemTypeBadRequest
	case http.StatusUnprocessableEntity:
		return ProblemTypeValidation
	case http.StatusNotFound:
		return ProblemTypeNotFound
	case http.StatusConflict:
		return ProblemTypeConflict
	case http.StatusUnauthorized:
		return ProblemTypeUnauthorized
	case http.StatusForbidden:
		return ProblemTypeForbidden
	default:
		return ProblemTypeInternal
	}
}

// ProblemWrapperFactory cria ProblemResponse
type ProblemWrapperFactory struct {
	BaseURL string
}

func (f ProblemWrapperFactory) NewErrorWrapper() ErrorWrapper {
	return &ProblemResponse{
		DefaultProblem: &problems.DefaultProblem{Type: "about:blank"},
		Errors:         []*ErrorMessage{},
		baseURL:        f.BaseURL,
	}
}

func (f ProblemWrapperFactory) NewErrorMessageWrapper() ErrorMessageWrapper {
	return &ErrorMessage{}
}

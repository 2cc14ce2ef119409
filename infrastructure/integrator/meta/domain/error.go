package metadomain

import (
	"fmt"
	"strings"
)

// Códigos de erro da Graph API que indicam limite de requisições atingido.
// 4 = app rate limit, 17 = user rate limit, 32 = page rate limit,
// 613 = custom rate limit.
var rateLimitCodes = map[int]struct{}{
	4:   {},
	17:  {},
	32:  {},
	613: {},
}

var rateLimitHints = []string{
	"rate limit",
	"request limit",
	"too many calls",
}

// ErrorDetails é o envelope de erro que a Graph API embute em qualquer
// resposta.
type ErrorDetails struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	FBTraceID    string `json:"fbtrace_id"`
}

// UpstreamError representa uma falha reportada pela Graph API. A paginação
// interrompe na primeira página com envelope de erro e descarta resultados
// parciais.
type UpstreamError struct {
	Message string
	Code    int
	Body    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("meta api error (code %d): %s", e.Code, e.Message)
}

// IsRateLimited classifica o erro como limite de requisições, seja pelo
// código conhecido ou pela mensagem. Qualquer outro erro upstream é tratado
// como indisponibilidade.
func (e *UpstreamError) IsRateLimited() bool {
	if _, ok := rateLimitCodes[e.Code]; ok {
		return true
	}

	message := strings.ToLower(e.Message)
	for _, hint := range rateLimitHints {
		if strings.Contains(message, hint) {
			return true
		}
	}

	return false
}

func NewUpstreamError(details *ErrorDetails, body []byte) *UpstreamError {
	return &UpstreamError{
		Message: details.Message,
		Code:    details.Code,
		Body:    string(body),
	}
}

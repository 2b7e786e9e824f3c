package apiErrors

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes

	// Erros de roteamento (3000-3999)
	ErrNotFound         = "RTE_001" // Rota não encontrada
	ErrMethodNotAllowed = "RTE_002" // Método não permitido

	// Erros de limite (4000-4999)
	ErrTooManyRequests = "LIM_001" // Limite de requisições excedido

	// Erros do servidor (5000-5999)
	ErrInternalServer  = "SRV_001" // Erro interno do servidor
	ErrExternalService = "SRV_003" // Erro em serviço externo
	ErrExternalPayload = "SRV_005" // Resposta inválida do serviço externo
)

var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrNotFound:            http.StatusNotFound,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
	ErrTooManyRequests:     http.StatusTooManyRequests,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
	ErrExternalPayload:     http.StatusBadGateway,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP do código, ou 500 quando desconhecido
func StatusFor(code string) int {
	if status, ok := httpStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromError classifica os erros do pipeline do painel
func FromError(err error) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	var filterErr *domain.FilterError
	if errors.As(err, &filterErr) {
		return APIError{
			Code:    ErrInvalidRequest,
			Message: filterErr.Error(),
			Details: map[string]string{"field": filterErr.Field},
		}
	}

	var parseErr *domain.ParseError
	if errors.As(err, &parseErr) {
		details := map[string]any{"index": parseErr.Index}
		if parseErr.Field != "" {
			details["field"] = parseErr.Field
			details["value"] = parseErr.Value
		}
		return APIError{
			Code:    ErrExternalPayload,
			Message: "Resposta inválida da API de dados",
			Details: details,
		}
	}

	var fetchErr *domain.FetchError
	if errors.As(err, &fetchErr) {
		apiErr := APIError{
			Code:    ErrExternalService,
			Message: "Falha ao consultar a API de dados",
		}
		if fetchErr.StatusCode != 0 {
			apiErr.Details = map[string]int{"status_code": fetchErr.StatusCode}
		}
		return apiErr
	}

	return APIError{
		Code:    ErrInternalServer,
		Message: "Erro interno do servidor",
	}
}

// WriteFromError classifica o erro e escreve a resposta correspondente
func WriteFromError(w http.ResponseWriter, err error) APIError {
	apiErr := FromError(err)
	WriteError(w, apiErr.Code, apiErr.Message, apiErr.Details)
	return apiErr
}

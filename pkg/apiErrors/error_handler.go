package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro da API
const (
	// Erros de validação (VAL)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros de campanha (CMP)
	ErrCampaignNotFound       = "CMP_001" // Campanha não encontrada em nenhuma plataforma
	ErrInvalidPlatformMapping = "CMP_002" // Valor unificado sem equivalente na plataforma alvo

	// Erros de provider (PRV)
	ErrProviderNotConfigured = "PRV_001" // Plataforma solicitada sem provider registrado
	ErrProviderCallFailed    = "PRV_002" // Falha na chamada ao provider externo
	ErrNoProvidersEnabled    = "PRV_003" // Nenhum provider habilitado na configuração

	// Erros do servidor (SRV)
	ErrInternalServer = "SRV_001" // Erro interno do servidor
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:         http.StatusBadRequest,
	ErrMissingRequiredData:    http.StatusBadRequest,
	ErrInvalidFormat:          http.StatusBadRequest,
	ErrCampaignNotFound:       http.StatusNotFound,
	ErrInvalidPlatformMapping: http.StatusUnprocessableEntity,
	ErrProviderNotConfigured:  http.StatusServiceUnavailable,
	ErrProviderCallFailed:     http.StatusBadGateway,
	ErrNoProvidersEnabled:     http.StatusServiceUnavailable,
	ErrInternalServer:         http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}

package unifying

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de unificação de campanhas
var (
	// ErrProviderNotConfigured indica que a plataforma solicitada não
	// tem provider registrado. Fatal para a chamada individual.
	ErrProviderNotConfigured = errors.New("provider not configured for platform")

	// ErrCampaignNotFound indica que as tentativas de resolução se
	// esgotaram sem encontrar a campanha em nenhuma plataforma
	ErrCampaignNotFound = errors.New("campaign not found")

	// ErrInvalidPlatformMapping indica que um valor unificado não tem
	// equivalente nativo na plataforma alvo. Nunca é coagido em
	// silêncio.
	ErrInvalidPlatformMapping = errors.New("no native equivalent on target platform")

	// ErrUnknownBulkOperation indica uma operação em lote não suportada
	ErrUnknownBulkOperation = errors.New("unknown bulk operation")
)

// ProviderCallError envolve uma falha do provider subjacente. No
// fan-out é rebaixado para omissão; em operações de alvo único é
// propagado intacto.
type ProviderCallError struct {
	Provider  string
	Operation string
	Err       error
}

func (e *ProviderCallError) Error() string {
	return fmt.Sprintf("provider %s: falha em %s: %v", e.Provider, e.Operation, e.Err)
}

func (e *ProviderCallError) Unwrap() error {
	return e.Err
}

func NewProviderCallError(provider, operation string, err error) *ProviderCallError {
	return &ProviderCallError{
		Provider:  provider,
		Operation: operation,
		Err:       err,
	}
}

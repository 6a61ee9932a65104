package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/marketplace-ads-api/internal/usecases/orchestrating"
	"github.com/vfg2006/marketplace-ads-api/internal/usecases/unifying"
	"github.com/vfg2006/marketplace-ads-api/pkg/apiErrors"
)

// writeServiceError traduz os erros dos usecases para o código de API
// correspondente. Erros fora da taxonomia viram erro interno genérico.
func writeServiceError(w http.ResponseWriter, err error) {
	var providerCallErr *unifying.ProviderCallError

	switch {
	case errors.Is(err, unifying.ErrCampaignNotFound):
		apiErrors.WriteError(w, apiErrors.ErrCampaignNotFound, err.Error(), nil)
	case errors.Is(err, unifying.ErrInvalidPlatformMapping):
		apiErrors.WriteError(w, apiErrors.ErrInvalidPlatformMapping, err.Error(), nil)
	case errors.Is(err, unifying.ErrProviderNotConfigured),
		errors.Is(err, orchestrating.ErrProviderNotConfigured):
		apiErrors.WriteError(w, apiErrors.ErrProviderNotConfigured, err.Error(), nil)
	case errors.Is(err, orchestrating.ErrNoProvidersEnabled):
		apiErrors.WriteError(w, apiErrors.ErrNoProvidersEnabled, err.Error(), nil)
	case errors.As(err, &providerCallErr),
		errors.Is(err, orchestrating.ErrAllProvidersFailed):
		apiErrors.WriteError(w, apiErrors.ErrProviderCallFailed, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
	}
}

package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/marketplace-ads-api/internal/usecases/orchestrating"
	"github.com/vfg2006/marketplace-ads-api/pkg/apiErrors"
	"github.com/vfg2006/marketplace-ads-api/pkg/log"
)

func GetProductInsights(service orchestrating.Orchestrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		asin := httprouter.ParamsFromContext(r.Context()).ByName("asin")
		logger.WithField("asin", asin).Info("insights: fetching product insights")

		insights, err := service.GetProductInsights(asin)
		if err != nil {
			logger.WithFields(log.Fields{
				"asin":  asin,
				"error": err.Error(),
			}).Error("insights: failed to get product insights")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, logger, insights)
	})
}

func GetMarketplaceInsights(service orchestrating.Orchestrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		marketplaceID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("marketplace_id", marketplaceID).Info("insights: fetching marketplace insights")

		insights, err := service.GetMarketplaceInsights(marketplaceID)
		if err != nil {
			logger.WithFields(log.Fields{
				"marketplace_id": marketplaceID,
				"error":          err.Error(),
			}).Error("insights: failed to get marketplace insights")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, logger, insights)
	})
}

func SearchProducts(service orchestrating.Orchestrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query := r.URL.Query().Get("q")
		if query == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "parâmetro q é obrigatório", nil)
			return
		}

		logger.WithField("query", query).Info("insights: searching products")

		result, err := service.SearchProducts(query)
		if err != nil {
			logger.WithFields(log.Fields{
				"query": query,
				"error": err.Error(),
			}).Error("insights: product search failed")
			writeServiceError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"query":   query,
			"results": len(result.Results),
			"sources": result.Sources,
		}).Info("insights: product search finished")

		writeJSON(w, logger, result)
	})
}

package handler

import (
	"net/http"

	"github.com/vfg2006/marketplace-ads-api/internal/api/handler/router"
	"github.com/vfg2006/marketplace-ads-api/internal/usecases/orchestrating"
	"github.com/vfg2006/marketplace-ads-api/internal/usecases/unifying"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Campaigns(service unifying.Unifier) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/campaigns",
			Method:  http.MethodGet,
			Handler: ListCampaigns(service),
		},
		{
			Path:    "/v1/campaigns",
			Method:  http.MethodPost,
			Handler: CreateCampaign(service),
		},
		{
			Path:    "/v1/campaigns/bulk",
			Method:  http.MethodPost,
			Handler: BulkCampaignOperation(service),
		},
		{
			Path:    "/v1/campaigns/suggestions",
			Method:  http.MethodPost,
			Handler: GetOptimizationSuggestions(service),
		},
		{
			Path:    "/v1/campaigns/:id",
			Method:  http.MethodGet,
			Handler: GetCampaign(service),
		},
		{
			Path:    "/v1/campaigns/:id",
			Method:  http.MethodPut,
			Handler: UpdateCampaign(service),
		},
		{
			Path:    "/v1/campaigns/:id",
			Method:  http.MethodDelete,
			Handler: ArchiveCampaign(service),
		},
		{
			Path:    "/v1/campaigns/:id/performance",
			Method:  http.MethodGet,
			Handler: GetCampaignPerformance(service),
		},
	}
}

func Insights(service orchestrating.Orchestrator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/insights/products/:asin",
			Method:  http.MethodGet,
			Handler: GetProductInsights(service),
		},
		{
			Path:    "/v1/insights/marketplaces/:id",
			Method:  http.MethodGet,
			Handler: GetMarketplaceInsights(service),
		},
		{
			Path:    "/v1/products/search",
			Method:  http.MethodGet,
			Handler: SearchProducts(service),
		},
	}
}

func Health(service orchestrating.Orchestrator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/health",
			Method:  http.MethodGet,
			Handler: GetHealthStatus(service),
		},
	}
}

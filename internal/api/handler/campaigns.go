package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/marketplace-ads-api/internal/domain"
	"github.com/vfg2006/marketplace-ads-api/internal/usecases/unifying"
	"github.com/vfg2006/marketplace-ads-api/pkg/apiErrors"
	"github.com/vfg2006/marketplace-ads-api/pkg/log"
	"github.com/vfg2006/marketplace-ads-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func ListCampaigns(service unifying.Unifier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := filtersFromQuery(r)
		if err != nil {
			logger.WithError(err).Warn("campaigns: invalid filter parameters")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		campaigns, err := service.GetAllCampaigns(filters)
		if err != nil {
			logger.WithError(err).Error("campaigns: failed to list campaigns")
			writeServiceError(w, err)
			return
		}

		logger.WithField("total_campaigns", len(campaigns)).Info("campaigns: listed campaigns across platforms")

		writeJSON(w, logger, campaigns)
	})
}

func GetCampaign(service unifying.Unifier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		platformHint, err := platformHintFromQuery(r)
		if err != nil {
			logger.WithError(err).Warn("campaigns: invalid platform parameter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		campaign, err := service.GetCampaign(id, platformHint)
		if err != nil {
			logger.WithFields(log.Fields{
				"campaign_id": id,
				"error":       err.Error(),
			}).Warn("campaigns: failed to get campaign")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, logger, campaign)
	})
}

func CreateCampaign(service unifying.Unifier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.CreateCampaignRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("campaigns: invalid create request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		if req.Name == "" || req.Platform == "" || req.Type == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "name, platform e type são obrigatórios", nil)
			return
		}

		campaign, err := service.CreateCampaign(&req)
		if err != nil {
			logger.WithFields(log.Fields{
				"campaign_name": req.Name,
				"platform":      req.Platform,
				"error":         err.Error(),
			}).Error("campaigns: failed to create campaign")
			writeServiceError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"campaign_id": campaign.CampaignID,
			"platform":    campaign.Platform,
		}).Info("campaigns: campaign created")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(campaign); err != nil {
			logger.WithError(err).Error("campaigns: failed to encode response")
		}
	})
}

func UpdateCampaign(service unifying.Unifier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		platformHint, err := platformHintFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		var updates domain.UpdateCampaignRequest
		if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
			logger.WithError(err).Warn("campaigns: invalid update request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		campaign, err := service.UpdateCampaign(id, &updates, platformHint)
		if err != nil {
			logger.WithFields(log.Fields{
				"campaign_id": id,
				"error":       err.Error(),
			}).Error("campaigns: failed to update campaign")
			writeServiceError(w, err)
			return
		}

		logger.WithField("campaign_id", id).Info("campaigns: campaign updated")

		writeJSON(w, logger, campaign)
	})
}

func ArchiveCampaign(service unifying.Unifier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		platformHint, err := platformHintFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		if err := service.ArchiveCampaign(id, platformHint); err != nil {
			logger.WithFields(log.Fields{
				"campaign_id": id,
				"error":       err.Error(),
			}).Error("campaigns: failed to archive campaign")
			writeServiceError(w, err)
			return
		}

		logger.WithField("campaign_id", id).Info("campaigns: campaign archived")

		w.WriteHeader(http.StatusNoContent)
	})
}

func BulkCampaignOperation(service unifying.Unifier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.BulkOperationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("campaigns: invalid bulk request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		if len(req.CampaignIDs) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "campaign_ids é obrigatório", nil)
			return
		}

		result, err := service.BulkOperation(&req)
		if err != nil {
			logger.WithError(err).Error("campaigns: bulk operation failed")
			writeServiceError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"operation":  req.Operation,
			"successful": len(result.Successful),
			"failed":     len(result.Failed),
		}).Info("campaigns: bulk operation finished")

		writeJSON(w, logger, result)
	})
}

func GetCampaignPerformance(service unifying.Unifier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		platformHint, err := platformHintFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		dateRange, err := dateRangeFromQuery(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"campaign_id": id,
				"error":       err.Error(),
			}).Warn("campaigns: invalid date range parameters")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		performance, err := service.GetCampaignPerformance(id, dateRange, platformHint)
		if err != nil {
			logger.WithFields(log.Fields{
				"campaign_id": id,
				"error":       err.Error(),
			}).Error("campaigns: failed to get campaign performance")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, logger, performance)
	})
}

func GetOptimizationSuggestions(service unifying.Unifier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req struct {
			CampaignIDs []string `json:"campaign_ids"`
		}

		if r.Body != nil && r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				logger.WithError(err).Warn("campaigns: invalid suggestions request body")
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
				return
			}
		}

		suggestions, err := service.GetOptimizationSuggestions(req.CampaignIDs)
		if err != nil {
			logger.WithError(err).Error("campaigns: failed to generate suggestions")
			writeServiceError(w, err)
			return
		}

		logger.WithField("suggestions", len(suggestions)).Info("campaigns: optimization suggestions generated")

		writeJSON(w, logger, suggestions)
	})
}

func writeJSON(w http.ResponseWriter, logger log.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithError(err).Error("handler: failed to encode response")

		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// platformHintFromQuery lê o hint opcional de plataforma da query.
// Ausente vira nil, e o usecase faz a sondagem entre plataformas.
func platformHintFromQuery(r *http.Request) (*domain.Platform, error) {
	raw := r.URL.Query().Get("platform")
	if raw == "" {
		return nil, nil
	}

	platform := domain.Platform(strings.ToUpper(raw))
	if platform != domain.PlatformAdvertising && platform != domain.PlatformDSP {
		return nil, fmt.Errorf("plataforma inválida: %s", raw)
	}

	return &platform, nil
}

// dateRangeFromQuery monta o período da consulta de performance. Sem
// parâmetros, os últimos 30 dias.
func dateRangeFromQuery(r *http.Request) (domain.DateRange, error) {
	dateRange := domain.DateRange{
		StartDate: utils.DaysAgo(30),
		EndDate:   utils.DaysAgo(0),
	}

	if raw := r.URL.Query().Get("start_date"); raw != "" {
		parsed, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return dateRange, fmt.Errorf("start_date inválida: %s", raw)
		}
		dateRange.StartDate = parsed
	}

	if raw := r.URL.Query().Get("end_date"); raw != "" {
		parsed, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return dateRange, fmt.Errorf("end_date inválida: %s", raw)
		}
		dateRange.EndDate = parsed
	}

	if dateRange.EndDate.Before(dateRange.StartDate) {
		return dateRange, fmt.Errorf("end_date anterior a start_date")
	}

	return dateRange, nil
}

// filtersFromQuery monta os filtros unificados de listagem a partir da
// query string
func filtersFromQuery(r *http.Request) (*domain.CampaignFilters, error) {
	query := r.URL.Query()
	filters := &domain.CampaignFilters{
		NameContains: query.Get("name_contains"),
	}

	if raw := query.Get("types"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			filters.Types = append(filters.Types, domain.CampaignType(strings.TrimSpace(t)))
		}
	}

	if raw := query.Get("statuses"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			filters.Statuses = append(filters.Statuses, domain.CampaignStatus(strings.TrimSpace(s)))
		}
	}

	if raw := query.Get("min_budget"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("min_budget inválido: %s", raw)
		}
		filters.MinBudget = &value
	}

	if raw := query.Get("max_budget"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("max_budget inválido: %s", raw)
		}
		filters.MaxBudget = &value
	}

	if raw := query.Get("max_acos"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("max_acos inválido: %s", raw)
		}
		filters.MaxACOS = &value
	}

	if raw := query.Get("min_roas"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("min_roas inválido: %s", raw)
		}
		filters.MinROAS = &value
	}

	return filters, nil
}

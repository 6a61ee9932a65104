package unifying

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/ads/adsdomain"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/dsp/dspdomain"
	"github.com/vfg2006/marketplace-ads-api/internal/domain"
	"github.com/vfg2006/marketplace-ads-api/pkg/utils"
)

// Mapeamentos bidirecionais entre o modelo unificado e os vocabulários
// nativos de cada plataforma. Todos os switches são exaustivos: valor
// sem equivalente nativo retorna ErrInvalidPlatformMapping, nunca é
// coagido para um valor "parecido".

func adsStateFromStatus(status domain.CampaignStatus) (string, error) {
	switch status {
	case domain.CampaignStatusActive:
		return adsdomain.StateEnabled, nil
	case domain.CampaignStatusPaused:
		return adsdomain.StatePaused, nil
	case domain.CampaignStatusArchived:
		return adsdomain.StateArchived, nil
	case domain.CampaignStatusPending:
		return adsdomain.StatePendingReview, nil
	case domain.CampaignStatusRejected:
		return adsdomain.StateRejected, nil
	default:
		return "", fmt.Errorf("%w: status %q em sponsored ads", ErrInvalidPlatformMapping, status)
	}
}

func statusFromAdsState(state string) (domain.CampaignStatus, error) {
	switch state {
	case adsdomain.StateEnabled:
		return domain.CampaignStatusActive, nil
	case adsdomain.StatePaused:
		return domain.CampaignStatusPaused, nil
	case adsdomain.StateArchived:
		return domain.CampaignStatusArchived, nil
	case adsdomain.StatePendingReview:
		return domain.CampaignStatusPending, nil
	case adsdomain.StateRejected:
		return domain.CampaignStatusRejected, nil
	default:
		return "", fmt.Errorf("%w: estado nativo %q de sponsored ads", ErrInvalidPlatformMapping, state)
	}
}

func dspStatusFromStatus(status domain.CampaignStatus) (string, error) {
	switch status {
	case domain.CampaignStatusActive:
		return dspdomain.StatusActive, nil
	case domain.CampaignStatusPaused:
		return dspdomain.StatusSuspended, nil
	case domain.CampaignStatusArchived:
		return dspdomain.StatusArchived, nil
	case domain.CampaignStatusPending:
		return dspdomain.StatusPendingApproval, nil
	case domain.CampaignStatusRejected:
		return dspdomain.StatusRejected, nil
	default:
		return "", fmt.Errorf("%w: status %q em DSP", ErrInvalidPlatformMapping, status)
	}
}

func statusFromDSPStatus(status string) (domain.CampaignStatus, error) {
	switch status {
	case dspdomain.StatusActive:
		return domain.CampaignStatusActive, nil
	case dspdomain.StatusSuspended:
		return domain.CampaignStatusPaused, nil
	case dspdomain.StatusArchived:
		return domain.CampaignStatusArchived, nil
	case dspdomain.StatusPendingApproval:
		return domain.CampaignStatusPending, nil
	case dspdomain.StatusRejected:
		return domain.CampaignStatusRejected, nil
	default:
		return "", fmt.Errorf("%w: status nativo %q de DSP", ErrInvalidPlatformMapping, status)
	}
}

// Tipos de campanha: cada plataforma suporta apenas seu subconjunto.
// Tipo de DSP pedido em sponsored ads (e vice-versa) é erro de
// mapeamento, não fallback.

func adsTypeFromCampaignType(campaignType domain.CampaignType) (string, error) {
	switch campaignType {
	case domain.CampaignTypeSponsoredProducts:
		return adsdomain.TypeSponsoredProducts, nil
	case domain.CampaignTypeSponsoredBrands:
		return adsdomain.TypeSponsoredBrands, nil
	case domain.CampaignTypeSponsoredDisplay:
		return adsdomain.TypeSponsoredDisplay, nil
	default:
		return "", fmt.Errorf("%w: tipo %q em sponsored ads", ErrInvalidPlatformMapping, campaignType)
	}
}

func campaignTypeFromAdsType(campaignType string) (domain.CampaignType, error) {
	switch campaignType {
	case adsdomain.TypeSponsoredProducts:
		return domain.CampaignTypeSponsoredProducts, nil
	case adsdomain.TypeSponsoredBrands:
		return domain.CampaignTypeSponsoredBrands, nil
	case adsdomain.TypeSponsoredDisplay:
		return domain.CampaignTypeSponsoredDisplay, nil
	default:
		return "", fmt.Errorf("%w: tipo nativo %q de sponsored ads", ErrInvalidPlatformMapping, campaignType)
	}
}

func dspOrderTypeFromCampaignType(campaignType domain.CampaignType) (string, error) {
	switch campaignType {
	case domain.CampaignTypeDSPDisplay:
		return dspdomain.OrderTypeDisplay, nil
	case domain.CampaignTypeDSPVideo:
		return dspdomain.OrderTypeVideo, nil
	case domain.CampaignTypeDSPAudio:
		return dspdomain.OrderTypeAudio, nil
	case domain.CampaignTypeDSPOTT:
		return dspdomain.OrderTypeOTT, nil
	default:
		return "", fmt.Errorf("%w: tipo %q em DSP", ErrInvalidPlatformMapping, campaignType)
	}
}

func campaignTypeFromDSPOrderType(orderType string) (domain.CampaignType, error) {
	switch orderType {
	case dspdomain.OrderTypeDisplay:
		return domain.CampaignTypeDSPDisplay, nil
	case dspdomain.OrderTypeVideo:
		return domain.CampaignTypeDSPVideo, nil
	case dspdomain.OrderTypeAudio:
		return domain.CampaignTypeDSPAudio, nil
	case dspdomain.OrderTypeOTT:
		return domain.CampaignTypeDSPOTT, nil
	default:
		return "", fmt.Errorf("%w: tipo nativo %q de DSP", ErrInvalidPlatformMapping, orderType)
	}
}

// Estratégias de lance: sponsored ads não suporta alvo de CPA/ROAS;
// DSP não suporta lances dinâmicos

func adsBiddingFromStrategy(strategy domain.BidStrategy) (string, error) {
	switch strategy {
	case domain.BidStrategyAuto:
		return adsdomain.BiddingAutoForSales, nil
	case domain.BidStrategyManual:
		return adsdomain.BiddingManual, nil
	case domain.BidStrategyDynamic:
		return adsdomain.BiddingDynamicBids, nil
	case domain.BidStrategyTargetCPA, domain.BidStrategyTargetROAS:
		return "", fmt.Errorf("%w: estratégia %q em sponsored ads", ErrInvalidPlatformMapping, strategy)
	default:
		return "", fmt.Errorf("%w: estratégia %q em sponsored ads", ErrInvalidPlatformMapping, strategy)
	}
}

func strategyFromAdsBidding(bidding string) (domain.BidStrategy, error) {
	switch bidding {
	case adsdomain.BiddingAutoForSales:
		return domain.BidStrategyAuto, nil
	case adsdomain.BiddingManual:
		return domain.BidStrategyManual, nil
	case adsdomain.BiddingDynamicBids:
		return domain.BidStrategyDynamic, nil
	default:
		return "", fmt.Errorf("%w: estratégia nativa %q de sponsored ads", ErrInvalidPlatformMapping, bidding)
	}
}

func dspBidStrategyFromStrategy(strategy domain.BidStrategy) (string, error) {
	switch strategy {
	case domain.BidStrategyAuto:
		return dspdomain.BidStrategyAutomatic, nil
	case domain.BidStrategyManual:
		return dspdomain.BidStrategyFixedBid, nil
	case domain.BidStrategyTargetCPA:
		return dspdomain.BidStrategyCPATarget, nil
	case domain.BidStrategyTargetROAS:
		return dspdomain.BidStrategyROASTarget, nil
	case domain.BidStrategyDynamic:
		return "", fmt.Errorf("%w: estratégia %q em DSP", ErrInvalidPlatformMapping, strategy)
	default:
		return "", fmt.Errorf("%w: estratégia %q em DSP", ErrInvalidPlatformMapping, strategy)
	}
}

func strategyFromDSPBidStrategy(bidStrategy string) (domain.BidStrategy, error) {
	switch bidStrategy {
	case dspdomain.BidStrategyAutomatic:
		return domain.BidStrategyAuto, nil
	case dspdomain.BidStrategyFixedBid:
		return domain.BidStrategyManual, nil
	case dspdomain.BidStrategyCPATarget:
		return domain.BidStrategyTargetCPA, nil
	case dspdomain.BidStrategyROASTarget:
		return domain.BidStrategyTargetROAS, nil
	default:
		return "", fmt.Errorf("%w: estratégia nativa %q de DSP", ErrInvalidPlatformMapping, bidStrategy)
	}
}

func adsBudgetTypeFromBudgetType(budgetType domain.BudgetType) (string, error) {
	switch budgetType {
	case domain.BudgetTypeDaily:
		return "daily", nil
	case domain.BudgetTypeLifetime:
		return "lifetime", nil
	default:
		return "", fmt.Errorf("%w: tipo de budget %q em sponsored ads", ErrInvalidPlatformMapping, budgetType)
	}
}

func budgetTypeFromAdsBudgetType(budgetType string) (domain.BudgetType, error) {
	switch budgetType {
	case "daily":
		return domain.BudgetTypeDaily, nil
	case "lifetime":
		return domain.BudgetTypeLifetime, nil
	default:
		return "", fmt.Errorf("%w: tipo de budget nativo %q de sponsored ads", ErrInvalidPlatformMapping, budgetType)
	}
}

func dspBudgetTypeFromBudgetType(budgetType domain.BudgetType) (string, error) {
	switch budgetType {
	case domain.BudgetTypeDaily:
		return dspdomain.BudgetTypeDaily, nil
	case domain.BudgetTypeLifetime:
		return dspdomain.BudgetTypeTotal, nil
	default:
		return "", fmt.Errorf("%w: tipo de budget %q em DSP", ErrInvalidPlatformMapping, budgetType)
	}
}

func budgetTypeFromDSPBudgetType(budgetType string) (domain.BudgetType, error) {
	switch budgetType {
	case dspdomain.BudgetTypeDaily:
		return domain.BudgetTypeDaily, nil
	case dspdomain.BudgetTypeTotal:
		return domain.BudgetTypeLifetime, nil
	default:
		return "", fmt.Errorf("%w: tipo de budget nativo %q de DSP", ErrInvalidPlatformMapping, budgetType)
	}
}

// unifyAdsCampaign converte o registro nativo de sponsored ads para o
// modelo unificado, preservando o registro intocado no metadata
func unifyAdsCampaign(campaign *adsdomain.Campaign) (*domain.UnifiedCampaign, error) {
	status, err := statusFromAdsState(campaign.State)
	if err != nil {
		return nil, err
	}

	campaignType, err := campaignTypeFromAdsType(campaign.CampaignType)
	if err != nil {
		return nil, err
	}

	strategy, err := strategyFromAdsBidding(campaign.BiddingStrategy)
	if err != nil {
		return nil, err
	}

	budgetType, err := budgetTypeFromAdsBudgetType(campaign.BudgetType)
	if err != nil {
		return nil, err
	}

	startDate, err := time.Parse(time.DateOnly, campaign.StartDate)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaign.CampaignID,
			"start_date":  campaign.StartDate,
		}).Warn("unifying: data de início inválida na campanha de ads")
	}

	var endDate *time.Time
	if campaign.EndDate != nil {
		if parsed, err := time.Parse(time.DateOnly, *campaign.EndDate); err == nil {
			endDate = &parsed
		}
	}

	return &domain.UnifiedCampaign{
		CampaignID:  campaign.CampaignID,
		Name:        campaign.Name,
		Platform:    domain.PlatformAdvertising,
		Type:        campaignType,
		Status:      status,
		Budget: domain.Budget{
			Type:     budgetType,
			Amount:   campaign.Budget,
			Currency: campaign.CurrencyCode,
		},
		BidStrategy: strategy,
		Targeting: domain.Targeting{
			Keywords: campaign.Keywords,
			ASINs:    campaign.ProductTargets,
		},
		Schedule: domain.Schedule{
			StartDate: startDate,
			EndDate:   endDate,
			Timezone:  campaign.Timezone,
		},
		Metadata: domain.CampaignMetadata{OriginalCampaign: campaign},
	}, nil
}

// unifyDSPOrder converte a order nativa de DSP para o modelo unificado
func unifyDSPOrder(order *dspdomain.Order) (*domain.UnifiedCampaign, error) {
	status, err := statusFromDSPStatus(order.Status)
	if err != nil {
		return nil, err
	}

	campaignType, err := campaignTypeFromDSPOrderType(order.OrderType)
	if err != nil {
		return nil, err
	}

	strategy, err := strategyFromDSPBidStrategy(order.BidStrategy)
	if err != nil {
		return nil, err
	}

	budgetType, err := budgetTypeFromDSPBudgetType(order.Budget.Type)
	if err != nil {
		return nil, err
	}

	startDate, err := time.Parse(time.RFC3339, order.StartDateTime)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"order_id":        order.OrderID,
			"start_date_time": order.StartDateTime,
		}).Warn("unifying: data de início inválida na order de DSP")
	}

	var endDate *time.Time
	if order.EndDateTime != nil {
		if parsed, err := time.Parse(time.RFC3339, *order.EndDateTime); err == nil {
			endDate = &parsed
		}
	}

	return &domain.UnifiedCampaign{
		CampaignID:  order.OrderID,
		Name:        order.Name,
		Platform:    domain.PlatformDSP,
		Type:        campaignType,
		Status:      status,
		Budget: domain.Budget{
			Type:     budgetType,
			Amount:   order.Budget.Amount,
			Currency: order.Budget.Currency,
		},
		BidStrategy: strategy,
		Targeting: domain.Targeting{
			Audiences:    order.Audiences,
			Demographics: order.Demographics,
			Geographic:   order.GeoTargets,
			Contextual:   order.ContextualTargets,
		},
		Schedule: domain.Schedule{
			StartDate: startDate,
			EndDate:   endDate,
			Timezone:  order.Timezone,
		},
		Metadata: domain.CampaignMetadata{OriginalCampaign: order},
	}, nil
}

// nativeAdsCreate traduz a requisição unificada de criação para o
// formato de sponsored ads. Alvos de DSP na requisição são rejeitados:
// o targeting de uma campanha segue a plataforma dela.
func nativeAdsCreate(req *domain.CreateCampaignRequest) (*adsdomain.CreateCampaignRequest, error) {
	if len(req.Targeting.Audiences) > 0 || len(req.Targeting.Demographics) > 0 ||
		len(req.Targeting.Geographic) > 0 || len(req.Targeting.Contextual) > 0 {
		return nil, fmt.Errorf("%w: targeting de DSP em campanha de sponsored ads", ErrInvalidPlatformMapping)
	}

	campaignType, err := adsTypeFromCampaignType(req.Type)
	if err != nil {
		return nil, err
	}

	bidding, err := adsBiddingFromStrategy(req.BidStrategy)
	if err != nil {
		return nil, err
	}

	budgetType, err := adsBudgetTypeFromBudgetType(req.Budget.Type)
	if err != nil {
		return nil, err
	}

	targetingType := "auto"
	if len(req.Targeting.Keywords) > 0 || len(req.Targeting.ASINs) > 0 {
		targetingType = "manual"
	}

	var endDate *string
	if req.Schedule.EndDate != nil {
		formatted := req.Schedule.EndDate.Format(time.DateOnly)
		endDate = &formatted
	}

	return &adsdomain.CreateCampaignRequest{
		Name:            req.Name,
		CampaignType:    campaignType,
		State:           adsdomain.StateEnabled,
		TargetingType:   targetingType,
		BudgetType:      budgetType,
		Budget:          req.Budget.Amount,
		CurrencyCode:    req.Budget.Currency,
		BiddingStrategy: bidding,
		Keywords:        req.Targeting.Keywords,
		ProductTargets:  req.Targeting.ASINs,
		StartDate:       req.Schedule.StartDate.Format(time.DateOnly),
		EndDate:         endDate,
		Timezone:        req.Schedule.Timezone,
	}, nil
}

// nativeDSPCreate traduz a requisição unificada de criação para o
// formato de DSP. Keywords e ASINs são alvos de sponsored ads e são
// rejeitados aqui.
func nativeDSPCreate(req *domain.CreateCampaignRequest) (*dspdomain.CreateOrderRequest, error) {
	if len(req.Targeting.Keywords) > 0 || len(req.Targeting.ASINs) > 0 {
		return nil, fmt.Errorf("%w: targeting de sponsored ads em order de DSP", ErrInvalidPlatformMapping)
	}

	orderType, err := dspOrderTypeFromCampaignType(req.Type)
	if err != nil {
		return nil, err
	}

	bidStrategy, err := dspBidStrategyFromStrategy(req.BidStrategy)
	if err != nil {
		return nil, err
	}

	budgetType, err := dspBudgetTypeFromBudgetType(req.Budget.Type)
	if err != nil {
		return nil, err
	}

	var endDateTime *string
	if req.Schedule.EndDate != nil {
		formatted := req.Schedule.EndDate.Format(time.RFC3339)
		endDateTime = &formatted
	}

	return &dspdomain.CreateOrderRequest{
		Name:      req.Name,
		OrderType: orderType,
		Budget: dspdomain.Budget{
			Type:     budgetType,
			Amount:   req.Budget.Amount,
			Currency: req.Budget.Currency,
		},
		BidStrategy:       bidStrategy,
		Audiences:         req.Targeting.Audiences,
		Demographics:      req.Targeting.Demographics,
		GeoTargets:        req.Targeting.Geographic,
		ContextualTargets: req.Targeting.Contextual,
		StartDateTime:     req.Schedule.StartDate.Format(time.RFC3339),
		EndDateTime:       endDateTime,
		Timezone:          req.Schedule.Timezone,
	}, nil
}

// nativeAdsUpdate traduz a atualização parcial, campo a campo. Campo
// nulo não entra na requisição nativa.
func nativeAdsUpdate(updates *domain.UpdateCampaignRequest) (*adsdomain.UpdateCampaignRequest, error) {
	native := &adsdomain.UpdateCampaignRequest{Name: updates.Name}

	if updates.Status != nil {
		state, err := adsStateFromStatus(*updates.Status)
		if err != nil {
			return nil, err
		}
		native.State = &state
	}

	if updates.Budget != nil {
		budgetType, err := adsBudgetTypeFromBudgetType(updates.Budget.Type)
		if err != nil {
			return nil, err
		}
		native.Budget = &updates.Budget.Amount
		native.BudgetType = &budgetType
	}

	if updates.BidStrategy != nil {
		bidding, err := adsBiddingFromStrategy(*updates.BidStrategy)
		if err != nil {
			return nil, err
		}
		native.BiddingStrategy = &bidding
	}

	return native, nil
}

func nativeDSPUpdate(updates *domain.UpdateCampaignRequest) (*dspdomain.UpdateOrderRequest, error) {
	native := &dspdomain.UpdateOrderRequest{Name: updates.Name}

	if updates.Status != nil {
		status, err := dspStatusFromStatus(*updates.Status)
		if err != nil {
			return nil, err
		}
		native.Status = &status
	}

	if updates.Budget != nil {
		budgetType, err := dspBudgetTypeFromBudgetType(updates.Budget.Type)
		if err != nil {
			return nil, err
		}
		native.Budget = &dspdomain.Budget{
			Type:     budgetType,
			Amount:   updates.Budget.Amount,
			Currency: updates.Budget.Currency,
		}
	}

	if updates.BidStrategy != nil {
		bidStrategy, err := dspBidStrategyFromStrategy(*updates.BidStrategy)
		if err != nil {
			return nil, err
		}
		native.BidStrategy = &bidStrategy
	}

	return native, nil
}

// unifyAdsMetrics normaliza o relatório de sponsored ads para o formato
// unificado. As taxas derivadas usam divisão segura: sem cliques ou
// impressões, a taxa fica zerada.
func unifyAdsMetrics(metrics *adsdomain.CampaignMetrics) *domain.UnifiedCampaignPerformance {
	return &domain.UnifiedCampaignPerformance{
		CampaignID:  metrics.CampaignID,
		Impressions: metrics.Impressions,
		Clicks:      metrics.Clicks,
		Spend:       metrics.Cost,
		Sales:       metrics.AttributedSales14D,
		Orders:      metrics.AttributedConversions14D,
		CTR:         utils.RoundWithTwoDecimalPlace(utils.SafeDivide(float64(metrics.Clicks), float64(metrics.Impressions)) * 100),
		CPC:         utils.RoundWithTwoDecimalPlace(utils.SafeDivide(metrics.Cost, float64(metrics.Clicks))),
		CPM:         utils.RoundWithTwoDecimalPlace(utils.SafeDivide(metrics.Cost, float64(metrics.Impressions)) * 1000),
		ACOS:        utils.RoundWithTwoDecimalPlace(utils.SafeDivide(metrics.Cost, metrics.AttributedSales14D) * 100),
		ROAS:        utils.RoundWithTwoDecimalPlace(utils.SafeDivide(metrics.AttributedSales14D, metrics.Cost)),
	}
}

// unifyDSPMetrics normaliza o relatório de DSP. ACOS é métrica de
// sponsored ads e fica zerada; as métricas de viewability e vídeo são
// repassadas direto.
func unifyDSPMetrics(metrics *dspdomain.OrderMetrics) *domain.UnifiedCampaignPerformance {
	return &domain.UnifiedCampaignPerformance{
		CampaignID:          metrics.OrderID,
		Impressions:         metrics.Impressions,
		Clicks:              metrics.Clicks,
		Spend:               metrics.TotalCost,
		Sales:               metrics.Sales14D,
		Orders:              metrics.Purchases14D,
		CTR:                 utils.RoundWithTwoDecimalPlace(utils.SafeDivide(float64(metrics.Clicks), float64(metrics.Impressions)) * 100),
		CPC:                 utils.RoundWithTwoDecimalPlace(utils.SafeDivide(metrics.TotalCost, float64(metrics.Clicks))),
		CPM:                 utils.RoundWithTwoDecimalPlace(utils.SafeDivide(metrics.TotalCost, float64(metrics.Impressions)) * 1000),
		ROAS:                utils.RoundWithTwoDecimalPlace(utils.SafeDivide(metrics.Sales14D, metrics.TotalCost)),
		ConversionRate:      metrics.ConversionRate,
		ViewableImpressions: metrics.ViewableImpressions,
		VideoCompletions:    metrics.VideoCompletions,
		BrandAwarenessLift:  metrics.BrandAwarenessLift,
	}
}

package unifying

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/ads/adsdomain"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/dsp/dspdomain"
	"github.com/vfg2006/marketplace-ads-api/internal/domain"
)

func TestStatusMappingRoundTrip(t *testing.T) {
	statuses := []domain.CampaignStatus{
		domain.CampaignStatusActive,
		domain.CampaignStatusPaused,
		domain.CampaignStatusArchived,
		domain.CampaignStatusPending,
		domain.CampaignStatusRejected,
	}

	for _, status := range statuses {
		t.Run(string(status), func(t *testing.T) {
			adsState, err := adsStateFromStatus(status)
			require.NoError(t, err)

			back, err := statusFromAdsState(adsState)
			require.NoError(t, err)
			assert.Equal(t, status, back)

			dspStatus, err := dspStatusFromStatus(status)
			require.NoError(t, err)

			back, err = statusFromDSPStatus(dspStatus)
			require.NoError(t, err)
			assert.Equal(t, status, back)
		})
	}
}

func TestStatusMappingVocabularies(t *testing.T) {
	// Mesmo status unificado, vocabulários nativos distintos
	adsState, err := adsStateFromStatus(domain.CampaignStatusPaused)
	require.NoError(t, err)
	assert.Equal(t, adsdomain.StatePaused, adsState)

	dspStatus, err := dspStatusFromStatus(domain.CampaignStatusPaused)
	require.NoError(t, err)
	assert.Equal(t, dspdomain.StatusSuspended, dspStatus)
}

func TestCampaignTypeCrossPlatformRejected(t *testing.T) {
	tests := []struct {
		name         string
		campaignType domain.CampaignType
		mapFn        func(domain.CampaignType) (string, error)
	}{
		{
			name:         "tipo de DSP em sponsored ads",
			campaignType: domain.CampaignTypeDSPDisplay,
			mapFn:        adsTypeFromCampaignType,
		},
		{
			name:         "tipo de sponsored ads em DSP",
			campaignType: domain.CampaignTypeSponsoredProducts,
			mapFn:        dspOrderTypeFromCampaignType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.mapFn(tt.campaignType)
			assert.ErrorIs(t, err, ErrInvalidPlatformMapping)
		})
	}
}

func TestBidStrategyMappingUnsupported(t *testing.T) {
	// Sponsored ads não tem alvo de CPA/ROAS
	_, err := adsBiddingFromStrategy(domain.BidStrategyTargetCPA)
	assert.ErrorIs(t, err, ErrInvalidPlatformMapping)

	_, err = adsBiddingFromStrategy(domain.BidStrategyTargetROAS)
	assert.ErrorIs(t, err, ErrInvalidPlatformMapping)

	// DSP não tem lances dinâmicos
	_, err = dspBidStrategyFromStrategy(domain.BidStrategyDynamic)
	assert.ErrorIs(t, err, ErrInvalidPlatformMapping)
}

func TestBidStrategyMappingRoundTrip(t *testing.T) {
	adsStrategies := []domain.BidStrategy{
		domain.BidStrategyAuto,
		domain.BidStrategyManual,
		domain.BidStrategyDynamic,
	}

	for _, strategy := range adsStrategies {
		native, err := adsBiddingFromStrategy(strategy)
		require.NoError(t, err)

		back, err := strategyFromAdsBidding(native)
		require.NoError(t, err)
		assert.Equal(t, strategy, back)
	}

	dspStrategies := []domain.BidStrategy{
		domain.BidStrategyAuto,
		domain.BidStrategyManual,
		domain.BidStrategyTargetCPA,
		domain.BidStrategyTargetROAS,
	}

	for _, strategy := range dspStrategies {
		native, err := dspBidStrategyFromStrategy(strategy)
		require.NoError(t, err)

		back, err := strategyFromDSPBidStrategy(native)
		require.NoError(t, err)
		assert.Equal(t, strategy, back)
	}
}

func TestUnifyAdsCampaign(t *testing.T) {
	endDate := "2024-06-30"
	native := &adsdomain.Campaign{
		CampaignID:      "C001",
		Name:            "Lançamento de verão",
		CampaignType:    adsdomain.TypeSponsoredProducts,
		State:           adsdomain.StateEnabled,
		TargetingType:   "manual",
		BudgetType:      "daily",
		Budget:          150.0,
		CurrencyCode:    "BRL",
		BiddingStrategy: adsdomain.BiddingAutoForSales,
		Keywords:        []string{"óculos de sol"},
		ProductTargets:  []string{"B000TEST01"},
		StartDate:       "2024-01-15",
		EndDate:         &endDate,
		Timezone:        "America/Sao_Paulo",
	}

	unified, err := unifyAdsCampaign(native)
	require.NoError(t, err)

	assert.Equal(t, "C001", unified.CampaignID)
	assert.Equal(t, domain.PlatformAdvertising, unified.Platform)
	assert.Equal(t, domain.CampaignTypeSponsoredProducts, unified.Type)
	assert.Equal(t, domain.CampaignStatusActive, unified.Status)
	assert.Equal(t, domain.BudgetTypeDaily, unified.Budget.Type)
	assert.Equal(t, 150.0, unified.Budget.Amount)
	assert.Equal(t, domain.BidStrategyAuto, unified.BidStrategy)
	assert.Equal(t, []string{"óculos de sol"}, unified.Targeting.Keywords)
	assert.Equal(t, []string{"B000TEST01"}, unified.Targeting.ASINs)
	assert.Empty(t, unified.Targeting.Audiences)
	assert.Equal(t, "2024-01-15", unified.Schedule.StartDate.Format("2006-01-02"))
	require.NotNil(t, unified.Schedule.EndDate)
	assert.Equal(t, "2024-06-30", unified.Schedule.EndDate.Format("2006-01-02"))

	// O registro nativo fica preservado no metadata
	assert.Same(t, native, unified.Metadata.OriginalCampaign)
}

func TestUnifyAdsCampaignUnknownState(t *testing.T) {
	native := &adsdomain.Campaign{
		CampaignID:      "C002",
		CampaignType:    adsdomain.TypeSponsoredBrands,
		State:           "draft",
		BudgetType:      "daily",
		BiddingStrategy: adsdomain.BiddingManual,
	}

	_, err := unifyAdsCampaign(native)
	assert.ErrorIs(t, err, ErrInvalidPlatformMapping)
}

func TestUnifyDSPOrder(t *testing.T) {
	native := &dspdomain.Order{
		OrderID:   "O100",
		Name:      "Display awareness",
		OrderType: dspdomain.OrderTypeVideo,
		Status:    dspdomain.StatusSuspended,
		Budget: dspdomain.Budget{
			Type:     dspdomain.BudgetTypeTotal,
			Amount:   5000.0,
			Currency: "USD",
		},
		BidStrategy:   dspdomain.BidStrategyROASTarget,
		Audiences:     []string{"in-market-eyewear"},
		GeoTargets:    []string{"BR"},
		StartDateTime: "2024-03-01T00:00:00Z",
		Timezone:      "UTC",
	}

	unified, err := unifyDSPOrder(native)
	require.NoError(t, err)

	assert.Equal(t, "O100", unified.CampaignID)
	assert.Equal(t, domain.PlatformDSP, unified.Platform)
	assert.Equal(t, domain.CampaignTypeDSPVideo, unified.Type)
	assert.Equal(t, domain.CampaignStatusPaused, unified.Status)
	assert.Equal(t, domain.BudgetTypeLifetime, unified.Budget.Type)
	assert.Equal(t, domain.BidStrategyTargetROAS, unified.BidStrategy)
	assert.Equal(t, []string{"in-market-eyewear"}, unified.Targeting.Audiences)
	assert.Equal(t, []string{"BR"}, unified.Targeting.Geographic)
	assert.Empty(t, unified.Targeting.Keywords)
	assert.Same(t, native, unified.Metadata.OriginalCampaign)
}

func TestNativeAdsCreateRejectsDSPTargeting(t *testing.T) {
	req := &domain.CreateCampaignRequest{
		Platform:    domain.PlatformAdvertising,
		Name:        "Campanha inválida",
		Type:        domain.CampaignTypeSponsoredProducts,
		BidStrategy: domain.BidStrategyAuto,
		Budget:      domain.Budget{Type: domain.BudgetTypeDaily, Amount: 50},
		Targeting:   domain.Targeting{Audiences: []string{"lookalike"}},
	}

	_, err := nativeAdsCreate(req)
	assert.ErrorIs(t, err, ErrInvalidPlatformMapping)
}

func TestNativeDSPCreateRejectsAdsTargeting(t *testing.T) {
	req := &domain.CreateCampaignRequest{
		Platform:    domain.PlatformDSP,
		Name:        "Order inválida",
		Type:        domain.CampaignTypeDSPDisplay,
		BidStrategy: domain.BidStrategyAuto,
		Budget:      domain.Budget{Type: domain.BudgetTypeDaily, Amount: 50},
		Targeting:   domain.Targeting{Keywords: []string{"óculos"}},
	}

	_, err := nativeDSPCreate(req)
	assert.ErrorIs(t, err, ErrInvalidPlatformMapping)
}

func TestNativeAdsUpdatePartial(t *testing.T) {
	status := domain.CampaignStatusPaused
	updates := &domain.UpdateCampaignRequest{Status: &status}

	native, err := nativeAdsUpdate(updates)
	require.NoError(t, err)

	require.NotNil(t, native.State)
	assert.Equal(t, adsdomain.StatePaused, *native.State)
	assert.Nil(t, native.Name)
	assert.Nil(t, native.Budget)
	assert.Nil(t, native.BiddingStrategy)
}

func TestUnifyAdsMetrics(t *testing.T) {
	metrics := &adsdomain.CampaignMetrics{
		CampaignID:               "C001",
		Impressions:              10000,
		Clicks:                   200,
		Cost:                     100.0,
		AttributedSales14D:       400.0,
		AttributedConversions14D: 20,
	}

	performance := unifyAdsMetrics(metrics)

	assert.Equal(t, int64(10000), performance.Impressions)
	assert.Equal(t, 2.0, performance.CTR)
	assert.Equal(t, 0.5, performance.CPC)
	assert.Equal(t, 10.0, performance.CPM)
	assert.Equal(t, 25.0, performance.ACOS)
	assert.Equal(t, 4.0, performance.ROAS)

	// Métricas exclusivas de DSP zeradas
	assert.Zero(t, performance.ViewableImpressions)
	assert.Zero(t, performance.ConversionRate)
}

func TestUnifyAdsMetricsZeroDivision(t *testing.T) {
	performance := unifyAdsMetrics(&adsdomain.CampaignMetrics{CampaignID: "C002"})

	assert.Zero(t, performance.CTR)
	assert.Zero(t, performance.CPC)
	assert.Zero(t, performance.CPM)
	assert.Zero(t, performance.ACOS)
	assert.Zero(t, performance.ROAS)
}

func TestUnifyDSPMetrics(t *testing.T) {
	metrics := &dspdomain.OrderMetrics{
		OrderID:             "O100",
		Impressions:         50000,
		ViewableImpressions: 42000,
		Clicks:              500,
		TotalCost:           250.0,
		Sales14D:            1000.0,
		Purchases14D:        80,
		VideoCompletions:    3000,
		ConversionRate:      1.6,
		BrandAwarenessLift:  0.12,
	}

	performance := unifyDSPMetrics(metrics)

	assert.Equal(t, int64(42000), performance.ViewableImpressions)
	assert.Equal(t, 4.0, performance.ROAS)
	assert.Equal(t, 1.6, performance.ConversionRate)
	assert.Equal(t, int64(3000), performance.VideoCompletions)

	// ACOS é métrica de sponsored ads e fica zerada para DSP
	assert.Zero(t, performance.ACOS)
}

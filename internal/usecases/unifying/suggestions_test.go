package unifying

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/ads/adsdomain"
	adsmocks "github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/ads/mocks"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/dsp/dspdomain"
	dspmocks "github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/dsp/mocks"
	"github.com/vfg2006/marketplace-ads-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestSuggestionsHighACOS(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAds := adsmocks.NewMockAdsIntegrator(ctrl)
	mockDSP := dspmocks.NewMockDSPIntegrator(ctrl)
	service, _ := newTestService(mockAds, mockDSP)

	mockAds.EXPECT().GetCampaign("C001").Return(adsCampaignFixture("C001"), nil)

	// ACOS 32% (acima do alvo de 30), ROAS 3.13 (acima do alvo de 3),
	// gasto em 64% do budget de 100: só a regra de ACOS dispara
	mockAds.EXPECT().
		GetCampaignPerformance("C001", gomock.Any(), gomock.Any()).
		Return(&adsdomain.CampaignMetrics{
			CampaignID:         "C001",
			Impressions:        10000,
			Clicks:             100,
			Cost:               64.0,
			AttributedSales14D: 200.0,
		}, nil)

	suggestions, err := service.GetOptimizationSuggestions([]string{"C001"})
	require.NoError(t, err)

	require.Len(t, suggestions, 1)
	assert.Equal(t, "C001", suggestions[0].CampaignID)
	assert.Equal(t, domain.SuggestionTypeBid, suggestions[0].Type)
	assert.Equal(t, domain.SuggestionPriorityHigh, suggestions[0].Priority)
	assert.Equal(t, 32.0, suggestions[0].CurrentValue)
	assert.Equal(t, 30.0, suggestions[0].ProjectedValue)
	assert.NotEmpty(t, suggestions[0].ID)
}

func TestSuggestionsLowSpendBudgetRatio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAds := adsmocks.NewMockAdsIntegrator(ctrl)
	mockDSP := dspmocks.NewMockDSPIntegrator(ctrl)
	service, _ := newTestService(mockAds, mockDSP)

	mockAds.EXPECT().GetCampaign("C001").Return(adsCampaignFixture("C001"), nil)

	// ACOS 20%, ROAS 5: só o gasto em 30% do budget de 100 dispara
	mockAds.EXPECT().
		GetCampaignPerformance("C001", gomock.Any(), gomock.Any()).
		Return(&adsdomain.CampaignMetrics{
			CampaignID:         "C001",
			Impressions:        10000,
			Clicks:             100,
			Cost:               30.0,
			AttributedSales14D: 150.0,
		}, nil)

	suggestions, err := service.GetOptimizationSuggestions([]string{"C001"})
	require.NoError(t, err)

	require.Len(t, suggestions, 1)
	assert.Equal(t, domain.SuggestionTypeBudget, suggestions[0].Type)
	assert.Equal(t, domain.SuggestionPriorityLow, suggestions[0].Priority)
	assert.Equal(t, 0.3, suggestions[0].CurrentValue)
	assert.Equal(t, 0.5, suggestions[0].ProjectedValue)
}

func TestSuggestionsLowROASOnDSP(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAds := adsmocks.NewMockAdsIntegrator(ctrl)
	mockDSP := dspmocks.NewMockDSPIntegrator(ctrl)
	service, _ := newTestService(mockAds, mockDSP)

	mockAds.EXPECT().GetCampaign("O100").Return(nil, errors.New("not found"))
	mockDSP.EXPECT().GetOrder("O100").Return(dspOrderFixture("O100"), nil)

	// ROAS 1 no DSP: regra de targeting dispara; a de ACOS nunca
	// dispara em DSP porque a métrica vem zerada
	mockDSP.EXPECT().
		GetOrderMetrics("O100", gomock.Any(), gomock.Any()).
		Return(&dspdomain.OrderMetrics{
			OrderID:     "O100",
			Impressions: 50000,
			Clicks:      500,
			TotalCost:   150.0,
			Sales14D:    150.0,
		}, nil)

	suggestions, err := service.GetOptimizationSuggestions([]string{"O100"})
	require.NoError(t, err)

	require.Len(t, suggestions, 1)
	assert.Equal(t, domain.SuggestionTypeTargeting, suggestions[0].Type)
	assert.Equal(t, domain.SuggestionPriorityMedium, suggestions[0].Priority)
	assert.Equal(t, 1.0, suggestions[0].CurrentValue)
	assert.Equal(t, 3.0, suggestions[0].ProjectedValue)
}

func TestSuggestionsSkipsCampaignWithoutPerformance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAds := adsmocks.NewMockAdsIntegrator(ctrl)
	mockDSP := dspmocks.NewMockDSPIntegrator(ctrl)
	service, _ := newTestService(mockAds, mockDSP)

	mockAds.EXPECT().GetCampaign("C001").Return(adsCampaignFixture("C001"), nil)

	// Performance indisponível: a campanha é pulada, o lote não quebra
	mockAds.EXPECT().
		GetCampaignPerformance("C001", gomock.Any(), gomock.Any()).
		Return(nil, errors.New("report pending"))

	suggestions, err := service.GetOptimizationSuggestions([]string{"C001"})
	require.NoError(t, err)
	assert.Empty(t, suggestions)
}

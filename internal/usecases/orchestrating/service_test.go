package orchestrating

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/ads"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/ads/adsdomain"
	adsmocks "github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/ads/mocks"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/associates"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/brandanalytics"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/catalog"
	catalogmocks "github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/catalog/mocks"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/dsp"
	dspmocks "github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/dsp/mocks"
	"github.com/vfg2006/marketplace-ads-api/internal/config"
	"github.com/vfg2006/marketplace-ads-api/internal/domain"
	"github.com/vfg2006/marketplace-ads-api/pkg/cache"
	"go.uber.org/mock/gomock"
)

func newTestOrchestrator(
	adsService ads.AdsIntegrator,
	dspService dsp.DSPIntegrator,
	catalogService catalog.CatalogIntegrator,
	associatesService associates.AssociatesIntegrator,
	brandAnalyticsService brandanalytics.BrandAnalyticsIntegrator,
) (*Service, *cache.Cache[any]) {
	testCache := cache.New[any](100)

	cfg := &config.Config{
		Cache: config.Cache{
			Capacity:                      100,
			ProductInsightsTTLSeconds:     600,
			MarketplaceInsightsTTLSeconds: 1800,
		},
		Optimization: config.Optimization{LookbackDays: 30},
	}

	return &Service{
		cfg:                   cfg,
		adsService:            adsService,
		dspService:            dspService,
		catalogService:        catalogService,
		associatesService:     associatesService,
		brandAnalyticsService: brandAnalyticsService,
		cache:                 testCache,
	}, testCache
}

func TestInitializeRequiresEnabledProvider(t *testing.T) {
	service, _ := newTestOrchestrator(nil, nil, nil, nil, nil)

	// Nenhum provider habilitado na configuração
	err := service.Initialize()
	assert.ErrorIs(t, err, ErrNoProvidersEnabled)
}

func TestInitializeIdempotent(t *testing.T) {
	service, _ := newTestOrchestrator(nil, nil, nil, nil, nil)
	service.cfg.Ads.Enabled = true

	require.NoError(t, service.Initialize())
	require.NoError(t, service.Initialize())
}

func TestGetHealthStatusRollup(t *testing.T) {
	tests := []struct {
		name     string
		adsErr   error
		dspErr   error
		expected domain.ServiceStatus
	}{
		{
			name:     "todos saudáveis",
			expected: domain.ServiceStatusHealthy,
		},
		{
			name:     "um provider fora",
			dspErr:   errors.New("connection refused"),
			expected: domain.ServiceStatusDegraded,
		},
		{
			name:     "nenhum provider saudável",
			adsErr:   errors.New("timeout"),
			dspErr:   errors.New("timeout"),
			expected: domain.ServiceStatusUnhealthy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAds := adsmocks.NewMockAdsIntegrator(ctrl)
			mockDSP := dspmocks.NewMockDSPIntegrator(ctrl)
			service, _ := newTestOrchestrator(mockAds, mockDSP, nil, nil, nil)

			mockAds.EXPECT().HealthCheck().Return(tt.adsErr)
			mockDSP.EXPECT().HealthCheck().Return(tt.dspErr)

			health := service.GetHealthStatus()

			assert.Equal(t, tt.expected, health.Status)
			assert.Len(t, health.Providers, 5)
			assert.False(t, health.CheckedAt.IsZero())
		})
	}
}

func TestGetHealthStatusDisabledProvidersListed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAds := adsmocks.NewMockAdsIntegrator(ctrl)
	service, _ := newTestOrchestrator(mockAds, nil, nil, nil, nil)

	mockAds.EXPECT().HealthCheck().Return(nil)

	health := service.GetHealthStatus()

	// Providers desabilitados aparecem mas não entram no rollup
	assert.Equal(t, domain.ServiceStatusHealthy, health.Status)

	byName := make(map[string]domain.ProviderHealth)
	for _, p := range health.Providers {
		byName[p.Provider] = p
	}

	assert.Equal(t, domain.ProviderStatusHealthy, byName["ads"].Status)
	assert.Equal(t, domain.ProviderStatusDisabled, byName["dsp"].Status)
	assert.Equal(t, domain.ProviderStatusDisabled, byName["catalog"].Status)
}

func TestGetProductInsightsPartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAds := adsmocks.NewMockAdsIntegrator(ctrl)
	mockCatalog := catalogmocks.NewMockCatalogIntegrator(ctrl)
	service, _ := newTestOrchestrator(mockAds, nil, mockCatalog, nil, nil)

	mockCatalog.EXPECT().
		GetProduct("B000TEST01").
		Return(&catalog.Product{
			ASIN:  "B000TEST01",
			Title: "Óculos de sol polarizado",
			Brand: "Acme",
			Price: 99.9,
		}, nil)

	// Falha no ads deixa só a seção de anúncios ausente
	mockAds.EXPECT().
		GetProductAdMetrics("B000TEST01").
		Return(nil, errors.New("throttled"))

	insights, err := service.GetProductInsights("B000TEST01")
	require.NoError(t, err)

	require.NotNil(t, insights.SPAPIData)
	assert.Equal(t, "Óculos de sol polarizado", insights.SPAPIData.Title)
	assert.Nil(t, insights.AdvertisingData)
	assert.Nil(t, insights.AssociatesData)
	assert.False(t, insights.LastUpdated.IsZero())
}

func TestGetProductInsightsAllProvidersFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAds := adsmocks.NewMockAdsIntegrator(ctrl)
	mockCatalog := catalogmocks.NewMockCatalogIntegrator(ctrl)
	service, _ := newTestOrchestrator(mockAds, nil, mockCatalog, nil, nil)

	mockCatalog.EXPECT().GetProduct("B000TEST01").Return(nil, errors.New("timeout"))
	mockAds.EXPECT().GetProductAdMetrics("B000TEST01").Return(nil, errors.New("timeout"))

	_, err := service.GetProductInsights("B000TEST01")
	assert.ErrorIs(t, err, ErrAllProvidersFailed)
}

func TestGetProductInsightsNoProviders(t *testing.T) {
	service, _ := newTestOrchestrator(nil, nil, nil, nil, nil)

	_, err := service.GetProductInsights("B000TEST01")
	assert.ErrorIs(t, err, ErrNoProvidersEnabled)
}

func TestGetProductInsightsUsesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalog := catalogmocks.NewMockCatalogIntegrator(ctrl)
	service, _ := newTestOrchestrator(nil, nil, mockCatalog, nil, nil)

	mockCatalog.EXPECT().
		GetProduct("B000TEST01").
		Return(&catalog.Product{ASIN: "B000TEST01"}, nil).
		Times(1)

	first, err := service.GetProductInsights("B000TEST01")
	require.NoError(t, err)

	// Segunda chamada dentro do TTL vem do cache
	second, err := service.GetProductInsights("B000TEST01")
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestGetMarketplaceInsights(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAds := adsmocks.NewMockAdsIntegrator(ctrl)
	mockCatalog := catalogmocks.NewMockCatalogIntegrator(ctrl)
	service, _ := newTestOrchestrator(mockAds, nil, mockCatalog, nil, nil)

	mockCatalog.EXPECT().
		GetOrderMetrics("ATVPDKIKX0DER", gomock.Any(), gomock.Any()).
		Return(&catalog.OrderMetrics{
			MarketplaceID: "ATVPDKIKX0DER",
			TotalOrders:   200,
			TotalRevenue:  10000.0,
			UnitsSold:     350,
		}, nil)

	mockAds.EXPECT().
		GetAccountMetrics().
		Return(&adsdomain.AccountMetrics{
			TotalSpend:       2000.0,
			TotalSales:       8000.0,
			TotalImpressions: 500000,
			TotalClicks:      4000,
		}, nil)

	insights, err := service.GetMarketplaceInsights("ATVPDKIKX0DER")
	require.NoError(t, err)

	require.NotNil(t, insights.OrderMetrics)
	assert.Equal(t, 50.0, insights.OrderMetrics.AverageOrderValue)

	require.NotNil(t, insights.AdvertisingMetrics)
	assert.Equal(t, 25.0, insights.AdvertisingMetrics.AverageACOS)
}

func TestSearchProductsRequiresCatalog(t *testing.T) {
	service, _ := newTestOrchestrator(nil, nil, nil, nil, nil)

	_, err := service.SearchProducts("óculos")
	assert.ErrorIs(t, err, ErrProviderNotConfigured)
}

func TestSearchProductsEnrichmentFailureSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAds := adsmocks.NewMockAdsIntegrator(ctrl)
	mockCatalog := catalogmocks.NewMockCatalogIntegrator(ctrl)
	service, _ := newTestOrchestrator(mockAds, nil, mockCatalog, nil, nil)

	mockCatalog.EXPECT().
		SearchProducts("óculos").
		Return(&catalog.SearchResult{
			Items: []catalog.Product{
				{ASIN: "B000TEST01", Title: "Óculos A"},
				{ASIN: "B000TEST02", Title: "Óculos B"},
			},
			TotalCount: 2,
		}, nil)

	mockAds.EXPECT().
		GetProductAdMetrics("B000TEST01").
		Return(&adsdomain.ProductAdMetrics{
			ASIN:            "B000TEST01",
			ActiveCampaigns: 3,
			Spend:           100.0,
			Sales:           400.0,
		}, nil)

	// Enriquecimento falha para o segundo item: a busca segue
	mockAds.EXPECT().
		GetProductAdMetrics("B000TEST02").
		Return(nil, errors.New("throttled"))

	result, err := service.SearchProducts("óculos")
	require.NoError(t, err)

	require.Len(t, result.Results, 2)
	require.NotNil(t, result.Results[0].Advertising)
	assert.Equal(t, 25.0, result.Results[0].Advertising.ACOS)
	assert.Nil(t, result.Results[1].Advertising)

	assert.Contains(t, result.Sources, "catalog")
	assert.Contains(t, result.Sources, "ads")
}

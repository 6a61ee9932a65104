package unifying

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/ads"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/ads/adsdomain"
	adsmocks "github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/ads/mocks"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/dsp"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/dsp/dspdomain"
	dspmocks "github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/dsp/mocks"
	"github.com/vfg2006/marketplace-ads-api/internal/config"
	"github.com/vfg2006/marketplace-ads-api/internal/domain"
	"github.com/vfg2006/marketplace-ads-api/pkg/cache"
	"go.uber.org/mock/gomock"
)

func newTestService(adsService ads.AdsIntegrator, dspService dsp.DSPIntegrator) (*Service, *cache.Cache[any]) {
	testCache := cache.New[any](100)

	cfg := &config.Config{
		Cache: config.Cache{
			Capacity:               100,
			CampaignTTLSeconds:     300,
			CampaignListTTLSeconds: 120,
		},
		Optimization: config.Optimization{
			TargetACOS:          30.0,
			TargetROAS:          3.0,
			MinSpendBudgetRatio: 0.5,
			LookbackDays:        30,
		},
	}

	return &Service{
		cfg:        cfg,
		adsService: adsService,
		dspService: dspService,
		cache:      testCache,
	}, testCache
}

func adsCampaignFixture(id string) *adsdomain.Campaign {
	return &adsdomain.Campaign{
		CampaignID:      id,
		Name:            "Campanha " + id,
		CampaignType:    adsdomain.TypeSponsoredProducts,
		State:           adsdomain.StateEnabled,
		TargetingType:   "auto",
		BudgetType:      "daily",
		Budget:          100.0,
		CurrencyCode:    "BRL",
		BiddingStrategy: adsdomain.BiddingAutoForSales,
		StartDate:       "2024-01-01",
		Timezone:        "America/Sao_Paulo",
	}
}

func dspOrderFixture(id string) *dspdomain.Order {
	return &dspdomain.Order{
		OrderID:   id,
		Name:      "Order " + id,
		OrderType: dspdomain.OrderTypeDisplay,
		Status:    dspdomain.StatusActive,
		Budget: dspdomain.Budget{
			Type:     dspdomain.BudgetTypeDaily,
			Amount:   200.0,
			Currency: "USD",
		},
		BidStrategy:   dspdomain.BidStrategyAutomatic,
		StartDateTime: "2024-01-01T00:00:00Z",
		Timezone:      "UTC",
	}
}

func TestGetAllCampaignsMergesPlatforms(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAds := adsmocks.NewMockAdsIntegrator(ctrl)
	mockDSP := dspmocks.NewMockDSPIntegrator(ctrl)
	service, _ := newTestService(mockAds, mockDSP)

	mockAds.EXPECT().
		GetCampaigns(gomock.Any()).
		Return(&adsdomain.CampaignList{
			Campaigns:  []adsdomain.Campaign{*adsCampaignFixture("C001")},
			TotalCount: 1,
		}, nil)

	mockDSP.EXPECT().
		GetOrders(gomock.Any()).
		Return(&dspdomain.OrderList{
			Orders:     []dspdomain.Order{*dspOrderFixture("O100")},
			TotalCount: 1,
		}, nil)

	campaigns, err := service.GetAllCampaigns(nil)
	require.NoError(t, err)
	require.Len(t, campaigns, 2)

	// Ordenação estável: ADVERTISING antes de DSP
	assert.Equal(t, domain.PlatformAdvertising, campaigns[0].Platform)
	assert.Equal(t, domain.PlatformDSP, campaigns[1].Platform)
}

func TestGetAllCampaignsPartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAds := adsmocks.NewMockAdsIntegrator(ctrl)
	mockDSP := dspmocks.NewMockDSPIntegrator(ctrl)
	service, _ := newTestService(mockAds, mockDSP)

	mockAds.EXPECT().
		GetCampaigns(gomock.Any()).
		Return(&adsdomain.CampaignList{
			Campaigns:  []adsdomain.Campaign{*adsCampaignFixture("C001")},
			TotalCount: 1,
		}, nil)

	// Falha no DSP não derruba a listagem: a plataforma é omitida
	mockDSP.EXPECT().
		GetOrders(gomock.Any()).
		Return(nil, errors.New("timeout"))

	campaigns, err := service.GetAllCampaigns(nil)
	require.NoError(t, err)
	require.Len(t, campaigns, 1)
	assert.Equal(t, "C001", campaigns[0].CampaignID)
}

func TestGetAllCampaignsUsesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAds := adsmocks.NewMockAdsIntegrator(ctrl)
	mockDSP := dspmocks.NewMockDSPIntegrator(ctrl)
	service, _ := newTestService(mockAds, mockDSP)

	mockAds.EXPECT().
		GetCampaigns(gomock.Any()).
		Return(&adsdomain.CampaignList{
			Campaigns:  []adsdomain.Campaign{*adsCampaignFixture("C001")},
			TotalCount: 1,
		}, nil).
		Times(1)

	mockDSP.EXPECT().
		GetOrders(gomock.Any()).
		Return(&dspdomain.OrderList{}, nil).
		Times(1)

	first, err := service.GetAllCampaigns(nil)
	require.NoError(t, err)

	// Segunda chamada com os mesmos filtros vem do cache
	second, err := service.GetAllCampaigns(nil)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGetAllCampaignsAppliesFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAds := adsmocks.NewMockAdsIntegrator(ctrl)
	mockDSP := dspmocks.NewMockDSPIntegrator(ctrl)
	service, _ := newTestService(mockAds, mockDSP)

	paused := *adsCampaignFixture("C002")
	paused.State = adsdomain.StatePaused

	mockAds.EXPECT().
		GetCampaigns(gomock.Any()).
		Return(&adsdomain.CampaignList{
			Campaigns:  []adsdomain.Campaign{*adsCampaignFixture("C001"), paused},
			TotalCount: 2,
		}, nil)

	mockDSP.EXPECT().
		GetOrders(gomock.Any()).
		Return(&dspdomain.OrderList{
			Orders:     []dspdomain.Order{*dspOrderFixture("O100")},
			TotalCount: 1,
		}, nil)

	campaigns, err := service.GetAllCampaigns(&domain.CampaignFilters{
		Statuses: []domain.CampaignStatus{domain.CampaignStatusActive},
	})
	require.NoError(t, err)

	// O filtro unificado se aplica igual às duas plataformas
	require.Len(t, campaigns, 2)
	for _, campaign := range campaigns {
		assert.Equal(t, domain.CampaignStatusActive, campaign.Status)
	}
}

func TestGetCampaignProbesAdsFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAds := adsmocks.NewMockAdsIntegrator(ctrl)
	mockDSP := dspmocks.NewMockDSPIntegrator(ctrl)
	service, _ := newTestService(mockAds, mockDSP)

	// Ads não conhece o ID, a sondagem segue para o DSP
	mockAds.EXPECT().
		GetCampaign("O100").
		Return(nil, errors.New("not found"))

	mockDSP.EXPECT().
		GetOrder("O100").
		Return(dspOrderFixture("O100"), nil)

	campaign, err := service.GetCampaign("O100", nil)
	require.NoError(t, err)
	assert.Equal(t, domain.PlatformDSP, campaign.Platform)
}

func TestGetCampaignWithHintSkipsProbe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAds := adsmocks.NewMockAdsIntegrator(ctrl)
	mockDSP := dspmocks.NewMockDSPIntegrator(ctrl)
	service, _ := newTestService(mockAds, mockDSP)

	// Com hint, só a plataforma indicada é consultada
	mockDSP.EXPECT().
		GetOrder("O100").
		Return(dspOrderFixture("O100"), nil)

	hint := domain.PlatformDSP
	campaign, err := service.GetCampaign("O100", &hint)
	require.NoError(t, err)
	assert.Equal(t, "O100", campaign.CampaignID)
}

func TestGetCampaignNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAds := adsmocks.NewMockAdsIntegrator(ctrl)
	mockDSP := dspmocks.NewMockDSPIntegrator(ctrl)
	service, _ := newTestService(mockAds, mockDSP)

	mockAds.EXPECT().GetCampaign("X999").Return(nil, errors.New("not found"))
	mockDSP.EXPECT().GetOrder("X999").Return(nil, errors.New("not found"))

	_, err := service.GetCampaign("X999", nil)
	assert.ErrorIs(t, err, ErrCampaignNotFound)
}

func TestGetCampaignProviderNotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDSP := dspmocks.NewMockDSPIntegrator(ctrl)
	service, _ := newTestService(nil, mockDSP)

	hint := domain.PlatformAdvertising
	_, err := service.GetCampaign("C001", &hint)
	assert.ErrorIs(t, err, ErrProviderNotConfigured)
}

func TestCreateCampaignDSP(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAds := adsmocks.NewMockAdsIntegrator(ctrl)
	mockDSP := dspmocks.NewMockDSPIntegrator(ctrl)
	service, _ := newTestService(mockAds, mockDSP)

	mockDSP.EXPECT().
		CreateOrder(gomock.Any()).
		DoAndReturn(func(req dspdomain.CreateOrderRequest) (*dspdomain.Order, error) {
			assert.Equal(t, dspdomain.OrderTypeDisplay, req.OrderType)
			assert.Equal(t, dspdomain.BidStrategyCPATarget, req.BidStrategy)
			assert.Equal(t, dspdomain.BudgetTypeTotal, req.Budget.Type)

			order := dspOrderFixture("O200")
			order.BidStrategy = dspdomain.BidStrategyCPATarget
			order.Budget.Type = dspdomain.BudgetTypeTotal
			return order, nil
		})

	campaign, err := service.CreateCampaign(&domain.CreateCampaignRequest{
		Platform:    domain.PlatformDSP,
		Name:        "Nova order",
		Type:        domain.CampaignTypeDSPDisplay,
		Budget:      domain.Budget{Type: domain.BudgetTypeLifetime, Amount: 5000, Currency: "USD"},
		BidStrategy: domain.BidStrategyTargetCPA,
		Targeting:   domain.Targeting{Audiences: []string{"in-market"}},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PlatformDSP, campaign.Platform)
	assert.Equal(t, domain.BidStrategyTargetCPA, campaign.BidStrategy)
}

func TestCreateCampaignInvalidMappingSkipsProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAds := adsmocks.NewMockAdsIntegrator(ctrl)
	mockDSP := dspmocks.NewMockDSPIntegrator(ctrl)
	service, _ := newTestService(mockAds, mockDSP)

	// DYNAMIC não existe no DSP: o erro acontece antes de qualquer
	// chamada ao provider (nenhum EXPECT configurado)
	_, err := service.CreateCampaign(&domain.CreateCampaignRequest{
		Platform:    domain.PlatformDSP,
		Name:        "Order inválida",
		Type:        domain.CampaignTypeDSPDisplay,
		Budget:      domain.Budget{Type: domain.BudgetTypeDaily, Amount: 100},
		BidStrategy: domain.BidStrategyDynamic,
	})
	assert.ErrorIs(t, err, ErrInvalidPlatformMapping)
}

func TestUpdateCampaignInvalidatesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAds := adsmocks.NewMockAdsIntegrator(ctrl)
	mockDSP := dspmocks.NewMockDSPIntegrator(ctrl)
	service, testCache := newTestService(mockAds, mockDSP)

	// Popula o cache como se leituras anteriores tivessem acontecido
	testCache.Set(campaignCacheKeyPrefix+"C001", &domain.UnifiedCampaign{CampaignID: "C001"}, 5*time.Minute)
	testCache.Set(campaignListCacheKeyPrefix+"abc", []*domain.UnifiedCampaign{}, 2*time.Minute)

	updated := adsCampaignFixture("C001")
	updated.State = adsdomain.StatePaused

	mockAds.EXPECT().
		UpdateCampaign("C001", gomock.Any()).
		DoAndReturn(func(_ string, req adsdomain.UpdateCampaignRequest) (*adsdomain.Campaign, error) {
			require.NotNil(t, req.State)
			assert.Equal(t, adsdomain.StatePaused, *req.State)
			return updated, nil
		})

	hint := domain.PlatformAdvertising
	status := domain.CampaignStatusPaused
	campaign, err := service.UpdateCampaign("C001", &domain.UpdateCampaignRequest{Status: &status}, &hint)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignStatusPaused, campaign.Status)

	// A entrada da campanha e as listagens saem do cache
	assert.False(t, testCache.Has(campaignCacheKeyPrefix+"C001"))
	assert.False(t, testCache.Has(campaignListCacheKeyPrefix+"abc"))
}

func TestUpdateCampaignInvalidatesCacheOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAds := adsmocks.NewMockAdsIntegrator(ctrl)
	mockDSP := dspmocks.NewMockDSPIntegrator(ctrl)
	service, testCache := newTestService(mockAds, mockDSP)

	testCache.Set(campaignCacheKeyPrefix+"C001", &domain.UnifiedCampaign{CampaignID: "C001"}, 5*time.Minute)

	mockAds.EXPECT().
		UpdateCampaign("C001", gomock.Any()).
		Return(nil, errors.New("falha intermitente"))

	hint := domain.PlatformAdvertising
	status := domain.CampaignStatusPaused
	_, err := service.UpdateCampaign("C001", &domain.UpdateCampaignRequest{Status: &status}, &hint)
	require.Error(t, err)

	var providerErr *ProviderCallError
	assert.ErrorAs(t, err, &providerErr)

	// Não dá para saber se o provider aplicou a mutação: a invalidação
	// é incondicional
	assert.False(t, testCache.Has(campaignCacheKeyPrefix+"C001"))
}

func TestArchiveCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAds := adsmocks.NewMockAdsIntegrator(ctrl)
	mockDSP := dspmocks.NewMockDSPIntegrator(ctrl)
	service, _ := newTestService(mockAds, mockDSP)

	mockDSP.EXPECT().ArchiveOrder("O100").Return(nil)

	hint := domain.PlatformDSP
	err := service.ArchiveCampaign("O100", &hint)
	assert.NoError(t, err)
}

func TestBulkOperationAccountsEveryID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAds := adsmocks.NewMockAdsIntegrator(ctrl)
	mockDSP := dspmocks.NewMockDSPIntegrator(ctrl)
	service, _ := newTestService(mockAds, mockDSP)

	// C001 e C002 pertencem ao ads; X999 não existe em lugar nenhum
	for _, id := range []string{"C001", "C002"} {
		id := id
		mockAds.EXPECT().GetCampaign(id).Return(adsCampaignFixture(id), nil)

		paused := adsCampaignFixture(id)
		paused.State = adsdomain.StatePaused
		mockAds.EXPECT().UpdateCampaign(id, gomock.Any()).Return(paused, nil)
	}

	mockAds.EXPECT().GetCampaign("X999").Return(nil, errors.New("not found"))
	mockDSP.EXPECT().GetOrder("X999").Return(nil, errors.New("not found"))

	result, err := service.BulkOperation(&domain.BulkOperationRequest{
		CampaignIDs: []string{"C001", "C002", "X999"},
		Operation:   domain.BulkOperationPause,
	})
	require.NoError(t, err)

	// Cada ID de entrada aparece em exatamente uma das listas
	assert.ElementsMatch(t, []string{"C001", "C002"}, result.Successful)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, "X999", result.Failed[0].CampaignID)
	assert.Equal(t, 3, len(result.Successful)+len(result.Failed))
}

func TestBulkOperationUpdateBudgetRequiresParams(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAds := adsmocks.NewMockAdsIntegrator(ctrl)
	mockDSP := dspmocks.NewMockDSPIntegrator(ctrl)
	service, _ := newTestService(mockAds, mockDSP)

	result, err := service.BulkOperation(&domain.BulkOperationRequest{
		CampaignIDs: []string{"C001"},
		Operation:   domain.BulkOperationUpdateBudget,
	})
	require.NoError(t, err)

	require.Len(t, result.Failed, 1)
	assert.Empty(t, result.Successful)
}

func TestGetCampaignPerformanceDSP(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAds := adsmocks.NewMockAdsIntegrator(ctrl)
	mockDSP := dspmocks.NewMockDSPIntegrator(ctrl)
	service, _ := newTestService(mockAds, mockDSP)

	mockDSP.EXPECT().
		GetOrderMetrics("O100", gomock.Any(), gomock.Any()).
		Return(&dspdomain.OrderMetrics{
			OrderID:     "O100",
			Impressions: 1000,
			Clicks:      10,
			TotalCost:   50.0,
			Sales14D:    200.0,
		}, nil)

	hint := domain.PlatformDSP
	performance, err := service.GetCampaignPerformance("O100", domain.DateRange{}, &hint)
	require.NoError(t, err)

	assert.Equal(t, 4.0, performance.ROAS)
	assert.Zero(t, performance.ACOS)
}

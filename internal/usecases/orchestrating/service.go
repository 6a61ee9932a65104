package orchestrating

import (
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/ads"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/associates"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/brandanalytics"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/catalog"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/dsp"
	"github.com/vfg2006/marketplace-ads-api/internal/config"
	"github.com/vfg2006/marketplace-ads-api/internal/domain"
	"github.com/vfg2006/marketplace-ads-api/pkg/cache"
)

const (
	productInsightsCacheKeyPrefix     = "insights:product:"
	marketplaceInsightsCacheKeyPrefix = "insights:marketplace:"
)

// Orchestrator coordena consultas que atravessam mais de um provider,
// tolerando falha parcial: cada seção do agregado vem do provider que
// respondeu, as demais ficam ausentes
type Orchestrator interface {
	Initialize() error
	GetHealthStatus() *domain.ServiceHealth
	GetProductInsights(asin string) (*domain.ProductInsights, error)
	GetMarketplaceInsights(marketplaceID string) (*domain.MarketplaceInsights, error)
	SearchProducts(query string) (*domain.ProductSearchResult, error)
}

type Service struct {
	cfg                   *config.Config
	adsService            ads.AdsIntegrator
	dspService            dsp.DSPIntegrator
	catalogService        catalog.CatalogIntegrator
	associatesService     associates.AssociatesIntegrator
	brandAnalyticsService brandanalytics.BrandAnalyticsIntegrator
	cache                 *cache.Cache[any]

	initMutex   sync.Mutex
	initialized bool
}

// NewService monta o orquestrador. Integrators de providers
// desabilitados chegam nil e as seções correspondentes dos agregados
// ficam ausentes.
func NewService(
	cfg *config.Config,
	adsService ads.AdsIntegrator,
	dspService dsp.DSPIntegrator,
	catalogService catalog.CatalogIntegrator,
	associatesService associates.AssociatesIntegrator,
	brandAnalyticsService brandanalytics.BrandAnalyticsIntegrator,
	cache *cache.Cache[any],
) *Service {
	return &Service{
		cfg:                   cfg,
		adsService:            adsService,
		dspService:            dspService,
		catalogService:        catalogService,
		associatesService:     associatesService,
		brandAnalyticsService: brandAnalyticsService,
		cache:                 cache,
	}
}

// Initialize valida a configuração dos providers. É idempotente:
// chamadas repetidas depois da primeira bem-sucedida são no-op.
func (s *Service) Initialize() error {
	s.initMutex.Lock()
	defer s.initMutex.Unlock()

	if s.initialized {
		return nil
	}

	enabled := s.cfg.EnabledProviders()
	if len(enabled) == 0 {
		return ErrNoProvidersEnabled
	}

	logrus.WithField("providers", enabled).Info("orchestrating: providers habilitados")

	s.initialized = true

	return nil
}

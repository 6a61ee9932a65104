package unifying

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strings"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/ads"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/ads/adsdomain"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/dsp"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/dsp/dspdomain"
	"github.com/vfg2006/marketplace-ads-api/internal/config"
	"github.com/vfg2006/marketplace-ads-api/internal/domain"
	"github.com/vfg2006/marketplace-ads-api/pkg/cache"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	campaignCacheKeyPrefix     = "campaign:"
	campaignListCacheKeyPrefix = "campaigns:list:"
)

// Unifier é a engine de unificação de campanhas: apresenta sponsored
// ads e DSP como um único modelo e roteia cada operação para o provider
// correto
type Unifier interface {
	GetAllCampaigns(filters *domain.CampaignFilters) ([]*domain.UnifiedCampaign, error)
	GetCampaign(campaignID string, platformHint *domain.Platform) (*domain.UnifiedCampaign, error)
	CreateCampaign(req *domain.CreateCampaignRequest) (*domain.UnifiedCampaign, error)
	UpdateCampaign(campaignID string, updates *domain.UpdateCampaignRequest, platformHint *domain.Platform) (*domain.UnifiedCampaign, error)
	ArchiveCampaign(campaignID string, platformHint *domain.Platform) error
	BulkOperation(req *domain.BulkOperationRequest) (*domain.BulkOperationResult, error)
	GetCampaignPerformance(campaignID string, dateRange domain.DateRange, platformHint *domain.Platform) (*domain.UnifiedCampaignPerformance, error)
	GetOptimizationSuggestions(campaignIDs []string) ([]*domain.Suggestion, error)
}

type Service struct {
	cfg        *config.Config
	adsService ads.AdsIntegrator
	dspService dsp.DSPIntegrator
	cache      *cache.Cache[any]
}

// NewService monta a engine. Os integrators de plataformas
// desabilitadas chegam nil; as operações devolvem
// ErrProviderNotConfigured ao alcançá-las.
func NewService(
	cfg *config.Config,
	adsService ads.AdsIntegrator,
	dspService dsp.DSPIntegrator,
	cache *cache.Cache[any],
) Unifier {
	return &Service{
		cfg:        cfg,
		adsService: adsService,
		dspService: dspService,
		cache:      cache,
	}
}

// GetAllCampaigns lista as campanhas de todas as plataformas
// habilitadas em paralelo. Falha de um provider rebaixa a resposta para
// parcial (a plataforma é omitida), nunca derruba a listagem inteira.
func (s *Service) GetAllCampaigns(filters *domain.CampaignFilters) ([]*domain.UnifiedCampaign, error) {
	key := listCacheKey(filters)
	if cached, ok := s.cache.Get(key); ok {
		if campaigns, ok := cached.([]*domain.UnifiedCampaign); ok {
			return campaigns, nil
		}
	}

	unified := make([]*domain.UnifiedCampaign, 0)
	mutex := sync.Mutex{}
	wg := sync.WaitGroup{}

	if s.adsService != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()

			list, err := s.adsService.GetCampaigns(adsdomain.CampaignFilter{})
			if err != nil {
				logrus.WithError(err).Warn("unifying: falha ao listar campanhas de ads, plataforma omitida da resposta")
				return
			}

			for i := range list.Campaigns {
				campaign, err := unifyAdsCampaign(&list.Campaigns[i])
				if err != nil {
					logrus.WithFields(logrus.Fields{
						"campaign_id": list.Campaigns[i].CampaignID,
						"error":       err.Error(),
					}).Warn("unifying: campanha de ads com valor nativo não mapeável, omitida")
					continue
				}

				mutex.Lock()
				unified = append(unified, campaign)
				mutex.Unlock()
			}
		}()
	}

	if s.dspService != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()

			list, err := s.dspService.GetOrders(dspdomain.OrderFilter{})
			if err != nil {
				logrus.WithError(err).Warn("unifying: falha ao listar orders de DSP, plataforma omitida da resposta")
				return
			}

			for i := range list.Orders {
				campaign, err := unifyDSPOrder(&list.Orders[i])
				if err != nil {
					logrus.WithFields(logrus.Fields{
						"order_id": list.Orders[i].OrderID,
						"error":    err.Error(),
					}).Warn("unifying: order de DSP com valor nativo não mapeável, omitida")
					continue
				}

				mutex.Lock()
				unified = append(unified, campaign)
				mutex.Unlock()
			}
		}()
	}

	wg.Wait()

	filtered := applyFilters(unified, filters)

	// Ordenação estável para a resposta não depender de qual goroutine
	// terminou primeiro
	sort.Slice(filtered, func(i, j int) bool {
		if filtered[i].Platform != filtered[j].Platform {
			return filtered[i].Platform < filtered[j].Platform
		}
		return filtered[i].CampaignID < filtered[j].CampaignID
	})

	s.cache.Set(key, filtered, time.Duration(s.cfg.Cache.CampaignListTTLSeconds)*time.Second)

	return filtered, nil
}

// GetCampaign resolve uma campanha individual. Com hint de plataforma,
// só o provider indicado é consultado; sem hint, ads e DSP são sondados
// em sequência e a primeira resposta vence.
func (s *Service) GetCampaign(campaignID string, platformHint *domain.Platform) (*domain.UnifiedCampaign, error) {
	key := campaignCacheKeyPrefix + campaignID
	if cached, ok := s.cache.Get(key); ok {
		if campaign, ok := cached.(*domain.UnifiedCampaign); ok {
			return campaign, nil
		}
	}

	campaign, err := s.fetchCampaign(campaignID, platformHint)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, campaign, time.Duration(s.cfg.Cache.CampaignTTLSeconds)*time.Second)

	return campaign, nil
}

func (s *Service) fetchCampaign(campaignID string, platformHint *domain.Platform) (*domain.UnifiedCampaign, error) {
	if platformHint != nil {
		switch *platformHint {
		case domain.PlatformAdvertising:
			if s.adsService == nil {
				return nil, ErrProviderNotConfigured
			}

			native, err := s.adsService.GetCampaign(campaignID)
			if err != nil {
				return nil, fmt.Errorf("%w: %s em ads", ErrCampaignNotFound, campaignID)
			}

			return unifyAdsCampaign(native)
		case domain.PlatformDSP:
			if s.dspService == nil {
				return nil, ErrProviderNotConfigured
			}

			native, err := s.dspService.GetOrder(campaignID)
			if err != nil {
				return nil, fmt.Errorf("%w: %s em DSP", ErrCampaignNotFound, campaignID)
			}

			return unifyDSPOrder(native)
		default:
			return nil, ErrProviderNotConfigured
		}
	}

	if s.adsService != nil {
		if native, err := s.adsService.GetCampaign(campaignID); err == nil {
			return unifyAdsCampaign(native)
		}
	}

	if s.dspService != nil {
		if native, err := s.dspService.GetOrder(campaignID); err == nil {
			return unifyDSPOrder(native)
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrCampaignNotFound, campaignID)
}

// resolvePlatform descobre a qual plataforma a campanha pertence,
// sondando na mesma ordem da leitura
func (s *Service) resolvePlatform(campaignID string, platformHint *domain.Platform) (domain.Platform, error) {
	if platformHint != nil {
		return *platformHint, nil
	}

	if s.adsService != nil {
		if _, err := s.adsService.GetCampaign(campaignID); err == nil {
			return domain.PlatformAdvertising, nil
		}
	}

	if s.dspService != nil {
		if _, err := s.dspService.GetOrder(campaignID); err == nil {
			return domain.PlatformDSP, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrCampaignNotFound, campaignID)
}

// CreateCampaign cria a campanha na plataforma indicada na requisição.
// Toda falha de mapeamento acontece antes de qualquer chamada ao
// provider.
func (s *Service) CreateCampaign(req *domain.CreateCampaignRequest) (*domain.UnifiedCampaign, error) {
	defer s.invalidateListings()

	switch req.Platform {
	case domain.PlatformAdvertising:
		if s.adsService == nil {
			return nil, ErrProviderNotConfigured
		}

		nativeReq, err := nativeAdsCreate(req)
		if err != nil {
			return nil, err
		}

		native, err := s.adsService.CreateCampaign(*nativeReq)
		if err != nil {
			return nil, NewProviderCallError("ads", "create_campaign", err)
		}

		return unifyAdsCampaign(native)
	case domain.PlatformDSP:
		if s.dspService == nil {
			return nil, ErrProviderNotConfigured
		}

		nativeReq, err := nativeDSPCreate(req)
		if err != nil {
			return nil, err
		}

		native, err := s.dspService.CreateOrder(*nativeReq)
		if err != nil {
			return nil, NewProviderCallError("dsp", "create_order", err)
		}

		return unifyDSPOrder(native)
	default:
		return nil, ErrProviderNotConfigured
	}
}

// UpdateCampaign aplica uma atualização parcial. A entrada da campanha
// no cache é invalidada incondicionalmente na saída, com sucesso ou
// falha: não dá para saber se o provider aplicou a mutação antes de
// falhar.
func (s *Service) UpdateCampaign(
	campaignID string,
	updates *domain.UpdateCampaignRequest,
	platformHint *domain.Platform,
) (*domain.UnifiedCampaign, error) {
	defer s.invalidateCampaign(campaignID)

	platform, err := s.resolvePlatform(campaignID, platformHint)
	if err != nil {
		return nil, err
	}

	switch platform {
	case domain.PlatformAdvertising:
		if s.adsService == nil {
			return nil, ErrProviderNotConfigured
		}

		nativeReq, err := nativeAdsUpdate(updates)
		if err != nil {
			return nil, err
		}

		native, err := s.adsService.UpdateCampaign(campaignID, *nativeReq)
		if err != nil {
			return nil, NewProviderCallError("ads", "update_campaign", err)
		}

		return unifyAdsCampaign(native)
	case domain.PlatformDSP:
		if s.dspService == nil {
			return nil, ErrProviderNotConfigured
		}

		nativeReq, err := nativeDSPUpdate(updates)
		if err != nil {
			return nil, err
		}

		native, err := s.dspService.UpdateOrder(campaignID, *nativeReq)
		if err != nil {
			return nil, NewProviderCallError("dsp", "update_order", err)
		}

		return unifyDSPOrder(native)
	default:
		return nil, ErrProviderNotConfigured
	}
}

// ArchiveCampaign arquiva a campanha na plataforma dona dela
func (s *Service) ArchiveCampaign(campaignID string, platformHint *domain.Platform) error {
	defer s.invalidateCampaign(campaignID)

	platform, err := s.resolvePlatform(campaignID, platformHint)
	if err != nil {
		return err
	}

	switch platform {
	case domain.PlatformAdvertising:
		if s.adsService == nil {
			return ErrProviderNotConfigured
		}

		if err := s.adsService.ArchiveCampaign(campaignID); err != nil {
			return NewProviderCallError("ads", "archive_campaign", err)
		}

		return nil
	case domain.PlatformDSP:
		if s.dspService == nil {
			return ErrProviderNotConfigured
		}

		if err := s.dspService.ArchiveOrder(campaignID); err != nil {
			return NewProviderCallError("dsp", "archive_order", err)
		}

		return nil
	default:
		return ErrProviderNotConfigured
	}
}

// BulkOperation aplica a mesma operação a cada campanha de forma
// independente: falha em uma não interrompe as demais, e o resultado
// contabiliza cada id exatamente uma vez
func (s *Service) BulkOperation(req *domain.BulkOperationRequest) (*domain.BulkOperationResult, error) {
	result := &domain.BulkOperationResult{
		Successful: make([]string, 0, len(req.CampaignIDs)),
		Failed:     make([]domain.BulkFailure, 0),
	}

	for _, campaignID := range req.CampaignIDs {
		if err := s.applyBulkOperation(campaignID, req); err != nil {
			result.Failed = append(result.Failed, domain.BulkFailure{
				CampaignID: campaignID,
				Error:      err.Error(),
			})
			continue
		}

		result.Successful = append(result.Successful, campaignID)
	}

	logrus.WithFields(logrus.Fields{
		"operation":  req.Operation,
		"total":      len(req.CampaignIDs),
		"successful": len(result.Successful),
		"failed":     len(result.Failed),
	}).Info("unifying: operação em lote concluída")

	return result, nil
}

func (s *Service) applyBulkOperation(campaignID string, req *domain.BulkOperationRequest) error {
	switch req.Operation {
	case domain.BulkOperationPause:
		status := domain.CampaignStatusPaused
		_, err := s.UpdateCampaign(campaignID, &domain.UpdateCampaignRequest{Status: &status}, nil)
		return err
	case domain.BulkOperationActivate:
		status := domain.CampaignStatusActive
		_, err := s.UpdateCampaign(campaignID, &domain.UpdateCampaignRequest{Status: &status}, nil)
		return err
	case domain.BulkOperationArchive:
		return s.ArchiveCampaign(campaignID, nil)
	case domain.BulkOperationUpdateBudget:
		if req.Params == nil || req.Params.Budget == nil {
			return fmt.Errorf("params.budget é obrigatório para %s", domain.BulkOperationUpdateBudget)
		}

		_, err := s.UpdateCampaign(campaignID, &domain.UpdateCampaignRequest{Budget: req.Params.Budget}, nil)
		return err
	default:
		return fmt.Errorf("%w: %s", ErrUnknownBulkOperation, req.Operation)
	}
}

// GetCampaignPerformance busca o relatório nativo da plataforma dona da
// campanha e o normaliza para o formato unificado
func (s *Service) GetCampaignPerformance(
	campaignID string,
	dateRange domain.DateRange,
	platformHint *domain.Platform,
) (*domain.UnifiedCampaignPerformance, error) {
	platform, err := s.resolvePlatform(campaignID, platformHint)
	if err != nil {
		return nil, err
	}

	switch platform {
	case domain.PlatformAdvertising:
		if s.adsService == nil {
			return nil, ErrProviderNotConfigured
		}

		metrics, err := s.adsService.GetCampaignPerformance(campaignID, dateRange.StartDate, dateRange.EndDate)
		if err != nil {
			return nil, NewProviderCallError("ads", "get_campaign_performance", err)
		}

		return unifyAdsMetrics(metrics), nil
	case domain.PlatformDSP:
		if s.dspService == nil {
			return nil, ErrProviderNotConfigured
		}

		metrics, err := s.dspService.GetOrderMetrics(campaignID, dateRange.StartDate, dateRange.EndDate)
		if err != nil {
			return nil, NewProviderCallError("dsp", "get_order_metrics", err)
		}

		return unifyDSPMetrics(metrics), nil
	default:
		return nil, ErrProviderNotConfigured
	}
}

func (s *Service) invalidateCampaign(campaignID string) {
	s.cache.Delete(campaignCacheKeyPrefix + campaignID)
	s.cache.DeletePrefix(campaignListCacheKeyPrefix)
}

func (s *Service) invalidateListings() {
	s.cache.DeletePrefix(campaignListCacheKeyPrefix)
}

// listCacheKey deriva a chave de cache de uma listagem a partir dos
// filtros serializados. Filtro nulo e filtro vazio compartilham chave.
func listCacheKey(filters *domain.CampaignFilters) string {
	if filters == nil {
		filters = &domain.CampaignFilters{}
	}

	serialized, err := json.Marshal(filters)
	if err != nil {
		return campaignListCacheKeyPrefix + "all"
	}

	hash := fnv.New64a()
	hash.Write(serialized)

	return fmt.Sprintf("%s%x", campaignListCacheKeyPrefix, hash.Sum64())
}

// applyFilters aplica os filtros unificados pós-conversão, de forma
// idêntica para as duas plataformas
func applyFilters(campaigns []*domain.UnifiedCampaign, filters *domain.CampaignFilters) []*domain.UnifiedCampaign {
	if filters == nil {
		return campaigns
	}

	filtered := make([]*domain.UnifiedCampaign, 0, len(campaigns))

	for _, campaign := range campaigns {
		if !matchesFilters(campaign, filters) {
			continue
		}

		filtered = append(filtered, campaign)
	}

	return filtered
}

func matchesFilters(campaign *domain.UnifiedCampaign, filters *domain.CampaignFilters) bool {
	if len(filters.Types) > 0 && !containsType(filters.Types, campaign.Type) {
		return false
	}

	if len(filters.Statuses) > 0 && !containsStatus(filters.Statuses, campaign.Status) {
		return false
	}

	if filters.MinBudget != nil && campaign.Budget.Amount < *filters.MinBudget {
		return false
	}

	if filters.MaxBudget != nil && campaign.Budget.Amount > *filters.MaxBudget {
		return false
	}

	if filters.NameContains != "" &&
		!strings.Contains(strings.ToLower(campaign.Name), strings.ToLower(filters.NameContains)) {
		return false
	}

	// Limiares de performance só se aplicam a campanhas com snapshot
	// carregado
	if filters.MaxACOS != nil {
		if campaign.Performance == nil || campaign.Performance.ACOS > *filters.MaxACOS {
			return false
		}
	}

	if filters.MinROAS != nil {
		if campaign.Performance == nil || campaign.Performance.ROAS < *filters.MinROAS {
			return false
		}
	}

	return true
}

func containsType(types []domain.CampaignType, campaignType domain.CampaignType) bool {
	for _, t := range types {
		if t == campaignType {
			return true
		}
	}

	return false
}

func containsStatus(statuses []domain.CampaignStatus, status domain.CampaignStatus) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}

	return false
}

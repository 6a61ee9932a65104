package orchestrating

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-ads-api/internal/domain"
	"github.com/vfg2006/marketplace-ads-api/pkg/utils"
)

// GetProductInsights agrega os dados de um ASIN consultando todos os
// providers relevantes em paralelo. Cada seção é independente: falha em
// um provider deixa a seção ausente e as demais seguem.
func (s *Service) GetProductInsights(asin string) (*domain.ProductInsights, error) {
	if s.catalogService == nil && s.adsService == nil &&
		s.associatesService == nil && s.brandAnalyticsService == nil {
		return nil, ErrNoProvidersEnabled
	}

	key := productInsightsCacheKeyPrefix + asin
	if cached, ok := s.cache.Get(key); ok {
		if insights, ok := cached.(*domain.ProductInsights); ok {
			return insights, nil
		}
	}

	insights := &domain.ProductInsights{ASIN: asin}
	attempted := 0
	failures := 0
	mutex := sync.Mutex{}
	wg := sync.WaitGroup{}

	if s.catalogService != nil {
		attempted++
		wg.Add(1)
		go func() {
			defer wg.Done()

			product, err := s.catalogService.GetProduct(asin)
			if err != nil {
				mutex.Lock()
				failures++
				mutex.Unlock()
				return
			}

			mutex.Lock()
			insights.SPAPIData = &domain.CatalogSection{
				ASIN:      product.ASIN,
				Title:     product.Title,
				Brand:     product.Brand,
				Category:  product.Category,
				SalesRank: product.SalesRank,
				Price:     product.Price,
				Currency:  product.Currency,
			}
			mutex.Unlock()
		}()
	}

	if s.adsService != nil {
		attempted++
		wg.Add(1)
		go func() {
			defer wg.Done()

			metrics, err := s.adsService.GetProductAdMetrics(asin)
			if err != nil {
				mutex.Lock()
				failures++
				mutex.Unlock()
				return
			}

			mutex.Lock()
			insights.AdvertisingData = &domain.AdvertisingSection{
				ActiveCampaigns: metrics.ActiveCampaigns,
				TotalSpend:      metrics.Spend,
				TotalSales:      metrics.Sales,
				ACOS:            utils.RoundWithTwoDecimalPlace(utils.SafeDivide(metrics.Spend, metrics.Sales) * 100),
			}
			mutex.Unlock()
		}()
	}

	if s.associatesService != nil {
		attempted++
		wg.Add(1)
		go func() {
			defer wg.Done()

			advertising, err := s.associatesService.GetProductAdvertising(asin)
			if err != nil {
				mutex.Lock()
				failures++
				mutex.Unlock()
				return
			}

			mutex.Lock()
			insights.AssociatesData = &domain.AssociatesSection{
				ListPrice:           advertising.ListPrice,
				EstimatedCommission: advertising.EstimatedCommission,
				DetailPageURL:       advertising.DetailPageURL,
			}
			mutex.Unlock()
		}()
	}

	if s.brandAnalyticsService != nil {
		attempted++
		wg.Add(1)
		go func() {
			defer wg.Done()

			terms, termsErr := s.brandAnalyticsService.GetSearchTerms(asin)
			basket, basketErr := s.brandAnalyticsService.GetMarketBasket(asin)
			if termsErr != nil && basketErr != nil {
				mutex.Lock()
				failures++
				mutex.Unlock()
				return
			}

			section := &domain.BrandAnalyticsSection{MarketBasketASINs: basket}
			for _, term := range terms {
				section.TopSearchTerms = append(section.TopSearchTerms, domain.SearchTerm{
					Term: term.Term,
					Rank: term.Rank,
				})
			}

			mutex.Lock()
			insights.BrandAnalyticsData = section
			mutex.Unlock()
		}()
	}

	wg.Wait()

	if failures == attempted {
		logrus.WithField("asin", asin).Error("orchestrating: todos os providers falharam para o produto")
		return nil, ErrAllProvidersFailed
	}

	insights.LastUpdated = time.Now().UTC()

	s.cache.Set(key, insights, time.Duration(s.cfg.Cache.ProductInsightsTTLSeconds)*time.Second)

	return insights, nil
}

// GetMarketplaceInsights agrega métricas de pedidos e de anúncios de um
// marketplace no período de lookback configurado
func (s *Service) GetMarketplaceInsights(marketplaceID string) (*domain.MarketplaceInsights, error) {
	if s.catalogService == nil && s.adsService == nil {
		return nil, ErrNoProvidersEnabled
	}

	key := marketplaceInsightsCacheKeyPrefix + marketplaceID
	if cached, ok := s.cache.Get(key); ok {
		if insights, ok := cached.(*domain.MarketplaceInsights); ok {
			return insights, nil
		}
	}

	insights := &domain.MarketplaceInsights{MarketplaceID: marketplaceID}
	startDate := utils.DaysAgo(s.cfg.Optimization.LookbackDays)
	endDate := utils.DaysAgo(0)
	attempted := 0
	failures := 0
	mutex := sync.Mutex{}
	wg := sync.WaitGroup{}

	if s.catalogService != nil {
		attempted++
		wg.Add(1)
		go func() {
			defer wg.Done()

			metrics, err := s.catalogService.GetOrderMetrics(marketplaceID, startDate, endDate)
			if err != nil {
				mutex.Lock()
				failures++
				mutex.Unlock()
				return
			}

			mutex.Lock()
			insights.OrderMetrics = &domain.OrderMetricsSection{
				TotalOrders:       metrics.TotalOrders,
				TotalRevenue:      metrics.TotalRevenue,
				UnitsSold:         metrics.UnitsSold,
				AverageOrderValue: utils.RoundWithTwoDecimalPlace(utils.SafeDivide(metrics.TotalRevenue, float64(metrics.TotalOrders))),
			}
			mutex.Unlock()
		}()
	}

	if s.adsService != nil {
		attempted++
		wg.Add(1)
		go func() {
			defer wg.Done()

			metrics, err := s.adsService.GetAccountMetrics()
			if err != nil {
				mutex.Lock()
				failures++
				mutex.Unlock()
				return
			}

			mutex.Lock()
			insights.AdvertisingMetrics = &domain.AdvertisingMetricsSection{
				TotalSpend:       metrics.TotalSpend,
				TotalSales:       metrics.TotalSales,
				TotalImpressions: metrics.TotalImpressions,
				TotalClicks:      metrics.TotalClicks,
				AverageACOS:      utils.RoundWithTwoDecimalPlace(utils.SafeDivide(metrics.TotalSpend, metrics.TotalSales) * 100),
			}
			mutex.Unlock()
		}()
	}

	wg.Wait()

	if failures == attempted {
		logrus.WithField("marketplace_id", marketplaceID).Error("orchestrating: todos os providers falharam para o marketplace")
		return nil, ErrAllProvidersFailed
	}

	insights.LastUpdated = time.Now().UTC()

	s.cache.Set(key, insights, time.Duration(s.cfg.Cache.MarketplaceInsightsTTLSeconds)*time.Second)

	return insights, nil
}

// SearchProducts busca no catálogo e enriquece cada item com os dados
// de anúncios quando o provider de ads está habilitado. Falha no
// enriquecimento de um item deixa só o dado de catálogo, a busca nunca
// quebra por causa do enriquecimento.
func (s *Service) SearchProducts(query string) (*domain.ProductSearchResult, error) {
	if s.catalogService == nil {
		return nil, ErrProviderNotConfigured
	}

	searchResult, err := s.catalogService.SearchProducts(query)
	if err != nil {
		return nil, err
	}

	result := &domain.ProductSearchResult{
		Results:    make([]*domain.ProductSummary, 0, len(searchResult.Items)),
		TotalCount: searchResult.TotalCount,
		Sources:    []string{"catalog"},
	}

	enriched := false

	for i := range searchResult.Items {
		product := &searchResult.Items[i]

		summary := &domain.ProductSummary{
			ASIN:     product.ASIN,
			Title:    product.Title,
			Brand:    product.Brand,
			Price:    product.Price,
			Currency: product.Currency,
			Catalog: &domain.CatalogSection{
				ASIN:      product.ASIN,
				Title:     product.Title,
				Brand:     product.Brand,
				Category:  product.Category,
				SalesRank: product.SalesRank,
				Price:     product.Price,
				Currency:  product.Currency,
			},
		}

		if s.adsService != nil {
			metrics, err := s.adsService.GetProductAdMetrics(product.ASIN)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"asin":  product.ASIN,
					"error": err.Error(),
				}).Debug("orchestrating: enriquecimento de anúncios indisponível para o item")
			} else {
				summary.Advertising = &domain.AdvertisingSection{
					ActiveCampaigns: metrics.ActiveCampaigns,
					TotalSpend:      metrics.Spend,
					TotalSales:      metrics.Sales,
					ACOS:            utils.RoundWithTwoDecimalPlace(utils.SafeDivide(metrics.Spend, metrics.Sales) * 100),
				}
				enriched = true
			}
		}

		result.Results = append(result.Results, summary)
	}

	if enriched {
		result.Sources = append(result.Sources, "ads")
	}

	return result, nil
}

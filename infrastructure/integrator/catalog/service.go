package catalog

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-ads-api/internal/config"
)

// CatalogIntegrator expõe as consultas de catálogo e pedidos (SP-API)
type CatalogIntegrator interface {
	HealthCheck() error
	GetProduct(asin string) (*Product, error)
	SearchProducts(query string) (*SearchResult, error)
	GetOrderMetrics(marketplaceID string, startDate, endDate time.Time) (*OrderMetrics, error)
}

type CatalogService struct {
	cfg    *config.Config
	Client Client
}

func New(cfg *config.Config, client Client) CatalogIntegrator {
	return &CatalogService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *CatalogService) HealthCheck() error {
	return s.Client.HealthCheck()
}

func (s *CatalogService) GetProduct(asin string) (*Product, error) {
	product, err := s.Client.GetProduct(asin)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"asin":  asin,
			"error": err.Error(),
		}).Warn("catalog: falha ao buscar produto")
		return nil, err
	}

	return product, nil
}

func (s *CatalogService) SearchProducts(query string) (*SearchResult, error) {
	result, err := s.Client.SearchProducts(query)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"query": query,
			"error": err.Error(),
		}).Error("catalog: falha na busca de produtos")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"query":       query,
		"total_items": result.TotalCount,
	}).Debug("catalog: busca de produtos concluída")

	return result, nil
}

func (s *CatalogService) GetOrderMetrics(marketplaceID string, startDate, endDate time.Time) (*OrderMetrics, error) {
	metrics, err := s.Client.GetOrderMetrics(marketplaceID, startDate, endDate)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"marketplace_id": marketplaceID,
			"start_date":     startDate.Format(time.DateOnly),
			"end_date":       endDate.Format(time.DateOnly),
			"error":          err.Error(),
		}).Warn("catalog: falha ao obter métricas de pedidos")
		return nil, err
	}

	return metrics, nil
}

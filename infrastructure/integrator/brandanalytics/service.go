package brandanalytics

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-ads-api/internal/config"
)

// SearchTermEntry é um termo de busca ranqueado associado a um ASIN
type SearchTermEntry struct {
	Term string `json:"term"`
	Rank int    `json:"rank"`
}

// BrandAnalyticsIntegrator expõe as consultas de brand analytics
type BrandAnalyticsIntegrator interface {
	HealthCheck() error
	GetSearchTerms(asin string) ([]SearchTermEntry, error)
	GetMarketBasket(asin string) ([]string, error)
}

type BrandAnalyticsService struct {
	cfg    *config.Config
	Client Client
}

func New(cfg *config.Config, client Client) BrandAnalyticsIntegrator {
	return &BrandAnalyticsService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *BrandAnalyticsService) HealthCheck() error {
	return s.Client.HealthCheck()
}

func (s *BrandAnalyticsService) GetSearchTerms(asin string) ([]SearchTermEntry, error) {
	terms, err := s.Client.GetSearchTerms(asin)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"asin":  asin,
			"error": err.Error(),
		}).Warn("brandanalytics: falha ao buscar termos de busca")
		return nil, err
	}

	return terms, nil
}

func (s *BrandAnalyticsService) GetMarketBasket(asin string) ([]string, error) {
	asins, err := s.Client.GetMarketBasket(asin)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"asin":  asin,
			"error": err.Error(),
		}).Warn("brandanalytics: falha ao buscar market basket")
		return nil, err
	}

	return asins, nil
}

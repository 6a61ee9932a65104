package associates

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-ads-api/internal/config"
)

// ProductAdvertising são os dados de atribuição/associados de um ASIN
type ProductAdvertising struct {
	ASIN                string  `json:"asin"`
	ListPrice           float64 `json:"listPrice"`
	EstimatedCommission float64 `json:"estimatedCommission"`
	DetailPageURL       string  `json:"detailPageUrl"`
}

type Item struct {
	ASIN     string  `json:"asin"`
	Title    string  `json:"title"`
	Brand    string  `json:"brand"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
}

type ItemSearchResult struct {
	Items      []Item `json:"items"`
	TotalCount int    `json:"totalCount"`
}

// AssociatesIntegrator expõe as consultas da API de associados
type AssociatesIntegrator interface {
	HealthCheck() error
	GetProductAdvertising(asin string) (*ProductAdvertising, error)
	SearchItems(query string) (*ItemSearchResult, error)
}

type AssociatesService struct {
	cfg    *config.Config
	Client Client
}

func New(cfg *config.Config, client Client) AssociatesIntegrator {
	return &AssociatesService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *AssociatesService) HealthCheck() error {
	return s.Client.HealthCheck()
}

func (s *AssociatesService) GetProductAdvertising(asin string) (*ProductAdvertising, error) {
	advertising, err := s.Client.GetProductAdvertising(asin)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"asin":  asin,
			"error": err.Error(),
		}).Warn("associates: falha ao buscar dados do produto")
		return nil, err
	}

	return advertising, nil
}

func (s *AssociatesService) SearchItems(query string) (*ItemSearchResult, error) {
	result, err := s.Client.SearchItems(query)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"query": query,
			"error": err.Error(),
		}).Error("associates: falha na busca de itens")
		return nil, err
	}

	return result, nil
}

package catalog

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/marketplace-ads-api/internal/config"
	"github.com/vfg2006/marketplace-ads-api/pkg/utils"
)

type Client interface {
	HealthCheck() error
	GetProduct(asin string) (*Product, error)
	SearchProducts(query string) (*SearchResult, error)
	GetOrderMetrics(marketplaceID string, startDate, endDate time.Time) (*OrderMetrics, error)
}

type CatalogClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &CatalogClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Catalog.TimeoutSeconds) * time.Second,
		},
	}
}

func (c *CatalogClient) headers() map[string]string {
	return map[string]string{
		"x-amz-access-token": c.Cfg.Catalog.AccessToken,
		"Accept":             "application/json",
	}
}

func (c *CatalogClient) get(path string, out any) error {
	data, err := utils.MakeRequest(c.httpClient, c.Cfg.Catalog.URL+path, c.headers())
	if err != nil {
		return errors.Wrap(err, "erro na chamada ao catálogo")
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrap(err, "erro ao decodificar JSON")
	}

	return nil
}

func (c *CatalogClient) HealthCheck() error {
	return c.get("/catalog/2022-04-01/items?pageSize=1&marketplaceIds="+c.Cfg.Catalog.MarketplaceID, nil)
}

func (c *CatalogClient) GetProduct(asin string) (*Product, error) {
	var product Product

	path := fmt.Sprintf("/catalog/2022-04-01/items/%s?marketplaceIds=%s", asin, c.Cfg.Catalog.MarketplaceID)
	if err := c.get(path, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (c *CatalogClient) SearchProducts(query string) (*SearchResult, error) {
	params := url.Values{}
	params.Add("keywords", query)
	params.Add("marketplaceIds", c.Cfg.Catalog.MarketplaceID)

	var result SearchResult
	if err := c.get("/catalog/2022-04-01/items?"+params.Encode(), &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *CatalogClient) GetOrderMetrics(marketplaceID string, startDate, endDate time.Time) (*OrderMetrics, error) {
	params := url.Values{}
	params.Add("marketplaceIds", marketplaceID)
	params.Add("interval", fmt.Sprintf("%s--%s",
		startDate.Format("2006-01-02"),
		endDate.Format("2006-01-02"),
	))

	var metrics OrderMetrics
	if err := c.get("/sales/v1/orderMetrics?"+params.Encode(), &metrics); err != nil {
		return nil, err
	}

	return &metrics, nil
}

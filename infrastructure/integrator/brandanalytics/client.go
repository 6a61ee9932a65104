package brandanalytics

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/marketplace-ads-api/internal/config"
	"github.com/vfg2006/marketplace-ads-api/pkg/utils"
)

type Client interface {
	HealthCheck() error
	GetSearchTerms(asin string) ([]SearchTermEntry, error)
	GetMarketBasket(asin string) ([]string, error)
}

type BrandAnalyticsClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &BrandAnalyticsClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.BrandAnalytics.TimeoutSeconds) * time.Second,
		},
	}
}

func (c *BrandAnalyticsClient) headers() map[string]string {
	return map[string]string{
		"x-amz-access-token": c.Cfg.BrandAnalytics.AccessToken,
		"Accept":             "application/json",
	}
}

func (c *BrandAnalyticsClient) get(path string, out any) error {
	data, err := utils.MakeRequest(c.httpClient, c.Cfg.BrandAnalytics.URL+path, c.headers())
	if err != nil {
		return errors.Wrap(err, "erro na chamada ao brand analytics")
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrap(err, "erro ao decodificar JSON")
	}

	return nil
}

func (c *BrandAnalyticsClient) HealthCheck() error {
	return c.get("/status", nil)
}

func (c *BrandAnalyticsClient) GetSearchTerms(asin string) ([]SearchTermEntry, error) {
	var response struct {
		SearchTerms []SearchTermEntry `json:"searchTerms"`
	}

	path := fmt.Sprintf("/searchTerms?asin=%s", asin)
	if err := c.get(path, &response); err != nil {
		return nil, err
	}

	return response.SearchTerms, nil
}

func (c *BrandAnalyticsClient) GetMarketBasket(asin string) ([]string, error) {
	var response struct {
		ASINs []string `json:"asins"`
	}

	path := fmt.Sprintf("/marketBasket?asin=%s", asin)
	if err := c.get(path, &response); err != nil {
		return nil, err
	}

	return response.ASINs, nil
}

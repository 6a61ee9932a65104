package associates

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
	GetProductAdvertising(asin string) (*ProductAdvertising, error)
	SearchItems(query string) (*ItemSearchResult, error)
}

type AssociatesClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &AssociatesClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Associates.TimeoutSeconds) * time.Second,
		},
	}
}

func (c *AssociatesClient) headers() map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + c.Cfg.Associates.AccessToken,
		"Partner-Tag":   c.Cfg.Associates.PartnerTag,
		"Accept":        "application/json",
	}
}

func (c *AssociatesClient) get(path string, out any) error {
	data, err := utils.MakeRequest(c.httpClient, c.Cfg.Associates.URL+path, c.headers())
	if err != nil {
		return errors.Wrap(err, "erro na chamada aos associados")
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrap(err, "erro ao decodificar JSON")
	}

	return nil
}

func (c *AssociatesClient) HealthCheck() error {
	return c.get("/ping", nil)
}

func (c *AssociatesClient) GetProductAdvertising(asin string) (*ProductAdvertising, error) {
	var advertising ProductAdvertising

	path := fmt.Sprintf("/getItems/%s", asin)
	if err := c.get(path, &advertising); err != nil {
		return nil, err
	}

	return &advertising, nil
}

func (c *AssociatesClient) SearchItems(query string) (*ItemSearchResult, error) {
	params := url.Values{}
	params.Add("Keywords", query)
	params.Add("PartnerTag", c.Cfg.Associates.PartnerTag)

	var result ItemSearchResult
	if err := c.get("/searchItems?"+params.Encode(), &result); err != nil {
		return nil, err
	}

	return &result, nil
}

package adsclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/ads/adsdomain"
	"github.com/vfg2006/marketplace-ads-api/internal/config"
)

type Client interface {
	HealthCheck() error
	GetCampaigns(filter adsdomain.CampaignFilter) (*adsdomain.CampaignList, error)
	GetCampaign(campaignID string) (*adsdomain.Campaign, error)
	CreateCampaign(req adsdomain.CreateCampaignRequest) (*adsdomain.Campaign, error)
	UpdateCampaign(campaignID string, req adsdomain.UpdateCampaignRequest) (*adsdomain.Campaign, error)
	ArchiveCampaign(campaignID string) error
	GetCampaignPerformance(campaignID string, startDate, endDate time.Time) (*adsdomain.CampaignMetrics, error)
	GetProductAdMetrics(asin string) (*adsdomain.ProductAdMetrics, error)
	GetAccountMetrics() (*adsdomain.AccountMetrics, error)
}

type AdsClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &AdsClient{
		Cfg: cfg,
		// O timeout por chamada fica aqui na borda do provider; os
		// usecases não impõem timeouts próprios
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Ads.TimeoutSeconds) * time.Second,
		},
	}
}

// do executa uma requisição autenticada contra a API de sponsored ads e
// decodifica a resposta JSON em out (quando out não é nil)
func (c *AdsClient) do(method, path string, body any, out any) error {
	var reqBody io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "erro ao serializar o corpo da requisição")
		}
		reqBody = bytes.NewReader(payload)
	}

	url := c.Cfg.Ads.URL + path

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Authorization", "Bearer "+c.Cfg.Ads.AccessToken)
	req.Header.Set("Amazon-Advertising-API-Scope", c.Cfg.Ads.ProfileID)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "erro ao fazer a requisição")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "erro ao ler a resposta")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("ads API retornou status %d: %s", resp.StatusCode, string(data))
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrap(err, "erro ao decodificar JSON")
	}

	return nil
}

// HealthCheck verifica a disponibilidade da API consultando os perfis
// da conta
func (c *AdsClient) HealthCheck() error {
	return c.do(http.MethodGet, "/v2/profiles", nil, nil)
}

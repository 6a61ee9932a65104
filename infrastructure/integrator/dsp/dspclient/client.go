package dspclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/dsp/dspdomain"
	"github.com/vfg2006/marketplace-ads-api/internal/config"
)

type Client interface {
	HealthCheck() error
	GetOrders(filter dspdomain.OrderFilter) (*dspdomain.OrderList, error)
	GetOrder(orderID string) (*dspdomain.Order, error)
	CreateOrder(req dspdomain.CreateOrderRequest) (*dspdomain.Order, error)
	UpdateOrder(orderID string, req dspdomain.UpdateOrderRequest) (*dspdomain.Order, error)
	ArchiveOrder(orderID string) error
	GetOrderMetrics(orderID string, startDate, endDate time.Time) (*dspdomain.OrderMetrics, error)
}

type DSPClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &DSPClient{
		Cfg: cfg,
		// O timeout por chamada fica aqui na borda do provider
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.DSP.TimeoutSeconds) * time.Second,
		},
	}
}

func (c *DSPClient) do(method, path string, body any, out any) error {
	var reqBody io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "erro ao serializar o corpo da requisição")
		}
		reqBody = bytes.NewReader(payload)
	}

	url := c.Cfg.DSP.URL + path

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Authorization", "Bearer "+c.Cfg.DSP.AccessToken)
	req.Header.Set("Amazon-Ads-AccountId", c.Cfg.DSP.AccountID)
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
		return fmt.Errorf("dsp API retornou status %d: %s", resp.StatusCode, string(data))
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrap(err, "erro ao decodificar JSON")
	}

	return nil
}

func (c *DSPClient) HealthCheck() error {
	return c.do(http.MethodGet, "/accounts", nil, nil)
}

func (c *DSPClient) GetOrders(filter dspdomain.OrderFilter) (*dspdomain.OrderList, error) {
	params := url.Values{}
	if filter.StatusFilter != "" {
		params.Add("statusFilter", filter.StatusFilter)
	}

	path := "/orders"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var list dspdomain.OrderList
	if err := c.do(http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}

	return &list, nil
}

func (c *DSPClient) GetOrder(orderID string) (*dspdomain.Order, error) {
	var order dspdomain.Order

	path := fmt.Sprintf("/orders/%s", orderID)
	if err := c.do(http.MethodGet, path, nil, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

func (c *DSPClient) CreateOrder(req dspdomain.CreateOrderRequest) (*dspdomain.Order, error) {
	var order dspdomain.Order

	if err := c.do(http.MethodPost, "/orders", req, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

func (c *DSPClient) UpdateOrder(orderID string, req dspdomain.UpdateOrderRequest) (*dspdomain.Order, error) {
	var order dspdomain.Order

	path := fmt.Sprintf("/orders/%s", orderID)
	if err := c.do(http.MethodPut, path, req, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

func (c *DSPClient) ArchiveOrder(orderID string) error {
	path := fmt.Sprintf("/orders/%s", orderID)
	return c.do(http.MethodDelete, path, nil, nil)
}

func (c *DSPClient) GetOrderMetrics(orderID string, startDate, endDate time.Time) (*dspdomain.OrderMetrics, error) {
	params := url.Values{}
	params.Add("startDate", startDate.Format("2006-01-02"))
	params.Add("endDate", endDate.Format("2006-01-02"))

	var metrics dspdomain.OrderMetrics

	path := fmt.Sprintf("/orders/%s/metrics?%s", orderID, params.Encode())
	if err := c.do(http.MethodGet, path, nil, &metrics); err != nil {
		return nil, err
	}

	return &metrics, nil
}

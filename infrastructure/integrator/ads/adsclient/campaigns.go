package adsclient

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/ads/adsdomain"
)

// TODO adicionar paginação quando a conta passar de 500 campanhas
func (c *AdsClient) GetCampaigns(filter adsdomain.CampaignFilter) (*adsdomain.CampaignList, error) {
	params := url.Values{}
	if filter.StateFilter != "" {
		params.Add("stateFilter", filter.StateFilter)
	}

	path := "/v2/campaigns"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var campaigns []adsdomain.Campaign
	if err := c.do(http.MethodGet, path, nil, &campaigns); err != nil {
		return nil, err
	}

	return &adsdomain.CampaignList{
		Campaigns:  campaigns,
		TotalCount: len(campaigns),
	}, nil
}

func (c *AdsClient) GetCampaign(campaignID string) (*adsdomain.Campaign, error) {
	var campaign adsdomain.Campaign

	path := fmt.Sprintf("/v2/campaigns/%s", campaignID)
	if err := c.do(http.MethodGet, path, nil, &campaign); err != nil {
		return nil, err
	}

	return &campaign, nil
}

func (c *AdsClient) CreateCampaign(req adsdomain.CreateCampaignRequest) (*adsdomain.Campaign, error) {
	var campaign adsdomain.Campaign

	if err := c.do(http.MethodPost, "/v2/campaigns", req, &campaign); err != nil {
		return nil, err
	}

	return &campaign, nil
}

func (c *AdsClient) UpdateCampaign(campaignID string, req adsdomain.UpdateCampaignRequest) (*adsdomain.Campaign, error) {
	var campaign adsdomain.Campaign

	path := fmt.Sprintf("/v2/campaigns/%s", campaignID)
	if err := c.do(http.MethodPut, path, req, &campaign); err != nil {
		return nil, err
	}

	return &campaign, nil
}

func (c *AdsClient) ArchiveCampaign(campaignID string) error {
	path := fmt.Sprintf("/v2/campaigns/%s", campaignID)
	return c.do(http.MethodDelete, path, nil, nil)
}

func (c *AdsClient) GetCampaignPerformance(campaignID string, startDate, endDate time.Time) (*adsdomain.CampaignMetrics, error) {
	params := url.Values{}
	params.Add("startDate", startDate.Format("2006-01-02"))
	params.Add("endDate", endDate.Format("2006-01-02"))

	var metrics adsdomain.CampaignMetrics

	path := fmt.Sprintf("/v2/campaigns/%s/report?%s", campaignID, params.Encode())
	if err := c.do(http.MethodGet, path, nil, &metrics); err != nil {
		return nil, err
	}

	return &metrics, nil
}

func (c *AdsClient) GetProductAdMetrics(asin string) (*adsdomain.ProductAdMetrics, error) {
	var metrics adsdomain.ProductAdMetrics

	path := fmt.Sprintf("/v2/products/%s/adMetrics", asin)
	if err := c.do(http.MethodGet, path, nil, &metrics); err != nil {
		return nil, err
	}

	return &metrics, nil
}

func (c *AdsClient) GetAccountMetrics() (*adsdomain.AccountMetrics, error) {
	var metrics adsdomain.AccountMetrics

	if err := c.do(http.MethodGet, "/v2/account/metrics", nil, &metrics); err != nil {
		return nil, err
	}

	return &metrics, nil
}

package ads

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/ads/adsclient"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/ads/adsdomain"
	"github.com/vfg2006/marketplace-ads-api/internal/config"
)

// AdsIntegrator expõe as operações da API de sponsored ads consumidas
// pelos usecases. Retentativas e renovação de token são
// responsabilidade do client, nunca de quem consome esta interface.
type AdsIntegrator interface {
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

type AdsService struct {
	cfg    *config.Config
	Client adsclient.Client
}

func New(cfg *config.Config, client adsclient.Client) AdsIntegrator {
	return &AdsService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *AdsService) HealthCheck() error {
	return s.Client.HealthCheck()
}

func (s *AdsService) GetCampaigns(filter adsdomain.CampaignFilter) (*adsdomain.CampaignList, error) {
	list, err := s.Client.GetCampaigns(filter)
	if err != nil {
		logrus.WithError(err).Error("ads: falha ao listar campanhas")
		return nil, err
	}

	logrus.WithField("total_campaigns", list.TotalCount).Debug("ads: campanhas listadas com sucesso")

	return list, nil
}

func (s *AdsService) GetCampaign(campaignID string) (*adsdomain.Campaign, error) {
	campaign, err := s.Client.GetCampaign(campaignID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Debug("ads: campanha não encontrada na API")
		return nil, err
	}

	return campaign, nil
}

func (s *AdsService) CreateCampaign(req adsdomain.CreateCampaignRequest) (*adsdomain.Campaign, error) {
	campaign, err := s.Client.CreateCampaign(req)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_name": req.Name,
			"error":         err.Error(),
		}).Error("ads: falha ao criar campanha")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id":   campaign.CampaignID,
		"campaign_name": campaign.Name,
	}).Info("ads: campanha criada com sucesso")

	return campaign, nil
}

func (s *AdsService) UpdateCampaign(campaignID string, req adsdomain.UpdateCampaignRequest) (*adsdomain.Campaign, error) {
	campaign, err := s.Client.UpdateCampaign(campaignID, req)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Error("ads: falha ao atualizar campanha")
		return nil, err
	}

	return campaign, nil
}

func (s *AdsService) ArchiveCampaign(campaignID string) error {
	if err := s.Client.ArchiveCampaign(campaignID); err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Error("ads: falha ao arquivar campanha")
		return err
	}

	logrus.WithField("campaign_id", campaignID).Info("ads: campanha arquivada com sucesso")

	return nil
}

func (s *AdsService) GetCampaignPerformance(campaignID string, startDate, endDate time.Time) (*adsdomain.CampaignMetrics, error) {
	metrics, err := s.Client.GetCampaignPerformance(campaignID, startDate, endDate)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"start_date":  startDate.Format(time.DateOnly),
			"end_date":    endDate.Format(time.DateOnly),
			"error":       err.Error(),
		}).Error("ads: falha ao obter performance da campanha")
		return nil, err
	}

	return metrics, nil
}

func (s *AdsService) GetProductAdMetrics(asin string) (*adsdomain.ProductAdMetrics, error) {
	metrics, err := s.Client.GetProductAdMetrics(asin)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"asin":  asin,
			"error": err.Error(),
		}).Warn("ads: falha ao obter métricas de anúncios do produto")
		return nil, err
	}

	return metrics, nil
}

func (s *AdsService) GetAccountMetrics() (*adsdomain.AccountMetrics, error) {
	metrics, err := s.Client.GetAccountMetrics()
	if err != nil {
		logrus.WithError(err).Warn("ads: falha ao obter métricas da conta")
		return nil, err
	}

	return metrics, nil
}

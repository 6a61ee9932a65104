package dsp

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/dsp/dspclient"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/dsp/dspdomain"
	"github.com/vfg2006/marketplace-ads-api/internal/config"
)

// DSPIntegrator expõe as operações da API de DSP consumidas pelos
// usecases. A entidade nativa de campanha no DSP é a order.
type DSPIntegrator interface {
	HealthCheck() error
	GetOrders(filter dspdomain.OrderFilter) (*dspdomain.OrderList, error)
	GetOrder(orderID string) (*dspdomain.Order, error)
	CreateOrder(req dspdomain.CreateOrderRequest) (*dspdomain.Order, error)
	UpdateOrder(orderID string, req dspdomain.UpdateOrderRequest) (*dspdomain.Order, error)
	ArchiveOrder(orderID string) error
	GetOrderMetrics(orderID string, startDate, endDate time.Time) (*dspdomain.OrderMetrics, error)
}

type DSPService struct {
	cfg    *config.Config
	Client dspclient.Client
}

func New(cfg *config.Config, client dspclient.Client) DSPIntegrator {
	return &DSPService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *DSPService) HealthCheck() error {
	return s.Client.HealthCheck()
}

func (s *DSPService) GetOrders(filter dspdomain.OrderFilter) (*dspdomain.OrderList, error) {
	list, err := s.Client.GetOrders(filter)
	if err != nil {
		logrus.WithError(err).Error("dsp: falha ao listar orders")
		return nil, err
	}

	logrus.WithField("total_orders", list.TotalCount).Debug("dsp: orders listadas com sucesso")

	return list, nil
}

func (s *DSPService) GetOrder(orderID string) (*dspdomain.Order, error) {
	order, err := s.Client.GetOrder(orderID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"order_id": orderID,
			"error":    err.Error(),
		}).Debug("dsp: order não encontrada na API")
		return nil, err
	}

	return order, nil
}

func (s *DSPService) CreateOrder(req dspdomain.CreateOrderRequest) (*dspdomain.Order, error) {
	order, err := s.Client.CreateOrder(req)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"order_name": req.Name,
			"error":      err.Error(),
		}).Error("dsp: falha ao criar order")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"order_id":   order.OrderID,
		"order_name": order.Name,
	}).Info("dsp: order criada com sucesso")

	return order, nil
}

func (s *DSPService) UpdateOrder(orderID string, req dspdomain.UpdateOrderRequest) (*dspdomain.Order, error) {
	order, err := s.Client.UpdateOrder(orderID, req)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"order_id": orderID,
			"error":    err.Error(),
		}).Error("dsp: falha ao atualizar order")
		return nil, err
	}

	return order, nil
}

func (s *DSPService) ArchiveOrder(orderID string) error {
	if err := s.Client.ArchiveOrder(orderID); err != nil {
		logrus.WithFields(logrus.Fields{
			"order_id": orderID,
			"error":    err.Error(),
		}).Error("dsp: falha ao arquivar order")
		return err
	}

	logrus.WithField("order_id", orderID).Info("dsp: order arquivada com sucesso")

	return nil
}

func (s *DSPService) GetOrderMetrics(orderID string, startDate, endDate time.Time) (*dspdomain.OrderMetrics, error) {
	metrics, err := s.Client.GetOrderMetrics(orderID, startDate, endDate)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"order_id":   orderID,
			"start_date": startDate.Format(time.DateOnly),
			"end_date":   endDate.Format(time.DateOnly),
			"error":      err.Error(),
		}).Error("dsp: falha ao obter métricas da order")
		return nil, err
	}

	return metrics, nil
}

package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/ads"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/ads/adsclient"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/associates"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/brandanalytics"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/catalog"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/dsp"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/integrator/dsp/dspclient"
	"github.com/vfg2006/marketplace-ads-api/internal/api"
	"github.com/vfg2006/marketplace-ads-api/internal/config"
	"github.com/vfg2006/marketplace-ads-api/internal/scheduler"
	"github.com/vfg2006/marketplace-ads-api/internal/usecases/orchestrating"
	"github.com/vfg2006/marketplace-ads-api/internal/usecases/unifying"
	"github.com/vfg2006/marketplace-ads-api/pkg/cache"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Cache em memória compartilhado entre a engine de campanhas e o
	// orquestrador
	sharedCache := cache.New[any](cfg.Cache.Capacity)

	var adsIntegrator ads.AdsIntegrator
	if cfg.Ads.Enabled {
		adsIntegrator = ads.New(cfg, adsclient.NewClient(cfg))
	}

	var dspIntegrator dsp.DSPIntegrator
	if cfg.DSP.Enabled {
		dspIntegrator = dsp.New(cfg, dspclient.NewClient(cfg))
	}

	var catalogIntegrator catalog.CatalogIntegrator
	if cfg.Catalog.Enabled {
		catalogIntegrator = catalog.New(cfg, catalog.NewClient(cfg))
	}

	var associatesIntegrator associates.AssociatesIntegrator
	if cfg.Associates.Enabled {
		associatesIntegrator = associates.New(cfg, associates.NewClient(cfg))
	}

	var brandAnalyticsIntegrator brandanalytics.BrandAnalyticsIntegrator
	if cfg.BrandAnalytics.Enabled {
		brandAnalyticsIntegrator = brandanalytics.New(cfg, brandanalytics.NewClient(cfg))
	}

	campaignService := unifying.NewService(cfg, adsIntegrator, dspIntegrator, sharedCache)

	orchestrator := orchestrating.NewService(
		cfg,
		adsIntegrator,
		dspIntegrator,
		catalogIntegrator,
		associatesIntegrator,
		brandAnalyticsIntegrator,
		sharedCache,
	)

	if err := orchestrator.Initialize(); err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar o orquestrador de providers")
	}

	// Inicia a varredura periódica do cache em background
	cacheSweepService := scheduler.NewCacheSweepService(cfg, sharedCache)
	if err := cacheSweepService.Start(); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de varredura de cache")
	} else {
		logrus.Info("Agendador de varredura de cache iniciado com sucesso")
	}
	defer cacheSweepService.Stop()

	server, err := api.New(cfg, campaignService, orchestrator)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

package scheduler

import (
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-ads-api/internal/config"
	"github.com/vfg2006/marketplace-ads-api/pkg/cache"
)

// CacheSweepService varre periodicamente as entradas expiradas do cache
// compartilhado. A correção do cache não depende da varredura; ela só
// devolve memória entre leituras.
type CacheSweepService struct {
	cfg       *config.Config
	cache     *cache.Cache[any]
	scheduler *gocron.Scheduler
	runMutex  sync.Mutex
}

func NewCacheSweepService(cfg *config.Config, cache *cache.Cache[any]) *CacheSweepService {
	return &CacheSweepService{
		cfg:       cfg,
		cache:     cache,
		scheduler: gocron.NewScheduler(time.UTC),
	}
}

// Start agenda a varredura no cron configurado e dispara uma execução
// imediata
func (s *CacheSweepService) Start() error {
	if !s.cfg.CacheSweep.Enabled {
		logrus.Info("scheduler: varredura de cache desabilitada na configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.cfg.CacheSweep.CronSchedule).Do(s.run)
	if err != nil {
		logrus.WithError(err).Error("scheduler: falha ao agendar varredura de cache")
		return err
	}

	s.scheduler.StartAsync()

	logrus.WithField("cron", s.cfg.CacheSweep.CronSchedule).Info("scheduler: varredura de cache agendada")

	return nil
}

// Stop interrompe o agendador e aguarda a execução em andamento
func (s *CacheSweepService) Stop() {
	s.scheduler.Stop()

	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	logrus.Info("scheduler: varredura de cache interrompida")
}

func (s *CacheSweepService) run() {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	start := time.Now()
	removed := s.cache.Sweep()

	logrus.WithFields(logrus.Fields{
		"removed_entries": removed,
		"remaining":       s.cache.Len(),
		"duration_ms":     time.Since(start).Milliseconds(),
	}).Debug("scheduler: varredura de cache concluída")
}

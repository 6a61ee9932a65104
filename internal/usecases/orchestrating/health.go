package orchestrating

import (
	"sync"
	"time"

	"github.com/vfg2006/marketplace-ads-api/internal/domain"
)

// GetHealthStatus verifica todos os providers em paralelo e agrega o
// resultado. Providers desabilitados aparecem na lista como disabled
// mas não entram no rollup.
func (s *Service) GetHealthStatus() *domain.ServiceHealth {
	type check struct {
		name        string
		healthCheck func() error
	}

	checks := []check{
		{"ads", s.adsHealthCheck()},
		{"dsp", s.dspHealthCheck()},
		{"catalog", s.catalogHealthCheck()},
		{"associates", s.associatesHealthCheck()},
		{"brand_analytics", s.brandAnalyticsHealthCheck()},
	}

	providers := make([]domain.ProviderHealth, len(checks))
	wg := sync.WaitGroup{}

	for i, c := range checks {
		if c.healthCheck == nil {
			providers[i] = domain.ProviderHealth{
				Provider: c.name,
				Status:   domain.ProviderStatusDisabled,
			}
			continue
		}

		wg.Add(1)
		go func(i int, c check) {
			defer wg.Done()

			start := time.Now()
			err := c.healthCheck()
			elapsed := time.Since(start).Milliseconds()

			if err != nil {
				providers[i] = domain.ProviderHealth{
					Provider:       c.name,
					Status:         domain.ProviderStatusUnhealthy,
					ResponseTimeMS: elapsed,
					Message:        err.Error(),
				}
				return
			}

			providers[i] = domain.ProviderHealth{
				Provider:       c.name,
				Status:         domain.ProviderStatusHealthy,
				ResponseTimeMS: elapsed,
			}
		}(i, c)
	}

	wg.Wait()

	return &domain.ServiceHealth{
		Status:    rollupStatus(providers),
		Providers: providers,
		CheckedAt: time.Now().UTC(),
	}
}

// rollupStatus consolida os status individuais: todos saudáveis vira
// healthy, nenhum saudável vira unhealthy, mistura vira degraded.
// Providers desabilitados não contam.
func rollupStatus(providers []domain.ProviderHealth) domain.ServiceStatus {
	healthy := 0
	unhealthy := 0

	for _, p := range providers {
		switch p.Status {
		case domain.ProviderStatusHealthy:
			healthy++
		case domain.ProviderStatusUnhealthy:
			unhealthy++
		}
	}

	switch {
	case unhealthy == 0 && healthy > 0:
		return domain.ServiceStatusHealthy
	case healthy == 0 && unhealthy > 0:
		return domain.ServiceStatusUnhealthy
	case healthy > 0 && unhealthy > 0:
		return domain.ServiceStatusDegraded
	default:
		// Nenhum provider habilitado
		return domain.ServiceStatusUnhealthy
	}
}

func (s *Service) adsHealthCheck() func() error {
	if s.adsService == nil {
		return nil
	}
	return s.adsService.HealthCheck
}

func (s *Service) dspHealthCheck() func() error {
	if s.dspService == nil {
		return nil
	}
	return s.dspService.HealthCheck
}

func (s *Service) catalogHealthCheck() func() error {
	if s.catalogService == nil {
		return nil
	}
	return s.catalogService.HealthCheck
}

func (s *Service) associatesHealthCheck() func() error {
	if s.associatesService == nil {
		return nil
	}
	return s.associatesService.HealthCheck
}

func (s *Service) brandAnalyticsHealthCheck() func() error {
	if s.brandAnalyticsService == nil {
		return nil
	}
	return s.brandAnalyticsService.HealthCheck
}

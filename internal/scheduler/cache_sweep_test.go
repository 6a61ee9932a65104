package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketplace-ads-api/internal/config"
	"github.com/vfg2006/marketplace-ads-api/pkg/cache"
)

func TestCacheSweepRunRemovesExpiredEntries(t *testing.T) {
	testCache := cache.New[any](10)
	testCache.Set("expirada", "valor", time.Nanosecond)
	testCache.Set("viva", "valor", time.Hour)

	time.Sleep(time.Millisecond)

	service := NewCacheSweepService(&config.Config{}, testCache)
	service.run()

	assert.Equal(t, 1, testCache.Len())

	_, ok := testCache.Get("viva")
	assert.True(t, ok)
}

func TestCacheSweepStartDisabled(t *testing.T) {
	cfg := &config.Config{
		CacheSweep: config.CacheSweep{Enabled: false},
	}

	service := NewCacheSweepService(cfg, cache.New[any](10))
	require.NoError(t, service.Start())
}

func TestCacheSweepStartInvalidCron(t *testing.T) {
	cfg := &config.Config{
		CacheSweep: config.CacheSweep{
			Enabled:      true,
			CronSchedule: "não é cron",
		},
	}

	service := NewCacheSweepService(cfg, cache.New[any](10))
	assert.Error(t, service.Start())
}

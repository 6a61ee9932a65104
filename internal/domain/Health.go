package domain

import "time"

type ProviderStatus string

const (
	ProviderStatusHealthy   ProviderStatus = "healthy"
	ProviderStatusUnhealthy ProviderStatus = "unhealthy"
	ProviderStatusDisabled  ProviderStatus = "disabled"
)

type ServiceStatus string

const (
	ServiceStatusHealthy   ServiceStatus = "healthy"
	ServiceStatusDegraded  ServiceStatus = "degraded"
	ServiceStatusUnhealthy ServiceStatus = "unhealthy"
)

type ProviderHealth struct {
	Provider       string         `json:"provider"`
	Status         ProviderStatus `json:"status"`
	ResponseTimeMS int64          `json:"response_time_ms"`
	Message        string         `json:"message,omitempty"`
}

// ServiceHealth é o rollup dos providers verificados: healthy quando
// todos estão saudáveis, unhealthy quando nenhum está, degraded nos
// demais casos. Providers desabilitados aparecem na lista mas não
// entram no rollup.
type ServiceHealth struct {
	Status    ServiceStatus    `json:"status"`
	Providers []ProviderHealth `json:"providers"`
	CheckedAt time.Time        `json:"checked_at"`
}

package domain

import "time"

type DateRange struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// UnifiedCampaignPerformance tem formato fixo: métricas que não existem
// na plataforma de origem vêm zeradas, nunca omitidas, para que os
// consumidores não precisem tratar formatos variáveis
type UnifiedCampaignPerformance struct {
	CampaignID  string  `json:"campaign_id"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Spend       float64 `json:"spend"`
	Sales       float64 `json:"sales"`
	Orders      int64   `json:"orders"`
	CTR         float64 `json:"ctr"`
	CPC         float64 `json:"cpc"`
	CPM         float64 `json:"cpm"`
	ACOS        float64 `json:"acos"`
	ROAS        float64 `json:"roas"`

	// Métricas exclusivas de DSP (zeradas para sponsored ads)
	ConversionRate      float64 `json:"conversion_rate"`
	ViewableImpressions int64   `json:"viewable_impressions"`
	VideoCompletions    int64   `json:"video_completions"`
	BrandAwarenessLift  float64 `json:"brand_awareness_lift"`
}

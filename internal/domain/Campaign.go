package domain

import "time"

// Platform identifica a plataforma de origem de uma campanha.
// É um enum fechado: todo mapeamento por plataforma deve fazer switch
// exaustivo sobre estes valores.
type Platform string

const (
	PlatformAdvertising Platform = "ADVERTISING"
	PlatformDSP         Platform = "DSP"
)

// CampaignType é a taxonomia unificada de tipos de campanha.
// Cada plataforma suporta apenas um subconjunto.
type CampaignType string

const (
	CampaignTypeSponsoredProducts CampaignType = "SPONSORED_PRODUCTS"
	CampaignTypeSponsoredBrands   CampaignType = "SPONSORED_BRANDS"
	CampaignTypeSponsoredDisplay  CampaignType = "SPONSORED_DISPLAY"
	CampaignTypeDSPDisplay        CampaignType = "DSP_DISPLAY"
	CampaignTypeDSPVideo          CampaignType = "DSP_VIDEO"
	CampaignTypeDSPAudio          CampaignType = "DSP_AUDIO"
	CampaignTypeDSPOTT            CampaignType = "DSP_OTT"
)

// CampaignStatus é o status unificado, mapeado bidirecionalmente para o
// vocabulário nativo de cada plataforma
type CampaignStatus string

const (
	CampaignStatusActive   CampaignStatus = "ACTIVE"
	CampaignStatusPaused   CampaignStatus = "PAUSED"
	CampaignStatusArchived CampaignStatus = "ARCHIVED"
	CampaignStatusPending  CampaignStatus = "PENDING"
	CampaignStatusRejected CampaignStatus = "REJECTED"
)

type BudgetType string

const (
	BudgetTypeDaily    BudgetType = "DAILY"
	BudgetTypeLifetime BudgetType = "LIFETIME"
)

type Budget struct {
	Type     BudgetType `json:"type"`
	Amount   float64    `json:"amount"`
	Currency string     `json:"currency"`
}

type BidStrategy string

const (
	BidStrategyAuto       BidStrategy = "AUTO"
	BidStrategyManual     BidStrategy = "MANUAL"
	BidStrategyTargetCPA  BidStrategy = "TARGET_CPA"
	BidStrategyTargetROAS BidStrategy = "TARGET_ROAS"
	BidStrategyDynamic    BidStrategy = "DYNAMIC"
)

// Targeting é a união dos alvos das duas plataformas. Os campos de
// sponsored ads (keywords/asins) e os de DSP (audiências, demografia,
// geografia, contexto) nunca são preenchidos juntos: a plataforma da
// campanha determina quais são legais.
type Targeting struct {
	// Sponsored ads
	Keywords []string `json:"keywords,omitempty"`
	ASINs    []string `json:"asins,omitempty"`

	// DSP
	Audiences    []string `json:"audiences,omitempty"`
	Demographics []string `json:"demographics,omitempty"`
	Geographic   []string `json:"geographic,omitempty"`
	Contextual   []string `json:"contextual,omitempty"`
}

type Schedule struct {
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Timezone  string     `json:"timezone"`
}

// CampaignMetadata guarda o registro nativo intocado do provider para
// permitir round-trip de campos que o modelo unificado não expõe
type CampaignMetadata struct {
	OriginalCampaign any `json:"original_campaign,omitempty"`
}

// UnifiedCampaign é a representação canônica de uma campanha,
// independente da plataforma de origem
type UnifiedCampaign struct {
	CampaignID  string                      `json:"campaign_id"`
	Name        string                      `json:"name"`
	Platform    Platform                    `json:"platform"`
	Type        CampaignType                `json:"type"`
	Status      CampaignStatus              `json:"status"`
	Budget      Budget                      `json:"budget"`
	BidStrategy BidStrategy                 `json:"bid_strategy"`
	Targeting   Targeting                   `json:"targeting"`
	Schedule    Schedule                    `json:"schedule"`
	Performance *UnifiedCampaignPerformance `json:"performance,omitempty"`
	Metadata    CampaignMetadata            `json:"metadata"`
}

// CampaignFilters são aplicados pós-unificação, de forma idêntica
// independente da plataforma de origem. Os limiares de performance só
// filtram campanhas que já têm snapshot de performance carregado.
type CampaignFilters struct {
	Types        []CampaignType   `json:"types,omitempty"`
	Statuses     []CampaignStatus `json:"statuses,omitempty"`
	MinBudget    *float64         `json:"min_budget,omitempty"`
	MaxBudget    *float64         `json:"max_budget,omitempty"`
	MaxACOS      *float64         `json:"max_acos,omitempty"`
	MinROAS      *float64         `json:"min_roas,omitempty"`
	NameContains string           `json:"name_contains,omitempty"`
}

type CreateCampaignRequest struct {
	Platform    Platform     `json:"platform"`
	Name        string       `json:"name"`
	Type        CampaignType `json:"type"`
	Budget      Budget       `json:"budget"`
	BidStrategy BidStrategy  `json:"bid_strategy"`
	Targeting   Targeting    `json:"targeting"`
	Schedule    Schedule     `json:"schedule"`
}

// UpdateCampaignRequest carrega apenas os campos a alterar
type UpdateCampaignRequest struct {
	Name        *string         `json:"name,omitempty"`
	Status      *CampaignStatus `json:"status,omitempty"`
	Budget      *Budget         `json:"budget,omitempty"`
	BidStrategy *BidStrategy    `json:"bid_strategy,omitempty"`
}

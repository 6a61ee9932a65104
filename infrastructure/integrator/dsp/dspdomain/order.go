package dspdomain

// Status nativos de order da API de DSP. O vocabulário é próprio da
// plataforma e não coincide com o de sponsored ads.
const (
	StatusActive          = "ACTIVE"
	StatusSuspended       = "SUSPENDED"
	StatusArchived        = "ARCHIVED"
	StatusPendingApproval = "PENDING_APPROVAL"
	StatusRejected        = "REJECTED"
)

// Tipos nativos de order
const (
	OrderTypeDisplay = "DISPLAY"
	OrderTypeVideo   = "VIDEO"
	OrderTypeAudio   = "AUDIO"
	OrderTypeOTT     = "OTT"
)

// Estratégias de lance nativas
const (
	BidStrategyAutomatic  = "AUTOMATIC"
	BidStrategyFixedBid   = "FIXED_BID"
	BidStrategyCPATarget  = "CPA_TARGET"
	BidStrategyROASTarget = "ROAS_TARGET"
)

// Tipos nativos de budget
const (
	BudgetTypeDaily = "DAILY"
	BudgetTypeTotal = "TOTAL"
)

type Budget struct {
	Type     string  `json:"type"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Order é a entidade nativa de campanha na API de DSP, mantida intocada
// no metadata da campanha unificada
type Order struct {
	OrderID           string   `json:"orderId"`
	Name              string   `json:"name"`
	OrderType         string   `json:"orderType"`
	Status            string   `json:"status"`
	Budget            Budget   `json:"budget"`
	BidStrategy       string   `json:"bidStrategy"`
	Audiences         []string `json:"audiences,omitempty"`
	Demographics      []string `json:"demographics,omitempty"`
	GeoTargets        []string `json:"geoTargets,omitempty"`
	ContextualTargets []string `json:"contextualTargets,omitempty"`
	StartDateTime     string   `json:"startDateTime"` // formato RFC3339
	EndDateTime       *string  `json:"endDateTime,omitempty"`
	Timezone          string   `json:"timezone"`
}

type OrderList struct {
	Orders     []Order `json:"orders"`
	TotalCount int     `json:"totalCount"`
}

type OrderFilter struct {
	StatusFilter string `json:"statusFilter,omitempty"`
}

type CreateOrderRequest struct {
	Name              string   `json:"name"`
	OrderType         string   `json:"orderType"`
	Budget            Budget   `json:"budget"`
	BidStrategy       string   `json:"bidStrategy"`
	Audiences         []string `json:"audiences,omitempty"`
	Demographics      []string `json:"demographics,omitempty"`
	GeoTargets        []string `json:"geoTargets,omitempty"`
	ContextualTargets []string `json:"contextualTargets,omitempty"`
	StartDateTime     string   `json:"startDateTime"`
	EndDateTime       *string  `json:"endDateTime,omitempty"`
	Timezone          string   `json:"timezone"`
}

type UpdateOrderRequest struct {
	Name        *string `json:"name,omitempty"`
	Status      *string `json:"status,omitempty"`
	Budget      *Budget `json:"budget,omitempty"`
	BidStrategy *string `json:"bidStrategy,omitempty"`
}

package adsdomain

// Estados nativos de campanha da API de sponsored ads
const (
	StateEnabled       = "enabled"
	StatePaused        = "paused"
	StateArchived      = "archived"
	StatePendingReview = "pendingReview"
	StateRejected      = "rejected"
)

// Tipos nativos de campanha da API de sponsored ads
const (
	TypeSponsoredProducts = "sponsoredProducts"
	TypeSponsoredBrands   = "sponsoredBrands"
	TypeSponsoredDisplay  = "sponsoredDisplay"
)

// Estratégias de lance nativas
const (
	BiddingAutoForSales = "autoForSales"
	BiddingManual       = "manual"
	BiddingDynamicBids  = "dynamicBids"
)

// Campaign é o registro nativo da API de sponsored ads, mantido
// intocado no metadata da campanha unificada
type Campaign struct {
	CampaignID      string   `json:"campaignId"`
	Name            string   `json:"name"`
	CampaignType    string   `json:"campaignType"`
	State           string   `json:"state"`
	TargetingType   string   `json:"targetingType"`
	BudgetType      string   `json:"budgetType"` // daily | lifetime
	Budget          float64  `json:"budget"`
	CurrencyCode    string   `json:"currencyCode"`
	BiddingStrategy string   `json:"biddingStrategy"`
	Keywords        []string `json:"keywords,omitempty"`
	ProductTargets  []string `json:"productTargets,omitempty"`
	StartDate       string   `json:"startDate"` // formato 2006-01-02
	EndDate         *string  `json:"endDate,omitempty"`
	Timezone        string   `json:"timezone"`
}

type CampaignList struct {
	Campaigns  []Campaign `json:"campaigns"`
	TotalCount int        `json:"totalCount"`
}

// CampaignFilter é o filtro nativo aceito na listagem. A engine de
// unificação lista sem filtro e filtra pós-conversão, então na prática
// só o stateFilter é usado.
type CampaignFilter struct {
	StateFilter string `json:"stateFilter,omitempty"`
}

type CreateCampaignRequest struct {
	Name            string   `json:"name"`
	CampaignType    string   `json:"campaignType"`
	State           string   `json:"state"`
	TargetingType   string   `json:"targetingType"`
	BudgetType      string   `json:"budgetType"`
	Budget          float64  `json:"budget"`
	CurrencyCode    string   `json:"currencyCode"`
	BiddingStrategy string   `json:"biddingStrategy"`
	Keywords        []string `json:"keywords,omitempty"`
	ProductTargets  []string `json:"productTargets,omitempty"`
	StartDate       string   `json:"startDate"`
	EndDate         *string  `json:"endDate,omitempty"`
	Timezone        string   `json:"timezone"`
}

type UpdateCampaignRequest struct {
	Name            *string  `json:"name,omitempty"`
	State           *string  `json:"state,omitempty"`
	Budget          *float64 `json:"budget,omitempty"`
	BudgetType      *string  `json:"budgetType,omitempty"`
	BiddingStrategy *string  `json:"biddingStrategy,omitempty"`
}

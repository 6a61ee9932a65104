package domain

import "time"

type SuggestionType string

const (
	SuggestionTypeBid       SuggestionType = "BID"
	SuggestionTypeTargeting SuggestionType = "TARGETING"
	SuggestionTypeBudget    SuggestionType = "BUDGET"
)

type SuggestionPriority string

const (
	SuggestionPriorityHigh   SuggestionPriority = "HIGH"
	SuggestionPriorityMedium SuggestionPriority = "MEDIUM"
	SuggestionPriorityLow    SuggestionPriority = "LOW"
)

// Suggestion é uma recomendação de otimização derivada dos limiares de
// performance configurados
type Suggestion struct {
	ID             string             `json:"id"`
	CampaignID     string             `json:"campaign_id"`
	Type           SuggestionType     `json:"type"`
	Priority       SuggestionPriority `json:"priority"`
	Message        string             `json:"message"`
	CurrentValue   float64            `json:"current_value"`
	ProjectedValue float64            `json:"projected_value"`
	CreatedAt      time.Time          `json:"created_at"`
}

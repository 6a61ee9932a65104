package domain

type BulkOperationType string

const (
	BulkOperationPause        BulkOperationType = "PAUSE"
	BulkOperationActivate     BulkOperationType = "ACTIVATE"
	BulkOperationArchive      BulkOperationType = "ARCHIVE"
	BulkOperationUpdateBudget BulkOperationType = "UPDATE_BUDGET"
)

type BulkOperationParams struct {
	Budget *Budget `json:"budget,omitempty"`
}

type BulkOperationRequest struct {
	CampaignIDs []string             `json:"campaign_ids"`
	Operation   BulkOperationType    `json:"operation"`
	Params      *BulkOperationParams `json:"params,omitempty"`
}

type BulkFailure struct {
	CampaignID string `json:"campaign_id"`
	Error      string `json:"error"`
}

// BulkOperationResult sempre contabiliza cada ID de entrada em
// exatamente uma das duas listas
type BulkOperationResult struct {
	Successful []string      `json:"successful"`
	Failed     []BulkFailure `json:"failed"`
}

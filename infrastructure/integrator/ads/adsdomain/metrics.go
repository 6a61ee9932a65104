package adsdomain

// CampaignMetrics é o relatório nativo de performance de uma campanha
// de sponsored ads. A atribuição de vendas usa a janela de 14 dias.
type CampaignMetrics struct {
	CampaignID                string  `json:"campaignId"`
	Impressions               int64   `json:"impressions"`
	Clicks                    int64   `json:"clicks"`
	Cost                      float64 `json:"cost"`
	AttributedSales14D        float64 `json:"attributedSales14d"`
	AttributedConversions14D  int64   `json:"attributedConversions14d"`
	AttributedUnitsOrdered14D int64   `json:"attributedUnitsOrdered14d"`
}

// ProductAdMetrics agrega o desempenho de anúncios ligados a um ASIN
type ProductAdMetrics struct {
	ASIN            string  `json:"asin"`
	ActiveCampaigns int     `json:"activeCampaigns"`
	Spend           float64 `json:"spend"`
	Sales           float64 `json:"sales"`
}

// AccountMetrics agrega o desempenho de anúncios da conta inteira
type AccountMetrics struct {
	TotalSpend       float64 `json:"totalSpend"`
	TotalSales       float64 `json:"totalSales"`
	TotalImpressions int64   `json:"totalImpressions"`
	TotalClicks      int64   `json:"totalClicks"`
}

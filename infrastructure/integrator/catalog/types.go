package catalog

// Product é o registro nativo de catálogo (SP-API) de um ASIN
type Product struct {
	ASIN      string  `json:"asin"`
	Title     string  `json:"title"`
	Brand     string  `json:"brand"`
	Category  string  `json:"category"`
	SalesRank int     `json:"salesRank"`
	Price     float64 `json:"price"`
	Currency  string  `json:"currency"`
}

type SearchResult struct {
	Items      []Product `json:"items"`
	TotalCount int       `json:"totalCount"`
}

// OrderMetrics agrega os pedidos de um marketplace no período
type OrderMetrics struct {
	MarketplaceID string  `json:"marketplaceId"`
	TotalOrders   int     `json:"totalOrders"`
	TotalRevenue  float64 `json:"totalRevenue"`
	UnitsSold     int     `json:"unitsSold"`
}

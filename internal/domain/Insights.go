package domain

import "time"

// CatalogSection são os dados de catálogo (SP-API) de um produto
type CatalogSection struct {
	ASIN      string  `json:"asin"`
	Title     string  `json:"title"`
	Brand     string  `json:"brand"`
	Category  string  `json:"category"`
	SalesRank int     `json:"sales_rank"`
	Price     float64 `json:"price"`
	Currency  string  `json:"currency"`
}

// AdvertisingSection agrega o desempenho de anúncios ligados a um produto
type AdvertisingSection struct {
	ActiveCampaigns int     `json:"active_campaigns"`
	TotalSpend      float64 `json:"total_spend"`
	TotalSales      float64 `json:"total_sales"`
	ACOS            float64 `json:"acos"`
}

// AssociatesSection são os dados de atribuição/associados de um produto
type AssociatesSection struct {
	ListPrice           float64 `json:"list_price"`
	EstimatedCommission float64 `json:"estimated_commission"`
	DetailPageURL       string  `json:"detail_page_url"`
}

type SearchTerm struct {
	Term string `json:"term"`
	Rank int    `json:"rank"`
}

// BrandAnalyticsSection são os dados de brand analytics de um produto
type BrandAnalyticsSection struct {
	TopSearchTerms    []SearchTerm `json:"top_search_terms"`
	MarketBasketASINs []string     `json:"market_basket_asins"`
}

// ProductInsights é o agregado por ASIN. Cada seção é opcional e só é
// preenchida se o provider correspondente estiver habilitado e a
// chamada tiver sucesso.
type ProductInsights struct {
	ASIN               string                 `json:"asin"`
	SPAPIData          *CatalogSection        `json:"sp_api_data,omitempty"`
	AdvertisingData    *AdvertisingSection    `json:"advertising_data,omitempty"`
	AssociatesData     *AssociatesSection     `json:"associates_data,omitempty"`
	BrandAnalyticsData *BrandAnalyticsSection `json:"brand_analytics_data,omitempty"`
	LastUpdated        time.Time              `json:"last_updated"`
}

// OrderMetricsSection agrega os pedidos de um marketplace no período
type OrderMetricsSection struct {
	TotalOrders       int     `json:"total_orders"`
	TotalRevenue      float64 `json:"total_revenue"`
	UnitsSold         int     `json:"units_sold"`
	AverageOrderValue float64 `json:"average_order_value"`
}

// AdvertisingMetricsSection agrega o desempenho de anúncios da conta
type AdvertisingMetricsSection struct {
	TotalSpend       float64 `json:"total_spend"`
	TotalSales       float64 `json:"total_sales"`
	TotalImpressions int64   `json:"total_impressions"`
	TotalClicks      int64   `json:"total_clicks"`
	AverageACOS      float64 `json:"average_acos"`
}

// MarketplaceInsights é o agregado por marketplace, composto de pedidos
// e dados de anúncios
type MarketplaceInsights struct {
	MarketplaceID      string                     `json:"marketplace_id"`
	OrderMetrics       *OrderMetricsSection       `json:"order_metrics,omitempty"`
	AdvertisingMetrics *AdvertisingMetricsSection `json:"advertising_metrics,omitempty"`
	LastUpdated        time.Time                  `json:"last_updated"`
}

// ProductSummary é um item de resultado de busca de produtos
type ProductSummary struct {
	ASIN        string              `json:"asin"`
	Title       string              `json:"title"`
	Brand       string              `json:"brand"`
	Price       float64             `json:"price"`
	Currency    string              `json:"currency"`
	Catalog     *CatalogSection     `json:"catalog,omitempty"`
	Advertising *AdvertisingSection `json:"advertising,omitempty"`
}

type ProductSearchResult struct {
	Results    []*ProductSummary `json:"results"`
	TotalCount int               `json:"total_count"`
	Sources    []string          `json:"sources"`
}

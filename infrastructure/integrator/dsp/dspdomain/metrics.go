package dspdomain

// OrderMetrics é o relatório nativo de performance de uma order de DSP.
// A plataforma não reporta ACOS; o que existe é custo total e vendas
// atribuídas, além das métricas de viewability e vídeo.
type OrderMetrics struct {
	OrderID             string  `json:"orderId"`
	Impressions         int64   `json:"impressions"`
	ViewableImpressions int64   `json:"viewableImpressions"`
	Clicks              int64   `json:"clicks"`
	TotalCost           float64 `json:"totalCost"`
	Sales14D            float64 `json:"sales14d"`
	Purchases14D        int64   `json:"purchases14d"`
	VideoCompletions    int64   `json:"videoCompletions"`
	ConversionRate      float64 `json:"conversionRate"`
	BrandAwarenessLift  float64 `json:"brandAwarenessLift"`
}

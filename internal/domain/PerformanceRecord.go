package domain

// PlatformMetricSet é o formato intermediário das métricas da plataforma,
// já normalizado de schema mas ainda na moeda da conta de anúncios.
// Um conjunto vazio (objeto não encontrado / sem dados) é representado por nil.
type PlatformMetricSet struct {
	DeliveryStatus  *string  `json:"delivery_status"`
	Spend           float64  `json:"spend"`
	Clicks          int      `json:"clicks"`
	Purchases       int      `json:"purchases"`
	ConversionValue float64  `json:"conversion_value"`
	CostPerPurchase float64  `json:"cost_per_purchase"`
	Roas            *float64 `json:"roas"`
}

// PerformanceRecord é uma linha do relatório de performance: métricas da
// plataforma lado a lado com as métricas de atribuição interna (sirge_*).
// Campos de plataforma ficam nulos quando a plataforma não retornou dados
// para o objeto; zero é um valor válido e exibível.
type PerformanceRecord struct {
	RowID            int     `json:"id"`
	PlatformObjectID string  `json:"platform_object_id"`
	DisplayName      string  `json:"name"`
	DeliveryStatus   *string `json:"delivery_status"`

	AmountSpent          *float64 `json:"amount_spent"`
	Clicks               *int     `json:"clicks"`
	Purchases            *int     `json:"purchases"`
	CostPerPurchase      *float64 `json:"cost_per_purchase"`
	TotalConversionValue *float64 `json:"total_conversion_value"`
	Roas                 *string  `json:"roas"`

	SirgeClicks               *int     `json:"sirge_clicks"`
	SirgePurchases            *int     `json:"sirge_purchases"`
	SirgeCostPerPurchase      *float64 `json:"sirge_cost_per_purchase"`
	SirgeTotalConversionValue *float64 `json:"sirge_total_conversion_value"`
	SirgeRoas                 *string  `json:"sirge_roas"`

	// hasPlatformData indica se o registro veio de um metric set não vazio
	// e portanto entra nas somas do resumo
	hasPlatformData bool
}

// MarkPlatformData registra que a linha veio de um metric set não vazio
func (r *PerformanceRecord) MarkPlatformData() {
	r.hasPlatformData = true
}

// HasPlatformData informa se a linha contribui para os totais do resumo
func (r *PerformanceRecord) HasPlatformData() bool {
	return r.hasPlatformData
}

// PerformanceReport é a saída do pipeline: linhas em ordem de entrada e o
// resumo por último. O resumo tem o mesmo formato de uma linha, com
// DisplayName substituído pelo título ("Results from N ads") e RowID = N+1.
type PerformanceReport struct {
	Records []*PerformanceRecord `json:"records"`
	Summary *PerformanceRecord   `json:"summary"`
}

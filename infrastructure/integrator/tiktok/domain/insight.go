package tiktokdomain

// Envelope é o invólucro comum das respostas da API do TikTok.
// A API responde HTTP 200 mesmo para erros, o resultado real vem em Code.
type Envelope struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}

// IsSuccess verifica se a resposta indica sucesso
func (e *Envelope) IsSuccess() bool {
	return e.Code == 0
}

// IsTokenExpired verifica se o erro é de token inválido ou expirado
func (e *Envelope) IsTokenExpired() bool {
	// O código 40105 representa access token inválido/expirado
	return e.Code == 40105
}

// ObjectMetrics é o objeto plano de métricas do relatório integrado.
// A API devolve todos os valores como string.
type ObjectMetrics struct {
	Spend                    string `json:"spend"`
	Clicks                   string `json:"clicks"`
	Conversion               string `json:"conversion"`
	CostPerConversion        string `json:"cost_per_conversion"`
	TotalCompletePaymentRate string `json:"total_complete_payment_rate"`
	CompletePaymentRoas      string `json:"complete_payment_roas"`
}

// ReportRow é uma linha do relatório integrado, com as dimensões de agrupamento
type ReportRow struct {
	Dimensions map[string]string `json:"dimensions"`
	Metrics    ObjectMetrics     `json:"metrics"`
}

// ObjectInfo é a linha retornada pelos endpoints campaign/adgroup/ad get
type ObjectInfo struct {
	CampaignID      string `json:"campaign_id,omitempty"`
	AdgroupID       string `json:"adgroup_id,omitempty"`
	AdID            string `json:"ad_id,omitempty"`
	OperationStatus string `json:"operation_status"`
	SecondaryStatus string `json:"secondary_status"`
}

type Page struct {
	TotalNumber int `json:"total_number"`
	TotalPage   int `json:"total_page"`
	PageSize    int `json:"page_size"`
	Page        int `json:"page"`
}

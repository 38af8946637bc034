package domain

import "time"

// ReportFilters define o intervalo de datas do relatório
type ReportFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// AttributionGroup representa uma campanha/conjunto/anúncio conforme rastreado
// pelo pixel interno, já agrupado por ID do objeto na plataforma
type AttributionGroup struct {
	PlatformObjectID string  `json:"platform_object_id"`
	DisplayName      string  `json:"display_name"`
	Clicks           int     `json:"clicks"`
	Purchases        int     `json:"purchases"`
	ConversionValue  float64 `json:"conversion_value"`
}

// ReportInput é a entrada completa de uma execução do pipeline de reconciliação
type ReportInput struct {
	BusinessID      string
	Platform        Platform
	Level           ReportLevel
	Filters         *ReportFilters
	Groups          []*AttributionGroup
	ViewerCurrency  string
	AccountCurrency string
	Credentials     PlatformCredentials
	// SelectedObjectIDs restringe o relatório a objetos específicos; vazio = todos
	SelectedObjectIDs []string
}

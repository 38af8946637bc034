package domain

import "time"

// ReportSnapshot é um relatório de performance pré-calculado pelo agendador
// diário e armazenado no banco para consulta histórica
type ReportSnapshot struct {
	ID         int64              `json:"id"`
	BusinessID string             `json:"business_id"`
	Platform   Platform           `json:"platform"`
	Level      ReportLevel        `json:"level"`
	Date       time.Time          `json:"date"`
	Report     *PerformanceReport `json:"report"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

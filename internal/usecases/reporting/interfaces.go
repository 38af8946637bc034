package reporting

import (
	"context"

	"github.com/sirge-io/performance-api/internal/domain"
)

// PlatformInsighter é a capacidade comum dos integradores de plataforma de
// anúncios: buscar o status de entrega e as métricas de um objeto pelo ID
type PlatformInsighter interface {
	// Platform identifica a plataforma atendida pelo integrador
	Platform() domain.Platform

	// FetchDeliveryStatus busca o status de entrega normalizado do objeto.
	// Retorna (nil, nil) quando o objeto não existe na plataforma.
	FetchDeliveryStatus(ctx context.Context, level domain.ReportLevel, objectID string, credentials domain.PlatformCredentials) (*string, error)

	// FetchInsights busca as métricas do objeto no período, ainda na moeda da
	// conta de anúncios. Retorna (nil, nil) quando não há dados.
	FetchInsights(ctx context.Context, level domain.ReportLevel, objectID string, credentials domain.PlatformCredentials, filters *domain.ReportFilters) (*domain.PlatformMetricSet, error)
}

// Reporter define a interface do pipeline de reconciliação de performance
type Reporter interface {
	// GenerateReport executa o pipeline completo para o negócio. O chamador
	// preenche BusinessID, Platform, Level, Filters e SelectedObjectIDs do
	// input; grupos, credenciais e moedas são resolvidos pelo serviço.
	GenerateReport(ctx context.Context, input *domain.ReportInput) (*domain.PerformanceReport, error)
}

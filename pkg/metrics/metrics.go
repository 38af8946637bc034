package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics concentra os contadores Prometheus do pipeline de relatórios
type Metrics struct {
	ReportRuns        *prometheus.CounterVec
	ReportRunDuration *prometheus.HistogramVec
	PlatformFetches   *prometheus.CounterVec
}

// DefaultMetrics é a instância global registrada no registry padrão
var DefaultMetrics *Metrics

// New cria e registra as métricas do serviço
func New(namespace string) *Metrics {
	m := &Metrics{
		ReportRuns: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "report_runs_total",
				Help:      "Total de execuções do pipeline de relatório de performance",
			},
			[]string{"platform", "level", "status"},
		),
		ReportRunDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "report_run_duration_seconds",
				Help:      "Duração de uma execução completa do pipeline",
				Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"platform", "level"},
		),
		PlatformFetches: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "platform_fetches_total",
				Help:      "Total de buscas de métricas por objeto nas plataformas de anúncios",
			},
			[]string{"platform", "result"},
		),
	}

	DefaultMetrics = m
	return m
}

// ObserveRun registra o resultado e a duração de uma execução do pipeline
func (m *Metrics) ObserveRun(platform, level, status string, start time.Time) {
	m.ReportRuns.WithLabelValues(platform, level, status).Inc()
	m.ReportRunDuration.WithLabelValues(platform, level).Observe(time.Since(start).Seconds())
}

// Handler expõe o endpoint /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}

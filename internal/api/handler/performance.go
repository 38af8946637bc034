package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirge-io/performance-api/infrastructure/repository"
	"github.com/sirge-io/performance-api/internal/domain"
	"github.com/sirge-io/performance-api/internal/usecases/reporting"
	"github.com/sirge-io/performance-api/pkg/apiErrors"
	"github.com/sirge-io/performance-api/pkg/log"
	"github.com/sirge-io/performance-api/pkg/utils"
)

// GetPerformanceReport gera o relatório de performance de um negócio, cruzando
// as métricas do pixel interno com as métricas ao vivo da plataforma de anúncios
func GetPerformanceReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		businessID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if businessID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do negócio não fornecido", nil)
			return
		}

		platform := domain.Platform(r.URL.Query().Get("platform"))
		if !platform.IsValid() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Plataforma inválida", nil)
			return
		}

		level := domain.ReportLevel(r.URL.Query().Get("level"))
		if !level.IsValid() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Nível de agrupamento inválido", nil)
			return
		}

		filters, err := parseReportFilters(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"business_id": businessID,
				"error":       err.Error(),
			}).Warn("performance: invalid date filters")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas inválidas, use o formato YYYY-MM-DD", nil)
			return
		}

		input := &domain.ReportInput{
			BusinessID:        businessID,
			Platform:          platform,
			Level:             level,
			Filters:           filters,
			SelectedObjectIDs: parseSelectedIDs(r.URL.Query().Get("ids")),
		}

		logger.WithFields(log.Fields{
			"business_id": businessID,
			"platform":    string(platform),
			"level":       string(level),
		}).Info("performance: generating report")

		report, err := service.GenerateReport(r.Context(), input)
		if err != nil {
			logger.WithFields(log.Fields{
				"business_id": businessID,
				"platform":    string(platform),
				"level":       string(level),
				"error":       err.Error(),
			}).Error("performance: failed to generate report")

			writeReportError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithFields(log.Fields{
				"business_id": businessID,
				"error":       err.Error(),
			}).Error("performance: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetPerformanceSnapshot retorna um relatório pré-calculado pelo agendador diário
func GetPerformanceSnapshot(repo repository.ReportSnapshotRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		businessID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if businessID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do negócio não fornecido", nil)
			return
		}

		platform := domain.Platform(r.URL.Query().Get("platform"))
		if !platform.IsValid() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Plataforma inválida", nil)
			return
		}

		level := domain.ReportLevel(r.URL.Query().Get("level"))
		if !level.IsValid() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Nível de agrupamento inválido", nil)
			return
		}

		date, err := time.Parse(time.DateOnly, r.URL.Query().Get("date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		snapshot, err := repo.GetByBusinessAndDate(businessID, platform, level, date)
		if err != nil {
			logger.WithFields(log.Fields{
				"business_id": businessID,
				"error":       err.Error(),
			}).Error("performance: failed to get report snapshot")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar snapshot", nil)
			return
		}

		if snapshot == nil {
			http.Error(w, "snapshot não encontrado", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshot); err != nil {
			logger.WithError(err).Error("performance: failed to encode snapshot response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func parseReportFilters(r *http.Request) (*domain.ReportFilters, error) {
	startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
	if err != nil {
		return nil, err
	}

	endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
	if err != nil {
		return nil, err
	}

	return &domain.ReportFilters{
		StartDate: startDate,
		EndDate:   endDate,
	}, nil
}

// parseSelectedIDs interpreta o parâmetro opcional "ids" (lista separada por vírgula)
func parseSelectedIDs(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, part := range parts {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}

	return ids
}

// writeReportError traduz os erros do pipeline para os códigos da API
func writeReportError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrAuthExpired):
		apiErrors.WriteError(w, apiErrors.ErrPlatformAuthExpired, "Token da plataforma de anúncios expirado, reconecte a conta", nil)
	case errors.Is(err, domain.ErrRateNotFound):
		apiErrors.WriteError(w, apiErrors.ErrExchangeRateNotFound, err.Error(), nil)
	case errors.Is(err, domain.ErrPlatformUnavailable):
		apiErrors.WriteError(w, apiErrors.ErrPlatformUnavailable, "Plataforma de anúncios indisponível", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
	}
}

package reporting

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirge-io/performance-api/infrastructure/repository"
	"github.com/sirge-io/performance-api/internal/config"
	"github.com/sirge-io/performance-api/internal/domain"
	"github.com/sirge-io/performance-api/internal/usecases/converting"
	"github.com/sirge-io/performance-api/pkg/metrics"
)

// Limite padrão de buscas simultâneas por execução, para respeitar os rate
// limits das plataformas
const defaultMaxConcurrent = 5

// Moeda de exibição padrão quando o negócio não definiu uma
const defaultViewerCurrency = "USD"

type Service struct {
	cfg                   *config.Config
	businessRepository    repository.BusinessRepository
	attributionRepository repository.AttributionRepository
	resolver              converting.Resolver
	insighters            map[domain.Platform]PlatformInsighter
	metrics               *metrics.Metrics
}

// NewService cria uma nova instância do serviço de relatórios de performance
func NewService(
	cfg *config.Config,
	businessRepo repository.BusinessRepository,
	attributionRepo repository.AttributionRepository,
	resolver converting.Resolver,
	m *metrics.Metrics,
	insighters ...PlatformInsighter,
) Reporter {
	byPlatform := make(map[domain.Platform]PlatformInsighter, len(insighters))
	for _, insighter := range insighters {
		byPlatform[insighter.Platform()] = insighter
	}

	return &Service{
		cfg:                   cfg,
		businessRepository:    businessRepo,
		attributionRepository: attributionRepo,
		resolver:              resolver,
		insighters:            byPlatform,
		metrics:               m,
	}
}

func (s *Service) GenerateReport(ctx context.Context, input *domain.ReportInput) (*domain.PerformanceReport, error) {
	start := time.Now()

	if !input.Platform.IsValid() {
		return nil, fmt.Errorf("plataforma inválida: %s", input.Platform)
	}

	if !input.Level.IsValid() {
		return nil, fmt.Errorf("nível de agrupamento inválido: %s", input.Level)
	}

	insighter, ok := s.insighters[input.Platform]
	if !ok {
		return nil, fmt.Errorf("nenhum integrador registrado para a plataforma %s", input.Platform)
	}

	report, err := s.run(ctx, input, insighter)

	status := "success"
	if err != nil {
		status = "aborted"
	}

	if s.metrics != nil {
		s.metrics.ObserveRun(string(input.Platform), string(input.Level), status, start)
	}

	return report, err
}

func (s *Service) run(ctx context.Context, input *domain.ReportInput, insighter PlatformInsighter) (*domain.PerformanceReport, error) {
	business, err := s.businessRepository.GetBusinessByID(input.BusinessID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"business_id": input.BusinessID,
			"error":       err.Error(),
		}).Error("performance: failed to get business from repository")
		return nil, err
	}

	if business == nil {
		return nil, fmt.Errorf("negócio não encontrado: %s", input.BusinessID)
	}

	credentials, accountCurrency, err := business.CredentialsFor(input.Platform)
	if err != nil {
		return nil, err
	}

	input.Credentials = credentials
	input.AccountCurrency = accountCurrency
	input.ViewerCurrency = business.ViewerCurrency
	if input.ViewerCurrency == "" {
		input.ViewerCurrency = defaultViewerCurrency
	}

	groups, err := s.attributionRepository.GetGroupedByObject(input.BusinessID, input.Platform, input.Level, input.Filters)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar grupos de atribuição: %w", err)
	}
	input.Groups = groups

	// A conversão de moeda é resolvida uma única vez, antes de qualquer busca,
	// e compartilhada em leitura por todas as goroutines. Taxa ausente aborta a
	// execução inteira, não existe estado parcial de moeda utilizável.
	var asOf *time.Time
	if input.Filters != nil {
		asOf = input.Filters.EndDate
	}

	conversion, err := s.resolver.Resolve(input.AccountCurrency, input.ViewerCurrency, asOf)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"business_id":      input.BusinessID,
			"account_currency": input.AccountCurrency,
			"viewer_currency":  input.ViewerCurrency,
			"error":            err.Error(),
		}).Error("performance: failed to resolve currency conversion")
		return nil, err
	}

	emitted := filterGroups(input)

	records, err := s.fetchAll(ctx, input, insighter, emitted, conversion)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"business_id": input.BusinessID,
		"platform":    string(input.Platform),
		"records":     len(records),
	}).Info("performance: report generated")

	return &domain.PerformanceReport{
		Records: records,
		Summary: FactorySummary(records, input.Level),
	}, nil
}

// emittedGroup é um grupo que sobreviveu aos filtros, com o número de linha
// já atribuído de forma densa sobre os grupos emitidos
type emittedGroup struct {
	rowID int
	group *domain.AttributionGroup
}

// filterGroups descarta grupos com IDs de placeholder e, quando o chamador
// selecionou objetos específicos, os que estão fora da seleção. Grupos pulados
// não consomem número de linha.
func filterGroups(input *domain.ReportInput) []emittedGroup {
	var selected map[string]bool
	if len(input.SelectedObjectIDs) > 0 {
		selected = make(map[string]bool, len(input.SelectedObjectIDs))
		for _, objectID := range input.SelectedObjectIDs {
			selected[objectID] = true
		}
	}

	emitted := make([]emittedGroup, 0, len(input.Groups))
	rowID := 0

	for _, group := range input.Groups {
		if domain.IsSentinelObjectID(input.Level, group.PlatformObjectID) {
			continue
		}

		if selected != nil && !selected[group.PlatformObjectID] {
			continue
		}

		rowID++
		emitted = append(emitted, emittedGroup{rowID: rowID, group: group})
	}

	return emitted
}

// fetchAll busca as métricas de cada grupo em paralelo, limitado pelo
// semáforo. Cada goroutine escreve somente no próprio slot; a redução acontece
// depois, sequencialmente e em ordem de entrada, então a saída independe da
// ordem de término das buscas.
func (s *Service) fetchAll(
	ctx context.Context,
	input *domain.ReportInput,
	insighter PlatformInsighter,
	emitted []emittedGroup,
	conversion *domain.CurrencyConversionContext,
) ([]*domain.PerformanceRecord, error) {
	maxConcurrent := defaultMaxConcurrent
	if s.cfg != nil && s.cfg.Reporting.MaxConcurrentFetches > 0 {
		maxConcurrent = s.cfg.Reporting.MaxConcurrentFetches
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	semaphore := make(chan struct{}, maxConcurrent)
	var wg sync.WaitGroup

	records := make([]*domain.PerformanceRecord, len(emitted))

	var authErr error
	var once sync.Once

	for i, item := range emitted {
		wg.Add(1)

		go func(slot int, item emittedGroup) {
			defer wg.Done()

			// Adquirir uma vaga no semáforo
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			// Execução cancelada por token expirado: a linha vira metric set
			// vazio e será descartada junto com o relatório
			if runCtx.Err() != nil {
				records[slot] = FactoryPerformanceRecord(item.rowID, item.group, nil)
				return
			}

			metricSet, err := s.fetchMetricSet(runCtx, input, insighter, item.group.PlatformObjectID)
			if err != nil {
				if errors.Is(err, domain.ErrAuthExpired) {
					once.Do(func() {
						authErr = err
						cancel()
					})
					records[slot] = FactoryPerformanceRecord(item.rowID, item.group, nil)
					return
				}

				// Falha de busca degrada para metric set vazio em vez de
				// abortar a execução; a linha mantém as métricas internas
				logrus.WithFields(logrus.Fields{
					"business_id":        input.BusinessID,
					"platform":           string(input.Platform),
					"platform_object_id": item.group.PlatformObjectID,
					"error":              err.Error(),
				}).Warn("performance: fetch degraded to empty metric set")
				metricSet = nil
			}

			records[slot] = FactoryPerformanceRecord(item.rowID, item.group, converting.ApplyConversion(metricSet, conversion))
		}(i, item)
	}

	wg.Wait()

	if authErr != nil {
		return nil, fmt.Errorf("erro de autorização na plataforma %s: %w", input.Platform, authErr)
	}

	return records, nil
}

// fetchMetricSet busca status e métricas de um objeto e monta o metric set
// ainda na moeda da conta de anúncios
func (s *Service) fetchMetricSet(ctx context.Context, input *domain.ReportInput, insighter PlatformInsighter, objectID string) (*domain.PlatformMetricSet, error) {
	status, err := insighter.FetchDeliveryStatus(ctx, input.Level, objectID, input.Credentials)
	if err != nil {
		s.countFetch(input.Platform, fetchResult(err))
		return nil, err
	}

	metricSet, err := insighter.FetchInsights(ctx, input.Level, objectID, input.Credentials, input.Filters)
	if err != nil {
		s.countFetch(input.Platform, fetchResult(err))
		return nil, err
	}

	if metricSet == nil {
		s.countFetch(input.Platform, "empty")
		return nil, nil
	}

	metricSet.DeliveryStatus = status
	s.countFetch(input.Platform, "ok")

	return metricSet, nil
}

func (s *Service) countFetch(platform domain.Platform, result string) {
	if s.metrics != nil {
		s.metrics.PlatformFetches.WithLabelValues(string(platform), result).Inc()
	}
}

func fetchResult(err error) string {
	if errors.Is(err, domain.ErrAuthExpired) {
		return "auth_expired"
	}
	return "error"
}

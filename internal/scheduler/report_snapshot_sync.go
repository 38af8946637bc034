package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/sirge-io/performance-api/infrastructure/repository"
	"github.com/sirge-io/performance-api/internal/config"
	"github.com/sirge-io/performance-api/internal/domain"
	"github.com/sirge-io/performance-api/internal/usecases/reporting"
)

// ReportSnapshotSyncConfig representa a configuração do agendador de snapshots
type ReportSnapshotSyncConfig struct {
	CronSchedule  string
	RetentionDays int
	SyncEnabled   bool
}

// ReportSnapshotSyncService pré-calcula diariamente o relatório de performance
// de cada negócio ativo e o persiste como snapshot para consulta histórica
type ReportSnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              ReportSnapshotSyncConfig
	businessRepo        repository.BusinessRepository
	snapshotRepo        repository.ReportSnapshotRepository
	reportService       reporting.Reporter
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewReportSnapshotSyncService cria uma nova instância do serviço de sincronização de snapshots
func NewReportSnapshotSyncService(
	businessRepo repository.BusinessRepository,
	snapshotRepo repository.ReportSnapshotRepository,
	reportService reporting.Reporter,
	appConfig *config.Config,
) *ReportSnapshotSyncService {
	syncConfig := ReportSnapshotSyncConfig{
		CronSchedule:  appConfig.ReportSnapshotSync.CronSchedule,
		RetentionDays: appConfig.ReportSnapshotSync.RetentionDays,
		SyncEnabled:   appConfig.ReportSnapshotSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  syncConfig.CronSchedule,
		"retention_days": syncConfig.RetentionDays,
		"sync_enabled":   syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshots de relatório carregada")

	return &ReportSnapshotSyncService{
		scheduler:     scheduler,
		config:        syncConfig,
		businessRepo:  businessRepo,
		snapshotRepo:  snapshotRepo,
		reportService: reportService,
		syncRunning:   false,
	}
}

// Start inicia o agendador
func (s *ReportSnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de snapshots de relatório desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de snapshots de relatório")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllSnapshots(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de snapshots: %w", err)
	}

	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de snapshots de relatório")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllSnapshots gera o snapshot de ontem para cada negócio ativo e em
// seguida remove os snapshots fora da janela de retenção
func (s *ReportSnapshotSyncService) syncAllSnapshots(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshots já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de snapshots para todos os negócios ativos")

	businesses, err := s.businessRepo.ListBusinesses(true)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar negócios para sincronização de snapshots")
		return
	}

	if len(businesses) == 0 {
		logrus.Info("Nenhum negócio ativo encontrado para sincronização de snapshots")
		return
	}

	// Snapshot cobre o dia de ontem, que já está fechado
	date := time.Now().AddDate(0, 0, -1)
	generated := 0

	for _, business := range businesses {
		generated += s.syncBusinessSnapshots(ctx, business, date)
	}

	if s.config.RetentionDays > 0 {
		deleted, err := s.snapshotRepo.DeleteOlderThan(s.config.RetentionDays)
		if err != nil {
			logrus.WithError(err).Error("Erro ao remover snapshots fora da janela de retenção")
		} else if deleted > 0 {
			logrus.WithFields(logrus.Fields{
				"deleted":        deleted,
				"retention_days": s.config.RetentionDays,
			}).Info("Snapshots antigos removidos")
		}
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":   duration.String(),
		"businesses": len(businesses),
		"snapshots":  generated,
		"date":       date.Format(time.DateOnly),
	}).Info("Sincronização de snapshots concluída")

	s.lastSyncCompletedAt = time.Now()
}

// syncBusinessSnapshots gera os snapshots de um negócio para cada plataforma
// conectada e cada nível de agrupamento
func (s *ReportSnapshotSyncService) syncBusinessSnapshots(ctx context.Context, business *domain.Business, date time.Time) int {
	levels := []domain.ReportLevel{domain.LevelCampaign, domain.LevelAdSet, domain.LevelAd}
	generated := 0

	for _, platform := range []domain.Platform{domain.PlatformFacebook, domain.PlatformTikTok} {
		// Pular plataformas que o negócio não conectou
		if _, _, err := business.CredentialsFor(platform); err != nil {
			continue
		}

		for _, level := range levels {
			if err := s.generateSnapshot(ctx, business, platform, level, date); err != nil {
				logrus.WithFields(logrus.Fields{
					"business_id": business.ID,
					"platform":    string(platform),
					"level":       string(level),
					"date":        date.Format(time.DateOnly),
					"error":       err.Error(),
				}).Error("Erro ao gerar snapshot de relatório")
				continue
			}
			generated++
		}
	}

	return generated
}

func (s *ReportSnapshotSyncService) generateSnapshot(
	ctx context.Context,
	business *domain.Business,
	platform domain.Platform,
	level domain.ReportLevel,
	date time.Time,
) error {
	input := &domain.ReportInput{
		BusinessID: business.ID,
		Platform:   platform,
		Level:      level,
		Filters: &domain.ReportFilters{
			StartDate: &date,
			EndDate:   &date,
		},
	}

	report, err := s.reportService.GenerateReport(ctx, input)
	if err != nil {
		return err
	}

	return s.snapshotRepo.SaveOrUpdate(&domain.ReportSnapshot{
		BusinessID: business.ID,
		Platform:   platform,
		Level:      level,
		Date:       date,
		Report:     report,
	})
}

// TriggerManualSync inicia manualmente uma sincronização de snapshots
func (s *ReportSnapshotSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshots já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de snapshots")
	go s.syncAllSnapshots(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *ReportSnapshotSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"retention_days":         s.config.RetentionDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}

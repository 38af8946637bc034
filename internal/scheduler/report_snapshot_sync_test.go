package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	repomocks "github.com/sirge-io/performance-api/infrastructure/repository/mocks"
	"github.com/sirge-io/performance-api/internal/config"
	"github.com/sirge-io/performance-api/internal/domain"
	reportingmocks "github.com/sirge-io/performance-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func newTestConfig() *config.Config {
	return &config.Config{
		ReportSnapshotSync: config.ReportSnapshotSync{
			CronSchedule:  "0 3 * * *",
			RetentionDays: 90,
			Enabled:       true,
		},
	}
}

func TestSyncAllSnapshots(t *testing.T) {
	t.Run("Gera snapshots por plataforma conectada e nível", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		businessRepo := repomocks.NewMockBusinessRepository(ctrl)
		snapshotRepo := repomocks.NewMockReportSnapshotRepository(ctrl)
		reporter := reportingmocks.NewMockReporter(ctrl)

		// Negócio com Facebook e TikTok conectados
		bothPlatforms := &domain.Business{
			ID:                  "biz_both",
			Active:              true,
			FacebookAdAccountID: stringPtr("act_123"),
			FacebookAccessToken: stringPtr("fb-token"),
			TikTokAdvertiserID:  stringPtr("adv_456"),
			TikTokAccessToken:   stringPtr("tt-token"),
		}

		// Negócio apenas com Facebook
		facebookOnly := &domain.Business{
			ID:                  "biz_fb",
			Active:              true,
			FacebookAdAccountID: stringPtr("act_789"),
			FacebookAccessToken: stringPtr("fb-token-2"),
		}

		// Negócio sem nenhuma plataforma conectada
		disconnected := &domain.Business{
			ID:     "biz_none",
			Active: true,
		}

		businessRepo.EXPECT().
			ListBusinesses(true).
			Return([]*domain.Business{bothPlatforms, facebookOnly, disconnected}, nil)

		report := &domain.PerformanceReport{}

		// 2 plataformas x 3 níveis + 1 plataforma x 3 níveis = 9 relatórios
		reporter.EXPECT().
			GenerateReport(gomock.Any(), gomock.Any()).
			Return(report, nil).
			Times(9)

		snapshotRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(snapshot *domain.ReportSnapshot) error {
				assert.NotEmpty(t, snapshot.BusinessID)
				assert.True(t, snapshot.Platform.IsValid())
				assert.True(t, snapshot.Level.IsValid())
				assert.Equal(t, report, snapshot.Report)
				return nil
			}).
			Times(9)

		snapshotRepo.EXPECT().
			DeleteOlderThan(90).
			Return(int64(3), nil)

		service := NewReportSnapshotSyncService(businessRepo, snapshotRepo, reporter, newTestConfig())
		service.syncAllSnapshots(context.Background())

		assert.False(t, service.lastSyncCompletedAt.IsZero())
	})

	t.Run("Falha em um snapshot não interrompe os demais", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		businessRepo := repomocks.NewMockBusinessRepository(ctrl)
		snapshotRepo := repomocks.NewMockReportSnapshotRepository(ctrl)
		reporter := reportingmocks.NewMockReporter(ctrl)

		business := &domain.Business{
			ID:                  "biz_fb",
			Active:              true,
			FacebookAdAccountID: stringPtr("act_123"),
			FacebookAccessToken: stringPtr("fb-token"),
		}

		businessRepo.EXPECT().
			ListBusinesses(true).
			Return([]*domain.Business{business}, nil)

		// Primeiro nível falha, os outros dois seguem normalmente
		gomock.InOrder(
			reporter.EXPECT().
				GenerateReport(gomock.Any(), gomock.Any()).
				Return(nil, assert.AnError),
			reporter.EXPECT().
				GenerateReport(gomock.Any(), gomock.Any()).
				Return(&domain.PerformanceReport{}, nil).
				Times(2),
		)

		snapshotRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			Return(nil).
			Times(2)

		snapshotRepo.EXPECT().
			DeleteOlderThan(90).
			Return(int64(0), nil)

		service := NewReportSnapshotSyncService(businessRepo, snapshotRepo, reporter, newTestConfig())
		service.syncAllSnapshots(context.Background())
	})

	t.Run("Nenhum negócio ativo encerra sem gerar snapshots", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		businessRepo := repomocks.NewMockBusinessRepository(ctrl)
		snapshotRepo := repomocks.NewMockReportSnapshotRepository(ctrl)
		reporter := reportingmocks.NewMockReporter(ctrl)

		businessRepo.EXPECT().
			ListBusinesses(true).
			Return([]*domain.Business{}, nil)

		service := NewReportSnapshotSyncService(businessRepo, snapshotRepo, reporter, newTestConfig())
		service.syncAllSnapshots(context.Background())
	})

	t.Run("Snapshot cobre o dia anterior", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		businessRepo := repomocks.NewMockBusinessRepository(ctrl)
		snapshotRepo := repomocks.NewMockReportSnapshotRepository(ctrl)
		reporter := reportingmocks.NewMockReporter(ctrl)

		business := &domain.Business{
			ID:                  "biz_fb",
			Active:              true,
			FacebookAdAccountID: stringPtr("act_123"),
			FacebookAccessToken: stringPtr("fb-token"),
		}

		businessRepo.EXPECT().
			ListBusinesses(true).
			Return([]*domain.Business{business}, nil)

		yesterday := time.Now().AddDate(0, 0, -1).Format(time.DateOnly)

		reporter.EXPECT().
			GenerateReport(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, input *domain.ReportInput) (*domain.PerformanceReport, error) {
				assert.Equal(t, yesterday, input.Filters.StartDate.Format(time.DateOnly))
				assert.Equal(t, yesterday, input.Filters.EndDate.Format(time.DateOnly))
				return &domain.PerformanceReport{}, nil
			}).
			Times(3)

		snapshotRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(snapshot *domain.ReportSnapshot) error {
				assert.Equal(t, yesterday, snapshot.Date.Format(time.DateOnly))
				return nil
			}).
			Times(3)

		snapshotRepo.EXPECT().
			DeleteOlderThan(90).
			Return(int64(0), nil)

		service := NewReportSnapshotSyncService(businessRepo, snapshotRepo, reporter, newTestConfig())
		service.syncAllSnapshots(context.Background())
	})
}

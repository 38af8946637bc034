package reporting

import (
	"context"
	"testing"

	repomocks "github.com/sirge-io/performance-api/infrastructure/repository/mocks"
	"github.com/sirge-io/performance-api/internal/config"
	"github.com/sirge-io/performance-api/internal/domain"
	convertingmocks "github.com/sirge-io/performance-api/internal/usecases/converting/mocks"
	"github.com/sirge-io/performance-api/internal/usecases/reporting/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func testBusiness() *domain.Business {
	return &domain.Business{
		ID:                      "biz_1",
		Name:                    "Loja Teste",
		ViewerCurrency:          "USD",
		Active:                  true,
		FacebookAdAccountID:     stringPtr("act_123"),
		FacebookAccessToken:     stringPtr("token_123"),
		FacebookAccountCurrency: stringPtr("USD"),
	}
}

func noConversion() *domain.CurrencyConversionContext {
	return &domain.CurrencyConversionContext{NeedsConversion: false}
}

type serviceMocks struct {
	businessRepo    *repomocks.MockBusinessRepository
	attributionRepo *repomocks.MockAttributionRepository
	resolver        *convertingmocks.MockResolver
	insighter       *mocks.MockPlatformInsighter
}

func newTestService(t *testing.T) (Reporter, *serviceMocks) {
	ctrl := gomock.NewController(t)

	m := &serviceMocks{
		businessRepo:    repomocks.NewMockBusinessRepository(ctrl),
		attributionRepo: repomocks.NewMockAttributionRepository(ctrl),
		resolver:        convertingmocks.NewMockResolver(ctrl),
		insighter:       mocks.NewMockPlatformInsighter(ctrl),
	}

	m.insighter.EXPECT().Platform().Return(domain.PlatformFacebook).AnyTimes()

	cfg := &config.Config{
		Reporting: config.Reporting{MaxConcurrentFetches: 2},
	}

	service := NewService(cfg, m.businessRepo, m.attributionRepo, m.resolver, nil, m.insighter)
	return service, m
}

func TestService_GenerateReport(t *testing.T) {
	t.Run("Pipeline completo com linha sentinela descartada", func(t *testing.T) {
		service, m := newTestService(t)

		m.businessRepo.EXPECT().GetBusinessByID("biz_1").Return(testBusiness(), nil)
		m.attributionRepo.EXPECT().
			GetGroupedByObject("biz_1", domain.PlatformFacebook, domain.LevelAd, gomock.Any()).
			Return([]*domain.AttributionGroup{
				// Macro não substituída na URL do anúncio: não vira linha
				{PlatformObjectID: "{{ad.id}}", Clicks: 7, Purchases: 1, ConversionValue: 50},
				{PlatformObjectID: "ad_1", DisplayName: "Ad um", Clicks: 80, Purchases: 2, ConversionValue: 300},
				{PlatformObjectID: "ad_2", DisplayName: "Ad dois", Clicks: 40, Purchases: 1, ConversionValue: 150},
			}, nil)
		m.resolver.EXPECT().Resolve("USD", "USD", gomock.Any()).Return(noConversion(), nil)

		m.insighter.EXPECT().
			FetchDeliveryStatus(gomock.Any(), domain.LevelAd, "ad_1", gomock.Any()).
			Return(stringPtr("Active"), nil)
		m.insighter.EXPECT().
			FetchInsights(gomock.Any(), domain.LevelAd, "ad_1", gomock.Any(), gomock.Any()).
			Return(&domain.PlatformMetricSet{Spend: 200, Clicks: 150, Purchases: 2, ConversionValue: 400}, nil)

		m.insighter.EXPECT().
			FetchDeliveryStatus(gomock.Any(), domain.LevelAd, "ad_2", gomock.Any()).
			Return(stringPtr("campaign paused"), nil)
		m.insighter.EXPECT().
			FetchInsights(gomock.Any(), domain.LevelAd, "ad_2", gomock.Any(), gomock.Any()).
			Return(&domain.PlatformMetricSet{Spend: 100, Clicks: 50, Purchases: 1, ConversionValue: 200}, nil)

		report, err := service.GenerateReport(context.Background(), &domain.ReportInput{
			BusinessID: "biz_1",
			Platform:   domain.PlatformFacebook,
			Level:      domain.LevelAd,
		})

		assert.NoError(t, err)
		assert.Len(t, report.Records, 2)

		// IDs densos e em ordem de entrada, independente da ordem de término
		assert.Equal(t, 1, report.Records[0].RowID)
		assert.Equal(t, "ad_1", report.Records[0].PlatformObjectID)
		assert.Equal(t, "Active", *report.Records[0].DeliveryStatus)
		assert.Equal(t, 200.0, *report.Records[0].AmountSpent)

		assert.Equal(t, 2, report.Records[1].RowID)
		assert.Equal(t, "ad_2", report.Records[1].PlatformObjectID)
		assert.Equal(t, "campaign paused", *report.Records[1].DeliveryStatus)

		assert.Equal(t, "Results from 2 ads", report.Summary.DisplayName)
		assert.Equal(t, 3, report.Summary.RowID)
		assert.Equal(t, 300.0, *report.Summary.AmountSpent)
		assert.Equal(t, 3, *report.Summary.Purchases)
		assert.Equal(t, 100.0, *report.Summary.CostPerPurchase)
	})

	t.Run("Conversão em dois saltos aplicada aos campos monetários", func(t *testing.T) {
		service, m := newTestService(t)

		business := testBusiness()
		business.ViewerCurrency = "BRL"
		business.FacebookAccountCurrency = stringPtr("EUR")

		m.businessRepo.EXPECT().GetBusinessByID("biz_1").Return(business, nil)
		m.attributionRepo.EXPECT().
			GetGroupedByObject("biz_1", domain.PlatformFacebook, domain.LevelCampaign, gomock.Any()).
			Return([]*domain.AttributionGroup{
				{PlatformObjectID: "cmp_1", DisplayName: "Campanha", Purchases: 1, ConversionValue: 10},
			}, nil)
		m.resolver.EXPECT().Resolve("EUR", "BRL", gomock.Any()).Return(&domain.CurrencyConversionContext{
			NeedsConversion: true,
			TwoHop:          true,
			BaseRate:        1.33,
			AccountRate:     1.27,
		}, nil)

		m.insighter.EXPECT().
			FetchDeliveryStatus(gomock.Any(), domain.LevelCampaign, "cmp_1", gomock.Any()).
			Return(stringPtr("Active"), nil)
		m.insighter.EXPECT().
			FetchInsights(gomock.Any(), domain.LevelCampaign, "cmp_1", gomock.Any(), gomock.Any()).
			Return(&domain.PlatformMetricSet{Spend: 7}, nil)

		report, err := service.GenerateReport(context.Background(), &domain.ReportInput{
			BusinessID: "biz_1",
			Platform:   domain.PlatformFacebook,
			Level:      domain.LevelCampaign,
		})

		assert.NoError(t, err)
		// round(7 * 1.33) = 9, round(9 * 1.27) = 11
		assert.Equal(t, 11.0, *report.Records[0].AmountSpent)
	})

	t.Run("Token expirado aborta a execução com um único erro", func(t *testing.T) {
		service, m := newTestService(t)

		m.businessRepo.EXPECT().GetBusinessByID("biz_1").Return(testBusiness(), nil)
		m.attributionRepo.EXPECT().
			GetGroupedByObject("biz_1", domain.PlatformFacebook, domain.LevelAd, gomock.Any()).
			Return([]*domain.AttributionGroup{
				{PlatformObjectID: "ad_1"},
				{PlatformObjectID: "ad_2"},
			}, nil)
		m.resolver.EXPECT().Resolve("USD", "USD", gomock.Any()).Return(noConversion(), nil)

		m.insighter.EXPECT().
			FetchDeliveryStatus(gomock.Any(), domain.LevelAd, "ad_1", gomock.Any()).
			Return(nil, domain.ErrAuthExpired)

		// As demais buscas podem ou não acontecer antes do cancelamento
		m.insighter.EXPECT().
			FetchDeliveryStatus(gomock.Any(), domain.LevelAd, "ad_2", gomock.Any()).
			Return(stringPtr("Active"), nil).
			AnyTimes()
		m.insighter.EXPECT().
			FetchInsights(gomock.Any(), domain.LevelAd, "ad_2", gomock.Any(), gomock.Any()).
			Return(&domain.PlatformMetricSet{}, nil).
			AnyTimes()

		report, err := service.GenerateReport(context.Background(), &domain.ReportInput{
			BusinessID: "biz_1",
			Platform:   domain.PlatformFacebook,
			Level:      domain.LevelAd,
		})

		assert.Nil(t, report)
		assert.ErrorIs(t, err, domain.ErrAuthExpired)
	})

	t.Run("Falha de busca degrada para linha sem dados da plataforma", func(t *testing.T) {
		service, m := newTestService(t)

		m.businessRepo.EXPECT().GetBusinessByID("biz_1").Return(testBusiness(), nil)
		m.attributionRepo.EXPECT().
			GetGroupedByObject("biz_1", domain.PlatformFacebook, domain.LevelAd, gomock.Any()).
			Return([]*domain.AttributionGroup{
				{PlatformObjectID: "ad_1", Clicks: 30, Purchases: 1, ConversionValue: 90},
				{PlatformObjectID: "ad_2", Clicks: 10},
			}, nil)
		m.resolver.EXPECT().Resolve("USD", "USD", gomock.Any()).Return(noConversion(), nil)

		m.insighter.EXPECT().
			FetchDeliveryStatus(gomock.Any(), domain.LevelAd, "ad_1", gomock.Any()).
			Return(nil, domain.ErrPlatformUnavailable)

		m.insighter.EXPECT().
			FetchDeliveryStatus(gomock.Any(), domain.LevelAd, "ad_2", gomock.Any()).
			Return(stringPtr("Active"), nil)
		m.insighter.EXPECT().
			FetchInsights(gomock.Any(), domain.LevelAd, "ad_2", gomock.Any(), gomock.Any()).
			Return(&domain.PlatformMetricSet{Spend: 50, Clicks: 20}, nil)

		report, err := service.GenerateReport(context.Background(), &domain.ReportInput{
			BusinessID: "biz_1",
			Platform:   domain.PlatformFacebook,
			Level:      domain.LevelAd,
		})

		assert.NoError(t, err)
		assert.Len(t, report.Records, 2)

		// A linha degradada mantém as métricas internas e fica fora dos totais
		assert.False(t, report.Records[0].HasPlatformData())
		assert.Nil(t, report.Records[0].AmountSpent)
		assert.Equal(t, 30, *report.Records[0].SirgeClicks)

		assert.Equal(t, 50.0, *report.Summary.AmountSpent)
		assert.Equal(t, 20, *report.Summary.Clicks)
	})

	t.Run("Seleção de objetos restringe e renumera as linhas", func(t *testing.T) {
		service, m := newTestService(t)

		m.businessRepo.EXPECT().GetBusinessByID("biz_1").Return(testBusiness(), nil)
		m.attributionRepo.EXPECT().
			GetGroupedByObject("biz_1", domain.PlatformFacebook, domain.LevelAd, gomock.Any()).
			Return([]*domain.AttributionGroup{
				{PlatformObjectID: "ad_1"},
				{PlatformObjectID: "ad_2"},
				{PlatformObjectID: "ad_3"},
			}, nil)
		m.resolver.EXPECT().Resolve("USD", "USD", gomock.Any()).Return(noConversion(), nil)

		m.insighter.EXPECT().
			FetchDeliveryStatus(gomock.Any(), domain.LevelAd, "ad_2", gomock.Any()).
			Return(stringPtr("Active"), nil)
		m.insighter.EXPECT().
			FetchInsights(gomock.Any(), domain.LevelAd, "ad_2", gomock.Any(), gomock.Any()).
			Return(&domain.PlatformMetricSet{Spend: 10}, nil)

		report, err := service.GenerateReport(context.Background(), &domain.ReportInput{
			BusinessID:        "biz_1",
			Platform:          domain.PlatformFacebook,
			Level:             domain.LevelAd,
			SelectedObjectIDs: []string{"ad_2"},
		})

		assert.NoError(t, err)
		assert.Len(t, report.Records, 1)
		assert.Equal(t, 1, report.Records[0].RowID)
		assert.Equal(t, "ad_2", report.Records[0].PlatformObjectID)
		assert.Equal(t, "Results from 1 ad", report.Summary.DisplayName)
	})

	t.Run("Negócio inexistente é erro", func(t *testing.T) {
		service, m := newTestService(t)

		m.businessRepo.EXPECT().GetBusinessByID("biz_404").Return(nil, nil)

		report, err := service.GenerateReport(context.Background(), &domain.ReportInput{
			BusinessID: "biz_404",
			Platform:   domain.PlatformFacebook,
			Level:      domain.LevelAd,
		})

		assert.Nil(t, report)
		assert.Error(t, err)
	})

	t.Run("Plataforma sem integrador registrado é erro", func(t *testing.T) {
		service, _ := newTestService(t)

		report, err := service.GenerateReport(context.Background(), &domain.ReportInput{
			BusinessID: "biz_1",
			Platform:   domain.PlatformTikTok,
			Level:      domain.LevelAd,
		})

		assert.Nil(t, report)
		assert.Error(t, err)
	})
}

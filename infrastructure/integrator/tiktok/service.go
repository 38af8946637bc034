package tiktok

import (
	"context"
	"strconv"

	"github.com/sirupsen/logrus"
	tiktokdomain "github.com/sirge-io/performance-api/infrastructure/integrator/tiktok/domain"
	"github.com/sirge-io/performance-api/infrastructure/integrator/tiktok/tiktokclient"
	"github.com/sirge-io/performance-api/internal/config"
	"github.com/sirge-io/performance-api/internal/domain"
)

// Secondary statuses que indicam entrega normal em cada nível
var activeStatuses = []string{
	"CAMPAIGN_STATUS_ENABLE",
	"ADGROUP_STATUS_DELIVERY_OK",
	"AD_STATUS_DELIVERY_OK",
}

type TikTokIntegrator struct {
	cfg    *config.Config
	Client tiktokclient.Client
}

func New(cfg *config.Config, client tiktokclient.Client) *TikTokIntegrator {
	return &TikTokIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *TikTokIntegrator) Platform() domain.Platform {
	return domain.PlatformTikTok
}

func (s *TikTokIntegrator) FetchDeliveryStatus(ctx context.Context, level domain.ReportLevel, objectID string, credentials domain.PlatformCredentials) (*string, error) {
	info, err := s.Client.GetObjectStatusByID(ctx, level, objectID, credentials)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"platform_object_id": objectID,
			"error":              err.Error(),
		}).Error("performance: failed to get object status from API")
		return nil, err
	}

	if info == nil {
		return nil, nil
	}

	normalized := domain.NormalizeDeliveryStatus(info.SecondaryStatus, activeStatuses)
	return &normalized, nil
}

func (s *TikTokIntegrator) FetchInsights(ctx context.Context, level domain.ReportLevel, objectID string, credentials domain.PlatformCredentials, filters *domain.ReportFilters) (*domain.PlatformMetricSet, error) {
	metrics, err := s.Client.GetObjectMetricsByID(ctx, level, objectID, credentials, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"platform_object_id": objectID,
			"error":              err.Error(),
		}).Error("performance: failed to get object metrics from API")
		return nil, err
	}

	if metrics == nil {
		return nil, nil
	}

	metricSet := FactoryMetricSet(metrics)

	logrus.WithFields(logrus.Fields{
		"platform_object_id": objectID,
		"spend":              metricSet.Spend,
	}).Debug("performance: successfully retrieved object metrics")

	return metricSet, nil
}

// FactoryMetricSet converte o objeto plano de métricas para o formato
// intermediário comum, ainda na moeda da conta de anúncios
func FactoryMetricSet(metrics *tiktokdomain.ObjectMetrics) *domain.PlatformMetricSet {
	metricSet := &domain.PlatformMetricSet{
		Spend:           parseMetricFloat("spend", metrics.Spend),
		Clicks:          int(parseMetricFloat("clicks", metrics.Clicks)),
		Purchases:       int(parseMetricFloat("conversion", metrics.Conversion)),
		ConversionValue: parseMetricFloat("total_complete_payment_rate", metrics.TotalCompletePaymentRate),
		CostPerPurchase: parseMetricFloat("cost_per_conversion", metrics.CostPerConversion),
	}

	if metrics.CompletePaymentRoas != "" {
		roas, err := strconv.ParseFloat(metrics.CompletePaymentRoas, 64)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"roas_value": metrics.CompletePaymentRoas,
				"error":      err.Error(),
			}).Warn("performance: error converting complete payment roas to float")
		} else {
			metricSet.Roas = &roas
		}
	}

	return metricSet
}

func parseMetricFloat(name, raw string) float64 {
	if raw == "" {
		return 0
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"metric_name":  name,
			"metric_value": raw,
			"error":        err.Error(),
		}).Warn("performance: error converting metric to float")
		return 0
	}

	return value
}

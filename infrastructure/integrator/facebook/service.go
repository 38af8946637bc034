package facebook

import (
	"context"
	"math"
	"strconv"

	"github.com/sirupsen/logrus"
	facebookdomain "github.com/sirge-io/performance-api/infrastructure/integrator/facebook/domain"
	"github.com/sirge-io/performance-api/infrastructure/integrator/facebook/facebookclient"
	"github.com/sirge-io/performance-api/internal/config"
	"github.com/sirge-io/performance-api/internal/domain"
)

// Statuses que a API reporta como objeto entregando normalmente
var activeStatuses = []string{"ACTIVE"}

type FacebookIntegrator struct {
	cfg    *config.Config
	Client facebookclient.Client
}

func New(cfg *config.Config, client facebookclient.Client) *FacebookIntegrator {
	return &FacebookIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *FacebookIntegrator) Platform() domain.Platform {
	return domain.PlatformFacebook
}

// FetchDeliveryStatus busca o effective_status do objeto. O nível não importa
// aqui, a Graph API resolve qualquer objeto pelo ID.
func (s *FacebookIntegrator) FetchDeliveryStatus(ctx context.Context, level domain.ReportLevel, objectID string, credentials domain.PlatformCredentials) (*string, error) {
	status, err := s.Client.GetObjectStatusByID(ctx, objectID, credentials)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"platform_object_id": objectID,
			"error":              err.Error(),
		}).Error("performance: failed to get object status from API")
		return nil, err
	}

	if status == nil {
		return nil, nil
	}

	normalized := domain.NormalizeDeliveryStatus(status.EffectiveStatus, activeStatuses)
	return &normalized, nil
}

func (s *FacebookIntegrator) FetchInsights(ctx context.Context, level domain.ReportLevel, objectID string, credentials domain.PlatformCredentials, filters *domain.ReportFilters) (*domain.PlatformMetricSet, error) {
	insight, err := s.Client.GetObjectInsightsByID(ctx, objectID, credentials, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"platform_object_id": objectID,
			"error":              err.Error(),
		}).Error("performance: failed to get object insights from API")
		return nil, err
	}

	if insight == nil {
		return nil, nil
	}

	metricSet := FactoryMetricSet(insight)

	logrus.WithFields(logrus.Fields{
		"platform_object_id": objectID,
		"spend":              metricSet.Spend,
	}).Debug("performance: successfully retrieved object insights")

	return metricSet, nil
}

// FactoryMetricSet converte a linha de insights bruta para o formato
// intermediário comum, ainda na moeda da conta de anúncios
func FactoryMetricSet(insight *facebookdomain.AdObjectInsight) *domain.PlatformMetricSet {
	spend, err := strconv.ParseFloat(insight.Spend, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"spend_value": insight.Spend,
			"error":       err.Error(),
		}).Warn("performance: error converting spend to float")
	}

	metricSet := &domain.PlatformMetricSet{
		// O spend da API vem com centavos e o relatório trabalha com o valor truncado
		Spend:           math.Floor(spend),
		Clicks:          parseActionInt(insight.Actions, facebookdomain.ActionTypeLinkClick),
		Purchases:       parseActionInt(insight.Actions, facebookdomain.ActionTypePurchase),
		ConversionValue: parseActionFloat(insight.ActionValues, facebookdomain.ActionTypePurchase),
		CostPerPurchase: parseActionFloat(insight.CostPerActionType, facebookdomain.ActionTypePurchase),
	}

	if raw, ok := facebookdomain.FindActionValue(insight.PurchaseRoas, facebookdomain.ActionTypePurchase); ok {
		roas, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"roas_value": raw,
				"error":      err.Error(),
			}).Warn("performance: error converting purchase roas to float")
		} else {
			metricSet.Roas = &roas
		}
	}

	return metricSet
}

func parseActionFloat(entries []facebookdomain.ActionEntry, actionType string) float64 {
	raw, ok := facebookdomain.FindActionValue(entries, actionType)
	if !ok {
		return 0
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"action_type":  actionType,
			"action_value": raw,
			"error":        err.Error(),
		}).Warn("performance: error converting action value to float")
		return 0
	}

	return value
}

func parseActionInt(entries []facebookdomain.ActionEntry, actionType string) int {
	return int(parseActionFloat(entries, actionType))
}

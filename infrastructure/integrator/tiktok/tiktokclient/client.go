package tiktokclient

import (
	"context"
	"fmt"
	"net/http"

	tiktokdomain "github.com/sirge-io/performance-api/infrastructure/integrator/tiktok/domain"
	"github.com/sirge-io/performance-api/internal/config"
	"github.com/sirge-io/performance-api/internal/domain"
)

// Endpoints e dimensões do relatório integrado por nível de agrupamento
var levelEndpoints = map[domain.ReportLevel]struct {
	objectPath string
	dataLevel  string
	dimension  string
	filterKey  string
}{
	domain.LevelCampaign: {objectPath: "campaign/get/", dataLevel: "AUCTION_CAMPAIGN", dimension: "campaign_id", filterKey: "campaign_ids"},
	domain.LevelAdSet:    {objectPath: "adgroup/get/", dataLevel: "AUCTION_ADGROUP", dimension: "adgroup_id", filterKey: "adgroup_ids"},
	domain.LevelAd:       {objectPath: "ad/get/", dataLevel: "AUCTION_AD", dimension: "ad_id", filterKey: "ad_ids"},
}

type Client interface {
	GetObjectStatusByID(ctx context.Context, level domain.ReportLevel, objectID string, credentials domain.PlatformCredentials) (*tiktokdomain.ObjectInfo, error)
	GetObjectMetricsByID(ctx context.Context, level domain.ReportLevel, objectID string, credentials domain.PlatformCredentials, filters *domain.ReportFilters) (*tiktokdomain.ObjectMetrics, error)
}

type TikTokClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	client := &TikTokClient{
		Cfg:        cfg,
		HTTPClient: &http.Client{},
	}
	return client
}

// checkEnvelope traduz o código de resultado do invólucro da API do TikTok
func checkEnvelope(envelope *tiktokdomain.Envelope) error {
	if envelope.IsSuccess() {
		return nil
	}

	if envelope.IsTokenExpired() {
		return fmt.Errorf("tiktok: %s: %w", envelope.Message, domain.ErrAuthExpired)
	}

	return fmt.Errorf("tiktok: código %d: %s: %w", envelope.Code, envelope.Message, domain.ErrPlatformUnavailable)
}

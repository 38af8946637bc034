package tiktokclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	tiktokdomain "github.com/sirge-io/performance-api/infrastructure/integrator/tiktok/domain"
	"github.com/sirge-io/performance-api/internal/domain"
	"github.com/sirge-io/performance-api/pkg/utils"
)

type ResponseIntegratedReport struct {
	tiktokdomain.Envelope
	Data struct {
		List     []tiktokdomain.ReportRow `json:"list"`
		PageInfo tiktokdomain.Page        `json:"page_info"`
	} `json:"data"`
}

func (c *TikTokClient) GetObjectMetricsByID(ctx context.Context, level domain.ReportLevel, objectID string, credentials domain.PlatformCredentials, filters *domain.ReportFilters) (*tiktokdomain.ObjectMetrics, error) {
	endpoint, ok := levelEndpoints[level]
	if !ok {
		return nil, fmt.Errorf("nível de agrupamento inválido: %s", level)
	}

	baseURL := fmt.Sprintf("%s/report/integrated/get/", c.Cfg.TikTok.URL)

	filtering := fmt.Sprintf("[{\"field_name\":\"%s\",\"filter_type\":\"IN\",\"filter_value\":\"[\\\"%s\\\"]\"}]", endpoint.dimension, objectID)

	params := url.Values{}
	params.Add("advertiser_id", credentials.AccountID)
	params.Add("report_type", "BASIC")
	params.Add("data_level", endpoint.dataLevel)
	params.Add("dimensions", fmt.Sprintf("[\"%s\"]", endpoint.dimension))
	params.Add("metrics", "[\"spend\",\"clicks\",\"conversion\",\"cost_per_conversion\",\"total_complete_payment_rate\",\"complete_payment_roas\"]")
	params.Add("filtering", filtering)

	if filters != nil && filters.StartDate != nil && filters.EndDate != nil {
		params.Add("start_date", filters.StartDate.Format(time.DateOnly))
		params.Add("end_date", filters.EndDate.Format(time.DateOnly))
	}

	requestURL := baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}
	req.Header.Set("Access-Token", credentials.AccessToken)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, fmt.Errorf("tiktok: %s: %w", err.Error(), domain.ErrPlatformUnavailable)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o corpo da resposta: %w", err)
	}

	var response ResponseIntegratedReport
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	if err := checkEnvelope(&response.Envelope); err != nil {
		return nil, err
	}

	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.Debug("tiktok report response: ", utils.PrettyJson(response.Data))
	}

	// Sem entrega no período o relatório devolve a lista vazia
	if len(response.Data.List) == 0 {
		return nil, nil
	}

	return &response.Data.List[0].Metrics, nil
}

package tiktokclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
	tiktokdomain "github.com/sirge-io/performance-api/infrastructure/integrator/tiktok/domain"
	"github.com/sirge-io/performance-api/internal/domain"
)

type ResponseObjectList struct {
	tiktokdomain.Envelope
	Data struct {
		List     []tiktokdomain.ObjectInfo `json:"list"`
		PageInfo tiktokdomain.Page         `json:"page_info"`
	} `json:"data"`
}

func (c *TikTokClient) GetObjectStatusByID(ctx context.Context, level domain.ReportLevel, objectID string, credentials domain.PlatformCredentials) (*tiktokdomain.ObjectInfo, error) {
	endpoint, ok := levelEndpoints[level]
	if !ok {
		return nil, fmt.Errorf("nível de agrupamento inválido: %s", level)
	}

	baseURL := fmt.Sprintf("%s/%s", c.Cfg.TikTok.URL, endpoint.objectPath)

	filtering := fmt.Sprintf("{\"%s\":[\"%s\"]}", endpoint.filterKey, objectID)

	params := url.Values{}
	params.Add("advertiser_id", credentials.AccountID)
	params.Add("filtering", filtering)

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

	var response ResponseObjectList
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	if err := checkEnvelope(&response.Envelope); err != nil {
		return nil, err
	}

	// Objeto inexistente na conta vem como lista vazia
	if len(response.Data.List) == 0 {
		return nil, nil
	}

	return &response.Data.List[0], nil
}

package facebookclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	facebookdomain "github.com/sirge-io/performance-api/infrastructure/integrator/facebook/domain"
	"github.com/sirge-io/performance-api/internal/domain"
)

type ResponseAdObjectInsight struct {
	Data   []facebookdomain.AdObjectInsight `json:"data"`
	Paging facebookdomain.Paging            `json:"paging"`
}

func (c *FacebookClient) GetObjectInsightsByID(ctx context.Context, objectID string, credentials domain.PlatformCredentials, filters *domain.ReportFilters) (*facebookdomain.AdObjectInsight, error) {
	baseURL := fmt.Sprintf("%s/%s/insights", c.Cfg.Facebook.URL, objectID)

	params := url.Values{}
	params.Add("fields", "spend,actions,action_values,cost_per_action_type,purchase_roas")
	params.Add("access_token", credentials.AccessToken)

	if filters != nil && filters.StartDate != nil && filters.EndDate != nil {
		timeRange := fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", filters.StartDate.Format(time.DateOnly), filters.EndDate.Format(time.DateOnly))
		params.Add("time_range", timeRange)
	}

	requestURL := baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, fmt.Errorf("facebook: %s: %w", err.Error(), domain.ErrPlatformUnavailable)
	}
	defer resp.Body.Close()

	body, err := c.handleResponse(resp)
	if err != nil {
		return nil, err
	}

	if body == nil {
		return nil, nil
	}

	var response ResponseAdObjectInsight
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	// Sem entrega no período a API devolve o array vazio
	if len(response.Data) == 0 {
		return nil, nil
	}

	return &response.Data[0], nil
}

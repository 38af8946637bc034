package facebookclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
	facebookdomain "github.com/sirge-io/performance-api/infrastructure/integrator/facebook/domain"
	"github.com/sirge-io/performance-api/internal/domain"
)

func (c *FacebookClient) GetObjectStatusByID(ctx context.Context, objectID string, credentials domain.PlatformCredentials) (*facebookdomain.ObjectStatus, error) {
	baseURL := fmt.Sprintf("%s/%s", c.Cfg.Facebook.URL, objectID)

	params := url.Values{}
	params.Add("fields", "effective_status")
	params.Add("access_token", credentials.AccessToken)

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

	// Objeto inexistente não é erro, o status apenas fica desconhecido
	if body == nil {
		return nil, nil
	}

	var status facebookdomain.ObjectStatus
	if err := json.Unmarshal(body, &status); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return &status, nil
}

package facebookclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	facebookdomain "github.com/sirge-io/performance-api/infrastructure/integrator/facebook/domain"
	"github.com/sirge-io/performance-api/internal/config"
	"github.com/sirge-io/performance-api/internal/domain"
)

type Client interface {
	GetObjectStatusByID(ctx context.Context, objectID string, credentials domain.PlatformCredentials) (*facebookdomain.ObjectStatus, error)
	GetObjectInsightsByID(ctx context.Context, objectID string, credentials domain.PlatformCredentials, filters *domain.ReportFilters) (*facebookdomain.AdObjectInsight, error)
}

type FacebookClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	client := &FacebookClient{
		Cfg:        cfg,
		HTTPClient: &http.Client{},
	}
	return client
}

// handleResponse lê o corpo e traduz o envelope de erro da API do Facebook.
// Retorna (nil, nil) quando o erro indica objeto inexistente.
func (c *FacebookClient) handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o corpo da resposta: %w", err)
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	var errResponse facebookdomain.ErrorResponse
	if err := json.Unmarshal(body, &errResponse); err == nil {
		if errResponse.IsTokenExpired() {
			return nil, fmt.Errorf("facebook: %s: %w", errResponse.Error.Message, domain.ErrAuthExpired)
		}

		if errResponse.IsObjectNotFound() {
			return nil, nil
		}
	}

	return nil, fmt.Errorf("facebook: status %d: %w", resp.StatusCode, domain.ErrPlatformUnavailable)
}

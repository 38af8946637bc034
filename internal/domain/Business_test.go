package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func TestCredentialsFor(t *testing.T) {
	t.Run("Facebook conectado com moeda da conta", func(t *testing.T) {
		business := &Business{
			ID:                      "biz_1",
			FacebookAdAccountID:     strPtr("act_123"),
			FacebookAccessToken:     strPtr("fb-token"),
			FacebookAccountCurrency: strPtr("BRL"),
		}

		credentials, currency, err := business.CredentialsFor(PlatformFacebook)

		assert.NoError(t, err)
		assert.Equal(t, "fb-token", credentials.AccessToken)
		assert.Equal(t, "act_123", credentials.AccountID)
		assert.Equal(t, "BRL", currency)
	})

	t.Run("Moeda da conta ausente assume USD", func(t *testing.T) {
		business := &Business{
			ID:                 "biz_1",
			TikTokAdvertiserID: strPtr("adv_456"),
			TikTokAccessToken:  strPtr("tt-token"),
		}

		credentials, currency, err := business.CredentialsFor(PlatformTikTok)

		assert.NoError(t, err)
		assert.Equal(t, "tt-token", credentials.AccessToken)
		assert.Equal(t, "adv_456", credentials.AccountID)
		assert.Equal(t, "USD", currency)
	})

	t.Run("Plataforma não conectada retorna erro", func(t *testing.T) {
		business := &Business{
			ID:                  "biz_1",
			FacebookAdAccountID: strPtr("act_123"),
			FacebookAccessToken: strPtr("fb-token"),
		}

		_, _, err := business.CredentialsFor(PlatformTikTok)
		assert.Error(t, err)
	})

	t.Run("Plataforma desconhecida retorna erro", func(t *testing.T) {
		business := &Business{ID: "biz_1"}

		_, _, err := business.CredentialsFor(Platform("snapchat"))
		assert.Error(t, err)
	})
}

package domain

import (
	"fmt"
	"time"
)

// Business representa um negócio cadastrado, dono das conexões com as
// plataformas de anúncios e da moeda de exibição do usuário
type Business struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	UserID         int        `json:"user_id"`
	ViewerCurrency string     `json:"viewer_currency"`
	Active         bool       `json:"active"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	DeletedAt      *time.Time `json:"deleted_at"`

	FacebookAdAccountID     *string `json:"facebook_ad_account_id"`
	FacebookAccessToken     *string `json:"-"`
	FacebookAccountCurrency *string `json:"facebook_account_currency"`

	TikTokAdvertiserID     *string `json:"tiktok_advertiser_id"`
	TikTokAccessToken      *string `json:"-"`
	TikTokAccountCurrency  *string `json:"tiktok_account_currency"`
}

// CredentialsFor resolve a credencial e a moeda da conta para a plataforma pedida.
// Retorna erro quando o negócio não tem a plataforma conectada.
func (b *Business) CredentialsFor(platform Platform) (PlatformCredentials, string, error) {
	switch platform {
	case PlatformFacebook:
		if b.FacebookAdAccountID == nil || b.FacebookAccessToken == nil {
			return PlatformCredentials{}, "", fmt.Errorf("business %s has no facebook connection", b.ID)
		}
		currency := "USD"
		if b.FacebookAccountCurrency != nil {
			currency = *b.FacebookAccountCurrency
		}
		return PlatformCredentials{
			AccessToken: *b.FacebookAccessToken,
			AccountID:   *b.FacebookAdAccountID,
		}, currency, nil
	case PlatformTikTok:
		if b.TikTokAdvertiserID == nil || b.TikTokAccessToken == nil {
			return PlatformCredentials{}, "", fmt.Errorf("business %s has no tiktok connection", b.ID)
		}
		currency := "USD"
		if b.TikTokAccountCurrency != nil {
			currency = *b.TikTokAccountCurrency
		}
		return PlatformCredentials{
			AccessToken: *b.TikTokAccessToken,
			AccountID:   *b.TikTokAdvertiserID,
		}, currency, nil
	}

	return PlatformCredentials{}, "", fmt.Errorf("unsupported platform: %s", platform)
}

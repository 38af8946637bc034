package domain

import (
	"slices"
	"strings"
)

// Platform identifica a rede de anúncios de origem das métricas
type Platform string

const (
	PlatformFacebook Platform = "facebook"
	PlatformTikTok   Platform = "tiktok"
)

// IsValid verifica se a plataforma é suportada
func (p Platform) IsValid() bool {
	return p == PlatformFacebook || p == PlatformTikTok
}

// ReportLevel identifica o nível de agrupamento do relatório de performance
type ReportLevel string

const (
	LevelCampaign ReportLevel = "campaigns"
	LevelAdSet    ReportLevel = "ad_sets"
	LevelAd       ReportLevel = "ads"
)

// IsValid verifica se o nível de agrupamento é suportado
func (l ReportLevel) IsValid() bool {
	return l == LevelCampaign || l == LevelAdSet || l == LevelAd
}

// Noun retorna o substantivo usado no título do resumo ("Results from N ...")
func (l ReportLevel) Noun(count int) string {
	singular := map[ReportLevel]string{
		LevelCampaign: "campaign",
		LevelAdSet:    "ad set",
		LevelAd:       "ad",
	}[l]

	if count == 1 {
		return singular
	}
	return singular + "s"
}

// Tokens de template que o tracking grava quando a macro da plataforma não foi
// substituída na URL do anúncio, além do bucket "unassigned". Linhas com esses
// IDs não correspondem a objetos reais na plataforma.
var sentinelObjectIDs = map[ReportLevel][]string{
	LevelCampaign: {"{{campaign.id}}", "__CAMPAIGN_ID__", "unassigned"},
	LevelAdSet:    {"{{adset.id}}", "__AID__", "unassigned"},
	LevelAd:       {"{{ad.id}}", "__CID__", "unassigned"},
}

// IsSentinelObjectID verifica se o ID é um marcador de placeholder para o nível informado
func IsSentinelObjectID(level ReportLevel, platformObjectID string) bool {
	return slices.Contains(sentinelObjectIDs[level], platformObjectID)
}

// NormalizeDeliveryStatus converte o enum de status bruto da plataforma em um
// rótulo exibível: "Active" para estados ativos, caso contrário os dois
// primeiros segmentos do enum em minúsculas separados por espaço
func NormalizeDeliveryStatus(rawStatus string, activeStatuses []string) string {
	if slices.Contains(activeStatuses, rawStatus) {
		return "Active"
	}

	parts := strings.Split(strings.ToLower(rawStatus), "_")
	if len(parts) > 2 {
		parts = parts[:2]
	}

	return strings.Join(parts, " ")
}

// PlatformCredentials carrega a credencial resolvida para chamadas à plataforma
type PlatformCredentials struct {
	AccessToken string
	// AccountID é o ad account (Facebook) ou advertiser (TikTok) dono dos objetos
	AccountID string
}

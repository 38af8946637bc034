package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDeliveryStatus(t *testing.T) {
	facebookActive := []string{"ACTIVE"}
	tiktokActive := []string{"CAMPAIGN_STATUS_ENABLE", "ADGROUP_STATUS_DELIVERY_OK", "AD_STATUS_DELIVERY_OK"}

	tests := []struct {
		name           string
		rawStatus      string
		activeStatuses []string
		expected       string
	}{
		{
			name:           "Status ativo vira Active",
			rawStatus:      "ACTIVE",
			activeStatuses: facebookActive,
			expected:       "Active",
		},
		{
			name:           "Status ativo do TikTok vira Active",
			rawStatus:      "ADGROUP_STATUS_DELIVERY_OK",
			activeStatuses: tiktokActive,
			expected:       "Active",
		},
		{
			name:           "Enum longo fica com os dois primeiros segmentos",
			rawStatus:      "CAMPAIGN_PAUSED",
			activeStatuses: facebookActive,
			expected:       "campaign paused",
		},
		{
			name:           "Enum do TikTok não ativo é truncado",
			rawStatus:      "ADGROUP_STATUS_BUDGET_EXCEED",
			activeStatuses: tiktokActive,
			expected:       "adgroup status",
		},
		{
			name:           "Segmento único apenas é rebaixado",
			rawStatus:      "PAUSED",
			activeStatuses: facebookActive,
			expected:       "paused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeDeliveryStatus(tt.rawStatus, tt.activeStatuses))
		})
	}
}

func TestIsSentinelObjectID(t *testing.T) {
	assert.True(t, IsSentinelObjectID(LevelCampaign, "{{campaign.id}}"))
	assert.True(t, IsSentinelObjectID(LevelCampaign, "__CAMPAIGN_ID__"))
	assert.True(t, IsSentinelObjectID(LevelAdSet, "{{adset.id}}"))
	assert.True(t, IsSentinelObjectID(LevelAdSet, "__AID__"))
	assert.True(t, IsSentinelObjectID(LevelAd, "{{ad.id}}"))
	assert.True(t, IsSentinelObjectID(LevelAd, "__CID__"))

	// O bucket unassigned é marcador em todos os níveis
	assert.True(t, IsSentinelObjectID(LevelCampaign, "unassigned"))
	assert.True(t, IsSentinelObjectID(LevelAd, "unassigned"))

	// Marcador de um nível não vale para outro
	assert.False(t, IsSentinelObjectID(LevelCampaign, "__AID__"))
	assert.False(t, IsSentinelObjectID(LevelAd, "23851234567890"))
}

func TestReportLevelNoun(t *testing.T) {
	assert.Equal(t, "campaign", LevelCampaign.Noun(1))
	assert.Equal(t, "campaigns", LevelCampaign.Noun(2))
	assert.Equal(t, "ad set", LevelAdSet.Noun(1))
	assert.Equal(t, "ad sets", LevelAdSet.Noun(0))
	assert.Equal(t, "ad", LevelAd.Noun(1))
	assert.Equal(t, "ads", LevelAd.Noun(5))
}

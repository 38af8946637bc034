package facebookdomain

// Tags de action_type usadas para selecionar métricas nos arrays de insights
const (
	ActionTypePurchase  = "offsite_conversion.fb_pixel_purchase"
	ActionTypeLinkClick = "link_click"
)

// ActionEntry é um par {action_type, value} dos arrays de insights do Facebook
type ActionEntry struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// AdObjectInsight é a linha de insights bruta de uma campanha, ad set ou ad.
// Spend é um escalar; as demais métricas vêm em arrays indexados por action_type.
type AdObjectInsight struct {
	Spend             string        `json:"spend"`
	Actions           []ActionEntry `json:"actions"`
	ActionValues      []ActionEntry `json:"action_values"`
	CostPerActionType []ActionEntry `json:"cost_per_action_type"`
	PurchaseRoas      []ActionEntry `json:"purchase_roas"`
	DateStart         string        `json:"date_start"`
	DateStop          string        `json:"date_stop"`
}

// FindActionValue procura a entrada do action_type informado no array
func FindActionValue(entries []ActionEntry, actionType string) (string, bool) {
	for _, entry := range entries {
		if entry.ActionType == actionType {
			return entry.Value, true
		}
	}
	return "", false
}

// ObjectStatus é a resposta do fetch de status de um objeto de anúncio
type ObjectStatus struct {
	ID              string `json:"id"`
	EffectiveStatus string `json:"effective_status"`
}

type Paging struct {
	Cursors struct {
		Before string `json:"before"`
		After  string `json:"after"`
	} `json:"cursors"`
	Next string `json:"next"`
}

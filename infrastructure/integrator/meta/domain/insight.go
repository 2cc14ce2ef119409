package metadomain

// ActionTypeMessagingConversation é a ação cujo valor vira a métrica de
// "conversas" nos relatórios de campanha.
const ActionTypeMessagingConversation = "onsite_conversion.messaging_conversation_started_7d"

type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// Insight é o registro de métricas cru da Graph API, antes da limpeza dos
// campos de eco de datas. campaign_id/adset_id só vêm preenchidos quando a
// consulta pede esses campos (consultas com level=campaign/adset).
type Insight struct {
	CampaignID  string   `json:"campaign_id"`
	AdSetID     string   `json:"adset_id"`
	Spend       string   `json:"spend"`
	Impressions string   `json:"impressions"`
	Clicks      string   `json:"clicks"`
	Reach       string   `json:"reach"`
	Frequency   string   `json:"frequency"`
	CTR         string   `json:"ctr"`
	CPC         string   `json:"cpc"`
	CPM         string   `json:"cpm"`
	Actions     []Action `json:"actions"`
	DateStart   string   `json:"date_start"`
	DateStop    string   `json:"date_stop"`
}

// ConversationsValue procura o valor da primeira ação de conversa iniciada.
// Ausência retorna nil, não zero: o campo simplesmente não aparece no
// relatório.
func (i *Insight) ConversationsValue() *string {
	for _, action := range i.Actions {
		if action.ActionType == ActionTypeMessagingConversation {
			value := action.Value
			return &value
		}
	}
	return nil
}

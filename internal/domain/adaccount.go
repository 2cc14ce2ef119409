package domain

// AdAccount é um snapshot imutável de uma conta de anúncios retornada pela
// API do Meta. Não é persistido: cada geração de relatório busca as contas
// novamente.
type AdAccount struct {
	AccountID     string `json:"account_id"`
	Name          string `json:"name"`
	Currency      string `json:"currency"`
	AccountStatus int    `json:"account_status"`
}

type Campaign struct {
	CampaignID   string         `json:"campaign_id"`
	CampaignName string         `json:"campaign_name"`
	Objective    string         `json:"objective"`
	Status       string         `json:"status"`
	UpdatedTime  string         `json:"updated_time,omitempty"`
	Insights     *InsightRecord `json:"insights"`
}

type AdSet struct {
	AdSetID   string         `json:"adset_id"`
	AdSetName string         `json:"adset_name"`
	Targeting map[string]any `json:"targeting"`
	Status    string         `json:"status"`
	Insights  *InsightRecord `json:"insights"`
}

type Ad struct {
	AdID     string         `json:"ad_id"`
	AdName   string         `json:"ad_name"`
	Status   string         `json:"status"`
	Creative Creative       `json:"creative"`
	Insights *InsightRecord `json:"insights"`
}

type Creative struct {
	ID           string `json:"id,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	Body         string `json:"body,omitempty"`
	Title        string `json:"title,omitempty"`
	LinkURL      string `json:"link_url,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
	VideoID      string `json:"video_id,omitempty"`
}

// StatusActive é o status literal que conta como "ativo" nos agrupamentos
// dos relatórios.
const StatusActive = "ACTIVE"

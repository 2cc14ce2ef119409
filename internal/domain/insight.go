package domain

import (
	"strconv"
	"time"
)

// InsightRecord é o registro de métricas de uma entidade em uma janela de
// tempo, já limpo dos campos de eco de datas (date_start/date_stop) que a
// API devolve. Os valores chegam como strings do upstream; a conversão
// numérica acontece apenas na agregação.
type InsightRecord struct {
	Spend         string  `json:"spend,omitempty"`
	Impressions   string  `json:"impressions,omitempty"`
	Clicks        string  `json:"clicks,omitempty"`
	Reach         string  `json:"reach,omitempty"`
	Frequency     string  `json:"frequency,omitempty"`
	CTR           string  `json:"ctr,omitempty"`
	CPC           string  `json:"cpc,omitempty"`
	CPM           string  `json:"cpm,omitempty"`
	Conversations *string `json:"conversations,omitempty"`
}

// IsEmpty indica se o registro ficou sem nenhuma métrica após a limpeza
// dos campos de data.
func (r *InsightRecord) IsEmpty() bool {
	if r == nil {
		return true
	}
	return r.Spend == "" && r.Impressions == "" && r.Clicks == "" &&
		r.Reach == "" && r.Frequency == "" && r.CTR == "" &&
		r.CPC == "" && r.CPM == "" && r.Conversations == nil
}

// HasActivity indica se houve atividade na janela (gasto ou impressões).
// Valores não numéricos contam como zero.
func (r *InsightRecord) HasActivity() bool {
	if r == nil {
		return false
	}
	spend, _ := strconv.ParseFloat(r.Spend, 64)
	impressions, _ := strconv.ParseFloat(r.Impressions, 64)
	return spend != 0 || impressions != 0
}

// TimeRange é um intervalo de datas inclusivo. A validação since <= until
// acontece na borda da requisição; aqui o intervalo já chega válido.
type TimeRange struct {
	Since time.Time `json:"since"`
	Until time.Time `json:"until"`
}

func (t TimeRange) SinceString() string {
	return t.Since.Format(time.DateOnly)
}

func (t TimeRange) UntilString() string {
	return t.Until.Format(time.DateOnly)
}

// SingleDay indica se o intervalo cobre um único dia (a linha de período
// dos relatórios é omitida nesse caso).
func (t TimeRange) SingleDay() bool {
	return t.Since.Equal(t.Until)
}

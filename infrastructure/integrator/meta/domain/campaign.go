package metadomain

// Entidades de listagem da Graph API. O payload de targeting é mantido
// solto porque o formato upstream é extenso e irrelevante para agregação;
// todo o restante é decodificado em structs tipadas na borda do client.

type Campaign struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	Objective   string `json:"objective"`
	UpdatedTime string `json:"updated_time"`
}

type AdSet struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Status    string         `json:"status"`
	Targeting map[string]any `json:"targeting"`
}

type Ad struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Status   string   `json:"status"`
	Creative Creative `json:"creative"`
}

type Creative struct {
	ID           string `json:"id"`
	ThumbnailURL string `json:"thumbnail_url"`
	Body         string `json:"body"`
	Title        string `json:"title"`
	LinkURL      string `json:"link_url"`
	ImageURL     string `json:"image_url"`
	VideoID      string `json:"video_id"`
}

type Paging struct {
	Next string `json:"next"`
}

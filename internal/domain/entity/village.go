package entity

// Village represents the administrative unit the site is about.
type Village struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Address    string  `json:"address"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	CreatedAt  string  `json:"created_at"`
	CreatedBy  string  `json:"created_by"`
	ModifiedAt *string `json:"modified_at,omitempty"`
	ModifiedBy *string `json:"modified_by,omitempty"`
}

// VillagesData is the payload of GET /v1/villages.
type VillagesData struct {
	Villages []Village `json:"villages"`
}

// VillagesResponse is the envelope returned by GET /v1/villages.
type VillagesResponse = Envelope[VillagesData]

// VillageHistory is a single chapter of the village history page.
// Description is markdown.
type VillageHistory struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	ImageURL    *string `json:"image_url,omitempty"`
	VillageID   string  `json:"village_id"`
	CreatedAt   string  `json:"created_at"`
	CreatedBy   string  `json:"created_by"`
	ModifiedAt  string  `json:"modified_at"`
	ModifiedBy  string  `json:"modified_by"`
}

// VillageHistoriesData is the payload of GET /v1/villages/history.
type VillageHistoriesData struct {
	VillageHistories []VillageHistory `json:"village_histories"`
}

// VillageHistoryResponse is the envelope returned by GET /v1/villages/history.
type VillageHistoryResponse = Envelope[VillageHistoriesData]

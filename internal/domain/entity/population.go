package entity

// Population holds the census figures of one hamlet.
type Population struct {
	Children        int    `json:"children"`
	Elderly         int    `json:"elderly"`
	Female          int    `json:"female"`
	Hamlet          string `json:"hamlet"`
	Households      int    `json:"households"`
	Male            int    `json:"male"`
	Toddlers        int    `json:"toddlers"`
	TotalPopulation int    `json:"total_population"`
	Wives           int    `json:"wives"`
}

// PopulationData is the payload of GET /v1/populations.
type PopulationData struct {
	Population []Population `json:"population"`
}

// PopulationResponse is the body of GET /v1/populations. Unlike the other
// endpoints it reports a status string instead of a success flag.
type PopulationResponse struct {
	Data    PopulationData `json:"data"`
	Message *string        `json:"message,omitempty"`
	Status  *string        `json:"status,omitempty"`
}

// PopulationStats is the aggregate shown on the statistics page.
// It is recomputed on every request and has no identity of its own.
type PopulationStats struct {
	TotalPopulation    int                `json:"total_population"`
	TotalHouseholds    int                `json:"total_households"`
	GenderDistribution GenderDistribution `json:"gender_distribution"`
	AgeDistribution    AgeDistribution    `json:"age_distribution"`
	HamletData         []HamletSummary    `json:"hamlet_data"`
}

// GenderDistribution splits the population by gender.
type GenderDistribution struct {
	Male   int `json:"male"`
	Female int `json:"female"`
}

// AgeDistribution splits the population by age group.
type AgeDistribution struct {
	Toddlers int `json:"toddlers"`
	Children int `json:"children"`
	Adults   int `json:"adults"`
	Elderly  int `json:"elderly"`
}

// HamletSummary is the per-hamlet row of PopulationStats.
type HamletSummary struct {
	Name       string `json:"name"`
	Population int    `json:"population"`
	Households int    `json:"households"`
}

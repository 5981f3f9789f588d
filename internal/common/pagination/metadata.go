package pagination

// Metadata describes where a page sits in a listing.
type Metadata struct {
	Total      int  `json:"total"`
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	TotalPages int  `json:"total_pages"`
	HasPrev    bool `json:"has_prev"`
	HasNext    bool `json:"has_next"`
}

// NewMetadata builds Metadata from the totals reported by the API.
// A non-positive totalPages is recomputed from total and the limit.
func NewMetadata(p Params, total, totalPages int) Metadata {
	if totalPages <= 0 {
		totalPages = CalculateTotalPages(total, p.Limit)
	}
	return Metadata{
		Total:      total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: totalPages,
		HasPrev:    p.Page > 1,
		HasNext:    p.Page < totalPages,
	}
}

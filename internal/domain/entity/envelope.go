package entity

// Envelope is the response wrapper shared by every village API endpoint.
// Optional fields are pointers so that an absent field can be told apart
// from a zero value.
type Envelope[T any] struct {
	Data      *T      `json:"data,omitempty"`
	Message   *string `json:"message,omitempty"`
	Success   *bool   `json:"success,omitempty"`
	TotalData *int    `json:"total_data,omitempty"`
	TotalPage *int    `json:"total_page,omitempty"`
}

// ErrorResponse is the body the village API returns on failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Package entity defines the read-only records served by the village API.
// Every entity is a snapshot fetched per request; nothing here is mutated
// or persisted by this service.
package entity

// Article represents a published village news article.
type Article struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Content     string  `json:"content"`
	Slug        string  `json:"slug"`
	CoverURL    *string `json:"cover_url,omitempty"`
	Active      bool    `json:"active"`
	PublishedAt *string `json:"published_at,omitempty"`
	CreatedAt   string  `json:"created_at"`
	CreatedBy   string  `json:"created_by"`
	ModifiedAt  *string `json:"modified_at,omitempty"`
	ModifiedBy  *string `json:"modified_by,omitempty"`
}

// ArticlesData is the payload of the article listing endpoint.
type ArticlesData struct {
	Articles  []Article `json:"articles"`
	TotalData int       `json:"total_data"`
	TotalPage int       `json:"total_page"`
}

// ArticlesResponse is the envelope returned by GET /v1/articles.
type ArticlesResponse = Envelope[ArticlesData]

// ArticleResponse is the envelope returned by the single-article endpoints.
type ArticleResponse = Envelope[Article]

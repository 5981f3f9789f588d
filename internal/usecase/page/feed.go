package page

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/feeds"

	"butuhkidul/internal/config"
	"butuhkidul/internal/domain/entity"
	"butuhkidul/internal/repository"
)

// FeedSize is the number of articles in the RSS feed.
const FeedSize = 20

// Feed renders the latest active articles as an RSS 2.0 document.
func (s *Service) Feed(ctx context.Context) (string, error) {
	out, err := s.feed(ctx)
	return out, s.finish(ctx, "feed", err)
}

func (s *Service) feed(ctx context.Context) (string, error) {
	resp, err := s.ArticleRepo.List(ctx, repository.ArticleListParams{
		Active: ptr(true),
		Page:   ptr(1),
		Limit:  ptr(FeedSize),
	})
	if err != nil {
		return "", err
	}
	if resp == nil || resp.Data == nil {
		return "", newError(http.StatusInternalServerError, msgArticlesFallback, nil)
	}

	site := s.Site
	feed := &feeds.Feed{
		Title:       site.Name,
		Link:        &feeds.Link{Href: site.URLFor("/")},
		Description: site.Description,
		Items:       make([]*feeds.Item, 0, len(resp.Data.Articles)),
	}
	for _, a := range resp.Data.Articles {
		item := s.feedItem(site, a)
		if item.Created.After(feed.Created) {
			feed.Created = item.Created
		}
		feed.Items = append(feed.Items, item)
	}

	rss, err := feed.ToRss()
	if err != nil {
		return "", fmt.Errorf("render rss: %w", err)
	}
	return rss, nil
}

func (s *Service) feedItem(site config.Site, a entity.Article) *feeds.Item {
	link := site.URLFor("/articles/" + a.Slug)
	item := &feeds.Item{
		Id:          link,
		Title:       a.Title,
		Link:        &feeds.Link{Href: link},
		Description: s.excerpt(a.Content),
	}
	published := a.CreatedAt
	if a.PublishedAt != nil && *a.PublishedAt != "" {
		published = *a.PublishedAt
	}
	if t, ok := parseTimestamp(published); ok {
		item.Created = t
	}
	if a.ModifiedAt != nil {
		if t, ok := parseTimestamp(*a.ModifiedAt); ok {
			item.Updated = t
		}
	}
	return item
}

// parseTimestamp accepts the timestamp layouts the API is known to emit.
func parseTimestamp(v string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SiteInfo returns the public site metadata and navigation.
func (s *Service) SiteInfo() config.Site {
	return s.Site
}

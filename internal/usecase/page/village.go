package page

import (
	"context"
	"net/http"

	"butuhkidul/internal/domain/entity"
	"butuhkidul/internal/usecase/population"
)

// HistoryEntry is a history chapter with its description rendered to HTML.
type HistoryEntry struct {
	entity.VillageHistory
	DescriptionHTML string `json:"description_html"`
}

// HistoriesPage is the village history page.
type HistoriesPage struct {
	Histories []HistoryEntry `json:"histories"`
}

// Histories loads the village history chapters.
func (s *Service) Histories(ctx context.Context) (*HistoriesPage, error) {
	p, err := s.histories(ctx)
	return p, s.finish(ctx, "histories", err)
}

func (s *Service) histories(ctx context.Context) (*HistoriesPage, error) {
	resp, err := s.VillageRepo.History(ctx)
	if err != nil {
		return nil, err
	}
	if resp == nil || resp.Data == nil {
		return nil, newError(http.StatusInternalServerError, msgLoadHistories, nil)
	}

	out := &HistoriesPage{Histories: make([]HistoryEntry, 0, len(resp.Data.VillageHistories))}
	for _, h := range resp.Data.VillageHistories {
		out.Histories = append(out.Histories, HistoryEntry{
			VillageHistory:  h,
			DescriptionHTML: s.renderHTML(h.Description),
		})
	}
	return out, nil
}

// PopulationPage is the demographics page: aggregated statistics plus the
// per-hamlet records they were computed from.
type PopulationPage struct {
	Stats   entity.PopulationStats `json:"stats"`
	Records []entity.Population    `json:"records"`
}

// Population loads the census records and aggregates them.
func (s *Service) Population(ctx context.Context) (*PopulationPage, error) {
	p, err := s.population(ctx)
	return p, s.finish(ctx, "population", err)
}

func (s *Service) population(ctx context.Context) (*PopulationPage, error) {
	resp, err := s.PopulationRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, newError(http.StatusInternalServerError, msgLoadPopulation, nil)
	}

	records := resp.Data.Population
	if records == nil {
		records = []entity.Population{}
	}
	return &PopulationPage{
		Stats:   population.Stats(records),
		Records: records,
	}, nil
}

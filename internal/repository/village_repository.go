// Package repository declares the read-only data sources the use cases depend on.
// The only implementation talks to the remote village API; tests provide stubs.
package repository

import (
	"context"

	"butuhkidul/internal/domain/entity"
)

// VillageRepository reads village records and their history.
type VillageRepository interface {
	List(ctx context.Context) (*entity.VillagesResponse, error)
	History(ctx context.Context) (*entity.VillageHistoryResponse, error)
}

// PopulationRepository reads per-hamlet census records.
type PopulationRepository interface {
	List(ctx context.Context) (*entity.PopulationResponse, error)
}

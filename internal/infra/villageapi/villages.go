package villageapi

import (
	"context"

	"butuhkidul/internal/domain/entity"
	"butuhkidul/internal/repository"
)

// VillagesAPI implements repository.VillageRepository.
type VillagesAPI struct {
	Client *Client
}

var _ repository.VillageRepository = (*VillagesAPI)(nil)

// List calls GET /v1/villages.
func (v *VillagesAPI) List(ctx context.Context) (*entity.VillagesResponse, error) {
	var out entity.VillagesResponse
	if err := v.Client.get(ctx, "villages.list", "/v1/villages", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// History calls GET /v1/villages/history.
func (v *VillagesAPI) History(ctx context.Context) (*entity.VillageHistoryResponse, error) {
	var out entity.VillageHistoryResponse
	if err := v.Client.get(ctx, "villages.history", "/v1/villages/history", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PopulationAPI implements repository.PopulationRepository.
type PopulationAPI struct {
	Client *Client
}

var _ repository.PopulationRepository = (*PopulationAPI)(nil)

// List calls GET /v1/populations.
func (p *PopulationAPI) List(ctx context.Context) (*entity.PopulationResponse, error) {
	var out entity.PopulationResponse
	if err := p.Client.get(ctx, "populations.list", "/v1/populations", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

package page_test

import (
	"context"

	"butuhkidul/internal/domain/entity"
	"butuhkidul/internal/repository"
)

/*────────────────────  インメモリスタブ  ────────────────────*/

type stubVillages struct {
	list    func(ctx context.Context) (*entity.VillagesResponse, error)
	history func(ctx context.Context) (*entity.VillageHistoryResponse, error)
}

func (s *stubVillages) List(ctx context.Context) (*entity.VillagesResponse, error) {
	return s.list(ctx)
}
func (s *stubVillages) History(ctx context.Context) (*entity.VillageHistoryResponse, error) {
	return s.history(ctx)
}

type stubArticles struct {
	list      func(ctx context.Context, p repository.ArticleListParams) (*entity.ArticlesResponse, error)
	getBySlug func(ctx context.Context, slug string) (*entity.ArticleResponse, error)
	lastList  repository.ArticleListParams
}

func (s *stubArticles) List(ctx context.Context, p repository.ArticleListParams) (*entity.ArticlesResponse, error) {
	s.lastList = p
	return s.list(ctx, p)
}
func (s *stubArticles) GetByID(context.Context, string) (*entity.ArticleResponse, error) {
	return nil, nil // ローダーでは未使用
}
func (s *stubArticles) GetBySlug(ctx context.Context, slug string) (*entity.ArticleResponse, error) {
	return s.getBySlug(ctx, slug)
}

type stubUnits struct {
	units       *entity.UnitsResponse
	unitsErr    error
	members     *entity.UnitMembersResponse
	membersErr  error
	lastMembers repository.MemberListParams
	calls       []string
}

func (s *stubUnits) List(context.Context, repository.UnitListParams) (*entity.UnitsResponse, error) {
	s.calls = append(s.calls, "units")
	return s.units, s.unitsErr
}
func (s *stubUnits) Members(_ context.Context, p repository.MemberListParams) (*entity.UnitMembersResponse, error) {
	s.calls = append(s.calls, "members")
	s.lastMembers = p
	return s.members, s.membersErr
}
func (s *stubUnits) MembersByUnitID(context.Context, string, repository.MemberListParams) (*entity.UnitMembersResponse, error) {
	return nil, nil // ローダーでは未使用
}

type stubPopulation struct {
	resp *entity.PopulationResponse
	err  error
}

func (s *stubPopulation) List(context.Context) (*entity.PopulationResponse, error) {
	return s.resp, s.err
}

func ptr[T any](v T) *T { return &v }

package queries

import (
	"context"
	"log/slog"
	"strings"

	"laureate/contexts/award-program/award-catalog/domain/entities"
	"laureate/contexts/award-program/award-catalog/ports"
)

// CatalogUseCase serves award reads for every authenticated role.
type CatalogUseCase struct {
	Awards ports.AwardRepository
	Policy ports.PolicyGuard
	Logger *slog.Logger
}

type ListAwardsQuery struct {
	PrincipalID   string
	PrincipalRole string
}

// ListAwardsResult carries every award; for admin callers the Mine/Others
// split is additionally populated. The split is display shaping only, all
// admins read all awards.
type ListAwardsResult struct {
	Items  []entities.Award
	Mine   []entities.Award
	Others []entities.Award
}

func (uc CatalogUseCase) ListAwards(ctx context.Context, query ListAwardsQuery) (ListAwardsResult, error) {
	if err := uc.Policy.Authorize(ctx, query.PrincipalID, query.PrincipalRole, "award.read", "award", "", ""); err != nil {
		return ListAwardsResult{}, err
	}
	items, err := uc.Awards.ListAwards(ctx)
	if err != nil {
		return ListAwardsResult{}, err
	}

	result := ListAwardsResult{Items: items}
	if strings.TrimSpace(query.PrincipalRole) == "admin" {
		principalID := strings.TrimSpace(query.PrincipalID)
		result.Mine = make([]entities.Award, 0, len(items))
		result.Others = make([]entities.Award, 0, len(items))
		for _, award := range items {
			if award.CreatorID == principalID {
				result.Mine = append(result.Mine, award)
			} else {
				result.Others = append(result.Others, award)
			}
		}
	}
	return result, nil
}

type GetAwardQuery struct {
	PrincipalID   string
	PrincipalRole string
	AwardID       string
}

func (uc CatalogUseCase) GetAward(ctx context.Context, query GetAwardQuery) (entities.Award, error) {
	if err := uc.Policy.Authorize(ctx, query.PrincipalID, query.PrincipalRole, "award.read", "award", "", ""); err != nil {
		return entities.Award{}, err
	}
	return uc.Awards.GetAward(ctx, strings.TrimSpace(query.AwardID))
}

package queries

import (
	"context"
	"log/slog"
	"strings"

	application "laureate/contexts/award-program/ranking-engine/application"
	"laureate/contexts/award-program/ranking-engine/domain/entities"
	domainerrors "laureate/contexts/award-program/ranking-engine/domain/errors"
	"laureate/contexts/award-program/ranking-engine/domain/services"
	"laureate/contexts/award-program/ranking-engine/ports"
)

// WinnersUseCase recomputes award standings per call. Threshold is the
// qualifying mean score; zero means use the default.
type WinnersUseCase struct {
	Source    ports.RankingSource
	Policy    ports.PolicyGuard
	Threshold float64
	Logger    *slog.Logger
}

type WinnersQuery struct {
	PrincipalID   string
	PrincipalRole string
}

// WinnersByAward returns a winner declaration per award that has one.
func (uc WinnersUseCase) WinnersByAward(ctx context.Context, query WinnersQuery) ([]entities.WinnerDeclaration, error) {
	if err := uc.Policy.Authorize(ctx, query.PrincipalID, query.PrincipalRole, "winner.read", "winner", "", ""); err != nil {
		return nil, err
	}
	awards, err := uc.Source.ListAwards(ctx)
	if err != nil {
		return nil, err
	}
	winners, err := uc.rank(ctx, awards)
	if err != nil {
		return nil, err
	}

	application.ResolveLogger(uc.Logger).Info("winners computed",
		"event", "winners_computed",
		"module", "award-program/ranking-engine",
		"layer", "application",
		"awards", len(awards),
		"winners", len(winners),
	)
	return winners, nil
}

type WinnerForAwardQuery struct {
	PrincipalID   string
	PrincipalRole string
	AwardID       string
}

// WinnerForAward resolves one award's winner. A real award without a
// qualifying project answers ErrNoWinner, an unknown id ErrAwardNotFound.
func (uc WinnersUseCase) WinnerForAward(ctx context.Context, query WinnerForAwardQuery) (entities.WinnerDeclaration, error) {
	if err := uc.Policy.Authorize(ctx, query.PrincipalID, query.PrincipalRole, "winner.read", "winner", "", ""); err != nil {
		return entities.WinnerDeclaration{}, err
	}
	award, ok, err := uc.Source.GetAward(ctx, strings.TrimSpace(query.AwardID))
	if err != nil {
		return entities.WinnerDeclaration{}, err
	}
	if !ok {
		return entities.WinnerDeclaration{}, domainerrors.ErrAwardNotFound
	}
	winners, err := uc.rank(ctx, []ports.AwardScan{award})
	if err != nil {
		return entities.WinnerDeclaration{}, err
	}
	if len(winners) == 0 {
		return entities.WinnerDeclaration{}, domainerrors.ErrNoWinner
	}
	return winners[0], nil
}

func (uc WinnersUseCase) rank(ctx context.Context, awards []ports.AwardScan) ([]entities.WinnerDeclaration, error) {
	projects, err := uc.Source.ListEvaluatedProjects(ctx)
	if err != nil {
		return nil, err
	}
	scores, err := uc.Source.ListScores(ctx)
	if err != nil {
		return nil, err
	}
	threshold := uc.Threshold
	if threshold <= 0 {
		threshold = services.DefaultThreshold
	}
	return services.Rank(awards, projects, scores, threshold), nil
}

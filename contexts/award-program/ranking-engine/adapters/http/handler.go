package httpadapter

import (
	"context"
	"log/slog"

	"laureate/contexts/award-program/ranking-engine/application/queries"
	"laureate/contexts/award-program/ranking-engine/domain/entities"
	httptransport "laureate/contexts/award-program/ranking-engine/transport/http"
)

type Handler struct {
	Winners queries.WinnersUseCase
	Logger  *slog.Logger
}

func (h Handler) ListWinnersHandler(
	ctx context.Context,
	principalID string,
	principalRole string,
) (httptransport.WinnerListResponse, error) {
	winners, err := h.Winners.WinnersByAward(ctx, queries.WinnersQuery{
		PrincipalID:   principalID,
		PrincipalRole: principalRole,
	})
	if err != nil {
		return httptransport.WinnerListResponse{}, err
	}
	items := make([]httptransport.WinnerResponse, 0, len(winners))
	for _, winner := range winners {
		items = append(items, toWinnerResponse(winner))
	}
	return httptransport.WinnerListResponse{Items: items}, nil
}

func (h Handler) AwardWinnerHandler(
	ctx context.Context,
	principalID string,
	principalRole string,
	awardID string,
) (httptransport.WinnerResponse, error) {
	winner, err := h.Winners.WinnerForAward(ctx, queries.WinnerForAwardQuery{
		PrincipalID:   principalID,
		PrincipalRole: principalRole,
		AwardID:       awardID,
	})
	if err != nil {
		return httptransport.WinnerResponse{}, err
	}
	return toWinnerResponse(winner), nil
}

func toWinnerResponse(winner entities.WinnerDeclaration) httptransport.WinnerResponse {
	return httptransport.WinnerResponse{
		AwardID:         winner.AwardID,
		AwardName:       winner.AwardName,
		Year:            winner.Year,
		ProjectID:       winner.ProjectID,
		Title:           winner.Title,
		AuthorID:        winner.AuthorID,
		MeanScore:       winner.MeanScore,
		EvaluationCount: winner.EvaluationCount,
	}
}

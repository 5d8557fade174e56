package httpadapter

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"laureate/contexts/award-program/award-catalog/application/commands"
	"laureate/contexts/award-program/award-catalog/application/queries"
	"laureate/contexts/award-program/award-catalog/domain/entities"
	domainerrors "laureate/contexts/award-program/award-catalog/domain/errors"
	httptransport "laureate/contexts/award-program/award-catalog/transport/http"
)

const dateLayout = "2006-01-02"

type Handler struct {
	Awards  commands.AwardUseCase
	Catalog queries.CatalogUseCase
	Logger  *slog.Logger
}

func (h Handler) CreateAwardHandler(
	ctx context.Context,
	principalID string,
	principalRole string,
	req httptransport.CreateAwardRequest,
) (httptransport.AwardResponse, error) {
	stages, err := parseStages(req.Stages)
	if err != nil {
		return httptransport.AwardResponse{}, err
	}
	award, err := h.Awards.CreateAward(ctx, commands.CreateAwardCommand{
		PrincipalID:   principalID,
		PrincipalRole: principalRole,
		Name:          req.Name,
		Description:   req.Description,
		Year:          req.Year,
		Stages:        stages,
	})
	if err != nil {
		return httptransport.AwardResponse{}, err
	}
	return toAwardResponse(award), nil
}

func (h Handler) UpdateAwardHandler(
	ctx context.Context,
	principalID string,
	principalRole string,
	awardID string,
	req httptransport.UpdateAwardRequest,
) (httptransport.AwardResponse, error) {
	stages, err := parseStages(req.Stages)
	if err != nil {
		return httptransport.AwardResponse{}, err
	}
	award, err := h.Awards.UpdateAward(ctx, commands.UpdateAwardCommand{
		PrincipalID:   principalID,
		PrincipalRole: principalRole,
		AwardID:       awardID,
		Name:          req.Name,
		Description:   req.Description,
		Year:          req.Year,
		Stages:        stages,
	})
	if err != nil {
		return httptransport.AwardResponse{}, err
	}
	return toAwardResponse(award), nil
}

func (h Handler) DeleteAwardHandler(
	ctx context.Context,
	principalID string,
	principalRole string,
	awardID string,
) (httptransport.DeleteAwardResponse, error) {
	result, err := h.Awards.DeleteAward(ctx, commands.DeleteAwardCommand{
		PrincipalID:   principalID,
		PrincipalRole: principalRole,
		AwardID:       awardID,
	})
	if err != nil {
		return httptransport.DeleteAwardResponse{}, err
	}
	return httptransport.DeleteAwardResponse{
		AwardID:             awardID,
		CascadedStages:      result.Stages,
		CascadedProjects:    result.Projects,
		CascadedEvaluations: result.Evaluations,
	}, nil
}

func (h Handler) GetAwardHandler(
	ctx context.Context,
	principalID string,
	principalRole string,
	awardID string,
) (httptransport.AwardResponse, error) {
	award, err := h.Catalog.GetAward(ctx, queries.GetAwardQuery{
		PrincipalID:   principalID,
		PrincipalRole: principalRole,
		AwardID:       awardID,
	})
	if err != nil {
		return httptransport.AwardResponse{}, err
	}
	return toAwardResponse(award), nil
}

func (h Handler) ListAwardsHandler(
	ctx context.Context,
	principalID string,
	principalRole string,
) (httptransport.AwardListResponse, error) {
	result, err := h.Catalog.ListAwards(ctx, queries.ListAwardsQuery{
		PrincipalID:   principalID,
		PrincipalRole: principalRole,
	})
	if err != nil {
		return httptransport.AwardListResponse{}, err
	}
	return httptransport.AwardListResponse{
		Items:  toAwardResponses(result.Items),
		Mine:   toAwardResponses(result.Mine),
		Others: toAwardResponses(result.Others),
	}, nil
}

func parseStages(payloads []httptransport.StagePayload) ([]entities.ScheduleStage, error) {
	stages := make([]entities.ScheduleStage, 0, len(payloads))
	var fields []domainerrors.FieldError
	for i, payload := range payloads {
		stage := entities.ScheduleStage{Label: payload.Label}
		start, err := time.Parse(dateLayout, payload.StartDate)
		if err != nil {
			fields = append(fields, domainerrors.FieldError{
				Field:   stageField(i, "start_date"),
				Message: "date must use YYYY-MM-DD",
			})
		} else {
			stage.StartDate = start
		}
		end, err := time.Parse(dateLayout, payload.EndDate)
		if err != nil {
			fields = append(fields, domainerrors.FieldError{
				Field:   stageField(i, "end_date"),
				Message: "date must use YYYY-MM-DD",
			})
		} else {
			stage.EndDate = end
		}
		stages = append(stages, stage)
	}
	if len(fields) > 0 {
		return nil, &domainerrors.ValidationError{Fields: fields}
	}
	return stages, nil
}

func stageField(index int, name string) string {
	return "stages[" + strconv.Itoa(index) + "]." + name
}

func toAwardResponse(award entities.Award) httptransport.AwardResponse {
	stages := make([]httptransport.StagePayload, 0, len(award.Stages))
	for _, stage := range award.Stages {
		stages = append(stages, httptransport.StagePayload{
			Label:     stage.Label,
			StartDate: stage.StartDate.Format(dateLayout),
			EndDate:   stage.EndDate.Format(dateLayout),
		})
	}
	return httptransport.AwardResponse{
		AwardID:     award.AwardID,
		Name:        award.Name,
		Description: award.Description,
		Year:        award.Year,
		CreatorID:   award.CreatorID,
		Stages:      stages,
	}
}

func toAwardResponses(awards []entities.Award) []httptransport.AwardResponse {
	if awards == nil {
		return nil
	}
	items := make([]httptransport.AwardResponse, 0, len(awards))
	for _, award := range awards {
		items = append(items, toAwardResponse(award))
	}
	return items
}

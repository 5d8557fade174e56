package commands

import (
	"context"
	"strings"

	application "laureate/contexts/award-program/award-catalog/application"
	"laureate/contexts/award-program/award-catalog/domain/entities"
	domainerrors "laureate/contexts/award-program/award-catalog/domain/errors"
)

// UpdateAwardCommand replaces the award fields and the full stage set.
type UpdateAwardCommand struct {
	PrincipalID   string
	PrincipalRole string
	AwardID       string
	Name          string
	Description   string
	Year          int
	Stages        []entities.ScheduleStage
}

// UpdateAward swaps the stage schedule wholesale rather than patching single
// stages, so partial-stage drift cannot occur.
func (uc AwardUseCase) UpdateAward(ctx context.Context, cmd UpdateAwardCommand) (entities.Award, error) {
	logger := application.ResolveLogger(uc.Logger)
	if err := uc.Policy.Authorize(ctx, cmd.PrincipalID, cmd.PrincipalRole, "award.update", "award", "", ""); err != nil {
		return entities.Award{}, err
	}

	existing, err := uc.Awards.GetAward(ctx, strings.TrimSpace(cmd.AwardID))
	if err != nil {
		return entities.Award{}, err
	}

	if fields := validateAward(cmd.Name, cmd.Description, cmd.Year, cmd.Stages); len(fields) > 0 {
		logger.Warn("award update validation failed",
			"event", "award_update_validation_failed",
			"module", "award-program/award-catalog",
			"layer", "application",
			"award_id", strings.TrimSpace(cmd.AwardID),
			"field_errors", len(fields),
		)
		return entities.Award{}, &domainerrors.ValidationError{Fields: fields}
	}

	updated := entities.Award{
		AwardID:     existing.AwardID,
		Name:        strings.TrimSpace(cmd.Name),
		Description: strings.TrimSpace(cmd.Description),
		Year:        cmd.Year,
		CreatorID:   existing.CreatorID,
		Stages:      normalizeStages(cmd.Stages),
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   uc.now(),
	}
	if err := uc.Awards.UpdateAward(ctx, updated); err != nil {
		return entities.Award{}, err
	}

	logger.Info("award updated",
		"event", "award_updated",
		"module", "award-program/award-catalog",
		"layer", "application",
		"award_id", updated.AwardID,
		"stages", len(updated.Stages),
	)
	return updated, nil
}

package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "laureate/contexts/award-program/award-catalog/application"
	"laureate/contexts/award-program/award-catalog/domain/entities"
	domainerrors "laureate/contexts/award-program/award-catalog/domain/errors"
	"laureate/contexts/award-program/award-catalog/ports"
)

// CreateAwardCommand is the write-model input for award publication.
type CreateAwardCommand struct {
	PrincipalID   string
	PrincipalRole string
	Name          string
	Description   string
	Year          int
	Stages        []entities.ScheduleStage
}

// AwardUseCase orchestrates award mutations: policy gating, field-level
// validation, and atomic persistence of the award with its stage schedule.
type AwardUseCase struct {
	Awards ports.AwardRepository
	Policy ports.PolicyGuard
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

// CreateAward validates and persists a new award. The creator id is stamped
// from the principal, never taken from the request payload.
func (uc AwardUseCase) CreateAward(ctx context.Context, cmd CreateAwardCommand) (entities.Award, error) {
	logger := application.ResolveLogger(uc.Logger)
	if err := uc.Policy.Authorize(ctx, cmd.PrincipalID, cmd.PrincipalRole, "award.create", "award", "", ""); err != nil {
		return entities.Award{}, err
	}

	if fields := validateAward(cmd.Name, cmd.Description, cmd.Year, cmd.Stages); len(fields) > 0 {
		logger.Warn("award create validation failed",
			"event", "award_create_validation_failed",
			"module", "award-program/award-catalog",
			"layer", "application",
			"principal_id", strings.TrimSpace(cmd.PrincipalID),
			"field_errors", len(fields),
		)
		return entities.Award{}, &domainerrors.ValidationError{Fields: fields}
	}

	awardID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.Award{}, err
	}
	now := uc.now()
	award := entities.Award{
		AwardID:     awardID,
		Name:        strings.TrimSpace(cmd.Name),
		Description: strings.TrimSpace(cmd.Description),
		Year:        cmd.Year,
		CreatorID:   strings.TrimSpace(cmd.PrincipalID),
		Stages:      normalizeStages(cmd.Stages),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.Awards.CreateAward(ctx, award); err != nil {
		return entities.Award{}, err
	}

	logger.Info("award created",
		"event", "award_created",
		"module", "award-program/award-catalog",
		"layer", "application",
		"award_id", award.AwardID,
		"creator_id", award.CreatorID,
		"year", award.Year,
		"stages", len(award.Stages),
	)
	return award, nil
}

func (uc AwardUseCase) now() time.Time {
	now := time.Now().UTC()
	if uc.Clock != nil {
		now = uc.Clock.Now().UTC()
	}
	return now
}

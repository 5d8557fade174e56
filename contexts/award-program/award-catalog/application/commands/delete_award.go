package commands

import (
	"context"
	"strings"

	application "laureate/contexts/award-program/award-catalog/application"
	"laureate/contexts/award-program/award-catalog/domain/entities"
)

// DeleteAwardCommand requests the cascading removal of an award.
type DeleteAwardCommand struct {
	PrincipalID   string
	PrincipalRole string
	AwardID       string
}

// DeleteAward removes the award together with its stages, the projects
// submitted under it, and transitively their evaluations. The cascade is an
// explicit repository operation, not an ORM association side effect.
func (uc AwardUseCase) DeleteAward(ctx context.Context, cmd DeleteAwardCommand) (entities.CascadeResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	if err := uc.Policy.Authorize(ctx, cmd.PrincipalID, cmd.PrincipalRole, "award.delete", "award", "", ""); err != nil {
		return entities.CascadeResult{}, err
	}

	awardID := strings.TrimSpace(cmd.AwardID)
	if _, err := uc.Awards.GetAward(ctx, awardID); err != nil {
		return entities.CascadeResult{}, err
	}

	result, err := uc.Awards.DeleteAwardCascade(ctx, awardID)
	if err != nil {
		return entities.CascadeResult{}, err
	}
	logger.Info("award deleted",
		"event", "award_deleted",
		"module", "award-program/award-catalog",
		"layer", "application",
		"award_id", awardID,
		"principal_id", strings.TrimSpace(cmd.PrincipalID),
		"cascaded_stages", result.Stages,
		"cascaded_projects", result.Projects,
		"cascaded_evaluations", result.Evaluations,
	)
	return result, nil
}

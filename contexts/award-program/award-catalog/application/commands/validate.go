package commands

import (
	"fmt"
	"strings"

	"laureate/contexts/award-program/award-catalog/domain/entities"
	domainerrors "laureate/contexts/award-program/award-catalog/domain/errors"
)

// validateAward collects every invalid field instead of failing on the first,
// matching the field-error-list contract of the submission forms.
func validateAward(name string, description string, year int, stages []entities.ScheduleStage) []domainerrors.FieldError {
	var fields []domainerrors.FieldError
	if strings.TrimSpace(name) == "" {
		fields = append(fields, domainerrors.FieldError{Field: "name", Message: "name is required"})
	}
	if strings.TrimSpace(description) == "" {
		fields = append(fields, domainerrors.FieldError{Field: "description", Message: "description is required"})
	}
	if year < entities.MinYear || year > entities.MaxYear {
		fields = append(fields, domainerrors.FieldError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between %d and %d", entities.MinYear, entities.MaxYear),
		})
	}
	for i, stage := range stages {
		if strings.TrimSpace(stage.Label) == "" {
			fields = append(fields, domainerrors.FieldError{
				Field:   fmt.Sprintf("stages[%d].label", i),
				Message: "stage label is required",
			})
		}
		if stage.StartDate.IsZero() || stage.EndDate.IsZero() {
			fields = append(fields, domainerrors.FieldError{
				Field:   fmt.Sprintf("stages[%d]", i),
				Message: "stage start and end dates are required",
			})
			continue
		}
		if !stage.Valid() {
			fields = append(fields, domainerrors.FieldError{
				Field:   fmt.Sprintf("stages[%d]", i),
				Message: "stage end date must be after its start date",
			})
		}
	}
	return fields
}

func normalizeStages(stages []entities.ScheduleStage) []entities.ScheduleStage {
	normalized := make([]entities.ScheduleStage, 0, len(stages))
	for _, stage := range stages {
		normalized = append(normalized, entities.ScheduleStage{
			Label:     strings.TrimSpace(stage.Label),
			StartDate: stage.StartDate.UTC(),
			EndDate:   stage.EndDate.UTC(),
		})
	}
	return normalized
}

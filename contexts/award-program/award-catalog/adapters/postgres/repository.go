package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"laureate/contexts/award-program/award-catalog/domain/entities"
	domainerrors "laureate/contexts/award-program/award-catalog/domain/errors"
	"laureate/contexts/award-program/award-catalog/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) CreateAward(ctx context.Context, award entities.Award) error {
	row := awardModelFromEntity(award)
	stages := stageModelsFromEntity(award)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		if len(stages) > 0 {
			if err := tx.Create(&stages).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrConflict
		}
		return r.logError("award_repo_create_failed", err, "award_id", row.ID)
	}
	return nil
}

func (r *Repository) UpdateAward(ctx context.Context, award entities.Award) error {
	row := awardModelFromEntity(award)
	stages := stageModelsFromEntity(award)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&awardModel{}).
			Where("id = ?", row.ID).
			Updates(map[string]any{
				"name":        row.Name,
				"description": row.Description,
				"year":        row.Year,
				"updated_at":  row.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrAwardNotFound
		}
		// Full stage-set replacement inside the same transaction, so no
		// concurrent reader sees a stage-less award.
		if err := tx.Where("award_id = ?", row.ID).Delete(&stageModel{}).Error; err != nil {
			return err
		}
		if len(stages) > 0 {
			if err := tx.Create(&stages).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrAwardNotFound) {
			return err
		}
		return r.logError("award_repo_update_failed", err, "award_id", row.ID)
	}
	return nil
}

func (r *Repository) DeleteAwardCascade(ctx context.Context, awardID string) (entities.CascadeResult, error) {
	awardID = strings.TrimSpace(awardID)
	var result entities.CascadeResult
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var projectIDs []string
		if err := tx.Model(&projectRefModel{}).
			Where("award_id = ?", awardID).
			Pluck("id", &projectIDs).Error; err != nil {
			return err
		}

		if len(projectIDs) > 0 {
			evaluations := tx.Where("project_id IN ?", projectIDs).Delete(&evaluationRefModel{})
			if evaluations.Error != nil {
				return evaluations.Error
			}
			result.Evaluations = int(evaluations.RowsAffected)

			projects := tx.Where("award_id = ?", awardID).Delete(&projectRefModel{})
			if projects.Error != nil {
				return projects.Error
			}
			result.Projects = int(projects.RowsAffected)
		}

		stages := tx.Where("award_id = ?", awardID).Delete(&stageModel{})
		if stages.Error != nil {
			return stages.Error
		}
		result.Stages = int(stages.RowsAffected)

		award := tx.Where("id = ?", awardID).Delete(&awardModel{})
		if award.Error != nil {
			return award.Error
		}
		if award.RowsAffected == 0 {
			return domainerrors.ErrAwardNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrAwardNotFound) {
			return entities.CascadeResult{}, err
		}
		return entities.CascadeResult{}, r.logError("award_repo_delete_cascade_failed", err, "award_id", awardID)
	}
	return result, nil
}

func (r *Repository) GetAward(ctx context.Context, awardID string) (entities.Award, error) {
	var row awardModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(awardID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Award{}, domainerrors.ErrAwardNotFound
		}
		return entities.Award{}, r.logError("award_repo_get_failed", err, "award_id", strings.TrimSpace(awardID))
	}

	var stageRows []stageModel
	if err := r.db.WithContext(ctx).
		Where("award_id = ?", row.ID).
		Order("start_date ASC, position ASC").
		Find(&stageRows).Error; err != nil {
		return entities.Award{}, r.logError("award_repo_get_stages_failed", err, "award_id", row.ID)
	}
	return row.toEntity(stageRows), nil
}

func (r *Repository) ListAwards(ctx context.Context) ([]entities.Award, error) {
	var rows []awardModel
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("award_repo_list_failed", err)
	}
	if len(rows) == 0 {
		return []entities.Award{}, nil
	}

	awardIDs := make([]string, 0, len(rows))
	for _, row := range rows {
		awardIDs = append(awardIDs, row.ID)
	}
	var stageRows []stageModel
	if err := r.db.WithContext(ctx).
		Where("award_id IN ?", awardIDs).
		Order("start_date ASC, position ASC").
		Find(&stageRows).Error; err != nil {
		return nil, r.logError("award_repo_list_stages_failed", err)
	}
	stagesByAward := make(map[string][]stageModel, len(rows))
	for _, stage := range stageRows {
		stagesByAward[stage.AwardID] = append(stagesByAward[stage.AwardID], stage)
	}

	items := make([]entities.Award, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity(stagesByAward[row.ID]))
	}
	return items, nil
}

func (r *Repository) logError(event string, err error, attrs ...any) error {
	fields := make([]any, 0, len(attrs)+8)
	fields = append(fields,
		"event", event,
		"module", "award-program/award-catalog",
		"layer", "adapter",
		"error", err.Error(),
	)
	fields = append(fields, attrs...)
	r.logger.Error("award repository operation failed", fields...)
	return err
}

type awardModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name"`
	Description string    `gorm:"column:description"`
	Year        int       `gorm:"column:year"`
	CreatorID   string    `gorm:"column:creator_id"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (awardModel) TableName() string {
	return "awards"
}

func awardModelFromEntity(award entities.Award) awardModel {
	row := awardModel{
		ID:          strings.TrimSpace(award.AwardID),
		Name:        strings.TrimSpace(award.Name),
		Description: strings.TrimSpace(award.Description),
		Year:        award.Year,
		CreatorID:   strings.TrimSpace(award.CreatorID),
		CreatedAt:   award.CreatedAt.UTC(),
		UpdatedAt:   award.UpdatedAt.UTC(),
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	if row.UpdatedAt.IsZero() {
		row.UpdatedAt = row.CreatedAt
	}
	return row
}

func (m awardModel) toEntity(stageRows []stageModel) entities.Award {
	stages := make([]entities.ScheduleStage, 0, len(stageRows))
	for _, stage := range stageRows {
		stages = append(stages, entities.ScheduleStage{
			Label:     stage.Label,
			StartDate: stage.StartDate.UTC(),
			EndDate:   stage.EndDate.UTC(),
		})
	}
	return entities.Award{
		AwardID:     m.ID,
		Name:        m.Name,
		Description: m.Description,
		Year:        m.Year,
		CreatorID:   m.CreatorID,
		Stages:      stages,
		CreatedAt:   m.CreatedAt.UTC(),
		UpdatedAt:   m.UpdatedAt.UTC(),
	}
}

type stageModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	AwardID   string    `gorm:"column:award_id"`
	Label     string    `gorm:"column:label"`
	StartDate time.Time `gorm:"column:start_date"`
	EndDate   time.Time `gorm:"column:end_date"`
	Position  int       `gorm:"column:position"`
}

func (stageModel) TableName() string {
	return "schedule_stages"
}

func stageModelsFromEntity(award entities.Award) []stageModel {
	rows := make([]stageModel, 0, len(award.Stages))
	for i, stage := range award.Stages {
		rows = append(rows, stageModel{
			ID:        strings.TrimSpace(award.AwardID) + "-stage-" + strconv.Itoa(i),
			AwardID:   strings.TrimSpace(award.AwardID),
			Label:     strings.TrimSpace(stage.Label),
			StartDate: stage.StartDate.UTC(),
			EndDate:   stage.EndDate.UTC(),
			Position:  i,
		})
	}
	return rows
}

// projectRefModel and evaluationRefModel are cascade projections over the
// project-lifecycle and evaluation-ledger tables. The catalog only deletes
// through them, it never writes rows.
type projectRefModel struct {
	ID      string `gorm:"column:id;primaryKey"`
	AwardID string `gorm:"column:award_id"`
}

func (projectRefModel) TableName() string {
	return "projects"
}

type evaluationRefModel struct {
	ID        string `gorm:"column:id;primaryKey"`
	ProjectID string `gorm:"column:project_id"`
}

func (evaluationRefModel) TableName() string {
	return "evaluations"
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

var _ ports.AwardRepository = (*Repository)(nil)

package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"laureate/contexts/award-program/evaluation-ledger/domain/entities"
	domainerrors "laureate/contexts/award-program/evaluation-ledger/domain/errors"
	"laureate/contexts/award-program/evaluation-ledger/ports"

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

// CreateEvaluationAndMarkEvaluated inserts the verdict and flips the project
// status in one transaction. The flip is a guarded update on status='pending'
// so concurrent first evaluations race on the database row, not in Go;
// whichever insert commits second simply sees zero rows flipped. The unique
// (project_id, evaluator_id) index serializes same-evaluator duplicates.
func (r *Repository) CreateEvaluationAndMarkEvaluated(ctx context.Context, evaluation entities.Evaluation) error {
	row := evaluationModelFromEntity(evaluation)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		return tx.Model(&projectRefModel{}).
			Where("id = ? AND status = ?", row.ProjectID, "pending").
			Updates(map[string]any{
				"status":     "evaluated",
				"updated_at": row.CreatedAt,
			}).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAlreadyEvaluated
		}
		return r.logError("evaluation_repo_create_failed", err,
			"evaluation_id", row.ID,
			"project_id", row.ProjectID,
		)
	}
	return nil
}

func (r *Repository) UpdateEvaluation(ctx context.Context, evaluation entities.Evaluation) error {
	row := evaluationModelFromEntity(evaluation)
	result := r.db.WithContext(ctx).
		Model(&evaluationModel{}).
		Where("id = ?", row.ID).
		Updates(map[string]any{
			"verdict":      row.Verdict,
			"score":        row.Score,
			"evaluated_at": row.EvaluatedAt,
			"updated_at":   row.UpdatedAt,
		})
	if result.Error != nil {
		return r.logError("evaluation_repo_update_failed", result.Error, "evaluation_id", row.ID)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrEvaluationNotFound
	}
	return nil
}

func (r *Repository) DeleteEvaluation(ctx context.Context, evaluationID string) error {
	evaluationID = strings.TrimSpace(evaluationID)
	result := r.db.WithContext(ctx).
		Where("id = ?", evaluationID).
		Delete(&evaluationModel{})
	if result.Error != nil {
		return r.logError("evaluation_repo_delete_failed", result.Error, "evaluation_id", evaluationID)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrEvaluationNotFound
	}
	return nil
}

func (r *Repository) GetEvaluation(ctx context.Context, evaluationID string) (entities.Evaluation, error) {
	var row evaluationModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(evaluationID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Evaluation{}, domainerrors.ErrEvaluationNotFound
		}
		return entities.Evaluation{}, r.logError("evaluation_repo_get_failed", err, "evaluation_id", strings.TrimSpace(evaluationID))
	}
	return row.toEntity(), nil
}

func (r *Repository) ListEvaluations(ctx context.Context) ([]entities.Evaluation, error) {
	var rows []evaluationModel
	if err := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("evaluation_repo_list_failed", err)
	}
	return toEntities(rows), nil
}

func (r *Repository) ListByEvaluator(ctx context.Context, evaluatorID string) ([]entities.Evaluation, error) {
	var rows []evaluationModel
	if err := r.db.WithContext(ctx).
		Where("evaluator_id = ?", strings.TrimSpace(evaluatorID)).
		Order("created_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("evaluation_repo_list_by_evaluator_failed", err)
	}
	return toEntities(rows), nil
}

func (r *Repository) GetProjectRef(ctx context.Context, projectID string) (ports.ProjectRef, bool, error) {
	var row projectRefModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(projectID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.ProjectRef{}, false, nil
		}
		return ports.ProjectRef{}, false, r.logError("evaluation_repo_get_project_ref_failed", err, "project_id", strings.TrimSpace(projectID))
	}
	return row.toRef(), true, nil
}

func (r *Repository) ListPendingProjects(ctx context.Context) ([]ports.ProjectRef, error) {
	var rows []projectRefModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", "pending").
		Order("submitted_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("evaluation_repo_list_pending_failed", err)
	}
	refs := make([]ports.ProjectRef, 0, len(rows))
	for _, row := range rows {
		refs = append(refs, row.toRef())
	}
	return refs, nil
}

func (r *Repository) logError(event string, err error, attrs ...any) error {
	fields := make([]any, 0, len(attrs)+8)
	fields = append(fields,
		"event", event,
		"module", "award-program/evaluation-ledger",
		"layer", "adapter",
		"error", err.Error(),
	)
	fields = append(fields, attrs...)
	r.logger.Error("evaluation repository operation failed", fields...)
	return err
}

type evaluationModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	ProjectID   string    `gorm:"column:project_id;uniqueIndex:idx_evaluations_project_evaluator"`
	EvaluatorID string    `gorm:"column:evaluator_id;uniqueIndex:idx_evaluations_project_evaluator"`
	Verdict     string    `gorm:"column:verdict"`
	Score       float64   `gorm:"column:score"`
	EvaluatedAt time.Time `gorm:"column:evaluated_at"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (evaluationModel) TableName() string {
	return "evaluations"
}

func evaluationModelFromEntity(evaluation entities.Evaluation) evaluationModel {
	return evaluationModel{
		ID:          strings.TrimSpace(evaluation.EvaluationID),
		ProjectID:   strings.TrimSpace(evaluation.ProjectID),
		EvaluatorID: strings.TrimSpace(evaluation.EvaluatorID),
		Verdict:     strings.TrimSpace(evaluation.Verdict),
		Score:       evaluation.Score,
		EvaluatedAt: evaluation.EvaluatedAt.UTC(),
		CreatedAt:   evaluation.CreatedAt.UTC(),
		UpdatedAt:   evaluation.UpdatedAt.UTC(),
	}
}

func (m evaluationModel) toEntity() entities.Evaluation {
	return entities.Evaluation{
		EvaluationID: m.ID,
		ProjectID:    m.ProjectID,
		EvaluatorID:  m.EvaluatorID,
		Verdict:      m.Verdict,
		Score:        m.Score,
		EvaluatedAt:  m.EvaluatedAt.UTC(),
		CreatedAt:    m.CreatedAt.UTC(),
		UpdatedAt:    m.UpdatedAt.UTC(),
	}
}

func toEntities(rows []evaluationModel) []entities.Evaluation {
	items := make([]entities.Evaluation, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items
}

// projectRefModel is a read/update projection over the lifecycle module's
// projects table; the ledger only reads rows and flips the status column.
type projectRefModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	AwardID     string    `gorm:"column:award_id"`
	AuthorID    string    `gorm:"column:author_id"`
	Title       string    `gorm:"column:title"`
	Status      string    `gorm:"column:status"`
	SubmittedAt time.Time `gorm:"column:submitted_at"`
}

func (projectRefModel) TableName() string {
	return "projects"
}

func (m projectRefModel) toRef() ports.ProjectRef {
	return ports.ProjectRef{
		ProjectID:   m.ID,
		AwardID:     m.AwardID,
		AuthorID:    m.AuthorID,
		Title:       m.Title,
		Status:      m.Status,
		SubmittedAt: m.SubmittedAt.UTC(),
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

var (
	_ ports.EvaluationRepository = (*Repository)(nil)
	_ ports.ProjectDirectory     = (*Repository)(nil)
)

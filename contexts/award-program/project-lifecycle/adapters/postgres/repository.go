package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"laureate/contexts/award-program/project-lifecycle/domain/entities"
	domainerrors "laureate/contexts/award-program/project-lifecycle/domain/errors"
	"laureate/contexts/award-program/project-lifecycle/ports"

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

func (r *Repository) CreateProject(ctx context.Context, project entities.Project) error {
	row := projectModelFromEntity(project)
	coauthors := coauthorModelsFromEntity(project)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		if len(coauthors) > 0 {
			if err := tx.Create(&coauthors).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrConflict
		}
		return r.logError("project_repo_create_failed", err, "project_id", row.ID)
	}
	return nil
}

func (r *Repository) UpdateProject(ctx context.Context, project entities.Project) error {
	row := projectModelFromEntity(project)
	coauthors := coauthorModelsFromEntity(project)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&projectModel{}).
			Where("id = ?", row.ID).
			Updates(map[string]any{
				"title":         row.Title,
				"summary":       row.Summary,
				"topic_area":    row.TopicArea,
				"artifact_path": row.ArtifactPath,
				"updated_at":    row.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrProjectNotFound
		}
		if err := tx.Where("project_id = ?", row.ID).Delete(&coauthorModel{}).Error; err != nil {
			return err
		}
		if len(coauthors) > 0 {
			if err := tx.Create(&coauthors).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrProjectNotFound) {
			return err
		}
		return r.logError("project_repo_update_failed", err, "project_id", row.ID)
	}
	return nil
}

func (r *Repository) UpdateProjectIfPending(ctx context.Context, project entities.Project) error {
	row := projectModelFromEntity(project)
	coauthors := coauthorModelsFromEntity(project)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The status predicate rides inside the write so an evaluation that
		// commits between the caller's read and this transaction cannot be
		// raced past the lock.
		result := tx.Model(&projectModel{}).
			Where("id = ? AND status = ?", row.ID, string(entities.StatusPending)).
			Updates(map[string]any{
				"title":         row.Title,
				"summary":       row.Summary,
				"topic_area":    row.TopicArea,
				"artifact_path": row.ArtifactPath,
				"updated_at":    row.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return r.pendingMissError(tx, row.ID)
		}
		if err := tx.Where("project_id = ?", row.ID).Delete(&coauthorModel{}).Error; err != nil {
			return err
		}
		if len(coauthors) > 0 {
			if err := tx.Create(&coauthors).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrProjectNotFound) || errors.Is(err, domainerrors.ErrProjectLocked) {
			return err
		}
		return r.logError("project_repo_update_if_pending_failed", err, "project_id", row.ID)
	}
	return nil
}

func (r *Repository) DeleteProject(ctx context.Context, projectID string) error {
	projectID = strings.TrimSpace(projectID)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(&evaluationRefModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", projectID).Delete(&coauthorModel{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", projectID).Delete(&projectModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrProjectNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrProjectNotFound) {
			return err
		}
		return r.logError("project_repo_delete_failed", err, "project_id", projectID)
	}
	return nil
}

func (r *Repository) DeleteProjectIfPending(ctx context.Context, projectID string) error {
	projectID = strings.TrimSpace(projectID)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND status = ?", projectID, string(entities.StatusPending)).
			Delete(&projectModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return r.pendingMissError(tx, projectID)
		}
		if err := tx.Where("project_id = ?", projectID).Delete(&evaluationRefModel{}).Error; err != nil {
			return err
		}
		return tx.Where("project_id = ?", projectID).Delete(&coauthorModel{}).Error
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrProjectNotFound) || errors.Is(err, domainerrors.ErrProjectLocked) {
			return err
		}
		return r.logError("project_repo_delete_if_pending_failed", err, "project_id", projectID)
	}
	return nil
}

// pendingMissError disambiguates a zero-row conditional write: the project is
// either gone or no longer pending.
func (r *Repository) pendingMissError(tx *gorm.DB, projectID string) error {
	var row projectModel
	if err := tx.Where("id = ?", projectID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainerrors.ErrProjectNotFound
		}
		return err
	}
	return domainerrors.ErrProjectLocked
}

func (r *Repository) GetProject(ctx context.Context, projectID string) (entities.Project, error) {
	var row projectModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(projectID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Project{}, domainerrors.ErrProjectNotFound
		}
		return entities.Project{}, r.logError("project_repo_get_failed", err, "project_id", strings.TrimSpace(projectID))
	}

	var coauthorRows []coauthorModel
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", row.ID).
		Order("position ASC").
		Find(&coauthorRows).Error; err != nil {
		return entities.Project{}, r.logError("project_repo_get_coauthors_failed", err, "project_id", row.ID)
	}
	return row.toEntity(coauthorRows), nil
}

func (r *Repository) ListProjects(ctx context.Context, awardID string) ([]entities.Project, error) {
	query := r.db.WithContext(ctx).Order("submitted_at ASC, id ASC")
	if strings.TrimSpace(awardID) != "" {
		query = query.Where("award_id = ?", strings.TrimSpace(awardID))
	}
	var rows []projectModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, r.logError("project_repo_list_failed", err)
	}
	return r.attachCoauthors(ctx, rows)
}

func (r *Repository) ListProjectsByAuthor(ctx context.Context, authorID string) ([]entities.Project, error) {
	var rows []projectModel
	if err := r.db.WithContext(ctx).
		Where("author_id = ?", strings.TrimSpace(authorID)).
		Order("submitted_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("project_repo_list_by_author_failed", err)
	}
	return r.attachCoauthors(ctx, rows)
}

func (r *Repository) GetAwardRef(ctx context.Context, awardID string) (ports.AwardRef, bool, error) {
	var row awardRefModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(awardID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.AwardRef{}, false, nil
		}
		return ports.AwardRef{}, false, r.logError("project_repo_get_award_ref_failed", err, "award_id", strings.TrimSpace(awardID))
	}
	return ports.AwardRef{AwardID: row.ID, Year: row.Year}, true, nil
}

func (r *Repository) GetAccountRef(ctx context.Context, accountID string) (ports.AccountRef, bool, error) {
	var row accountRefModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(accountID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.AccountRef{}, false, nil
		}
		return ports.AccountRef{}, false, r.logError("project_repo_get_account_ref_failed", err, "account_id", strings.TrimSpace(accountID))
	}
	return ports.AccountRef{AccountID: row.ID, Role: row.Role}, true, nil
}

func (r *Repository) attachCoauthors(ctx context.Context, rows []projectModel) ([]entities.Project, error) {
	if len(rows) == 0 {
		return []entities.Project{}, nil
	}
	projectIDs := make([]string, 0, len(rows))
	for _, row := range rows {
		projectIDs = append(projectIDs, row.ID)
	}
	var coauthorRows []coauthorModel
	if err := r.db.WithContext(ctx).
		Where("project_id IN ?", projectIDs).
		Order("position ASC").
		Find(&coauthorRows).Error; err != nil {
		return nil, r.logError("project_repo_list_coauthors_failed", err)
	}
	byProject := make(map[string][]coauthorModel, len(rows))
	for _, coauthor := range coauthorRows {
		byProject[coauthor.ProjectID] = append(byProject[coauthor.ProjectID], coauthor)
	}
	items := make([]entities.Project, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity(byProject[row.ID]))
	}
	return items, nil
}

func (r *Repository) logError(event string, err error, attrs ...any) error {
	fields := make([]any, 0, len(attrs)+8)
	fields = append(fields,
		"event", event,
		"module", "award-program/project-lifecycle",
		"layer", "adapter",
		"error", err.Error(),
	)
	fields = append(fields, attrs...)
	r.logger.Error("project repository operation failed", fields...)
	return err
}

type projectModel struct {
	ID           string    `gorm:"column:id;primaryKey"`
	AwardID      string    `gorm:"column:award_id"`
	AuthorID     string    `gorm:"column:author_id"`
	Title        string    `gorm:"column:title"`
	Summary      string    `gorm:"column:summary"`
	TopicArea    string    `gorm:"column:topic_area"`
	ArtifactPath string    `gorm:"column:artifact_path"`
	Status       string    `gorm:"column:status"`
	SubmittedAt  time.Time `gorm:"column:submitted_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (projectModel) TableName() string {
	return "projects"
}

func projectModelFromEntity(project entities.Project) projectModel {
	return projectModel{
		ID:           strings.TrimSpace(project.ProjectID),
		AwardID:      strings.TrimSpace(project.AwardID),
		AuthorID:     strings.TrimSpace(project.AuthorID),
		Title:        strings.TrimSpace(project.Title),
		Summary:      strings.TrimSpace(project.Summary),
		TopicArea:    strings.TrimSpace(project.TopicArea),
		ArtifactPath: strings.TrimSpace(project.ArtifactPath),
		Status:       string(project.Status),
		SubmittedAt:  project.SubmittedAt.UTC(),
		UpdatedAt:    project.UpdatedAt.UTC(),
	}
}

func (m projectModel) toEntity(coauthorRows []coauthorModel) entities.Project {
	coauthors := make([]string, 0, len(coauthorRows))
	for _, coauthor := range coauthorRows {
		coauthors = append(coauthors, coauthor.CoauthorID)
	}
	return entities.Project{
		ProjectID:    m.ID,
		AwardID:      m.AwardID,
		AuthorID:     m.AuthorID,
		Title:        m.Title,
		Summary:      m.Summary,
		TopicArea:    m.TopicArea,
		CoauthorIDs:  coauthors,
		ArtifactPath: m.ArtifactPath,
		Status:       entities.ProjectStatus(m.Status),
		SubmittedAt:  m.SubmittedAt.UTC(),
		UpdatedAt:    m.UpdatedAt.UTC(),
	}
}

type coauthorModel struct {
	ProjectID  string `gorm:"column:project_id;primaryKey"`
	CoauthorID string `gorm:"column:coauthor_id;primaryKey"`
	Position   int    `gorm:"column:position"`
}

func (coauthorModel) TableName() string {
	return "project_coauthors"
}

func coauthorModelsFromEntity(project entities.Project) []coauthorModel {
	rows := make([]coauthorModel, 0, len(project.CoauthorIDs))
	for i, coauthorID := range project.CoauthorIDs {
		rows = append(rows, coauthorModel{
			ProjectID:  strings.TrimSpace(project.ProjectID),
			CoauthorID: strings.TrimSpace(coauthorID),
			Position:   i,
		})
	}
	return rows
}

// awardRefModel, accountRefModel, and evaluationRefModel are read/delete
// projections over tables owned by the catalog, account, and ledger modules.
type awardRefModel struct {
	ID   string `gorm:"column:id;primaryKey"`
	Year int    `gorm:"column:year"`
}

func (awardRefModel) TableName() string {
	return "awards"
}

type accountRefModel struct {
	ID   string `gorm:"column:id;primaryKey"`
	Role string `gorm:"column:role"`
}

func (accountRefModel) TableName() string {
	return "accounts"
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

var (
	_ ports.ProjectRepository = (*Repository)(nil)
	_ ports.AwardDirectory    = (*Repository)(nil)
	_ ports.AccountDirectory  = (*Repository)(nil)
)

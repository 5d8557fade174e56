package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"laureate/contexts/award-program/ranking-engine/ports"

	"gorm.io/gorm"
)

// Repository is a read-only ranking source over the tables owned by the
// catalog, lifecycle, and ledger modules.
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

func (r *Repository) ListAwards(ctx context.Context) ([]ports.AwardScan, error) {
	var rows []awardScanModel
	if err := r.db.WithContext(ctx).
		Order("year ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("ranking_repo_list_awards_failed", err)
	}
	awards := make([]ports.AwardScan, 0, len(rows))
	for _, row := range rows {
		awards = append(awards, row.toScan())
	}
	return awards, nil
}

func (r *Repository) GetAward(ctx context.Context, awardID string) (ports.AwardScan, bool, error) {
	var row awardScanModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(awardID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.AwardScan{}, false, nil
		}
		return ports.AwardScan{}, false, r.logError("ranking_repo_get_award_failed", err, "award_id", strings.TrimSpace(awardID))
	}
	return row.toScan(), true, nil
}

func (r *Repository) ListEvaluatedProjects(ctx context.Context) ([]ports.ProjectScan, error) {
	var rows []projectScanModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", "evaluated").
		Order("submitted_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("ranking_repo_list_projects_failed", err)
	}
	projects := make([]ports.ProjectScan, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, ports.ProjectScan{
			ProjectID:   row.ID,
			AwardID:     row.AwardID,
			AuthorID:    row.AuthorID,
			Title:       row.Title,
			Status:      row.Status,
			SubmittedAt: row.SubmittedAt.UTC(),
		})
	}
	return projects, nil
}

func (r *Repository) ListScores(ctx context.Context) ([]ports.ScoreScan, error) {
	var rows []scoreScanModel
	if err := r.db.WithContext(ctx).
		Find(&rows).Error; err != nil {
		return nil, r.logError("ranking_repo_list_scores_failed", err)
	}
	scores := make([]ports.ScoreScan, 0, len(rows))
	for _, row := range rows {
		scores = append(scores, ports.ScoreScan{
			ProjectID: row.ProjectID,
			Score:     row.Score,
		})
	}
	return scores, nil
}

func (r *Repository) logError(event string, err error, attrs ...any) error {
	fields := make([]any, 0, len(attrs)+8)
	fields = append(fields,
		"event", event,
		"module", "award-program/ranking-engine",
		"layer", "adapter",
		"error", err.Error(),
	)
	fields = append(fields, attrs...)
	r.logger.Error("ranking repository operation failed", fields...)
	return err
}

type awardScanModel struct {
	ID   string `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name"`
	Year int    `gorm:"column:year"`
}

func (awardScanModel) TableName() string {
	return "awards"
}

func (m awardScanModel) toScan() ports.AwardScan {
	return ports.AwardScan{AwardID: m.ID, Name: m.Name, Year: m.Year}
}

type projectScanModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	AwardID     string    `gorm:"column:award_id"`
	AuthorID    string    `gorm:"column:author_id"`
	Title       string    `gorm:"column:title"`
	Status      string    `gorm:"column:status"`
	SubmittedAt time.Time `gorm:"column:submitted_at"`
}

func (projectScanModel) TableName() string {
	return "projects"
}

type scoreScanModel struct {
	ID        string  `gorm:"column:id;primaryKey"`
	ProjectID string  `gorm:"column:project_id"`
	Score     float64 `gorm:"column:score"`
}

func (scoreScanModel) TableName() string {
	return "evaluations"
}

var _ ports.RankingSource = (*Repository)(nil)

package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/maheshrc27/creatorflow/internal/models"
)

type ContentRepository interface {
	ReplaceForUser(ctx context.Context, userID int64, items []*models.ContentItem) ([]*models.ContentItem, error)
	ListByUserID(ctx context.Context, userID int64, limit int) ([]*models.ContentItem, error)
	GetByIDForUser(ctx context.Context, id, userID int64) (*models.ContentItem, bool, error)
	Update(ctx context.Context, item *models.ContentItem) error
}

type contentRepository struct {
	db *sql.DB
}

func NewContentRepository(db *sql.DB) ContentRepository {
	return &contentRepository{db: db}
}

const contentColumns = `id, user_id, day, platform, content_idea, hook, caption, hashtags, script, cta,
	seo_title, seo_description, seo_tags, created_at, updated_at`

func scanContent(row interface{ Scan(...any) error }) (*models.ContentItem, error) {
	var c models.ContentItem
	err := row.Scan(&c.ID, &c.UserID, &c.Day, &c.Platform, &c.ContentIdea, &c.Hook, &c.Caption,
		&c.Hashtags, &c.Script, &c.CTA, &c.SEOTitle, &c.SEODescription, &c.SEOTags, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ReplaceForUser deletes the user's current plan and inserts items in one
// transaction, so a user never has two plans.
func (r *contentRepository) ReplaceForUser(ctx context.Context, userID int64, items []*models.ContentItem) ([]*models.ContentItem, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM content_items WHERE user_id = $1`, userID); err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	insertQuery := `
		INSERT INTO content_items (user_id, day, platform, content_idea, hook, caption, hashtags, script,
			cta, seo_title, seo_description, seo_tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + contentColumns

	saved := make([]*models.ContentItem, 0, len(items))
	for _, c := range items {
		row := tx.QueryRowContext(ctx, insertQuery, userID, c.Day, c.Platform, c.ContentIdea, c.Hook,
			c.Caption, c.Hashtags, c.Script, c.CTA, c.SEOTitle, c.SEODescription, c.SEOTags)
		item, err := scanContent(row)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		saved = append(saved, item)
	}

	if err := tx.Commit(); err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return saved, nil
}

// ListByUserID returns the plan ordered by day. A limit of zero means no limit.
func (r *contentRepository) ListByUserID(ctx context.Context, userID int64, limit int) ([]*models.ContentItem, error) {
	query := `SELECT ` + contentColumns + ` FROM content_items WHERE user_id = $1 ORDER BY day ASC, id ASC`
	args := []any{userID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	items := []*models.ContentItem{}
	for rows.Next() {
		item, err := scanContent(rows)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return items, nil
}

func (r *contentRepository) GetByIDForUser(ctx context.Context, id, userID int64) (*models.ContentItem, bool, error) {
	query := `SELECT ` + contentColumns + ` FROM content_items WHERE id = $1 AND user_id = $2`
	item, err := scanContent(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}
	return item, true, nil
}

// Update writes every text field of item. Day and platform are never changed.
func (r *contentRepository) Update(ctx context.Context, item *models.ContentItem) error {
	query := `
		UPDATE content_items
		SET content_idea = $1,
			hook = $2,
			caption = $3,
			hashtags = $4,
			script = $5,
			cta = $6,
			seo_title = $7,
			seo_description = $8,
			seo_tags = $9,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $10 AND user_id = $11
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(ctx, query, item.ContentIdea, item.Hook, item.Caption, item.Hashtags,
		item.Script, item.CTA, item.SEOTitle, item.SEODescription, item.SEOTags, item.ID, item.UserID,
	).Scan(&item.UpdatedAt)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

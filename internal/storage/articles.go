package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"blogsmith/internal/models"
)

// CreateArticle inserts a new article and returns its assigned ID.
func (s *Store) CreateArticle(ctx context.Context, title string, tone models.Tone, content, modelUsed string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO articles (title, tone, content, model_used)
		 VALUES (?, ?, ?, ?)`,
		title, string(tone), content, nullableString(modelUsed),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting article: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting inserted article id: %w", err)
	}
	return id, nil
}

// GetArticleByID returns the article with the given ID.
// Returns nil, ErrNotFound if no matching row exists.
func (s *Store) GetArticleByID(ctx context.Context, id int64) (*models.Article, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, tone, content, model_used, created_at, updated_at
		 FROM articles
		 WHERE id = ?`, id)

	article, err := scanArticle(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting article by id: %w", err)
	}
	return article, nil
}

// ListArticles returns all articles ordered by most recently updated first.
func (s *Store) ListArticles(ctx context.Context) ([]models.Article, error) {
	return s.listArticles(ctx, 0)
}

// ListRecentArticles returns up to limit articles ordered by most recently
// updated first.
func (s *Store) ListRecentArticles(ctx context.Context, limit int) ([]models.Article, error) {
	return s.listArticles(ctx, limit)
}

func (s *Store) listArticles(ctx context.Context, limit int) ([]models.Article, error) {
	query := `SELECT id, title, tone, content, model_used, created_at, updated_at
		 FROM articles
		 ORDER BY updated_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing articles: %w", err)
	}
	defer rows.Close()

	var articles []models.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning article row: %w", err)
		}
		articles = append(articles, *article)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating article rows: %w", err)
	}
	return articles, nil
}

// UpdateArticleContent overwrites an article's content and model_used, and
// refreshes updated_at. Title and tone are never touched.
// Returns ErrNotFound if no row with the given ID exists.
func (s *Store) UpdateArticleContent(ctx context.Context, id int64, content, modelUsed string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE articles
		 SET content = ?, model_used = ?, updated_at = datetime('now')
		 WHERE id = ?`,
		content, nullableString(modelUsed), id,
	)
	if err != nil {
		return fmt.Errorf("updating article content: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountArticles returns the total number of stored articles.
func (s *Store) CountArticles(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM articles`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting articles: %w", err)
	}
	return n, nil
}

// scanner is a minimal interface satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanArticle scans a single article row into a models.Article.
func scanArticle(row scanner) (*models.Article, error) {
	var (
		article   models.Article
		tone      string
		modelUsed sql.NullString
		createdAt string
		updatedAt string
	)

	if err := row.Scan(
		&article.ID, &article.Title, &tone, &article.Content,
		&modelUsed, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	article.Tone = models.Tone(tone)
	article.ModelUsed = modelUsed.String
	article.CreatedAt = parseTime(createdAt)
	article.UpdatedAt = parseTime(updatedAt)

	return &article, nil
}

// nullableString converts an empty string to nil for nullable TEXT columns.
func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"Inkwell/internal/core/posts"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// postColumns is the select list shared by every post query; owner email
// comes from the users join so views never need a second lookup.
const postColumns = `
	p.id, p.title, p.content, p.owner_id, u.email AS owner_email,
	p.created_at, p.updated_at`

// Create inserts a new post and fills in its generated id.
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) error {
	query := `
		INSERT INTO posts (title, content, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRowContext(
		ctx, query,
		post.Title, post.Content, post.OwnerID, post.CreatedAt, post.UpdatedAt,
	).Scan(&post.ID)
	if err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}

	return nil
}

// GetByID retrieves a post by primary key, joining the owner's email.
func (r *postgresPostRepo) GetByID(ctx context.Context, id int64) (*posts.Post, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM posts p
		INNER JOIN users u ON p.owner_id = u.id
		WHERE p.id = $1
	`, postColumns)

	post := &posts.Post{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID, &post.Title, &post.Content, &post.OwnerID, &post.OwnerEmail,
		&post.CreatedAt, &post.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}

// ListByOwner returns all posts owned by the user, newest first.
func (r *postgresPostRepo) ListByOwner(ctx context.Context, ownerID int64) ([]*posts.Post, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM posts p
		INNER JOIN users u ON p.owner_id = u.id
		WHERE p.owner_id = $1
		ORDER BY p.created_at DESC
	`, postColumns)

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts by owner: %w", err)
	}

	return r.collectPosts(rows)
}

// ListPaginated returns a window over all posts ordered by createdAt
// descending, optionally filtered by a title/content substring match.
func (r *postgresPostRepo) ListPaginated(ctx context.Context, offset, limit int, search string) ([]*posts.Post, error) {
	where, args := searchFilter(search)
	args = append(args, limit, offset)

	query := fmt.Sprintf(`
		SELECT %s
		FROM posts p
		INNER JOIN users u ON p.owner_id = u.id
		%s
		ORDER BY p.created_at DESC
		LIMIT $%d OFFSET $%d
	`, postColumns, where, len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query paginated posts: %w", err)
	}

	return r.collectPosts(rows)
}

// CountAll counts posts matching the same filter predicate as ListPaginated.
func (r *postgresPostRepo) CountAll(ctx context.Context, search string) (int, error) {
	where, args := searchFilter(search)

	query := fmt.Sprintf(`SELECT COUNT(p.id) FROM posts p %s`, where)

	var total int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}

	return total, nil
}

// Update persists title, content and updated_at for an existing post.
// Ownership and created_at are immutable and never written here.
func (r *postgresPostRepo) Update(ctx context.Context, post *posts.Post) error {
	query := `
		UPDATE posts
		SET title = $2, content = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, post.ID, post.Title, post.Content, post.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return posts.ErrNotFound
	}

	return nil
}

// Delete removes the post row.
func (r *postgresPostRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return posts.ErrNotFound
	}

	return nil
}

// searchFilter builds the WHERE clause shared by ListPaginated and CountAll.
// Case sensitivity of the substring match follows the store's collation.
func searchFilter(search string) (string, []interface{}) {
	if search == "" {
		return "", nil
	}
	return "WHERE (p.title LIKE $1 OR p.content LIKE $1)", []interface{}{"%" + search + "%"}
}

func (r *postgresPostRepo) collectPosts(rows *sql.Rows) ([]*posts.Post, error) {
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Warn("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var result []*posts.Post
	for rows.Next() {
		post := &posts.Post{}
		err := rows.Scan(
			&post.ID, &post.Title, &post.Content, &post.OwnerID, &post.OwnerEmail,
			&post.CreatedAt, &post.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		result = append(result, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating post rows: %w", err)
	}

	return result, nil
}

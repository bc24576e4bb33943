package repository

import (
	"context"
	"database/sql"
)

// ImageRepo provides access to the turf_images gallery rows.
type ImageRepo struct {
	db *sql.DB
}

func NewImageRepo(db *sql.DB) *ImageRepo { return &ImageRepo{db: db} }

// Add registers image URLs for a turf while enforcing ownership.
// Returns sql.ErrNoRows when the turf is not owned by this admin.
func (r *ImageRepo) Add(ctx context.Context, turfID, adminID uint64, urls []string) error {
	if len(urls) == 0 {
		return nil
	}
	var owned int
	if err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM turfs WHERE id=? AND admin_id=?", turfID, adminID).Scan(&owned); err != nil {
		return err
	}
	if owned == 0 {
		return sql.ErrNoRows
	}
	q := `INSERT INTO turf_images (turf_id, url) VALUES `
	args := make([]any, 0, len(urls)*2)
	for i, u := range urls {
		if i > 0 {
			q += ","
		}
		q += "(?, ?)"
		args = append(args, turfID, u)
	}
	_, err := r.db.ExecContext(ctx, q, args...)
	return err
}

// Delete removes one image by URL while enforcing ownership via the
// join.  Returns sql.ErrNoRows when no matching image exists.
func (r *ImageRepo) Delete(ctx context.Context, turfID, adminID uint64, url string) error {
	const q = `DELETE i FROM turf_images i
	           JOIN turfs t ON t.id = i.turf_id
	           WHERE i.turf_id = ? AND i.url = ? AND t.admin_id = ?`
	res, err := r.db.ExecContext(ctx, q, turfID, url, adminID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ListByTurf returns the turf's image URLs in registration order.
func (r *ImageRepo) ListByTurf(ctx context.Context, turfID uint64) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT url FROM turf_images WHERE turf_id=? ORDER BY id", turfID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var urls []string
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, err
		}
		urls = append(urls, u)
	}
	return urls, rows.Err()
}

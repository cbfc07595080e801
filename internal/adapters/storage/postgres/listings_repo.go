package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"pawtrack/internal/domain/listings"
)

type ListingsRepo struct {
	db *sql.DB
}

func NewListingsRepo(db *sql.DB) *ListingsRepo {
	return &ListingsRepo{db: db}
}

func (r *ListingsRepo) Create(ctx context.Context, p listings.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (
			id, title, species, description,
			photo_url, location_url, location_text,
			status, created_at, adopted_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		p.ID,
		p.Title,
		string(p.Species),
		toNullString(p.Description),
		toNullString(p.PhotoURL),
		p.LocationURL,
		toNullString(p.LocationText),
		string(p.Status),
		p.CreatedAt,
		toNullTime(p.AdoptedAt),
	)
	return err
}

func (r *ListingsRepo) GetByID(ctx context.Context, id string) (listings.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return listings.Pet{}, listings.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, title, species, description,
			photo_url, location_url, location_text,
			status, created_at, adopted_at
		FROM pets
		WHERE id = $1
	`, id)

	p, err := scanPet(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return listings.Pet{}, listings.ErrNotFound
		}
		return listings.Pet{}, err
	}
	return p, nil
}

func (r *ListingsRepo) ListByStatus(ctx context.Context, status listings.Status) ([]listings.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, title, species, description,
			photo_url, location_url, location_text,
			status, created_at, adopted_at
		FROM pets
		WHERE status = $1
		ORDER BY created_at DESC
	`, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]listings.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

func (r *ListingsRepo) MarkAdopted(ctx context.Context, id string, adoptedAt time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET status = $2, adopted_at = $3
		WHERE id = $1
	`, id, string(listings.StatusAdopted), adoptedAt)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return listings.ErrNotFound
	}
	return nil
}

func (r *ListingsRepo) CountByStatus(ctx context.Context, status listings.Status) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM pets WHERE status = $1
	`, string(status)).Scan(&n)
	return n, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPet(row rowScanner) (listings.Pet, error) {
	var p listings.Pet
	var description, photoURL, locationText sql.NullString
	var adoptedAt sql.NullTime

	if err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Species,
		&description,
		&photoURL,
		&p.LocationURL,
		&locationText,
		&p.Status,
		&p.CreatedAt,
		&adoptedAt,
	); err != nil {
		return listings.Pet{}, err
	}

	p.Description = description.String
	p.PhotoURL = photoURL.String
	p.LocationText = locationText.String
	if adoptedAt.Valid {
		t := adoptedAt.Time
		p.AdoptedAt = &t
	}

	return p, nil
}

func toNullString(s string) sql.NullString {
	if strings.TrimSpace(s) == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}

func toNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

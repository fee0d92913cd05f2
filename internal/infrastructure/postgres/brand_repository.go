package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/pos-tracker/internal/domain"
	"github.com/jhoicas/pos-tracker/internal/domain/entity"
	"github.com/jhoicas/pos-tracker/internal/domain/repository"
)

var _ repository.BrandRepository = (*BrandRepo)(nil)

const brandColumns = `id, name, description, country_of_origin, website, contact_email, created_at, updated_at`

// BrandRepo implementación del puerto BrandRepository sobre PostgreSQL.
type BrandRepo struct {
	q Querier
}

// NewBrandRepository construye el adaptador de persistencia para marcas. Pasar pool o tx (Querier).
func NewBrandRepository(q Querier) *BrandRepo {
	return &BrandRepo{q: q}
}

// Create persiste una nueva marca. Nombre repetido -> ErrDuplicate.
func (r *BrandRepo) Create(ctx context.Context, b *entity.Brand) error {
	query := `
		INSERT INTO brands (` + brandColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		b.ID, b.Name, b.Description, b.CountryOfOrigin, b.Website, b.ContactEmail, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert brand: %w", err)
	}
	return nil
}

// GetByID obtiene una marca por ID. (nil, nil) si no existe.
func (r *BrandRepo) GetByID(ctx context.Context, id string) (*entity.Brand, error) {
	b, err := scanBrand(r.q.QueryRow(ctx, `SELECT `+brandColumns+` FROM brands WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get brand: %w", err)
	}
	return b, nil
}

// GetByName busca por nombre sin distinguir mayúsculas.
func (r *BrandRepo) GetByName(ctx context.Context, name string) (*entity.Brand, error) {
	b, err := scanBrand(r.q.QueryRow(ctx, `SELECT `+brandColumns+` FROM brands WHERE lower(name) = lower($1)`, name))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get brand by name: %w", err)
	}
	return b, nil
}

// Update actualiza los datos descriptivos de la marca.
func (r *BrandRepo) Update(ctx context.Context, b *entity.Brand) error {
	query := `
		UPDATE brands SET name = $2, description = $3, country_of_origin = $4, website = $5,
			contact_email = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		b.ID, b.Name, b.Description, b.CountryOfOrigin, b.Website, b.ContactEmail, b.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update brand: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve marcas ordenadas por nombre, opcionalmente filtradas por texto.
func (r *BrandRepo) List(ctx context.Context, search string, limit, offset int) ([]*entity.Brand, error) {
	var w whereBuilder
	if search != "" {
		w.add("(name ILIKE $%[1]d OR country_of_origin ILIKE $%[1]d)", "%"+search+"%")
	}
	query := `SELECT ` + brandColumns + ` FROM brands` + w.sql() + ` ORDER BY name`
	query += w.page(limit, offset)

	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	defer rows.Close()

	var list []*entity.Brand
	for rows.Next() {
		b, err := scanBrand(rows)
		if err != nil {
			return nil, fmt.Errorf("scan brand: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

func scanBrand(row pgxScanner) (*entity.Brand, error) {
	var b entity.Brand
	err := row.Scan(&b.ID, &b.Name, &b.Description, &b.CountryOfOrigin, &b.Website, &b.ContactEmail, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

package repository

import (
	"context"

	"github.com/jhoicas/pos-tracker/internal/domain/entity"
)

// BrandRepository define el puerto de persistencia para Brand (DIP).
// Las marcas nunca se eliminan.
type BrandRepository interface {
	Create(ctx context.Context, brand *entity.Brand) error
	GetByID(ctx context.Context, id string) (*entity.Brand, error)
	GetByName(ctx context.Context, name string) (*entity.Brand, error)
	Update(ctx context.Context, brand *entity.Brand) error
	List(ctx context.Context, search string, limit, offset int) ([]*entity.Brand, error)
}

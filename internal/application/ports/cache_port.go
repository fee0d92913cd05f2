package ports

import (
	"context"

	"github.com/jhoicas/pos-tracker/internal/domain/entity"
)

// CatalogCache caché de lectura del catálogo (marcas y artículos).
// Las implementaciones no devuelven errores: un fallo de caché se trata como miss.
type CatalogCache interface {
	GetItem(ctx context.Context, id string) (*entity.InventoryItem, bool)
	// SetItem no reemplaza una entrada con Version mayor que la de item.
	SetItem(ctx context.Context, item *entity.InventoryItem)
	InvalidateItem(ctx context.Context, id string)
	GetBrand(ctx context.Context, id string) (*entity.Brand, bool)
	SetBrand(ctx context.Context, brand *entity.Brand)
	InvalidateBrand(ctx context.Context, id string)
}

// NoopCache se usa cuando no hay Redis configurado.
type NoopCache struct{}

func (NoopCache) GetItem(context.Context, string) (*entity.InventoryItem, bool) { return nil, false }
func (NoopCache) SetItem(context.Context, *entity.InventoryItem)                {}
func (NoopCache) InvalidateItem(context.Context, string)                        {}
func (NoopCache) GetBrand(context.Context, string) (*entity.Brand, bool)        { return nil, false }
func (NoopCache) SetBrand(context.Context, *entity.Brand)                       {}
func (NoopCache) InvalidateBrand(context.Context, string)                       {}

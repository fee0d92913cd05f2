package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-tracker/internal/application/dto"
	"github.com/jhoicas/pos-tracker/internal/application/inventory"
	"github.com/jhoicas/pos-tracker/internal/application/ports"
	"github.com/jhoicas/pos-tracker/internal/domain"
	"github.com/jhoicas/pos-tracker/internal/domain/entity"
	"github.com/jhoicas/pos-tracker/internal/domain/repository"
)

// ItemUseCase casos de uso CRUD para artículos. Quantity se maneja solo vía ajustes;
// los artículos se desactivan en lugar de eliminarse.
type ItemUseCase struct {
	repo        repository.InventoryItemRepository
	brandRepo   repository.BrandRepository
	adjustments *inventory.AdjustmentUseCase
	cache       ports.CatalogCache
}

// NewItemUseCase construye el caso de uso. cache puede ser nil.
func NewItemUseCase(
	repo repository.InventoryItemRepository,
	brandRepo repository.BrandRepository,
	adjustments *inventory.AdjustmentUseCase,
	cache ports.CatalogCache,
) *ItemUseCase {
	if cache == nil {
		cache = ports.NoopCache{}
	}
	return &ItemUseCase{repo: repo, brandRepo: brandRepo, adjustments: adjustments, cache: cache}
}

// Create crea un artículo. Si InitialQuantity > 0 se registra como entrada inicial en el libro,
// en la misma transacción que el alta.
func (uc *ItemUseCase) Create(ctx context.Context, actor string, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.SKU = strings.TrimSpace(in.SKU)
	if in.Name == "" || in.SKU == "" || in.BrandID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.InitialQuantity < 0 || in.ReorderLevel < 0 || !validMoney(in.Price) || !validMoney(in.CostPrice) {
		return nil, domain.ErrInvalidInput
	}
	brand, err := uc.brandRepo.GetByID(ctx, in.BrandID)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.repo.GetBySKU(ctx, in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	now := time.Now()
	item := &entity.InventoryItem{
		ID:           uuid.New().String(),
		BrandID:      brand.ID,
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		CostPrice:    in.CostPrice,
		SKU:          in.SKU,
		Barcode:      strings.TrimSpace(in.Barcode),
		ReorderLevel: in.ReorderLevel,
		Location:     in.Location,
		IsActive:     active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	res, err := uc.adjustments.OpenItem(ctx, item, in.InitialQuantity, actor)
	if err != nil {
		return nil, err
	}
	return dto.ToItemResponse(res.Item), nil
}

// GetByID obtiene un artículo (lectura cacheada).
func (uc *ItemUseCase) GetByID(ctx context.Context, id string) (*dto.ItemResponse, error) {
	if item, ok := uc.cache.GetItem(ctx, id); ok {
		return dto.ToItemResponse(item), nil
	}
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	uc.cache.SetItem(ctx, item)
	return dto.ToItemResponse(item), nil
}

// Update actualiza campos descriptivos. No permite modificar Quantity (se maneja vía ajustes).
func (uc *ItemUseCase) Update(ctx context.Context, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.BrandID != nil && *in.BrandID != item.BrandID {
		brand, err := uc.brandRepo.GetByID(ctx, *in.BrandID)
		if err != nil {
			return nil, err
		}
		if brand == nil {
			return nil, domain.ErrNotFound
		}
		item.BrandID = brand.ID
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		item.Name = name
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Price != nil {
		if !validMoney(*in.Price) {
			return nil, domain.ErrInvalidInput
		}
		item.Price = *in.Price
	}
	if in.CostPrice != nil {
		if !validMoney(*in.CostPrice) {
			return nil, domain.ErrInvalidInput
		}
		item.CostPrice = *in.CostPrice
	}
	if in.Barcode != nil {
		item.Barcode = strings.TrimSpace(*in.Barcode)
	}
	if in.ReorderLevel != nil {
		if *in.ReorderLevel < 0 {
			return nil, domain.ErrInvalidInput
		}
		item.ReorderLevel = *in.ReorderLevel
	}
	if in.Location != nil {
		item.Location = *in.Location
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	uc.cache.InvalidateItem(ctx, item.ID)
	return dto.ToItemResponse(item), nil
}

// SetActive activa o desactiva (soft) un artículo.
func (uc *ItemUseCase) SetActive(ctx context.Context, id string, active bool) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if item.IsActive != active {
		if err := uc.repo.SetActive(ctx, id, active); err != nil {
			return nil, err
		}
		item.IsActive = active
		item.UpdatedAt = time.Now()
		uc.cache.InvalidateItem(ctx, id)
	}
	return dto.ToItemResponse(item), nil
}

// List lista artículos con filtros y paginación.
func (uc *ItemUseCase) List(ctx context.Context, filter repository.ItemFilter, limit, offset int) (*dto.ItemListResponse, error) {
	list, err := uc.repo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *dto.ToItemResponse(it))
	}
	return &dto.ItemListResponse{
		Items: items,
		Page:  dto.NewPageResponse(limit, offset, len(items)),
	}, nil
}

func validMoney(d decimal.Decimal) bool {
	return !d.IsNegative()
}

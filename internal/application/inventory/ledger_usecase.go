package inventory

import (
	"context"

	"github.com/jhoicas/pos-tracker/internal/application/dto"
	"github.com/jhoicas/pos-tracker/internal/domain"
	"github.com/jhoicas/pos-tracker/internal/domain/repository"
)

// LedgerUseCase consultas de solo lectura sobre el libro de ajustes.
type LedgerUseCase struct {
	adjRepo  repository.InventoryAdjustmentRepository
	itemRepo repository.InventoryItemRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(adjRepo repository.InventoryAdjustmentRepository, itemRepo repository.InventoryItemRepository) *LedgerUseCase {
	return &LedgerUseCase{adjRepo: adjRepo, itemRepo: itemRepo}
}

// ListByItem devuelve el historial de un artículo, del más reciente al más antiguo.
func (uc *LedgerUseCase) ListByItem(ctx context.Context, itemID string, limit, offset int) (*dto.AdjustmentListResponse, error) {
	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return uc.List(ctx, repository.AdjustmentFilter{ItemID: itemID}, limit, offset)
}

// List lista el libro completo con filtros opcionales.
func (uc *LedgerUseCase) List(ctx context.Context, filter repository.AdjustmentFilter, limit, offset int) (*dto.AdjustmentListResponse, error) {
	list, err := uc.adjRepo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AdjustmentResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *dto.ToAdjustmentResponse(a))
	}
	return &dto.AdjustmentListResponse{
		Items: items,
		Page:  dto.NewPageResponse(limit, offset, len(items)),
	}, nil
}

// GetByID obtiene un registro del libro.
func (uc *LedgerUseCase) GetByID(ctx context.Context, id string) (*dto.AdjustmentResponse, error) {
	a, err := uc.adjRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToAdjustmentResponse(a), nil
}

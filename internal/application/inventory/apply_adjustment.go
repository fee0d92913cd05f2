package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/pos-tracker/internal/application/ports"
	"github.com/jhoicas/pos-tracker/internal/domain"
	"github.com/jhoicas/pos-tracker/internal/domain/entity"
	dominventory "github.com/jhoicas/pos-tracker/internal/domain/inventory"
	"github.com/jhoicas/pos-tracker/internal/domain/repository"
)

// Valores por defecto del motor de ajustes.
const (
	DefaultLockTimeout = 5 * time.Second
	DefaultMaxRetries  = 3
	DefaultBackoff     = 50 * time.Millisecond

	InitialStockNote      = "Initial stock"
	InitialStockRefPrefix = "INIT-"
)

// Options parámetros de concurrencia del motor de ajustes.
type Options struct {
	LockTimeout time.Duration // tiempo máximo por unidad de trabajo (espera de bloqueo incluida)
	MaxRetries  int           // reintentos ante ErrConflict antes de devolverlo
	Backoff     time.Duration // espera base entre reintentos (lineal)
}

func (o Options) withDefaults() Options {
	if o.LockTimeout <= 0 {
		o.LockTimeout = DefaultLockTimeout
	}
	if o.MaxRetries < 0 {
		o.MaxRetries = 0
	}
	if o.Backoff <= 0 {
		o.Backoff = DefaultBackoff
	}
	return o
}

// AdjustmentInput entrada para aplicar un ajuste de stock.
type AdjustmentInput struct {
	ItemID    string
	Type      string
	Magnitude int
	Notes     string
	Actor     string // id del usuario autenticado (opaco)
	Reference string
}

// AdjustmentResult estado del artículo tras el ajuste y el registro del libro.
type AdjustmentResult struct {
	Item       *entity.InventoryItem
	Adjustment *entity.InventoryAdjustment
}

// AdjustmentUseCase es el único punto que modifica InventoryItem.Quantity.
// Cada ajuste se aplica en una transacción: bloquea la fila del artículo (SELECT FOR UPDATE),
// calcula la nueva cantidad, la escribe con control de versión e inserta el registro del libro.
type AdjustmentUseCase struct {
	txRunner TxRunner
	cache    ports.CatalogCache
	opts     Options
	now      func() time.Time
}

// NewAdjustmentUseCase construye el caso de uso. cache puede ser nil.
func NewAdjustmentUseCase(txRunner TxRunner, cache ports.CatalogCache, opts Options) *AdjustmentUseCase {
	if cache == nil {
		cache = ports.NoopCache{}
	}
	return &AdjustmentUseCase{
		txRunner: txRunner,
		cache:    cache,
		opts:     opts.withDefaults(),
		now:      time.Now,
	}
}

// ApplyAdjustment valida la entrada y aplica el ajuste. Los conflictos de concurrencia se
// reintentan hasta Options.MaxRetries veces; NotFound, InvalidInput e InsufficientStock no.
func (uc *AdjustmentUseCase) ApplyAdjustment(ctx context.Context, in AdjustmentInput) (*AdjustmentResult, error) {
	if in.ItemID == "" || !entity.IsValidAdjustmentType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	if in.Type != entity.AdjustmentTypeCorrection && in.Magnitude < 0 {
		return nil, domain.ErrInvalidInput
	}

	for attempt := 0; ; attempt++ {
		res, err := uc.applyOnce(ctx, in)
		if err == nil {
			uc.cache.SetItem(ctx, res.Item)
			log.Info().
				Str("item_id", res.Item.ID).
				Str("type", res.Adjustment.Type).
				Int("previous_quantity", res.Adjustment.PreviousQuantity).
				Int("new_quantity", res.Adjustment.NewQuantity).
				Str("adjusted_by", res.Adjustment.AdjustedBy).
				Str("reference", res.Adjustment.Reference).
				Msg("ajuste de inventario registrado")
			return res, nil
		}
		if !domain.IsRetryable(err) {
			return nil, err
		}
		if attempt >= uc.opts.MaxRetries || ctx.Err() != nil {
			log.Warn().Err(err).Str("item_id", in.ItemID).Int("attempts", attempt+1).Msg("ajuste abortado por conflicto")
			return nil, domain.ErrConflict
		}
		log.Warn().Err(err).Str("item_id", in.ItemID).Int("attempt", attempt+1).Msg("conflicto de concurrencia, reintentando")

		wait := uc.opts.Backoff * time.Duration(attempt+1)
		select {
		case <-ctx.Done():
			return nil, domain.ErrConflict
		case <-time.After(wait):
		}
	}
}

// applyOnce ejecuta una única unidad de trabajo acotada por LockTimeout.
func (uc *AdjustmentUseCase) applyOnce(ctx context.Context, in AdjustmentInput) (*AdjustmentResult, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, uc.opts.LockTimeout)
	defer cancel()

	var result *AdjustmentResult
	err := uc.txRunner.Run(attemptCtx, func(
		itemRepo repository.InventoryItemRepository,
		adjRepo repository.InventoryAdjustmentRepository,
	) error {
		item, err := itemRepo.GetForUpdate(attemptCtx, in.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if in.Reference != "" {
			existing, err := adjRepo.GetByReference(attemptCtx, item.ID, in.Reference)
			if err != nil {
				return err
			}
			if existing != nil {
				return domain.ErrDuplicate
			}
		}
		next, err := dominventory.QuantityCalculator(in.Type, item.Quantity, in.Magnitude)
		if err != nil {
			return err
		}
		if err := itemRepo.UpdateQuantity(attemptCtx, item.ID, next, item.Version); err != nil {
			return err
		}

		now := uc.now()
		adj := &entity.InventoryAdjustment{
			ID:               uuid.New().String(),
			ItemID:           item.ID,
			Type:             in.Type,
			Quantity:         in.Magnitude,
			PreviousQuantity: item.Quantity,
			NewQuantity:      next,
			Notes:            in.Notes,
			AdjustedBy:       in.Actor,
			Reference:        in.Reference,
			CreatedAt:        now,
		}
		if err := adjRepo.Create(attemptCtx, adj); err != nil {
			return err
		}

		item.Quantity = next
		item.Version++
		item.UpdatedAt = now
		result = &AdjustmentResult{Item: item, Adjustment: adj}
		return nil
	})
	if err != nil {
		return nil, timeoutAsConflict(ctx, attemptCtx, err)
	}
	return result, nil
}

// OpenItem inserta un artículo nuevo y, si initialQuantity > 0, registra la entrada inicial
// en el libro dentro de la misma transacción. El artículo llega con Quantity 0.
func (uc *AdjustmentUseCase) OpenItem(ctx context.Context, item *entity.InventoryItem, initialQuantity int, actor string) (*AdjustmentResult, error) {
	if item == nil || initialQuantity < 0 || initialQuantity > dominventory.MaxQuantity {
		return nil, domain.ErrInvalidInput
	}
	attemptCtx, cancel := context.WithTimeout(ctx, uc.opts.LockTimeout)
	defer cancel()

	var result *AdjustmentResult
	err := uc.txRunner.Run(attemptCtx, func(
		itemRepo repository.InventoryItemRepository,
		adjRepo repository.InventoryAdjustmentRepository,
	) error {
		item.Quantity = initialQuantity
		item.Version = 0
		if err := itemRepo.Create(attemptCtx, item); err != nil {
			return err
		}
		result = &AdjustmentResult{Item: item}
		if initialQuantity == 0 {
			return nil
		}
		adj := &entity.InventoryAdjustment{
			ID:               uuid.New().String(),
			ItemID:           item.ID,
			Type:             entity.AdjustmentTypeAddition,
			Quantity:         initialQuantity,
			PreviousQuantity: 0,
			NewQuantity:      initialQuantity,
			Notes:            InitialStockNote,
			AdjustedBy:       actor,
			Reference:        InitialStockRefPrefix + item.SKU,
			CreatedAt:        item.CreatedAt,
		}
		if err := adjRepo.Create(attemptCtx, adj); err != nil {
			return err
		}
		result.Adjustment = adj
		return nil
	})
	if err != nil {
		return nil, timeoutAsConflict(ctx, attemptCtx, err)
	}
	return result, nil
}

// timeoutAsConflict convierte el vencimiento del plazo de la unidad de trabajo en ErrConflict,
// siempre que el contexto del llamador siga vivo.
func timeoutAsConflict(parent, attempt context.Context, err error) error {
	if parent.Err() != nil {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(attempt.Err(), context.DeadlineExceeded) {
		if isTerminal(err) {
			return err
		}
		return fmt.Errorf("%w: tiempo de espera agotado", domain.ErrConflict)
	}
	return err
}

func isTerminal(err error) bool {
	return errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrInvalidInput) ||
		errors.Is(err, domain.ErrInsufficientStock) ||
		errors.Is(err, domain.ErrDuplicate)
}

package inventory

import (
	"context"

	"github.com/jhoicas/pos-tracker/internal/application/dto"
)

// ApplyAdjustmentFromRequest adapta el request HTTP al caso de uso ApplyAdjustment(ctx, AdjustmentInput).
// userID es el actor autenticado que queda en adjusted_by.
func (uc *AdjustmentUseCase) ApplyAdjustmentFromRequest(ctx context.Context, itemID, userID string, in dto.ApplyAdjustmentRequest) (*dto.ApplyAdjustmentResponse, error) {
	res, err := uc.ApplyAdjustment(ctx, AdjustmentInput{
		ItemID:    itemID,
		Type:      in.Type,
		Magnitude: in.Quantity,
		Notes:     in.Notes,
		Actor:     userID,
		Reference: in.Reference,
	})
	if err != nil {
		return nil, err
	}
	return &dto.ApplyAdjustmentResponse{
		Item:       *dto.ToItemResponse(res.Item),
		Adjustment: *dto.ToAdjustmentResponse(res.Adjustment),
	}, nil
}

package dto

import "github.com/jhoicas/pos-tracker/internal/domain/entity"

// ToBrandResponse convierte la entidad en su salida HTTP.
func ToBrandResponse(b *entity.Brand) *BrandResponse {
	if b == nil {
		return nil
	}
	return &BrandResponse{
		ID:              b.ID,
		Name:            b.Name,
		Description:     b.Description,
		CountryOfOrigin: b.CountryOfOrigin,
		Website:         b.Website,
		ContactEmail:    b.ContactEmail,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// ToItemResponse convierte la entidad en su salida HTTP.
func ToItemResponse(i *entity.InventoryItem) *ItemResponse {
	if i == nil {
		return nil
	}
	return &ItemResponse{
		ID:           i.ID,
		BrandID:      i.BrandID,
		Name:         i.Name,
		Description:  i.Description,
		Quantity:     i.Quantity,
		Price:        i.Price,
		CostPrice:    i.CostPrice,
		SKU:          i.SKU,
		Barcode:      i.Barcode,
		ReorderLevel: i.ReorderLevel,
		Location:     i.Location,
		IsActive:     i.IsActive,
		NeedsReorder: i.NeedsReorder(),
		Version:      i.Version,
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}

// ToAdjustmentResponse convierte el registro del libro en su salida HTTP.
func ToAdjustmentResponse(a *entity.InventoryAdjustment) *AdjustmentResponse {
	if a == nil {
		return nil
	}
	return &AdjustmentResponse{
		ID:               a.ID,
		ItemID:           a.ItemID,
		Type:             a.Type,
		Quantity:         a.Quantity,
		PreviousQuantity: a.PreviousQuantity,
		NewQuantity:      a.NewQuantity,
		Notes:            a.Notes,
		AdjustedBy:       a.AdjustedBy,
		Reference:        a.Reference,
		CreatedAt:        a.CreatedAt,
	}
}

// ToUserResponse convierte el usuario en su salida HTTP (sin hash).
func ToUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/pos-tracker/internal/application/dto"
	"github.com/jhoicas/pos-tracker/internal/application/ports"
	"github.com/jhoicas/pos-tracker/internal/domain"
	"github.com/jhoicas/pos-tracker/internal/domain/entity"
	"github.com/jhoicas/pos-tracker/internal/domain/repository"
)

// BrandUseCase casos de uso del catálogo de marcas. Las marcas no se eliminan.
type BrandUseCase struct {
	repo  repository.BrandRepository
	cache ports.CatalogCache
}

// NewBrandUseCase construye el caso de uso. cache puede ser nil.
func NewBrandUseCase(repo repository.BrandRepository, cache ports.CatalogCache) *BrandUseCase {
	if cache == nil {
		cache = ports.NoopCache{}
	}
	return &BrandUseCase{repo: repo, cache: cache}
}

// Create crea una marca. El nombre es único.
func (uc *BrandUseCase) Create(ctx context.Context, in dto.CreateBrandRequest) (*dto.BrandResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	brand := &entity.Brand{
		ID:              uuid.New().String(),
		Name:            name,
		Description:     in.Description,
		CountryOfOrigin: in.CountryOfOrigin,
		Website:         in.Website,
		ContactEmail:    in.ContactEmail,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(ctx, brand); err != nil {
		return nil, err
	}
	return dto.ToBrandResponse(brand), nil
}

// GetByID obtiene una marca (lectura cacheada).
func (uc *BrandUseCase) GetByID(ctx context.Context, id string) (*dto.BrandResponse, error) {
	brand, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToBrandResponse(brand), nil
}

func (uc *BrandUseCase) get(ctx context.Context, id string) (*entity.Brand, error) {
	if b, ok := uc.cache.GetBrand(ctx, id); ok {
		return b, nil
	}
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	uc.cache.SetBrand(ctx, b)
	return b, nil
}

// Update edición administrativa de una marca.
func (uc *BrandUseCase) Update(ctx context.Context, id string, in dto.UpdateBrandRequest) (*dto.BrandResponse, error) {
	brand, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		if name != brand.Name {
			other, err := uc.repo.GetByName(ctx, name)
			if err != nil {
				return nil, err
			}
			if other != nil {
				return nil, domain.ErrDuplicate
			}
		}
		brand.Name = name
	}
	if in.Description != nil {
		brand.Description = *in.Description
	}
	if in.CountryOfOrigin != nil {
		brand.CountryOfOrigin = *in.CountryOfOrigin
	}
	if in.Website != nil {
		brand.Website = *in.Website
	}
	if in.ContactEmail != nil {
		brand.ContactEmail = *in.ContactEmail
	}
	brand.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, brand); err != nil {
		return nil, err
	}
	uc.cache.InvalidateBrand(ctx, brand.ID)
	return dto.ToBrandResponse(brand), nil
}

// List lista marcas con búsqueda opcional por nombre.
func (uc *BrandUseCase) List(ctx context.Context, search string, limit, offset int) (*dto.BrandListResponse, error) {
	list, err := uc.repo.List(ctx, strings.TrimSpace(search), limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BrandResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *dto.ToBrandResponse(b))
	}
	return &dto.BrandListResponse{
		Items: items,
		Page:  dto.NewPageResponse(limit, offset, len(items)),
	}, nil
}

package dto

import "time"

// CreateBrandRequest entrada para crear una marca.
type CreateBrandRequest struct {
	Name            string `json:"name" validate:"required,min=1,max=100"`
	Description     string `json:"description"`
	CountryOfOrigin string `json:"country_of_origin"`
	Website         string `json:"website"`
	ContactEmail    string `json:"contact_email"`
}

// UpdateBrandRequest edición administrativa de una marca (campos opcionales).
type UpdateBrandRequest struct {
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	CountryOfOrigin *string `json:"country_of_origin"`
	Website         *string `json:"website"`
	ContactEmail    *string `json:"contact_email"`
}

// BrandResponse salida de una marca.
type BrandResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	CountryOfOrigin string    `json:"country_of_origin"`
	Website         string    `json:"website"`
	ContactEmail    string    `json:"contact_email"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// BrandListResponse lista paginada de marcas.
type BrandListResponse struct {
	Items []BrandResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

package entity

import "time"

// Brand representa una marca del catálogo (fabricante de los artículos).
type Brand struct {
	ID              string
	Name            string // único
	Description     string
	CountryOfOrigin string
	Website         string
	ContactEmail    string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

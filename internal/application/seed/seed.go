// Package seed carga el catálogo de demostración: 20 marcas (10 de llantas, 10 de repuestos),
// artículos por marca y algunos movimientos de stock. Todo cambio de cantidad pasa por el motor
// de ajustes, así el libro siempre cuadra con la cantidad de cada artículo.
package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/pos-tracker/internal/application/dto"
	"github.com/jhoicas/pos-tracker/internal/application/inventory"
	"github.com/jhoicas/pos-tracker/internal/application/usecase"
	"github.com/jhoicas/pos-tracker/internal/domain"
	"github.com/jhoicas/pos-tracker/internal/domain/entity"
	"github.com/jhoicas/pos-tracker/internal/domain/repository"
)

var (
	TireBrands = []string{
		"Michelin", "Bridgestone", "Goodyear", "Continental", "Pirelli",
		"Dunlop", "Hankook", "Yokohama", "Toyo", "Firestone",
	}
	PartsBrands = []string{
		"Bosch", "Denso", "Mobil 1", "Castrol", "Valvoline",
		"NGK", "Brembo", "Mann Filter", "Mann+Hummel", "Mahle",
	}

	tireCategories = []string{
		"All-Season", "Summer", "Winter", "All-Terrain", "Mud-Terrain",
		"Performance", "Touring", "Highway", "Passenger", "Light Truck",
	}
	tireModels = []string{
		"EcoPlus", "TurboGrip", "AllSeason Pro", "WinterMaster", "MudKing",
		"StreetSport", "Touring Plus", "Highway Cruiser", "EcoTrek", "Performance GT",
	}
	partsCategories = []string{
		"Engine Oil", "Oil Filter", "Air Filter", "Brake Pads", "Brake Rotors",
		"Spark Plugs", "Battery", "Windshield Wipers", "Cabin Air Filter", "Headlight Bulbs",
	}
	partsModels = []string{
		"Pro", "Premium", "Eco", "Performance", "OEM",
		"Ultra", "Standard", "Heavy Duty", "EcoFriendly", "Racing",
	}
)

const (
	tireItemsPerBrand  = 2
	partsItemsPerBrand = 3
	maxSKUAttempts     = 5
)

// Summary totales creados por una ejecución.
type Summary struct {
	Brands      int
	Items       int
	Adjustments int
}

// Seeder carga los datos de demostración usando los casos de uso de la aplicación.
type Seeder struct {
	brandRepo   repository.BrandRepository
	items       *usecase.ItemUseCase
	adjustments *inventory.AdjustmentUseCase
	fake        *gofakeit.Faker
	lower       cases.Caser
}

// New construye el seeder. seed 0 usa una semilla aleatoria; cualquier otro valor
// produce siempre los mismos datos.
func New(
	brandRepo repository.BrandRepository,
	items *usecase.ItemUseCase,
	adjustments *inventory.AdjustmentUseCase,
	seed uint64,
) *Seeder {
	return &Seeder{
		brandRepo:   brandRepo,
		items:       items,
		adjustments: adjustments,
		fake:        gofakeit.New(seed),
		lower:       cases.Lower(language.English),
	}
}

// Run crea las marcas que falten y, para cada una, sus artículos con stock inicial y de 0 a 3
// ajustes aleatorios. actor queda como adjusted_by en el libro.
func (s *Seeder) Run(ctx context.Context, actor string) (*Summary, error) {
	sum := &Summary{}

	tires, err := s.ensureBrands(ctx, TireBrands, sum)
	if err != nil {
		return nil, err
	}
	parts, err := s.ensureBrands(ctx, PartsBrands, sum)
	if err != nil {
		return nil, err
	}

	for _, b := range tires {
		for i := 0; i < tireItemsPerBrand; i++ {
			if err := s.seedItem(ctx, actor, s.tireItem(b), sum); err != nil {
				return nil, err
			}
		}
	}
	for _, b := range parts {
		for i := 0; i < partsItemsPerBrand; i++ {
			if err := s.seedItem(ctx, actor, s.partsItem(b, i), sum); err != nil {
				return nil, err
			}
		}
	}

	log.Info().
		Int("brands", sum.Brands).
		Int("items", sum.Items).
		Int("adjustments", sum.Adjustments).
		Msg("datos de demostración cargados")
	return sum, nil
}

// ensureBrands devuelve las marcas pedidas, creando las que no existen.
func (s *Seeder) ensureBrands(ctx context.Context, names []string, sum *Summary) ([]*entity.Brand, error) {
	out := make([]*entity.Brand, 0, len(names))
	for _, name := range names {
		b, err := s.brandRepo.GetByName(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("buscar marca %s: %w", name, err)
		}
		if b == nil {
			slug := s.slug(name)
			now := time.Now()
			b = &entity.Brand{
				ID:              uuid.New().String(),
				Name:            name,
				Description:     name + " is a leading manufacturer of automotive products.",
				CountryOfOrigin: s.fake.Country(),
				Website:         "https://www." + slug + ".com",
				ContactEmail:    "info@" + slug + ".com",
				CreatedAt:       now,
				UpdatedAt:       now,
			}
			if err := s.brandRepo.Create(ctx, b); err != nil {
				return nil, fmt.Errorf("crear marca %s: %w", name, err)
			}
			sum.Brands++
		}
		out = append(out, b)
	}
	return out, nil
}

// slug deja solo letras y dígitos en minúscula ("Mann+Hummel" -> "mannhummel").
func (s *Seeder) slug(name string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, s.lower.String(name))
}

func (s *Seeder) tireItem(b *entity.Brand) dto.CreateItemRequest {
	category := s.fake.RandomString(tireCategories)
	model := s.fake.RandomString(tireModels)
	size := fmt.Sprintf("%d/%dR%d",
		s.pickInt(15, 16, 17, 18, 19, 20), s.pickInt(65, 70, 75), s.pickInt(15, 16, 17, 18))
	active := s.active()
	return dto.CreateItemRequest{
		BrandID:         b.ID,
		Name:            fmt.Sprintf("%s %s %s Tire", b.Name, model, category),
		Description:     fmt.Sprintf("%s %s tire by %s. %s", size, category, b.Name, s.fake.Phrase()),
		Price:           s.wholeOr99(80, 300),
		CostPrice:       s.wholeOr99(50, 200),
		SKU:             s.sku("TIR", b.Name),
		Barcode:         s.fake.Numerify("############"),
		ReorderLevel:    s.pickInt(2, 5, 10),
		Location:        fmt.Sprintf("Aisle %d, Bay %s", s.fake.IntRange(1, 10), s.fake.RandomString([]string{"A", "B", "C", "D", "E"})),
		IsActive:        &active,
		InitialQuantity: s.fake.IntRange(0, 50),
	}
}

// partsItem arma un repuesto; solo uno de cada tres lleva código de barras.
func (s *Seeder) partsItem(b *entity.Brand, i int) dto.CreateItemRequest {
	category := s.fake.RandomString(partsCategories)
	model := s.fake.RandomString(partsModels)
	price, cost := s.partsPricing(category)
	barcode := ""
	if i%3 == 0 {
		barcode = s.fake.Numerify("############")
	}
	active := s.active()
	return dto.CreateItemRequest{
		BrandID:         b.ID,
		Name:            fmt.Sprintf("%s %s %s", b.Name, model, category),
		Description:     fmt.Sprintf("%s by %s. %s", category, b.Name, s.fake.Phrase()),
		Price:           price,
		CostPrice:       cost,
		SKU:             s.sku("PRT", b.Name),
		Barcode:         barcode,
		ReorderLevel:    s.pickInt(5, 10, 15),
		Location:        fmt.Sprintf("Aisle %d, Bin %s", s.fake.IntRange(11, 20), s.fake.RandomString([]string{"F", "G", "H", "I", "J"})),
		IsActive:        &active,
		InitialQuantity: s.fake.IntRange(0, 100),
	}
}

// partsPricing rango de precio y margen según la categoría del repuesto.
func (s *Seeder) partsPricing(category string) (price, cost decimal.Decimal) {
	var lo, hi, ratio float64
	switch {
	case strings.Contains(category, "Oil") && !strings.Contains(category, "Filter"):
		lo, hi, ratio = 5.99, 49.99, 0.6
	case strings.Contains(category, "Filter"):
		lo, hi, ratio = 8.99, 34.99, 0.55
	case strings.Contains(category, "Brake"):
		lo, hi, ratio = 25.99, 199.99, 0.5
	default:
		lo, hi, ratio = 4.99, 149.99, 0.6
	}
	p := decimal.NewFromFloat(s.fake.Float64Range(lo, hi)).Round(2)
	return p, p.Mul(decimal.NewFromFloat(ratio)).Round(2)
}

func (s *Seeder) wholeOr99(lo, hi int) decimal.Decimal {
	d := decimal.NewFromInt(int64(s.fake.IntRange(lo, hi)))
	if s.fake.Bool() {
		d = d.Add(decimal.RequireFromString("0.99"))
	}
	return d
}

func (s *Seeder) sku(prefix, brand string) string {
	code := strings.ToUpper(strings.ReplaceAll(brand, " ", ""))
	if len(code) > 3 {
		code = code[:3]
	}
	return fmt.Sprintf("%s-%s%d", prefix, code, s.fake.IntRange(1000, 9999))
}

func (s *Seeder) pickInt(opts ...int) int {
	return opts[s.fake.IntRange(0, len(opts)-1)]
}

// active: uno de cada cuatro artículos queda inactivo.
func (s *Seeder) active() bool {
	return s.fake.IntRange(0, 3) != 0
}

// seedItem crea el artículo (reintentando con otro SKU si ya existe) y le aplica movimientos.
func (s *Seeder) seedItem(ctx context.Context, actor string, req dto.CreateItemRequest, sum *Summary) error {
	var item *dto.ItemResponse
	var err error
	for attempt := 0; attempt < maxSKUAttempts; attempt++ {
		item, err = s.items.Create(ctx, actor, req)
		if !errors.Is(err, domain.ErrDuplicate) {
			break
		}
		req.SKU = s.sku(req.SKU[:3], req.Name)
	}
	if err != nil {
		return fmt.Errorf("crear artículo %s: %w", req.Name, err)
	}
	sum.Items++
	if req.InitialQuantity > 0 {
		sum.Adjustments++
	}

	qty := item.Quantity
	for n := s.fake.IntRange(0, 3); n > 0; n-- {
		in := s.randomAdjustment(item, qty, actor)
		res, err := s.adjustments.ApplyAdjustment(ctx, in)
		if errors.Is(err, domain.ErrDuplicate) {
			continue
		}
		if err != nil {
			return fmt.Errorf("ajuste %s sobre %s: %w", in.Type, item.SKU, err)
		}
		qty = res.Item.Quantity
		sum.Adjustments++
	}
	return nil
}

// randomAdjustment elige entrada, salida o corrección sin dejar el stock negativo.
func (s *Seeder) randomAdjustment(item *dto.ItemResponse, qty int, actor string) inventory.AdjustmentInput {
	in := inventory.AdjustmentInput{
		ItemID:    item.ID,
		Actor:     actor,
		Reference: fmt.Sprintf("ADJ-%s-%d", item.SKU, s.fake.IntRange(1000, 9999)),
	}
	kind := s.fake.RandomString([]string{entity.AdjustmentTypeAddition, entity.AdjustmentTypeRemoval, entity.AdjustmentTypeCorrection})
	if kind == entity.AdjustmentTypeRemoval && qty == 0 {
		kind = entity.AdjustmentTypeAddition
	}
	switch kind {
	case entity.AdjustmentTypeAddition:
		in.Type, in.Magnitude = kind, s.fake.IntRange(1, 10)
		in.Notes = fmt.Sprintf("Received %d units from supplier", in.Magnitude)
	case entity.AdjustmentTypeRemoval:
		in.Type, in.Magnitude = kind, s.fake.IntRange(1, min(5, qty))
		in.Notes = fmt.Sprintf("Removed %d units for customer order", in.Magnitude)
	default:
		delta := s.fake.IntRange(-5, 5)
		if qty+delta < 0 {
			delta = -qty
		}
		in.Type, in.Magnitude = kind, delta
		in.Notes = fmt.Sprintf("Quantity correction: %+d units (inventory count)", delta)
	}
	return in
}

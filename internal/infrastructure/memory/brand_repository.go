package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/pos-tracker/internal/domain"
	"github.com/jhoicas/pos-tracker/internal/domain/entity"
	"github.com/jhoicas/pos-tracker/internal/domain/repository"
)

var _ repository.BrandRepository = (*BrandRepo)(nil)

// BrandRepo marcas en memoria.
type BrandRepo struct {
	store *Store
}

// NewBrandRepository construye el repositorio.
func NewBrandRepository(store *Store) *BrandRepo {
	return &BrandRepo{store: store}
}

func (r *BrandRepo) nameTaken(name, exceptID string) bool {
	for id, b := range r.store.brands {
		if id != exceptID && strings.EqualFold(b.Name, name) {
			return true
		}
	}
	return false
}

func (r *BrandRepo) Create(ctx context.Context, b *entity.Brand) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.brands[b.ID]; ok || r.nameTaken(b.Name, "") {
		return domain.ErrDuplicate
	}
	c := *b
	r.store.brands[b.ID] = &c
	return nil
}

func (r *BrandRepo) GetByID(ctx context.Context, id string) (*entity.Brand, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if b, ok := r.store.brands[id]; ok {
		c := *b
		return &c, nil
	}
	return nil, nil
}

func (r *BrandRepo) GetByName(ctx context.Context, name string) (*entity.Brand, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, b := range r.store.brands {
		if strings.EqualFold(b.Name, name) {
			c := *b
			return &c, nil
		}
	}
	return nil, nil
}

func (r *BrandRepo) Update(ctx context.Context, b *entity.Brand) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cur, ok := r.store.brands[b.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if r.nameTaken(b.Name, b.ID) {
		return domain.ErrDuplicate
	}
	c := *b
	c.CreatedAt = cur.CreatedAt
	r.store.brands[b.ID] = &c
	return nil
}

func (r *BrandRepo) List(ctx context.Context, search string, limit, offset int) ([]*entity.Brand, error) {
	r.store.mu.RLock()
	var list []*entity.Brand
	for _, b := range r.store.brands {
		if search != "" && !containsFold(b.Name, search) && !containsFold(b.CountryOfOrigin, search) {
			continue
		}
		c := *b
		list = append(list, &c)
	}
	r.store.mu.RUnlock()
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return paginate(list, limit, offset), nil
}

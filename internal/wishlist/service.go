package wishlist

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"storefront-client/internal/apperr"
	"storefront-client/internal/catalog"
	"storefront-client/internal/logger"
)

var ErrInvalidProduct = apperr.New(apperr.KindValidation, "wishlist", "product id is required")

// API is the slice of the adapter contract the wishlist needs.
type API interface {
	GetWishlist(ctx context.Context) ([]catalog.Product, error)
	AddToWishlist(ctx context.Context, id int, product *catalog.Product) error
	RemoveFromWishlist(ctx context.Context, id int) error
}

// Service mirrors the cart's optimistic flow for the heart icon: the local
// membership set flips immediately, the adapter write follows, and a failed
// write flips it back. Mutations serialize through one mutex.
type Service struct {
	api API

	mu       sync.Mutex
	ids      map[int]bool
	onChange func(int)
}

func NewService(api API) *Service {
	return &Service{api: api, ids: make(map[int]bool)}
}

func (s *Service) OnChange(fn func(count int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

func (s *Service) Contains(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ids[id]
}

func (s *Service) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}

func (s *Service) notify() {
	if s.onChange != nil {
		s.onChange(len(s.ids))
	}
}

// Add puts the product on the wishlist; adding an id twice is a no-op.
func (s *Service) Add(ctx context.Context, product catalog.Product) error {
	if product.ID == 0 {
		return ErrInvalidProduct
	}

	ctx = logger.WithOp(ctx, "wishlist.add")

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ids[product.ID] {
		return nil
	}

	// optimistic flip
	s.ids[product.ID] = true
	s.notify()

	if err := s.api.AddToWishlist(ctx, product.ID, &product); err != nil {
		delete(s.ids, product.ID)
		s.notify()
		logger.FromCtx(ctx).Error("add to wishlist failed",
			zap.Int("product_id", product.ID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *Service) Remove(ctx context.Context, id int) error {
	if id == 0 {
		return ErrInvalidProduct
	}

	ctx = logger.WithOp(ctx, "wishlist.remove")

	s.mu.Lock()
	defer s.mu.Unlock()

	was := s.ids[id]
	delete(s.ids, id)
	s.notify()

	if err := s.api.RemoveFromWishlist(ctx, id); err != nil {
		if was {
			s.ids[id] = true
			s.notify()
		}
		logger.FromCtx(ctx).Error("remove from wishlist failed",
			zap.Int("product_id", id),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// Toggle flips membership for the given product.
func (s *Service) Toggle(ctx context.Context, product catalog.Product) error {
	if s.Contains(product.ID) {
		return s.Remove(ctx, product.ID)
	}
	return s.Add(ctx, product)
}

// Items fetches the authoritative list and rebuilds the membership set.
func (s *Service) Items(ctx context.Context) ([]catalog.Product, error) {
	ctx = logger.WithOp(ctx, "wishlist.items")

	items, err := s.api.GetWishlist(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.ids = make(map[int]bool, len(items))
	for _, it := range items {
		s.ids[it.ID] = true
	}
	s.notify()
	s.mu.Unlock()

	return items, nil
}

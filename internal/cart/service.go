package cart

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"storefront-client/internal/catalog"
	"storefront-client/internal/logger"
)

// API is the slice of the adapter contract the cart needs.
type API interface {
	GetCartContents(ctx context.Context) (Contents, error)
	AddToCart(ctx context.Context, productID, quantity int, product *catalog.Product) error
	UpdateCart(ctx context.Context, key string, quantity int) error
	RemoveFromCart(ctx context.Context, key string) error
	EmptyCart(ctx context.Context) error
}

// Service drives the optimistic cart flow shared by every screen: bump the
// badge first, write through the adapter, then reconcile the badge against
// the authoritative contents, or revert the bump when the write fails.
// All mutations serialize through one mutex, so two screens can never
// interleave their read-modify-write cycles.
type Service struct {
	api API

	mu       sync.Mutex
	count    int
	onChange func(int)
}

func NewService(api API) *Service {
	return &Service{api: api}
}

// OnChange registers the badge observer. Called under the mutation lock;
// keep it cheap.
func (s *Service) OnChange(fn func(count int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

func (s *Service) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

func (s *Service) setCount(n int) {
	if n < 0 {
		n = 0
	}
	s.count = n
	if s.onChange != nil {
		s.onChange(n)
	}
}

// Add puts quantity units of a product in the cart. The badge is bumped
// before the write and explicitly reverted if the write fails.
func (s *Service) Add(ctx context.Context, productID, quantity int, product *catalog.Product) error {
	if productID == 0 {
		return ErrInvalidProduct
	}
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	ctx = logger.WithOp(ctx, "cart.add")

	s.mu.Lock()
	defer s.mu.Unlock()

	// optimistic bump
	s.setCount(s.count + quantity)

	if err := s.api.AddToCart(ctx, productID, quantity, product); err != nil {
		// revert the bump from phase 1
		s.setCount(s.count - quantity)
		logger.FromCtx(ctx).Error("add to cart failed",
			zap.Int("product_id", productID),
			zap.Int("quantity", quantity),
			zap.Error(err),
		)
		return err
	}

	s.reconcile(ctx)
	return nil
}

// UpdateQuantity sets the quantity of the line identified by ref; zero or
// less removes it.
func (s *Service) UpdateQuantity(ctx context.Context, ref string, quantity int) error {
	if ref == "" {
		return ErrInvalidItemRef
	}

	ctx = logger.WithOp(ctx, "cart.update")

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.api.UpdateCart(ctx, ref, quantity); err != nil {
		logger.FromCtx(ctx).Error("update cart failed",
			zap.String("ref", ref),
			zap.Int("quantity", quantity),
			zap.Error(err),
		)
		return err
	}

	s.reconcile(ctx)
	return nil
}

// Remove deletes the line identified by ref.
func (s *Service) Remove(ctx context.Context, ref string) error {
	if ref == "" {
		return ErrInvalidItemRef
	}

	ctx = logger.WithOp(ctx, "cart.remove")

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.api.RemoveFromCart(ctx, ref); err != nil {
		logger.FromCtx(ctx).Error("remove from cart failed",
			zap.String("ref", ref),
			zap.Error(err),
		)
		return err
	}

	s.reconcile(ctx)
	return nil
}

// Clear empties the cart.
func (s *Service) Clear(ctx context.Context) error {
	ctx = logger.WithOp(ctx, "cart.clear")

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.api.EmptyCart(ctx); err != nil {
		logger.FromCtx(ctx).Error("empty cart failed", zap.Error(err))
		return err
	}

	s.setCount(0)
	return nil
}

// Contents returns the authoritative snapshot and corrects the badge.
func (s *Service) Contents(ctx context.Context) (Contents, error) {
	ctx = logger.WithOp(ctx, "cart.contents")

	contents, err := s.api.GetCartContents(ctx)
	if err != nil {
		return Contents{}, err
	}

	s.mu.Lock()
	s.setCount(contents.ItemCount)
	s.mu.Unlock()

	return contents, nil
}

// reconcile corrects the badge to the authoritative quantity sum. A failed
// fetch after a successful write keeps the best-effort count with a warning;
// the write itself already landed.
func (s *Service) reconcile(ctx context.Context) {
	contents, err := s.api.GetCartContents(ctx)
	if err != nil {
		logger.FromCtx(ctx).Warn("cart reconciliation fetch failed, keeping optimistic count",
			zap.Int("count", s.count),
			zap.Error(err),
		)
		return
	}
	s.setCount(contents.ItemCount)
}

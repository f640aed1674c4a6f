package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"storefront-client/internal/apperr"
	"storefront-client/internal/storage"
)

// Session is the locally persisted login state.
type Session struct {
	Token      string
	CustomerID string
}

// Manager persists the session token and customer id under their device
// store keys.
type Manager struct {
	store storage.Store
}

func NewManager(store storage.Store) *Manager {
	return &Manager{store: store}
}

func (m *Manager) Save(ctx context.Context, s Session) error {
	if err := storage.SetJSON(ctx, m.store, storage.KeySessionToken, s.Token); err != nil {
		return err
	}
	// a session without a customer id must not inherit the previous user's
	if s.CustomerID == "" {
		return m.store.Delete(ctx, storage.KeyCustomerID)
	}
	return storage.SetJSON(ctx, m.store, storage.KeyCustomerID, s.CustomerID)
}

// Load returns the stored session; KindNotFound when nobody is signed in.
func (m *Manager) Load(ctx context.Context) (Session, error) {
	token, err := storage.GetJSON[string](ctx, m.store, storage.KeySessionToken)
	if err != nil {
		return Session{}, err
	}

	customerID, err := storage.GetJSON[string](ctx, m.store, storage.KeyCustomerID)
	if err != nil && !apperr.IsKind(err, apperr.KindNotFound) {
		return Session{}, err
	}

	return Session{Token: token, CustomerID: customerID}, nil
}

func (m *Manager) Clear(ctx context.Context) error {
	if err := m.store.Delete(ctx, storage.KeySessionToken); err != nil {
		return err
	}
	return m.store.Delete(ctx, storage.KeyCustomerID)
}

// Expired inspects the token's exp claim without verifying the signature;
// verification is the server's job, this only avoids a doomed round trip.
// Tokens that don't parse as JWTs or carry no exp claim count as live.
func Expired(token string) bool {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

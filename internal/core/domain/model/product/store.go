package product

import (
	"errors"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	// ErrStoreIsNotConstructed is returned when using a zero-value Store.
	ErrStoreIsNotConstructed = errors.New("Store must be created via NewStore constructor")

	// ErrStoreIsBlocked is returned when a blocked store attempts to create a product.
	ErrStoreIsBlocked = errs.NewValueIsInvalidErrorWithCause(
		"store", errors.New("blocked store cannot create products"))
)

// Store represents a seller's shop. A store acts as the factory for its own
// products: a blocked store may not bring new products into the catalog.
type Store struct {
	id      int
	blocked bool
	guard   guard.ConstructorGuard
}

// NewStore creates a Store with the given identifier and blocked flag.
// The identifier must be positive.
func NewStore(id int, blocked bool) (Store, error) {
	if id <= 0 {
		return Store{}, errs.NewValueIsInvalidError("storeId")
	}

	return Store{
		id:      id,
		blocked: blocked,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Store was created via NewStore.
func (s Store) Validate() error {
	return s.guard.Validate(ErrStoreIsNotConstructed)
}

// ID returns the store identifier.
func (s Store) ID() int {
	return s.id
}

// IsBlocked reports whether the store is blocked from catalog operations.
func (s Store) IsBlocked() bool {
	return s.blocked
}

// CreateProduct creates a product belonging to this store.
// Fails with ErrStoreIsBlocked when the store is blocked.
func (s Store) CreateProduct(name string, code string) (Product, error) {
	if err := s.Validate(); err != nil {
		return Product{}, err
	}

	if s.blocked {
		return Product{}, ErrStoreIsBlocked
	}

	return NewProduct(name, code)
}

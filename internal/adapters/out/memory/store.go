// Package memory provides the in-memory persistence adapter.
// All collections live in process memory: maps hold the records, parallel
// id slices preserve insertion order for listings, and per-collection
// counters hand out sequential identifiers. Counters only ever move
// forward, so a removed record's identifier is never reissued.
package memory

import (
	"sync"

	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/product"
	"shop/internal/core/domain/model/user"
)

// Store is the shared in-memory state behind the repositories.
// A single Store backs every repository and unit of work created from it;
// the read-write mutex guards map access while the transaction mutex
// serializes whole read-modify-write command sequences.
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex

	orders   map[int64]*order.Order
	orderIDs []int64

	users   map[int64]*user.User
	userIDs []int64

	products   map[int64]*product.Product
	productIDs []int64

	nextOrderID   int64
	nextUserID    int64
	nextProductID int64
}

// NewStore creates an empty store with all id counters starting at 1.
func NewStore() *Store {
	return &Store{
		orders:        make(map[int64]*order.Order),
		users:         make(map[int64]*user.User),
		products:      make(map[int64]*product.Product),
		nextOrderID:   1,
		nextUserID:    1,
		nextProductID: 1,
	}
}

// takeOrderID hands out the next order identifier. Callers must hold mu.
func (s *Store) takeOrderID() int64 {
	id := s.nextOrderID
	s.nextOrderID++
	return id
}

// takeUserID hands out the next user identifier. Callers must hold mu.
func (s *Store) takeUserID() int64 {
	id := s.nextUserID
	s.nextUserID++
	return id
}

// takeProductID hands out the next product identifier. Callers must hold mu.
func (s *Store) takeProductID() int64 {
	id := s.nextProductID
	s.nextProductID++
	return id
}

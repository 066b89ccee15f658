// Package memstore keeps every collection in process memory. It backs
// STORE_DRIVER=memory for local runs and the repository tests.
package memstore

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/ressit/ressit-pos-api/models"
)

type collection[T any, PT interface {
	*T
	models.Identifiable
}] struct {
	mu   sync.RWMutex
	docs []T
	// clone deep-copies the slice fields of a document. nil for flat types.
	clone func(T) T
}

func (c *collection[T, PT]) copyOf(doc T) T {
	if c.clone == nil {
		return doc
	}
	return c.clone(doc)
}

func (c *collection[T, PT]) indexOf(id int) int {
	for i := range c.docs {
		if PT(&c.docs[i]).GetID() == id {
			return i
		}
	}
	return -1
}

func (c *collection[T, PT]) MaxID(_ context.Context) (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	maxID := 0
	for i := range c.docs {
		if id := PT(&c.docs[i]).GetID(); id > maxID {
			maxID = id
		}
	}
	return maxID, nil
}

func (c *collection[T, PT]) Insert(_ context.Context, doc *T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.indexOf(PT(doc).GetID()) >= 0 {
		return models.ErrDuplicateID
	}
	c.docs = append(c.docs, c.copyOf(*doc))
	return nil
}

func (c *collection[T, PT]) FindAll(_ context.Context) ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.docs))
	for i := range c.docs {
		out[i] = c.copyOf(c.docs[i])
	}
	return out, nil
}

func (c *collection[T, PT]) FindByID(_ context.Context, id int) (*T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i := c.indexOf(id)
	if i < 0 {
		return nil, models.ErrNotFound
	}
	doc := c.copyOf(c.docs[i])
	return &doc, nil
}

func (c *collection[T, PT]) FindFirst(_ context.Context) (*T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.docs) == 0 {
		return nil, nil
	}
	doc := c.copyOf(c.docs[0])
	return &doc, nil
}

func (c *collection[T, PT]) Replace(_ context.Context, id int, doc *T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(id)
	if i < 0 {
		return models.ErrNotFound
	}
	c.docs[i] = c.copyOf(*doc)
	return nil
}

func (c *collection[T, PT]) Delete(_ context.Context, id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(id)
	if i < 0 {
		return models.ErrNotFound
	}
	c.docs = append(c.docs[:i], c.docs[i+1:]...)
	return nil
}

// Store is an in-memory models.Store. The zero value is not usable; call New.
type Store struct {
	admins     *collection[models.Admin, *models.Admin]
	categories *collection[models.Category, *models.Category]
	products   *collection[models.Product, *models.Product]
	orders     *collection[models.Order, *models.Order]
	settings   *collection[models.Settings, *models.Settings]
}

func cloneProduct(p models.Product) models.Product {
	p.Variations = slices.Clone(p.Variations)
	return p
}

func cloneOrder(o models.Order) models.Order {
	o.Variations = slices.Clone(o.Variations)
	return o
}

func New() *Store {
	return &Store{
		admins:     &collection[models.Admin, *models.Admin]{},
		categories: &collection[models.Category, *models.Category]{},
		products:   &collection[models.Product, *models.Product]{clone: cloneProduct},
		orders:     &collection[models.Order, *models.Order]{clone: cloneOrder},
		settings:   &collection[models.Settings, *models.Settings]{},
	}
}

func (s *Store) Admins() models.Collection[models.Admin] { return s.admins }
func (s *Store) Categories() models.Collection[models.Category] { return s.categories }
func (s *Store) Products() models.Collection[models.Product] { return s.products }
func (s *Store) Orders() models.Collection[models.Order] { return s.orders }
func (s *Store) Settings() models.Collection[models.Settings] { return s.settings }
func (s *Store) Ping(_ context.Context) error { return nil }

func (s *Store) FindAdminByCredentials(_ context.Context, username, passwordHash string) (*models.Admin, error) {
	s.admins.mu.RLock()
	defer s.admins.mu.RUnlock()
	for _, a := range s.admins.docs {
		if a.Username == username && a.PasswordHash == passwordHash {
			return &a, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *Store) FindOrdersBetween(_ context.Context, start, end time.Time) ([]models.Order, error) {
	s.orders.mu.RLock()
	defer s.orders.mu.RUnlock()
	out := []models.Order{}
	for _, o := range s.orders.docs {
		if o.OrderDate.Before(start) || o.OrderDate.After(end) {
			continue
		}
		out = append(out, s.orders.copyOf(o))
	}
	return out, nil
}

package models

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when no record carries the requested id.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateID is returned by Collection.Insert when the id is taken.
	ErrDuplicateID = errors.New("duplicate record id")
)

// Identifiable is implemented by every stored record.
type Identifiable interface {
	GetID() int
	SetID(id int)
}

// Collection gives typed access to one record collection.
type Collection[T any] interface {
	// MaxID returns the highest stored id, or 0 when the collection is empty.
	MaxID(ctx context.Context) (int, error)
	Insert(ctx context.Context, doc *T) error
	FindAll(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id int) (*T, error)
	// FindFirst returns nil without an error when the collection is empty.
	FindFirst(ctx context.Context) (*T, error)
	// Replace overwrites the whole record stored under id.
	Replace(ctx context.Context, id int, doc *T) error
	Delete(ctx context.Context, id int) error
}

// Store is the document store gateway shared by all repositories.
type Store interface {
	Admins() Collection[Admin]
	Categories() Collection[Category]
	Products() Collection[Product]
	Orders() Collection[Order]
	Settings() Collection[Settings]

	// FindAdminByCredentials matches username and password hash exactly.
	FindAdminByCredentials(ctx context.Context, username, passwordHash string) (*Admin, error)
	// FindOrdersBetween returns orders with start <= OrderDate <= end.
	FindOrdersBetween(ctx context.Context, start, end time.Time) ([]Order, error)
	Ping(ctx context.Context) error
}

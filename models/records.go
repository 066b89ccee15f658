package models

import (
	"context"
	"fmt"
)

// records implements the create/read/update/delete set every repository
// shares on top of a single collection.
type records[T any, PT interface {
	*T
	Identifiable
}] struct {
	coll     Collection[T]
	attempts int
	name     string
}

func (r records[T, PT]) create(ctx context.Context, doc PT) error {
	if err := insertWithSequence[T, PT](ctx, r.coll, doc, r.attempts); err != nil {
		return fmt.Errorf("create %s: %w", r.name, err)
	}
	return nil
}

func (r records[T, PT]) all(ctx context.Context) ([]T, error) {
	docs, err := r.coll.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.name, err)
	}
	if docs == nil {
		docs = []T{}
	}
	return docs, nil
}

func (r records[T, PT]) get(ctx context.Context, id int) (*T, error) {
	doc, err := r.coll.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get %s %d: %w", r.name, id, err)
	}
	return doc, nil
}

// replace stores doc under id. The id in the body is ignored; records keep
// the id they were created with.
func (r records[T, PT]) replace(ctx context.Context, id int, doc PT) error {
	doc.SetID(id)
	if err := r.coll.Replace(ctx, id, (*T)(doc)); err != nil {
		return fmt.Errorf("update %s %d: %w", r.name, id, err)
	}
	return nil
}

func (r records[T, PT]) delete(ctx context.Context, id int) error {
	if err := r.coll.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete %s %d: %w", r.name, id, err)
	}
	return nil
}

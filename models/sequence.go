package models

import (
	"context"
	"errors"
	"fmt"
)

// DefaultIDAssignAttempts bounds how often a create retries after losing an
// id race to a concurrent create.
const DefaultIDAssignAttempts = 3

// NextID returns the id following maxID. An empty collection reports 0.
func NextID(maxID int) int {
	if maxID < 1 {
		return 1
	}
	return maxID + 1
}

// insertWithSequence assigns doc the next free id of c and inserts it.
// The max+1 read and the insert are separate store calls; a collision with a
// concurrent create is detected through ErrDuplicateID and retried.
func insertWithSequence[T any, PT interface {
	*T
	Identifiable
}](ctx context.Context, c Collection[T], doc PT, attempts int) error {
	if attempts < 1 {
		attempts = 1
	}
	var err error
	for i := 0; i < attempts; i++ {
		var maxID int
		maxID, err = c.MaxID(ctx)
		if err != nil {
			return fmt.Errorf("read current max id: %w", err)
		}
		doc.SetID(NextID(maxID))
		err = c.Insert(ctx, (*T)(doc))
		if !errors.Is(err, ErrDuplicateID) {
			return err
		}
	}
	return fmt.Errorf("assign id after %d attempts: %w", attempts, err)
}

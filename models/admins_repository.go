package models

import (
	"context"
	"errors"
	"fmt"
)

// ErrInvalidCredentials is returned when no admin matches a login attempt.
// Unknown usernames and wrong hashes are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid credentials")

type AdminsRepository struct {
	store   Store
	records records[Admin, *Admin]
}

func NewAdminsRepository(store Store, attempts int) *AdminsRepository {
	return &AdminsRepository{
		store:   store,
		records: records[Admin, *Admin]{coll: store.Admins(), attempts: attempts, name: "admin"},
	}
}

func (r *AdminsRepository) CreateAdmin(ctx context.Context, admin *Admin) error {
	return r.records.create(ctx, admin)
}

func (r *AdminsRepository) GetAllAdmins(ctx context.Context) ([]Admin, error) {
	return r.records.all(ctx)
}

func (r *AdminsRepository) GetAdmin(ctx context.Context, id int) (*Admin, error) {
	return r.records.get(ctx, id)
}

func (r *AdminsRepository) UpdateAdmin(ctx context.Context, id int, admin *Admin) error {
	return r.records.replace(ctx, id, admin)
}

func (r *AdminsRepository) DeleteAdmin(ctx context.Context, id int) error {
	return r.records.delete(ctx, id)
}

// Login looks up the admin whose username and password hash both match
// byte for byte.
func (r *AdminsRepository) Login(ctx context.Context, username, passwordHash string) (*AdminProfile, error) {
	admin, err := r.store.FindAdminByCredentials(ctx, username, passwordHash)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}
	profile := admin.Profile()
	return &profile, nil
}

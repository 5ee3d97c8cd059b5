package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/budai/ent"
	"github.com/abhisek/budai/ent/user"
)

type userRepo struct {
	client *ent.Client
}

func (r *userRepo) Create(ctx context.Context, phone, passwordHash string) (*User, error) {
	u, err := r.client.User.Create().
		SetPhone(phone).
		SetPasswordHash(passwordHash).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", mapErr(err))
	}
	return toUser(u), nil
}

func (r *userRepo) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	u, err := r.client.User.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", mapErr(err))
	}
	return toUser(u), nil
}

func (r *userRepo) GetByPhone(ctx context.Context, phone string) (*User, error) {
	u, err := r.client.User.Query().
		Where(user.Phone(phone)).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("get user by phone: %w", mapErr(err))
	}
	return toUser(u), nil
}

func (r *userRepo) TouchLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	err := r.client.User.UpdateOneID(id).
		SetLastLoginAt(at).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("touch login: %w", mapErr(err))
	}
	return nil
}

func toUser(u *ent.User) *User {
	return &User{
		ID:           u.ID,
		Phone:        u.Phone,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		LastLoginAt:  u.LastLoginAt,
		CreatedAt:    u.CreatedAt,
	}
}

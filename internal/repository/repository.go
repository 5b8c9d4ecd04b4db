package repository

import (
	"context"
	"errors"
	"fmt"
	"msgboard/internal/db"
)

var ErrUserNotFound error = errors.New("user not found")

type BoardRepository struct {
	db Storage
}

func NewBoardRepository(db Storage) *BoardRepository {
	return &BoardRepository{
		db: db,
	}
}

func (r *BoardRepository) Migrate() error {
	err := r.db.MigrateTable(&User{}, &Message{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *BoardRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	exists, err := r.db.Exists(ctx, &User{}, "username", username)
	if err != nil {
		return false, fmt.Errorf("check username: %w", err)
	}

	return exists, nil
}

// CreateUser inserts the user and sets its generated ID.
func (r *BoardRepository) CreateUser(ctx context.Context, user *User) error {
	err := r.db.Create(ctx, user)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *BoardRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	return r.getUserBy(ctx, "username", username)
}

func (r *BoardRepository) GetUserByID(ctx context.Context, id uint) (User, error) {
	return r.getUserBy(ctx, "id", id)
}

func (r *BoardRepository) getUserBy(ctx context.Context, column string, value any) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, column, value, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by %s: %w", column, err)
	}

	return user, nil
}

func (r *BoardRepository) CreateMessage(ctx context.Context, message *Message) error {
	err := r.db.Create(ctx, message)
	if err != nil {
		return fmt.Errorf("create message: %w", err)
	}

	return nil
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jekabolt/resto-manager/internal/dependency"
	"github.com/jekabolt/resto-manager/internal/entity"
	gerr "github.com/jekabolt/resto-manager/internal/errors"
)

type adminStore struct {
	*MYSQLStore
}

// Admin returns an object implementing dependency.Admin interface
func (ms *MYSQLStore) Admin() dependency.Admin {
	return &adminStore{
		MYSQLStore: ms,
	}
}

// AddAdmin creates a new admin and returns its id
func (as *adminStore) AddAdmin(ctx context.Context, un, email, pwHash string) (int, error) {
	id, err := ExecNamedLastId(ctx, as.db, `
		INSERT INTO admins
		(username, email, password_hash)
		VALUES
		(:username, :email, :passwordHash)`, map[string]any{
		"username":     un,
		"email":        email,
		"passwordHash": pwHash,
	})
	if as.IsErrUniqueViolation(err) {
		return 0, gerr.InvalidRequest("admin %q already exists", un)
	}
	if err != nil {
		return 0, fmt.Errorf("can't add admin user: %w", err)
	}
	return id, nil
}

// PasswordHashByUsername returns password hash of an admin
func (as *adminStore) PasswordHashByUsername(ctx context.Context, un string) (string, error) {
	pw, err := QueryScalarNamed[string](ctx, as.db, `
		SELECT password_hash
		FROM admins WHERE username = :username`, map[string]any{"username": un})
	if errors.Is(err, sql.ErrNoRows) {
		return "", gerr.NotFound("admin %q not found", un)
	}
	if err != nil {
		return "", fmt.Errorf("failed to get password hash: %w", err)
	}
	return pw, nil
}

// GetAdminById returns admin by id
func (as *adminStore) GetAdminById(ctx context.Context, id int) (*entity.Admin, error) {
	a, err := QueryNamedOne[entity.Admin](ctx, as.db, `
		SELECT id, username, email, password_hash
		FROM admins WHERE id = :id`, map[string]any{"id": id})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, gerr.NotFound("admin %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return &a, nil
}

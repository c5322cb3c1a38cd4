package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/hire-notifier/internal/model"
)

var ErrUserNotFound = errors.New("user not found")

// Repository reads delivery addresses from the users table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new user repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// GetContact returns the name, email and phone of a user.
func (r *Repository) GetContact(ctx context.Context, userID string) (model.Contact, error) {
	query := `
		SELECT id, name, email, phone
		FROM users
		WHERE id = $1;
    `

	var (
		c     model.Contact
		email sql.NullString
		phone sql.NullString
	)

	err := r.db.QueryRowContext(ctx, query, userID).Scan(&c.UserID, &c.Name, &email, &phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Contact{}, ErrUserNotFound
		}

		return model.Contact{}, fmt.Errorf("failed to get user contact: %w", err)
	}

	c.Email = email.String
	c.Phone = phone.String

	return c, nil
}

// Package users stores user records.
package users

import (
	"context"

	"github.com/dmitrijs2005/gophsocial/internal/server/models"
)

type Repository interface {
	// Create appends user and returns the stored copy.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	// List returns all users in insertion order.
	List(ctx context.Context) ([]models.User, error)
}

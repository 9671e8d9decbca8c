// Package services contains the resource store operations. UserService and
// PostService sit between the transports and the repositories.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophsocial/internal/server/models"
	"github.com/dmitrijs2005/gophsocial/internal/server/repositories/repomanager"
)

// SeedUsers are added by UserService.Seed when the server boots.
var SeedUsers = []models.User{
	{Name: "Admin", Surname: "Admin", Email: "admin@example.com", Password: "admin", IsAdmin: true},
	{Name: "Jorje", Surname: "Pérez", Email: "jorje.elcurioso@example.com", Password: "clave123", IsAdmin: false},
}

type UserService struct {
	repomanager repomanager.RepositoryManager
}

func NewUserService(m repomanager.RepositoryManager) *UserService {
	return &UserService{repomanager: m}
}

// Add stores user as-is. Fields are not validated and duplicates are allowed.
func (s *UserService) Add(ctx context.Context, user *models.User) (*models.User, error) {
	u, err := s.repomanager.Users().Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// List returns every user in insertion order.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.repomanager.Users().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	return users, nil
}

// ListSummaries returns the public projection of every user, one
// "<name> <surname> - <email>" line per user, in insertion order.
func (s *UserService) ListSummaries(ctx context.Context) ([]string, error) {
	users, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(users))
	for _, u := range users {
		lines = append(lines, u.Summary())
	}
	return lines, nil
}

// Seed adds SeedUsers in order.
func (s *UserService) Seed(ctx context.Context) error {
	for _, u := range SeedUsers {
		if _, err := s.Add(ctx, &u); err != nil {
			return fmt.Errorf("error seeding user %s: %w", u.Email, err)
		}
	}
	return nil
}

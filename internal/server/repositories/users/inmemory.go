package users

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/gophsocial/internal/server/models"
)

type InMemoryRepository struct {
	mu    sync.RWMutex
	users []models.User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	stored := *user

	r.mu.Lock()
	r.users = append(r.users, stored)
	r.mu.Unlock()

	return &stored, nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

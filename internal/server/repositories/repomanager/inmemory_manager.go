package repomanager

import (
	"github.com/dmitrijs2005/gophsocial/internal/server/repositories/posts"
	"github.com/dmitrijs2005/gophsocial/internal/server/repositories/users"
)

// InMemoryRepositoryManager holds one process-lifetime instance of each
// in-memory repository; every call returns the same instance.
type InMemoryRepositoryManager struct {
	users *users.InMemoryRepository
	posts *posts.InMemoryRepository
}

func (m *InMemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Posts() posts.Repository {
	return m.posts
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users: users.NewInMemoryRepository(),
		posts: posts.NewInMemoryRepository(),
	}
}

package posts

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gophsocial/internal/common"
	"github.com/dmitrijs2005/gophsocial/internal/server/models"
)

// InMemoryRepository keeps posts in a slice ordered by id. Id assignment and
// append happen under one write lock, so ids stay gapless and increasing
// however requests interleave.
type InMemoryRepository struct {
	mu     sync.RWMutex
	posts  []*models.Post
	nextID int64
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

func (r *InMemoryRepository) Create(ctx context.Context, post *models.Post) (*models.Post, error) {
	stored := &models.Post{
		Text:     post.Text,
		Image:    bytes.Clone(post.Image),
		Comments: []models.Comment{},
	}

	r.mu.Lock()
	stored.ID = r.nextID
	r.nextID++
	r.posts = append(r.posts, stored)
	created := stored.Clone()
	r.mu.Unlock()

	return &created, nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Post, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, p.Clone())
	}
	return out, nil
}

func (r *InMemoryRepository) AddComment(ctx context.Context, postID int64, comment *models.Comment) (*models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post := r.find(postID)
	if post == nil {
		return nil, fmt.Errorf("post %d: %w", postID, common.ErrorNotFound)
	}

	stored := *comment
	post.Comments = append(post.Comments, stored)

	return &stored, nil
}

// find scans for an exact id match. Callers must hold mu.
func (r *InMemoryRepository) find(id int64) *models.Post {
	for _, p := range r.posts {
		if p.ID == id {
			return p
		}
	}
	return nil
}

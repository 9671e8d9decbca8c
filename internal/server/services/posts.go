package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophsocial/internal/server/models"
	"github.com/dmitrijs2005/gophsocial/internal/server/repositories/repomanager"
)

type PostService struct {
	repomanager repomanager.RepositoryManager
}

func NewPostService(m repomanager.RepositoryManager) *PostService {
	return &PostService{repomanager: m}
}

// Create stores a new post with the next id and no comments. text may be
// empty and image may be nil.
func (s *PostService) Create(ctx context.Context, text string, image []byte) (*models.Post, error) {
	p, err := s.repomanager.Posts().Create(ctx, &models.Post{Text: text, Image: image})
	if err != nil {
		return nil, fmt.Errorf("error creating post: %w", err)
	}
	return p, nil
}

// List returns all posts in creation order.
func (s *PostService) List(ctx context.Context) ([]models.Post, error) {
	posts, err := s.repomanager.Posts().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}
	return posts, nil
}

// AddComment appends a comment to post postID. The error matches
// common.ErrorNotFound when the post does not exist.
func (s *PostService) AddComment(ctx context.Context, postID int64, author, text string) (*models.Comment, error) {
	c, err := s.repomanager.Posts().AddComment(ctx, postID, &models.Comment{Author: author, Text: text})
	if err != nil {
		return nil, fmt.Errorf("error adding comment: %w", err)
	}
	return c, nil
}

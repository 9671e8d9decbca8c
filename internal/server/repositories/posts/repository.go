// Package posts stores posts and the comments attached to them.
package posts

import (
	"context"

	"github.com/dmitrijs2005/gophsocial/internal/server/models"
)

type Repository interface {
	// Create assigns the next post id, starts an empty comment list and
	// appends the post. The caller's ID and Comments are ignored.
	Create(ctx context.Context, post *models.Post) (*models.Post, error)
	// List returns copies of all posts in creation order.
	List(ctx context.Context) ([]models.Post, error)
	// AddComment appends comment to the post with the given id. It returns
	// common.ErrorNotFound, and changes nothing, when no such post exists.
	AddComment(ctx context.Context, postID int64, comment *models.Comment) (*models.Comment, error)
}

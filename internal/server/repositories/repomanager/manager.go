// Package repomanager vends the repositories the services work with.
package repomanager

import (
	"github.com/dmitrijs2005/gophsocial/internal/server/repositories/posts"
	"github.com/dmitrijs2005/gophsocial/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users() users.Repository
	Posts() posts.Repository
}

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/gophsocial/internal/common"
	"github.com/dmitrijs2005/gophsocial/internal/server/models"
	"github.com/dmitrijs2005/gophsocial/internal/server/repositories/posts"
	"github.com/dmitrijs2005/gophsocial/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophsocial/internal/server/repositories/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- fakes ---

type fakeUsersRepo struct {
	createErr error
	listErr   error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	return nil, f.createErr
}

func (f *fakeUsersRepo) List(ctx context.Context) ([]models.User, error) {
	return nil, f.listErr
}

type fakePostsRepo struct {
	err error
}

func (f *fakePostsRepo) Create(ctx context.Context, p *models.Post) (*models.Post, error) {
	return nil, f.err
}

func (f *fakePostsRepo) List(ctx context.Context) ([]models.Post, error) {
	return nil, f.err
}

func (f *fakePostsRepo) AddComment(ctx context.Context, id int64, c *models.Comment) (*models.Comment, error) {
	return nil, f.err
}

type fakeRepoManager struct {
	u users.Repository
	p posts.Repository
}

func (m *fakeRepoManager) Users() users.Repository { return m.u }
func (m *fakeRepoManager) Posts() posts.Repository { return m.p }

// --- users ---

func TestUserService_AddAndListSummaries(t *testing.T) {
	s := NewUserService(repomanager.NewInMemoryRepositoryManager())
	ctx := context.Background()

	in := &models.User{Name: "Ana", Surname: "Gómez", Email: "ana@example.com", Password: "pw", IsAdmin: true}
	got, err := s.Add(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, *in, *got)

	_, err = s.Add(ctx, &models.User{})
	require.NoError(t, err)

	lines, err := s.ListSummaries(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ana Gómez - ana@example.com", "  - "}, lines)
}

func TestUserService_Seed(t *testing.T) {
	s := NewUserService(repomanager.NewInMemoryRepositoryManager())
	ctx := context.Background()

	require.NoError(t, s.Seed(ctx))

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[0].IsAdmin)
	assert.Equal(t, "admin@example.com", list[0].Email)
	assert.False(t, list[1].IsAdmin)
	assert.Equal(t, "Jorje Pérez - jorje.elcurioso@example.com", list[1].Summary())
}

func TestUserService_RepoErrorsAreWrapped(t *testing.T) {
	boom := errors.New("boom")
	s := NewUserService(&fakeRepoManager{u: &fakeUsersRepo{createErr: boom, listErr: boom}})
	ctx := context.Background()

	_, err := s.Add(ctx, &models.User{})
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "error creating user")

	_, err = s.ListSummaries(ctx)
	require.ErrorIs(t, err, boom)

	err = s.Seed(ctx)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "admin@example.com")
}

// --- posts ---

func TestPostService_Scenario(t *testing.T) {
	s := NewPostService(repomanager.NewInMemoryRepositoryManager())
	ctx := context.Background()

	p, err := s.Create(ctx, "hello", nil)
	require.NoError(t, err)
	assert.Equal(t, models.Post{ID: 1, Text: "hello", Comments: []models.Comment{}}, *p)

	c, err := s.AddComment(ctx, 1, "ana", "hi")
	require.NoError(t, err)
	assert.Equal(t, models.Comment{Author: "ana", Text: "hi"}, *c)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, []models.Comment{{Author: "ana", Text: "hi"}}, list[0].Comments)

	_, err = s.AddComment(ctx, 99, "ana", "hi")
	require.ErrorIs(t, err, common.ErrorNotFound)

	list, _ = s.List(ctx)
	assert.Len(t, list[0].Comments, 1)
}

func TestPostService_SequentialIDs(t *testing.T) {
	s := NewPostService(repomanager.NewInMemoryRepositoryManager())
	ctx := context.Background()

	a, err := s.Create(ctx, "a", nil)
	require.NoError(t, err)
	b, err := s.Create(ctx, "", []byte{0xff})
	require.NoError(t, err)

	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(2), b.ID)
	assert.Equal(t, []byte{0xff}, b.Image)
}

func TestPostService_RepoErrorsAreWrapped(t *testing.T) {
	boom := errors.New("boom")
	s := NewPostService(&fakeRepoManager{p: &fakePostsRepo{err: boom}})
	ctx := context.Background()

	_, err := s.Create(ctx, "x", nil)
	require.ErrorIs(t, err, boom)

	_, err = s.List(ctx)
	require.ErrorIs(t, err, boom)

	_, err = s.AddComment(ctx, 1, "a", "b")
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "error adding comment")
}

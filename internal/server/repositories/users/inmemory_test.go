package users

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/dmitrijs2005/gophsocial/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRepository_CreateAndList(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	in := &models.User{Name: "Ana", Surname: "Gómez", Email: "ana@example.com", Password: "x"}
	got, err := repo.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, *in, *got)

	// the stored record is detached from the caller's pointer
	in.Name = "mutated"

	_, err = repo.Create(ctx, &models.User{Name: "Bob", Email: "bob@example.com", IsAdmin: true})
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Ana", list[0].Name)
	assert.Equal(t, "Bob", list[1].Name)
	assert.True(t, list[1].IsAdmin)
}

func TestInMemoryRepository_DuplicatesAllowed(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	u := &models.User{Name: "Same", Email: "same@example.com"}
	for j := 0; j < 3; j++ {
		_, err := repo.Create(ctx, u)
		require.NoError(t, err)
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestInMemoryRepository_ListIsSnapshot(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	_, _ = repo.Create(ctx, &models.User{Name: "A"})
	list, _ := repo.List(ctx)
	list[0].Name = "changed"

	again, _ := repo.List(ctx)
	assert.Equal(t, "A", again[0].Name)
}

func TestInMemoryRepository_ConcurrentCreate(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.Create(ctx, &models.User{Name: fmt.Sprint(i)})
		}()
	}
	wg.Wait()

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, n)
}

package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"raffler/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSellerRepository(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewSellerRepository(testDB.DB)
	ctx := context.Background()

	t.Run("seller not found", func(t *testing.T) {
		seller, err := repo.GetByName(ctx, "nobody")
		require.NoError(t, err)
		assert.Nil(t, seller)

		seller, err = repo.GetByID(ctx, 999999)
		require.NoError(t, err)
		assert.Nil(t, seller)
	})

	t.Run("get or create returns the same row", func(t *testing.T) {
		first, err := repo.GetOrCreate(ctx, "Ana")
		require.NoError(t, err)
		require.NotNil(t, first)
		assert.Equal(t, "Ana", first.Name)
		assert.False(t, first.CreatedAt.IsZero())

		second, err := repo.GetOrCreate(ctx, "Ana")
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, first.CreatedAt, second.CreatedAt)

		byID, err := repo.GetByID(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ana", byID.Name)
	})

	t.Run("concurrent first logins create one seller", func(t *testing.T) {
		const workers = 8
		ids := make([]int64, workers)
		errs := make([]error, workers)

		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				seller, err := repo.GetOrCreate(ctx, "Concurrente")
				errs[i] = err
				if seller != nil {
					ids[i] = seller.ID
				}
			}(i)
		}
		wg.Wait()

		for i := 0; i < workers; i++ {
			require.NoError(t, errs[i])
			assert.Equal(t, ids[0], ids[i])
		}

		var count int
		err := testDB.DB.QueryRow(ctx, `SELECT COUNT(*) FROM sellers WHERE name = $1`, "Concurrente").Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("search is case-insensitive substring", func(t *testing.T) {
		for _, name := range []string{"Mariana", "JUAN", "Juana", "100%_real"} {
			_, err := repo.GetOrCreate(ctx, name)
			require.NoError(t, err)
		}

		sellers, err := repo.Search(ctx, "juan", 10)
		require.NoError(t, err)
		names := make([]string, len(sellers))
		for i, s := range sellers {
			names[i] = s.Name
		}
		assert.Equal(t, []string{"JUAN", "Juana"}, names)

		sellers, err = repo.Search(ctx, "%_", 10)
		require.NoError(t, err)
		require.Len(t, sellers, 1)
		assert.Equal(t, "100%_real", sellers[0].Name)

		sellers, err = repo.Search(ctx, "zzz", 10)
		require.NoError(t, err)
		assert.Empty(t, sellers)
	})

	t.Run("search respects limit", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			_, err := repo.GetOrCreate(ctx, fmt.Sprintf("limit-%d", i))
			require.NoError(t, err)
		}

		sellers, err := repo.Search(ctx, "limit-", 3)
		require.NoError(t, err)
		assert.Len(t, sellers, 3)
	})
}

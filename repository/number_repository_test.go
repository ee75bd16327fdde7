package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"raffler/domain"
	"raffler/domain/entities"
	"raffler/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberRepository(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewNumberRepository(testDB.DB)
	ctx := context.Background()

	seller := testutil.CreateSeller(t, testDB.DB, "seller")
	raffle := testutil.CreateRaffle(t, testDB.DB, seller.ID, 100, "10")
	otherRaffle := testutil.CreateRaffle(t, testDB.DB, seller.ID, 100, "10")

	t.Run("create and lookup", func(t *testing.T) {
		number := testutil.NewNumber(raffle.ID, seller.ID, "001", "Pedro Gómez")
		require.NoError(t, repo.Create(ctx, number))
		assert.NotZero(t, number.ID)

		byID, err := repo.GetByID(ctx, number.ID)
		require.NoError(t, err)
		require.NotNil(t, byID)
		assert.Equal(t, "Pedro Gómez", byID.BuyerName)

		byValue, err := repo.GetByRaffleAndNumber(ctx, raffle.ID, "001")
		require.NoError(t, err)
		require.NotNil(t, byValue)
		assert.Equal(t, number.ID, byValue.ID)

		missing, err := repo.GetByRaffleAndNumber(ctx, otherRaffle.ID, "001")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("duplicate number in same raffle conflicts", func(t *testing.T) {
		err := repo.Create(ctx, testutil.NewNumber(raffle.ID, seller.ID, "001", "Otra Persona"))
		assert.ErrorIs(t, err, domain.ErrConflict)

		// Same number in a different raffle is fine
		require.NoError(t, repo.Create(ctx, testutil.NewNumber(otherRaffle.ID, seller.ID, "001", "Otra Persona")))
	})

	t.Run("concurrent registrations of one number have a single winner", func(t *testing.T) {
		const workers = 6
		results := make([]error, workers)

		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i] = repo.Create(ctx, testutil.NewNumber(raffle.ID, seller.ID, "777", fmt.Sprintf("buyer-%d", i)))
			}(i)
		}
		wg.Wait()

		wins := 0
		for _, err := range results {
			if err == nil {
				wins++
				continue
			}
			assert.ErrorIs(t, err, domain.ErrConflict)
		}
		assert.Equal(t, 1, wins)
	})

	t.Run("search filters and pages newest first", func(t *testing.T) {
		searchRaffle := testutil.CreateRaffle(t, testDB.DB, seller.ID, 100, "10")
		buyers := []string{"Ana Torres", "Bruno Díaz", "ana maría", "Carlos"}
		created := make([]*entities.Number, 0, len(buyers))
		for i, buyer := range buyers {
			n := testutil.NewNumber(searchRaffle.ID, seller.ID, fmt.Sprintf("%02d", i+10), buyer)
			require.NoError(t, repo.Create(ctx, n))
			created = append(created, n)
		}

		all, err := repo.Search(ctx, searchRaffle.ID, "", 10, 0)
		require.NoError(t, err)
		require.Len(t, all, 4)
		assert.Equal(t, created[3].ID, all[0].ID)
		assert.Equal(t, created[0].ID, all[3].ID)

		anas, err := repo.Search(ctx, searchRaffle.ID, "ANA", 10, 0)
		require.NoError(t, err)
		require.Len(t, anas, 2)
		assert.Equal(t, created[2].ID, anas[0].ID)
		assert.Equal(t, created[0].ID, anas[1].ID)

		byNumber, err := repo.Search(ctx, searchRaffle.ID, "11", 10, 0)
		require.NoError(t, err)
		require.Len(t, byNumber, 1)
		assert.Equal(t, "Bruno Díaz", byNumber[0].BuyerName)

		byContact, err := repo.Search(ctx, searchRaffle.ID, "carlos@", 10, 0)
		require.NoError(t, err)
		assert.Len(t, byContact, 1)

		page, err := repo.Search(ctx, searchRaffle.ID, "", 2, 2)
		require.NoError(t, err)
		require.Len(t, page, 2)
		assert.Equal(t, created[1].ID, page[0].ID)

		count, err := repo.CountByRaffle(ctx, searchRaffle.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(4), count)

		listed, err := repo.GetByRaffle(ctx, searchRaffle.ID)
		require.NoError(t, err)
		assert.Equal(t, all, listed)
	})
}

package repository

import (
	"context"
	"testing"

	"raffler/domain/entities"
	"raffler/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatMessageRepository(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewChatMessageRepository(testDB.DB)
	ctx := context.Background()

	seller := testutil.CreateSeller(t, testDB.DB, "Lucía")
	raffle := testutil.CreateRaffle(t, testDB.DB, seller.ID, 10, "1")

	first := &entities.ChatMessage{RaffleID: raffle.ID, SellerID: seller.ID, Message: "hola"}
	require.NoError(t, repo.Create(ctx, first))
	second := &entities.ChatMessage{RaffleID: raffle.ID, SellerID: 99999, Message: "de un fantasma"}
	require.NoError(t, repo.Create(ctx, second))

	messages, err := repo.GetByRaffle(ctx, raffle.ID)
	require.NoError(t, err)
	require.Len(t, messages, 2)

	assert.Equal(t, first.ID, messages[0].ID)
	assert.Equal(t, "Lucía", messages[0].SellerName)
	assert.Equal(t, "hola", messages[0].Message)

	assert.Equal(t, second.ID, messages[1].ID)
	assert.Equal(t, entities.UnknownSellerName, messages[1].SellerName)

	empty, err := repo.GetByRaffle(ctx, 123456)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

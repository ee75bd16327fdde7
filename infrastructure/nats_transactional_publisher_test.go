package infrastructure

import (
	"context"
	"errors"
	"testing"

	"raffler/domain/events"
	"raffler/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNATSTransactionalPublisher_HoldsEventsUntilFlush(t *testing.T) {
	t.Parallel()

	inner := new(testhelpers.MockEventPublisher)
	publisher := NewNATSTransactionalPublisher(inner)

	first := events.NumberRegisteredEvent{NumberID: 1, RaffleID: 5, Number: "007"}
	second := events.ChatMessagePostedEvent{MessageID: 2, RaffleID: 5, Message: "sold"}

	require.NoError(t, publisher.Publish(first))
	require.NoError(t, publisher.Publish(second))
	assert.Equal(t, 2, publisher.PendingCount())
	inner.AssertNotCalled(t, "Publish", mock.Anything)

	var order []events.EventType
	inner.On("Publish", mock.Anything).Run(func(args mock.Arguments) {
		order = append(order, args.Get(0).(events.Event).Type())
	}).Return(nil)

	require.NoError(t, publisher.Flush(context.Background()))
	assert.Equal(t, []events.EventType{events.EventTypeNumberRegistered, events.EventTypeChatMessagePosted}, order)
	assert.Equal(t, 0, publisher.PendingCount())
	inner.AssertNumberOfCalls(t, "Publish", 2)
}

func TestNATSTransactionalPublisher_FlushContinuesPastFailures(t *testing.T) {
	t.Parallel()

	inner := new(testhelpers.MockEventPublisher)
	publisher := NewNATSTransactionalPublisher(inner)

	failing := events.RaffleCreatedEvent{RaffleID: 1}
	passing := events.RaffleStateChangedEvent{RaffleID: 1, NewState: "started"}

	inner.On("Publish", failing).Return(errors.New("nats unavailable")).Once()
	inner.On("Publish", passing).Return(nil).Once()

	require.NoError(t, publisher.Publish(failing))
	require.NoError(t, publisher.Publish(passing))

	assert.NoError(t, publisher.Flush(context.Background()))
	assert.Equal(t, 0, publisher.PendingCount())
	inner.AssertExpectations(t)
}

func TestNATSTransactionalPublisher_Discard(t *testing.T) {
	t.Parallel()

	inner := new(testhelpers.MockEventPublisher)
	publisher := NewNATSTransactionalPublisher(inner)

	require.NoError(t, publisher.Publish(events.MembershipRemovedEvent{RaffleID: 3, SellerID: 4}))
	publisher.Discard()
	assert.Equal(t, 0, publisher.PendingCount())

	require.NoError(t, publisher.Flush(context.Background()))
	inner.AssertNotCalled(t, "Publish", mock.Anything)
}

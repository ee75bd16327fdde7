package infrastructure

import (
	"testing"

	"raffler/domain/events"

	"github.com/stretchr/testify/assert"
)

type unscopedEvent struct{}

func (unscopedEvent) Type() events.EventType { return "maintenance" }

func TestEventSubjectMapper(t *testing.T) {
	t.Parallel()

	mapper := NewEventSubjectMapper()

	tests := []struct {
		name  string
		event events.Event
		want  string
	}{
		{
			name:  "number registered",
			event: events.NumberRegisteredEvent{RaffleID: 12},
			want:  "raffles.12.number_registered",
		},
		{
			name:  "chat message",
			event: events.ChatMessagePostedEvent{RaffleID: 3},
			want:  "raffles.3.chat_message_posted",
		},
		{
			name:  "state change",
			event: events.RaffleStateChangedEvent{RaffleID: 7},
			want:  "raffles.7.raffle_state_changed",
		},
		{
			name:  "event without raffle",
			event: unscopedEvent{},
			want:  "raffles.unscoped.maintenance",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, mapper.MapEventToSubject(tt.event))
		})
	}

	assert.Equal(t, "raffles.12.*", mapper.SubjectForRaffle(12))
	assert.Equal(t, []string{"raffles.>"}, mapper.GetAllSubjects())
}

package infrastructure

import (
	"fmt"

	"raffler/domain/events"
)

// subjectRoot prefixes every subject this service publishes to
const subjectRoot = "raffles"

// EventSubjectMapper handles mapping between domain events and NATS subjects.
// Raffle events are published per raffle as raffles.<raffleID>.<event>.
type EventSubjectMapper struct{}

// NewEventSubjectMapper creates a new event subject mapper
func NewEventSubjectMapper() *EventSubjectMapper {
	return &EventSubjectMapper{}
}

// MapEventToSubject converts a domain event to its NATS subject
func (m *EventSubjectMapper) MapEventToSubject(event events.Event) string {
	if raffleEvent, ok := event.(events.RaffleEvent); ok {
		return fmt.Sprintf("%s.%d.%s", subjectRoot, raffleEvent.RaffleKey(), event.Type())
	}
	return fmt.Sprintf("%s.unscoped.%s", subjectRoot, event.Type())
}

// SubjectForRaffle returns the wildcard subject covering every event of one raffle
func (m *EventSubjectMapper) SubjectForRaffle(raffleID int64) string {
	return fmt.Sprintf("%s.%d.*", subjectRoot, raffleID)
}

// GetAllSubjects returns the subjects the domain event stream must capture
func (m *EventSubjectMapper) GetAllSubjects() []string {
	return []string{subjectRoot + ".>"}
}

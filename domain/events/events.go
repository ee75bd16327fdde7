package events

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeRaffleCreated      EventType = "raffle_created"
	EventTypeRaffleStateChanged EventType = "raffle_state_changed"
	EventTypeMembershipAssigned EventType = "membership_assigned"
	EventTypeMembershipRemoved  EventType = "membership_removed"
	EventTypeNumberRegistered   EventType = "number_registered"
	EventTypeChatMessagePosted  EventType = "chat_message_posted"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// RaffleEvent is an event that belongs to a single raffle
type RaffleEvent interface {
	Event
	RaffleKey() int64
}

// RaffleCreatedEvent is published when a raffle and its initial memberships are stored
type RaffleCreatedEvent struct {
	RaffleID        int64  `json:"raffle_id"`
	CreatedBy       int64  `json:"created_by"`
	AmountOfNumbers int    `json:"amount_of_numbers"`
	Price           string `json:"price"`
	MemberCount     int    `json:"member_count"`
}

func (e RaffleCreatedEvent) Type() EventType {
	return EventTypeRaffleCreated
}

func (e RaffleCreatedEvent) RaffleKey() int64 {
	return e.RaffleID
}

// RaffleStateChangedEvent is published when a raffle transitions state
type RaffleStateChangedEvent struct {
	RaffleID    int64  `json:"raffle_id"`
	RequesterID int64  `json:"requester_id"`
	OldState    string `json:"old_state"`
	NewState    string `json:"new_state"`
}

func (e RaffleStateChangedEvent) Type() EventType {
	return EventTypeRaffleStateChanged
}

func (e RaffleStateChangedEvent) RaffleKey() int64 {
	return e.RaffleID
}

// MembershipAssignedEvent is published when a seller is added to a raffle or their role changes
type MembershipAssignedEvent struct {
	MembershipID int64  `json:"membership_id"`
	RaffleID     int64  `json:"raffle_id"`
	SellerID     int64  `json:"seller_id"`
	RequesterID  int64  `json:"requester_id"`
	Role         string `json:"role"`
}

func (e MembershipAssignedEvent) Type() EventType {
	return EventTypeMembershipAssigned
}

func (e MembershipAssignedEvent) RaffleKey() int64 {
	return e.RaffleID
}

// MembershipRemovedEvent is published when a membership row is deleted
type MembershipRemovedEvent struct {
	RaffleID    int64 `json:"raffle_id"`
	SellerID    int64 `json:"seller_id"`
	RequesterID int64 `json:"requester_id"`
}

func (e MembershipRemovedEvent) Type() EventType {
	return EventTypeMembershipRemoved
}

func (e MembershipRemovedEvent) RaffleKey() int64 {
	return e.RaffleID
}

// NumberRegisteredEvent is published when a number is sold
type NumberRegisteredEvent struct {
	NumberID  int64  `json:"number_id"`
	RaffleID  int64  `json:"raffle_id"`
	SellerID  int64  `json:"seller_id"`
	Number    string `json:"number"`
	BuyerName string `json:"buyer_name"`
}

func (e NumberRegisteredEvent) Type() EventType {
	return EventTypeNumberRegistered
}

func (e NumberRegisteredEvent) RaffleKey() int64 {
	return e.RaffleID
}

// ChatMessagePostedEvent is published when a message is appended to a raffle chat
type ChatMessagePostedEvent struct {
	MessageID int64  `json:"message_id"`
	RaffleID  int64  `json:"raffle_id"`
	SellerID  int64  `json:"seller_id"`
	Message   string `json:"message"`
}

func (e ChatMessagePostedEvent) Type() EventType {
	return EventTypeChatMessagePosted
}

func (e ChatMessagePostedEvent) RaffleKey() int64 {
	return e.RaffleID
}

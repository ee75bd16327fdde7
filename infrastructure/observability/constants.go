package observability

// Metric name prefixes
const (
	MetricPrefix = "raffler"
)

// Metric names
const (
	// HTTP metrics
	HTTPRequestsTotal   = MetricPrefix + ".http.requests_total"
	HTTPRequestDuration = MetricPrefix + ".http.request_duration"

	// Domain metrics
	NumbersRegisteredTotal  = MetricPrefix + ".numbers.registered_total"
	ChatMessagesPostedTotal = MetricPrefix + ".chat.messages_posted_total"
	MembershipChangesTotal  = MetricPrefix + ".memberships.changes_total"
	RaffleStateChangesTotal = MetricPrefix + ".raffles.state_changes_total"
	RafflesCreatedTotal     = MetricPrefix + ".raffles.created_total"

	// NATS metrics
	NATSMessagesPublishedTotal = MetricPrefix + ".nats.messages_published_total"
)

// Label keys
const (
	LabelType      = "type"
	LabelEventType = "event_type"
	LabelState     = "state"

	// HTTP labels
	LabelRoute  = "route"
	LabelMethod = "method"
	LabelStatus = "status"
)

// Membership change types
const (
	MembershipChangeAssigned = "assigned"
	MembershipChangeRemoved  = "removed"
)

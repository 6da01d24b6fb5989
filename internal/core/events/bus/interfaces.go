package bus

import "time"

// EventBus is an in-process pub/sub bus.
//
// Handlers subscribe by Event.Type(). Publish delivers synchronously in the
// caller goroutine, so engine code that publishes from inside a mutation sees
// every handler finish before it continues. Handler errors are joined and
// returned from Publish. All methods are safe for concurrent use.
type EventBus interface {
	Publish(event Event) error
	// PublishWithFilters drops the event silently when any filter rejects it.
	PublishWithFilters(event Event, filters ...EventFilter) error
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
	// Unsubscribe is safe to call with nil.
	Unsubscribe(Subscription) error
	// Subscribers counts active subscriptions for eventType.
	Subscribers(eventType string) int
}

// Event is an immutable message. Consumers treat Data as read-only.
type Event interface {
	Type() string
	Source() string
	Timestamp() time.Time
	Data() any
}

type (
	EventHandler func(event Event) error
	EventFilter  func(event Event) bool
)

type Subscription interface {
	ID() string
	EventType() string
	IsActive() bool
	Cancel() error
}

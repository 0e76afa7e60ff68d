package notification

import "context"

// Dispatcher accepts domain events for delivery. Implementations must be
// fire-and-forget: Dispatch never blocks the caller on delivery and
// swallows delivery failures.
type Dispatcher interface {
	Dispatch(ctx context.Context, event Event)
}

// Repository persists dispatched events.
type Repository interface {
	Create(ctx context.Context, event *Event) error
}

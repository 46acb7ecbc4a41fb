package mediator

import "reflect"

// Callback is invoked for every publish a subscriber accepts.
type Callback func(e *Event)

// Predicate decides whether a publish should invoke the subscriber.
type Predicate func(e *Event) bool

// Event is what callbacks and predicates receive.
//
// Context is the value bound at subscription time. Args holds the published values;
// when the publish came through Mediator.Publish the last element is the *Channel
// originally published to.
type Event struct {
	Context any
	Args    []any
}

// Channel returns the channel the value was published to, or nil if the
// publish did not carry one.
func (e *Event) Channel() *Channel {
	if n := len(e.Args); n > 0 {
		if ch, ok := e.Args[n-1].(*Channel); ok {
			return ch
		}
	}
	return nil
}

// Values returns Args without the trailing channel reference.
func (e *Event) Values() []any {
	if e.Channel() != nil {
		return e.Args[:len(e.Args)-1]
	}
	return e.Args
}

// sameCallback compares two callbacks by code pointer. Closures created from the
// same function literal share a code pointer and therefore compare equal.
func sameCallback(a, b Callback) bool {
	if a == nil || b == nil {
		return false
	}
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

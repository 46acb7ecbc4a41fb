// Package mediator provides an in-process, synchronous publish/subscribe
// mediator over hierarchical channel namespaces.
//
// Namespaces are delimited paths such as "user:profile:updated". Subscribing
// creates the channels along the path on demand; publishing only resolves
// existing channels and never creates them. After a channel has invoked its own
// subscribers the publish bubbles to every ancestor up to the root channel,
// whose namespace is "".
//
// Basic usage:
//
//	m := mediator.New()
//
//	m.Subscribe("user:created", func(e *mediator.Event) {
//		fmt.Println("new user", e.Values()[0])
//	})
//	m.Subscribe("user", func(e *mediator.Event) {
//		fmt.Println("user event on", e.Channel().Namespace())
//	})
//
//	_ = m.Publish("user:created", "alice")
//
// Subscribers run in list order. WithPriority inserts a subscriber at a given
// index, WithPredicate gates it per publish, and WithCalls (or Once) gives it a
// call budget after which it removes itself. A callback may call
// Channel.StopPropagation through Event.Channel to skip the remaining
// subscribers of that channel; ancestors are still notified.
//
// Callbacks may subscribe, remove and publish re-entrantly. The walk over a
// channel's subscribers tolerates one removal per callback; several removals
// within one callback can cause a subscriber to be skipped for that pass.
//
// The mediator is not safe for concurrent use. Callers publishing from several
// goroutines must serialize access themselves.
//
// Misses (unknown channels or subscribers) are silently ignored unless the
// mediator is created with WithStrict, in which case ErrChannelNotFound and
// ErrSubscriberNotFound are returned. Settings can also be read from the
// environment with LoadConfig and applied with NewFromConfig.
package mediator

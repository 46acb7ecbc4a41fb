package mediator

import (
	"log/slog"
	"strings"

	"github.com/dmitrymomot/mediator/pkg/logger"
)

// DefaultDelimiter separates namespace segments, as in "a:b:c".
const DefaultDelimiter = ":"

// Mediator owns the channel tree and exposes subscribe/publish operations on
// delimited namespaces.
//
// A Mediator is not safe for concurrent use. Delivery is re-entrant: callbacks
// may subscribe, remove and publish on the same Mediator, but calls from
// several goroutines must be serialized by the caller.
type Mediator struct {
	root      *Channel
	delimiter string
	strict    bool
	logger    *slog.Logger
	newID     IDGenerator
	metrics   MetricsCallback
}

// New creates a Mediator with an empty root channel.
func New(opts ...Option) *Mediator {
	m := applyOptions(opts)
	m.root = newChannel("", nil, m.delimiter, m.newID, m.metrics)
	return m
}

// applyOptions returns a Mediator with defaults and opts applied but no tree.
func applyOptions(opts []Option) *Mediator {
	m := &Mediator{
		delimiter: DefaultDelimiter,
		logger:    slog.New(slog.DiscardHandler),
		newID:     UUID,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.logger = m.logger.With(logger.Component("mediator"))
	return m
}

// Root returns the root channel, whose namespace is "".
func (m *Mediator) Root() *Channel { return m.root }

// Delimiter returns the namespace hierarchy delimiter.
func (m *Mediator) Delimiter() string { return m.delimiter }

// GetChannel walks the tree along namespace and returns the deepest channel reached.
//
// With readOnly set, missing segments are not created and the walk stops at
// the deepest existing ancestor, whose namespace is then shorter than the one
// requested. Otherwise missing segments are created.
func (m *Mediator) GetChannel(namespace string, readOnly bool) *Channel {
	ch := m.root
	if namespace == "" {
		return ch
	}

	for _, segment := range strings.Split(namespace, m.delimiter) {
		if !ch.HasChannel(segment) {
			if readOnly {
				break
			}
			ch.AddChannel(segment)
		}
		ch = ch.ReturnChannel(segment)
	}

	return ch
}

// lookup resolves namespace without creating channels and reports whether it
// exists exactly.
func (m *Mediator) lookup(namespace string) (*Channel, bool) {
	ch := m.GetChannel(namespace, true)
	return ch, ch.Namespace() == namespace
}

// Subscribe registers fn on namespace, creating missing channels.
func (m *Mediator) Subscribe(namespace string, fn Callback, opts ...SubscribeOption) *Subscriber {
	ch := m.GetChannel(namespace, false)
	cfg := buildSubscribeConfig(opts)

	sub := ch.AddSubscriber(fn, cfg.options, cfg.context)
	m.logger.Debug("subscribed",
		logger.Namespace(namespace),
		logger.SubscriberID(sub.ID()),
		logger.Priority(sub.options.Priority, sub.options.HasPriority),
	)
	return sub
}

// Once registers fn to run on the first accepted publish only.
func (m *Mediator) Once(namespace string, fn Callback, opts ...SubscribeOption) *Subscriber {
	return m.Subscribe(namespace, fn, append(opts[:len(opts):len(opts)], WithCalls(1))...)
}

// GetSubscriber returns the first subscriber on exactly namespace that matches
// identifier (an id, a callback or a *Subscriber), or nil.
func (m *Mediator) GetSubscriber(identifier any, namespace string) *Subscriber {
	ch, ok := m.lookup(namespace)
	if !ok {
		return nil
	}
	return ch.GetSubscriber(identifier)
}

// Remove removes the subscribers of namespace matching identifier. An empty
// identifier removes all of them. Misses are only reported in strict mode.
func (m *Mediator) Remove(namespace string, identifier any) error {
	ch, ok := m.lookup(namespace)
	if !ok {
		err := m.miss(ErrChannelNotFound)
		m.logger.Debug("remove from unknown channel", logger.Namespace(namespace), logger.Error(err))
		return err
	}

	removed := ch.RemoveSubscriber(identifier)
	m.logger.Debug("removed subscribers",
		logger.Namespace(namespace),
		logger.Removed(removed),
	)

	if removed == 0 && !isEmptyIdentifier(identifier) {
		return m.miss(ErrSubscriberNotFound)
	}
	return nil
}

// Publish delivers values to the subscribers of namespace and then to every
// ancestor up to the root. The resolved *Channel is appended to values, so
// callbacks can reach it via Event.Channel.
//
// Publishing to a namespace that was never subscribed to creates nothing and
// is a no-op; in strict mode it returns ErrChannelNotFound.
func (m *Mediator) Publish(namespace string, values ...any) error {
	ch, ok := m.lookup(namespace)
	if !ok {
		err := m.miss(ErrChannelNotFound)
		m.logger.Debug("publish to unknown channel", logger.Namespace(namespace), logger.Error(err))
		return err
	}

	args := make([]any, 0, len(values)+1)
	args = append(args, values...)
	args = append(args, ch)

	ch.Publish(args...)
	return nil
}

// miss returns err in strict mode and nil otherwise.
func (m *Mediator) miss(err error) error {
	if m.strict {
		return err
	}
	return nil
}

// On is an alias for Subscribe.
func (m *Mediator) On(namespace string, fn Callback, opts ...SubscribeOption) *Subscriber {
	return m.Subscribe(namespace, fn, opts...)
}

// Bind is an alias for Subscribe.
func (m *Mediator) Bind(namespace string, fn Callback, opts ...SubscribeOption) *Subscriber {
	return m.Subscribe(namespace, fn, opts...)
}

// Emit is an alias for Publish.
func (m *Mediator) Emit(namespace string, values ...any) error {
	return m.Publish(namespace, values...)
}

// Trigger is an alias for Publish.
func (m *Mediator) Trigger(namespace string, values ...any) error {
	return m.Publish(namespace, values...)
}

// Off is an alias for Remove.
func (m *Mediator) Off(namespace string, identifier any) error {
	return m.Remove(namespace, identifier)
}

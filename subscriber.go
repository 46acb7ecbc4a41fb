package mediator

// Options controls how a subscriber is invoked.
type Options struct {
	// Priority is the desired position in the channel's invocation order; lower runs earlier.
	Priority    int
	HasPriority bool

	// Predicate, if set, must return true for the callback to run.
	Predicate Predicate

	// Calls is the remaining invocation budget when Limited is true.
	Calls   int
	Limited bool
}

// SubscribeOption configures a subscriber.
type SubscribeOption func(*subscribeConfig)

type subscribeConfig struct {
	options Options
	context any
}

func buildSubscribeConfig(opts []SubscribeOption) subscribeConfig {
	var cfg subscribeConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithPriority places the subscriber at the given index of the invocation order.
func WithPriority(priority int) SubscribeOption {
	return func(c *subscribeConfig) {
		c.options.Priority = priority
		c.options.HasPriority = true
	}
}

// WithPredicate gates the callback behind fn.
func WithPredicate(fn Predicate) SubscribeOption {
	return func(c *subscribeConfig) {
		c.options.Predicate = fn
	}
}

// WithCalls limits how many times the callback runs before the subscriber removes itself.
func WithCalls(n int) SubscribeOption {
	return func(c *subscribeConfig) {
		c.options.Calls = n
		c.options.Limited = true
	}
}

// WithContext binds v as Event.Context for every invocation.
func WithContext(v any) SubscribeOption {
	return func(c *subscribeConfig) {
		c.context = v
	}
}

// Subscriber is a registered callback together with its options and context.
type Subscriber struct {
	id      string
	fn      Callback
	options Options
	context any

	// channel currently holding the subscriber, used to forward priority changes.
	channel *Channel
}

func newSubscriber(id string, fn Callback, options Options, context any) *Subscriber {
	return &Subscriber{
		id:      id,
		fn:      fn,
		options: options,
		context: context,
	}
}

// ID returns the identifier assigned at creation.
func (s *Subscriber) ID() string { return s.id }

// Callback returns the subscribed function.
func (s *Subscriber) Callback() Callback { return s.fn }

// Options returns a copy of the current options.
func (s *Subscriber) Options() Options { return s.options }

// Context returns the value bound as Event.Context.
func (s *Subscriber) Context() any { return s.context }

// Channel returns the channel holding the subscriber, or nil once it was removed.
func (s *Subscriber) Channel() *Channel { return s.channel }

// Update describes a change to an existing subscriber.
// Nil fields leave the current value untouched. Any non-nil Context replaces
// the old one, including zero values such as 0 or "".
type Update struct {
	Callback Callback
	Context  any
	// Options replaces the whole option set when non-nil.
	Options []SubscribeOption
}

// Update applies u. When the resulting options carry a priority and the
// subscriber is attached to a channel, it is moved to that position.
func (s *Subscriber) Update(u Update) {
	if u.Callback != nil {
		s.fn = u.Callback
	}
	if u.Context != nil {
		s.context = u.Context
	}
	if u.Options != nil {
		cfg := buildSubscribeConfig(u.Options)
		s.options = cfg.options
		if cfg.context != nil && u.Context == nil {
			s.context = cfg.context
		}
	}

	if s.channel != nil && s.options.HasPriority {
		s.channel.SetPriority(s.id, s.options.Priority)
	}
}

// matches reports whether identifier names this subscriber: an id string,
// the subscribed callback, or the *Subscriber itself.
func (s *Subscriber) matches(identifier any) bool {
	switch v := identifier.(type) {
	case string:
		return v != "" && v == s.id
	case Callback:
		return sameCallback(s.fn, v)
	case func(*Event):
		return sameCallback(s.fn, v)
	case *Subscriber:
		return v == s
	default:
		return false
	}
}

func (s *Subscriber) shouldCall(e *Event) bool {
	if s.options.Predicate == nil {
		return true
	}
	return s.options.Predicate(e)
}

package mediator

import "slices"

// MetricsCallback is notified with a channel's namespace and its subscriber
// count after every change to that channel's subscriber list.
type MetricsCallback func(namespace string, subscriberCount int)

// Channel is a node of the namespace tree. It owns an ordered list of
// subscribers and its child channels.
//
// A Channel is not safe for concurrent use.
type Channel struct {
	namespace   string
	delimiter   string
	subscribers []*Subscriber
	children    map[string]*Channel
	parent      *Channel
	stopped     bool

	newID   IDGenerator
	metrics MetricsCallback
}

func newChannel(namespace string, parent *Channel, delimiter string, newID IDGenerator, metrics MetricsCallback) *Channel {
	return &Channel{
		namespace: namespace,
		delimiter: delimiter,
		children:  make(map[string]*Channel),
		parent:    parent,
		newID:     newID,
		metrics:   metrics,
	}
}

// Namespace returns the full path of the channel; the root's is "".
func (c *Channel) Namespace() string { return c.namespace }

// Parent returns the parent channel, nil for the root.
func (c *Channel) Parent() *Channel { return c.parent }

// Subscribers returns the subscribers in invocation order.
func (c *Channel) Subscribers() []*Subscriber {
	return slices.Clone(c.subscribers)
}

// Len returns the number of subscribers.
func (c *Channel) Len() int { return len(c.subscribers) }

// AddSubscriber registers fn and returns the new subscriber.
//
// With a priority the subscriber is inserted at that index, clamped to
// [0, Len()] as measured before insertion; otherwise it is appended.
func (c *Channel) AddSubscriber(fn Callback, options Options, context any) *Subscriber {
	sub := newSubscriber(c.newID(), fn, options, context)

	if options.HasPriority {
		sub.options.Priority = clamp(options.Priority, len(c.subscribers))
		c.subscribers = slices.Insert(c.subscribers, sub.options.Priority, sub)
	} else {
		c.subscribers = append(c.subscribers, sub)
	}

	sub.channel = c
	c.notify()

	return sub
}

// RemoveSubscriber removes every subscriber matching identifier and returns
// how many were removed. An empty identifier (nil or "") clears the channel.
//
// Clearing leaves the removed subscribers' Channel() back-references in place.
func (c *Channel) RemoveSubscriber(identifier any) int {
	if isEmptyIdentifier(identifier) {
		n := len(c.subscribers)
		c.subscribers = nil
		c.notify()
		return n
	}

	removed := 0
	for x := len(c.subscribers) - 1; x >= 0; x-- {
		if c.subscribers[x].matches(identifier) {
			c.subscribers[x].channel = nil
			c.subscribers = slices.Delete(c.subscribers, x, x+1)
			removed++
		}
	}
	if removed > 0 {
		c.notify()
	}
	return removed
}

// SetPriority moves the first subscriber matching identifier to index priority.
// Unknown identifiers are ignored. The index is not clamped to the list the way
// AddSubscriber does; it is only bounded to stay inside the slice.
// Negative indexes move the subscriber to the front.
func (c *Channel) SetPriority(identifier any, priority int) {
	idx := slices.IndexFunc(c.subscribers, func(s *Subscriber) bool {
		return s.matches(identifier)
	})
	if idx < 0 {
		return
	}

	sub := c.subscribers[idx]
	c.subscribers = slices.Delete(c.subscribers, idx, idx+1)
	c.subscribers = slices.Insert(c.subscribers, clamp(priority, len(c.subscribers)), sub)
}

// GetSubscriber returns the first subscriber matching identifier, or nil.
func (c *Channel) GetSubscriber(identifier any) *Subscriber {
	for _, sub := range c.subscribers {
		if sub.matches(identifier) {
			return sub
		}
	}
	return nil
}

// AddChannel returns the child for the given path segment, creating it if absent.
func (c *Channel) AddChannel(name string) *Channel {
	if child, ok := c.children[name]; ok {
		return child
	}

	namespace := name
	if c.namespace != "" {
		namespace = c.namespace + c.delimiter + name
	}

	child := newChannel(namespace, c, c.delimiter, c.newID, c.metrics)
	c.children[name] = child
	return child
}

// HasChannel reports whether a child exists for the segment.
func (c *Channel) HasChannel(name string) bool {
	_, ok := c.children[name]
	return ok
}

// ReturnChannel returns the child for the segment, or nil.
func (c *Channel) ReturnChannel(name string) *Channel {
	return c.children[name]
}

// StopPropagation suppresses the remaining subscribers of the publish pass
// currently running on this channel. Ancestors still receive the publish.
func (c *Channel) StopPropagation() {
	c.stopped = true
}

// Publish invokes the channel's subscribers in order with args, then forwards
// args to the parent channel.
//
// Subscribers may add or remove subscribers, including themselves, and publish
// again from inside their callback. The walk compensates for exactly one
// removal at or before the current position per invocation; several removals
// during a single callback can make the walk skip a subscriber.
func (c *Channel) Publish(args ...any) {
	for x := 0; x < len(c.subscribers); x++ {
		if c.stopped {
			continue
		}

		sub := c.subscribers[x]
		before := len(c.subscribers)

		e := &Event{Context: sub.context, Args: args}
		if !sub.shouldCall(e) {
			continue
		}

		// Drop exhausted subscribers before the call so a nested publish
		// to this channel does not reach them again.
		if sub.options.Limited {
			sub.options.Calls--
			if sub.options.Calls < 1 {
				c.RemoveSubscriber(sub)
			}
		}

		if sub.fn != nil {
			sub.fn(e)
		}

		after := len(c.subscribers)
		if after == before-1 && (x >= after || c.subscribers[x] != sub) {
			x--
		}
	}

	if c.parent != nil {
		c.parent.Publish(args...)
	}

	c.stopped = false
}

func (c *Channel) notify() {
	if c.metrics != nil {
		c.metrics(c.namespace, len(c.subscribers))
	}
}

func clamp(idx, n int) int {
	return min(max(idx, 0), n)
}

func isEmptyIdentifier(identifier any) bool {
	switch v := identifier.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case Callback:
		return v == nil
	case func(*Event):
		return v == nil
	case *Subscriber:
		return v == nil
	default:
		return false
	}
}

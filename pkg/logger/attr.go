package logger

import (
	"log/slog"
	"strconv"
)

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Namespace records a channel namespace under the key "namespace".
// The root channel logs as an empty string.
func Namespace(ns string) slog.Attr {
	return slog.String("namespace", ns)
}

// SubscriberID records the subscriber identifier under the key "subscriber_id".
// If id is empty, it returns an empty Attr.
func SubscriberID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("subscriber_id", id)
}

// Priority records a subscriber priority under the key "priority".
// If the subscriber has no priority, it returns an empty Attr.
func Priority(p int, ok bool) slog.Attr {
	if !ok {
		return slog.Attr{}
	}
	return slog.Int("priority", p)
}

// Removed records how many subscribers were removed under the key "removed".
func Removed(n int) slog.Attr {
	return slog.Int("removed", n)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

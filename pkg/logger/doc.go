// Package logger builds *slog.Logger values with functional options and
// provides attribute constructors shared by the mediator.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the
// configured Format, applies the minimum level and attaches static
// attributes.
//
// # Usage
//
//	log := logger.New(logger.WithDevelopment("orders"))
//	m := mediator.New(mediator.WithLogger(log))
//
// Option helpers:
//
//   • WithDevelopment / WithProduction – text+debug or json+info defaults.
//   • WithFormat / WithTextFormatter / WithJSONFormatter – override output format.
//   • WithLevel – set a custom slog.Level.
//   • WithOutput – write somewhere other than stdout.
//   • WithAttr – attach static attributes.
//
// Attribute helpers (Namespace, SubscriberID, Priority, Removed, Component,
// Error, Errors) keep key names consistent. Error, SubscriberID and
// Priority return an empty Attr for absent values so callers never need a
// nil check:
//
//	log.Debug("subscribed", logger.SubscriberID(id), logger.Priority(p, ok))
package logger

/*
Package observability turns controller hooks into metrics and logs.

Metrics registers Prometheus collectors and exposes them as domain.Hooks;
LogHooks does the same for a slog.Logger. Merge combines several hook sets so a
host can wire both into one Builder.
*/
package observability

package logger

import "log/slog"

// Kind records the category of a failure under the key "kind".
// If kind is nil, it returns an empty Attr.
func Kind(kind error) slog.Attr {
	if kind == nil {
		return slog.Attr{}
	}
	return slog.String("kind", kind.Error())
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

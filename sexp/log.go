package sexp

import (
	"log/slog"
)

// Slog wraps a Node as a slog.LogValuer to not render expression strings
// unless they definitely need to be logged
func Slog(n Node) slog.LogValuer {
	return nodeLogValuer{n}
}

type nodeLogValuer struct{ Node }

func (l nodeLogValuer) LogValue() slog.Value {
	if l.Node == nil {
		return slog.StringValue("<nil>")
	}
	return slog.StringValue(l.Node.String())
}

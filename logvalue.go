//go:build randcompat_logvalue

package randcompat

import (
	"fmt"
	"log/slog"
)

// LogValue renders the adapter for structured loggers.
func (f *Forward[T]) LogValue() slog.Value {
	return logValue("forward", f.Inner)
}

func (f *SecureForward[T]) LogValue() slog.Value {
	return logValue("secure-forward", f.Inner)
}

func (b *Backward[T]) LogValue() slog.Value {
	return logValue("backward", b.Inner)
}

func (b *SecureBackward[T]) LogValue() slog.Value {
	return logValue("secure-backward", b.Inner)
}

func logValue(adapter string, inner any) slog.Value {
	return slog.GroupValue(
		slog.String("adapter", adapter),
		slog.String("type", fmt.Sprintf("%T", inner)),
		slog.Any("inner", inner),
	)
}

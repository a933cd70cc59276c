package log

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"

	sgderrors "github.com/YuminosukeSato/sgdreg/pkg/errors"
)

// ErrFmtHandler is a slog handler that enriches records carrying an error
// under ErrAttrKey. It adds the stacktrace recorded by cockroachdb/errors and,
// unless the record already has one, the ErrorCodeKey derived from the
// error's type.
type ErrFmtHandler struct {
	handler slog.Handler
}

// WrapByErrFmtHandler wraps handler with ErrFmtHandler.
func WrapByErrFmtHandler(handler slog.Handler) slog.Handler {
	return &ErrFmtHandler{
		handler: handler,
	}
}

func (eh *ErrFmtHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return eh.handler.Enabled(ctx, l)
}

func (eh *ErrFmtHandler) Handle(ctx context.Context, r slog.Record) error {
	var (
		err     error
		hasCode bool
	)
	r.Attrs(func(attr slog.Attr) bool {
		switch attr.Key {
		case ErrAttrKey:
			err, _ = attr.Value.Any().(error)
		case ErrorCodeKey:
			hasCode = true
		}
		return true
	})
	if err == nil {
		return eh.handler.Handle(ctx, r)
	}

	if stacktrace := extractStacktrace(err); stacktrace != "" {
		r.AddAttrs(slog.String(StacktraceAttrKey, stacktrace))
	}
	if code := ErrorCodeOf(err); code != "" && !hasCode {
		r.AddAttrs(slog.String(ErrorCodeKey, code))
	}
	return eh.handler.Handle(ctx, r)
}

func (eh *ErrFmtHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ErrFmtHandler{handler: eh.handler.WithAttrs(attrs)}
}

func (eh *ErrFmtHandler) WithGroup(g string) slog.Handler {
	return &ErrFmtHandler{handler: eh.handler.WithGroup(g)}
}

func extractStacktrace(err error) string {
	safeDetails := errors.GetSafeDetails(err).SafeDetails
	if len(safeDetails) > 0 {
		return safeDetails[0]
	}
	return ""
}

// ErrorCodeOf maps the typed errors of pkg/errors onto the ErrorCodeKey
// values. It returns "" for errors without a code.
func ErrorCodeOf(err error) string {
	var (
		resErr   *sgderrors.ResourceError
		dimErr   *sgderrors.DimensionError
		valErr   *sgderrors.ValidationError
		valueErr *sgderrors.ValueError
		numErr   *sgderrors.NumericalInstabilityError
	)
	switch {
	case errors.As(err, &resErr):
		return ErrorResourceUnavailable
	case errors.As(err, &dimErr):
		return ErrorArityMismatch
	case errors.As(err, &valErr), errors.As(err, &valueErr):
		return ErrorInvalidInput
	case errors.As(err, &numErr):
		return ErrorNumerical
	default:
		return ""
	}
}

package ingest

import "errors"

// Fatal errors. Per-line problems are never returned; they land in Batch.Rejected.
var (
	ErrUnsupportedMediaType = errors.New("uploaded file must be a plain text document")
	ErrStreamRead           = errors.New("read upload stream")
	ErrSourceConsumed       = errors.New("upload stream already consumed")
)

// Error kinds reported to callers that need a stable string (JSON, CLI exit output).
const (
	KindInvalidContentType = "invalid-content-type"
	KindStreamReadFailure  = "stream-read-failure"
)

// Kind returns the stable kind string for a fatal parser error, or "" if err
// did not come from the parser.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrUnsupportedMediaType):
		return KindInvalidContentType
	case errors.Is(err, ErrStreamRead), errors.Is(err, ErrSourceConsumed):
		return KindStreamReadFailure
	default:
		return ""
	}
}

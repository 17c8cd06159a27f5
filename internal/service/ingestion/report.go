package ingestion

import (
	"cmp"
	"maps"
	"slices"

	"github.com/google/uuid"

	"github.com/aidenliw/msl-mohawk/internal/domain"
)

// Reason given for a key line whose product is not in the catalog.
const reasonUnknownProduct = "unknown product"

// RejectedLine is one input line that was not stored.
type RejectedLine struct {
	// Line is the 1-based line number in the uploaded file.
	Line   int    `json:"line"`
	Text   string `json:"text"`
	Reason string `json:"reason"`
}

// Report summarises one processed upload.
// Accepted + len(Rejected) always equals Lines.
type Report struct {
	UploadID uuid.UUID         `json:"upload_id"`
	Kind     domain.UploadKind `json:"kind"`
	FileName string            `json:"file_name"`
	DryRun   bool              `json:"dry_run"`

	Lines     int `json:"lines"`
	Accepted  int `json:"accepted"`
	Persisted int `json:"persisted"`
	// Skipped counts accepted lines that were already stored.
	Skipped  int            `json:"skipped"`
	Rejected []RejectedLine `json:"rejected"`
}

func newReport(kind domain.UploadKind, in Input, lines int) *Report {
	return &Report{
		Kind:     kind,
		FileName: in.fileName(),
		DryRun:   in.DryRun,
		Lines:    lines,
		Rejected: []RejectedLine{},
	}
}

// addRejected copies the parser's rejections in line order.
func (r *Report) addRejected(text, reasons map[int]string) {
	for _, idx := range slices.Sorted(maps.Keys(text)) {
		r.Rejected = append(r.Rejected, RejectedLine{
			Line:   idx + 1,
			Text:   text[idx],
			Reason: reasons[idx],
		})
	}
}

// beginAttempt resets what a storage attempt computes, so a transaction that
// is run again starts from the parser's outcome.
func (r *Report) beginAttempt(accepted int, parsed []RejectedLine) {
	r.Accepted = accepted
	r.Persisted = 0
	r.Skipped = 0
	r.Rejected = slices.Clone(parsed)
}

func (r *Report) sortRejected() {
	slices.SortFunc(r.Rejected, func(a, b RejectedLine) int {
		return cmp.Compare(a.Line, b.Line)
	})
}

func (r *Report) upload() domain.Upload {
	return domain.Upload{
		Kind:      r.Kind,
		FileName:  r.FileName,
		Accepted:  r.Accepted,
		Persisted: r.Persisted,
		Rejected:  len(r.Rejected),
	}
}

package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aidenliw/msl-mohawk/internal/domain"
	"github.com/aidenliw/msl-mohawk/internal/ingest"
	"github.com/aidenliw/msl-mohawk/internal/service/ingestion"
)

// maxFormMemory is how much of a multipart form is buffered in memory;
// larger files spill to temporary files.
const maxFormMemory = 8 << 20

type ingestService interface {
	Import(ctx context.Context, kind domain.UploadKind, in ingestion.Input) (*ingestion.Report, error)
}

// UploadHandler accepts roster, catalog and key files.
type UploadHandler struct {
	svc      ingestService
	maxBytes int64
	log      *slog.Logger
}

// NewUploadHandler creates an UploadHandler. Request bodies above maxBytes
// are refused with 413.
func NewUploadHandler(svc ingestService, maxBytes int64, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{svc: svc, maxBytes: maxBytes, log: logger.With("handler", "upload")}
}

// Upload processes one file and returns the ingestion report. Rejected
// lines do not fail the request; they are listed in the report.
// POST /admin/uploads/{kind}  multipart fields: file, delimiter, dry_run
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	kind, err := domain.ParseUploadKind(r.PathValue("kind"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if r.ContentLength > h.maxBytes {
		writeError(w, http.StatusRequestEntityTooLarge, "upload too large")
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	if err := r.ParseMultipartForm(min(h.maxBytes, maxFormMemory)); err != nil {
		var tooBig *http.MaxBytesError
		switch {
		case errors.As(err, &tooBig):
			writeError(w, http.StatusRequestEntityTooLarge, "upload too large")
		case errors.Is(err, http.ErrNotMultipart):
			writeError(w, http.StatusBadRequest, "multipart form required")
		default:
			writeError(w, http.StatusBadRequest, "invalid multipart form")
		}
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	in := ingestion.Input{
		Delimiter: r.FormValue("delimiter"),
	}
	if files := r.MultipartForm.File["file"]; len(files) > 0 {
		in.Source = ingest.FileHeaderSource{Header: files[0]}
		in.FileName = files[0].Filename
	}
	if v := r.FormValue("dry_run"); v != "" {
		dryRun, err := strconv.ParseBool(v)
		if err != nil {
			handleError(w, r, h.log, domain.NewValidationError("dry_run", "must be a boolean"))
			return
		}
		in.DryRun = dryRun
	}

	report, err := h.svc.Import(r.Context(), kind, in)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

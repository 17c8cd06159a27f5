package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/aidenliw/msl-mohawk/internal/domain"
	"github.com/aidenliw/msl-mohawk/internal/ingest"
	"github.com/aidenliw/msl-mohawk/internal/service/ingestion"
)

// multipartUpload builds a form with a "file" part of the given type plus
// extra text fields.
func multipartUpload(t *testing.T, contentType, body string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="keys.txt"`)
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		t.Fatalf("CreatePart: %v", err)
	}
	if _, err := io.WriteString(part, body); err != nil {
		t.Fatalf("write part: %v", err)
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("WriteField: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func newUploadRequest(kind string, body io.Reader, contentType string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/admin/uploads/"+kind, body)
	req.Header.Set("Content-Type", contentType)
	req.SetPathValue("kind", kind)
	return req
}

func TestUpload_Success(t *testing.T) {
	t.Parallel()

	var (
		gotKind domain.UploadKind
		gotIn   ingestion.Input
		gotBody string
	)
	svc := &ingestServiceStub{
		importFn: func(ctx context.Context, kind domain.UploadKind, in ingestion.Input) (*ingestion.Report, error) {
			gotKind, gotIn = kind, in

			rc, err := in.Source.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			b, _ := io.ReadAll(rc)
			gotBody = string(b)

			return &ingestion.Report{
				UploadID: uuid.New(),
				Kind:     kind,
				Lines:    2,
				Accepted: 1,
				Rejected: []ingestion.RejectedLine{{Line: 2, Text: "bad", Reason: "missing fields"}},
			}, nil
		},
	}
	h := NewUploadHandler(svc, 1<<20, slog.Default())

	body, ct := multipartUpload(t, "text/plain; charset=utf-8", "Office|AAA\nbad\n", map[string]string{
		"delimiter": "|",
		"dry_run":   "true",
	})
	rec := httptest.NewRecorder()
	h.Upload(rec, newUploadRequest("keys", body, ct))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotKind != domain.UploadKeys {
		t.Errorf("kind = %q, want keys", gotKind)
	}
	if gotIn.FileName != "keys.txt" || gotIn.Delimiter != "|" || !gotIn.DryRun {
		t.Errorf("input = %+v", gotIn)
	}
	if gotIn.Source.ContentType() != "text/plain; charset=utf-8" {
		t.Errorf("source content type = %q", gotIn.Source.ContentType())
	}
	if gotBody != "Office|AAA\nbad\n" {
		t.Errorf("source body = %q", gotBody)
	}

	var resp ingestion.Report
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Accepted != 1 || len(resp.Rejected) != 1 || resp.Rejected[0].Line != 2 {
		t.Errorf("report = %+v", resp)
	}
}

func TestUpload_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		kind       string
		svcErr     error
		fields     map[string]string
		wantStatus int
		wantKind   string
	}{
		{name: "unknown kind", kind: "licenses", wantStatus: http.StatusBadRequest},
		{
			name:       "not plain text",
			kind:       "students",
			svcErr:     fmt.Errorf("ingestion.ImportStudents: %w", ingest.ErrUnsupportedMediaType),
			wantStatus: http.StatusUnsupportedMediaType,
			wantKind:   ingest.KindInvalidContentType,
		},
		{
			name:       "stream failure",
			kind:       "products",
			svcErr:     fmt.Errorf("ingestion.ImportProducts: %w", ingest.ErrStreamRead),
			wantStatus: http.StatusBadRequest,
			wantKind:   ingest.KindStreamReadFailure,
		},
		{
			name:       "bad delimiter",
			kind:       "keys",
			svcErr:     domain.NewValidationError("delimiter", "must be exactly one character"),
			wantStatus: http.StatusBadRequest,
		},
		{name: "bad dry_run", kind: "keys", fields: map[string]string{"dry_run": "maybe"}, wantStatus: http.StatusBadRequest},
		{name: "storage failure", kind: "keys", svcErr: fmt.Errorf("db down"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &ingestServiceStub{
				importFn: func(ctx context.Context, kind domain.UploadKind, in ingestion.Input) (*ingestion.Report, error) {
					if tt.svcErr == nil {
						t.Error("service should not be called")
						return &ingestion.Report{}, nil
					}
					return nil, tt.svcErr
				},
			}
			h := NewUploadHandler(svc, 1<<20, slog.Default())

			body, ct := multipartUpload(t, "text/plain", "x\n", tt.fields)
			rec := httptest.NewRecorder()
			h.Upload(rec, newUploadRequest(tt.kind, body, ct))

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
			var resp errorResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Kind != tt.wantKind {
				t.Errorf("kind = %q, want %q", resp.Kind, tt.wantKind)
			}
		})
	}
}

func TestUpload_ValidationFieldsInBody(t *testing.T) {
	t.Parallel()

	svc := &ingestServiceStub{
		importFn: func(ctx context.Context, kind domain.UploadKind, in ingestion.Input) (*ingestion.Report, error) {
			return nil, in.Validate()
		},
	}
	h := NewUploadHandler(svc, 1<<20, slog.Default())

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("delimiter", ";") //nolint:errcheck
	mw.Close()                      //nolint:errcheck

	rec := httptest.NewRecorder()
	h.Upload(rec, newUploadRequest("students", &buf, mw.FormDataContentType()))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	var resp errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Fields) != 1 || resp.Fields[0].Field != "file" {
		t.Errorf("fields = %+v", resp.Fields)
	}
}

func TestUpload_TooLarge(t *testing.T) {
	t.Parallel()

	svc := &ingestServiceStub{
		importFn: func(ctx context.Context, kind domain.UploadKind, in ingestion.Input) (*ingestion.Report, error) {
			t.Error("service should not be called")
			return nil, nil
		},
	}
	h := NewUploadHandler(svc, 256, slog.Default())

	body, ct := multipartUpload(t, "text/plain", strings.Repeat("Office;KEY\n", 100), nil)
	rec := httptest.NewRecorder()
	h.Upload(rec, newUploadRequest("keys", body, ct))

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected status 413, got %d", rec.Code)
	}
}

func TestUpload_NotMultipart(t *testing.T) {
	t.Parallel()

	h := NewUploadHandler(&ingestServiceStub{}, 1<<20, slog.Default())

	rec := httptest.NewRecorder()
	h.Upload(rec, newUploadRequest("keys", strings.NewReader("Office;KEY\n"), "text/plain"))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
}

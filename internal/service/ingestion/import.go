package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/aidenliw/msl-mohawk/internal/config"
	"github.com/aidenliw/msl-mohawk/internal/domain"
	"github.com/aidenliw/msl-mohawk/internal/ingest"
	"github.com/aidenliw/msl-mohawk/pkg/ctxutil"
)

const defaultChunkSize = 500

// Import dispatches to the importer for kind.
func (s *Service) Import(ctx context.Context, kind domain.UploadKind, in Input) (*Report, error) {
	switch kind {
	case domain.UploadStudents:
		return s.ImportStudents(ctx, in)
	case domain.UploadProducts:
		return s.ImportProducts(ctx, in)
	case domain.UploadKeys:
		return s.ImportKeys(ctx, in)
	default:
		return nil, domain.NewValidationError("kind", fmt.Sprintf("unknown upload kind %q", kind))
	}
}

// ImportStudents registers the eligible students listed in the file.
// Existing students are updated in place.
func (s *Service) ImportStudents(ctx context.Context, in Input) (*Report, error) {
	p, err := s.parser(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("ingestion.ImportStudents: %w", err)
	}

	batch, err := p.ParseStudents()
	if err != nil {
		return nil, fmt.Errorf("ingestion.ImportStudents: %w", err)
	}

	rep := newReport(domain.UploadStudents, in, batch.Lines())
	rep.Accepted = len(batch.Accepted)
	rep.addRejected(batch.Rejected, batch.Reasons)

	if !in.DryRun {
		parsed := slices.Clone(rep.Rejected)
		err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
			rep.beginAttempt(len(batch.Accepted), parsed)
			for chunk := range slices.Chunk(batch.Accepted, s.chunkSize()) {
				n, err := s.students.UpsertBatch(ctx, chunk)
				if err != nil {
					return err
				}
				rep.Persisted += n
			}
			rep.Skipped = rep.Accepted - rep.Persisted
			return s.record(ctx, rep)
		})
		if err != nil {
			return nil, fmt.Errorf("ingestion.ImportStudents: %w", err)
		}
	}

	s.logReport(ctx, rep)
	return rep, nil
}

// ImportProducts adds the products named in the file to the catalog.
// Names already in the catalog are skipped.
func (s *Service) ImportProducts(ctx context.Context, in Input) (*Report, error) {
	p, err := s.parser(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("ingestion.ImportProducts: %w", err)
	}

	batch, err := p.ParseProducts()
	if err != nil {
		return nil, fmt.Errorf("ingestion.ImportProducts: %w", err)
	}

	rep := newReport(domain.UploadProducts, in, batch.Lines())
	rep.Accepted = len(batch.Accepted)
	rep.addRejected(batch.Rejected, batch.Reasons)

	if !in.DryRun {
		parsed := slices.Clone(rep.Rejected)
		err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
			rep.beginAttempt(len(batch.Accepted), parsed)
			for chunk := range slices.Chunk(batch.Accepted, s.chunkSize()) {
				n, err := s.products.UpsertBatch(ctx, chunk)
				if err != nil {
					return err
				}
				rep.Persisted += n
			}
			rep.Skipped = rep.Accepted - rep.Persisted
			return s.record(ctx, rep)
		})
		if err != nil {
			return nil, fmt.Errorf("ingestion.ImportProducts: %w", err)
		}
	}

	s.logReport(ctx, rep)
	return rep, nil
}

// ImportKeys stores the license keys listed in the file. A key naming a
// product that is not in the catalog is reported as rejected; a key that is
// already stored for its product is skipped.
func (s *Service) ImportKeys(ctx context.Context, in Input) (*Report, error) {
	p, err := s.parser(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("ingestion.ImportKeys: %w", err)
	}

	batch, err := p.ParseKeys()
	if err != nil {
		return nil, fmt.Errorf("ingestion.ImportKeys: %w", err)
	}

	rep := newReport(domain.UploadKeys, in, batch.Lines())
	rep.Accepted = len(batch.Accepted)
	rep.addRejected(batch.Rejected, batch.Reasons)

	if !in.DryRun {
		parsed := slices.Clone(rep.Rejected)
		err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
			rep.beginAttempt(len(batch.Accepted), parsed)
			var unknown []int
			offset := 0
			for chunk := range slices.Chunk(batch.Accepted, s.chunkSize()) {
				res, err := s.keys.InsertBatch(ctx, chunk)
				if err != nil {
					return err
				}
				rep.Persisted += res.Inserted
				rep.Skipped += res.Duplicates
				for _, i := range res.UnknownProduct {
					unknown = append(unknown, offset+i)
				}
				offset += len(chunk)
			}

			delim := string(p.Delimiter())
			for _, i := range unknown {
				pair := batch.Accepted[i]
				rep.Rejected = append(rep.Rejected, RejectedLine{
					Line:   batch.AcceptedLines[i] + 1,
					Text:   pair.Product + delim + pair.Key,
					Reason: reasonUnknownProduct,
				})
			}
			rep.Accepted -= len(unknown)
			rep.sortRejected()

			return s.record(ctx, rep)
		})
		if err != nil {
			return nil, fmt.Errorf("ingestion.ImportKeys: %w", err)
		}
	}

	s.logReport(ctx, rep)
	return rep, nil
}

// parser validates the input and opens a parser with the effective delimiter.
func (s *Service) parser(ctx context.Context, in Input) (*ingest.Parser, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	delimiter := s.cfg.DelimiterRune
	if in.Delimiter != "" {
		// Already checked by Validate.
		delimiter, _ = config.ParseDelimiter(in.Delimiter)
	}

	p, err := ingest.New(in.Source, delimiter, ingest.WithMaxLineBytes(s.cfg.MaxLineBytes))
	if err != nil {
		s.log.WarnContext(ctx, "upload refused",
			slog.String("file_name", in.fileName()),
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	return p, nil
}

// record writes the audit row for a stored upload.
func (s *Service) record(ctx context.Context, rep *Report) error {
	u, err := s.uploads.Create(ctx, rep.upload())
	if err != nil {
		return err
	}
	rep.UploadID = u.ID
	return nil
}

func (s *Service) chunkSize() int {
	if s.cfg.ChunkSize > 0 {
		return s.cfg.ChunkSize
	}
	return defaultChunkSize
}

func (s *Service) logReport(ctx context.Context, rep *Report) {
	for _, r := range rep.Rejected {
		s.log.DebugContext(ctx, "line rejected",
			slog.String("kind", string(rep.Kind)),
			slog.Int("line", r.Line),
			slog.String("reason", r.Reason),
		)
	}

	attrs := []any{
		slog.String("kind", string(rep.Kind)),
		slog.String("file_name", rep.FileName),
		slog.Int("lines", rep.Lines),
		slog.Int("accepted", rep.Accepted),
		slog.Int("persisted", rep.Persisted),
		slog.Int("skipped", rep.Skipped),
		slog.Int("rejected", len(rep.Rejected)),
		slog.Bool("dry_run", rep.DryRun),
	}
	if id, ok := ctxutil.UserIDFromCtx(ctx); ok {
		attrs = append(attrs, slog.String("user_id", id.String()))
	}
	s.log.InfoContext(ctx, "upload processed", attrs...)
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aidenliw/msl-mohawk/internal/domain"
	"github.com/aidenliw/msl-mohawk/internal/ingest"
	"github.com/aidenliw/msl-mohawk/internal/service/ingestion"
)

func newIngestCmd(b backend) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Import a plain-text file",
		Long: `Imports one plain-text file. Every line is one record:

  students  id;first name;last name;email
  products  product name
  keys      product;key

Rejected lines are reported with their line number and reason.`,
	}

	for _, kind := range []domain.UploadKind{domain.UploadStudents, domain.UploadProducts, domain.UploadKeys} {
		cmd.AddCommand(newIngestKindCmd(b, kind))
	}
	return cmd
}

func newIngestKindCmd(b backend, kind domain.UploadKind) *cobra.Command {
	var (
		delimiter string
		dryRun    bool
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   string(kind) + " FILE",
		Short: "Import " + string(kind),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd, b)
			if err != nil {
				return err
			}

			svc, _, closeFn, err := b.connect(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer closeFn()

			rep, err := svc.Import(cmd.Context(), kind, ingestion.Input{
				Source:    ingest.FileSource{Path: args[0]},
				Delimiter: delimiter,
				DryRun:    dryRun,
			})
			if err != nil {
				return fmt.Errorf("ingest %s: %w", kind, err)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rep)
			}
			return renderReport(cmd.OutOrStdout(), rep)
		},
	}

	cmd.Flags().StringVarP(&delimiter, "delimiter", "d", "", "field separator (defaults to upload.delimiter)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse and report without storing")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")

	return cmd
}

func renderReport(w io.Writer, rep *ingestion.Report) error {
	mode := "stored"
	if rep.DryRun {
		mode = "dry run"
	}
	fmt.Fprintf(w, "%s %s (%s)\n", rep.Kind, rep.FileName, mode)
	fmt.Fprintf(w, "lines: %d  accepted: %d  persisted: %d  skipped: %d  rejected: %d\n",
		rep.Lines, rep.Accepted, rep.Persisted, rep.Skipped, len(rep.Rejected))

	if len(rep.Rejected) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "LINE\tREASON\tTEXT")
	for _, r := range rep.Rejected {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", r.Line, r.Reason, r.Text)
	}
	return tw.Flush()
}

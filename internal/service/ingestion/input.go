package ingestion

import (
	"github.com/aidenliw/msl-mohawk/internal/config"
	"github.com/aidenliw/msl-mohawk/internal/domain"
	"github.com/aidenliw/msl-mohawk/internal/ingest"
)

// Input describes one uploaded file.
type Input struct {
	Source   ingest.Source
	FileName string
	// Delimiter overrides the configured field separator when set.
	Delimiter string
	// DryRun parses and reports without storing anything.
	DryRun bool
}

// Validate checks the input fields.
func (i Input) Validate() error {
	var errs []domain.FieldError

	if i.Source == nil {
		errs = append(errs, domain.FieldError{Field: "file", Message: "required"})
	}
	if i.Delimiter != "" {
		if _, err := config.ParseDelimiter(i.Delimiter); err != nil {
			errs = append(errs, domain.FieldError{Field: "delimiter", Message: err.Error()})
		}
	}

	return domain.NewValidationErrors(errs)
}

// fileName prefers the explicit name, then the name the source carries.
func (i Input) fileName() string {
	if i.FileName != "" {
		return i.FileName
	}
	if named, ok := i.Source.(interface{ Name() string }); ok {
		return named.Name()
	}
	return ""
}

package config

import (
	"fmt"
	"unicode/utf8"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}

	if err := c.Upload.validate(); err != nil {
		return fmt.Errorf("upload: %w", err)
	}

	if err := c.Listing.validate(); err != nil {
		return fmt.Errorf("listing: %w", err)
	}

	return nil
}

func (u *UploadConfig) validate() error {
	r, err := ParseDelimiter(u.Delimiter)
	if err != nil {
		return fmt.Errorf("delimiter: %w", err)
	}
	u.DelimiterRune = r

	if u.MaxBytes <= 0 {
		return fmt.Errorf("max_bytes must be > 0 (got %d)", u.MaxBytes)
	}
	if u.MaxLineBytes <= 0 {
		return fmt.Errorf("max_line_bytes must be > 0 (got %d)", u.MaxLineBytes)
	}
	if u.ChunkSize <= 0 || u.ChunkSize > 10000 {
		return fmt.Errorf("chunk_size must be between 1 and 10000 (got %d)", u.ChunkSize)
	}
	if u.RatePerMinute < 0 {
		return fmt.Errorf("rate_per_minute must be >= 0 (got %d)", u.RatePerMinute)
	}
	return nil
}

func (l *ListingConfig) validate() error {
	if l.DefaultPageSize <= 0 {
		return fmt.Errorf("default_page_size must be > 0 (got %d)", l.DefaultPageSize)
	}
	if l.MaxPageSize < l.DefaultPageSize {
		return fmt.Errorf("max_page_size must be >= default_page_size (got %d < %d)", l.MaxPageSize, l.DefaultPageSize)
	}
	return nil
}

// ParseDelimiter turns a configured delimiter into a single field separator.
// It must be exactly one character and cannot be a line terminator.
func ParseDelimiter(raw string) (rune, error) {
	if utf8.RuneCountInString(raw) != 1 {
		return 0, fmt.Errorf("must be exactly one character (got %q)", raw)
	}
	r, _ := utf8.DecodeRuneInString(raw)
	if r == utf8.RuneError || r == '\n' || r == '\r' {
		return 0, fmt.Errorf("invalid delimiter %q", raw)
	}
	return r, nil
}

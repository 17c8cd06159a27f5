// Package ingest turns uploaded delimited text files into typed records.
//
// A Parser wraps one uploaded Source and is consumed by exactly one of
// ParseStudents, ParseKeys or ParseProducts. Each line of the file either
// becomes a record in Batch.Accepted or is kept verbatim in Batch.Rejected
// under its 0-based line index; a malformed line never aborts the batch.
// Only a non-plain-text source (ErrUnsupportedMediaType) or a failing stream
// (ErrStreamRead) are returned as errors.
//
// Fields are split on a single delimiter rune with no quoting or escaping,
// so a field can never contain the delimiter.
package ingest

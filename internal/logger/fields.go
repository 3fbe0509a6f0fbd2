package logger

import (
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/resume-filter/internal/utils"
)

// Keys of the fields naming the resume a log line is about.
const (
	FieldSource    = "source"
	FieldCandidate = "candidate"
)

// candidateNameLength bounds the logged name. A resume without a name key
// falls back to its first line, which can be long.
const candidateNameLength = 40

// WithFields returns log with fields attached. A nil log becomes a no-op logger.
func WithFields(log *zap.Logger, fields ...zap.Field) *zap.Logger {
	if log == nil {
		log = zap.NewNop()
	}

	if len(fields) == 0 {
		return log
	}

	return log.With(fields...)
}

// CandidateFields identifies a resume by its path and extracted name.
// A blank path or name is left out: unreadable resumes have no name yet.
func CandidateFields(source, name string) []zap.Field {
	fields := make([]zap.Field, 0, 2)

	if source = strings.TrimSpace(source); source != "" {
		fields = append(fields, zap.String(FieldSource, source))
	}
	if name = utils.TruncateForLog(name, candidateNameLength); name != "" {
		fields = append(fields, zap.String(FieldCandidate, name))
	}

	return fields
}

// WithCandidateFields scopes log to one resume.
func WithCandidateFields(log *zap.Logger, source, name string) *zap.Logger {
	return WithFields(log, CandidateFields(source, name)...)
}

package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldCandidate is the structured log field key for the candidate identifier.
	FieldCandidate = "candidate_id"
	// FieldJob is the structured log field key for the job identifier.
	FieldJob = "job_id"
	// FieldStrategy is the structured log field key for the scoring strategy name.
	FieldStrategy = "strategy"
	// FieldFinalScore is the structured log field key for the final compatibility score.
	FieldFinalScore = "final_score"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields attaches the provided fields to the logger.
// A nil logger becomes a no-op logger.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// MatchFields returns the fields that identify one candidate/job scoring.
// Empty values are skipped.
func MatchFields(candidateID, jobID, strategy string) []zap.Field {
	return StringFields(
		StringField{Key: FieldCandidate, Value: candidateID},
		StringField{Key: FieldJob, Value: jobID},
		StringField{Key: FieldStrategy, Value: strategy},
	)
}

// WithMatchFields attaches MatchFields to the logger.
func WithMatchFields(logger *zap.Logger, candidateID, jobID, strategy string) *zap.Logger {
	return WithFields(logger, MatchFields(candidateID, jobID, strategy)...)
}

// Score is the zap field for a final compatibility score.
func Score(score int) zap.Field {
	return zap.Int(FieldFinalScore, score)
}

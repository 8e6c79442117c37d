package types

// Feedback represents a single user submission flowing through the storage
// backend chain. The record is assembled once at submission time and never
// mutated between backend attempts; only the destination changes.
type Feedback struct {
	Timestamp string `json:"timestamp"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
}

// FeedbackCreate represents the request body for submitting feedback.
type FeedbackCreate struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// OutcomeKind classifies the terminal state of one submission.
type OutcomeKind string

const (
	OutcomeValidationFailed  OutcomeKind = "VALIDATION_FAILED"
	OutcomePersisted         OutcomeKind = "PERSISTED"
	OutcomeAllBackendsFailed OutcomeKind = "ALL_BACKENDS_FAILED"
)

// FeedbackOutcome is the result of one Submit call. Backend is set only for
// persisted submissions and names the backend that absorbed the write.
// MissingFields is set only for validation failures.
type FeedbackOutcome struct {
	Kind          OutcomeKind `json:"kind"`
	Backend       string      `json:"backend,omitempty"`
	MissingFields []string    `json:"missing_fields,omitempty"`
}

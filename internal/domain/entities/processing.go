package entities

import "github.com/google/uuid"

// EntityMention is one raw entity line from the provider, parsed into its
// name and free-text type label. The label is whatever the model emitted;
// mapping onto the closed EntityTypeTag set happens at resolution time.
type EntityMention struct {
	Name      string `json:"name"`
	TypeLabel string `json:"type_label"`
}

// ProcessingResult is the transient outcome of one processing invocation.
// It is never persisted as a record; the caller uses it to populate the
// meeting, its action items and its entity associations.
type ProcessingResult struct {
	Summary     string          `json:"summary"`
	Entities    []EntityMention `json:"entities"`
	ActionItems []string        `json:"action_items"`

	// Degraded lists the derivations that failed and fell back to their
	// defaults, for observability and the processing_meta column.
	Degraded []string `json:"degraded,omitempty"`
}

// BulkOutcomeStatus is the per-id result of a bulk operation
type BulkOutcomeStatus string

const (
	BulkOutcomeDeleted BulkOutcomeStatus = "deleted"
	BulkOutcomeUpdated BulkOutcomeStatus = "updated"
	BulkOutcomeFailed  BulkOutcomeStatus = "failed"
)

// BulkOutcome records what happened to a single id in a bulk operation
type BulkOutcome struct {
	EntityID uuid.UUID         `json:"entity_id"`
	Status   BulkOutcomeStatus `json:"status"`
	Reason   string            `json:"reason,omitempty"`
}

// BulkReport is the per-id outcome report of a bulk operation. A failed id
// never blocks the others; partial success is the intended semantics.
type BulkReport struct {
	Requested int           `json:"requested"`
	Succeeded int           `json:"succeeded"`
	Failed    int           `json:"failed"`
	Outcomes  []BulkOutcome `json:"outcomes"`
}

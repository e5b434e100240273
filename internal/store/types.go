package store

import (
	"encoding/json"

	"github.com/devconf/devconf/internal/tree"
)

// ConfigurationUpdate is a single requested mutation: a colon-delimited path
// and the new value. Both fields are mandatory.
type ConfigurationUpdate struct {
	Path  string `json:"path" validate:"required"`
	Value string `json:"value" validate:"required"`
}

// FailedUpdate pairs a rejected update with the reason it was rejected.
type FailedUpdate struct {
	Update ConfigurationUpdate `json:"update"`
	Error  string              `json:"error"`
}

// BulkUpdateResult reports the outcome of a bulk update: successes and
// failures in input order. Counts are derived, not stored.
type BulkUpdateResult struct {
	SuccessfulUpdates []*tree.Item
	FailedUpdates     []FailedUpdate
}

// TotalCount returns the number of updates in the batch.
func (r *BulkUpdateResult) TotalCount() int {
	return len(r.SuccessfulUpdates) + len(r.FailedUpdates)
}

// SuccessCount returns the number of applied updates.
func (r *BulkUpdateResult) SuccessCount() int {
	return len(r.SuccessfulUpdates)
}

// FailureCount returns the number of rejected updates.
func (r *BulkUpdateResult) FailureCount() int {
	return len(r.FailedUpdates)
}

// MarshalJSON includes the derived counts in the wire form.
func (r *BulkUpdateResult) MarshalJSON() ([]byte, error) {
	type wire struct {
		SuccessfulUpdates []*tree.Item   `json:"successfulUpdates"`
		FailedUpdates     []FailedUpdate `json:"failedUpdates"`
		TotalCount        int            `json:"totalCount"`
		SuccessCount      int            `json:"successCount"`
		FailureCount      int            `json:"failureCount"`
	}
	successes := r.SuccessfulUpdates
	if successes == nil {
		successes = []*tree.Item{}
	}
	failures := r.FailedUpdates
	if failures == nil {
		failures = []FailedUpdate{}
	}
	return json.Marshal(wire{
		SuccessfulUpdates: successes,
		FailedUpdates:     failures,
		TotalCount:        r.TotalCount(),
		SuccessCount:      r.SuccessCount(),
		FailureCount:      r.FailureCount(),
	})
}

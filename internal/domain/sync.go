package domain

// SyncStatusValue is the outcome of a single sync attempt.
type SyncStatusValue string

const (
	SyncSuccess        SyncStatusValue = "success"
	SyncSkipped        SyncStatusValue = "skipped"
	SyncScheduled      SyncStatusValue = "scheduled"
	SyncFailed         SyncStatusValue = "failed"
	SyncBusy           SyncStatusValue = "busy"
	SyncPartialFailure SyncStatusValue = "partial_failure"
)

// UpsertResult counts the changes one ReplaceAll transaction committed.
type UpsertResult struct {
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
	Removed  int `json:"removed"`
}

// Empty reports whether the batch changed nothing.
func (r UpsertResult) Empty() bool {
	return r.Inserted == 0 && r.Updated == 0 && r.Removed == 0
}

// SyncReport describes one entity type's sync outcome.
type SyncReport struct {
	EntityType      EntityType      `json:"entityType"`
	Status          SyncStatusValue `json:"status"`
	Message         string          `json:"message"`
	JobID           string          `json:"jobId,omitempty"` // set for background runs
	PreviousVersion string          `json:"previousVersion,omitempty"`
	CurrentVersion  string          `json:"currentVersion,omitempty"`
	FailedRecords   int             `json:"failedRecords"`
	Result          UpsertResult    `json:"result"`
	Err             error           `json:"-"`
}

// AggregateReport is the sync_all outcome. A single failed type does not fail
// the aggregate; it is recorded and the remaining types still sync.
type AggregateReport struct {
	Status         SyncStatusValue `json:"status"`
	Message        string          `json:"message"`
	JobID          string          `json:"jobId,omitempty"`
	CurrentVersion string          `json:"currentVersion,omitempty"`
	Reports        []SyncReport    `json:"reports,omitempty"`
}

// EntityStatus is one row of the sync status report.
type EntityStatus struct {
	CurrentVersion  string `json:"currentVersion"`
	LatestVersion   string `json:"latestVersion"`
	UpdateAvailable bool   `json:"updateAvailable"`
}

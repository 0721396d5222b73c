package constants

// JobStatus is the canonical lifecycle status for rows in jobs.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusUploaded  JobStatus = "UPLOADED"  // artifact stored, walk not started
	JobStatusRunning   JobStatus = "RUNNING"   // walk in progress
	JobStatusCompleted JobStatus = "COMPLETED" // all applicable steps executed
	JobStatusStopped   JobStatus = "STOPPED"   // stop condition matched or cancellation requested
	JobStatusFailed    JobStatus = "FAILED"    // terminal failure
)

// JobStatuses holds the allowed values for the jobs.status column.
var JobStatuses = []string{
	string(JobStatusUploaded),
	string(JobStatusRunning),
	string(JobStatusCompleted),
	string(JobStatusStopped),
	string(JobStatusFailed),
}

// IsTerminal reports whether a status ends the job lifecycle.
func (s JobStatus) IsTerminal() bool {
	switch s {
	case JobStatusCompleted, JobStatusStopped, JobStatusFailed:
		return true
	}
	return false
}

// Consent is the data subject's disposition for cached auxiliary text.
type Consent string

const (
	ConsentUnknown  Consent = "UNKNOWN"
	ConsentGranted  Consent = "GRANTED"
	ConsentDeclined Consent = "DECLINED"
)

// Consents holds the allowed values for the jobs.consent column.
var Consents = []string{
	string(ConsentUnknown),
	string(ConsentGranted),
	string(ConsentDeclined),
}

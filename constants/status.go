package constants

// JobStatus is the canonical status for rows in render_jobs.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued  JobStatus = "queued"  // waiting to be claimed
	JobStatusRunning JobStatus = "running" // claimed by a worker invocation
	JobStatusDone    JobStatus = "done"    // terminal success
	JobStatusFailed  JobStatus = "failed"  // terminal failure
)

// JobStatuses lists every valid render job status.
var JobStatuses = []string{
	string(JobStatusQueued),
	string(JobStatusRunning),
	string(JobStatusDone),
	string(JobStatusFailed),
}

// IsTerminal reports whether the status never changes again.
func (s JobStatus) IsTerminal() bool {
	return s == JobStatusDone || s == JobStatusFailed
}

// RenderStatus is the denormalized render state mirrored onto quotes.
// It is a best-effort cache of the latest job outcome, not job history.
type RenderStatus string

const (
	RenderStatusQueued   RenderStatus = "queued"
	RenderStatusRunning  RenderStatus = "running"
	RenderStatusRendered RenderStatus = "rendered"
	RenderStatusFailed   RenderStatus = "failed"
)

// RenderStatuses lists every valid quote render status.
var RenderStatuses = []string{
	string(RenderStatusQueued),
	string(RenderStatusRunning),
	string(RenderStatusRendered),
	string(RenderStatusFailed),
}

// Package summarizer collects and reports per-drive outcomes of a batch
// run.
package summarizer

import "time"

// Status classifies the outcome of one drive.
type Status string

const (
	// StatusSuccess means the drive's video was written completely.
	StatusSuccess Status = "success"
	// StatusSkipped means the drive was skipped before conversion,
	// typically because its image folder is missing.
	StatusSkipped Status = "skipped"
	// StatusFailed means conversion started but failed; no output file
	// remains for this drive.
	StatusFailed Status = "failed"
)

// DriveOutcome records what happened to a single drive.
type DriveOutcome struct {
	// Drive is the drive name, e.g. "2011_09_26_drive_0002".
	Drive string
	// Date is the drive's capture date folder.
	Date string
	// Status classifies the outcome.
	Status Status
	// OutputPath is the written video (success only).
	OutputPath string
	// FrameCount is the number of frames encoded (success only).
	FrameCount int
	// Reason explains a skip or failure.
	Reason string
}

// Summary describes one batch run.
type Summary struct {
	GeneratedAt time.Time
	DatasetRoot string
	OutputDir   string
	FPS         float64
	Outcomes    []DriveOutcome
}

// New creates a Summary with the current timestamp.
func New(datasetRoot, outputDir string, fps float64) *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
		DatasetRoot: datasetRoot,
		OutputDir:   outputDir,
		FPS:         fps,
	}
}

// Record appends one drive outcome.
func (s *Summary) Record(outcome DriveOutcome) {
	s.Outcomes = append(s.Outcomes, outcome)
}

// Total returns the number of drives processed, skips and failures
// included.
func (s *Summary) Total() int {
	return len(s.Outcomes)
}

// Count returns the number of outcomes with the given status.
func (s *Summary) Count(status Status) int {
	n := 0
	for _, o := range s.Outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}

// Failures returns the outcomes that failed, in processing order.
func (s *Summary) Failures() []DriveOutcome {
	var failures []DriveOutcome
	for _, o := range s.Outcomes {
		if o.Status == StatusFailed {
			failures = append(failures, o)
		}
	}
	return failures
}

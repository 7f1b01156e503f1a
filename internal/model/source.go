// Package model defines the data structures shared by the annotation workflow.
package model

// Path represents a file system path.
type Path string

// FileStatus describes what a run did (or would do) with a target file.
type FileStatus string

const (
	// StatusPending marks a target file that is not in the ledger yet.
	StatusPending FileStatus = "pending"
	// StatusAnnotated marks a file that was rewritten with placeholders.
	StatusAnnotated FileStatus = "annotated"
	// StatusSkipped marks a file that was skipped because the ledger lists it.
	StatusSkipped FileStatus = "skipped"
	// StatusPreviewed marks a file annotated in memory only (dry run).
	StatusPreviewed FileStatus = "previewed"
)

// FileResult holds the outcome for a single target file.
type FileResult struct {
	Path         Path
	Status       FileStatus
	Declarations int
	Members      int
}

// Summary aggregates the results of one run.
type Summary struct {
	Files        int
	Annotated    int
	Skipped      int
	Previewed    int
	Declarations int
	Members      int
}

// Add folds a file result into the summary.
func (s *Summary) Add(result FileResult) {
	s.Files++

	switch result.Status {
	case StatusAnnotated:
		s.Annotated++
	case StatusSkipped:
		s.Skipped++
	case StatusPreviewed:
		s.Previewed++
	case StatusPending:
	}

	s.Declarations += result.Declarations
	s.Members += result.Members
}

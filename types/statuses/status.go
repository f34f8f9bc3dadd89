package statuses

const (
	Running = iota
	Done
	Failed
)

// Status represents the status of a terminal run of a pipeline.
// The sequence of statuses is: running -> done / failed
//
// Running - once the terminal operation starts pulling elements through the stages.
// Done - once every element is processed and the aggregation is finished.
// Failed - once any stage returns a failure; the remaining elements are never read.
type Status int

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Done:
		return "done"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

package config

// Entry represents a single configuration value with provenance and
// priority, so the CLI can explain where an effective value came from.
type Entry struct {
	Key        string
	Value      any
	Source     string
	SourcePath string
	Priority   int
}

// Priorities for the configuration layers. Lower number wins.
const (
	PriorityFlag    = 1
	PriorityEnv     = 2
	PriorityFile    = 3
	PriorityDefault = 4
)

// Snapshot is a collection of config entries keyed by field name.
type Snapshot map[string]Entry

// Merge merges another snapshot into this one respecting priority (lower
// number indicates higher priority).
func (s Snapshot) Merge(other Snapshot) {
	for k, e := range other {
		if existing, ok := s[k]; !ok || e.Priority <= existing.Priority {
			s[k] = e
		}
	}
}

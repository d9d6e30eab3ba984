package models

// RunStats accumulates per-file records for a single run, grouped by label.
// Groups are reported in the order they first appear on the page, so the
// order is tracked explicitly alongside the map.
type RunStats struct {
	TotalFiles int
	TotalBytes int64

	groups map[string][]FileEntry
	order  []string
}

func NewRunStats() *RunStats {
	return &RunStats{
		groups: make(map[string][]FileEntry),
	}
}

func (s *RunStats) Record(entry FileEntry) {
	if _, ok := s.groups[entry.GroupLabel]; !ok {
		s.order = append(s.order, entry.GroupLabel)
	}
	s.groups[entry.GroupLabel] = append(s.groups[entry.GroupLabel], entry)
	s.TotalFiles++
	s.TotalBytes += entry.Size
}

// GroupLabels returns the labels in first-seen order.
func (s *RunStats) GroupLabels() []string {
	return s.order
}

func (s *RunStats) Group(label string) []FileEntry {
	return s.groups[label]
}

// GroupSize sums the sizes of a group's entries.
func (s *RunStats) GroupSize(label string) int64 {
	var total int64
	for _, entry := range s.groups[label] {
		total += entry.Size
	}
	return total
}

package models

import "testing"

func TestRunStatsRecord(t *testing.T) {
	stats := NewRunStats()

	entries := []FileEntry{
		{Name: "TB7217_data.zip", Size: 1073741824, GroupLabel: "TB7217"},
		{Name: "readme.txt", Size: 2048, GroupLabel: "base_folder"},
		{Name: "TB7217_notes.pdf", Size: 4096, GroupLabel: "TB7217"},
	}

	for _, entry := range entries {
		stats.Record(entry)
	}

	if stats.TotalFiles != 3 {
		t.Errorf("TotalFiles = %d, want %d", stats.TotalFiles, 3)
	}

	if stats.TotalBytes != 1073741824+2048+4096 {
		t.Errorf("TotalBytes = %d, want %d", stats.TotalBytes, 1073741824+2048+4096)
	}

	labels := stats.GroupLabels()
	if len(labels) != 2 {
		t.Fatalf("GroupLabels() length = %d, want %d", len(labels), 2)
	}

	if labels[0] != "TB7217" || labels[1] != "base_folder" {
		t.Errorf("GroupLabels() = %v, want first-seen order [TB7217 base_folder]", labels)
	}

	if len(stats.Group("TB7217")) != 2 {
		t.Errorf("Group(TB7217) length = %d, want %d", len(stats.Group("TB7217")), 2)
	}

	if size := stats.GroupSize("TB7217"); size != 1073741824+4096 {
		t.Errorf("GroupSize(TB7217) = %d, want %d", size, 1073741824+4096)
	}

	// Group counts must partition the total.
	var counted int
	for _, label := range labels {
		counted += len(stats.Group(label))
	}
	if counted != stats.TotalFiles {
		t.Errorf("sum of group counts = %d, want TotalFiles = %d", counted, stats.TotalFiles)
	}
}

func TestRunStatsEmpty(t *testing.T) {
	stats := NewRunStats()

	if stats.TotalFiles != 0 || stats.TotalBytes != 0 {
		t.Errorf("empty stats = (%d files, %d bytes), want (0, 0)", stats.TotalFiles, stats.TotalBytes)
	}

	if len(stats.GroupLabels()) != 0 {
		t.Errorf("GroupLabels() = %v, want empty", stats.GroupLabels())
	}
}

package models

// FileEntry describes one file discovered on the source page. Entries are
// built once per link and never mutated afterwards.
type FileEntry struct {
	Name            string `json:"name"`
	SourceURL       string `json:"source_url"`
	Size            int64  `json:"size"`
	DestinationPath string `json:"destination_path"`
	GroupLabel      string `json:"group_label"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
	Command   string `json:"command"`
}

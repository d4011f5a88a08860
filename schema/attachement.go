package schema

import "io"

// Attachement message attachement
type Attachement struct {
	// ImageURLs attached image urls
	ImageURLs []string `json:"image_url,omitempty"`
	// Files attached files
	Files []io.Reader `json:"file,omitempty"`
}

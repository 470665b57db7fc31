// Package types defines the serializable contracts shared between the
// pipeline core and the host application surface.
package types

// PageResult records the outcome of running the processor for one page.
type PageResult struct {
	// PageID is the opaque caller-supplied identifier for the page.
	PageID string `json:"page_id" yaml:"page_id"`

	// Message is the human-readable status produced for the page. While the
	// pipeline is a stub this is always the "not yet implemented" text.
	Message string `json:"message" yaml:"message"`
}

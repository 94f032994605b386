package loam

// SlideMetadata represents the YAML front matter of an authored slide
// file. It uses "mapstructure" tags to match the standard frontmatter
// keys Loam hands back.
type SlideMetadata struct {
	ID    string `json:"id" mapstructure:"id"`
	Title string `json:"title" mapstructure:"title"`

	// Notes hold speaker notes, kept out of the rendered body.
	Notes string `json:"notes" mapstructure:"notes"`

	// General Metadata
	Metadata map[string]string `json:"metadata" mapstructure:"metadata"`
}

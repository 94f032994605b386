package compiler

import (
	"encoding/json"
	"fmt"

	"github.com/chalkdeck/chalk/pkg/domain"
)

// Parser is responsible for converting the canonical slide bytes
// produced by a loader into a domain Slide.
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes canonical JSON into a Slide and runs load-time
// validation, so malformed content fails loudly here rather than
// rendering wrong later.
func (p *Parser) Parse(data []byte) (*domain.Slide, error) {
	var slide domain.Slide
	if err := json.Unmarshal(data, &slide); err != nil {
		return nil, fmt.Errorf("failed to parse slide: %w", err)
	}
	if len(slide.Steps) == 0 {
		slide.Steps = []domain.Step{{}}
	}
	if err := slide.Validate(); err != nil {
		return nil, err
	}
	return &slide, nil
}

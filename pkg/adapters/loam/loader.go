package loam

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/loam"
	"github.com/chalkdeck/chalk/internal/compiler"
	"github.com/chalkdeck/chalk/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ManifestFile is the deck manifest filename inside a deck directory.
const ManifestFile = "deck.yaml"

// Loader adapts the Loam library to the Chalk DeckLoader interface.
// Slides are markdown documents with YAML front matter; deck.yaml fixes
// deck metadata and slide order.
type Loader struct {
	Repo *loam.TypedRepository[SlideMetadata]
	path string
}

// New creates a new Loam adapter rooted at the deck directory.
func New(repo *loam.TypedRepository[SlideMetadata], path string) *Loader {
	return &Loader{
		Repo: repo,
		path: path,
	}
}

// manifestEntry is one item of the deck.yaml slides list. Authors may
// write a bare ID or a mapping with an optional title override.
type manifestEntry struct {
	ID    string `mapstructure:"id"`
	Title string `mapstructure:"title"`
}

// rawManifest matches deck.yaml before the slides list is normalized.
type rawManifest struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Theme  string `yaml:"theme"`
	Slides []any  `yaml:"slides"`
}

// Manifest reads deck.yaml. When the manifest is absent the deck order
// falls back to the repository listing, sorted by filename.
func (l *Loader) Manifest() (*domain.Manifest, error) {
	raw, err := os.ReadFile(filepath.Join(l.path, ManifestFile))
	if err != nil {
		if os.IsNotExist(err) {
			return l.manifestFromListing()
		}
		return nil, fmt.Errorf("failed to read %s: %w", ManifestFile, err)
	}

	var parsed rawManifest
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ManifestFile, err)
	}

	manifest := &domain.Manifest{
		Title:  parsed.Title,
		Author: parsed.Author,
		Theme:  parsed.Theme,
	}

	for i, item := range parsed.Slides {
		switch v := item.(type) {
		case string:
			manifest.Slides = append(manifest.Slides, trimExtension(v))
		case map[string]any:
			var entry manifestEntry
			if err := mapstructure.Decode(v, &entry); err != nil {
				return nil, fmt.Errorf("%s: slides[%d]: %w", ManifestFile, i, err)
			}
			if entry.ID == "" {
				return nil, fmt.Errorf("%s: slides[%d] missing id", ManifestFile, i)
			}
			manifest.Slides = append(manifest.Slides, trimExtension(entry.ID))
		default:
			return nil, fmt.Errorf("%s: slides[%d] has invalid type %T", ManifestFile, i, item)
		}
	}

	return manifest, nil
}

// manifestFromListing builds an implicit manifest from all documents
// in the repository, in lexical order.
func (l *Loader) manifestFromListing() (*domain.Manifest, error) {
	ctx := context.Background()
	docs, err := l.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	manifest := &domain.Manifest{Title: filepath.Base(l.path)}
	seen := make(map[string]string)

	for _, doc := range docs {
		rawID := doc.Data.ID
		if rawID == "" {
			rawID = doc.ID
		}
		id := trimExtension(rawID)

		// Collision Detection
		if existingPath, ok := seen[id]; ok {
			return nil, fmt.Errorf("collision detected: ID '%s' is defined in both '%s' and '%s'", id, existingPath, doc.ID)
		}
		seen[id] = doc.ID
		manifest.Slides = append(manifest.Slides, id)
	}

	sort.Strings(manifest.Slides)
	return manifest, nil
}

// GetSlide retrieves a slide from the Loam repository, compiles its
// markdown body into steps and code blocks, and returns the canonical
// JSON form the engine parses.
func (l *Loader) GetSlide(id string) ([]byte, error) {
	ctx := context.Background()

	doc, err := l.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s (%v)", domain.ErrSlideNotFound, id, err)
	}

	steps, err := compiler.CompileBody(doc.Content)
	if err != nil {
		return nil, fmt.Errorf("slide '%s': %w", id, err)
	}

	rawID := doc.Data.ID
	if rawID == "" {
		rawID = doc.ID
	}

	slide := domain.Slide{
		ID:       trimExtension(rawID),
		Title:    doc.Data.Title,
		Notes:    doc.Data.Notes,
		Steps:    steps,
		Metadata: doc.Data.Metadata,
	}

	bytes, err := json.Marshal(slide)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal slide data: %w", err)
	}

	return bytes, nil
}

// Watch implements ports.Watchable.
func (l *Loader) Watch(ctx context.Context) (<-chan string, error) {
	// Watch all authored content, including the manifest.
	events, err := l.Repo.Watch(ctx, "**/*.{md,yaml,yml}")
	if err != nil {
		return nil, fmt.Errorf("failed to start loam watcher: %w", err)
	}

	ch := make(chan string, 1)

	go func() {
		defer close(ch)
		for {
			select {
			case <-ctx.Done():
				return
			case evt, ok := <-events:
				if !ok {
					return
				}
				// Loam debounces internally; pass the changed ID up
				// the chain, respecting context cancellation.
				select {
				case ch <- evt.ID:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return ch, nil
}

func trimExtension(id string) string {
	ext := filepath.Ext(id)
	if ext != "" {
		return filepath.ToSlash(strings.TrimSuffix(id, ext))
	}
	return filepath.ToSlash(id)
}

package content

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MrSnakeDoc/folio/internal/domain"
)

//go:embed default.yaml
var defaultContent []byte

// Loader reads a catalog from a YAML file, or from the embedded default
// when no path is configured.
type Loader struct {
	filePath string
	mapper   *Mapper
}

// NewLoader creates a loader. An empty filePath selects the embedded default.
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
		mapper:   NewMapper(),
	}
}

// Source describes where Load reads from, for logs.
func (l *Loader) Source() string {
	if l.filePath == "" {
		return "embedded"
	}
	return l.filePath
}

// Load reads, parses and maps the content into a catalog.
func (l *Loader) Load() (*domain.Catalog, error) {
	data := defaultContent
	if l.filePath != "" {
		raw, err := os.ReadFile(l.filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read content file: %w", err)
		}
		data = raw
	}
	return l.Parse(data)
}

// Parse maps raw YAML bytes into a catalog.
func (l *Loader) Parse(data []byte) (*domain.Catalog, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse content yaml: %w", err)
	}

	catalog, err := l.mapper.Map(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to map content: %w", err)
	}
	catalog.Revision = Revision(data)

	return catalog, nil
}

// Default returns the embedded catalog. The embedded file ships with the
// binary, so a parse failure is a build defect and panics.
func Default() *domain.Catalog {
	catalog, err := NewLoader("").Load()
	if err != nil {
		panic(fmt.Sprintf("❌ FATAL: embedded content is invalid: %v", err))
	}
	return catalog
}

package court

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed courts.yaml
var defaultCatalog []byte

var (
	ErrEmptyCatalog    = errors.New("no courts defined")
	ErrInvalidCourt    = errors.New("invalid court definition")
	ErrInvalidCategory = errors.New("invalid court category")
)

type Category string

const (
	CategoryIndoor  Category = "Indoor"
	CategoryOutdoor Category = "Outdoor"
)

func (c Category) IsValid() bool {
	return c == CategoryIndoor || c == CategoryOutdoor
}

type Court struct {
	ID       int      `yaml:"id"`
	Name     string   `yaml:"name"`
	Category Category `yaml:"category"`
	Surface  string   `yaml:"surface"`
}

// Catalog is the immutable, id-ordered list of courts of the club.
type Catalog struct {
	courts []Court
	byID   map[int]Court
}

type catalogFile struct {
	Courts []Court `yaml:"courts"`
}

// DefaultCatalog returns the catalog compiled into the binary.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalog)
}

// LoadCatalog reads a catalog file, or the embedded one when path is empty.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read courts catalog: %w", err)
	}
	return ParseCatalog(data)
}

func ParseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse courts catalog: %w", err)
	}
	return NewCatalog(file.Courts)
}

func NewCatalog(courts []Court) (*Catalog, error) {
	if len(courts) == 0 {
		return nil, ErrEmptyCatalog
	}

	byID := make(map[int]Court, len(courts))
	for i, c := range courts {
		if c.ID <= 0 {
			return nil, fmt.Errorf("court[%d]: id must be positive, got %d: %w", i, c.ID, ErrInvalidCourt)
		}
		if c.Name == "" {
			return nil, fmt.Errorf("court[%d]: name is required: %w", i, ErrInvalidCourt)
		}
		if !c.Category.IsValid() {
			return nil, fmt.Errorf("court[%d]: %q: %w", i, c.Category, ErrInvalidCategory)
		}
		if _, dup := byID[c.ID]; dup {
			return nil, fmt.Errorf("court[%d]: duplicate id %d: %w", i, c.ID, ErrInvalidCourt)
		}
		byID[c.ID] = c
	}

	sorted := make([]Court, len(courts))
	copy(sorted, courts)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	return &Catalog{courts: sorted, byID: byID}, nil
}

// All returns a copy so callers cannot mutate the catalog.
func (c *Catalog) All() []Court {
	out := make([]Court, len(c.courts))
	copy(out, c.courts)
	return out
}

func (c *Catalog) Get(id int) (Court, bool) {
	court, ok := c.byID[id]
	return court, ok
}

func (c *Catalog) Len() int { return len(c.courts) }

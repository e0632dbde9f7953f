// Package belt loads belt (faixa) curricula: per belt color, the hand and
// kick techniques a student is expected to know.
//
// Curricula are flat YAML or JSON files. A built-in set is embedded in the
// binary; a directory of files can replace it.
package belt

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// DefaultPattern matches curriculum files inside a belts directory
const DefaultPattern = "faixa_*.{json,yaml,yml}"

// ErrNotFound is returned when no belt has the requested color
var ErrNotFound = errors.New("not found")

//go:embed data/*.yaml
var embedded embed.FS

// Belt is one curriculum record
type Belt struct {
	Color          string   `yaml:"color" json:"color"`                     // e.g. "Branca"
	Grade          string   `yaml:"grade" json:"grade"`                     // e.g. "10 GUB", "1 DAN"
	HandTechniques []string `yaml:"hand_techniques" json:"hand_techniques"` // Arm and hand technique names
	KickTechniques []string `yaml:"kick_techniques" json:"kick_techniques"` // Kick technique names
}

func (b Belt) String() string {
	return fmt.Sprintf("%s (%s)", b.Color, b.Grade)
}

// Techniques returns hand techniques followed by kick techniques
func (b Belt) Techniques() []string {
	all := make([]string, 0, len(b.HandTechniques)+len(b.KickTechniques))
	all = append(all, b.HandTechniques...)
	return append(all, b.KickTechniques...)
}

// Rank orders belts for display. Kup grades ("N GUB") rank N, dan grades
// ("N DAN") rank -N, anything else 0; higher ranks are shown first, so the
// listing runs from beginner kup grades down to 1 GUB and then up the dans.
func (b Belt) Rank() int {
	fields := strings.Fields(strings.ToUpper(b.Grade))
	if len(fields) < 2 {
		return 0
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0
	}
	switch fields[1] {
	case "GUB":
		return n
	case "DAN":
		return -n
	}
	return 0
}

// Parse decodes one curriculum file. JSON files decode too, being valid YAML.
func Parse(data []byte) (Belt, error) {
	var b Belt
	if err := yaml.Unmarshal(data, &b); err != nil {
		return Belt{}, fmt.Errorf("decode belt: %w", err)
	}
	b.Color = strings.TrimSpace(b.Color)
	if b.Color == "" {
		return Belt{}, fmt.Errorf("decode belt: missing color")
	}
	return b, nil
}

// Registry indexes belts by lower-cased color
type Registry struct {
	belts map[string]Belt
}

// NewRegistry indexes belts, rejecting two belts of the same color
func NewRegistry(belts ...Belt) (*Registry, error) {
	r := &Registry{belts: make(map[string]Belt, len(belts))}
	for _, b := range belts {
		key := strings.ToLower(b.Color)
		if _, dup := r.belts[key]; dup {
			return nil, fmt.Errorf("duplicate belt color %q", b.Color)
		}
		r.belts[key] = b
	}
	return r, nil
}

// Load reads every file in fsys matching pattern (doublestar syntax)
func Load(fsys fs.FS, pattern string) (*Registry, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	paths, err := doublestar.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}
	sort.Strings(paths)

	belts := make([]Belt, 0, len(paths))
	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		b, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		belts = append(belts, b)
	}
	return NewRegistry(belts...)
}

// LoadDir reads curriculum files from a directory on disk
func LoadDir(dir, pattern string) (*Registry, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("belts dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("belts dir: %s is not a directory", dir)
	}
	return Load(os.DirFS(dir), pattern)
}

// Default returns the embedded curriculum
func Default() (*Registry, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, err
	}
	return Load(sub, DefaultPattern)
}

// Open loads from dir, or the embedded curriculum when dir is empty
func Open(dir, pattern string) (*Registry, error) {
	if dir == "" {
		return Default()
	}
	return LoadDir(dir, pattern)
}

// Get returns the belt of the given color, ignoring case
func (r *Registry) Get(color string) (Belt, error) {
	b, ok := r.belts[strings.ToLower(strings.TrimSpace(color))]
	if !ok {
		return Belt{}, fmt.Errorf("belt %q: %w", color, ErrNotFound)
	}
	return b, nil
}

// All returns every belt in display order (see Rank), ties by color
func (r *Registry) All() []Belt {
	all := make([]Belt, 0, len(r.belts))
	for _, b := range r.belts {
		all = append(all, b)
	}
	sort.Slice(all, func(i, j int) bool {
		ri, rj := all[i].Rank(), all[j].Rank()
		if ri != rj {
			return ri > rj
		}
		return all[i].Color < all[j].Color
	})
	return all
}

// Len returns the number of belts
func (r *Registry) Len() int {
	return len(r.belts)
}

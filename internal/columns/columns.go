package columns

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/HaiFongPan/colsplit/internal/resize"
)

// Gap sizes accepted from the host
const (
	GapSmall  = "small"
	GapMedium = "medium"
	GapLarge  = "large"
)

// MinHostWidth is the floor applied to collapsed columns before they are handed to a host
// layout that rejects zero widths
const MinHostWidth = 0.001

// Config is the column layout received from the host
type Config struct {
	Widths    []float64 `yaml:"widths" json:"widths"`
	Labels    []string  `yaml:"labels,omitempty" json:"labels,omitempty"`
	MinRatios []float64 `yaml:"min_ratios,omitempty" json:"min_ratios,omitempty"`
	Gap       string    `yaml:"gap,omitempty" json:"gap,omitempty"`
	Border    bool      `yaml:"border,omitempty" json:"border,omitempty"`
}

// Defaults fill fields the host left out
type Defaults struct {
	MinRatio float64
	Gap      string
	Border   bool
}

// StandardDefaults returns the defaults used when the application sets none
func StandardDefaults() Defaults {
	return Defaults{MinRatio: resize.DefaultMinRatio, Gap: GapSmall}
}

// DefaultWidths is used when the host sends no widths
func DefaultWidths() []float64 {
	return []float64{1, 1}
}

// UnmarshalYAML accepts either a bare list of widths or a full mapping
func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		var widths []float64
		if err := node.Decode(&widths); err != nil {
			return fmt.Errorf("invalid widths list: %w", err)
		}
		*c = Config{Widths: widths}
		return nil
	}

	// alias type drops this method so Decode does not recurse
	type plain Config
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*c = Config(p)
	return nil
}

// Parse decodes a layout document
func Parse(data []byte) (*Config, error) {
	return ParseWith(data, StandardDefaults())
}

// ParseWith decodes a layout document, filling omitted fields from d
func ParseWith(data []byte, d Defaults) (*Config, error) {
	var cfg Config
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse layout: %w", err)
		}
	}
	if err := cfg.NormalizeWith(d); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFile reads and normalizes a layout file
func LoadFile(path string) (*Config, error) {
	return LoadFileWith(path, StandardDefaults())
}

// LoadFileWith reads a layout file, filling omitted fields from d
func LoadFileWith(path string, d Defaults) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout %s: %w", path, err)
	}
	return ParseWith(data, d)
}

// Normalize fills standard defaults and validates the configuration in place
func (c *Config) Normalize() error {
	return c.NormalizeWith(StandardDefaults())
}

// NormalizeWith fills omitted fields from d and validates the configuration in place
func (c *Config) NormalizeWith(d Defaults) error {
	if len(c.Widths) == 0 {
		c.Widths = DefaultWidths()
	}
	if err := resize.SegmentSet(c.Widths).Validate(); err != nil {
		return fmt.Errorf("invalid widths: %w", err)
	}
	if resize.SegmentSet(c.Widths).Total() == 0 {
		return fmt.Errorf("invalid widths: %w", resize.ErrZeroTotal)
	}

	switch {
	case len(c.Labels) == 0:
		c.Labels = DefaultLabels(len(c.Widths))
	case len(c.Labels) < len(c.Widths):
		c.Labels = append(c.Labels, DefaultLabels(len(c.Widths))[len(c.Labels):]...)
	case len(c.Labels) > len(c.Widths):
		return fmt.Errorf("%d labels for %d columns", len(c.Labels), len(c.Widths))
	}

	if len(c.MinRatios) == 0 {
		c.MinRatios = []float64{d.MinRatio}
	}
	if _, err := resize.Minimums(c.Widths, c.MinRatios); err != nil {
		return fmt.Errorf("invalid min_ratios: %w", err)
	}
	for i, r := range c.MinRatios {
		if r >= 1 {
			return fmt.Errorf("invalid min_ratios: ratio %d (%g) must be below 1", i, r)
		}
	}
	// neighbours sharing a divider must fit side by side, or every drag grows the total
	for i := 0; i+1 < len(c.Widths); i++ {
		if sum := ratioAt(c.MinRatios, i) + ratioAt(c.MinRatios, i+1); sum > 1 {
			return fmt.Errorf("invalid min_ratios: columns %d and %d together need %g of the total", i+1, i+2, sum)
		}
	}

	c.Gap = strings.ToLower(strings.TrimSpace(c.Gap))
	if c.Gap == "" {
		c.Gap = strings.ToLower(d.Gap)
	}
	if c.Gap == "" {
		c.Gap = GapSmall
	}
	c.Border = c.Border || d.Border
	if _, ok := gapCells[c.Gap]; !ok {
		return fmt.Errorf("invalid gap: %s (valid: small, medium, large)", c.Gap)
	}

	return nil
}

// Clone returns a deep copy
func (c *Config) Clone() *Config {
	out := *c
	out.Widths = append([]float64(nil), c.Widths...)
	out.Labels = append([]string(nil), c.Labels...)
	out.MinRatios = append([]float64(nil), c.MinRatios...)
	return &out
}

// DefaultLabels returns "Col 1".."Col n"
func DefaultLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("Col %d", i+1)
	}
	return labels
}

var gapCells = map[string]int{
	GapSmall:  1,
	GapMedium: 2,
	GapLarge:  3,
}

// GapCells returns the number of terminal cells between columns for a gap size
func GapCells(gap string) int {
	if n, ok := gapCells[gap]; ok {
		return n
	}
	return gapCells[GapSmall]
}

// ratioAt returns the minimum ratio of column i, broadcasting a single ratio
func ratioAt(ratios []float64, i int) float64 {
	if len(ratios) == 1 {
		return ratios[0]
	}
	return ratios[i]
}

// HostWidths raises collapsed widths to MinHostWidth
func HostWidths(widths []float64) []float64 {
	out := make([]float64, len(widths))
	for i, w := range widths {
		if w < MinHostWidth {
			w = MinHostWidth
		}
		out[i] = w
	}
	return out
}

package archdeck

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/capnet-labs/archdeck/internal/yamlutil"
)

//go:embed assets/palette.yaml
var defaultPaletteYAML []byte

// Style holds the visual attributes a style token resolves to.
type Style struct {
	Fill string `yaml:"fill"` // box fill / element color, hex "#RRGGBB"
	Text string `yaml:"text"` // label color drawn on top of Fill
}

// Palette is an immutable mapping from semantic style tokens
// (e.g. "proxy", "deny", "trust-zone") to visual attributes.
// It is read-only after construction and safe for concurrent use.
type Palette struct {
	styles map[string]Style
}

// paletteFile is the on-disk / embedded YAML shape.
type paletteFile struct {
	Styles map[string]Style `yaml:"styles"`
}

var (
	defaultOnce sync.Once
	defaultPal  *Palette
)

// DefaultPalette returns the built-in palette parsed from the embedded
// asset. The palette is parsed once and shared; it is immutable.
// Panics if the embedded asset is corrupt (build defect, not a runtime
// condition).
func DefaultPalette() *Palette {
	defaultOnce.Do(func() {
		p, err := ParsePalette(defaultPaletteYAML)
		if err != nil {
			panic("archdeck: embedded palette is invalid: " + err.Error())
		}
		defaultPal = p
	})
	return defaultPal
}

// ParsePalette parses YAML palette content and validates every entry.
func ParsePalette(data []byte) (*Palette, error) {
	var pf paletteFile
	if err := yamlutil.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPaletteParse, err)
	}
	if len(pf.Styles) == 0 {
		return nil, ErrEmptyPalette
	}

	styles := make(map[string]Style, len(pf.Styles))
	for token, style := range pf.Styles {
		if err := validateColor(style.Fill); err != nil {
			return nil, fmt.Errorf("token %q fill: %w", token, err)
		}
		if err := validateColor(style.Text); err != nil {
			return nil, fmt.Errorf("token %q text: %w", token, err)
		}
		styles[token] = style
	}

	return &Palette{styles: styles}, nil
}

// LoadPalette reads and parses a palette YAML file from disk.
func LoadPalette(path string) (*Palette, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided palette path
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPaletteLoad, err)
	}
	p, err := ParsePalette(data)
	if err != nil {
		return nil, fmt.Errorf("palette %q: %w", path, err)
	}
	return p, nil
}

// Resolve looks up a style token. Unknown tokens are a programming
// error in the composer, not a recoverable runtime condition; callers
// abort the page rather than falling back to a default style.
func (p *Palette) Resolve(token string) (Style, error) {
	style, ok := p.styles[token]
	if !ok {
		return Style{}, fmt.Errorf("%w: %q", ErrUnknownStyleToken, token)
	}
	return style, nil
}

// Tokens returns all defined token names in sorted order.
func (p *Palette) Tokens() []string {
	tokens := make([]string, 0, len(p.styles))
	for t := range p.styles {
		tokens = append(tokens, t)
	}
	sort.Strings(tokens)
	return tokens
}

// Len returns the number of defined styles.
func (p *Palette) Len() int {
	return len(p.styles)
}

// validateColor checks that a color is a hex literal of the form
// "#RGB" or "#RRGGBB".
func validateColor(c string) error {
	if !strings.HasPrefix(c, "#") {
		return fmt.Errorf("%w: %q (must start with #)", ErrInvalidColor, c)
	}
	digits := c[1:]
	if len(digits) != 3 && len(digits) != 6 {
		return fmt.Errorf("%w: %q (must be #RGB or #RRGGBB)", ErrInvalidColor, c)
	}
	for _, r := range digits {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return fmt.Errorf("%w: %q (non-hex digit %q)", ErrInvalidColor, c, r)
		}
	}
	return nil
}

package console

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	DefaultFontFamily = "Monospace"
	DefaultFontSize   = 12
	MinFontSize       = 4
	MaxFontSize       = 255
)

// Font is a "Family-Size[-Weight]" font description, e.g. "Monospace-12"
// or "Menlo-13-Bold".
type Font struct {
	Family string
	Size   int
	Weight string
}

// DefaultFont returns Monospace-12.
func DefaultFont() Font {
	return Font{Family: DefaultFontFamily, Size: DefaultFontSize}
}

// ParseFont parses a font string. Missing parts fall back to the defaults;
// "*" keeps the default for that part.
func ParseFont(s string) (Font, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Font{}, fmt.Errorf("empty font")
	}
	f := DefaultFont()
	parts := strings.Split(s, "-")
	if p := strings.TrimSpace(parts[0]); p != "" && p != "*" {
		f.Family = p
	}
	if len(parts) > 1 {
		if p := strings.TrimSpace(parts[1]); p != "" && p != "*" {
			n, err := strconv.Atoi(p)
			if err != nil {
				return Font{}, fmt.Errorf("font %q: bad size: %w", s, err)
			}
			f.Size = n
		}
	}
	if len(parts) > 2 {
		if p := strings.TrimSpace(strings.Join(parts[2:], "-")); p != "*" {
			f.Weight = p
		}
	}
	f.Size = clampFontSize(f.Size)
	return f, nil
}

// String formats the font the way ParseFont reads it.
func (f Font) String() string {
	s := f.Family + "-" + strconv.Itoa(f.Size)
	if f.Weight != "" {
		s += "-" + f.Weight
	}
	return s
}

// WithSize returns f resized by delta, clamped to [MinFontSize, MaxFontSize].
func (f Font) WithSize(delta int) Font {
	f.Size = clampFontSize(f.Size + delta)
	return f
}

func clampFontSize(n int) int {
	if n < MinFontSize {
		return MinFontSize
	}
	if n > MaxFontSize {
		return MaxFontSize
	}
	return n
}

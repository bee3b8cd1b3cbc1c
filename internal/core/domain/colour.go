package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// Colour is a named swatch from the note palette.
type Colour struct {
	// Name is the lowercase swatch name, e.g. "yellow".
	Name string

	// Hex is the stored colour token, e.g. "#FFFF99".
	Hex string
}

// Palette swatches offered by the note form.
var (
	// ColourYellow is the default note colour.
	ColourYellow = Colour{Name: "yellow", Hex: "#FFFF99"}

	// ColourBlue is the blue swatch.
	ColourBlue = Colour{Name: "blue", Hex: "#99CCFF"}

	// ColourRed is the red swatch.
	ColourRed = Colour{Name: "red", Hex: "#FF9999"}
)

// DefaultColour is used when a note is created without a colour.
var DefaultColour = ColourYellow

var hexColourPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Palette returns all swatches in display order.
func Palette() []Colour {
	return []Colour{ColourYellow, ColourBlue, ColourRed}
}

// String returns the swatch name.
func (c Colour) String() string {
	return c.Name
}

// Label returns the capitalised swatch name for display.
func (c Colour) Label() string {
	if c.Name == "" {
		return c.Hex
	}
	return strings.ToUpper(c.Name[:1]) + c.Name[1:]
}

// ParseColour resolves a swatch name (case-insensitive) or a hex token
// such as "#fff" or "#99CCFF". Hex tokens outside the palette are
// returned with an empty Name.
func ParseColour(s string) (Colour, error) {
	s = strings.TrimSpace(s)
	for _, c := range Palette() {
		if strings.EqualFold(s, c.Name) || strings.EqualFold(s, c.Hex) {
			return c, nil
		}
	}
	if hexColourPattern.MatchString(s) {
		return Colour{Hex: s}, nil
	}
	return Colour{}, fmt.Errorf("%w: unknown colour %q (use yellow, blue, red or #RRGGBB)", ErrInvalidInput, s)
}

// ColourName returns the palette name for a stored colour token,
// or the token itself when it is not a palette swatch.
func ColourName(token string) string {
	for _, c := range Palette() {
		if strings.EqualFold(token, c.Hex) {
			return c.Name
		}
	}
	return token
}

// ABOUTME: Fixed set of accent color tokens and their display hex values
// ABOUTME: Provides ordered enumeration, hex lookup and case-insensitive parsing

// Package palette holds the accent color tokens offered by the viewer.
package palette

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAccent is returned for tokens outside the fixed set
var ErrUnknownAccent = errors.New("unknown accent color")

// AccentColor names one UI accent theme
type AccentColor string

// Accent tokens in display order
const (
	Gray    AccentColor = "gray"
	Gold    AccentColor = "gold"
	Bronze  AccentColor = "bronze"
	Brown   AccentColor = "brown"
	Yellow  AccentColor = "yellow"
	Amber   AccentColor = "amber"
	Orange  AccentColor = "orange"
	Tomato  AccentColor = "tomato"
	Red     AccentColor = "red"
	Ruby    AccentColor = "ruby"
	Crimson AccentColor = "crimson"
	Pink    AccentColor = "pink"
	Plum    AccentColor = "plum"
	Purple  AccentColor = "purple"
	Violet  AccentColor = "violet"
	Iris    AccentColor = "iris"
	Indigo  AccentColor = "indigo"
	Blue    AccentColor = "blue"
	Cyan    AccentColor = "cyan"
	Teal    AccentColor = "teal"
	Jade    AccentColor = "jade"
	Green   AccentColor = "green"
	Grass   AccentColor = "grass"
	Lime    AccentColor = "lime"
	Mint    AccentColor = "mint"
	Sky     AccentColor = "sky"
)

var order = []AccentColor{
	Gray, Gold, Bronze, Brown, Yellow, Amber, Orange, Tomato, Red, Ruby,
	Crimson, Pink, Plum, Purple, Violet, Iris, Indigo, Blue, Cyan, Teal,
	Jade, Green, Grass, Lime, Mint, Sky,
}

var hexByAccent = map[AccentColor]string{
	Gray:    "#8d8d8d",
	Gold:    "#978365",
	Bronze:  "#a18072",
	Brown:   "#ad7f58",
	Yellow:  "#ffe629",
	Amber:   "#ffc53d",
	Orange:  "#f76b15",
	Tomato:  "#e54d2e",
	Red:     "#e5484d",
	Ruby:    "#e54666",
	Crimson: "#e93d82",
	Pink:    "#d6409f",
	Plum:    "#ab4aba",
	Purple:  "#8e4ec6",
	Violet:  "#6e56cf",
	Iris:    "#5b5bd6",
	Indigo:  "#3e63dd",
	Blue:    "#0090ff",
	Cyan:    "#00a2c7",
	Teal:    "#14a494",
	Jade:    "#29a383",
	Green:   "#30a46c",
	Grass:   "#46a758",
	Lime:    "#bdee63",
	Mint:    "#86ead4",
	Sky:     "#7ce2fe",
}

// All returns every accent token in display order
// The returned slice is a copy and may be modified by the caller
func All() []AccentColor {
	return append([]AccentColor(nil), order...)
}

// Len returns the number of accent tokens
func Len() int {
	return len(order)
}

// Hex returns the display color for an accent token
func Hex(c AccentColor) (string, error) {
	hex, ok := hexByAccent[c]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAccent, string(c))
	}

	return hex, nil
}

// Parse resolves a token name case-insensitively
func Parse(s string) (AccentColor, error) {
	c := AccentColor(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownAccent, s)
	}

	return c, nil
}

// Valid reports whether c belongs to the fixed set
func (c AccentColor) Valid() bool {
	_, ok := hexByAccent[c]
	return ok
}

// Label returns the capitalized display name ("teal" -> "Teal")
func (c AccentColor) Label() string {
	if c == "" {
		return ""
	}

	return strings.ToUpper(string(c[:1])) + string(c[1:])
}

// String implements fmt.Stringer
func (c AccentColor) String() string {
	return string(c)
}

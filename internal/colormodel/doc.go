// Package colormodel implements the color-space math used to describe a
// picked color.
//
// Every function in this package is pure and total: malformed hex input is
// never an error. Parsing reports it through an ok flag, and the dependent
// computations (harmonies, contrast, descriptions) substitute black.
//
// # Color Representation
//
// The canonical form of a color is a 6-digit uppercase hex string prefixed
// with '#', for example "#FF8040". Input is accepted case-insensitively with
// or without the leading '#'. Derived encodings are:
//   - RGB: 8-bit components (0-255)
//   - HSL: Hue (0-359), Saturation (0-100), Lightness (0-100)
//   - CMYK: Cyan, Magenta, Yellow, Key, each 0-100
//   - HSV and CIE L*a*b*, computed through go-colorful
//
// # Harmonies
//
// Harmonies is a fixed three-color scheme: the complement (+180°) and the
// two split complements (+150° and +210°), at the base color's saturation
// and lightness.
package colormodel

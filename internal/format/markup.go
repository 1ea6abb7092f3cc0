package format

// Color names the highlight colors the formatter uses. How a color is
// rendered belongs to the Markup implementation.
type Color int

const (
	ColorRed Color = iota
	ColorGreen
	ColorOrange
)

// Markup is the text-emphasis capability the formatter renders through.
type Markup interface {
	Bold(s string) string
	Color(s string, c Color) string
}

// IRC renders mIRC control codes: 0x02 toggles bold, 0x03 plus a two-digit
// palette index starts a color run.
type IRC struct{}

var ircPalette = map[Color]string{
	ColorRed:    "04",
	ColorGreen:  "03",
	ColorOrange: "07",
}

func (IRC) Bold(s string) string {
	return "\x02" + s + "\x02"
}

func (IRC) Color(s string, c Color) string {
	code, ok := ircPalette[c]
	if !ok {
		return s
	}
	return "\x03" + code + s + "\x03"
}

// Plain renders no emphasis at all.
type Plain struct{}

func (Plain) Bold(s string) string           { return s }
func (Plain) Color(s string, _ Color) string { return s }

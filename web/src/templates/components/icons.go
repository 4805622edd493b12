package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Icon paths from the Lucide set.
var iconPaths = map[string][]string{
	"calendar":     {"M8 2v4", "M16 2v4", "M3 10h18", "M5 4h14a2 2 0 0 1 2 2v14a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2V6a2 2 0 0 1 2-2z"},
	"map-pin":      {"M20 10c0 4.993-5.539 10.193-7.399 11.799a1 1 0 0 1-1.202 0C9.539 20.193 4 14.993 4 10a8 8 0 0 1 16 0", "M12 7a3 3 0 1 0 0 6 3 3 0 0 0 0-6z"},
	"arrow-right":  {"M5 12h14", "m12 5 7 7-7 7"},
	"move-right":   {"M18 8L22 12L18 16", "M2 12H22"},
	"star":         {"M11.525 2.295a.53.53 0 0 1 .95 0l2.31 4.679a2.123 2.123 0 0 0 1.595 1.16l5.166.756a.53.53 0 0 1 .294.904l-3.736 3.638a2.123 2.123 0 0 0-.611 1.878l.882 5.14a.53.53 0 0 1-.771.56l-4.618-2.428a2.122 2.122 0 0 0-1.973 0L6.396 21.01a.53.53 0 0 1-.77-.56l.881-5.139a2.122 2.122 0 0 0-.611-1.879L2.16 9.795a.53.53 0 0 1 .294-.906l5.165-.755a2.122 2.122 0 0 0 1.597-1.16z"},
	"chevron-down": {"m6 9 6 6 6-6"},
	"menu":         {"M4 12h16", "M4 6h16", "M4 18h16"},
	"x":            {"M18 6 6 18", "m6 6 12 12"},
	"message":      {"M7.9 20A9 9 0 1 0 4 16.1L2 22Z"},
}

// Icon renders a stroked Lucide icon at size pixels.
func Icon(name string, size int, class string) g.Node {
	paths := iconPaths[name]
	children := make([]g.Node, 0, len(paths))
	for _, d := range paths {
		children = append(children, g.El("path", g.Attr("d", d)))
	}
	return g.El("svg",
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		Width(strconv.Itoa(size)), Height(strconv.Itoa(size)),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "1.5"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		g.Attr("aria-hidden", "true"),
		g.If(class != "", Class(class)),
		g.Group(children),
	)
}

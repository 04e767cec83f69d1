package cli

import "strings"

// glyphs is a 3x5 block font for the digits 0-9.
var glyphs = [10][5]string{
	{"###", "# #", "# #", "# #", "###"},
	{"  #", "  #", "  #", "  #", "  #"},
	{"###", "  #", "###", "#  ", "###"},
	{"###", "  #", "###", "  #", "###"},
	{"# #", "# #", "###", "  #", "  #"},
	{"###", "#  ", "###", "  #", "###"},
	{"###", "#  ", "###", "# #", "###"},
	{"###", "  #", "  #", "  #", "  #"},
	{"###", "# #", "###", "# #", "###"},
	{"###", "# #", "###", "  #", "###"},
}

// bigDigit renders v with every font cell doubled horizontally so the digit
// looks roughly square in a terminal.
func bigDigit(v int) string {
	if v < 0 || v > 9 {
		v = 0
	}

	rows := make([]string, 0, len(glyphs[v]))

	for _, row := range glyphs[v] {
		var b strings.Builder

		for _, c := range row {
			if c == '#' {
				b.WriteString("██")
			} else {
				b.WriteString("  ")
			}
		}

		rows = append(rows, b.String())
	}

	return strings.Join(rows, "\n")
}

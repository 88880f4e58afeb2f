package viewer

import (
	"fmt"
	"io"
)

const Help = `Controls:
1: Perspective View
2: Oxy Projection (Front)
3: Oxz Projection (Top)
4: Oyz Projection (Side)
TAB: Switch Transform Mode (Current: Translate)
Arrows/PgUp/PgDn: Apply Transformation
R: Reset
Esc: Quit
--------------------
`

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, Help)
}

// Status describes the modes and the transform in one line.
func Status(st *State) string {
	t, r, s := st.Translation, st.Rotation, st.Scale
	return fmt.Sprintf("Mode: %s | View: %s | T: %.1f,%.1f,%.1f R: %.0f,%.0f,%.0f S: %.1f,%.1f,%.1f",
		st.Mode, st.View,
		t[0], t[1], t[2],
		r[0], r[1], r[2],
		s[0], s[1], s[2])
}

// Title is the window title for st.
func Title(prefix string, st *State) string {
	return prefix + " - " + Status(st)
}

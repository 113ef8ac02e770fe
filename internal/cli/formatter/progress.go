package formatter

import (
	"strings"
)

const (
	trackRune  = "─"
	markerRune = "●"
)

// RenderTimeline draws the session as a track of the given width with a
// marker wherever a nudge lands. Offsets outside the session are pinned
// to the nearest end.
func RenderTimeline(timing []int, sessionSec, width int) string {
	if width < 2 {
		width = 2
	}
	cells := make([]bool, width)
	for _, off := range timing {
		cells[timelineCell(off, sessionSec, width)] = true
	}

	var b strings.Builder
	for _, marked := range cells {
		if marked {
			b.WriteString(StyleYellow.Render(markerRune))
		} else {
			b.WriteString(StyleDim.Render(trackRune))
		}
	}
	return b.String()
}

func timelineCell(off, sessionSec, width int) int {
	if sessionSec <= 0 || off <= 0 {
		return 0
	}
	if off >= sessionSec {
		return width - 1
	}
	return min(off*width/sessionSec, width-1)
}

package viz

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/swingby/internal/dynamo"
)

// OrbitSVG renders traj as a single SVG path on a dark background, with
// the attractor drawn at the origin. Both axes share one scale. Long
// trajectories are thinned to at most maxPoints vertices.
func OrbitSVG(traj dynamo.Trajectory, width, height, maxPoints int) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height)

	v := newViewport(traj, width, height)

	ox, oy := v.projectF(0, 0)
	fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="4" fill="#ffaa00"/>
`, ox, oy)

	idx := pathIndices(len(traj), maxPoints)
	if len(idx) >= 2 {
		sb.WriteString(`<path fill="none" stroke="#00ff88" stroke-width="1.5" d="`)
		for n, i := range idx {
			x, y := v.projectF(traj[i].X, traj[i].Y)
			if n == 0 {
				fmt.Fprintf(&sb, "M%.1f,%.1f", x, y)
			} else {
				fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
			}
		}
		sb.WriteString("\"/>\n")
	}
	if len(traj) > 0 {
		sx, sy := v.projectF(traj[0].X, traj[0].Y)
		fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="2.5" fill="#00ccff"/>
`, sx, sy)
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// WriteOrbitSVG writes OrbitSVG output to w.
func WriteOrbitSVG(w io.Writer, traj dynamo.Trajectory, width, height int) error {
	_, err := io.WriteString(w, OrbitSVG(traj, width, height, 4*(width+height)))
	return err
}

// pathIndices picks evenly strided sample indices, always keeping the
// first and last sample.
func pathIndices(n, maxPoints int) []int {
	if n == 0 {
		return nil
	}
	stride := 1
	if maxPoints >= 2 && n > maxPoints {
		stride = (n + maxPoints - 2) / (maxPoints - 1)
	}
	idx := make([]int, 0, n/stride+2)
	for i := 0; i < n; i += stride {
		idx = append(idx, i)
	}
	if idx[len(idx)-1] != n-1 {
		idx = append(idx, n-1)
	}
	return idx
}

package viz

import (
	"math"
	"strings"

	"github.com/san-kum/swingby/internal/dynamo"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// Set sets a pixel at (x, y) in sub-pixel coordinates.
// The canvas size in sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return false
	}
	return c.Grid[y/4][x/2]&rune(pixelMap[y%4][x%2]) != 0
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Viewport maps world coordinates in meters onto canvas sub-pixels with
// equal scale on both axes. The origin is always inside the view.
type Viewport struct {
	minX, maxY float64
	scale      float64
	pxW, pxH   int
}

func NewViewport(traj dynamo.Trajectory, c *Canvas) Viewport {
	return newViewport(traj, c.Width*2, c.Height*4)
}

func newViewport(traj dynamo.Trajectory, pxW, pxH int) Viewport {
	minX, maxX, minY, maxY := 0.0, 0.0, 0.0, 0.0
	for _, s := range traj {
		minX, maxX = math.Min(minX, s.X), math.Max(maxX, s.X)
		minY, maxY = math.Min(minY, s.Y), math.Max(maxY, s.Y)
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.05
	maxY += rangeY * 0.05
	rangeX *= 1.1
	rangeY *= 1.1

	scale := math.Min(float64(pxW-1)/rangeX, float64(pxH-1)/rangeY)

	// center the shorter axis
	minX -= (float64(pxW-1)/scale - rangeX) / 2
	maxY += (float64(pxH-1)/scale - rangeY) / 2

	return Viewport{minX: minX, maxY: maxY, scale: scale, pxW: pxW, pxH: pxH}
}

// Project returns the sub-pixel position of world point (x, y).
func (v Viewport) Project(x, y float64) (int, int) {
	px, py := v.projectF(x, y)
	return int(math.Round(px)), int(math.Round(py))
}

func (v Viewport) projectF(x, y float64) (float64, float64) {
	return (x - v.minX) * v.scale, (v.maxY - y) * v.scale
}

// DrawPath draws traj[:upto] as connected segments.
func DrawPath(c *Canvas, v Viewport, traj dynamo.Trajectory, upto int) {
	if upto > len(traj) {
		upto = len(traj)
	}
	if upto == 0 {
		return
	}
	px, py := v.Project(traj[0].X, traj[0].Y)
	c.Set(px, py)
	for i := 1; i < upto; i++ {
		nx, ny := v.Project(traj[i].X, traj[i].Y)
		if nx != px || ny != py {
			c.DrawLine(px, py, nx, ny)
			px, py = nx, ny
		}
	}
}

// DrawAttractor marks the origin with a small cross.
func DrawAttractor(c *Canvas, v Viewport) {
	ox, oy := v.Project(0, 0)
	c.DrawLine(ox-1, oy, ox+1, oy)
	c.DrawLine(ox, oy-1, ox, oy+1)
}

// RenderOrbit draws the whole trajectory and the attractor on a w x h cell canvas.
func RenderOrbit(traj dynamo.Trajectory, w, h int) string {
	c := NewCanvas(w, h)
	v := NewViewport(traj, c)
	DrawAttractor(c, v)
	DrawPath(c, v, traj, len(traj))
	return c.String()
}

package viz

import (
	"math"
	"strings"
	"testing"

	"github.com/san-kum/swingby/internal/dynamo"
)

func circle(n int, r float64) dynamo.Trajectory {
	traj := make(dynamo.Trajectory, n+1)
	for i := range traj {
		a := 2 * math.Pi * float64(i) / float64(n)
		traj[i] = dynamo.State{Time: float64(i), X: r * math.Cos(a), Y: r * math.Sin(a)}
	}
	return traj
}

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	c.Set(-1, 0)
	c.Set(10, 10)

	if c.Grid[0][0] != brailleBlank|0x1 {
		t.Errorf("cell 0 = %U, want %U", c.Grid[0][0], brailleBlank|0x1)
	}
	if c.Grid[0][1] != brailleBlank|0x80 {
		t.Errorf("cell 1 = %U, want %U", c.Grid[0][1], brailleBlank|0x80)
	}
	if !c.IsSet(0, 0) || c.IsSet(1, 0) || c.IsSet(-1, 0) {
		t.Error("IsSet disagrees with Set")
	}

	c.Clear()
	if c.IsSet(0, 0) {
		t.Error("Clear left a pixel set")
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(4, 1)
	c.DrawLine(0, 0, 7, 0)
	for x := 0; x < 8; x++ {
		if !c.IsSet(x, 0) {
			t.Errorf("pixel (%d,0) not set", x)
		}
	}
	if got := strings.Count(c.String(), "\n"); got != 1 {
		t.Errorf("expected 1 row, got %d", got)
	}
}

func TestViewportKeepsOriginAndAspect(t *testing.T) {
	c := NewCanvas(40, 10)
	traj := circle(64, 7.0e6)
	v := NewViewport(traj, c)

	ox, oy := v.Project(0, 0)
	rx, _ := v.Project(7.0e6, 0)
	_, ty := v.Project(0, 7.0e6)

	if ox < 0 || ox >= c.Width*2 || oy < 0 || oy >= c.Height*4 {
		t.Fatalf("origin projected outside canvas: (%d,%d)", ox, oy)
	}
	if dx, dy := rx-ox, oy-ty; absInt(dx-dy) > 1 {
		t.Errorf("unequal axis scale: dx=%d dy=%d", dx, dy)
	}
	for _, s := range traj {
		px, py := v.Project(s.X, s.Y)
		if px < 0 || px >= c.Width*2 || py < 0 || py >= c.Height*4 {
			t.Errorf("sample (%g,%g) projected outside canvas: (%d,%d)", s.X, s.Y, px, py)
		}
	}
}

func TestRenderOrbit(t *testing.T) {
	out := RenderOrbit(circle(128, 7.0e6), 30, 12)
	rows := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(rows) != 12 {
		t.Fatalf("expected 12 rows, got %d", len(rows))
	}

	dots := 0
	for _, r := range out {
		if r > brailleBlank && r <= brailleBlank+0xff {
			dots++
		}
	}
	if dots < 20 {
		t.Errorf("expected a drawn orbit, only %d non-blank cells", dots)
	}
}

func TestRenderOrbit_Degenerate(t *testing.T) {
	// a single sample must not divide by zero
	out := RenderOrbit(dynamo.Trajectory{{X: 5}}, 10, 5)
	if out == "" {
		t.Error("expected output for a single sample")
	}
}

func TestDecimate(t *testing.T) {
	data := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	got := Decimate(data, 4)
	want := []float64{0, 4, 8, 9}
	if len(got) != len(want) {
		t.Fatalf("Decimate = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Decimate = %v, want %v", got, want)
			break
		}
	}

	if short := Decimate(data[:3], 4); len(short) != 3 {
		t.Errorf("short input should pass through, got %v", short)
	}
}

func TestPlotSeries(t *testing.T) {
	data := make([]float64, 1000)
	for i := range data {
		data[i] = math.Sin(float64(i) / 50)
	}
	out := PlotSeries(data, "x vs sample", 60, 8)
	if !strings.Contains(out, "x vs sample") {
		t.Error("caption missing from plot")
	}
	if PlotSeries(nil, "empty", 60, 8) != "" {
		t.Error("expected empty plot for no data")
	}

	long := make([]float64, 5000)
	for i := range long {
		long[i] = math.Sin(float64(i) / 100)
	}
	out = PlotSeries(long, "x (m)", 40, 5)
	if !strings.Contains(out, "x (m)") {
		t.Error("caption missing from decimated plot")
	}
}

func TestSummaryPanel(t *testing.T) {
	out := SummaryPanel("run", []Field{F("steps", "%d", 10), F("min radius", "%.1f km", 7000.0)})
	for _, want := range []string{"run", "steps", "10", "min radius", "7000.0 km"} {
		if !strings.Contains(out, want) {
			t.Errorf("panel missing %q:\n%s", want, out)
		}
	}
}

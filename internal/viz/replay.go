package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/swingby/internal/dynamo"
)

const (
	replayWidth  = 70
	replayHeight = 22
	minStride    = 1
)

type tickMsg time.Time

// ReplayModel animates a finished trajectory. Each frame advances the
// cursor by stride samples.
type ReplayModel struct {
	traj     dynamo.Trajectory
	canvas   *Canvas
	view     Viewport
	cursor   int
	stride   int
	frame    time.Duration
	paused   bool
	quitting bool
}

// NewReplay plays traj in roughly the given number of frames.
func NewReplay(traj dynamo.Trajectory, frames int, fps int) ReplayModel {
	if frames < 1 {
		frames = 1
	}
	if fps < 1 {
		fps = 30
	}
	stride := len(traj) / frames
	if stride < minStride {
		stride = minStride
	}

	c := NewCanvas(replayWidth, replayHeight)
	return ReplayModel{
		traj:   traj,
		canvas: c,
		view:   NewViewport(traj, c),
		stride: stride,
		frame:  time.Second / time.Duration(fps),
	}
}

func (m ReplayModel) tick() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m ReplayModel) Init() tea.Cmd { return m.tick() }

func (m ReplayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "+", "=":
			m.stride *= 2
		case "-", "_":
			if m.stride > minStride {
				m.stride /= 2
			}
		case "r":
			m.cursor = 0
		}
		return m, nil
	case tickMsg:
		if !m.paused && !m.Done() {
			m.cursor += m.stride
			if m.cursor > len(m.traj)-1 {
				m.cursor = len(m.traj) - 1
			}
		}
		return m, m.tick()
	}
	return m, nil
}

// Done reports whether the cursor reached the last sample.
func (m ReplayModel) Done() bool {
	return len(m.traj) == 0 || m.cursor >= len(m.traj)-1
}

func (m ReplayModel) Cursor() int  { return m.cursor }
func (m ReplayModel) Paused() bool { return m.paused }
func (m ReplayModel) Stride() int  { return m.stride }

func (m ReplayModel) View() string {
	if m.quitting {
		return ""
	}
	if len(m.traj) == 0 {
		return Subtle.Render("empty trajectory") + "\n"
	}

	m.canvas.Clear()
	DrawAttractor(m.canvas, m.view)
	DrawPath(m.canvas, m.view, m.traj, m.cursor+1)

	s := m.traj[m.cursor]
	status := StatusRunning.Render("▶ playing")
	if m.paused {
		status = StatusPaused.Render("⏸ paused")
	}

	progress := float64(m.cursor) / float64(max(len(m.traj)-1, 1))
	info := lipgloss.JoinVertical(lipgloss.Left,
		status,
		"",
		MetricLabel.Render("sample ")+MetricValue.Render(fmt.Sprintf("%d/%d", m.cursor, len(m.traj)-1)),
		MetricLabel.Render("t      ")+MetricValue.Render(fmt.Sprintf("%.1f s", s.Time)),
		MetricLabel.Render("r      ")+MetricValue.Render(fmt.Sprintf("%.1f km", s.Radius()/1000)),
		MetricLabel.Render("speed  ")+MetricValue.Render(fmt.Sprintf("%.3f km/s", s.Speed()/1000)),
		MetricLabel.Render("stride ")+MetricValue.Render(fmt.Sprintf("%d", m.stride)),
		"",
		ProgressBar(progress, 20),
	)

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, Panel.Render(OrbitStyle.Render(m.canvas.String())), "  ", info))
	b.WriteString("\n")
	b.WriteString(KeyHint.Render("space pause · +/- speed · r restart · q quit"))
	b.WriteString("\n")
	return b.String()
}

// Replay runs the animation until the user quits.
func Replay(traj dynamo.Trajectory, frames, fps int) error {
	_, err := tea.NewProgram(NewReplay(traj, frames, fps)).Run()
	return err
}

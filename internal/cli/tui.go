package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/forcegraph/pkg/geom"
	"github.com/matzehuels/forcegraph/pkg/interaction"
	"github.com/matzehuels/forcegraph/pkg/sim"
	"github.com/matzehuels/forcegraph/pkg/topo"
)

// frameInterval paces the render loop. Terminals have no vsync, so the
// model ticks itself with tea.Tick.
const frameInterval = 33 * time.Millisecond

// mousePointerID is the synthetic pointer id for the terminal mouse. A
// terminal only ever reports one pointer, so pinch states are unreachable
// in this host.
const mousePointerID = 1

// Node glyphs by shape.
var shapeGlyphs = map[topo.Shape]string{
	topo.ShapeCircle:  "●",
	topo.ShapeSquare:  "■",
	topo.ShapeDiamond: "◆",
}

// Node colors cycle by type so clusters read as groups.
var typeColors = []lipgloss.Color{colorCyan, colorGreen, colorYellow, colorBlue, colorRed}

type frameMsg time.Time

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// =============================================================================
// ViewModel - Interactive Graph Host
// =============================================================================

// viewModel is the bubbletea model hosting one simulation. All mouse input
// is translated to pointer events and fed to the interaction machine; the
// model itself holds no gesture state.
type viewModel struct {
	sim    *sim.Sim
	width  int
	height int

	// typeColor assigns a stable palette slot to each node type.
	typeColor map[string]lipgloss.Color

	buttonDown bool
	fitted     bool
}

func newViewModel(s *sim.Sim) viewModel {
	return viewModel{
		sim:       s,
		typeColor: make(map[string]lipgloss.Color),
	}
}

func (m viewModel) Init() tea.Cmd {
	return frameTick()
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.sim.Tick()
		return m, frameTick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.fitted && m.width > 0 && m.height > 1 {
			m.sim.FitToView(geom.V(float64(m.width), float64(m.height-1)), 2)
			m.fitted = true
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.sim.StopAllInteractions()
			return m, tea.Quit
		case "f":
			m.sim.FitToView(geom.V(float64(m.width), float64(m.height-1)), 2)
		case "r":
			m.sim.View().Reset()
		case "c":
			m.sim.ClearFilter()
		}

	case tea.MouseMsg:
		m.handleMouse(msg)
	}

	return m, nil
}

// handleMouse translates terminal mouse reports to pointer events.
func (m *viewModel) handleMouse(msg tea.MouseMsg) {
	pos := geom.V(float64(msg.X), float64(msg.Y))
	now := time.Now()

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.sim.Wheel(1, pos)
		return
	case tea.MouseButtonWheelDown:
		m.sim.Wheel(-1, pos)
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.buttonDown = true
			m.sim.Pointer(interaction.Down(mousePointerID, pos, now))
		}
	case tea.MouseActionMotion:
		if m.buttonDown {
			m.sim.Pointer(interaction.Move(mousePointerID, pos, now))
		}
	case tea.MouseActionRelease:
		if m.buttonDown {
			m.buttonDown = false
			m.sim.Pointer(interaction.Up(mousePointerID, pos, now))
		}
	}
}

func (m viewModel) View() string {
	if m.width == 0 || m.height < 2 {
		return "loading..."
	}

	canvasH := m.height - 1
	grid := make([][]string, canvasH)
	for y := range grid {
		row := make([]string, m.width)
		for x := range row {
			row[x] = " "
		}
		grid[y] = row
	}

	t := m.sim.View().Transform()
	f := m.sim.Filter()

	// Edges first so nodes draw over them.
	for _, e := range m.sim.Graph().Edges() {
		if f.Active() && (!f.Contains(e.Source) || !f.Contains(e.Target)) {
			continue
		}
		src, okS := m.sim.Graph().Node(e.Source)
		dst, okD := m.sim.Graph().Node(e.Target)
		if !okS || !okD {
			continue
		}
		drawLine(grid, t.SimToScreen(src.Position), t.SimToScreen(dst.Position))
	}

	for _, n := range m.sim.Graph().Nodes() {
		if f.Active() && !f.Contains(n.ID) {
			continue
		}
		p := t.SimToScreen(n.Position)
		x, y := int(p.X), int(p.Y)
		if x < 0 || x >= m.width || y < 0 || y >= canvasH {
			continue
		}
		glyph, ok := shapeGlyphs[n.Shape]
		if !ok {
			glyph = shapeGlyphs[topo.ShapeCircle]
		}
		grid[y][x] = lipgloss.NewStyle().Foreground(m.colorFor(n.Type)).Render(glyph)

		// Label to the right of the node when there is room.
		label := n.Name
		if x+1+len(label) < m.width {
			for i, r := range label {
				grid[y][x+1+i] = StyleDim.Render(string(r))
			}
		}
	}

	var b strings.Builder
	for _, row := range grid {
		b.WriteString(strings.Join(row, ""))
		b.WriteString("\n")
	}
	b.WriteString(m.statusLine())
	return b.String()
}

func (m viewModel) statusLine() string {
	t := m.sim.View().Transform()
	parts := []string{
		fmt.Sprintf("%d nodes", m.sim.Graph().NodeCount()),
		fmt.Sprintf("%d edges", m.sim.Graph().EdgeCount()),
		fmt.Sprintf("zoom %.2f", t.Scale),
	}
	if f := m.sim.Filter(); f.Active() {
		parts = append(parts, fmt.Sprintf("focus %s (c clears)", f.FocusID))
	}
	help := "drag: move/pan · wheel: zoom · f fit · r reset · q quit"
	return StyleTitle.Render("forcegraph") + "  " + StyleDim.Render(strings.Join(parts, " · ")+"  "+help)
}

func (m *viewModel) colorFor(nodeType string) lipgloss.Color {
	if c, ok := m.typeColor[nodeType]; ok {
		return c
	}
	c := typeColors[len(m.typeColor)%len(typeColors)]
	m.typeColor[nodeType] = c
	return c
}

// drawLine rasterizes a straight segment between two screen points with a
// simple DDA walk, skipping cells outside the grid.
func drawLine(grid [][]string, a, b geom.Vec) {
	steps := int(geom.Dist(a, b))
	if steps == 0 {
		return
	}
	for i := 0; i <= steps; i++ {
		r := float64(i) / float64(steps)
		x := int(a.X + (b.X-a.X)*r)
		y := int(a.Y + (b.Y-a.Y)*r)
		if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
			continue
		}
		if grid[y][x] == " " {
			grid[y][x] = StyleDim.Render("·")
		}
	}
}

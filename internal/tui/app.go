// Package tui is the terminal front end for the fryer simulation.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/erichobson/deep-frying-simulation/internal/config"
	"github.com/erichobson/deep-frying-simulation/internal/frying"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	orange = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// The terminal canvas is a scaled view of the scene; cells are roughly
// twice as tall as they are wide, hence the asymmetric scale factors.
const (
	canvasWidth  = 72
	canvasHeight = 26
)

type model struct {
	cfg   *config.Config
	scene config.Scene
	sim   *frying.Simulation

	tempHistory []float64
	lastFrame   time.Time
	fps         float64

	width  int
	height int
}

func NewApp(cfg *config.Config, sim *frying.Simulation) *model {
	return &model{
		cfg:         cfg,
		scene:       cfg.Scene(),
		sim:         sim,
		tempHistory: make([]float64, 0, 120),
		width:       80,
		height:      30,
	}
}

func (m model) Init() tea.Cmd { return tick(m.cfg.FPS) }

type tickMsg time.Time

func tick(fps int) tea.Cmd {
	if fps <= 0 {
		fps = config.DefaultFPS
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		now := time.Now()
		if !m.lastFrame.IsZero() {
			dt := now.Sub(m.lastFrame).Seconds()
			if dt > 0 {
				m.fps = 1.0 / dt
			}
		}
		m.lastFrame = now

		m.sim.Step(m.cfg.Dt)

		m.tempHistory = append(m.tempHistory, m.sim.Oil.Temperature)
		if len(m.tempHistory) > 120 {
			m.tempHistory = m.tempHistory[1:]
		}
		return m, tick(m.cfg.FPS)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "escape":
		return m, tea.Quit
	case " ":
		if m.sim.HasFry() {
			m.sim.RemoveFry()
		} else {
			m.sim.SpawnFry(
				mgl64.Vec2{m.cfg.DropX(), m.cfg.DropY()},
				mgl64.Vec2{m.cfg.Fry.Width, m.cfg.Fry.Height},
			)
		}
	case "p":
		m.sim.TogglePause()
	case "r":
		m.sim.Reset()
		m.tempHistory = m.tempHistory[:0]
	case "up", "k":
		m.sim.NudgeTargetTemperature(5)
	case "down", "j":
		m.sim.NudgeTargetTemperature(-5)
	}
	return m, nil
}

// toCell maps scene coordinates onto the rune canvas.
func (m model) toCell(x, y float64) (int, int) {
	cx := int(x / m.cfg.Screen.Width * canvasWidth)
	cy := int((y - 200) / (m.cfg.Screen.Height - 200) * canvasHeight)
	return cx, cy
}

func (m model) View() string {
	canvas := make([][]rune, canvasHeight)
	for i := range canvas {
		canvas[i] = make([]rune, canvasWidth)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	m.drawFryer(canvas)
	m.drawBubbles(canvas)
	m.drawFry(canvas)

	var b strings.Builder

	statusIcon := green.Render("●")
	statusText := green.Render("frying")
	if m.sim.Paused {
		statusIcon = yellow.Render("○")
		statusText = yellow.Render("paused")
	}
	b.WriteString(fmt.Sprintf("\n   %s %s  %s  %s\n\n",
		statusIcon, cyan.Render("frysim"), statusText,
		dim.Render(fmt.Sprintf("t=%.1fs  %.0ffps", m.sim.Elapsed, m.fps))))

	for _, row := range canvas {
		b.WriteString("   " + string(row) + "\n")
	}

	b.WriteString("\n" + m.statsPanel())

	if len(m.tempHistory) > 1 {
		b.WriteString(fmt.Sprintf("   %s %s\n",
			dim.Render("oil"), cyan.Render(sparkline(m.tempHistory, 32))))
	}

	b.WriteString("\n" + dim.Render("   space drop/lift  ↑↓ heat  p pause  r reset  q quit") + "\n")

	return b.String()
}

func (m model) drawFryer(canvas [][]rune) {
	lx, ty := m.toCell(m.scene.FryerLeft, m.scene.FryerTop)
	rx, by := m.toCell(m.scene.FryerRight, m.scene.OilBottom)
	_, oy := m.toCell(0, m.scene.OilTop)
	_, basketY := m.toCell(0, m.scene.BasketBottom)

	for y := ty; y <= by; y++ {
		setCell(canvas, lx, y, '│')
		setCell(canvas, rx, y, '│')
	}
	for x := lx; x <= rx; x++ {
		setCell(canvas, x, by, '═')
	}
	// Oil surface and basket floor.
	for x := lx + 1; x < rx; x++ {
		setCell(canvas, x, oy, '~')
		if x%2 == 0 {
			setCell(canvas, x, basketY, '‗')
		}
	}
}

func (m model) drawBubbles(canvas [][]rune) {
	for _, bub := range m.sim.Bubbles() {
		cx, cy := m.toCell(bub.Position.X(), bub.Position.Y())
		for _, pt := range bub.Trail {
			tx, tyy := m.toCell(pt.X(), pt.Y())
			setCell(canvas, tx, tyy, '·')
		}
		c := 'o'
		switch {
		case bub.ReachedSurface:
			c = '*'
		case bub.Size < 4:
			c = '∘'
		case bub.Size > 8:
			c = 'O'
		}
		setCell(canvas, cx, cy, c)
	}
}

func (m model) drawFry(canvas [][]rune) {
	if !m.sim.HasFry() {
		return
	}
	f := m.sim.Fry()
	lx, ty := m.toCell(f.Position.X()-f.Size.X()/2, f.Position.Y()-f.Size.Y()/2)
	rx, by := m.toCell(f.Position.X()+f.Size.X()/2, f.Position.Y()+f.Size.Y()/2)
	if by < ty+1 {
		by = ty + 1
	}

	fill := '░'
	if f.Cookedness > 0.66 {
		fill = '▓'
	} else if f.Cookedness > 0.33 {
		fill = '▒'
	}
	for y := ty; y <= by; y++ {
		for x := lx; x <= rx; x++ {
			setCell(canvas, x, y, fill)
		}
	}
	if f.CrustThickness > 0.5 {
		for x := lx; x <= rx; x++ {
			setCell(canvas, x, ty, '▔')
		}
	}
}

func (m model) statsPanel() string {
	var b strings.Builder

	heat := " "
	if m.sim.Oil.Target > m.sim.Oil.Temperature+0.1 {
		heat = "^"
	} else if m.sim.Oil.Target < m.sim.Oil.Temperature-0.1 {
		heat = "v"
	}
	b.WriteString(fmt.Sprintf("   %s %s%s  %s %.4f\n",
		dim.Render("oil"),
		orange.Render(fmt.Sprintf("%.1f°C", m.sim.Oil.Temperature)),
		yellow.Render(heat),
		dim.Render("viscosity"), m.sim.Oil.Viscosity()))

	if !m.sim.HasFry() {
		b.WriteString(dim.Render("   no fry in the basket\n"))
		return b.String()
	}

	f := m.sim.Fry()

	buoy := dim.Render("SINK")
	if f.Floating(m.sim.Oil.Density()) {
		buoy = green.Render("FLOAT")
	}
	moisture := fmt.Sprintf("%.0f%%", f.MoistureContent*100)
	if f.MoistureContent <= frying.MinMoisture {
		moisture = yellow.Render("EVAP")
	}
	cooked := fmt.Sprintf("%.0f%%", f.Cookedness*100)
	if f.Cookedness >= 0.999 {
		cooked = green.Render("DONE")
	}

	b.WriteString(fmt.Sprintf("   %s %s  %s %s %s  %s %s\n",
		dim.Render("core"), white.Render(fmt.Sprintf("%.1f°C", f.Temperature)),
		dim.Render("h2o"), moisture, buoy,
		dim.Render("cooked"), cooked))
	b.WriteString(fmt.Sprintf("   %s %s  %s %.2f  %s %d\n",
		dim.Render("crust"), white.Render(fmt.Sprintf("%.0f%%", f.CrustThickness*100)),
		dim.Render("in oil"), f.TimeInOil,
		dim.Render("bubbles"), m.sim.BubbleCount()))

	return b.String()
}

func setCell(canvas [][]rune, x, y int, c rune) {
	if x >= 0 && x < canvasWidth && y >= 0 && y < canvasHeight {
		canvas[y][x] = c
	}
}

func sparkline(data []float64, width int) string {
	if len(data) == 0 {
		return ""
	}
	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	minVal, maxVal := data[0], data[0]
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	rang := maxVal - minVal
	if rang == 0 {
		rang = 1
	}
	step := len(data) / width
	if step < 1 {
		step = 1
	}
	var sb strings.Builder
	for i := 0; i < width && i*step < len(data); i++ {
		v := data[i*step]
		idx := int((v - minVal) / rang * 7)
		if idx > 7 {
			idx = 7
		}
		if idx < 0 {
			idx = 0
		}
		sb.WriteRune(chars[idx])
	}
	return sb.String()
}

func Run(cfg *config.Config, sim *frying.Simulation) error {
	p := tea.NewProgram(NewApp(cfg, sim), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

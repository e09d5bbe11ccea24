package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/spacehole-rogue/starmap/assets"
	"github.com/spacehole-rogue/starmap/internal/game"
	"github.com/spacehole-rogue/starmap/internal/indicator"
	"github.com/spacehole-rogue/starmap/internal/log"
	"github.com/spacehole-rogue/starmap/internal/render"
	"github.com/spacehole-rogue/starmap/internal/world"
)

const (
	screenWidth  = 1280
	screenHeight = 720
	title        = "Starmap"

	cellWidth  = 16
	cellHeight = 16

	navMax    = 6 // visible nav log lines
	hoverRow  = 1
	trackRow  = 3
	trackCols = 22
)

var (
	configPath  = flag.String("config", "", "indicator settings JSON (default: embedded)")
	catalogPath = flag.String("catalog", "", "star catalog JSON (default: embedded local cluster)")
	logLevel    = flag.String("loglevel", "info", "log level: debug, info, warn, error")
	logDir      = flag.String("logdir", "", "log directory (default: user config dir)")
)

// Game is the Ebitengine game struct. It owns rendering and input; the
// scene state lives in scene.
type Game struct {
	renderer *render.GridRenderer
	buffer   *render.CellBuffer
	labels   *render.LabelCache
	sprites  *render.SpriteLayer
	scene    *game.StarMap
	lg       *log.Logger

	width, height int
	hover         string
}

func NewGame(lg *log.Logger) (*Game, error) {
	settingsData, err := readAsset(*configPath, assets.Config.ReadFile, "config/indicator.json")
	if err != nil {
		return nil, fmt.Errorf("load indicator settings: %w", err)
	}
	settings, err := indicator.LoadSettings(settingsData)
	if err != nil {
		return nil, err
	}

	catalogData, err := readAsset(*catalogPath, assets.Stars.ReadFile, "stars/local.json")
	if err != nil {
		return nil, fmt.Errorf("load star catalog: %w", err)
	}
	cat, err := world.LoadCatalog(catalogData)
	if err != nil {
		return nil, err
	}

	sprites := render.NewSpriteLayer()
	g := &Game{
		renderer: render.NewGridRenderer(render.NewFontAtlas(), cellWidth, cellHeight),
		buffer:   render.NewCellBuffer(screenWidth/cellWidth, screenHeight/cellHeight),
		labels:   render.NewLabelCache(),
		sprites:  sprites,
		scene:    game.NewStarMap(cat, settings, sprites.NewSprite, screenWidth, screenHeight, lg),
		lg:       lg,
		width:    screenWidth,
		height:   screenHeight,
	}
	return g, nil
}

// readAsset reads path from disk, or name from the embedded assets when
// path is empty.
func readAsset(path string, embedded func(string) ([]byte, error), name string) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}
	return embedded(name)
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	fwd, strafe, lift := 0, 0, 0
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		fwd++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		fwd--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		strafe++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		strafe--
	}
	if ebiten.IsKeyPressed(ebiten.KeyR) {
		lift++
	}
	if ebiten.IsKeyPressed(ebiten.KeyF) {
		lift--
	}
	g.scene.Rig.Thrust(fwd, strafe, lift)

	yaw, pitch := 0, 0
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		yaw++
	}
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		yaw--
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		pitch++
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		pitch--
	}
	g.scene.Rig.Turn(yaw, pitch)

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.scene.Rig.Stop()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		on := g.scene.TogglePanelBoundary()
		g.lg.Debug("panel boundary", "on", on)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		g.scene.CycleUnit()
	}

	mx, my := ebiten.CursorPosition()
	g.hover, _ = g.scene.StarAt(float64(mx), float64(my))
	if g.hover != "" && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if err := g.scene.ToggleTrack(g.hover); err != nil {
			g.lg.Warn("toggle track", "star", g.hover, "error", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDelete) && g.hover != "" {
		g.scene.RemoveStar(g.hover)
		g.hover = ""
	}

	g.scene.Tick(1 / float64(ebiten.TPS()))
	g.drawHUD()
	return nil
}

func (g *Game) drawHUD() {
	buf := g.buffer
	buf.Clear()
	cols, rows := buf.Cols, buf.Rows

	buf.WriteString(2, 0, title, render.ColorWhite, render.ColorBlack)
	buf.WriteString(12, 0, fmt.Sprintf("[ %s ]", g.scene.Catalog.Name), render.ColorLightCyan, render.ColorBlack)
	buf.WriteRight(cols-2, 0, fmt.Sprintf("Speed %3d%%  Range: %s", g.scene.Rig.SpeedPct(), g.scene.Unit()),
		render.ColorLightGray, render.ColorBlack)

	if g.hover != "" {
		if info, ok := g.scene.Info(g.hover); ok {
			buf.WriteString(2, hoverRow, fmt.Sprintf("%s  %s  mag %.1f", info.Name, info.Class.Describe(), info.Magnitude),
				render.StarColor(info.Class), render.ColorBlack)
		}
	}

	x := cols - trackCols
	buf.WriteString(x, trackRow, "--- Tracking ---", render.ColorLightCyan, render.ColorBlack)
	for i, name := range g.scene.Tracked() {
		c := g.scene.Controller(name)
		clr := uint8(render.ColorLightGreen)
		if c.State() != indicator.StateActive {
			clr = render.ColorDarkGray
		}
		line := fmt.Sprintf("%-10s %s", name, indicator.FormatDistance(c.Distance(), g.scene.Unit(), indicator.DefaultDistanceFormat))
		buf.WriteString(x, trackRow+1+i, strings.TrimSpace(line), clr, render.ColorBlack)
	}

	msgs := g.scene.Log.Recent(navMax)
	top := rows - 2 - len(msgs)
	for i, msg := range msgs {
		buf.WriteString(2, top+i, msg.Text, navColor(msg.Priority), render.ColorBlack)
	}

	buf.WriteString(2, rows-1, "WASD/RF: Thrust  Arrows: Turn  Click: Track  B: Panel  U: Units  Del: Remove  ESC: Quit",
		render.ColorDarkGray, render.ColorBlack)
	buf.WriteRight(cols-2, rows-2, fmt.Sprintf("FPS: %.0f  TPS: %.0f", ebiten.ActualFPS(), ebiten.ActualTPS()),
		render.ColorDarkGray, render.ColorBlack)
}

func navColor(p game.NavPriority) uint8 {
	switch p {
	case game.NavWarning:
		return render.ColorLightRed
	case game.NavLost:
		return render.ColorYellow
	case game.NavAcquired:
		return render.ColorLightGreen
	default:
		return render.ColorCyan
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	projected := g.scene.Project()
	pts := make([]render.StarPoint, len(projected))
	for i, s := range projected {
		pts[i] = render.StarPoint{
			Name:      s.Name,
			Screen:    s.Screen,
			Depth:     s.Depth,
			Class:     s.Class,
			Magnitude: s.Magnitude,
			Tracked:   s.Tracked,
		}
	}
	render.DrawStars(screen, g.renderer, pts)

	if g.scene.PanelBoundary() {
		p := g.scene.Panel
		g.renderer.DrawRect(screen, p.X, p.Y, p.W, p.H, render.ColorBlue, 0.12)
	}

	g.sprites.Draw(screen, g.renderer, g.labels)
	g.renderer.Draw(screen, g.buffer)
	g.labels.Flush()
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return g.width, g.height
	}
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.scene.Resize(float64(outsideWidth), float64(outsideHeight))
		g.buffer.Resize(outsideWidth/cellWidth, outsideHeight/cellHeight)
		g.lg.Debug("layout", "width", outsideWidth, "height", outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func main() {
	flag.Parse()

	lg := log.New(*logLevel, *logDir)

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g, err := NewGame(lg)
	if err != nil {
		lg.Errorf("start: %v", err)
		lg.Close()
		fmt.Fprintf(os.Stderr, "starmap: %v\n", err)
		os.Exit(1)
	}
	if err := ebiten.RunGame(g); err != nil {
		lg.Errorf("run: %v", err)
		lg.Close()
		fmt.Fprintf(os.Stderr, "starmap: %v\n", err)
		os.Exit(1)
	}
	g.labels.Purge()
	lg.Info("bye", "tracked", len(g.scene.Tracked()))
	lg.Close()
}

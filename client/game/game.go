package game

import (
	"fmt"
	"image/color"

	"github.com/ckoehne/hurdler/client/input"
	gamesim "github.com/ckoehne/hurdler/pkg/game"
	gametypes "github.com/ckoehne/hurdler/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	ScreenWidth  = 640
	ScreenHeight = 480

	// PixelsPerUnit maps world units to screen pixels: the visible vertical
	// range is two world units.
	PixelsPerUnit = float64(ScreenHeight) / 2
)

var (
	backgroundColor = color.RGBA{24, 28, 38, 255}
	groundColor     = color.RGBA{60, 70, 60, 255}
	playerColor     = color.RGBA{0, 180, 255, 255}
	obstacleColor   = color.RGBA{220, 80, 60, 255}
)

// Game implements ebiten.Game, which has Update, Draw and Layout methods.
// It runs a Simulation in-process at the display tick rate and renders it as
// a pure reader of position state.
type Game struct {
	// sim is the local simulation.
	sim *gamesim.Simulation
	// groundY is the ground level, cached for drawing.
	groundY float64
	// lastRun is the summary of the most recently finished run.
	lastRun *gametypes.RunSummary
	// runs counts finished runs this session.
	runs int
}

func NewGame(sim *gamesim.Simulation, groundY float64) ebiten.Game {
	return &Game{
		sim:     sim,
		groundY: groundY,
	}
}

func (g *Game) Update() error {
	if input.IsQuitJustPressed() {
		return ebiten.Termination
	}
	if input.IsJumpJustPressed() {
		g.sim.Controller().QueueJump()
	}

	if summary := g.sim.Step(1.0 / float64(ebiten.TPS())); summary != nil {
		g.lastRun = summary
		g.runs++
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	state := g.sim.State()
	cameraX := state.CameraPosition

	// Ground
	groundTop := g.worldToScreenY(g.groundY)
	vector.DrawFilledRect(screen, 0, float32(groundTop), ScreenWidth, float32(ScreenHeight)-float32(groundTop), groundColor, false)

	// Obstacles
	for _, obstacle := range g.sim.Obstacles() {
		g.drawCollider(screen, &obstacle.Collider, cameraX, obstacleColor)
	}

	// Player
	g.drawCollider(screen, &state.Player.Collider, cameraX, playerColor)

	msg := fmt.Sprintf("TIME %.1fs  DIST %.2f  CLEARED %d", state.TotalTimePlayed, g.sim.Distance(), g.sim.ObstaclesCleared())
	if g.lastRun != nil {
		msg += fmt.Sprintf("\nLAST RUN %.2f in %.1fs (%d runs)", g.lastRun.Distance, g.lastRun.Duration, g.runs)
	}
	ebitenutil.DebugPrint(screen, msg)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// drawCollider draws a collider's bounding box as a filled rectangle in
// camera space.
func (g *Game) drawCollider(screen *ebiten.Image, c *gametypes.Collider, cameraX float64, clr color.Color) {
	left := g.worldToScreenX(c.LeftEdge(), cameraX)
	right := g.worldToScreenX(c.RightEdge(), cameraX)
	top := g.worldToScreenY(c.Position.Y + c.Extents.HigherY)
	bottom := g.worldToScreenY(c.Position.Y - c.Extents.LowerY)
	vector.DrawFilledRect(screen, float32(left), float32(top), float32(right-left), float32(bottom-top), clr, false)
}

// worldToScreenX maps a world x to screen pixels with the camera centered.
func (g *Game) worldToScreenX(worldX, cameraX float64) float64 {
	return (worldX-cameraX)*PixelsPerUnit + float64(ScreenWidth)/2
}

// worldToScreenY maps a world y (up positive) to screen pixels (down positive).
func (g *Game) worldToScreenY(worldY float64) float64 {
	return float64(ScreenHeight)/2 - worldY*PixelsPerUnit
}

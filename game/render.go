package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Draw renders the frame: background, backdrop props, weather
// particles, then the UI on top.
func (g *Game) Draw() {
	rl.BeginDrawing()

	g.background.Draw()
	g.props.Draw(g.backdrop, g.cam)
	g.flakes.Draw(g.snapshot, g.cam)

	if next, changed := g.controls.Draw(g.state); changed {
		g.applyControls(next)
	}

	g.drawHUD()

	rl.EndDrawing()
}

func (g *Game) drawHUD() {
	status := "running"
	if !g.ctrl.Running() {
		status = "stopped"
	}
	text := fmt.Sprintf("%d flakes | %s | tick %d | %d fps",
		len(g.snapshot), status, g.tick, rl.GetFPS())
	rl.DrawText(text, 10, int32(g.height)-24, 14, rl.LightGray)
	rl.DrawText("tab: panel  space: toggle  f: frame  home: reset", 10, int32(g.height)-44, 14, rl.Gray)
}

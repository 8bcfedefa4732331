package tetris

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

const (
	cellW  = 2 // Characters per board cell
	boardW = engine.DefaultCols*cellW + 2
	boardH = engine.DefaultRows - engine.HiddenRows + 2
	panelW = 15
)

const (
	blockGlyph = "[]"
	ghostGlyph = "::"
	emptyGlyph = " ."
)

// kindColor maps a piece kind to its display color.
func kindColor(k engine.Kind) core.Color {
	switch k {
	case engine.KindI:
		return core.ColorCyan
	case engine.KindJ:
		return core.ColorBlue
	case engine.KindL:
		return core.ColorOrange
	case engine.KindO:
		return core.ColorYellow
	case engine.KindS:
		return core.ColorGreen
	case engine.KindT:
		return core.ColorMagenta
	case engine.KindZ:
		return core.ColorRed
	default:
		return core.ColorDefault
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		renderTooSmall(dst, g.screenW, g.screenH)
		return
	}

	totalW := boardW + 1 + panelW
	boardX := max((g.screenW-totalW)/2, 0)
	boardY := 1

	title := "TETRIS"
	if g.mode == ModeAutopilot {
		title = "TETRIS - AUTOPILOT"
	}
	dst.DrawTextColor(boardX+(totalW-len(title))/2, 0, title, core.ColorBrightWhite)

	board := core.NewRect(boardX, boardY, boardW, boardH)
	drawBoard(dst, board, g.session, g.mode == ModeMarathon)
	drawPanel(dst, board.Right()+1, boardY, g.session)

	centerX, centerY := board.Center()
	switch {
	case g.paused:
		drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	case g.session.GameOver():
		drawOverlay(dst, centerX, centerY,
			"GAME OVER",
			"Score: "+humanize.Comma(int64(g.session.Score())),
			"Press R to play again")
	}

	if g.screenH > boardY+boardH {
		hint := g.Controls()
		if len([]rune(hint)) <= g.screenW {
			dst.DrawTextColor(max((g.screenW-len([]rune(hint)))/2, 0), boardY+boardH, hint, core.ColorGray)
		}
	}
}

// Render draws both boards with the player on the left.
func (v *Versus) Render(dst *core.Screen) {
	dst.Clear()

	if v.tooSmall {
		renderTooSmall(dst, v.screenW, v.screenH)
		return
	}

	seatW := boardW + 1 + panelW
	leftX := max((v.screenW-versusMinW)/2, 0)
	rightX := leftX + seatW + 2
	boardY := 1

	p1, p2 := "YOU", "CPU"
	switch v.duel.Leader() {
	case core.Player1:
		p1 += " *"
	case core.Player2:
		p2 += " *"
	}
	dst.DrawTextColor(leftX, 0, p1, core.ColorBrightWhite)
	dst.DrawTextColor(rightX, 0, p2, core.ColorBrightWhite)

	left := core.NewRect(leftX, boardY, boardW, boardH)
	right := core.NewRect(rightX, boardY, boardW, boardH)
	drawBoard(dst, left, v.human, true)
	drawPanel(dst, left.Right()+1, boardY, v.human)
	drawBoard(dst, right, v.cpu, false)
	drawPanel(dst, right.Right()+1, boardY, v.cpu)

	leftCX, centerY := left.Center()
	if v.human.GameOver() && !v.duel.Over() {
		drawOverlay(dst, leftCX, centerY, "TOPPED OUT", "CPU still playing")
	}
	if rightCX, _ := right.Center(); v.cpu.GameOver() && !v.duel.Over() {
		drawOverlay(dst, rightCX, centerY, "TOPPED OUT")
	}

	centerX := v.screenW / 2
	switch {
	case v.paused:
		drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	case v.duel.Over():
		res := v.duel.Result()
		headline := "DRAW"
		switch res.Winner {
		case core.Player1:
			headline = "YOU WIN"
		case core.Player2:
			headline = "CPU WINS"
		}
		drawOverlay(dst, centerX, centerY,
			headline,
			fmt.Sprintf("%s : %s", humanize.Comma(int64(res.Score1)), humanize.Comma(int64(res.Score2))),
			"Press R for a rematch")
	}
}

// renderTooSmall shows a "window too small" message.
func renderTooSmall(dst *core.Screen, screenW, screenH int) {
	msg := "Window too small"
	y := screenH / 2
	dst.DrawText((screenW-len(msg))/2, y, msg)

	hint := "Please resize terminal"
	dst.DrawText((screenW-len(hint))/2, y+1, hint)
}

// drawBoard draws the visible rows of a session's playfield with the active
// piece and, when ghost is set, its landing position.
func drawBoard(dst *core.Screen, box core.Rect, s *engine.Session, ghost bool) {
	dst.DrawBoxColor(box, core.ColorGray)
	x, y := box.X, box.Y

	b := s.Board()
	for r := engine.HiddenRows; r < b.Rows(); r++ {
		for c := range b.Cols() {
			k := b.Cell(r, c)
			if k == engine.KindNone {
				drawCell(dst, x, y, r, c, emptyGlyph, core.ColorGray)
				continue
			}
			drawCell(dst, x, y, r, c, blockGlyph, kindColor(k))
		}
	}

	if s.GameOver() {
		return
	}

	cur := s.Current()
	if ghost {
		for pos := range s.Ghost().Tiles() {
			if pos.Row >= engine.HiddenRows && b.Cell(pos.Row, pos.Col) == engine.KindNone {
				drawCell(dst, x, y, pos.Row, pos.Col, ghostGlyph, core.ColorGray)
			}
		}
	}
	for pos := range cur.Tiles() {
		if pos.Row >= engine.HiddenRows {
			drawCell(dst, x, y, pos.Row, pos.Col, blockGlyph, kindColor(cur.Kind()))
		}
	}
}

func drawCell(dst *core.Screen, x, y, r, c int, glyph string, color core.Color) {
	dst.DrawTextColor(x+1+c*cellW, y+1+r-engine.HiddenRows, glyph, color)
}

// drawPanel draws the HUD column: counters, hold slot and preview.
func drawPanel(dst *core.Screen, x, y int, s *engine.Session) {
	row := y

	dst.DrawText(x, row, "Score "+humanize.Comma(int64(s.Score())))
	dst.DrawText(x, row+1, fmt.Sprintf("Level %d", s.Level()))
	dst.DrawText(x, row+2, fmt.Sprintf("Lines %d/%d", s.Lines(), s.NextLevelGoal()))
	if s.Combo() > 0 {
		dst.DrawTextColor(x, row+3, fmt.Sprintf("Combo x%d", s.Combo()), core.ColorBrightYellow)
	}

	row += 5
	dst.DrawText(x, row, "Hold")
	if k, ok := s.Held(); ok {
		color := kindColor(k)
		if !s.CanHold() {
			color = core.ColorGray
		}
		drawMini(dst, x+1, row+1, k, color)
	}

	row += 4
	dst.DrawText(x, row, "Next")
	for i, k := range s.Preview() {
		drawMini(dst, x+1, row+1+i*3, k, kindColor(k))
	}
}

// drawMini draws a kind in its spawn rotation, trimmed to its bounding box.
func drawMini(dst *core.Screen, x, y int, k engine.Kind, color core.Color) {
	cells := engine.NewPiece(k).Cells()
	minRow, minCol := cells[0].Row, cells[0].Col
	for _, pos := range cells[1:] {
		minRow = min(minRow, pos.Row)
		minCol = min(minCol, pos.Col)
	}
	for _, pos := range cells {
		dst.DrawTextColor(x+(pos.Col-minCol)*cellW, y+pos.Row-minRow, blockGlyph, color)
	}
}

// drawOverlay draws a centered text box.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	// Clear area behind overlay
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawTextColor(centerX-len(line)/2, box.Y+1+i, line, core.ColorBrightWhite)
	}
}

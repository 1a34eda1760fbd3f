package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lromero/pongcore/internal/game"
)

const (
	BallChar   = '⬤' // ⬤
	PaddleChar = '█' // █
)

// View is the snapshot of simulation state the renderer draws from.
// Positions are in court units; the renderer scales them to the
// terminal.
type View struct {
	CourtWidth  float64
	CourtHeight float64

	BallX, BallY float64
	BallVisible  bool

	LeftX, LeftY, LeftHeight    float64
	RightX, RightY, RightHeight float64

	LeftScore   int
	RightScore  int
	PointsToWin int

	Phase     game.Phase
	Started   bool
	Countdown int
	Demo      bool
}

// Renderer draws all game screens onto a Screen.
type Renderer struct {
	screen *Screen
}

func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// RenderGame draws the court, paddles, ball and scoreboard, plus any
// phase overlay (countdown number, pause box, start prompt).
func (r *Renderer) RenderGame(v View) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()

	// Row 0 is the scoreboard, the bottom row is the status bar.
	scaleX := float64(screenW) / v.CourtWidth
	scaleY := float64(screenH-2) / v.CourtHeight

	courtStyle := tcell.StyleDefault.Background(tcell.ColorBlack)
	r.screen.FillRect(0, 1, screenW, screenH-2, courtStyle, ' ')

	centerX := screenW / 2
	lineStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	for y := 1; y < screenH-1; y += 2 {
		r.screen.SetCell(centerX, y, lineStyle, '|')
	}

	r.renderScoreboard(v, screenW)

	r.renderPaddle(game.SideLeft, v.LeftX, v.LeftY, v.LeftHeight, scaleX, scaleY, screenH)
	r.renderPaddle(game.SideRight, v.RightX, v.RightY, v.RightHeight, scaleX, scaleY, screenH)

	if v.BallVisible {
		ballX := int(v.BallX * scaleX)
		ballY := int(v.BallY*scaleY) + 1
		if ballX >= 0 && ballX < screenW && ballY >= 1 && ballY < screenH-1 {
			ballStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
			r.screen.SetCell(ballX, ballY, ballStyle, BallChar)
		}
	}

	r.renderStatusBar(v, screenW, screenH)

	switch {
	case v.Phase == game.PhaseCountdown:
		r.renderCountdownOverlay(v.Countdown, screenW, screenH)
	case v.Phase == game.PhasePaused && !v.Started && !v.Demo:
		r.renderStartOverlay(screenW, screenH)
	case v.Phase == game.PhasePaused && v.Started:
		r.renderPauseOverlay(screenW, screenH)
	}

	r.screen.Show()
}

func (r *Renderer) renderPaddle(side game.Side, x, top, height, scaleX, scaleY float64, screenH int) {
	style := SideStyle(side)
	col := int(x * scaleX)
	if side == game.SideRight {
		// The right paddle's court column can land on the rightmost
		// screen cell after scaling; pin it inside.
		w, _ := r.screen.Size()
		if col >= w {
			col = w - 1
		}
	}
	topRow := int(top*scaleY) + 1
	rows := int(height * scaleY)
	if rows < 1 {
		rows = 1
	}
	for dy := 0; dy < rows; dy++ {
		py := topRow + dy
		if py >= 1 && py < screenH-1 {
			r.screen.SetCell(col, py, style, PaddleChar)
		}
	}
}

func (r *Renderer) renderScoreboard(v View, screenW int) {
	leftScoreStr := fmt.Sprintf("%d", v.LeftScore)
	rightScoreStr := fmt.Sprintf("%d", v.RightScore)
	separator := " - "
	leftLabel := "LEFT"
	rightLabel := "RIGHT"

	total := fmt.Sprintf("[ %s %s%s%s %s ]", leftLabel, leftScoreStr, separator, rightScoreStr, rightLabel)
	x := (screenW - len(total)) / 2

	barStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite).Bold(true)
	leftStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(SideColor(game.SideLeft)).Bold(true)
	rightStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(SideColor(game.SideRight)).Bold(true)

	r.screen.DrawText(x, 0, "[ ", barStyle)
	x += 2
	r.screen.DrawText(x, 0, leftLabel, leftStyle)
	x += len(leftLabel)
	r.screen.DrawText(x, 0, " "+leftScoreStr+separator+rightScoreStr+" ", barStyle)
	x += 2 + len(leftScoreStr) + len(separator) + len(rightScoreStr)
	r.screen.DrawText(x, 0, rightLabel, rightStyle)
	x += len(rightLabel)
	r.screen.DrawText(x, 0, " ]", barStyle)
}

func (r *Renderer) renderStatusBar(v View, screenW, screenH int) {
	statusY := screenH - 1
	statusStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
	for x := 0; x < screenW; x++ {
		r.screen.SetCell(x, statusY, statusStyle, ' ')
	}
	var text string
	if v.Demo {
		text = " DEMO | Press any key to quit"
	} else {
		text = fmt.Sprintf(" First to %d wins | w/s and arrows move | p pause | q quit", v.PointsToWin)
	}
	r.screen.DrawText(0, statusY, text, statusStyle)
}

func (r *Renderer) renderCountdownOverlay(seconds int, screenW, screenH int) {
	centerX := screenW / 2
	centerY := screenH / 2

	boxW := 10
	boxH := 5
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2
	boxStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	r.screen.DrawBox(boxX, boxY, boxW, boxH, boxStyle)

	numberStr := fmt.Sprintf("%d", seconds)
	numberStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	r.screen.DrawText(centerX-len(numberStr)/2, centerY, numberStr, numberStyle)

	readyText := "GET READY!"
	readyX := (screenW - len(readyText)) / 2
	r.screen.DrawText(readyX, boxY-2, readyText, tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true))
}

func (r *Renderer) renderPauseOverlay(screenW, screenH int) {
	boxW := 30
	boxH := 5
	boxX := (screenW - boxW) / 2
	boxY := (screenH - boxH) / 2
	r.drawFilledBox(boxX, boxY, boxW, boxH)

	title := "PAUSED"
	titleStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorYellow).Bold(true)
	r.screen.DrawText((screenW-len(title))/2, boxY+1, title, titleStyle)

	hint := "Press 'p' to resume"
	hintStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorGreen)
	r.screen.DrawText((screenW-len(hint))/2, boxY+3, hint, hintStyle)
}

func (r *Renderer) renderStartOverlay(screenW, screenH int) {
	boxW := 34
	boxH := 7
	boxX := (screenW - boxW) / 2
	boxY := (screenH - boxH) / 2
	r.drawFilledBox(boxX, boxY, boxW, boxH)

	title := "=== PONGCORE ==="
	titleStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorTeal).Bold(true)
	r.screen.DrawText((screenW-len(title))/2, boxY+1, title, titleStyle)

	hint := "Press ENTER to play"
	hintStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorGreen)
	r.screen.DrawText((screenW-len(hint))/2, boxY+3, hint, hintStyle)

	quit := "Press 'q' to quit"
	quitStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorGray)
	r.screen.DrawText((screenW-len(quit))/2, boxY+5, quit, quitStyle)
}

func (r *Renderer) drawFilledBox(x, y, w, h int) {
	boxStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	r.screen.DrawBox(x, y, w, h, boxStyle)
	fillStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray)
	for dy := y + 1; dy < y+h-1; dy++ {
		for dx := x + 1; dx < x+w-1; dx++ {
			r.screen.SetCell(dx, dy, fillStyle, ' ')
		}
	}
}

// RenderGameOver displays the final score and winner.
func (r *Renderer) RenderGameOver(leftScore, rightScore int, winner game.Side) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()

	title := "=== GAME OVER ==="
	titleX := (screenW - len(title)) / 2
	titleStyle := tcell.StyleDefault.Bold(true).Foreground(tcell.ColorYellow)
	r.screen.DrawText(titleX, screenH/2-4, title, titleStyle)

	scoreText := fmt.Sprintf("Final Score: %d - %d", leftScore, rightScore)
	scoreX := (screenW - len(scoreText)) / 2
	r.screen.DrawText(scoreX, screenH/2-1, scoreText, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	var label string
	if winner == game.SideLeft {
		label = "LEFT WINS!"
	} else {
		label = "RIGHT WINS!"
	}
	winnerStyle := tcell.StyleDefault.Foreground(SideColor(winner)).Bold(true)
	winnerX := (screenW - len(label)) / 2
	r.screen.DrawText(winnerX, screenH/2+1, label, winnerStyle)

	hintText := "Press 'q' to quit"
	hintX := (screenW - len(hintText)) / 2
	r.screen.DrawText(hintX, screenH/2+4, hintText, tcell.StyleDefault.Foreground(tcell.ColorGreen))

	r.screen.Show()
}

// RenderError displays an error screen
func (r *Renderer) RenderError(err string) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()

	title := "ERROR"
	titleX := (screenW - len(title)) / 2
	titleStyle := tcell.StyleDefault.Bold(true).Foreground(tcell.ColorRed)
	r.screen.DrawText(titleX, screenH/2-2, title, titleStyle)

	maxErrLen := screenW - 4
	errMsg := err
	if len(errMsg) > maxErrLen {
		errMsg = errMsg[:maxErrLen-3] + "..."
	}
	errX := (screenW - len(errMsg)) / 2
	r.screen.DrawText(errX, screenH/2, errMsg, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	hintText := "Press any key to continue"
	hintX := (screenW - len(hintText)) / 2
	r.screen.DrawText(hintX, screenH/2+3, hintText, tcell.StyleDefault.Foreground(tcell.ColorGray))

	r.screen.Show()
}

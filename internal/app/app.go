package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lromero/pongcore/internal/audio"
	"github.com/lromero/pongcore/internal/config"
	"github.com/lromero/pongcore/internal/game"
	"github.com/lromero/pongcore/internal/persist"
	"github.com/lromero/pongcore/internal/replay"
	"github.com/lromero/pongcore/internal/ui"
)

// Fixed simulation step. The render ticker fires at the same rate so
// one tick of wall time advances one tick of simulation.
const tickStep = time.Second / 60

const (
	leftPlayerID  = 1
	rightPlayerID = 2
)

// App is the main application controller that manages the game lifecycle.
type App struct {
	cfg      *config.Config
	logger   *log.Logger
	screen   *ui.Screen
	renderer *ui.Renderer
	engine   *game.Engine
	tracker  *persist.Tracker
	recorder *replay.Recorder

	frame    int64
	timedOut bool
	gameOver bool
	winner   game.Side

	quit    chan struct{}
	sigChan chan os.Signal
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config, logger *log.Logger) *App {
	return &App{
		cfg:    cfg,
		logger: logger,
		quit:   make(chan struct{}),
	}
}

// Run is the main entry point for the application.
// It initializes the screen, builds the simulation, and runs the loop.
func (a *App) Run() error {
	// Audio is best-effort; the game works without sound.
	if err := audio.Init(); err != nil {
		a.logger.Printf("audio disabled: %v", err)
	}

	screen, err := ui.InitScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	a.screen = screen
	a.renderer = ui.NewRenderer(screen)

	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-a.sigChan
		close(a.quit)
	}()

	if err := a.setup(); err != nil {
		a.cleanup()
		return err
	}

	runErr := a.mainLoop()
	a.cleanup()
	return runErr
}

// setup builds the engine, persistence tracker and replay recorder
// from the configuration.
func (a *App) setup() error {
	params, err := config.LoadParams(a.cfg.TuningPath)
	if err != nil {
		return err
	}

	var store persist.Store = persist.NopStore{}
	if a.cfg.PersistURL != "" && !a.cfg.Demo {
		store = persist.NewHTTPStore(a.cfg.PersistURL)
	}
	a.tracker = persist.NewTracker(store, leftPlayerID, rightPlayerID, a.logger)

	screenW, screenH := a.screen.Size()
	courtW, courtH := courtSize(screenW, screenH)

	leftKind, rightKind := a.paddleKinds()
	a.engine = game.NewEngine(courtW, courtH, leftKind, rightKind, params, game.Callbacks{
		OnCountdownTick: func(n int) {
			audio.Play(audio.EffectCountdownTick)
			a.logger.Printf("countdown: %d", n)
		},
		OnPointStarted: func() {
			audio.Play(audio.EffectGo)
		},
		OnPhaseChanged: func(p game.Phase) {
			a.logger.Printf("phase: %s", p)
		},
		OnGoalScored: func(scorer game.Side) {
			audio.Play(audio.EffectScore)
			a.logger.Printf("goal: %s", scorer)
			a.tracker.GoalScored(context.Background(), playerID(scorer))
		},
		OnBounce: func(c game.Collision) {
			switch c {
			case game.CollisionWall:
				audio.Play(audio.EffectWallBounce)
			case game.CollisionPaddle:
				audio.Play(audio.EffectPaddleHit)
			}
		},
	})

	if a.cfg.TimeLimit > 0 {
		a.engine.SetTimeLimit(a.cfg.TimeLimit, func() {
			a.timedOut = true
		})
	}

	if a.cfg.RecordPath != "" {
		w, h := a.engine.Size()
		rec, err := replay.Create(a.cfg.RecordPath, replay.Header{
			CourtWidth:  float64(w),
			CourtHeight: float64(h),
			PointsToWin: a.cfg.Points,
		})
		if err != nil {
			return err
		}
		a.recorder = rec
	}

	if a.cfg.Demo {
		a.engine.Start()
	}

	return nil
}

func (a *App) paddleKinds() (game.Kind, game.Kind) {
	if a.cfg.Demo {
		return game.KindBackground, game.KindBackground
	}
	return parseKind(a.cfg.LeftKind), parseKind(a.cfg.RightKind)
}

func parseKind(k string) game.Kind {
	if k == "ai" {
		return game.KindAI
	}
	return game.KindHuman
}

func playerID(s game.Side) int64 {
	if s == game.SideLeft {
		return leftPlayerID
	}
	return rightPlayerID
}

// courtSize converts terminal dimensions to court dimensions,
// reserving the scoreboard and status rows.
func courtSize(screenW, screenH int) (int, int) {
	h := screenH - 2
	if h < 4 {
		h = 4
	}
	if screenW < 8 {
		screenW = 8
	}
	return screenW, h
}

// mainLoop is the main event loop that handles all input and advances
// the simulation at a fixed rate.
func (a *App) mainLoop() error {
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(tickStep)
	defer ticker.Stop()

	for {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			if a.handleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			if a.gameOver {
				a.renderGameOver()
				continue
			}
			a.step()
			a.render()
		}
	}
}

// step advances the simulation one tick and checks for match end.
func (a *App) step() {
	a.engine.Tick(tickStep)
	a.frame++

	// Terminal key events carry no release, so movement is driven by
	// key autorepeat and intents are cleared every tick.
	a.engine.SetIntent(game.SideLeft, game.DirNone)
	a.engine.SetIntent(game.SideRight, game.DirNone)

	a.recordFrame()

	if winner, done := a.engine.Winner(a.cfg.Points); done {
		a.finish(winner)
		return
	}
	if a.timedOut {
		a.logger.Print("time limit reached")
		left, right := a.engine.Scores()
		winner := game.SideLeft
		if right > left {
			winner = game.SideRight
		}
		a.finish(winner)
	}
}

func (a *App) finish(winner game.Side) {
	a.gameOver = true
	a.winner = winner
	a.engine.Stop()
	a.tracker.Completed()
	a.logger.Printf("match over: %s wins", winner)
}

func (a *App) recordFrame() {
	if a.recorder == nil {
		return
	}
	ball := a.engine.Ball()
	left, right := a.engine.Left(), a.engine.Right()
	err := a.recorder.Record(replay.Frame{
		Tick:  a.frame,
		Phase: int(a.engine.Match().Phase()),
		Ball: replay.BallFrame{
			X: ball.Pos.X, Y: ball.Pos.Y,
			VX: ball.Vel.X, VY: ball.Vel.Y,
			Destroyed: ball.Destroyed,
		},
		Left:  replay.PaddleFrame{Y: left.Y, Score: left.Score},
		Right: replay.PaddleFrame{Y: right.Y, Score: right.Score},
	})
	if err != nil {
		a.logger.Printf("replay recording stopped: %v", err)
		a.recorder.Close()
		a.recorder = nil
	}
}

// handleEvent processes keyboard and resize events.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)

	case *tcell.EventResize:
		w, h := ev.Size()
		cw, ch := courtSize(w, h)
		a.engine.Resize(cw, ch)
		a.screen.Clear()
	}
	return false
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	if ui.IsQuitKey(ev.Key(), ev.Rune()) {
		return true
	}
	if a.cfg.Demo || a.gameOver {
		// Any other key is ignored; demo additionally quits on any key.
		return a.cfg.Demo
	}

	match := a.engine.Match()
	switch {
	case ui.IsStartKey(ev.Key()) && !match.Started():
		a.engine.Start()
		a.tracker.MatchStarted(context.Background())
		return false
	case ui.IsPauseKey(ev.Key(), ev.Rune()):
		a.togglePause()
		return false
	}

	// Arrows steer the right paddle and w/s the left. With a single
	// human on the left, arrows steer it too.
	if dir := ui.ArrowDirection(ev.Key()); dir != game.DirNone {
		side := game.SideRight
		if a.engine.Right().Kind != game.KindHuman {
			side = game.SideLeft
		}
		a.engine.SetIntent(side, dir)
	}
	if dir := ui.WASDDirection(ev.Rune()); dir != game.DirNone {
		a.engine.SetIntent(game.SideLeft, dir)
	}
	return false
}

func (a *App) togglePause() {
	match := a.engine.Match()
	switch match.Phase() {
	case game.PhasePlaying, game.PhaseCountdown:
		a.engine.Pause()
		a.tracker.Paused()
	case game.PhasePaused:
		if match.Started() {
			a.engine.Resume()
			a.tracker.Resumed()
		}
	}
}

// render draws the current simulation state.
func (a *App) render() {
	ball := a.engine.Ball()
	left, right := a.engine.Left(), a.engine.Right()
	w, h := a.engine.Size()
	match := a.engine.Match()

	a.renderer.RenderGame(ui.View{
		CourtWidth:  float64(w),
		CourtHeight: float64(h),
		BallX:       ball.Pos.X,
		BallY:       ball.Pos.Y,
		BallVisible: !ball.Destroyed,
		LeftX:       left.X,
		LeftY:       left.Y,
		LeftHeight:  left.Height,
		RightX:      right.X,
		RightY:      right.Y,
		RightHeight: right.Height,
		LeftScore:   left.Score,
		RightScore:  right.Score,
		PointsToWin: a.cfg.Points,
		Phase:       match.Phase(),
		Started:     match.Started(),
		Countdown:   match.CountdownValue(),
		Demo:        a.cfg.Demo,
	})
}

func (a *App) renderGameOver() {
	left, right := a.engine.Scores()
	a.renderer.RenderGameOver(left, right, a.winner)
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	audio.Close()

	if a.recorder != nil {
		if err := a.recorder.Close(); err != nil {
			a.logger.Printf("closing replay: %v", err)
		}
	}

	if a.screen != nil {
		a.screen.Fini()
	}

	signal.Stop(a.sigChan)
}

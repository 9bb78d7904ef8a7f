// Package loop runs the game: the per-room entity loop, room transitions,
// the session state machine and the terminal frame loop on top of them.
package loop

import (
	"bufio"
	"context"
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tomz197/mythbusters/internal/audio"
	"github.com/tomz197/mythbusters/internal/config"
	"github.com/tomz197/mythbusters/internal/data"
	"github.com/tomz197/mythbusters/internal/draw"
	"github.com/tomz197/mythbusters/internal/dungeon"
	"github.com/tomz197/mythbusters/internal/entity"
	"github.com/tomz197/mythbusters/internal/input"
)

// Options configures a Game.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	DB           *data.Database
	Definition   dungeon.Definition
	Music        audio.Player
	Debug        bool
	Seed         int64 // Zero picks a random seed
	Log          *logrus.Entry
}

// Game is the terminal front-end of one session: input, simulation and
// drawing at a fixed frame rate.
type Game struct {
	session      *Session
	scene        *Scene
	form         *Form
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates the frame for chunked output
	writer       io.Writer
	inputStream  *input.Stream
	termSizeFunc draw.TermSizeFunc
	input        input.Input
	running      bool
	frame        uint64
	log          *logrus.Entry
}

// NewGame creates a game reading keys from r and drawing to w.
func NewGame(r *bufio.Reader, w io.Writer, opts Options) *Game {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	log := opts.Log
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	scene := NewScene()
	session := NewSession(SessionOptions{
		DB:         opts.DB,
		Definition: opts.Definition,
		Board:      scene,
		Music:      opts.Music,
		Rand:       rand.New(rand.NewSource(seed)),
		Debug:      opts.Debug,
		Log:        log,
	})

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, _ := draw.TerminalSizeRawWith(termSizeFunc)
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, config.ArenaWidth, config.ArenaHeight)
	canvas.SetOffset(offsetCol, offsetRow)

	return &Game{
		session:      session,
		scene:        scene,
		form:         NewForm(opts.DB.Weapons()),
		canvas:       canvas,
		chunkWriter:  draw.NewChunkWriter(w, offsetCol, offsetRow),
		writer:       w,
		inputStream:  input.StartStream(r),
		termSizeFunc: termSizeFunc,
		running:      true,
		log:          log.WithField("session", session.ID),
	}
}

// Session returns the game's session.
func (g *Game) Session() *Session {
	return g.session
}

// Run starts the frame loop. Blocks until the player quits, the input
// stream closes or ctx is cancelled.
func (g *Game) Run(ctx context.Context) error {
	defer g.session.Close()
	draw.HideCursor(g.writer)
	defer draw.ShowCursor(g.writer)
	draw.ClearScreen(g.writer)

	for g.running {
		frameStart := time.Now()

		if err := ctx.Err(); err != nil {
			break
		}

		// ===== INPUT PHASE =====
		g.processInput()

		// ===== UPDATE PHASE =====
		g.updateScreen()
		g.update()

		// ===== DRAW PHASE =====
		if err := g.drawFrame(); err != nil {
			return err
		}
		g.frame++

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < config.ClientTargetFrameTime {
			time.Sleep(config.ClientTargetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(g.writer)
	g.log.WithField("frames", g.frame).Info("game closed")
	return nil
}

// processInput reads the keys of this frame. Q quits everywhere except the
// configuration screen, where it is part of a name.
func (g *Game) processInput() {
	g.input = input.ReadInput(g.inputStream)
	if g.input.Interrupt {
		g.running = false
	}
	if g.input.Quit && g.session.Phase() != PhaseConfiguring {
		g.running = false
	}
}

// update advances whichever screen is showing.
func (g *Game) update() {
	s := g.session
	switch s.Phase() {
	case PhaseMenu:
		if g.input.Enter || g.input.Space {
			g.form.Reset()
			g.mustTransition(s.Begin())
		}

	case PhaseConfiguring:
		if !g.form.Handle(g.input) {
			return
		}
		err := s.Configure(g.form.Settings())
		switch {
		case err == nil:
			input.ResetKeyInput(g.inputStream)
		case errors.Is(err, ErrEmptyName):
			g.form.Warning = EmptyNameWarning
		default:
			g.form.Warning = err.Error()
		}

	case PhasePlaying:
		s.Tick(g.input)

	case PhaseWin, PhaseDead:
		if g.input.Enter {
			g.form.Reset()
			g.mustTransition(s.Restart())
		}
	}
}

// mustTransition logs a transition the screen logic should never attempt.
func (g *Game) mustTransition(err error) {
	if err != nil {
		g.log.WithError(err).Error("unexpected phase transition")
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
func (g *Game) updateScreen() {
	termWidth, termHeight, err := draw.TerminalSizeRawWith(g.termSizeFunc)
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	g.canvas.Resize(renderWidth, renderHeight)
	g.canvas.SetOffset(offsetCol, offsetRow)
	g.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = termWidth
	renderHeight = termHeight
	if renderWidth > config.MaxRenderCols {
		renderWidth = config.MaxRenderCols
	}
	if renderHeight > config.MaxRenderRows {
		renderHeight = config.MaxRenderRows
	}
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

// drawFrame draws the current frame.
func (g *Game) drawFrame() error {
	cw := g.chunkWriter
	cw.WriteString("\033[H\033[2J")
	g.canvas.Clear()

	if g.session.Phase() == PhasePlaying {
		ctx := entity.DrawContext{Canvas: g.canvas, Tick: g.frame}
		if err := g.scene.Draw(ctx); err != nil {
			return err
		}
		g.canvas.Render(cw)
	}

	// Draw border when terminal exceeds max render resolution
	g.canvas.RenderBorder(cw)

	g.drawUI()

	return cw.Flush()
}

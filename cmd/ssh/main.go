package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/sirupsen/logrus"
	"github.com/tomz197/mythbusters/internal/audio"
	"github.com/tomz197/mythbusters/internal/config"
	"github.com/tomz197/mythbusters/internal/data"
	"github.com/tomz197/mythbusters/internal/draw"
	"github.com/tomz197/mythbusters/internal/dungeon"
	"github.com/tomz197/mythbusters/internal/logger"
	"github.com/tomz197/mythbusters/internal/loop"
	"golang.org/x/sync/errgroup"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"
	shutdownTimeout    = 5 * time.Second
)

// handler starts one independent game per SSH session. The item database
// and dungeon definition are read-only and shared.
type handler struct {
	db    *data.Database
	def   dungeon.Definition
	debug bool
	log   *logrus.Entry
}

func main() {
	logger.Init(os.Stderr)
	log := logger.Component("ssh")

	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)
	log.WithFields(logrus.Fields{
		"host":    host,
		"port":    port,
		"hostKey": hostKeyPath,
	}).Info("ssh config")

	db, err := data.Load()
	if err != nil {
		log.WithError(err).Fatal("load item database")
	}
	def, err := dungeon.LoadDefinition()
	if err != nil {
		log.WithError(err).Fatal("load dungeon")
	}
	h := &handler{
		db:    db,
		def:   def,
		debug: config.GetEnvBool("MYTH_DEBUG", false),
		log:   log,
	}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			h.middleware,
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger.Log),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		log.WithError(err).Fatal("create server")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Infof("starting SSH server on %s", net.JoinHostPort(host, port))
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); errors.Is(err, context.DeadlineExceeded) {
			log.Warn("sessions still open, closing them")
			return s.Close()
		} else if err != nil {
			return err
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

// middleware runs a game for the session.
func (h *handler) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		log := h.log.WithFields(logrus.Fields{
			"user":   sess.User(),
			"remote": sess.RemoteAddr().String(),
		})
		log.WithFields(logrus.Fields{
			"term":   pty.Term,
			"width":  pty.Window.Width,
			"height": pty.Window.Height,
		}).Info("new game session")

		// Create a terminal size tracker that updates on window changes
		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		// Remote players have no speaker on this machine.
		game := loop.NewGame(bufio.NewReader(sess), sess, loop.Options{
			TermSizeFunc: sizeTracker.getSize,
			DB:           h.db,
			Definition:   h.def,
			Music:        audio.Mute{},
			Debug:        h.debug,
			Log:          log,
		})
		if err := game.Run(sess.Context()); err != nil {
			log.WithError(err).Error("game error")
		}

		log.Info("session ended")
		next(sess)
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize

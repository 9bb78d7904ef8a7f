// Package input turns raw terminal bytes into per-frame key state.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report key repeats, so movement keys stay active for a
// little longer than one repeat interval.
const keyHoldDuration = 60 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Quit      bool
	Interrupt bool // Ctrl-C, honoured in every screen
	Left      bool
	Right     bool
	Up        bool
	Down      bool
	Space     bool
	Enter     bool
	Tab       bool
	Backspace bool
	Escape    bool
	Boss      bool // Debug jump to the boss room
	PrevItem  bool
	NextItem  bool
	Number    int // Digit pressed this frame, -1 if none
	Pressed   []byte
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit      time.Time
	left      time.Time
	right     time.Time
	up        time.Time
	down      time.Time
	space     time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch    chan byte
	state keyState
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Held keys (movement, attack) persist for keyHoldDuration so simultaneous
// presses combine; one-shot keys (enter, tab, backspace, digits) only fire on the
// frame their byte arrives. A closed stream reports Interrupt.
func ReadInput(s *Stream) Input {
	return readInputAt(s, time.Now())
}

func readInputAt(s *Stream, now time.Time) Input {
	var buf []byte
	closed := false

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	in := Input{Number: -1, Pressed: buf, Interrupt: closed}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				s.state.up = now
				i += 2
				continue
			case 'B':
				s.state.down = now
				i += 2
				continue
			case 'C':
				s.state.right = now
				i += 2
				continue
			case 'D':
				s.state.left = now
				i += 2
				continue
			}
		}

		applyByte(&in, &s.state, b, now)
	}

	in.Quit = now.Sub(s.state.quit) < keyHoldDuration
	in.Left = now.Sub(s.state.left) < keyHoldDuration
	in.Right = now.Sub(s.state.right) < keyHoldDuration
	in.Up = now.Sub(s.state.up) < keyHoldDuration
	in.Down = now.Sub(s.state.down) < keyHoldDuration
	in.Space = now.Sub(s.state.space) < keyHoldDuration
	return in
}

// applyByte updates one-shot flags on in and hold timestamps on state.
func applyByte(in *Input, state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q':
		state.quit = now
	case 'a', 'A':
		state.left = now
	case 'd', 'D':
		state.right = now
	case 'w', 'W':
		state.up = now
	case 's', 'S':
		state.down = now
	case ' ':
		state.space = now
	case 'b', 'B':
		in.Boss = true
	case '[':
		in.PrevItem = true
	case ']':
		in.NextItem = true
	case '\n', '\r':
		in.Enter = true
	case '\t':
		in.Tab = true
	case '\b', '\x7f':
		in.Backspace = true
	case '\x1b':
		in.Escape = true
	case '\x03':
		in.Interrupt = true
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		in.Number = int(b - '0')
	}
}

// ResetKeyInput forgets all held keys and drops buffered bytes. Used on
// screen changes so a key held on one screen does not leak into the next.
func ResetKeyInput(s *Stream) {
	if s == nil {
		return
	}
	s.state = keyState{}
	for {
		select {
		case _, ok := <-s.ch:
			if !ok {
				return
			}
		default:
			return
		}
	}
}

// Printable returns the bytes of in.Pressed that can appear in a name.
func (in Input) Printable() []byte {
	var out []byte
	for i := 0; i < len(in.Pressed); i++ {
		b := in.Pressed[i]
		if b == '\x1b' {
			// Skip the whole escape sequence.
			if i+2 < len(in.Pressed) && in.Pressed[i+1] == '[' {
				i += 2
			}
			continue
		}
		if b >= 0x20 && b < 0x7f {
			out = append(out, b)
		}
	}
	return out
}

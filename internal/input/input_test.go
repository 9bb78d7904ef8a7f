package input

import (
	"bufio"
	"bytes"
	"testing"
	"time"
)

// newTestStream builds a stream whose channel is fed directly.
func newTestStream(data []byte) *Stream {
	s := &Stream{ch: make(chan byte, len(data)+1)}
	for _, b := range data {
		s.ch <- b
	}
	return s
}

func TestReadInputKeys(t *testing.T) {
	now := time.Now()
	s := newTestStream([]byte("wd \x1b[D\t\r"))
	in := readInputAt(s, now)

	if !in.Up || !in.Right || !in.Space || !in.Left {
		t.Errorf("held keys not reported: %+v", in)
	}
	if !in.Tab || !in.Enter {
		t.Errorf("one-shot keys not reported: %+v", in)
	}
	if in.Down || in.Quit {
		t.Errorf("unexpected keys: %+v", in)
	}
}

func TestHeldKeysExpire(t *testing.T) {
	now := time.Now()
	s := newTestStream([]byte("a\r"))
	readInputAt(s, now)

	later := readInputAt(s, now.Add(keyHoldDuration/2))
	if !later.Left {
		t.Error("left should still be held")
	}
	if later.Enter {
		t.Error("enter is one-shot and must not repeat")
	}

	expired := readInputAt(s, now.Add(2*keyHoldDuration))
	if expired.Left {
		t.Error("left should have expired")
	}
}

func TestNumberAndInterrupt(t *testing.T) {
	now := time.Now()
	s := newTestStream([]byte("3\x03"))
	in := readInputAt(s, now)
	if in.Number != 3 {
		t.Errorf("Number = %d, want 3", in.Number)
	}
	if next := readInputAt(s, now); next.Number != -1 {
		t.Errorf("digits are one-shot, got %d on the next frame", next.Number)
	}
	if !in.Interrupt {
		t.Error("Ctrl-C should interrupt")
	}
}

func TestClosedStreamInterrupts(t *testing.T) {
	s := StartStream(bufio.NewReader(bytes.NewReader(nil)))
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if ReadInput(s).Interrupt {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("closed stream never reported Interrupt")
}

func TestPrintable(t *testing.T) {
	in := Input{Pressed: []byte("Ze\x1b[Alda\x7f\t")}
	if got := string(in.Printable()); got != "Zelda" {
		t.Errorf("Printable = %q, want %q", got, "Zelda")
	}
}

func TestResetKeyInput(t *testing.T) {
	now := time.Now()
	s := newTestStream([]byte("w"))
	readInputAt(s, now)
	s.ch <- 'd'
	ResetKeyInput(s)

	in := readInputAt(s, now)
	if in.Up || in.Right {
		t.Errorf("reset should forget held and buffered keys: %+v", in)
	}
	ResetKeyInput(nil)
}

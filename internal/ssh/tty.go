// Package ssh lets a tcell screen draw over an SSH channel.
package ssh

import (
	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/sasha-s/go-deadlock"
)

// Tty is a tcell.Tty over one SSH session. Keys are read from the channel,
// frames are written to it and window-change requests become resizes.
type Tty struct {
	conn gossh.Session

	mu       deadlock.Mutex
	size     gossh.Window
	onResize func()
}

// NewTty wraps s. win is the size from the pty request; changes arrive on
// resizes until the channel is closed.
func NewTty(s gossh.Session, win gossh.Window, resizes <-chan gossh.Window) *Tty {
	t := &Tty{conn: s, size: win}
	if resizes != nil {
		go t.watch(resizes)
	}
	return t
}

func (t *Tty) watch(resizes <-chan gossh.Window) {
	for win := range resizes {
		t.mu.Lock()
		t.size = win
		cb := t.onResize
		t.mu.Unlock()
		if cb != nil {
			cb()
		}
	}
}

func (t *Tty) Read(b []byte) (int, error)  { return t.conn.Read(b) }
func (t *Tty) Write(b []byte) (int, error) { return t.conn.Write(b) }
func (t *Tty) Close() error                { return t.conn.Close() }

// Start, Stop and Drain have nothing to do: the channel is opened and
// closed by the server.
func (t *Tty) Start() error { return nil }
func (t *Tty) Stop() error  { return nil }
func (t *Tty) Drain() error { return nil }

// WindowSize returns the last size the client reported.
func (t *Tty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.size.Width, Height: t.size.Height}, nil
}

// NotifyResize sets the function called after every window change.
func (t *Tty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.onResize = cb
	t.mu.Unlock()
}

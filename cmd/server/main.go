// icoop-server pairs players arriving over SSH and runs a cooperative game
// for each pair. Build:
//
//	go build -o icoop-server ./cmd/server
//
// Usage:
//
//	./icoop-server [--port 2222] [--key server_host_key] [--seed N]
//
// Connect from two terminals:
//
//	ssh -t -p 2222 localhost
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"
	"unicode"

	"icoop/internal/game"
	internalssh "icoop/internal/ssh"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/sasha-s/go-deadlock"
	xssh "golang.org/x/crypto/ssh"
)

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (generated if absent)")
	seed := flag.Int64("seed", 0, "Game seed (0 picks one per game)")
	fps := flag.Int("fps", 0, "Frames per second (0 keeps the default)")
	dataDir := flag.String("data", "", "Directory for the run log (default: XDG data dir)")
	flag.Parse()

	cfg := game.DefaultConfig()
	if *fps > 0 {
		cfg.FPS = *fps
	}
	cfg.DataDir = *dataDir

	l := newLobby(cfg, *seed)
	srv := &gossh.Server{
		Addr:        fmt.Sprintf(":%d", *port),
		Handler:     l.handleSession,
		PtyCallback: func(gossh.Context, gossh.Pty) bool { return true },
		HostSigners: []gossh.Signer{loadOrCreateHostKey(*keyFile)},
	}

	log.Printf("icoop SSH server listening on :%d", *port)
	log.Printf("Connect from two terminals:  ssh -t -p %d localhost", *port)
	log.Fatal(srv.ListenAndServe())
}

// ─── lobby ──────────────────────────────────────────────────────────────────

// lobby pairs incoming sessions. The first player of a pair waits; the
// second one starts the game, which runs on the first player's goroutine.
type lobby struct {
	cfg  game.Config
	seed int64
	// play runs one game for a pair and returns when it is over.
	play func(host, guest *seat)

	mu     deadlock.Mutex
	waiter *seat
	games  int
}

// seat is a connected player waiting for, or playing in, a game.
type seat struct {
	name     string
	screen   tcell.Screen
	partner  chan *seat    // the waiting player receives the second one here
	orphaned chan struct{} // the host left before the game started
	done     chan struct{} // closed when the game is over
}

func newSeat(name string, screen tcell.Screen) *seat {
	return &seat{
		name:     name,
		screen:   screen,
		partner:  make(chan *seat, 1),
		orphaned: make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
}

func newLobby(cfg game.Config, seed int64) *lobby {
	l := &lobby{cfg: cfg, seed: seed}
	l.play = l.runGame
	return l
}

// handleSession serves one connection. It blocks until the player's game
// ends so the channel stays open.
func (l *lobby) handleSession(s gossh.Session) {
	pty, winCh, ok := s.Pty()
	if !ok {
		fmt.Fprintln(s, "icoop needs a terminal. Connect with: ssh -t -p 2222 <host>")
		return
	}
	screen, err := newScreen(s, pty, winCh)
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	l.join(s.Context(), newSeat(sanitizeName(s.User()), screen))
}

// join seats me: as host when nobody waits, as guest of the waiting player
// otherwise. It returns when me's game is over or ctx ends.
func (l *lobby) join(ctx context.Context, me *seat) {
	for {
		l.mu.Lock()
		if l.waiter == nil {
			l.waiter = me
			l.mu.Unlock()
			l.host(ctx, me)
			return
		}
		host := l.waiter
		l.waiter = nil
		l.mu.Unlock()

		host.partner <- me
		select {
		case <-me.done:
			return
		case <-ctx.Done():
			return
		case <-me.orphaned:
			// Wait for someone else.
		}
	}
}

// host waits for a partner and runs the game for both. A guest that
// claimed me just as my connection ended goes back to the lobby.
func (l *lobby) host(ctx context.Context, me *seat) {
	showWaiting(me.screen)
	select {
	case other := <-me.partner:
		l.play(me, other)
		close(other.done)
	case <-ctx.Done():
		l.mu.Lock()
		claimed := l.waiter != me
		if !claimed {
			l.waiter = nil
		}
		l.mu.Unlock()
		if claimed {
			other := <-me.partner
			other.orphaned <- struct{}{}
		}
		me.screen.Fini()
	}
	close(me.done)
}

// runGame plays one networked game on both screens.
func (l *lobby) runGame(host, guest *seat) {
	cfg := l.cfg
	cfg.Names = []string{host.name, guest.name}
	l.mu.Lock()
	l.games++
	n := l.games
	l.mu.Unlock()
	cfg.Seed = time.Now().UnixNano()
	if l.seed != 0 {
		cfg.Seed = l.seed + int64(n)
	}

	sess, err := game.NewNetworkSession(cfg, []tcell.Screen{host.screen, guest.screen})
	if err != nil {
		log.Printf("start game: %v", err)
		host.screen.Fini()
		guest.screen.Fini()
		return
	}
	run := sess.Run()
	log.Printf("game %s over: %s & %s, victory=%v", run.ID, host.name, guest.name, run.Victory)
}

// allowedTerms lists the TERM values a client may pick. Anything else falls
// back to xterm-256color so terminfo lookups stay on known entries.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"xterm-color":           true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"vt220":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
}

const defaultTerm = "xterm-256color"

func termOf(env []string) string {
	for _, kv := range env {
		if t, ok := strings.CutPrefix(kv, "TERM="); ok && allowedTerms[t] {
			return t
		}
	}
	return defaultTerm
}

// termMu serializes the TERM lookup: terminfo reads it from the process
// environment.
var termMu deadlock.Mutex

func newScreen(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) (tcell.Screen, error) {
	tty := internalssh.NewTty(s, pty.Window, winCh)

	termMu.Lock()
	_ = os.Setenv("TERM", termOf(append([]string{"TERM=" + pty.Term}, s.Environ()...)))
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return screen, nil
}

const maxNameBytes = 16

// sanitizeName keeps the printable runes of an SSH user name and cuts it to
// maxNameBytes without splitting a rune.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if !unicode.IsPrint(r) || unicode.IsSpace(r) {
			continue
		}
		if b.Len()+len(string(r)) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

func showWaiting(screen tcell.Screen) {
	screen.Clear()
	w, h := screen.Size()
	center := func(y int, msg string, style tcell.Style) {
		x := max((w-len(msg))/2, 0)
		for i, r := range msg {
			screen.SetContent(x+i, y, r, nil, style)
		}
	}
	center(h/2, "Waiting for a second player...", tcell.StyleDefault.Foreground(tcell.ColorYellow))
	center(h/2+2, "Connect another terminal:  ssh -t -p 2222 <host>", tcell.StyleDefault.Foreground(tcell.ColorGray))
	screen.Show()
}

// ─── host key ───────────────────────────────────────────────────────────────

// loadOrCreateHostKey loads a PEM private key from path, or generates an
// ed25519 key and tries to save it there.
func loadOrCreateHostKey(path string) gossh.Signer {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Printf("Loaded host key from %s", path)
			return signer
		}
	}
	signer, block, err := newHostKey()
	if err != nil {
		log.Fatalf("host key: %v", err)
	}
	log.Printf("Generated a new ed25519 host key: %s", path)
	if err := os.WriteFile(path, pem.EncodeToMemory(block), 0o600); err != nil {
		log.Printf("save host key: %v", err)
	}
	return signer
}

func newHostKey() (gossh.Signer, *pem.Block, error) {
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("generate: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, nil, fmt.Errorf("signer: %w", err)
	}
	block, err := xssh.MarshalPrivateKey(key, "icoop server")
	if err != nil {
		return nil, nil, fmt.Errorf("marshal: %w", err)
	}
	return signer, block, nil
}

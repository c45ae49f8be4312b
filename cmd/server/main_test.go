package main

import (
	"context"
	"crypto/ed25519"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"
	"time"

	"icoop/internal/game"

	"github.com/gdamore/tcell/v2"
	xssh "golang.org/x/crypto/ssh"
)

func TestSanitizeName(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		expect string
	}{
		{"normal short name", "Alice", "Alice"},
		{"exactly 16 bytes", "1234567890123456", "1234567890123456"},
		{"long name truncated", "ThisIsAVeryLongUsername", "ThisIsAVeryLongU"},
		{"control chars stripped", "he\x00ll\x1bo", "hello"},
		{"ansi escape partial", "he\x1b[31mllo", "he[31mllo"},
		{"empty input", "", ""},
		{"pure control chars", "\x00\x01\x02\x1b", ""},
		{"multi-byte runes kept whole", "日本語のテスト名前", "日本語のテ"},
		{"emoji kept whole", "🎮Player🎮Name", "🎮Player🎮Na"},
		{"tabs stripped", "hello\tworld", "helloworld"},
		{"newlines stripped", "hello\nworld", "helloworld"},
		{"spaces stripped", "ember brook", "emberbrook"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := sanitizeName(tc.input)
			if got != tc.expect {
				t.Errorf("sanitizeName(%q) = %q, want %q", tc.input, got, tc.expect)
			}
			if len(got) > maxNameBytes {
				t.Errorf("sanitizeName(%q) is %d bytes", tc.input, len(got))
			}
		})
	}
}

func TestTermOf(t *testing.T) {
	cases := []struct {
		name string
		env  []string
		want string
	}{
		{"allowed", []string{"TERM=tmux"}, "tmux"},
		{"first allowed wins", []string{"TERM=evil", "TERM=linux"}, "linux"},
		{"path traversal", []string{"TERM=../../../etc/passwd"}, defaultTerm},
		{"unknown term", []string{"TERM=xterm-kitty"}, defaultTerm},
		{"no TERM", []string{"LANG=C"}, defaultTerm},
		{"empty", nil, defaultTerm},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := termOf(tc.env); got != tc.want {
				t.Errorf("termOf(%v) = %q, want %q", tc.env, got, tc.want)
			}
		})
	}
}

func TestHostKeyIsPersisted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host_key")
	first := loadOrCreateHostKey(path)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("host key not saved: %v", err)
	}
	if first.PublicKey().Type() != xssh.KeyAlgoED25519 {
		t.Errorf("key type = %s; want ed25519", first.PublicKey().Type())
	}
	second := loadOrCreateHostKey(path)
	if string(first.PublicKey().Marshal()) != string(second.PublicKey().Marshal()) {
		t.Error("a saved key must be loaded again, not replaced")
	}
}

func TestNewHostKey(t *testing.T) {
	signer, block, err := newHostKey()
	if err != nil {
		t.Fatal(err)
	}
	key, err := xssh.ParseRawPrivateKey(pemBytes(block))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, ok := key.(*ed25519.PrivateKey); !ok {
		t.Errorf("parsed key is %T", key)
	}
	if signer == nil {
		t.Error("nil signer")
	}
}

func pemBytes(b *pem.Block) []byte { return pem.EncodeToMemory(b) }

// pairs is a lobby whose games only record who played together.
func pairs(t *testing.T) (*lobby, chan [2]string) {
	t.Helper()
	played := make(chan [2]string, 16)
	l := newLobby(game.DefaultConfig(), 1)
	l.play = func(host, guest *seat) { played <- [2]string{host.name, guest.name} }
	return l, played
}

func simSeat(t *testing.T, name string) *seat {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	s.SetSize(80, 24)
	return newSeat(name, s)
}

func waitPair(t *testing.T, played chan [2]string) [2]string {
	t.Helper()
	select {
	case p := <-played:
		return p
	case <-time.After(2 * time.Second):
		t.Fatal("no game started")
	}
	return [2]string{}
}

func TestLobbyPairsInArrivalOrder(t *testing.T) {
	l, played := pairs(t)
	ctx := context.Background()
	first, second := simSeat(t, "ember"), simSeat(t, "brook")

	hosted := make(chan struct{})
	go func() { l.join(ctx, first); close(hosted) }()
	for {
		l.mu.Lock()
		w := l.waiter
		l.mu.Unlock()
		if w == first {
			break
		}
		time.Sleep(time.Millisecond)
	}
	l.join(ctx, second)

	if got := waitPair(t, played); got != [2]string{"ember", "brook"} {
		t.Errorf("pair = %v; want the first arrival hosting", got)
	}
	<-hosted
	if l.waiter != nil {
		t.Error("the lobby must be empty after pairing")
	}
}

func TestLobbyHostLeavingAlone(t *testing.T) {
	l, _ := pairs(t)
	ctx, cancel := context.WithCancel(context.Background())
	me := simSeat(t, "ember")
	done := make(chan struct{})
	go func() { l.join(ctx, me); close(done) }()
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("join did not return after the connection ended")
	}
	if l.waiter != nil {
		t.Error("a departed host must leave the lobby")
	}
}

func TestGuestOfDepartedHostIsNotStranded(t *testing.T) {
	// The host's connection ends while a guest claims it. Whichever way
	// the host's select goes, the guest must end up in a game.
	for i := range 20 {
		l, played := pairs(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		host, guest, late := simSeat(t, "host"), simSeat(t, "guest"), simSeat(t, "late")

		l.waiter = host
		go l.join(context.Background(), guest)
		for len(host.partner) == 0 {
			time.Sleep(time.Millisecond)
		}
		l.host(ctx, host)

		select {
		case p := <-played:
			if p != [2]string{"host", "guest"} {
				t.Fatalf("run %d: pair = %v", i, p)
			}
			continue
		default:
		}
		for {
			l.mu.Lock()
			w := l.waiter
			l.mu.Unlock()
			if w == guest {
				break
			}
			time.Sleep(time.Millisecond)
		}
		go l.join(context.Background(), late)
		if p := waitPair(t, played); p != [2]string{"guest", "late"} {
			t.Fatalf("run %d: pair = %v; want the guest hosting the next arrival", i, p)
		}
	}
}

// Package notice keeps the transient messages shown in the footer.
package notice

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// Level controls how a notice is styled.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelError
	LevelMascot
)

// Default lifetimes per kind of message.
const (
	ErrorTTL   = 5 * time.Second
	ProfileTTL = 4 * time.Second
	MascotTTL  = 3 * time.Second
	InfoTTL    = 3 * time.Second
)

// Notice is one message with its expiry.
type Notice struct {
	ID      string
	Level   Level
	Text    string
	Expires time.Time
	seq     uint64
}

// Board stores live notices. Expired notices disappear on their own.
type Board struct {
	items *cache.Cache
	mu    sync.Mutex
	seq   uint64
}

func New() *Board {
	return &Board{items: cache.New(InfoTTL, time.Minute)}
}

// Add stores a notice for ttl and returns its id. A non-positive ttl uses
// InfoTTL.
func (b *Board) Add(level Level, text string, ttl time.Duration) string {
	if ttl <= 0 {
		ttl = InfoTTL
	}
	b.mu.Lock()
	b.seq++
	seq := b.seq
	b.mu.Unlock()

	n := Notice{
		ID:      uuid.NewString(),
		Level:   level,
		Text:    text,
		Expires: time.Now().Add(ttl),
		seq:     seq,
	}
	b.items.Set(n.ID, n, ttl)
	return n.ID
}

func (b *Board) Info(text string) string    { return b.Add(LevelInfo, text, InfoTTL) }
func (b *Board) Success(text string) string { return b.Add(LevelSuccess, text, ProfileTTL) }
func (b *Board) Error(text string) string   { return b.Add(LevelError, text, ErrorTTL) }
func (b *Board) Mascot(text string) string  { return b.Add(LevelMascot, text, MascotTTL) }

// Active returns live notices, oldest first.
func (b *Board) Active() []Notice {
	items := b.items.Items()
	out := make([]Notice, 0, len(items))
	for _, it := range items {
		if n, ok := it.Object.(Notice); ok {
			out = append(out, n)
		}
	}
	slices.SortFunc(out, func(a, b Notice) int {
		switch {
		case a.seq < b.seq:
			return -1
		case a.seq > b.seq:
			return 1
		}
		return 0
	})
	return out
}

// Latest returns the most recent live notice of the given levels, or of
// any level when none are given.
func (b *Board) Latest(levels ...Level) (Notice, bool) {
	active := b.Active()
	for i := len(active) - 1; i >= 0; i-- {
		if len(levels) == 0 || slices.Contains(levels, active[i].Level) {
			return active[i], true
		}
	}
	return Notice{}, false
}

func (b *Board) Dismiss(id string) {
	b.items.Delete(id)
}

func (b *Board) Clear() {
	b.items.Flush()
}

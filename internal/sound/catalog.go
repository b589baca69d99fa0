package sound

import (
	"cmp"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/dhowden/tag"
	"github.com/gopxl/beep/v2"
)

// Group is the card section a sound is shown in.
type Group int

const (
	GroupNature Group = iota
	GroupNoise
	GroupMelody
	// GroupFeedback sounds are one-shots played on UI events, not cards.
	GroupFeedback
)

func (g Group) String() string {
	switch g {
	case GroupNature:
		return "Nature"
	case GroupNoise:
		return "Noises"
	case GroupMelody:
		return "Melodies"
	case GroupFeedback:
		return "Feedback"
	default:
		return "Other"
	}
}

// Entry describes one sound of the catalog.
type Entry struct {
	Key   string
	Title string
	Kind  Kind
	Group Group
	Loop  bool
	// Path is the audio file for KindFile entries, empty when missing.
	Path string
}

// Feedback sound keys.
const (
	KeyGong   = "gong"
	KeyBubble = "bubble"
)

type builtin struct {
	key   string
	title string
	group Group
	loop  bool
}

var fileSounds = []builtin{
	{"ocean", "Ocean waves", GroupNature, true},
	{"rain", "Rain", GroupNature, true},
	{"forest", "Forest", GroupNature, true},
	{"fire", "Crackling fire", GroupNature, true},
	{"wind", "Wind", GroupNature, true},
	{"water", "Stream", GroupNature, true},
	{"birds", "Birds", GroupNature, true},
	{"underwater", "Underwater", GroupNature, true},
	{"campfire", "Campfire", GroupNature, true},
	{"countryside", "Countryside", GroupNature, true},
	{"cat", "Purring cat", GroupNature, true},
	{"storm", "Storm", GroupNature, true},
	{"lullaby", "Lullaby", GroupMelody, true},
	{"ballad", "Ballad", GroupMelody, true},
	{KeyGong, "Gong", GroupFeedback, false},
	{KeyBubble, "Bubble", GroupFeedback, false},
}

var synthSounds = []Entry{
	{Key: "white-noise", Title: "White noise", Kind: KindNoise, Group: GroupNoise, Loop: true},
	{Key: "pink-noise", Title: "Pink noise", Kind: KindNoise, Group: GroupNoise, Loop: true},
	{Key: "brown-noise", Title: "Brown noise", Kind: KindNoise, Group: GroupNoise, Loop: true},
	{Key: "piano", Title: "Soft piano", Kind: KindMelody, Group: GroupMelody, Loop: true},
	{Key: "lofi", Title: "Lo-fi synth", Kind: KindMelody, Group: GroupMelody, Loop: true},
}

// Catalog lists the available sounds: the built-in ones and any other audio
// file dropped in the sounds directory.
type Catalog struct {
	dir string

	mu      sync.Mutex
	entries []Entry
	known   map[string]bool
}

// NewCatalog scans dir. A missing directory is not an error: file-backed
// built-ins are listed without a path and fail when started.
func NewCatalog(dir string) (*Catalog, error) {
	c := &Catalog{dir: dir, known: make(map[string]bool)}
	if err := c.scan(); err != nil {
		return nil, err
	}
	return c, nil
}

// Dir returns the sounds directory.
func (c *Catalog) Dir() string { return c.dir }

func (c *Catalog) scan() error {
	files, err := listAudioFiles(c.dir)
	if err != nil {
		return err
	}

	var entries []Entry
	for _, b := range fileSounds {
		e := Entry{Key: b.key, Title: b.title, Kind: KindFile, Group: b.group, Loop: b.loop}
		if path, ok := files[b.key]; ok {
			e.Path = path
			delete(files, b.key)
		}
		entries = append(entries, e)
	}
	entries = append(entries, synthSounds...)

	extra := make([]Entry, 0, len(files))
	for key, path := range files {
		extra = append(extra, fileEntry(key, path))
	}
	slices.SortFunc(extra, func(a, b Entry) int { return cmp.Compare(a.Key, b.Key) })
	entries = append(entries, extra...)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = entries
	for _, e := range entries {
		c.known[e.Key] = true
	}
	return nil
}

// Entries returns every entry, built-ins first.
func (c *Catalog) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.entries)
}

// Playable returns the entries shown as sound cards.
func (c *Catalog) Playable() []Entry {
	return slices.DeleteFunc(c.Entries(), func(e Entry) bool { return e.Group == GroupFeedback })
}

// Lookup returns the entry for key.
func (c *Catalog) Lookup(key string) (Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range c.entries {
		if e.Key == key {
			return e, true
		}
	}
	return Entry{}, false
}

// add registers a file found after the initial scan. It returns false when
// the key is already known.
func (c *Catalog) add(path string) (Entry, bool) {
	key := keyFromPath(path)
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.known[key] {
		// A built-in whose file was missing gets its path now
		for i, e := range c.entries {
			if e.Key == key && e.Kind == KindFile && e.Path == "" {
				c.entries[i].Path = path
			}
		}
		return Entry{}, false
	}
	e := fileEntry(key, path)
	c.known[key] = true
	c.entries = append(c.entries, e)
	return e, true
}

// NewHandleFor builds the handle playing e.
func NewHandleFor(engine *Engine, e Entry) Handle {
	var src Source
	switch e.Kind {
	case KindNoise:
		src = NoiseSource(noiseColor(e.Key), 0)
	case KindMelody:
		if e.Key == "lofi" {
			src = Lofi.Source()
		} else {
			src = Piano.Source()
		}
	default:
		src = FileSource(e.Path, e.Loop)
	}
	return NewHandle(engine, e.Key, e.Title, e.Kind, e.Loop, src)
}

// Handles builds one handle per playable entry.
func (c *Catalog) Handles(engine *Engine) []Handle {
	playable := c.Playable()
	handles := make([]Handle, 0, len(playable))
	for _, e := range playable {
		handles = append(handles, c.handleFor(engine, e))
	}
	return handles
}

// Handle builds the handle for key.
func (c *Catalog) Handle(engine *Engine, key string) (Handle, bool) {
	e, ok := c.Lookup(key)
	if !ok {
		return nil, false
	}
	return c.handleFor(engine, e), true
}

// handleFor resolves file paths at start time, so a file added to the
// sounds directory after startup is picked up by its existing handle.
func (c *Catalog) handleFor(engine *Engine, e Entry) Handle {
	if e.Kind != KindFile {
		return NewHandleFor(engine, e)
	}
	src := SourceFunc(func(sr beep.SampleRate) (beep.Streamer, io.Closer, error) {
		current, _ := c.Lookup(e.Key)
		return FileSource(current.Path, e.Loop).Open(sr)
	})
	return NewHandle(engine, e.Key, e.Title, e.Kind, e.Loop, src)
}

func noiseColor(key string) NoiseColor {
	switch key {
	case "pink-noise":
		return Pink
	case "brown-noise":
		return Brown
	default:
		return White
	}
}

func fileEntry(key, path string) Entry {
	return Entry{
		Key:   key,
		Title: fileTitle(key, path),
		Kind:  KindFile,
		Group: GroupNature,
		Loop:  true,
		Path:  path,
	}
}

// listAudioFiles maps file stem to path for supported files in dir.
// When several files share a stem, the first in lexical order wins.
func listAudioFiles(dir string) (map[string]string, error) {
	files := make(map[string]string)
	if dir == "" {
		return files, nil
	}
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return files, nil
	}
	if err != nil {
		return nil, err
	}
	for _, de := range entries {
		if de.IsDir() || !IsSupported(de.Name()) {
			continue
		}
		key := keyFromPath(de.Name())
		if _, dup := files[key]; dup {
			continue
		}
		files[key] = filepath.Join(dir, de.Name())
	}
	return files, nil
}

func keyFromPath(path string) string {
	base := filepath.Base(path)
	return strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
}

// fileTitle prefers the title tag, then a prettified file stem.
func fileTitle(key, path string) string {
	if f, err := os.Open(path); err == nil {
		defer f.Close()
		if m, err := tag.ReadFrom(f); err == nil {
			if t := strings.TrimSpace(m.Title()); t != "" {
				return t
			}
		}
	}
	words := strings.FieldsFunc(key, func(r rune) bool { return r == '-' || r == '_' || r == ' ' })
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	if len(words) == 0 {
		return key
	}
	return strings.Join(words, " ")
}

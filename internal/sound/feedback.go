package sound

import (
	"context"
	"fmt"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
)

const feedbackGain = 0.3

// Feedback plays short one-shot sounds on UI events. They mix over the
// exclusive sound and are not tracked as active.
type Feedback struct {
	engine  *Engine
	catalog *Catalog
	enabled bool
}

func NewFeedback(engine *Engine, catalog *Catalog, enabled bool) *Feedback {
	return &Feedback{engine: engine, catalog: catalog, enabled: enabled}
}

// Play plays the feedback sound key once. Disabled feedback is a no-op.
func (f *Feedback) Play(ctx context.Context, key string) error {
	if f == nil || !f.enabled {
		return nil
	}
	e, ok := f.catalog.Lookup(key)
	if !ok {
		return fmt.Errorf("unknown feedback sound %q", key)
	}
	if err := f.engine.Unlock(ctx); err != nil {
		return err
	}

	s, closer, err := FileSource(e.Path, false).Open(f.engine.SampleRate())
	if err != nil {
		return err
	}
	vol, silent := gainToVolume(feedbackGain)
	v := &effects.Volume{Streamer: s, Base: 2, Volume: vol, Silent: silent}
	done := beep.Callback(func() {
		if closer != nil {
			go closer.Close()
		}
	})
	if err := f.engine.play(beep.Seq(v, done)); err != nil {
		if closer != nil {
			_ = closer.Close()
		}
		return err
	}
	return nil
}

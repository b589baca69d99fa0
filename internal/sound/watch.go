package sound

import (
	"context"

	"github.com/fsnotify/fsnotify"

	"github.com/llehouerou/bulle/internal/log"
)

// Watch reports audio files added to the sounds directory after the
// initial scan. The channel is closed when ctx is done.
func (c *Catalog) Watch(ctx context.Context) (<-chan Entry, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(c.dir); err != nil {
		w.Close()
		return nil, err
	}

	out := make(chan Entry, 16)
	go func() {
		defer close(out)
		defer w.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Write) {
					continue
				}
				if !IsSupported(ev.Name) {
					continue
				}
				e, added := c.add(ev.Name)
				if !added {
					continue
				}
				log.Info(log.CatAudio, "new sound file", "key", e.Key, "path", ev.Name)
				select {
				case out <- e:
				case <-ctx.Done():
					return
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.ErrorErr(log.CatAudio, "watch sounds dir", err)
			}
		}
	}()
	return out, nil
}

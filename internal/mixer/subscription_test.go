package mixer

import (
	"errors"
	"testing"
	"testing/synctest"
)

func TestNewSubscription_ChannelsReadable(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		sub := newSubscription()

		sub.sendState(StateChange{Current: AudioState{Active: []string{"rain"}}})
		sub.sendVolume(VolumeChange{Key: "rain", Level: 40})
		sub.sendError(ErrorEvent{Operation: "activate", Key: "rain", Err: errors.New("boom")})

		e := <-sub.StateChanged
		if len(e.Current.Active) != 1 || e.Current.Active[0] != "rain" {
			t.Errorf("StateChanged.Current = %+v", e.Current)
		}

		v := <-sub.VolumeChanged
		if v.Key != "rain" || v.Level != 40 {
			t.Errorf("VolumeChanged = %+v", v)
		}

		er := <-sub.Error
		if er.Operation != "activate" || er.Err == nil {
			t.Errorf("Error = %+v", er)
		}
	})
}

func TestSubscription_Close_SignalsDone(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		sub := newSubscription()
		sub.close()
		<-sub.Done
	})
}

func TestSubscription_NonBlocking_DropsWhenFull(t *testing.T) {
	sub := newSubscription()

	for range eventBufferSize + 5 {
		sub.sendVolume(VolumeChange{})
	}

	count := 0
	for {
		select {
		case <-sub.VolumeChanged:
			count++
		default:
			goto done
		}
	}
done:
	if count != eventBufferSize {
		t.Errorf("received %d events, want %d (buffer size)", count, eventBufferSize)
	}
}

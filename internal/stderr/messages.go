package stderr

import "strings"

// Messages receives stderr lines captured from C libraries.
// Callers should read from this channel to display errors in the UI.
var Messages = make(chan string, 100)

// ALSA prints harmless probing chatter on many systems.
var noisePrefixes = []string{
	"ALSA lib pcm_dmix.c",
	"ALSA lib pcm_dsnoop.c",
	"ALSA lib pcm_oss.c",
	"ALSA lib pcm_a52.c",
	"ALSA lib pcm_route.c",
	"ALSA lib confmisc.c",
	"ALSA lib conf.c",
	"ALSA lib pcm.c",
	"ALSA lib pcm_usb_stream.c",
	"Cannot connect to server socket",
	"jack server is not running",
}

// IsNoise reports whether a captured line is known chatter that should be
// logged but not shown to the user.
func IsNoise(line string) bool {
	for _, p := range noisePrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

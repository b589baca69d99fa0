package sound

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// ErrFileMissing is returned when a file-backed sound has no file.
var ErrFileMissing = errors.New("sound file not found")

const (
	extMP3  = ".mp3"
	extFLAC = ".flac"
	extWAV  = ".wav"
	extOGG  = ".ogg"
)

// SupportedExtensions lists the audio file types that can be played.
var SupportedExtensions = []string{extMP3, extFLAC, extWAV, extOGG}

// IsSupported reports whether path has a playable extension.
func IsSupported(path string) bool {
	return slices.Contains(SupportedExtensions, strings.ToLower(filepath.Ext(path)))
}

// FileSource plays an audio file, looping it forever if loop is set.
// An empty path means the file is missing and Open fails with ErrFileMissing.
func FileSource(path string, loop bool) Source {
	return SourceFunc(func(sr beep.SampleRate) (beep.Streamer, io.Closer, error) {
		if path == "" {
			return nil, nil, ErrFileMissing
		}
		streamer, format, f, err := decodeFile(path)
		if err != nil {
			return nil, nil, err
		}
		closer := closers{streamer, f}

		var s beep.Streamer = streamer
		if loop {
			s, err = beep.Loop2(streamer)
			if err != nil {
				_ = closer.Close()
				return nil, nil, err
			}
		}

		// Resample if the file's sample rate differs from the output's
		if format.SampleRate != sr {
			s = beep.Resample(4, format.SampleRate, sr, s)
		}
		return s, closer, nil
	})
}

func decodeFile(path string) (beep.StreamSeekCloser, beep.Format, *os.File, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !IsSupported(path) {
		return nil, beep.Format{}, nil, fmt.Errorf("unsupported format: %s", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, beep.Format{}, nil, fmt.Errorf("%w: %s", ErrFileMissing, path)
		}
		return nil, beep.Format{}, nil, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext {
	case extMP3:
		streamer, format, err = decodeMP3(f)
	case extFLAC:
		// Skip ID3v2 tag if present (some taggers add it to FLAC files)
		if err = skipID3v2(f); err == nil {
			streamer, format, err = flac.Decode(f)
		}
	case extWAV:
		streamer, format, err = wav.Decode(f)
	case extOGG:
		streamer, format, err = vorbis.Decode(f)
	}
	if err != nil {
		f.Close()
		return nil, beep.Format{}, nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return streamer, format, f, nil
}

// skipID3v2 skips an ID3v2 tag if present at the beginning of the file.
func skipID3v2(r io.ReadSeeker) error {
	header := make([]byte, 10)
	n, err := io.ReadFull(r, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return err
	}
	if n < 10 || string(header[0:3]) != "ID3" {
		_, err = r.Seek(0, io.SeekStart)
		return err
	}

	// ID3v2 size is a syncsafe integer: 7 bits per byte
	size := int64(header[6])<<21 | int64(header[7])<<14 | int64(header[8])<<7 | int64(header[9])
	_, err = r.Seek(10+size, io.SeekStart)
	return err
}

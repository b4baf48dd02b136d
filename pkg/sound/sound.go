package sound

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/hajimehoshi/go-mp3"
)

var octx *oto.Context

func Init() error {
	op := &oto.NewContextOptions{}

	// Usually 44100 or 48000. Other values might cause distortions in Oto
	op.SampleRate = 44100

	// go-mp3 decodes to stereo signed 16bit integers.
	op.ChannelCount = 2
	op.Format = oto.FormatSignedInt16LE

	// Remember that you should **not** create more than one context
	otoCtx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return fmt.Errorf("sound.Init failed: %w", err)
	}
	// It might take a bit for the hardware audio devices to be ready, so we wait on the channel.
	select {
	case <-readyChan:
		octx = otoCtx
		return nil
	case <-time.After(10 * time.Second):
		return fmt.Errorf("sound.Init timed out")
	}
}

// Create a new 'player' that will handle our sound. Paused by default.
func NewPlayer(r io.Reader) *oto.Player {
	if octx == nil {
		if err := Init(); err != nil {
			panic("sound.NewPlayer: " + err.Error())
		}
	}
	return octx.NewPlayer(r)
}

// Track is a playable mp3 file for the music tab. One Track owns its file
// handle; Close releases both the player and the file.
type Track struct {
	Filename string

	mu     sync.Mutex
	f      *os.File
	player *oto.Player
}

func OpenTrack(filename string) (*Track, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("sound.OpenTrack: %w", err)
	}
	dec, err := mp3.NewDecoder(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mp3.NewDecoder failed: %w", err)
	}
	return &Track{
		Filename: filename,
		f:        f,
		player:   NewPlayer(dec),
	}, nil
}

// Play starts playing the sound and returns without waiting for it (Play() is async).
func (t *Track) Play() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.player != nil {
		t.player.Play()
	}
}

func (t *Track) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.player != nil {
		t.player.Pause()
	}
}

func (t *Track) IsPlaying() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.player != nil && t.player.IsPlaying()
}

// SetVolume expects a fraction in [0,1].
func (t *Track) SetVolume(v float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	if t.player != nil {
		t.player.SetVolume(v)
	}
}

func (t *Track) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.player != nil {
		if err := t.player.Close(); err != nil {
			log.Printf("player.Close failed: %v", err)
		}
		t.player = nil
	}
	if t.f != nil {
		t.f.Close()
		t.f = nil
	}
}

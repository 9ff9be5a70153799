package audio

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"phone3d/internal/config"
	"phone3d/internal/phone"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// maxVoices caps overlapping sounds so rapid clicking can't clip the output.
const maxVoices = 4

// Player renders the phone's UI sounds procedurally through oto.
type Player struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64
	voices int32
}

// New opens the audio device. A disabled config returns a silent player.
func New(cfg config.AudioConfig) (*Player, error) {
	p := &Player{volume: clamp01(cfg.Volume)}
	if !cfg.Enabled {
		return p, nil
	}
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return p, fmt.Errorf("failed to open audio device: %w", err)
	}
	p.ctx = ctx
	p.ready = ready
	return p, nil
}

// Play starts s at gain (0..1) scaled by the master volume. It never blocks.
func (p *Player) Play(s phone.Sound, gain float64) {
	if p == nil || p.ctx == nil || gain <= 0 {
		return
	}
	select {
	case <-p.ready:
	default:
		return
	}
	if atomic.AddInt32(&p.voices, 1) > maxVoices {
		atomic.AddInt32(&p.voices, -1)
		return
	}
	samples := Generate(s, gain)
	if len(samples) == 0 {
		atomic.AddInt32(&p.voices, -1)
		return
	}
	go func() {
		defer atomic.AddInt32(&p.voices, -1)
		player := p.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(p.volume * clamp01(gain))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			slog.Debug("Audio player close failed", "error", err)
		}
	}()
}

// Generate renders s as interleaved stereo float32 LE.
func Generate(s phone.Sound, gain float64) []byte {
	switch s {
	case phone.SoundClick:
		return genClick()
	case phone.SoundVolume:
		return genVolumeTick(gain)
	case phone.SoundBoot:
		return genBootChime()
	case phone.SoundPowerOff:
		return genPowerOff()
	}
	return nil
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

func makeBuf(n int) []byte { return make([]byte, n*8) }

// putStereoF32 writes a [-1,1] sample as float32 LE to both channels of frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// softSat applies gentle tanh-like saturation.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

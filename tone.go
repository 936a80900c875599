package tapkit

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const toneSampleRate = beep.SampleRate(44100)

// ToneFeedback plays a short sine blip per pulse. It stands in for haptics
// on desktops, where there is no vibrator. If the audio device cannot be
// opened every pulse is silently dropped.
type ToneFeedback struct {
	mu     sync.Mutex
	ready  bool
	logger *log.Logger
}

// NewToneFeedback opens the default audio device. A nil logger uses the
// package default.
func NewToneFeedback(logger *log.Logger) *ToneFeedback {
	if logger == nil {
		logger = defaultLogger()
	}
	f := &ToneFeedback{logger: logger}
	if err := speaker.Init(toneSampleRate, toneSampleRate.N(time.Second/10)); err != nil {
		// Non-fatal, the game runs without sound.
		logger.Debug("audio feedback disabled", "err", err)
		return f
	}
	f.ready = true
	return f
}

// Ready reports whether the audio device opened.
func (f *ToneFeedback) Ready() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ready
}

// TriggerHaptic plays a tone whose pitch drops as intensity rises.
func (f *ToneFeedback) TriggerHaptic(intensity Intensity) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.ready {
		return
	}
	sine, err := generators.SineTone(toneSampleRate, toneFrequency(intensity))
	if err != nil {
		return
	}
	speaker.Play(beep.Take(toneSampleRate.N(intensity.Duration()/2), sine))
}

// Close stops any playing tones. Further pulses are dropped.
func (f *ToneFeedback) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.ready {
		return
	}
	speaker.Clear()
	f.ready = false
}

func toneFrequency(intensity Intensity) float64 {
	switch intensity {
	case IntensitySoft:
		return 1320
	case IntensityMedium:
		return 660
	case IntensityStrong:
		return 440
	default:
		return 880
	}
}

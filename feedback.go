package tapkit

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Intensity selects the strength of a haptic pulse.
type Intensity uint8

const (
	IntensitySoft   Intensity = iota // gentle redirection
	IntensityLight                   // ordinary tap acknowledgement
	IntensityMedium                  // celebration
	IntensityStrong                  // reserved for big moments
)

var intensityNames = [...]string{
	IntensitySoft:   "soft",
	IntensityLight:  "light",
	IntensityMedium: "medium",
	IntensityStrong: "strong",
}

// String returns the lower-case intensity name.
func (i Intensity) String() string {
	if int(i) < len(intensityNames) {
		return intensityNames[i]
	}
	return "unknown"
}

// ParseIntensity maps a name back to an Intensity. Unknown names report false
// and return IntensityLight.
func ParseIntensity(name string) (Intensity, bool) {
	for i, n := range intensityNames {
		if n == name {
			return Intensity(i), true
		}
	}
	return IntensityLight, false
}

// Duration returns the vibration length for the intensity.
// Unknown values fall back to the light pulse.
func (i Intensity) Duration() time.Duration {
	switch i {
	case IntensitySoft:
		return 50 * time.Millisecond
	case IntensityMedium:
		return 200 * time.Millisecond
	case IntensityStrong:
		return 300 * time.Millisecond
	default:
		return 100 * time.Millisecond
	}
}

// Feedback is the haptic collaborator invoked on every accepted tap.
// Implementations are fire-and-forget: they must swallow platform failures.
type Feedback interface {
	TriggerHaptic(intensity Intensity)
}

// FeedbackFunc adapts a plain function to Feedback.
type FeedbackFunc func(Intensity)

// TriggerHaptic calls f(intensity).
func (f FeedbackFunc) TriggerHaptic(intensity Intensity) { f(intensity) }

// MultiFeedback fans a pulse out to every non-nil member in order.
type MultiFeedback []Feedback

// TriggerHaptic forwards to each member.
func (m MultiFeedback) TriggerHaptic(intensity Intensity) {
	for _, f := range m {
		if f != nil {
			f.TriggerHaptic(intensity)
		}
	}
}

// VibrateFeedback drives the device vibrator through Ebitengine.
// Platforms without a vibrator ignore the request.
type VibrateFeedback struct {
	// Magnitude is the vibration strength in [0, 1]. Zero means 1.
	Magnitude float64
}

// TriggerHaptic starts a vibration sized by intensity.
func (v VibrateFeedback) TriggerHaptic(intensity Intensity) {
	mag := v.Magnitude
	if mag <= 0 || mag > 1 {
		mag = 1
	}
	ebiten.Vibrate(&ebiten.VibrateOptions{
		Duration:  intensity.Duration(),
		Magnitude: mag,
	})
}

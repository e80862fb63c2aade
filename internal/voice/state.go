package voice

import (
	"fmt"
	"math"
)

type State int

const (
	Idle State = iota
	Listening
	Speaking
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Listening:
		return "listening"
	case Speaking:
		return "speaking"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Rate is the playback multiplier handed to the synthesizer.
type Rate float64

const (
	RateSlow   Rate = 0.7
	RateNormal Rate = 1.0
	RateFast   Rate = 1.3
)

var Rates = []Rate{RateSlow, RateNormal, RateFast}

func ParseRate(v float64) (Rate, error) {
	for _, r := range Rates {
		if math.Abs(float64(r)-v) < 1e-9 {
			return r, nil
		}
	}
	return 0, ErrUnsupportedRate
}

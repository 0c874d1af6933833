package testutil

import (
	"math"
	"math/rand"
)

// DeterministicTone generates a deterministic complex exponential.
func DeterministicTone(freqHz, sampleRate, amplitude float64, length int) []complex64 {
	out := make([]complex64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		phase := step * float64(i)
		out[i] = complex(float32(amplitude*math.Cos(phase)), float32(amplitude*math.Sin(phase)))
	}
	return out
}

// DeterministicNoise generates complex white noise with a fixed seed for
// reproducibility. Real and imaginary parts are independent and uniform
// in [-amplitude, amplitude].
func DeterministicNoise(seed int64, amplitude float64, length int) []complex64 {
	out := make([]complex64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		re := (rng.Float64()*2 - 1) * amplitude
		im := (rng.Float64()*2 - 1) * amplitude
		out[i] = complex(float32(re), float32(im))
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []complex64 {
	out := make([]complex64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value complex64, length int) []complex64 {
	out := make([]complex64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns a slice of length n filled with 1.
func Ones(n int) []complex64 {
	return DC(1, n)
}

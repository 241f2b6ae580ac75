package pongora

import "github.com/go-gl/mathgl/mgl32"

// TrailSample is one recorded ball position and how long ago it was taken.
type TrailSample struct {
	Pos mgl32.Vec2
	Age float32 // Seconds
}

// Trail is the ball's position history, oldest first.
// Ages never increase from front to back, and the newest sample is at age 0
// right after Step.
type Trail struct {
	length  float32
	samples []TrailSample
}

// NewTrail returns a trail that looks like the ball has sat at pos forever.
func NewTrail(length float32, pos mgl32.Vec2) *Trail {
	t := &Trail{length: length, samples: make([]TrailSample, 0, 128)}
	t.Reset(pos)
	return t
}

// Reset collapses the trail to two samples at pos: one exactly trail-length
// old and one brand new.
func (t *Trail) Reset(pos mgl32.Vec2) {
	t.samples = append(t.samples[:0],
		TrailSample{Pos: pos, Age: t.length},
		TrailSample{Pos: pos, Age: 0},
	)
}

// Step ages every sample, records pos, and drops samples that are too old.
// The oldest sample is only dropped once the one after it is also too old,
// so there is always something to interpolate from at the tail.
func (t *Trail) Step(elapsed float32, pos mgl32.Vec2) {
	for i := range t.samples {
		t.samples[i].Age += elapsed
	}
	t.samples = append(t.samples, TrailSample{Pos: pos})

	drop := 0
	for len(t.samples)-drop >= 2 && t.samples[drop+1].Age > t.length {
		drop++
	}
	if drop > 0 {
		t.samples = append(t.samples[:0], t.samples[drop:]...)
	}
}

// Len returns the number of samples.
func (t *Trail) Len() int {
	return len(t.samples)
}

// Samples returns the samples, oldest first. The slice is owned by the trail.
func (t *Trail) Samples() []TrailSample {
	return t.samples
}

// Length returns the trail length in seconds.
func (t *Trail) Length() float32 {
	return t.length
}

// At returns the ball position age seconds ago, interpolated between the
// two samples around it. It reports false when the trail does not reach
// that far back.
func (t *Trail) At(age float32) (mgl32.Vec2, bool) {
	for i := 1; i < len(t.samples); i++ {
		b := t.samples[i]
		if b.Age > age {
			continue
		}
		a := t.samples[i-1]
		span := b.Age - a.Age
		if span == 0 {
			return b.Pos, true
		}
		f := (age - a.Age) / span
		return a.Pos.Add(b.Pos.Sub(a.Pos).Mul(f)), true
	}
	return mgl32.Vec2{}, false
}

package domain

// Airfield holds the weather multipliers sampled at discrete times
// (seconds since epoch). Several airports may share one airfield.
type Airfield struct {
	Name        string
	multipliers map[int64]float64
	last        int64
}

func NewAirfield(name string) *Airfield {
	return &Airfield{Name: name, multipliers: make(map[int64]float64)}
}

// Record the multiplier in effect at time t, replacing any earlier sample.
func (a *Airfield) SetMultiplier(t int64, multiplier float64) {
	if len(a.multipliers) == 0 || t > a.last {
		a.last = t
	}
	a.multipliers[t] = multiplier
}

// LastSample returns the latest time with a recorded sample.
func (a *Airfield) LastSample() (int64, bool) {
	if len(a.multipliers) == 0 {
		return 0, false
	}
	return a.last, true
}

// MultiplierAt is an exact-key lookup. There is no interpolation: a missing
// sample means the weather at t is unknown.
func (a *Airfield) MultiplierAt(t int64) (float64, bool) {
	m, ok := a.multipliers[t]
	return m, ok
}

// Samples returns a copy of every recorded (time, multiplier) pair.
func (a *Airfield) Samples() map[int64]float64 {
	out := make(map[int64]float64, len(a.multipliers))
	for t, m := range a.multipliers {
		out[t] = m
	}
	return out
}

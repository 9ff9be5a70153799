package phone

// Volume is the phone's output level, always within [0, Max].
type Volume struct {
	Level int
	Max   int
}

func NewVolume(level, max int) Volume {
	if max < 0 {
		max = 0
	}
	return Volume{Level: clamp(level, 0, max), Max: max}
}

// Up raises the level by one step. It reports whether the level changed.
func (v *Volume) Up() bool {
	if v.Level >= v.Max {
		return false
	}
	v.Level++
	return true
}

// Down lowers the level by one step. It reports whether the level changed.
func (v *Volume) Down() bool {
	if v.Level <= 0 {
		return false
	}
	v.Level--
	return true
}

// Fraction is the level as a share of Max.
func (v Volume) Fraction() float64 {
	if v.Max <= 0 {
		return 0
	}
	return clampF(float64(v.Level)/float64(v.Max), 0, 1)
}

package phone

import "math"

// Velocity is the rig's angular velocity in radians per frame.
type Velocity struct {
	Pitch, Yaw float64
}

// Speed returns the larger component magnitude.
func (v Velocity) Speed() float64 {
	return math.Max(math.Abs(v.Pitch), math.Abs(v.Yaw))
}

// Momentum keeps the phone spinning after a drag and slows it geometrically.
type Momentum struct {
	Damping    float64
	ClampPitch bool
}

// Step applies one frame: damp v, then integrate it into o.
func (m Momentum) Step(v *Velocity, o Orientation) Orientation {
	v.Pitch *= m.Damping
	v.Yaw *= m.Damping
	o.Pitch += v.Pitch
	o.Yaw += v.Yaw
	if m.ClampPitch {
		limited := clampF(o.Pitch, -math.Pi/2, math.Pi/2)
		if limited != o.Pitch {
			o.Pitch = limited
			v.Pitch = 0
		}
	}
	return o
}

// FramesToRest returns how many steps it takes for speed to fall below eps,
// or -1 when it never does.
func (m Momentum) FramesToRest(speed, eps float64) int {
	speed = math.Abs(speed)
	if eps <= 0 {
		if speed == 0 {
			return 0
		}
		return -1
	}
	if speed < eps {
		return 0
	}
	if m.Damping <= 0 {
		return 1
	}
	if m.Damping >= 1 {
		return -1
	}
	return int(math.Ceil(math.Log(eps/speed) / math.Log(m.Damping)))
}

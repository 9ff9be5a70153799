package audio

import "math"

// genClick: short falling FM tick for a physical button.
func genClick() []byte {
	n := SampleRate * 45 / 1000
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.55, 0.0, 0.1)
		freq := 1800 - 900*p
		s := fm(t, freq, 1.0, 0.6) * env * 0.34
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genVolumeTick: a sine blip whose pitch rises with the level.
func genVolumeTick(level float64) []byte {
	n := SampleRate * 80 / 1000
	buf := makeBuf(n)
	freq := 440 * math.Pow(2, clamp01(level))
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.4, 0.3, 0.4)
		s := math.Sin(2*math.Pi*freq*t) * env * 0.4
		s += math.Sin(2*math.Pi*freq*2*t) * env * 0.06
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genBootChime: ascending FM bell arpeggio, each note ringing over the next.
func genBootChime() []byte {
	notes := []float64{523.25, 659.25, 783.99, 1046.5} // C5 E5 G5 C6
	noteStep := int(0.11 * SampleRate)
	total := len(notes)*noteStep + int(0.4*SampleRate)
	mix := make([]float64, total)

	for fi, freq := range notes {
		start := fi * noteStep
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.004, 0.6, 0.05, 0.3)
			s := fm(t, freq, 2.756, 4.0*env) * env * 0.26
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.06
			mix[start+j] += s
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genPowerOff: two staggered falling tones.
func genPowerOff() []byte {
	n := int(0.45 * SampleRate)
	notes := []struct{ freq, onset float64 }{
		{659.25, 0.00}, // E5
		{440.00, 0.12}, // A4
	}
	mix := make([]float64, n)
	for _, note := range notes {
		start := int(note.onset * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.008, 0.3, 0.2, 0.45)
			freq := note.freq * (1 - np*0.05)
			s := fm(t, freq, 2.0, 1.5*env) * env * 0.3
			mix[i] += s
		}
	}
	buf := makeBuf(n)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

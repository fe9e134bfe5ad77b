package tsl256x

// movingAverage stores an estimated moving average of the last smoothing
// values. The first value seeds the mean.
type movingAverage struct {
	mean   float64
	primed bool
}

func (m *movingAverage) add(n float64) {
	if !m.primed {
		m.mean = n
		m.primed = true
		return
	}
	m.mean += (n - m.mean) / smoothing
}

func (m *movingAverage) reset() {
	m.mean = 0
	m.primed = false
}

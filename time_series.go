package tsl256x

// Stats summarizes the raw counts recorded for one channel.
type Stats struct {
	// Last is the most recent count.
	Last uint16
	// Min and Max are taken over the samples still in the window.
	Min, Max uint16
	// Mean is a moving mean that favours recent samples.
	Mean float64
	// N is the number of samples in the window.
	N int
}

// Span returns Max - Min.
func (s Stats) Span() uint16 {
	return s.Max - s.Min
}

type tSeries struct {
	buffer []uint16
	idx    int
	n      int

	max uint16
	min uint16

	avg movingAverage
}

func newTSeries(size int) *tSeries {
	return &tSeries{
		buffer: make([]uint16, size),
		idx:    -1,
	}
}

func (t *tSeries) add(entries ...uint16) {
	for _, e := range entries {
		t.idx++
		t.idx %= len(t.buffer)

		old := t.buffer[t.idx]
		t.buffer[t.idx] = e
		t.avg.add(float64(e))

		if t.n < len(t.buffer) {
			t.n++
			if t.n == 1 {
				t.min, t.max = e, e
			} else {
				t.minmax(e)
			}
			continue
		}

		if old == t.max || old == t.min {
			t.max = e
			t.min = e
			for _, b := range t.buffer {
				t.minmax(b)
			}
		} else {
			t.minmax(e)
		}
	}
}

func (t *tSeries) minmax(v uint16) {
	if v > t.max {
		t.max = v
	}
	if v < t.min {
		t.min = v
	}
}

func (t *tSeries) last() uint16 {
	if t.n == 0 {
		return 0
	}
	return t.buffer[t.idx]
}

func (t *tSeries) stats() Stats {
	return Stats{
		Last: t.last(),
		Min:  t.min,
		Max:  t.max,
		Mean: t.avg.mean,
		N:    t.n,
	}
}

func (t *tSeries) reset() {
	for i := range t.buffer {
		t.buffer[i] = 0
	}
	t.idx = -1
	t.n = 0
	t.min, t.max = 0, 0
	t.avg.reset()
}

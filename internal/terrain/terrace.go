package terrain

// terraceLimit stops the offset table before a boundary too close to 1.
const terraceLimit = 0.98

// TerraceTable returns the terrace boundary offsets for steps terraces:
// 0, 1/steps, 2/steps, ... while below 0.98, always followed by 1.
// It returns nil when steps <= 0.
func TerraceTable(steps int) []float64 {
	if steps <= 0 {
		return nil
	}
	table := make([]float64, 0, steps+1)
	inc := 1 / float64(steps)
	for offset := 0.0; offset < terraceLimit; offset += inc {
		table = append(table, offset)
	}
	return append(table, 1)
}

// Cubify snaps h onto a terrace boundary. The table is shifted by the
// integer part of h, then scanned upward keeping the last boundary reached
// as the upper bound and the one before it as the lower bound. The closer
// bound wins, ties go to the upper one.
//
// The table must hold at least two entries (see TerraceTable).
func Cubify(table []float64, h float64) float64 {
	base := float64(int64(h))

	lower := table[0] + base
	upper := table[1] + base
	for i := 1; i < len(table); i++ {
		// Inclusive so that a snapped value snaps to itself.
		if h >= table[i]+base {
			upper = table[i] + base
			lower = table[i-1] + base
		}
	}

	if upper-h > h-lower {
		return lower
	}
	return upper
}

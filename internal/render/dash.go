package render

import "math"

// Dashes splits a polyline into the visible runs of an on/off dash pattern.
// An empty or all-zero pattern yields the whole polyline as one run.
func Dashes(pts []Point, pattern []float64) [][]Point {
	if len(pts) < 2 {
		return nil
	}
	total := 0.0
	for _, d := range pattern {
		if d < 0 {
			total = 0
			break
		}
		total += d
	}
	if total <= 0 {
		whole := make([]Point, len(pts))
		copy(whole, pts)
		return [][]Point{whole}
	}

	var out [][]Point
	idx, left, on := 0, pattern[0], true
	cur := []Point{pts[0]}
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		seg := math.Hypot(b.X-a.X, b.Y-a.Y)
		pos := 0.0
		for seg-pos > left {
			pos += left
			p := Point{X: a.X + (b.X-a.X)*pos/seg, Y: a.Y + (b.Y-a.Y)*pos/seg}
			if on {
				out = append(out, append(cur, p))
				cur = nil
			} else {
				cur = []Point{p}
			}
			on = !on
			idx = (idx + 1) % len(pattern)
			left = pattern[idx]
		}
		left -= seg - pos
		if on {
			cur = append(cur, b)
		}
	}
	if on && len(cur) > 1 {
		out = append(out, cur)
	}
	return out
}

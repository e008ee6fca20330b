package day10

import (
	"slices"

	"github.com/maisem/aoc2025"
)

// system is the reduced row echelon form of A·x = b, where A[i][j] is 1
// when button j feeds counter i. It is kept over the integers: every row
// is scaled instead of divided, then reduced by the gcd of its entries.
type system struct {
	rows   [][]int // n coefficients followed by the right hand side
	pivots []int   // pivots[r] is the column of row r's leading entry
	free   []int   // columns without a pivot
}

func reduce(m Machine) (*system, bool) {
	n := len(m.Buttons)
	rows := make([][]int, m.Lights)
	for i := range rows {
		rows[i] = make([]int, n+1)
		for j, b := range m.Buttons {
			if b&(1<<i) != 0 {
				rows[i][j] = 1
			}
		}
		rows[i][n] = m.Joltage[i]
	}

	s := &system{rows: rows}
	r := 0
	for c := range n {
		p := slices.IndexFunc(rows[r:], func(row []int) bool { return row[c] != 0 })
		if p < 0 {
			s.free = append(s.free, c)
			continue
		}
		rows[r], rows[r+p] = rows[r+p], rows[r]
		if rows[r][c] < 0 {
			scale(rows[r], -1)
		}
		normalize(rows[r])
		for i, row := range rows {
			if i == r || row[c] == 0 {
				continue
			}
			a, f := rows[r][c], row[c]
			for k := range row {
				row[k] = a*row[k] - f*rows[r][k]
			}
			normalize(row)
		}
		s.pivots = append(s.pivots, c)
		if r++; r == len(rows) {
			for c++; c < n; c++ {
				s.free = append(s.free, c)
			}
			break
		}
	}
	for _, row := range rows[r:] {
		if row[n] != 0 {
			return nil, false
		}
	}
	return s, true
}

func scale(row []int, f int) {
	for k := range row {
		row[k] *= f
	}
}

func normalize(row []int) {
	g := 0
	for _, v := range row {
		g = aoc.GCD(g, v)
	}
	if g > 1 {
		for k := range row {
			row[k] /= g
		}
	}
}

// minPresses solves the joltage system with the fewest total presses.
// The free buttons are enumerated up to the smallest requirement of the
// counters they feed; each assignment fixes the pivot buttons, which must
// come out as non-negative integers.
func minPresses(m Machine) (int, bool) {
	s, ok := reduce(m)
	if !ok {
		return 0, false
	}
	n := len(m.Buttons)
	limit := make([]int, n)
	for j, b := range m.Buttons {
		limit[j] = -1
		for i := range m.Lights {
			if b&(1<<i) != 0 && (limit[j] < 0 || m.Joltage[i] < limit[j]) {
				limit[j] = m.Joltage[i]
			}
		}
		limit[j] = max(limit[j], 0)
	}

	x := make([]int, n)
	best, found := 0, false
	var search func(k, sum int)
	search = func(k, sum int) {
		if found && sum >= best {
			return
		}
		if k == len(s.free) {
			for r, c := range s.pivots {
				row := s.rows[r]
				v := row[n]
				for _, f := range s.free {
					v -= row[f] * x[f]
				}
				if v%row[c] != 0 || v < 0 {
					return
				}
				sum += v / row[c]
			}
			if !found || sum < best {
				best, found = sum, true
			}
			return
		}
		f := s.free[k]
		for v := 0; v <= limit[f]; v++ {
			if found && sum+v >= best {
				break
			}
			x[f] = v
			search(k+1, sum+v)
		}
		x[f] = 0
	}
	search(0, 0)
	return best, found
}

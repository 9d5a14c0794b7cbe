package engine

// luby generates the Luby restart sequence 1,1,2,1,1,2,4,1,1,2,1,1,2,4,8,...,
// used to schedule restarts the way go-air-gini/internal/xo/s.go's
// s.luby.Next() does (scaled by RestartFactor there; scaled by
// restartScale here).
type luby struct {
	i int
}

func newLuby() *luby {
	return &luby{i: 0}
}

// next advances and returns the next term of the sequence (1-indexed
// internally).
func (l *luby) next() int {
	l.i++
	return lubyTerm(l.i)
}

// lubyTerm returns the i-th (1-indexed) term of the Luby sequence.
func lubyTerm(i int) int {
	k := 1
	for (1<<uint(k))-1 < i {
		k++
	}
	if (1<<uint(k))-1 == i {
		return 1 << uint(k-1)
	}
	return lubyTerm(i - (1<<uint(k-1) - 1))
}

package server

import "sort"

// TopScoreEntry represents a single entry on the leaderboard.
type TopScoreEntry struct {
	Username string
	Score    int
	seq      int // Submission order; earlier scores win ties
}

type leaderboard struct {
	size int
	top  []TopScoreEntry
	next int
}

// add inserts a score and reports whether it made the board.
func (l *leaderboard) add(username string, score int) bool {
	entry := TopScoreEntry{Username: username, Score: score, seq: l.next}
	l.next++

	l.top = append(l.top, entry)
	sort.SliceStable(l.top, func(i, j int) bool {
		if l.top[i].Score != l.top[j].Score {
			return l.top[i].Score > l.top[j].Score
		}
		return l.top[i].seq < l.top[j].seq
	})

	if len(l.top) > l.size {
		dropped := l.top[l.size]
		l.top = l.top[:l.size]
		return dropped.seq != entry.seq
	}
	return true
}

func (l *leaderboard) entries() []TopScoreEntry {
	out := make([]TopScoreEntry, len(l.top))
	copy(out, l.top)
	return out
}

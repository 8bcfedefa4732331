package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// DefaultLeaderboardSize is how many entries the top scores file keeps.
const DefaultLeaderboardSize = 5

// ErrInvalidEntry is returned for a score or name that cannot be stored.
var ErrInvalidEntry = errors.New("storage: invalid entry")

// LeaderboardEntry is one line of the top scores file.
type LeaderboardEntry struct {
	Score int
	Name  string
}

// Leaderboard is the plain-text top scores file. Each line holds one
// "score name" pair, best first. Names may contain spaces.
// A Leaderboard is safe for concurrent use.
type Leaderboard struct {
	mu      sync.Mutex
	path    string
	size    int
	entries []LeaderboardEntry
}

// OpenLeaderboard reads the file at path. A missing file yields an empty
// board; it is created on the first Save.
func OpenLeaderboard(path string, size int) (*Leaderboard, error) {
	path, err := expandPath(path)
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		size = DefaultLeaderboardSize
	}

	lb := &Leaderboard{path: path, size: size}

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return lb, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open leaderboard: %w", err)
	}
	defer f.Close()

	entries, err := ReadLeaderboard(f)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		lb.insert(e)
	}
	return lb, nil
}

// ReadLeaderboard parses "score name" lines. Blank lines are skipped;
// lines without a numeric score are ignored.
func ReadLeaderboard(r io.Reader) ([]LeaderboardEntry, error) {
	var entries []LeaderboardEntry
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		scoreText, name, _ := strings.Cut(line, " ")
		score, err := strconv.Atoi(scoreText)
		if err != nil || score < 0 {
			continue
		}
		entries = append(entries, LeaderboardEntry{Score: score, Name: strings.TrimSpace(name)})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("storage: cannot read leaderboard: %w", err)
	}
	return entries, nil
}

// WriteLeaderboard writes entries in file format.
func WriteLeaderboard(w io.Writer, entries []LeaderboardEntry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := fmt.Fprintf(bw, "%d %s\n", e.Score, e.Name); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Path returns the resolved file location.
func (lb *Leaderboard) Path() string {
	return lb.path
}

// Entries returns a copy of the ranked entries, best first.
func (lb *Leaderboard) Entries() []LeaderboardEntry {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	out := make([]LeaderboardEntry, len(lb.entries))
	copy(out, lb.entries)
	return out
}

// Qualifies reports whether score would earn a place on the board.
func (lb *Leaderboard) Qualifies(score int) bool {
	return lb.RankFor(score) > 0
}

// RankFor returns the 1-based place score would take, or 0 if it would not
// make the board.
func (lb *Leaderboard) RankFor(score int) int {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	if score <= 0 {
		return 0
	}
	return lb.placeOf(score) + 1
}

// placeOf returns the index a score would be inserted at, or -1 if it falls
// off the end.
func (lb *Leaderboard) placeOf(score int) int {
	for i, cur := range lb.entries {
		if score > cur.Score {
			return i
		}
	}
	if len(lb.entries) < lb.size {
		return len(lb.entries)
	}
	return -1
}

// Add ranks a new score and returns its 1-based place, or 0 if it did not
// make the board. Names are trimmed and must be non-empty and single-line.
func (lb *Leaderboard) Add(score int, name string) (int, error) {
	name = strings.TrimSpace(name)
	if score < 0 || name == "" || strings.ContainsAny(name, "\r\n") {
		return 0, fmt.Errorf("%w: score %d name %q", ErrInvalidEntry, score, name)
	}

	lb.mu.Lock()
	defer lb.mu.Unlock()
	if score == 0 {
		return 0, nil
	}
	return lb.insert(LeaderboardEntry{Score: score, Name: name}), nil
}

// insert places e before the first lower score, sliding the rest down and
// dropping whatever falls off the end. Equal scores keep their order.
func (lb *Leaderboard) insert(e LeaderboardEntry) int {
	idx := lb.placeOf(e.Score)
	if idx < 0 {
		return 0
	}

	if len(lb.entries) < lb.size {
		lb.entries = append(lb.entries, LeaderboardEntry{})
	}
	for i := len(lb.entries) - 1; i > idx; i-- {
		lb.entries[i] = lb.entries[i-1]
	}
	lb.entries[idx] = e
	return idx + 1
}

// Save writes the board atomically, creating parent directories.
func (lb *Leaderboard) Save() error {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	dir := filepath.Dir(lb.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".leaderboard-*")
	if err != nil {
		return fmt.Errorf("storage: cannot save leaderboard: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := WriteLeaderboard(tmp, lb.entries); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot save leaderboard: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot save leaderboard: %w", err)
	}
	if err := os.Rename(tmp.Name(), lb.path); err != nil {
		return fmt.Errorf("storage: cannot save leaderboard: %w", err)
	}
	return nil
}

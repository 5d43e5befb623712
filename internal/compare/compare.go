package compare

import (
	"runtime"
	"sync"

	"wordlev/internal/levenshtein"
)

// parallelThreshold is the number of aligned positions below which fan-out
// costs more than it saves.
const parallelThreshold = 512

// WordPair is one aligned position whose tokens differ.
type WordPair struct {
	Index    int    `json:"index"`
	First    string `json:"first"`
	Second   string `json:"second"`
	Distance int    `json:"distance"`
}

// Result is the outcome of comparing two token sequences.
type Result struct {
	TotalDistance int        `json:"total_distance"`
	Differences   []WordPair `json:"differences"`
	// Positions is the number of aligned positions, max(len(a), len(b)).
	Positions int `json:"positions"`
}

// Identical reports whether every aligned pair matched.
func (r Result) Identical() bool {
	return r.TotalDistance == 0
}

// Comparer scores token sequences. The zero value compares sequentially.
type Comparer struct {
	// Workers bounds concurrent scoring for long sequences. Values below 2
	// keep scoring on the calling goroutine; a negative value uses GOMAXPROCS.
	Workers int
}

// Compare aligns tokens1 and tokens2 by index using a sequential Comparer.
func Compare(tokens1, tokens2 []string) Result {
	return Comparer{}.Compare(tokens1, tokens2)
}

// Compare aligns tokens1 and tokens2 by index. Missing tokens on the shorter
// side are treated as empty strings. Differences are ordered by index.
func (c Comparer) Compare(tokens1, tokens2 []string) Result {
	n := max(len(tokens1), len(tokens2))
	result := Result{
		Differences: []WordPair{},
		Positions:   n,
	}
	if n == 0 {
		return result
	}

	distances := c.score(tokens1, tokens2, n)
	for i, d := range distances {
		result.TotalDistance += d
		if d == 0 {
			continue
		}
		result.Differences = append(result.Differences, WordPair{
			Index:    i,
			First:    tokenAt(tokens1, i),
			Second:   tokenAt(tokens2, i),
			Distance: d,
		})
	}
	return result
}

func (c Comparer) score(tokens1, tokens2 []string, n int) []int {
	distances := make([]int, n)
	workers := c.workerCount(n)
	if workers < 2 {
		scoreRange(tokens1, tokens2, distances, 0, n)
		return distances
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			scoreRange(tokens1, tokens2, distances, start, end)
		}(start, end)
	}
	wg.Wait()
	return distances
}

func (c Comparer) workerCount(n int) int {
	if n < parallelThreshold {
		return 1
	}
	workers := c.Workers
	if workers < 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return workers
}

// scoreRange fills distances[start:end]; each call owns its calculator.
func scoreRange(tokens1, tokens2 []string, distances []int, start, end int) {
	var calc levenshtein.Calculator
	for i := start; i < end; i++ {
		distances[i] = calc.Distance(tokenAt(tokens1, i), tokenAt(tokens2, i))
	}
}

func tokenAt(tokens []string, i int) string {
	if i < len(tokens) {
		return tokens[i]
	}
	return ""
}

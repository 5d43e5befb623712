package levenshtein

// Distance returns the minimum number of single-rune insertions, deletions,
// and substitutions needed to turn a into b.
func Distance(a, b string) int {
	var c Calculator
	return c.Distance(a, b)
}

// Calculator scores word pairs while reusing its buffers between calls.
// The zero value is ready to use. A Calculator is not safe for concurrent use;
// give each goroutine its own.
type Calculator struct {
	ra, rb []rune
	prev   []int
	curr   []int
}

// Distance returns the edit distance between a and b. The cost grid has one
// row per rune of b and one column per rune of a; only two rows are kept.
func (c *Calculator) Distance(a, b string) int {
	if a == b {
		return 0
	}
	c.ra = appendRunes(c.ra[:0], a)
	c.rb = appendRunes(c.rb[:0], b)
	ra, rb := c.ra, c.rb

	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	width := len(ra) + 1
	c.prev = resize(c.prev, width)
	c.curr = resize(c.curr, width)
	prev, curr := c.prev, c.curr

	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(rb); i++ {
		curr[0] = i
		for j := 1; j <= len(ra); j++ {
			if rb[i-1] == ra[j-1] {
				curr[j] = prev[j-1]
				continue
			}
			curr[j] = 1 + min(prev[j-1], curr[j-1], prev[j])
		}
		prev, curr = curr, prev
	}

	// prev holds the last computed row after the final swap.
	c.prev, c.curr = prev, curr
	return prev[len(ra)]
}

// Matrix returns the full (len(b)+1) x (len(a)+1) cost grid for a and b,
// indexed by rune position. The bottom-right cell equals Distance(a, b).
func Matrix(a, b string) [][]int {
	ra := []rune(a)
	rb := []rune(b)

	grid := make([][]int, len(rb)+1)
	for i := range grid {
		grid[i] = make([]int, len(ra)+1)
		grid[i][0] = i
	}
	for j := range grid[0] {
		grid[0][j] = j
	}

	for i := 1; i <= len(rb); i++ {
		for j := 1; j <= len(ra); j++ {
			if rb[i-1] == ra[j-1] {
				grid[i][j] = grid[i-1][j-1]
				continue
			}
			grid[i][j] = 1 + min(
				grid[i-1][j-1], // substitute
				grid[i][j-1],   // insert
				grid[i-1][j],   // delete
			)
		}
	}
	return grid
}

func appendRunes(dst []rune, s string) []rune {
	for _, r := range s {
		dst = append(dst, r)
	}
	return dst
}

func resize(buf []int, n int) []int {
	if cap(buf) < n {
		return make([]int, n)
	}
	return buf[:n]
}

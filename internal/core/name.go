package core

// NewName returns a random string of lowercase ASCII letters whose length is
// drawn uniformly from [minLen, maxLen]. The length is drawn first, then one
// draw per letter.
func NewName(src Source, minLen, maxLen int) string {
	n := src.IntRange(minLen, maxLen)
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('a' + src.IntRange(0, 25))
	}
	return string(b)
}

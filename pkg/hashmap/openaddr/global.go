package openaddr

const (
	DefaultCapacity   = 16
	DefaultLoadFactor = 0.50 // load factor must be in (0, 1]
)

// threshold returns floor(capacity * loadFactor)
func threshold(capacity int, loadFactor float64) int {
	return int(float64(capacity) * loadFactor)
}

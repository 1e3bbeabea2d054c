package arraypq

import "strings"

// DefaultCapacity is the capacity used by both strategies when none is configured.
const DefaultCapacity = 1000

// Strategy selects the backing array layout of a PriorityQueue.
type Strategy int

const (
	// OrderedArray keeps the backing array sorted; Remove and Peek are O(1),
	// Insert and Delete pay a binary search plus a shift.
	OrderedArray Strategy = iota

	// UnorderedArray appends in insertion order; Insert is O(1), Remove, Peek,
	// Delete and Contains scan linearly.
	UnorderedArray
)

func (s Strategy) String() string {
	switch s {
	case OrderedArray:
		return "ordered"
	case UnorderedArray:
		return "unordered"
	default:
		return "unknown"
	}
}

// ParseStrategy returns the Strategy named by s ("ordered" or "unordered").
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ordered":
		return OrderedArray, nil
	case "unordered":
		return UnorderedArray, nil
	default:
		return 0, NewConfigError("Strategy", s, `must be "ordered" or "unordered"`)
	}
}

// Config holds configuration settings for a PriorityQueue
type Config struct {
	Capacity int      // maximum number of elements, fixed for the life of the queue
	Strategy Strategy // backing array layout
}

// DefaultConfig returns the default configuration options used if none provided
func DefaultConfig() *Config {
	return &Config{
		Capacity: DefaultCapacity,
		Strategy: OrderedArray,
	}
}

// mergeConfig takes a provided config and replaces any values not set with the defaults
func mergeConfig(c *Config) *Config {
	d := DefaultConfig()
	if c == nil {
		return d
	}
	merged := *c
	if merged.Capacity <= 0 {
		merged.Capacity = d.Capacity
	}
	if merged.Strategy != OrderedArray && merged.Strategy != UnorderedArray {
		merged.Strategy = d.Strategy
	}
	return &merged
}

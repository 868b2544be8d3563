package store

import "strconv"

// IDAllocator picks the ID for a new record given the IDs already in
// the collection. Isolated behind an interface so the legacy
// max-parse-increment scheme can be swapped for UUIDs without touching
// call sites.
type IDAllocator interface {
	Next(existing []string) string
}

// sequentialAllocator reproduces the legacy scheme: parse every
// existing ID as a decimal integer, take the max, add one. An empty
// collection starts at "1" instead of blowing up on max of nothing.
type sequentialAllocator struct{}

func NewSequentialAllocator() IDAllocator {
	return sequentialAllocator{}
}

func (sequentialAllocator) Next(existing []string) string {
	max := 0
	for _, id := range existing {
		n, err := strconv.Atoi(id)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1)
}

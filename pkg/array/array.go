package array

// Returns the index of the first element that is true on the condition.
// Otherwise, returns -1.
func Some[T any](arr []T, cond func(T) bool) int {
	for i := 0; i < len(arr); i++ {
		if cond(arr[i]) {
			return i
		}
	}
	return -1
}

// Returns true if the array contains the given value.
func Contains[T comparable](arr []T, value T) bool {
	index := Some(arr, func(elem T) bool {
		return elem == value
	})
	return index > -1
}

// Returns the index of the first contiguous run of len(pattern) elements where
// every element matches the pattern element at the same offset.
// Otherwise, returns -1. An empty pattern never matches.
func Window[T, P any](arr []T, pattern []P, match func(T, P) bool) int {
	if len(pattern) == 0 {
		return -1
	}
	for i := 0; i+len(pattern) <= len(arr); i++ {
		j := 0
		for j < len(pattern) && match(arr[i+j], pattern[j]) {
			j++
		}
		if j == len(pattern) {
			return i
		}
	}
	return -1
}

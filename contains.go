package slices

import (
	"golang.org/x/exp/slices"
)

// Contains checks if slice contains given element.
func Contains[E comparable](slice []E, element E) bool {
	return slices.Contains(slice, element)
}

// ContainsAny checks if slice contains any of given elements.
func ContainsAny[E comparable](slice, elements []E) bool {
	set := ToSet(slice)
	for _, v := range elements {
		if _, ok := set[v]; ok {
			return true
		}
	}
	return false
}

// ContainsAll checks if slice contains all given elements, order independent.
func ContainsAll[E comparable](slice, elements []E) bool {
	set := ToSet(slice)
	for _, v := range elements {
		if _, ok := set[v]; !ok {
			return false
		}
	}
	return true
}

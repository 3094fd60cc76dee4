package asm

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// Labels maps label names to instruction indexes.
type Labels struct {
	index map[string]int
}

// Register binds a label to an instruction index.
func (lt *Labels) Register(name string, index int) (err error) {
	if _, ok := lt.index[name]; ok {
		err = ErrLabelDuplicate
		return
	}

	if lt.index == nil {
		lt.index = make(map[string]int, 16)
	}
	lt.index[name] = index

	return
}

// Resolve returns the instruction index of a label.
func (lt *Labels) Resolve(name string) (index int, err error) {
	var ok bool
	if lt != nil {
		index, ok = lt.index[name]
	}
	if !ok {
		err = ErrLabelMissing(name)
	}

	return
}

// Len returns the number of defined labels.
func (lt *Labels) Len() int {
	return len(lt.index)
}

// Reset removes all labels.
func (lt *Labels) Reset() {
	clear(lt.index)
}

// All iterates over the labels in instruction index order, then by name.
func (lt *Labels) All() iter.Seq2[string, int] {
	return func(yield func(name string, index int) bool) {
		names := slices.SortedFunc(maps.Keys(lt.index), func(a, b string) int {
			return cmp.Or(cmp.Compare(lt.index[a], lt.index[b]), cmp.Compare(a, b))
		})
		for _, name := range names {
			if !yield(name, lt.index[name]) {
				return
			}
		}
	}
}

// Map returns a copy of the label table.
func (lt *Labels) Map() map[string]int {
	return maps.Clone(lt.index)
}

package descriptor

import "maps"

// Owner is any record whose fields are governed by descriptors.
// The method is unexported, so embedding Slots is the only way to satisfy it.
type Owner interface {
	slots() *Slots
}

// Slots is the hidden per-instance storage of an owner.
// The zero value is ready to use. Its contents can only be changed through a
// descriptor's Write, so every stored value passed validation when stored.
//
// Slots must not be copied after first use: a value copy shares storage with
// the original. go vet reports such copies; use CopyFrom to duplicate a record.
type Slots struct {
	_      noCopy
	values map[string]any
}

func (s *Slots) slots() *Slots { return s }

// Len reports how many slots hold a value.
func (s *Slots) Len() int { return len(s.values) }

// CopyFrom replaces the contents of s with those of src.
// The two owners are independent afterwards.
func (s *Slots) CopyFrom(src *Slots) {
	if src == nil || len(src.values) == 0 {
		s.values = nil
		return
	}
	s.values = maps.Clone(src.values)
}

func (s *Slots) load(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *Slots) store(key string, value any) {
	if s.values == nil {
		s.values = make(map[string]any)
	}
	s.values[key] = value
}

// noCopy makes go vet's copylocks check flag value copies of Slots.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

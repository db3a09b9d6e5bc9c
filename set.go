package plotstyle

import "sort"

// String set is a set of string values.
type StringSet map[string]struct{}

func NewStringSet() StringSet {
	return make(StringSet)
}

func NewStringSetFrom(init []string) StringSet {
	s := NewStringSet()
	for _, v := range init {
		s.Add(v)
	}
	return s
}

// Add adds x to s.
func (s StringSet) Add(x string) {
	s[x] = struct{}{}
}

// Del removes x from s.
func (s StringSet) Del(x string) {
	delete(s, x)
}

// Contains reports membership of x in s.
func (s StringSet) Contains(x string) bool {
	_, ok := s[x]
	return ok
}

// Equals compares s to a slice t.
func (s StringSet) Equals(t []string) bool {
	if len(s) != len(t) {
		return false
	}
	for _, x := range t {
		if _, ok := s[x]; !ok {
			return false
		}
	}
	return true
}

func (s StringSet) Elements() []string {
	elems := make([]string, len(s))
	i := 0
	for x := range s {
		elems[i] = x
		i++
	}
	sort.Strings(elems)
	return elems
}

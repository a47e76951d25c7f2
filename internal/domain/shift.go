package domain

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Shift is a named work period with its accumulated elapsed seconds.
// Name is the identity key when a shift is saved into a ShiftList.
type Shift struct {
	Name    string
	Seconds int
}

// NewShift returns the empty shift a fresh session starts from.
func NewShift() Shift {
	return Shift{}
}

// ShiftList is the ordered list of saved shifts. Insertion order is kept;
// entries are only ever appended or replaced in place by Merge.
type ShiftList []Shift

// IndexOf returns the index of the first entry named name, or -1.
func (l ShiftList) IndexOf(name string) int {
	for i, s := range l {
		if s.Name == name {
			return i
		}
	}
	return -1
}

// Merge replaces the entry sharing s.Name with s, or appends s when the
// name is new. The receiver's backing array may be reused.
func (l ShiftList) Merge(s Shift) ShiftList {
	if i := l.IndexOf(s.Name); i >= 0 {
		l[i] = s
		return l
	}
	return append(l, s)
}

// Clone returns a copy that shares no memory with l.
func (l ShiftList) Clone() ShiftList {
	if l == nil {
		return nil
	}
	out := make(ShiftList, len(l))
	copy(out, l)
	return out
}

// ParseSeconds coerces free-form user input into a seconds value.
// A leading, optionally signed run of digits is used and the rest ignored;
// input without one yields 0. Runs too long for an int saturate.
func ParseSeconds(input string) int {
	s := strings.TrimSpace(input)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if errors.Is(err, strconv.ErrRange) {
		if s[0] == '-' {
			return math.MinInt
		}
		return math.MaxInt
	}
	if err != nil {
		return 0
	}
	return n
}

// Clamped returns s with negative Seconds raised to 0.
func (s Shift) Clamped() Shift {
	if s.Seconds < 0 {
		s.Seconds = 0
	}
	return s
}

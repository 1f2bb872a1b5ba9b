// Package student models a student's record: identity, album number and grades.
package student

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Album numbers and grades outside these ranges are rejected.
const (
	MinAlbum = 10000
	MaxAlbum = 999999

	MinGrade     = 2.0
	MaxGrade     = 5.0
	FailingGrade = 2.0
)

var (
	// ErrInvalidAlbum is returned for album numbers outside [MinAlbum, MaxAlbum].
	ErrInvalidAlbum = errors.New("student: invalid album number")
	// ErrInvalidGrade is returned for grades outside [MinGrade, MaxGrade].
	ErrInvalidGrade = errors.New("student: invalid grade")
)

// Record is a single student entry.
type Record struct {
	Name    string
	Surname string
	album   int
	grades  []float64
}

// New creates a record with a validated album number.
func New(name, surname string, album int) (Record, error) {
	r := Record{Name: name, Surname: surname}
	if err := r.SetAlbumNumber(album); err != nil {
		return Record{}, err
	}
	return r, nil
}

// ValidAlbum reports whether n is an acceptable album number.
func ValidAlbum(n int) bool {
	return n >= MinAlbum && n <= MaxAlbum
}

// ValidGrade reports whether g is an acceptable grade.
func ValidGrade(g float64) bool {
	return g >= MinGrade && g <= MaxGrade
}

// AlbumNumber returns the album number, 0 if never set.
func (r *Record) AlbumNumber() int {
	return r.album
}

// SetAlbumNumber sets the album number. An invalid number leaves the
// record unchanged.
func (r *Record) SetAlbumNumber(n int) error {
	if !ValidAlbum(n) {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidAlbum, n, MinAlbum, MaxAlbum)
	}
	r.album = n
	return nil
}

// AddGrade records a grade. Grades outside [2.0, 5.0] are not stored.
func (r *Record) AddGrade(g float64) error {
	if !ValidGrade(g) {
		return fmt.Errorf("%w: %g not in [%g, %g]", ErrInvalidGrade, g, MinGrade, MaxGrade)
	}
	r.grades = append(r.grades, g)
	return nil
}

// Grades returns a copy of the recorded grades in insertion order.
func (r *Record) Grades() []float64 {
	out := make([]float64, len(r.grades))
	copy(out, r.grades)
	return out
}

// Mean returns the average grade, or 0 when nothing is recorded.
func (r *Record) Mean() float64 {
	if len(r.grades) == 0 {
		return 0
	}
	var sum float64
	for _, g := range r.grades {
		sum += g
	}
	return sum / float64(len(r.grades))
}

// Passed reports whether the student has at most one failing grade.
func (r *Record) Passed() bool {
	failing := 0
	for _, g := range r.grades {
		if g == FailingGrade {
			failing++
			if failing > 1 {
				return false
			}
		}
	}
	return true
}

// Summary returns "Name Surname" followed by every grade.
func (r *Record) Summary() string {
	parts := make([]string, 0, len(r.grades)+2)
	parts = append(parts, r.Name, r.Surname)
	for _, g := range r.grades {
		parts = append(parts, strconv.FormatFloat(g, 'g', -1, 64))
	}
	return strings.Join(parts, " ")
}

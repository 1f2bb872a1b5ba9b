// Package complexnum provides a small complex number value type on top of
// the built-in complex64.
package complexnum

import (
	"fmt"
	"math/cmplx"
	"strconv"
	"strings"
)

// Number is a complex number with float32 parts.
// The zero value is 0+0i.
type Number complex64

// New creates a number from its real and imaginary parts.
func New(re, im float32) Number {
	return Number(complex(re, im))
}

// Real returns the real part.
func (n Number) Real() float32 {
	return real(n)
}

// Imag returns the imaginary part.
func (n Number) Imag() float32 {
	return imag(n)
}

// SetReal replaces the real part.
func (n *Number) SetReal(re float32) {
	*n = New(re, n.Imag())
}

// SetImag replaces the imaginary part.
func (n *Number) SetImag(im float32) {
	*n = New(n.Real(), im)
}

// Add returns n + other.
func (n Number) Add(other Number) Number {
	return n + other
}

// Sub returns n - other.
func (n Number) Sub(other Number) Number {
	return n - other
}

// Mul returns n * other.
func (n Number) Mul(other Number) Number {
	return n * other
}

// Conj returns the complex conjugate.
func (n Number) Conj() Number {
	return New(n.Real(), -n.Imag())
}

// Abs returns the modulus.
func (n Number) Abs() float64 {
	return cmplx.Abs(complex128(n))
}

// String formats the number as "re+imi" or "re-imi", e.g. "4.14-7i".
func (n Number) String() string {
	var sb strings.Builder
	sb.WriteString(formatPart(n.Real()))
	if n.Imag() >= 0 {
		sb.WriteByte('+')
	}
	sb.WriteString(formatPart(n.Imag()))
	sb.WriteByte('i')
	return sb.String()
}

// formatPart prints six significant digits, so float32 rounding noise
// (1 + 3.14 = 4.1400003) stays hidden. Negative zero prints as 0.
func formatPart(v float32) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(float64(v), 'g', 6, 32)
}

// Parse reads a number written as "a", "bi", "a+bi" or "a-bi".
func Parse(s string) (Number, error) {
	text := strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if text == "" {
		return 0, fmt.Errorf("complexnum: empty input")
	}
	c, err := strconv.ParseComplex(text, 64)
	if err != nil {
		return 0, fmt.Errorf("complexnum: cannot parse %q: %w", s, err)
	}
	return Number(complex64(c)), nil
}

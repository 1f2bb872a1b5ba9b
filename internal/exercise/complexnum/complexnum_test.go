package complexnum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAndPrint(t *testing.T) {
	a := New(1.0, -2.0)
	b := New(3.14, 0)
	b.SetImag(-5)

	c := a.Add(b)

	assert.Equal(t, "4.14-7i", c.String())
	assert.Equal(t, float32(1), a.Real(), "Add must not modify its receiver")
}

func TestZeroValue(t *testing.T) {
	var n Number
	assert.Equal(t, "0+0i", n.String())
}

func TestNegativeZeroPrintsAsZero(t *testing.T) {
	assert.Equal(t, "3+0i", New(3, 0).Conj().String())
	assert.Equal(t, "0+0i", New(-1, 2).Mul(New(0, 0)).String())
	assert.Equal(t, "0-2i", New(0, 2).Conj().Mul(New(-1, 0)).Conj().String())
}

func TestSetters(t *testing.T) {
	n := New(2, 3)
	n.SetReal(-1.5)
	assert.Equal(t, float32(-1.5), n.Real())
	assert.Equal(t, float32(3), n.Imag())
}

func TestArithmetic(t *testing.T) {
	a := New(1, 2)
	b := New(3, -1)

	assert.Equal(t, New(-2, 3), a.Sub(b))
	assert.Equal(t, New(5, 5), a.Mul(b))
	assert.Equal(t, New(1, -2), a.Conj())
	assert.InDelta(t, 5.0, New(3, 4).Abs(), 1e-9)
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Number
	}{
		{"1-2i", New(1, -2)},
		{"3.14", New(3.14, 0)},
		{"-5i", New(0, -5)},
		{" 2 + 3i ", New(2, 3)},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"", "abc", "1+2j+3"} {
		_, err := Parse(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestStringPrecision(t *testing.T) {
	assert.Equal(t, "0.333333+1e+06i", New(1.0/3.0, 1e6).String())
}

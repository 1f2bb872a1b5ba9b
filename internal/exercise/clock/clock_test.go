package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewComponents(t *testing.T) {
	c := New(200)
	assert.Equal(t, 0, c.Hours())
	assert.Equal(t, 3, c.Minutes())
	assert.Equal(t, 20, c.Secs())
	assert.Equal(t, "00h:03m:20s", c.String())
}

func TestSubtractParsed(t *testing.T) {
	t1 := New(200)
	t2, err := Parse("10h:12m:01s")
	require.NoError(t, err)

	t3 := t2.Sub(t1)
	assert.Equal(t, 36521, t3.Seconds())
	assert.Equal(t, "10h:08m:41s", t3.String())
}

func TestArithmetic(t *testing.T) {
	a := FromHMS(1, 30, 0)
	b := FromHMS(0, 45, 30)

	assert.Equal(t, "02h:15m:30s", a.Add(b).String())
	assert.Equal(t, "00h:44m:30s", a.Sub(b).String())
	assert.Equal(t, "04h:30m:00s", a.Mul(3).String())
}

func TestNegative(t *testing.T) {
	n := New(10).Sub(New(75))
	assert.True(t, n.Negative())
	assert.Equal(t, "-00h:01m:05s", n.String())

	back, err := Parse(n.String())
	require.NoError(t, err)
	assert.Equal(t, n, back)
}

func TestRoundTrip(t *testing.T) {
	for _, secs := range []int{0, 1, 59, 60, 3599, 3600, 86399, 86400, 360000, 1234567} {
		c := New(secs)
		assert.Equal(t, secs, c.Seconds())

		parsed, err := Parse(c.String())
		require.NoError(t, err, "seconds %d", secs)
		assert.Equal(t, c, parsed, "seconds %d", secs)
	}
}

func TestParseForms(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"10h:12m:01s", 36721},
		{"5m:3s", 303},
		{"2h", 7200},
		{"1h:5s", 3605},
		{"90", 90},
		{" 01h:00m:00s ", 3600},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Seconds())
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"", "h", "10x", "1s:2m", "1h:1h", "ah:2m", "1h::2s", "-5m:-3s"} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrBadFormat, "input %q", in)
	}
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("nope") })
	assert.Equal(t, 61, MustParse("1m:1s").Seconds())
}

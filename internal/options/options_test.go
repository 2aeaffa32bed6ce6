package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type fitSettings struct {
	Confidence float64
	Label      string
	Calls      []string
}

var errNonPositive = errors.New("confidence must be positive")

func withConfidence(k float64) Option[*fitSettings] {
	return New(func(s *fitSettings) error {
		if k <= 0 {
			return errNonPositive
		}
		s.Confidence = k
		s.Calls = append(s.Calls, "confidence")

		return nil
	})
}

func withLabel(label string) Option[*fitSettings] {
	return NoError(func(s *fitSettings) {
		s.Label = label
		s.Calls = append(s.Calls, "label")
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		s := &fitSettings{}
		err := Apply(s, withConfidence(3), withLabel("trial 1"))
		require.NoError(t, err)
		require.Equal(t, 3.0, s.Confidence)
		require.Equal(t, "trial 1", s.Label)
		require.Equal(t, []string{"confidence", "label"}, s.Calls)
	})

	t.Run("stops at the first error", func(t *testing.T) {
		s := &fitSettings{Confidence: 2}
		err := Apply(s, withConfidence(-1), withLabel("never"))
		require.ErrorIs(t, err, errNonPositive)
		require.Equal(t, 2.0, s.Confidence)
		require.Empty(t, s.Label)
	})

	t.Run("skips nil options", func(t *testing.T) {
		s := &fitSettings{}
		require.NoError(t, Apply(s, nil, withLabel("x")))
		require.Equal(t, "x", s.Label)
	})

	t.Run("no options leaves target untouched", func(t *testing.T) {
		s := &fitSettings{Confidence: 2}
		require.NoError(t, Apply(s))
		require.Equal(t, 2.0, s.Confidence)
	})
}

func TestOptionWithPrimitiveTarget(t *testing.T) {
	var n int
	opt := NoError(func(p *int) { *p = 42 })
	require.NoError(t, opt.apply(&n))
	require.Equal(t, 42, n)
}

package system_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/questkit-dev/questkit-host-sdk/system"
)

func TestPriority_Compare(t *testing.T) {
	t.Parallel()

	ordered := []system.Priority{
		system.PriorityLowest,
		system.PriorityLow,
		system.PriorityNormal,
		system.PriorityHigh,
		system.PriorityHighest,
	}

	for i, lower := range ordered {
		assert.Zero(t, lower.Compare(lower))
		for _, higher := range ordered[i+1:] {
			assert.Negative(t, lower.Compare(higher), "%s < %s", lower, higher)
			assert.Positive(t, higher.Compare(lower), "%s > %s", higher, lower)
		}
	}

	t.Run("unspecified compares as normal", func(t *testing.T) {
		t.Parallel()
		assert.Zero(t, system.PriorityUnspecified.Compare(system.PriorityNormal))
		assert.Negative(t, system.PriorityUnspecified.Compare(system.PriorityHigh))
		assert.Positive(t, system.PriorityUnspecified.Compare(system.PriorityLow))
	})
}

func TestParsePriority(t *testing.T) {
	t.Parallel()

	t.Run("parses symbolic names case-insensitively", func(t *testing.T) {
		t.Parallel()
		p, err := system.ParsePriority("high")
		require.NoError(t, err)
		assert.Equal(t, system.PriorityHigh, p)

		p, err = system.ParsePriority(" LOWEST ")
		require.NoError(t, err)
		assert.Equal(t, system.PriorityLowest, p)
	})

	t.Run("empty string parses as unspecified", func(t *testing.T) {
		t.Parallel()
		p, err := system.ParsePriority("")
		require.NoError(t, err)
		assert.Equal(t, system.PriorityUnspecified, p)
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		t.Parallel()
		_, err := system.ParsePriority("URGENT")
		assert.Error(t, err)
	})
}

func TestPriority_TextRoundTrip(t *testing.T) {
	t.Parallel()

	for _, p := range []system.Priority{
		system.PriorityLowest,
		system.PriorityLow,
		system.PriorityNormal,
		system.PriorityHigh,
		system.PriorityHighest,
	} {
		text, err := p.MarshalText()
		require.NoError(t, err)

		var back system.Priority
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, p, back)
	}

	t.Run("invalid priority does not marshal", func(t *testing.T) {
		t.Parallel()
		_, err := system.Priority(42).MarshalText()
		assert.Error(t, err)
	})
}

package system_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/questkit-dev/questkit-host-sdk/system"
	"github.com/questkit-dev/questkit-host-sdk/system/values"
)

func TestNewFactory(t *testing.T) {
	t.Parallel()

	build := func(ctx context.Context, subject any) (system.System, error) {
		return &stubSystem{tag: "x"}, nil
	}

	t.Run("requires a capability", func(t *testing.T) {
		t.Parallel()
		_, err := system.NewFactory(levelCapability, "x", build)
		require.NoError(t, err)

		_, err = system.NewFactory(values.Capability{}, "x", build)
		assert.Error(t, err)
	})

	t.Run("rejects a nil build function", func(t *testing.T) {
		t.Parallel()
		_, err := system.NewFactory(levelCapability, "x", nil)
		assert.Error(t, err)
	})
}

func TestFactory_New(t *testing.T) {
	t.Parallel()

	t.Run("builds an instance for the subject", func(t *testing.T) {
		t.Parallel()
		var seen any
		factory := system.MustNewFactory(levelCapability, "x", func(ctx context.Context, subject any) (system.System, error) {
			seen = subject
			return &stubSystem{tag: "x"}, nil
		})

		s, err := factory.New(context.Background(), "player-42")
		require.NoError(t, err)
		assert.Equal(t, "x", s.Tag())
		assert.Equal(t, "player-42", seen)
	})

	t.Run("propagates build errors", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		factory := system.MustNewFactory(levelCapability, "x", func(ctx context.Context, subject any) (system.System, error) {
			return nil, boom
		})

		_, err := factory.New(context.Background(), nil)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("fails loudly instead of returning a nil system", func(t *testing.T) {
		t.Parallel()
		factory := system.MustNewFactory(levelCapability, "x", func(ctx context.Context, subject any) (system.System, error) {
			return nil, nil
		})

		s, err := factory.New(context.Background(), nil)
		assert.Error(t, err)
		assert.Nil(t, s)
	})
}

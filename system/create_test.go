package system_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/questkit-dev/questkit-host-sdk/environment"
	"github.com/questkit-dev/questkit-host-sdk/system"
	"github.com/questkit-dev/questkit-host-sdk/system/entities"
)

// levelSystem is an example capability contract.
type levelSystem interface {
	system.System
	Level() int
}

type stubLevelSystem struct {
	stubSystem
	level int
}

func (s *stubLevelSystem) Level() int { return s.level }

func TestCreate(t *testing.T) {
	t.Parallel()

	t.Run("builds a typed instance from the active binding", func(t *testing.T) {
		t.Parallel()
		reg := system.NewRegistry(environment.NewStatic(nil))
		factory := system.MustNewFactory(levelCapability, "lvl", func(ctx context.Context, subject any) (system.System, error) {
			return &stubLevelSystem{stubSystem: stubSystem{tag: "lvl"}, level: 7}, nil
		})
		require.NoError(t, reg.Register(&stubProvider{
			capability: levelCapability,
			meta:       system.NewMetadata(system.PriorityNormal),
			factory:    factory,
		}))

		ls, err := system.Create[levelSystem](context.Background(), reg, levelCapability, "player-1")
		require.NoError(t, err)
		assert.Equal(t, 7, ls.Level())
	})

	t.Run("fails with system not found when nothing is bound", func(t *testing.T) {
		t.Parallel()
		reg := system.NewRegistry(environment.NewStatic(nil))

		_, err := system.Create[levelSystem](context.Background(), reg, levelCapability, nil)
		assert.ErrorIs(t, err, entities.ErrSystemNotFound)
	})

	t.Run("a wrongly parameterized binding is a programming error", func(t *testing.T) {
		t.Parallel()
		reg := system.NewRegistry(environment.NewStatic(nil))
		factory := system.MustNewFactory(levelCapability, "plain", func(ctx context.Context, subject any) (system.System, error) {
			return &stubSystem{tag: "plain"}, nil
		})
		require.NoError(t, reg.Register(&stubProvider{
			capability: levelCapability,
			meta:       system.NewMetadata(system.PriorityNormal),
			factory:    factory,
		}))

		_, err := system.Create[levelSystem](context.Background(), reg, levelCapability, nil)
		assert.ErrorIs(t, err, entities.ErrIllegalProvider)
	})
}

package system_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/questkit-dev/questkit-host-sdk/system"
	"github.com/questkit-dev/questkit-host-sdk/system/values"
)

// MockEnvironment implements ports.Environment
type MockEnvironment struct {
	mock.Mock
}

func (m *MockEnvironment) Present(id string) bool {
	args := m.Called(id)
	return args.Bool(0)
}

// MockVersionedEnvironment implements ports.VersionedEnvironment
type MockVersionedEnvironment struct {
	MockEnvironment
}

func (m *MockVersionedEnvironment) Version(id string) (string, bool) {
	args := m.Called(id)
	return args.String(0), args.Bool(1)
}

func TestMetadata_Satisfied(t *testing.T) {
	t.Parallel()

	t.Run("empty prerequisite set is vacuously satisfied", func(t *testing.T) {
		t.Parallel()
		meta := system.NewMetadata(system.PriorityNormal)

		ok, reason := meta.Satisfied(nil)
		assert.True(t, ok)
		assert.Empty(t, reason)
	})

	t.Run("prerequisites against a nil environment are unsatisfied", func(t *testing.T) {
		t.Parallel()
		meta := system.NewMetadata(system.PriorityNormal, values.MustNewPrerequisite("rpgcore"))

		ok, reason := meta.Satisfied(nil)
		assert.False(t, ok)
		assert.NotEmpty(t, reason)
	})

	t.Run("asks the environment for every prerequisite", func(t *testing.T) {
		t.Parallel()
		env := new(MockEnvironment)
		env.On("Present", "rpgcore").Return(true).Once()
		env.On("Present", "psapi").Return(true).Once()

		meta := system.NewMetadata(system.PriorityNormal,
			values.MustNewPrerequisite("rpgcore"),
			values.MustNewPrerequisite("psapi"))

		ok, _ := meta.Satisfied(env)
		assert.True(t, ok)
		env.AssertExpectations(t)
	})

	t.Run("one missing prerequisite fails the probe and names it", func(t *testing.T) {
		t.Parallel()
		env := new(MockEnvironment)
		env.On("Present", "rpgcore").Return(true)
		env.On("Present", "psapi").Return(false)

		meta := system.NewMetadata(system.PriorityNormal,
			values.MustNewPrerequisite("rpgcore"),
			values.MustNewPrerequisite("psapi"))

		ok, reason := meta.Satisfied(env)
		assert.False(t, ok)
		assert.Contains(t, reason, "psapi")
	})

	t.Run("version constraint needs a versioned environment", func(t *testing.T) {
		t.Parallel()
		env := new(MockEnvironment)

		meta := system.NewMetadata(system.PriorityNormal,
			values.MustNewPrerequisite("rpgcore@>=2.0"))

		ok, reason := meta.Satisfied(env)
		assert.False(t, ok)
		assert.Contains(t, reason, "version")
		env.AssertNotCalled(t, "Present", mock.Anything)
	})

	t.Run("version constraint on a pattern identifier never resolves", func(t *testing.T) {
		t.Parallel()
		env := new(MockVersionedEnvironment)

		meta := system.NewMetadata(system.PriorityNormal,
			values.MustNewPrerequisite("rpgcore.*@>=2.0"))

		ok, reason := meta.Satisfied(env)
		assert.False(t, ok)
		assert.Contains(t, reason, "pattern")
		env.AssertNotCalled(t, "Version", mock.Anything)
	})

	t.Run("version constraint checked against the reported version", func(t *testing.T) {
		t.Parallel()
		env := new(MockVersionedEnvironment)
		env.On("Version", "rpgcore").Return("2.3.0", true)

		meta := system.NewMetadata(system.PriorityNormal,
			values.MustNewPrerequisite("rpgcore@>=2.0"))

		ok, _ := meta.Satisfied(env)
		assert.True(t, ok)

		tooOld := system.NewMetadata(system.PriorityNormal,
			values.MustNewPrerequisite("rpgcore@>=3.0"))
		ok, reason := tooOld.Satisfied(env)
		assert.False(t, ok)
		assert.Contains(t, reason, "2.3.0")
	})
}

func TestMetadata_Priority(t *testing.T) {
	t.Parallel()

	assert.Equal(t, system.PriorityNormal, system.NewMetadata(system.PriorityUnspecified).Priority())
	assert.Equal(t, system.PriorityHighest, system.NewMetadata(system.PriorityHighest).Priority())
}

func TestMetadata_RequiresIsACopy(t *testing.T) {
	t.Parallel()

	meta := system.NewMetadata(system.PriorityNormal, values.MustNewPrerequisite("rpgcore"))

	got := meta.Requires()
	got[0] = values.MustNewPrerequisite("tampered")

	assert.Equal(t, "rpgcore", meta.Requires()[0].ID())
}

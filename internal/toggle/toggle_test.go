package toggle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUncontrolledToggle(t *testing.T) {
	t.Parallel()

	state := New(Options{})
	require.False(t, state.IsControlled())
	assert.False(t, state.Current())

	assert.True(t, state.Toggle(nil))
	assert.True(t, state.Current())

	assert.False(t, state.Toggle(nil))
	assert.False(t, state.Current())
}

func TestUncontrolledHonoursDefault(t *testing.T) {
	t.Parallel()

	state := New(Options{Default: true})
	assert.True(t, state.Current())

	var got []bool
	state.Toggle(func(next bool) { got = append(got, next) })
	assert.Equal(t, []bool{false}, got)
	assert.False(t, state.Current())
}

func TestControlledToggleOnlyNotifies(t *testing.T) {
	t.Parallel()

	state := New(Options{Controlled: Ptr(false)})
	require.True(t, state.IsControlled())

	var calls []bool
	state.Toggle(func(next bool) { calls = append(calls, next) })
	assert.Equal(t, []bool{true}, calls)
	assert.False(t, state.Current())

	state.Toggle(func(next bool) { calls = append(calls, next) })
	assert.Equal(t, []bool{true, true}, calls)

	state.Sync(Ptr(true))
	assert.True(t, state.Current())
}

func TestSyncCopiesCallerValue(t *testing.T) {
	t.Parallel()

	value := true
	state := New(Options{Controlled: &value})
	value = false
	assert.True(t, state.Current())
}

func TestModeSwitchKeepsInternalValue(t *testing.T) {
	t.Parallel()

	state := New(Options{})
	state.Toggle(nil)
	require.True(t, state.Current())

	state.Sync(Ptr(false))
	assert.False(t, state.Current())
	state.Toggle(nil)
	assert.False(t, state.Current())

	state.Sync(nil)
	assert.False(t, state.IsControlled())
	assert.True(t, state.Current())
}

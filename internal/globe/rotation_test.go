package globe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dotglobe/internal/geo"
)

func TestRotationFastThenSlowForever(t *testing.T) {
	r := NewRotationController(0.3, 0.1)
	state := geo.NewProjectionState(400, 400, 1, 0, 0)

	assert.Equal(t, RegimeFast, r.Regime())
	assert.True(t, r.Tick(state))
	assert.InDelta(t, 0.3, state.Lambda, 1e-12)

	r.Demote()
	r.Demote()
	assert.Equal(t, RegimeSlow, r.Regime())
	assert.Equal(t, 0.1, r.Speed())

	r.BeginDrag()
	r.EndDrag()
	assert.Equal(t, RegimeSlow, r.Regime(), "never returns to fast")
}

func TestRotationPausedWhileDragging(t *testing.T) {
	r := NewRotationController(0.3, 0.1)
	state := geo.NewProjectionState(400, 400, 1, 10, 5)

	r.BeginDrag()
	assert.False(t, r.Tick(state))
	assert.Equal(t, 10.0, state.Lambda)

	r.EndDrag()
	assert.True(t, r.Tick(state))
	assert.Greater(t, state.Lambda, 10.0)
	assert.Equal(t, 5.0, state.Phi)
}

func TestRotationDisabled(t *testing.T) {
	r := NewRotationController(0.3, 0.1)
	r.SetAutoRotate(false)
	state := geo.NewProjectionState(400, 400, 1, 0, 0)
	assert.False(t, r.Tick(state))
	assert.False(t, r.AutoRotating())
	assert.Equal(t, "fast", r.Regime().String())
}

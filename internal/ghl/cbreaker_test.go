package ghl

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMicroBreaker_OpensAfterThreshold(t *testing.T) {
	b := NewMicroBreaker(3, time.Minute)

	assert.True(t, b.TryAcquire())
	b.OnFailure()
	b.OnFailure()
	assert.True(t, b.Ready(), "still closed below threshold")

	b.OnFailure()
	assert.False(t, b.Ready(), "open after third consecutive failure")
	assert.False(t, b.TryAcquire())
}

func TestMicroBreaker_SuccessResets(t *testing.T) {
	b := NewMicroBreaker(2, time.Minute)

	b.OnFailure()
	b.OnSuccess()
	b.OnFailure()
	assert.True(t, b.Ready(), "success resets the failure streak")
}

func TestMicroBreaker_HalfOpenProbe(t *testing.T) {
	b := NewMicroBreaker(1, 10*time.Millisecond)

	b.OnFailure()
	assert.False(t, b.TryAcquire(), "open right after tripping")

	time.Sleep(20 * time.Millisecond)

	assert.True(t, b.TryAcquire(), "probe allowed after open window")
	assert.False(t, b.TryAcquire(), "only one probe in flight")

	b.OnFailure()
	assert.False(t, b.TryAcquire(), "failed probe reopens")

	time.Sleep(20 * time.Millisecond)
	assert.True(t, b.TryAcquire())
	b.OnSuccess()
	assert.True(t, b.TryAcquire(), "closed again after successful probe")
}

package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkSent(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	e := Estimate{Status: EstimateStatusDraft}

	require.True(t, e.MarkSent(now))
	assert.Equal(t, EstimateStatusSent, e.Status)
	require.NotNil(t, e.SentAt)
	assert.True(t, e.SentAt.Equal(now))

	assert.False(t, e.MarkSent(now.Add(time.Hour)), "second send must be a no-op")
	assert.True(t, e.SentAt.Equal(now))
}

func TestMarkViewed_OnlyOnce(t *testing.T) {
	e := Estimate{Status: EstimateStatusSent}

	assert.True(t, e.MarkViewed())
	assert.Equal(t, EstimateStatusViewed, e.Status)
	assert.False(t, e.MarkViewed())
	assert.Equal(t, EstimateStatusViewed, e.Status)

	for _, s := range []EstimateStatus{EstimateStatusDraft, EstimateStatusApproved, EstimateStatusPaid, EstimateStatusRejected} {
		other := Estimate{Status: s}
		assert.False(t, other.MarkViewed())
		assert.Equal(t, s, other.Status)
	}
}

func TestApprove(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	t.Run("from sent and viewed", func(t *testing.T) {
		for _, s := range []EstimateStatus{EstimateStatusSent, EstimateStatusViewed} {
			e := Estimate{Status: s}
			require.NoError(t, e.Approve(now))
			assert.Equal(t, EstimateStatusApproved, e.Status)
			require.NotNil(t, e.ApprovedAt)
			assert.True(t, e.ApprovedAt.Equal(now))
		}
	})

	t.Run("twice keeps first timestamp", func(t *testing.T) {
		e := Estimate{Status: EstimateStatusViewed}
		require.NoError(t, e.Approve(now))
		err := e.Approve(now.Add(time.Hour))
		assert.ErrorIs(t, err, ErrAlreadyApproved)
		assert.ErrorIs(t, err, ErrStateConflict)
		assert.Equal(t, EstimateStatusApproved, e.Status)
		assert.True(t, e.ApprovedAt.Equal(now))
	})

	t.Run("paid is already approved", func(t *testing.T) {
		e := Estimate{Status: EstimateStatusPaid}
		assert.ErrorIs(t, e.Approve(now), ErrAlreadyApproved)
		assert.Nil(t, e.ApprovedAt)
	})

	t.Run("partially paid records approval without status change", func(t *testing.T) {
		e := Estimate{Status: EstimateStatusPartiallyPaid}
		require.NoError(t, e.Approve(now))
		assert.Equal(t, EstimateStatusPartiallyPaid, e.Status)
		require.NotNil(t, e.ApprovedAt)
		assert.ErrorIs(t, e.Approve(now), ErrAlreadyApproved)
	})

	t.Run("invalid sources", func(t *testing.T) {
		for _, s := range []EstimateStatus{EstimateStatusDraft, EstimateStatusRejected, EstimateStatusExpired} {
			e := Estimate{Status: s}
			assert.ErrorIs(t, e.Approve(now), ErrInvalidTransition)
			assert.Equal(t, s, e.Status)
		}
	})
}

func TestRejectAndExpire(t *testing.T) {
	for _, s := range []EstimateStatus{EstimateStatusDraft, EstimateStatusSent, EstimateStatusViewed} {
		e := Estimate{Status: s}
		require.NoError(t, e.Reject())
		assert.Equal(t, EstimateStatusRejected, e.Status)

		e = Estimate{Status: s}
		require.NoError(t, e.Expire())
		assert.Equal(t, EstimateStatusExpired, e.Status)
	}

	for _, s := range []EstimateStatus{EstimateStatusApproved, EstimateStatusPaid, EstimateStatusPartiallyPaid, EstimateStatusExpired} {
		e := Estimate{Status: s}
		assert.ErrorIs(t, e.Reject(), ErrInvalidTransition)
		assert.ErrorIs(t, e.Expire(), ErrInvalidTransition)
		assert.Equal(t, s, e.Status)
	}
}

func TestEstimateStatusValid(t *testing.T) {
	assert.True(t, EstimateStatusPartiallyPaid.Valid())
	assert.False(t, EstimateStatus("archived").Valid())
}

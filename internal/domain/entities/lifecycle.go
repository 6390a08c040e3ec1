package entities

import "time"

func (s EstimateStatus) Valid() bool {
	switch s {
	case EstimateStatusDraft, EstimateStatusSent, EstimateStatusViewed,
		EstimateStatusApproved, EstimateStatusRejected, EstimateStatusExpired,
		EstimateStatusPaid, EstimateStatusPartiallyPaid:
		return true
	}
	return false
}

// IsOpen reports whether the approval axis can still move (Draft, Sent or Viewed).
func (s EstimateStatus) IsOpen() bool {
	return s == EstimateStatusDraft || s == EstimateStatusSent || s == EstimateStatusViewed
}

// MarkSent moves Draft to Sent and stamps SentAt once. Any other status is left
// alone, so regenerating a document for a sent estimate is harmless.
func (e *Estimate) MarkSent(now time.Time) bool {
	if e.Status != EstimateStatusDraft {
		return false
	}
	e.Status = EstimateStatusSent
	if e.SentAt == nil {
		t := now.UTC()
		e.SentAt = &t
	}
	return true
}

// MarkViewed is the one-time Sent -> Viewed nudge triggered by the public link.
func (e *Estimate) MarkViewed() bool {
	if e.Status != EstimateStatusSent {
		return false
	}
	e.Status = EstimateStatusViewed
	return true
}

// Approve records client approval. Approved and Paid estimates return
// ErrAlreadyApproved without changes. A partially paid estimate keeps its payment
// status; only ApprovedAt is recorded.
func (e *Estimate) Approve(now time.Time) error {
	switch e.Status {
	case EstimateStatusApproved, EstimateStatusPaid:
		return ErrAlreadyApproved
	case EstimateStatusPartiallyPaid:
		if e.ApprovedAt != nil {
			return ErrAlreadyApproved
		}
		e.stampApproved(now)
		return nil
	case EstimateStatusSent, EstimateStatusViewed:
		e.Status = EstimateStatusApproved
		e.stampApproved(now)
		return nil
	default:
		return ErrInvalidTransition
	}
}

func (e *Estimate) stampApproved(now time.Time) {
	if e.ApprovedAt == nil {
		t := now.UTC()
		e.ApprovedAt = &t
	}
}

// Reject and Expire are manual admin decisions, allowed while the approval axis is open.
func (e *Estimate) Reject() error {
	return e.close(EstimateStatusRejected)
}

func (e *Estimate) Expire() error {
	return e.close(EstimateStatusExpired)
}

func (e *Estimate) close(to EstimateStatus) error {
	if !e.Status.IsOpen() {
		return ErrInvalidTransition
	}
	e.Status = to
	return nil
}

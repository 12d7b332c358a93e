package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tempora.io/tempora/model"
)

func strPtr(s string) *string { return &s }

func TestResolveUpdate_OwnerStatus(t *testing.T) {
	tests := []struct {
		name     string
		ts       model.Timesheet
		callerID string
		patch    UpdatePatch
		expected Status
	}{
		{
			name:     "owner submits draft",
			ts:       model.Timesheet{Status: "draft", CreatedBy: "owner-1"},
			callerID: "owner-1",
			patch:    UpdatePatch{Status: strPtr("submitted")},
			expected: StatusSubmitted,
		},
		{
			name:     "owner pulls back to draft",
			ts:       model.Timesheet{Status: "submitted", CreatedBy: "owner-1"},
			callerID: "owner-1",
			patch:    UpdatePatch{Status: strPtr("draft")},
			expected: StatusDraft,
		},
		{
			name:     "non-owner cannot change status",
			ts:       model.Timesheet{Status: "draft", CreatedBy: "owner-1"},
			callerID: "someone-else",
			patch:    UpdatePatch{Status: strPtr("submitted")},
			expected: StatusDraft,
		},
		{
			name:     "owner cannot set a decision status directly",
			ts:       model.Timesheet{Status: "submitted", CreatedBy: "owner-1"},
			callerID: "owner-1",
			patch:    UpdatePatch{Status: strPtr("approved")},
			expected: StatusSubmitted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch := ResolveUpdate(&tt.ts, tt.callerID, tt.patch)
			assert.Equal(t, tt.expected, ch.Status)
		})
	}
}

func TestResolveUpdate_ApproverReassignment(t *testing.T) {
	t.Run("reassigning approver to reviewer on approved sheet resubmits", func(t *testing.T) {
		ts := model.Timesheet{
			Status:    "approved",
			CreatedBy: "owner-1",
			Approver:  "a@x.com",
			Reviewer:  "r@x.com",
		}
		ch := ResolveUpdate(&ts, "owner-1", UpdatePatch{
			Approver: strPtr("r@x.com"),
			Reviewer: strPtr("r@x.com"),
		})
		assert.Equal(t, StatusSubmitted, ch.Status)
		assert.True(t, ch.ApproverChanged)
		assert.Equal(t, "r@x.com", ch.Approver)
	})

	t.Run("approver-only patch matching current reviewer resubmits approved sheet", func(t *testing.T) {
		ts := model.Timesheet{
			Status:    "approved",
			CreatedBy: "owner-1",
			Approver:  "a@x.com",
			Reviewer:  "r@x.com",
		}
		ch := ResolveUpdate(&ts, "owner-1", UpdatePatch{Approver: strPtr("r@x.com")})
		assert.Equal(t, StatusSubmitted, ch.Status)
		assert.Equal(t, "r@x.com", ch.Approver)
	})

	t.Run("approver reassignment to a third party keeps approved status", func(t *testing.T) {
		ts := model.Timesheet{
			Status:   "approved",
			Approver: "a@x.com",
			Reviewer: "r@x.com",
		}
		ch := ResolveUpdate(&ts, "owner-1", UpdatePatch{Approver: strPtr("b@x.com")})
		assert.Equal(t, StatusApproved, ch.Status)
		assert.Equal(t, "b@x.com", ch.Approver)
	})

	t.Run("approver change alone on non-approved sheet keeps status", func(t *testing.T) {
		ts := model.Timesheet{
			Status:    "draft",
			CreatedBy: "owner-1",
			Approver:  "a@x.com",
		}
		ch := ResolveUpdate(&ts, "owner-1", UpdatePatch{Approver: strPtr("b@x.com")})
		assert.Equal(t, StatusDraft, ch.Status)
		assert.True(t, ch.ApproverChanged)
		assert.Equal(t, "b@x.com", ch.Approver)
	})

	t.Run("approver value is trimmed", func(t *testing.T) {
		ts := model.Timesheet{Status: "draft", Approver: "a@x.com"}
		ch := ResolveUpdate(&ts, "owner-1", UpdatePatch{Approver: strPtr("  b@x.com  ")})
		assert.Equal(t, "b@x.com", ch.Approver)
	})
}

func TestResolveUpdate_ReviewerReassignment(t *testing.T) {
	// Reviewer reassignment forces resubmission regardless of prior status.
	for _, prior := range []string{"draft", "submitted", "approved", "reviewed", "rejected"} {
		t.Run(prior, func(t *testing.T) {
			ts := model.Timesheet{Status: prior, Reviewer: "r@x.com"}
			ch := ResolveUpdate(&ts, "owner-1", UpdatePatch{Reviewer: strPtr("s@x.com")})
			assert.Equal(t, StatusSubmitted, ch.Status)
			assert.True(t, ch.ReviewerChanged)
			assert.Equal(t, "s@x.com", ch.Reviewer)
		})
	}
}

func TestResolveUpdate_ConfirmRule(t *testing.T) {
	t.Run("unchanged assignees resubmit when both are echoed back", func(t *testing.T) {
		ts := model.Timesheet{
			Status:   "draft",
			Approver: "a@x.com",
			Reviewer: "r@x.com",
		}
		ch := ResolveUpdate(&ts, "owner-1", UpdatePatch{
			Approver: strPtr("a@x.com"),
			Reviewer: strPtr("r@x.com"),
		})
		assert.Equal(t, StatusSubmitted, ch.Status)
		assert.False(t, ch.ApproverChanged)
		assert.False(t, ch.ReviewerChanged)
	})

	t.Run("both assignees set fresh resubmits", func(t *testing.T) {
		ts := model.Timesheet{Status: "draft"}
		ch := ResolveUpdate(&ts, "owner-1", UpdatePatch{
			Approver: strPtr("a@x.com"),
			Reviewer: strPtr("r@x.com"),
		})
		assert.Equal(t, StatusSubmitted, ch.Status)
	})

	t.Run("patch without assignee fields does not resubmit an unassigned sheet", func(t *testing.T) {
		ts := model.Timesheet{Status: "draft", CreatedBy: "owner-1"}
		ch := ResolveUpdate(&ts, "owner-1", UpdatePatch{})
		assert.Equal(t, StatusDraft, ch.Status)
	})
}

func TestResolveUpdate_DaysForceDraft(t *testing.T) {
	days := []model.Day{{Day: "Mon", Date: "2024-03-04", NormalWorkedHours: 8}}

	tests := []struct {
		name  string
		ts    model.Timesheet
		patch UpdatePatch
	}{
		{
			name:  "days edit on submitted sheet",
			ts:    model.Timesheet{Status: "submitted", CreatedBy: "owner-1"},
			patch: UpdatePatch{Days: days},
		},
		{
			name: "days edit overrides explicit submitted status",
			ts:   model.Timesheet{Status: "draft", CreatedBy: "owner-1"},
			patch: UpdatePatch{
				Status: strPtr("submitted"),
				Days:   days,
			},
		},
		{
			name: "days edit overrides reviewer-forced resubmission",
			ts:   model.Timesheet{Status: "approved", CreatedBy: "owner-1", Reviewer: "r@x.com"},
			patch: UpdatePatch{
				Reviewer: strPtr("s@x.com"),
				Days:     days,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch := ResolveUpdate(&tt.ts, "owner-1", tt.patch)
			assert.Equal(t, StatusDraft, ch.Status)
			assert.True(t, ch.DaysChanged)
			assert.Equal(t, days, ch.Days)
		})
	}
}

func TestResolveDecision(t *testing.T) {
	ts := model.Timesheet{
		Status:   "submitted",
		Approver: "a@x.com",
		Reviewer: "r@x.com",
	}

	tests := []struct {
		name      string
		caller    string
		requested Status
		expected  Status
		eligible  bool
	}{
		{"approver approves", "a@x.com", StatusApproved, StatusApproved, true},
		{"reviewer cannot approve", "r@x.com", StatusApproved, StatusSubmitted, false},
		{"stranger cannot approve", "other@x.com", StatusApproved, StatusSubmitted, false},
		{"reviewer reviews", "r@x.com", StatusReviewed, StatusReviewed, true},
		{"approver cannot review", "a@x.com", StatusReviewed, StatusSubmitted, false},
		{"approver rejects", "a@x.com", StatusRejected, StatusRejected, true},
		{"reviewer rejects", "r@x.com", StatusRejected, StatusRejected, true},
		{"stranger cannot reject", "other@x.com", StatusRejected, StatusSubmitted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, eligible := ResolveDecision(&ts, tt.caller, tt.requested)
			assert.Equal(t, tt.expected, next)
			assert.Equal(t, tt.eligible, eligible)
		})
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusDraft, StatusSubmitted, StatusApproved, StatusReviewed, StatusRejected} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, Status("pending").Valid())
	assert.False(t, Status("").Valid())
}

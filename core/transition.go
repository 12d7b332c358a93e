package core

import (
	"strings"

	"tempora.io/tempora/model"
)

// UpdatePatch carries the owner-editable fields of an update request.
// Nil pointers mean the field was absent from the request body.
type UpdatePatch struct {
	Status   *string
	Approver *string
	Reviewer *string
	Days     []model.Day
}

// Changes is the outcome of resolving a patch against the current timesheet
// state. Status is always the final status, whether or not it changed.
type Changes struct {
	Status          Status
	Approver        string
	ApproverChanged bool
	Reviewer        string
	ReviewerChanged bool
	Days            []model.Day
	DaysChanged     bool
}

// ResolveUpdate applies the update rules to the current timesheet state and
// returns the staged changes. The rules run in a fixed order and later rules
// override the status computed by earlier ones:
//
//  1. the owner may set status to draft or submitted directly
//  2. reassigning the approver on an already-approved sheet to the sheet's
//     reviewer collapses approver==reviewer and forces resubmission
//  3. reassigning the reviewer always forces resubmission
//  4. (re)confirming both assignees, changed or not, forces resubmission
//  5. replacing days always resets the sheet to draft
//
// ResolveUpdate is pure: it reads ts but never mutates it.
func ResolveUpdate(ts *model.Timesheet, callerID string, patch UpdatePatch) Changes {
	ch := Changes{Status: Status(ts.Status)}

	if patch.Status != nil {
		requested := Status(*patch.Status)
		if (requested == StatusDraft || requested == StatusSubmitted) && callerID == ts.CreatedBy {
			ch.Status = requested
		}
	}

	approver, hasApprover := trimmed(patch.Approver)
	reviewer, hasReviewer := trimmed(patch.Reviewer)

	if approver != "" && approver != ts.Approver {
		ch.Approver = approver
		ch.ApproverChanged = true
		// Compare against the reviewer the sheet will have after this
		// update: the reassignment collapses approver==reviewer, so an
		// already-approved sheet must go back through submission.
		if Status(ts.Status) == StatusApproved {
			nextReviewer := ts.Reviewer
			if reviewer != "" {
				nextReviewer = reviewer
			}
			if approver == nextReviewer {
				ch.Status = StatusSubmitted
			}
		}
	}

	if reviewer != "" && reviewer != ts.Reviewer {
		ch.Reviewer = reviewer
		ch.ReviewerChanged = true
		ch.Status = StatusSubmitted
	}

	// An absent field never satisfies the equality branch; a bare update with
	// no assignee fields must not resubmit a sheet whose assignees are unset.
	confirmed := hasApprover && hasReviewer && approver == ts.Approver && reviewer == ts.Reviewer
	if confirmed || (approver != "" && reviewer != "") {
		ch.Status = StatusSubmitted
	}

	if len(patch.Days) > 0 {
		ch.Days = patch.Days
		ch.DaysChanged = true
		ch.Status = StatusDraft
	}

	return ch
}

// ResolveDecision checks whether callerEmail may move the timesheet to the
// requested decision state. It returns the resulting status and whether the
// caller was eligible. An ineligible call leaves the status unchanged; the
// engine still records it in the history.
func ResolveDecision(ts *model.Timesheet, callerEmail string, requested Status) (Status, bool) {
	switch requested {
	case StatusApproved:
		if callerEmail == ts.Approver {
			return requested, true
		}
	case StatusReviewed:
		if callerEmail == ts.Reviewer {
			return requested, true
		}
	case StatusRejected:
		if callerEmail == ts.Approver || callerEmail == ts.Reviewer {
			return requested, true
		}
	}
	return Status(ts.Status), false
}

func trimmed(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return strings.TrimSpace(*s), true
}

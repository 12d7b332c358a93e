package communication

import (
	"context"
	"fmt"
	"log"

	"tempora.io/tempora/model"
)

// Notifier fans workflow events out to Slack and email. Every method is
// best-effort: delivery failures are logged and never fail the request.
// A nil *Notifier ignores all calls, as does a Notifier with unset sinks.
type Notifier struct {
	Slack  *Slack
	Mailer *Mailer
}

// TimesheetSubmitted tells the assignees a sheet is waiting on them.
func (n *Notifier) TimesheetSubmitted(ctx context.Context, ts *model.Timesheet) {
	if n == nil {
		return
	}
	message := fmt.Sprintf("Timesheet %q (%d/%d) submitted by %s", ts.Name, ts.Month, ts.Year, ts.Email)
	n.post(message)

	var to []string
	if ts.Approver != "" {
		to = append(to, ts.Approver)
	}
	if ts.Reviewer != "" {
		to = append(to, ts.Reviewer)
	}
	n.mail(ctx, to, fmt.Sprintf("Timesheet submitted: %s", ts.Name),
		fmt.Sprintf("%s submitted timesheet %q for %d/%d. It is waiting for your decision.",
			ts.Email, ts.Name, ts.Month, ts.Year))
}

// DecisionRecorded tells the owner a decision was made on their sheet.
func (n *Notifier) DecisionRecorded(ctx context.Context, ts *model.Timesheet, decidedBy, requested string) {
	if n == nil {
		return
	}
	message := fmt.Sprintf("Timesheet %q (%d/%d): %s recorded %s", ts.Name, ts.Month, ts.Year, decidedBy, requested)
	n.post(message)

	if ts.Email != "" {
		n.mail(ctx, []string{ts.Email}, fmt.Sprintf("Timesheet %s: %s", requested, ts.Name),
			fmt.Sprintf("%s recorded %q on your timesheet %q. Current status: %s.",
				decidedBy, requested, ts.Name, ts.Status))
	}
}

func (n *Notifier) post(message string) {
	if n.Slack == nil {
		return
	}
	if err := n.Slack.Info(message); err != nil {
		log.Printf("slack notification failed: %v", err)
	}
}

func (n *Notifier) mail(ctx context.Context, to []string, subject, body string) {
	if n.Mailer == nil || len(to) == 0 {
		return
	}
	if err := n.Mailer.Send(ctx, to, subject, body); err != nil {
		log.Printf("email notification failed: %v", err)
	}
}

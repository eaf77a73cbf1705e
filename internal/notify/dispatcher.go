// Package notify renders and sends the pipeline's transactional emails.
// Sends are fire-and-forget from the caller's perspective: failures are
// logged and never block the status transition that triggered them.
package notify

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"hireflow/internal/models"
)

// DefaultRatePerSecond caps outbound provider calls when no rate is
// configured.
const DefaultRatePerSecond = 2

// Dispatcher renders templates and pushes them through the sender,
// pacing every outbound call with an injected token bucket. A nil
// sender disables delivery; sends are then logged and skipped.
type Dispatcher struct {
	sender     Sender
	limiter    *rate.Limiter
	senderName string
	signature  string
}

// NewDispatcher builds a dispatcher. limiter may be nil, in which case
// the default rate applies.
func NewDispatcher(sender Sender, limiter *rate.Limiter, senderName, signature string) *Dispatcher {
	if sender == nil {
		log.Warn("Email sending is not configured. Notifications will be logged and skipped.")
	}
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Limit(DefaultRatePerSecond), DefaultRatePerSecond)
	}
	return &Dispatcher{
		sender:     sender,
		limiter:    limiter,
		senderName: senderName,
		signature:  signature,
	}
}

// Send renders and delivers the template kind for this candidate and
// job. The returned error is informational; callers log it and move on.
func (d *Dispatcher) Send(ctx context.Context, kind Kind, candidate *models.Candidate, job *models.Job) error {
	if !kind.Valid() {
		return fmt.Errorf("unknown notification kind %q", kind)
	}

	data := templateData{
		CandidateName: candidate.Name,
		JobTitle:      job.Title,
		SenderName:    d.senderName,
		Signature:     d.signature,
	}
	if job.SchedulingLink != nil && *job.SchedulingLink != "" {
		data.SchedulingLink = *job.SchedulingLink
		data.HasLink = true
	}

	if err := d.deliver(ctx, string(kind), candidate.Email, data); err != nil {
		return err
	}

	// The recruiter copy rides along with the candidate confirmation.
	if kind == KindApplicationReceived && job.NotificationEmail != nil && *job.NotificationEmail != "" {
		if err := d.deliver(ctx, "recruiter_notification", *job.NotificationEmail, data); err != nil {
			log.Warnf("recruiter notification for candidate %s failed: %v", candidate.ID, err)
		}
	}
	return nil
}

func (d *Dispatcher) deliver(ctx context.Context, templateName, to string, data templateData) error {
	subject, body, err := render(templateName, data)
	if err != nil {
		return err
	}

	if d.sender == nil {
		log.Warnf("email sending disabled, skipping %q to %s", subject, to)
		return nil
	}

	// Delay rather than drop when the bucket is empty.
	if err := d.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("waiting for send slot: %w", err)
	}

	if err := d.sender.Send(Message{To: to, Subject: subject, Body: body}); err != nil {
		return fmt.Errorf("sending %q to %s: %w", subject, to, err)
	}
	log.Infof("sent %s email to %s", templateName, to)
	return nil
}

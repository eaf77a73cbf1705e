package notify

import (
	"fmt"
	"strings"
	"text/template"
)

// Kind selects one of the fixed transactional email templates.
type Kind string

const (
	KindApplicationReceived Kind = "application_received"
	KindScheduleInterview   Kind = "schedule_interview"
	KindRejection           Kind = "rejection"
)

// Valid reports whether k names a known template.
func (k Kind) Valid() bool {
	switch k {
	case KindApplicationReceived, KindScheduleInterview, KindRejection:
		return true
	}
	return false
}

// templateData is the placeholder set available to every template.
type templateData struct {
	CandidateName  string
	JobTitle       string
	SenderName     string
	Signature      string
	SchedulingLink string
	HasLink        bool
}

var templates = template.Must(template.New("emails").Parse(`
{{define "application_received_subject"}}Your application for {{.JobTitle}}{{end}}
{{define "application_received"}}Hi {{.CandidateName}},

Thank you for applying for the {{.JobTitle}} position. We have received your application and our team will review it shortly.

We will get back to you as soon as there is an update.

Best regards,
{{.SenderName}}
{{.Signature}}{{end}}

{{define "schedule_interview_subject"}}Interview invitation for {{.JobTitle}}{{end}}
{{define "schedule_interview"}}Hi {{.CandidateName}},

Good news! We would like to invite you to an interview for the {{.JobTitle}} position.
{{if .HasLink}}
Please pick a time slot that works for you: {{.SchedulingLink}}
{{else}}
We will send you a scheduling link in a separate message shortly.
{{end}}
Best regards,
{{.SenderName}}
{{.Signature}}{{end}}

{{define "rejection_subject"}}Update on your application for {{.JobTitle}}{{end}}
{{define "rejection"}}Hi {{.CandidateName}},

Thank you for the time you invested in applying for the {{.JobTitle}} position. After careful consideration we have decided not to move forward with your application.

We wish you the best of luck in your search.

Best regards,
{{.SenderName}}
{{.Signature}}{{end}}

{{define "recruiter_notification_subject"}}New application for {{.JobTitle}}{{end}}
{{define "recruiter_notification"}}A new application for {{.JobTitle}} has been received from {{.CandidateName}} and scored by the evaluation pipeline.

Open the dashboard to review the candidate.{{end}}
`))

// render executes the named template pair and returns subject and body.
func render(name string, data templateData) (string, string, error) {
	var subject, body strings.Builder
	if err := templates.ExecuteTemplate(&subject, name+"_subject", data); err != nil {
		return "", "", fmt.Errorf("rendering %s subject: %w", name, err)
	}
	if err := templates.ExecuteTemplate(&body, name, data); err != nil {
		return "", "", fmt.Errorf("rendering %s body: %w", name, err)
	}
	return strings.TrimSpace(subject.String()), strings.TrimSpace(body.String()) + "\n", nil
}

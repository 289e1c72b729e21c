package models

// SubmissionType discriminates the three lead form variants the site sends.
type SubmissionType string

const (
	TypeContact            SubmissionType = "contact"
	TypePainPointDiscovery SubmissionType = "pain-point-discovery"
	TypeCustomProject      SubmissionType = "custom-project"
)

// Submission is a lead form submission. It is transient: built from a request,
// handed to the email dispatcher, never stored.
type Submission interface {
	Type() SubmissionType
	SenderName() string
	SenderEmail() string
	CompanyName() string
}

// ContactSubmission carries a general inquiry or a pain-point consultation
// request. The two variants share a shape and an email template; Kind keeps
// the original discriminant.
type ContactSubmission struct {
	Kind    SubmissionType
	Name    string
	Email   string
	Company string
	Message string
}

func (c ContactSubmission) Type() SubmissionType { return c.Kind }
func (c ContactSubmission) SenderName() string   { return c.Name }
func (c ContactSubmission) SenderEmail() string  { return c.Email }
func (c ContactSubmission) CompanyName() string  { return c.Company }

// ProjectSubmission carries a custom project request with the structured
// details/budget/timeline triple.
type ProjectSubmission struct {
	Name           string
	Email          string
	Company        string
	ProjectDetails string
	Budget         string
	Timeline       string
}

func (p ProjectSubmission) Type() SubmissionType { return TypeCustomProject }
func (p ProjectSubmission) SenderName() string   { return p.Name }
func (p ProjectSubmission) SenderEmail() string  { return p.Email }
func (p ProjectSubmission) CompanyName() string  { return p.Company }

package resume

// SavedCV is a named snapshot of a resume plus its template settings.
type SavedCV struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	ResumeData ResumeData       `json:"resumeData"`
	Settings   TemplateSettings `json:"settings"`
	CreatedAt  string           `json:"createdAt"`
	UpdatedAt  string           `json:"updatedAt"`
}

// CoverLetter is a stored cover letter targeting a specific opening.
type CoverLetter struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	TargetCompany  string `json:"targetCompany"`
	TargetPosition string `json:"targetPosition"`
	Content        string `json:"content"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

// ApplicationStatus tracks where a job application currently stands.
type ApplicationStatus string

const (
	StatusApplied      ApplicationStatus = "applied"
	StatusInterviewing ApplicationStatus = "interviewing"
	StatusOffered      ApplicationStatus = "offered"
	StatusAccepted     ApplicationStatus = "accepted"
	StatusRejected     ApplicationStatus = "rejected"
)

// JobApplication records one application and the artifacts it used.
type JobApplication struct {
	ID            string            `json:"id"`
	Company       string            `json:"company"`
	Position      string            `json:"position"`
	Status        ApplicationStatus `json:"status"`
	AppliedDate   string            `json:"appliedDate"`
	Notes         string            `json:"notes,omitempty"`
	CVID          string            `json:"cvId,omitempty"`
	CoverLetterID string            `json:"coverLetterId,omitempty"`
}

// UserProfile is the locally stored user identity.
type UserProfile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar,omitempty"`
	CreatedAt string `json:"createdAt"`
}

package resume

// PersonalInfo holds the contact block of a resume. All fields are plain
// strings; "required" is a presentation-layer convention, not a model rule.
type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
	Summary  string `json:"summary"`
}

// Experience represents one work history entry. The id is an opaque token
// generated by the editing layer; it is never parsed or ordered here.
type Experience struct {
	ID           string   `json:"id"`
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Current      bool     `json:"current"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
}

// Education represents one education entry.
type Education struct {
	ID           string   `json:"id"`
	Institution  string   `json:"institution"`
	Degree       string   `json:"degree"`
	Field        string   `json:"field"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	GPA          string   `json:"gpa,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

// SkillLevel is the proficiency scale used by the skills editor.
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
	SkillExpert       SkillLevel = "expert"
)

// Skill is a single named skill. Category is a free-form grouping label.
type Skill struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Level    SkillLevel `json:"level"`
	Category string     `json:"category"`
}

// Project represents a portfolio project entry.
type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link,omitempty"`
	Highlights   []string `json:"highlights"`
}

// Certification represents a professional certification entry.
type Certification struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Issuer       string `json:"issuer"`
	Date         string `json:"date"`
	Expiry       string `json:"expiry,omitempty"`
	CredentialID string `json:"credentialId,omitempty"`
}

// ResumeData is the aggregate root for everything a resume contains.
// Sequence order is display order. The scoring and matching engines treat
// values of this type as immutable inputs.
type ResumeData struct {
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Experiences    []Experience    `json:"experiences"`
	Education      []Education     `json:"education"`
	Skills         []Skill         `json:"skills"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
	TargetRole     string          `json:"targetRole,omitempty"`
	TargetIndustry string          `json:"targetIndustry,omitempty"`
}

// TemplateType enumerates the visual templates the renderer understands.
type TemplateType string

const (
	TemplateModern       TemplateType = "modern"
	TemplateClassic      TemplateType = "classic"
	TemplateCreative     TemplateType = "creative"
	TemplateProfessional TemplateType = "professional"
	TemplateMinimal      TemplateType = "minimal"
	TemplateExecutive    TemplateType = "executive"
)

// FontSize enumerates the template font size presets.
type FontSize string

const (
	FontSmall  FontSize = "small"
	FontMedium FontSize = "medium"
	FontLarge  FontSize = "large"
)

// TemplateSettings carries presentation choices alongside the resume data.
// Color strings are hex values and are not validated here.
type TemplateSettings struct {
	Template     TemplateType `json:"template"`
	PrimaryColor string       `json:"primaryColor"`
	AccentColor  string       `json:"accentColor"`
	FontFamily   string       `json:"fontFamily"`
	FontSize     FontSize     `json:"fontSize"`
}

// ATSScore is the derived scoring result. It is recomputed on demand and
// never persisted. Each component is an integer in [0, 100].
type ATSScore struct {
	Overall     int      `json:"overall"`
	Formatting  int      `json:"formatting"`
	Keywords    int      `json:"keywords"`
	Readability int      `json:"readability"`
	Suggestions []string `json:"suggestions"`
}

// JobMatch is the derived job-description match result. Keyword lists are
// capped at 10 entries each for display.
type JobMatch struct {
	Score           int      `json:"score"`
	MatchedKeywords []string `json:"matchedKeywords"`
	MissingKeywords []string `json:"missingKeywords"`
	Suggestions     []string `json:"suggestions"`
}

// DefaultResumeData returns the empty resume every session starts from.
func DefaultResumeData() ResumeData {
	return ResumeData{
		Experiences:    []Experience{},
		Education:      []Education{},
		Skills:         []Skill{},
		Projects:       []Project{},
		Certifications: []Certification{},
	}
}

// DefaultTemplateSettings returns the presentation defaults used before the
// user has touched the template form.
func DefaultTemplateSettings() TemplateSettings {
	return TemplateSettings{
		Template:     TemplateModern,
		PrimaryColor: "#1e3a5f",
		AccentColor:  "#2d9596",
		FontFamily:   "Inter",
		FontSize:     FontMedium,
	}
}

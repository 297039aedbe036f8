package model

// Go models for the resume aggregate. JSON tags match the persisted
// state document layout, so a saved document round-trips verbatim.

// MaxSummaryLen caps the professional summary at the input surface.
// The store itself accepts any string; enforcing the cap is a policy
// of whatever collects the input, not of the data model.
const MaxSummaryLen = 400

// SkillCategory partitions skills at render time. It is not a
// structural grouping: all skills live in one ordered collection.
type SkillCategory string

const (
	SkillTechnical SkillCategory = "technical"
	SkillSoft      SkillCategory = "soft"
	SkillLanguage  SkillCategory = "language"
)

// KnownCategory reports whether c is one of the three categories a
// renderer groups under a heading.
func KnownCategory(c SkillCategory) bool {
	switch c {
	case SkillTechnical, SkillSoft, SkillLanguage:
		return true
	}
	return false
}

type Education struct {
	ID              string `json:"id"`
	Degree          string `json:"degree"`
	Institution     string `json:"institution"`
	GraduationYear  string `json:"graduationYear"`
	RelevantCourses string `json:"relevantCourses"`
}

type Experience struct {
	ID          string `json:"id"`
	JobTitle    string `json:"jobTitle"`
	Company     string `json:"company"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

type Project struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Technologies string `json:"technologies"`
	Description  string `json:"description"`
}

type Certification struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Year   string `json:"year"`
}

type Publication struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Publisher   string `json:"publisher"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

type Award struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Issuer      string `json:"issuer"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

type Activity struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Date         string `json:"date"`
	Description  string `json:"description"`
}

type Skill struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Category SkillCategory `json:"category"`
}

// ResumeData is the whole aggregate: contact fields flattened in, one
// summary string, and eight ordered sections. Insertion order within a
// section is display order.
type ResumeData struct {
	FullName  string `json:"fullName"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Linkedin  string `json:"linkedin"`
	Portfolio string `json:"portfolio"`
	Address   string `json:"address"`
	Photo     string `json:"photo"`

	Summary string `json:"summary"`

	Education      []Education     `json:"education"`
	Experience     []Experience    `json:"experience"`
	Skills         []Skill         `json:"skills"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
	Publications   []Publication   `json:"publications"`
	Awards         []Award         `json:"awards"`
	Activities     []Activity      `json:"activities"`
}

// EmptyResumeData returns the fully-empty aggregate: all scalars "",
// all sections empty (non-nil, so the persisted document serializes
// them as [] rather than null).
func EmptyResumeData() ResumeData {
	return ResumeData{
		Education:      []Education{},
		Experience:     []Experience{},
		Skills:         []Skill{},
		Projects:       []Project{},
		Certifications: []Certification{},
		Publications:   []Publication{},
		Awards:         []Award{},
		Activities:     []Activity{},
	}
}

// Clone returns a deep copy; mutating the copy never touches the
// original's section slices.
func (r ResumeData) Clone() ResumeData {
	out := r
	out.Education = append([]Education{}, r.Education...)
	out.Experience = append([]Experience{}, r.Experience...)
	out.Skills = append([]Skill{}, r.Skills...)
	out.Projects = append([]Project{}, r.Projects...)
	out.Certifications = append([]Certification{}, r.Certifications...)
	out.Publications = append([]Publication{}, r.Publications...)
	out.Awards = append([]Award{}, r.Awards...)
	out.Activities = append([]Activity{}, r.Activities...)
	return out
}

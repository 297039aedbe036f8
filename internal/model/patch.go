package model

// Patch types use pointer fields so a JSON body can distinguish "field
// absent, leave it alone" from "field present, set it to the zero
// value". Apply merges a patch into a value and returns the result;
// the receiver is never modified.

type ResumeDataPatch struct {
	FullName  *string `json:"fullName,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
	Linkedin  *string `json:"linkedin,omitempty"`
	Portfolio *string `json:"portfolio,omitempty"`
	Address   *string `json:"address,omitempty"`
	Photo     *string `json:"photo,omitempty"`
	Summary   *string `json:"summary,omitempty"`

	Education      *[]Education     `json:"education,omitempty"`
	Experience     *[]Experience    `json:"experience,omitempty"`
	Skills         *[]Skill         `json:"skills,omitempty"`
	Projects       *[]Project       `json:"projects,omitempty"`
	Certifications *[]Certification `json:"certifications,omitempty"`
	Publications   *[]Publication   `json:"publications,omitempty"`
	Awards         *[]Award         `json:"awards,omitempty"`
	Activities     *[]Activity      `json:"activities,omitempty"`
}

func (p ResumeDataPatch) Apply(r ResumeData) ResumeData {
	if p.FullName != nil {
		r.FullName = *p.FullName
	}
	if p.Phone != nil {
		r.Phone = *p.Phone
	}
	if p.Email != nil {
		r.Email = *p.Email
	}
	if p.Linkedin != nil {
		r.Linkedin = *p.Linkedin
	}
	if p.Portfolio != nil {
		r.Portfolio = *p.Portfolio
	}
	if p.Address != nil {
		r.Address = *p.Address
	}
	if p.Photo != nil {
		r.Photo = *p.Photo
	}
	if p.Summary != nil {
		r.Summary = *p.Summary
	}
	if p.Education != nil {
		r.Education = *p.Education
	}
	if p.Experience != nil {
		r.Experience = *p.Experience
	}
	if p.Skills != nil {
		r.Skills = *p.Skills
	}
	if p.Projects != nil {
		r.Projects = *p.Projects
	}
	if p.Certifications != nil {
		r.Certifications = *p.Certifications
	}
	if p.Publications != nil {
		r.Publications = *p.Publications
	}
	if p.Awards != nil {
		r.Awards = *p.Awards
	}
	if p.Activities != nil {
		r.Activities = *p.Activities
	}
	return r
}

type EducationPatch struct {
	Degree          *string `json:"degree,omitempty"`
	Institution     *string `json:"institution,omitempty"`
	GraduationYear  *string `json:"graduationYear,omitempty"`
	RelevantCourses *string `json:"relevantCourses,omitempty"`
}

func (p EducationPatch) Apply(e Education) Education {
	if p.Degree != nil {
		e.Degree = *p.Degree
	}
	if p.Institution != nil {
		e.Institution = *p.Institution
	}
	if p.GraduationYear != nil {
		e.GraduationYear = *p.GraduationYear
	}
	if p.RelevantCourses != nil {
		e.RelevantCourses = *p.RelevantCourses
	}
	return e
}

type ExperiencePatch struct {
	JobTitle    *string `json:"jobTitle,omitempty"`
	Company     *string `json:"company,omitempty"`
	StartDate   *string `json:"startDate,omitempty"`
	EndDate     *string `json:"endDate,omitempty"`
	Current     *bool   `json:"current,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (p ExperiencePatch) Apply(e Experience) Experience {
	if p.JobTitle != nil {
		e.JobTitle = *p.JobTitle
	}
	if p.Company != nil {
		e.Company = *p.Company
	}
	if p.StartDate != nil {
		e.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		e.EndDate = *p.EndDate
	}
	if p.Current != nil {
		e.Current = *p.Current
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	return e
}

type ProjectPatch struct {
	Title        *string `json:"title,omitempty"`
	Technologies *string `json:"technologies,omitempty"`
	Description  *string `json:"description,omitempty"`
}

func (p ProjectPatch) Apply(pr Project) Project {
	if p.Title != nil {
		pr.Title = *p.Title
	}
	if p.Technologies != nil {
		pr.Technologies = *p.Technologies
	}
	if p.Description != nil {
		pr.Description = *p.Description
	}
	return pr
}

type CertificationPatch struct {
	Name   *string `json:"name,omitempty"`
	Issuer *string `json:"issuer,omitempty"`
	Year   *string `json:"year,omitempty"`
}

func (p CertificationPatch) Apply(c Certification) Certification {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Issuer != nil {
		c.Issuer = *p.Issuer
	}
	if p.Year != nil {
		c.Year = *p.Year
	}
	return c
}

type PublicationPatch struct {
	Title       *string `json:"title,omitempty"`
	Publisher   *string `json:"publisher,omitempty"`
	Date        *string `json:"date,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (p PublicationPatch) Apply(pu Publication) Publication {
	if p.Title != nil {
		pu.Title = *p.Title
	}
	if p.Publisher != nil {
		pu.Publisher = *p.Publisher
	}
	if p.Date != nil {
		pu.Date = *p.Date
	}
	if p.Description != nil {
		pu.Description = *p.Description
	}
	return pu
}

type AwardPatch struct {
	Title       *string `json:"title,omitempty"`
	Issuer      *string `json:"issuer,omitempty"`
	Date        *string `json:"date,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (p AwardPatch) Apply(a Award) Award {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Issuer != nil {
		a.Issuer = *p.Issuer
	}
	if p.Date != nil {
		a.Date = *p.Date
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	return a
}

type ActivityPatch struct {
	Title        *string `json:"title,omitempty"`
	Organization *string `json:"organization,omitempty"`
	Date         *string `json:"date,omitempty"`
	Description  *string `json:"description,omitempty"`
}

func (p ActivityPatch) Apply(a Activity) Activity {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Organization != nil {
		a.Organization = *p.Organization
	}
	if p.Date != nil {
		a.Date = *p.Date
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	return a
}

type SkillPatch struct {
	Name     *string        `json:"name,omitempty"`
	Category *SkillCategory `json:"category,omitempty"`
}

func (p SkillPatch) Apply(s Skill) Skill {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Category != nil {
		s.Category = *p.Category
	}
	return s
}

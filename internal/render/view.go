package render

import (
	"html/template"
	"strings"

	"resume-builder/internal/model"
)

// experienceView carries the entry plus the derived period string so
// templates never re-implement the current/Present rule.
type experienceView struct {
	model.Experience
	Period string
}

// view is what templates execute against. The embedded aggregate
// provides every field as-is; the shadowing fields override the ones
// that need render-time derivation: the photo as a trusted URL (data:
// URIs would otherwise be stripped by the URL sanitizer), experience
// with period strings, and skills partitioned by category.
type view struct {
	model.ResumeData

	Photo      template.URL
	Experience []experienceView

	TechnicalSkills []model.Skill
	SoftSkills      []model.Skill
	LanguageSkills  []model.Skill
}

func buildView(data model.ResumeData) view {
	v := view{
		ResumeData: data,
		Photo:      template.URL(data.Photo),
	}
	for _, exp := range data.Experience {
		v.Experience = append(v.Experience, experienceView{
			Experience: exp,
			Period:     period(exp),
		})
	}
	for _, s := range data.Skills {
		switch s.Category {
		case model.SkillTechnical:
			v.TechnicalSkills = append(v.TechnicalSkills, s)
		case model.SkillSoft:
			v.SoftSkills = append(v.SoftSkills, s)
		case model.SkillLanguage:
			v.LanguageSkills = append(v.LanguageSkills, s)
		}
	}
	return v
}

func period(exp model.Experience) string {
	end := exp.EndDate
	if exp.Current {
		end = "Present"
	}
	start := strings.TrimSpace(exp.StartDate)
	end = strings.TrimSpace(end)
	switch {
	case start == "" && end == "":
		return ""
	case start == "":
		return end
	case end == "":
		return start
	}
	return start + " - " + end
}

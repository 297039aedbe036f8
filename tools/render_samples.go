package main

// Renders a sample resume through every registered template so layout
// changes can be eyeballed without clicking through the wizard.

import (
	"fmt"
	"os"
	"path/filepath"

	"resume-builder/internal/model"
	"resume-builder/internal/render"
)

func main() {
	registry, err := render.NewRegistry("templates")
	if err != nil {
		fmt.Fprintf(os.Stderr, "load templates: %v\n", err)
		os.Exit(2)
	}

	data := sampleResume()
	outDir := filepath.Join("resume-data", "samples")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "create out dir: %v\n", err)
		os.Exit(2)
	}

	for _, id := range registry.Known() {
		doc, err := registry.Render(data, id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "render %s: %v\n", id, err)
			os.Exit(2)
		}
		out := filepath.Join(outDir, "resume_"+id+".html")
		if err := os.WriteFile(out, doc, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "write %s: %v\n", out, err)
			os.Exit(2)
		}
		fmt.Printf("wrote %s\n", out)
	}
}

func sampleResume() model.ResumeData {
	d := model.EmptyResumeData()
	d.FullName = "Jane Doe"
	d.Email = "jane.doe@example.com"
	d.Phone = "555-0100"
	d.Address = "Lisbon, Portugal"
	d.Linkedin = "linkedin.com/in/janedoe"
	d.Portfolio = "janedoe.dev"
	d.Summary = "Backend engineer with eight years of experience building data-heavy services. Comfortable owning systems from schema design to deployment."
	d.Education = []model.Education{
		{ID: "edu-1", Degree: "BSc Computer Science", Institution: "University of Lisbon", GraduationYear: "2016", RelevantCourses: "Distributed Systems, Databases, Compilers"},
	}
	d.Experience = []model.Experience{
		{ID: "exp-1", JobTitle: "Senior Backend Engineer", Company: "Globex", StartDate: "2021", Current: true, EndDate: "Present", Description: "Own the billing pipeline.\nCut invoice generation time from hours to minutes."},
		{ID: "exp-2", JobTitle: "Backend Engineer", Company: "Acme", StartDate: "2016", EndDate: "2021", Description: "Built and ran the ingestion fleet."},
	}
	d.Skills = []model.Skill{
		{ID: "sk-1", Name: "Go", Category: model.SkillTechnical},
		{ID: "sk-2", Name: "PostgreSQL", Category: model.SkillTechnical},
		{ID: "sk-3", Name: "Mentoring", Category: model.SkillSoft},
		{ID: "sk-4", Name: "Portuguese", Category: model.SkillLanguage},
		{ID: "sk-5", Name: "English", Category: model.SkillLanguage},
	}
	d.Projects = []model.Project{
		{ID: "prj-1", Title: "ledgerd", Technologies: "Go, SQLite", Description: "Append-only double-entry ledger daemon."},
	}
	d.Certifications = []model.Certification{
		{ID: "cert-1", Name: "CKA", Issuer: "CNCF", Year: "2023"},
	}
	d.Awards = []model.Award{
		{ID: "awd-1", Title: "Engineering Excellence Award", Issuer: "Globex", Date: "2023"},
	}
	return d
}

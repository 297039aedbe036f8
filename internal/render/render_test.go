package render

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"resume-builder/internal/model"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := NewRegistry(filepath.Join("..", "..", "templates"))
	if err != nil {
		t.Fatalf("failed to load templates: %v", err)
	}
	return r
}

func sampleData() model.ResumeData {
	d := model.EmptyResumeData()
	d.FullName = "Jane Doe"
	d.Email = "j@x.com"
	d.Phone = "555-0100"
	d.Experience = []model.Experience{
		{ID: "e1", JobTitle: "Engineer", Company: "Acme", StartDate: "2020", EndDate: "2022"},
		{ID: "e2", JobTitle: "Senior Engineer", Company: "Globex", StartDate: "2022", Current: true},
	}
	return d
}

func TestRender_SuppressesEmptySections(t *testing.T) {
	r := newTestRegistry(t)
	data := sampleData() // education empty, experience populated

	for _, id := range r.Known() {
		out, err := r.Render(data, id)
		if err != nil {
			t.Fatalf("%s: render failed: %v", id, err)
		}
		if bytes.Contains(out, []byte("Education")) {
			t.Fatalf("%s: empty education section rendered a heading", id)
		}
		if !bytes.Contains(out, []byte("Experience")) {
			t.Fatalf("%s: populated experience section missing", id)
		}
		if bytes.Contains(out, []byte("Summary")) || bytes.Contains(out, []byte("About Me")) {
			t.Fatalf("%s: empty summary rendered", id)
		}
	}
}

func TestRender_EntriesKeepStoreOrder(t *testing.T) {
	r := newTestRegistry(t)
	out, err := r.Render(sampleData(), "modern")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	s := string(out)
	first := strings.Index(s, "Engineer")
	second := strings.Index(s, "Senior Engineer")
	if first < 0 || second < 0 {
		t.Fatalf("entries missing from output")
	}
	if first > second {
		t.Fatalf("entries rendered out of store order")
	}
	if n := strings.Count(s, "Acme"); n != 1 {
		t.Fatalf("expected exactly one entry per item, Acme appeared %d times", n)
	}
}

func TestRender_CurrentExperienceShowsPresent(t *testing.T) {
	r := newTestRegistry(t)
	out, err := r.Render(sampleData(), "modern")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !bytes.Contains(out, []byte("2022 - Present")) {
		t.Fatalf("current position did not render Present period")
	}
	if !bytes.Contains(out, []byte("2020 - 2022")) {
		t.Fatalf("finished position period missing")
	}
}

func TestRender_SkillsGroupByCategory(t *testing.T) {
	r := newTestRegistry(t)
	data := sampleData()
	data.Skills = []model.Skill{
		{ID: "s1", Name: "Go", Category: model.SkillTechnical},
		{ID: "s2", Name: "Spanish", Category: model.SkillLanguage},
	}

	for _, id := range r.Known() {
		out, err := r.Render(data, id)
		if err != nil {
			t.Fatalf("%s: render failed: %v", id, err)
		}
		s := string(out)
		techIdx := strings.Index(s, "Technical")
		langIdx := strings.Index(s, "Languages")
		if techIdx < 0 || langIdx < 0 {
			t.Fatalf("%s: expected both Technical and Languages headings", id)
		}
		if strings.Contains(s, "Soft Skills") {
			t.Fatalf("%s: empty soft group rendered a heading", id)
		}
		// Go falls under Technical, Spanish under Languages, never intermixed
		goIdx := strings.Index(s, ">Go<")
		esIdx := strings.Index(s, "Spanish")
		if goIdx >= 0 && !(techIdx < goIdx) {
			t.Fatalf("%s: Go rendered before its group heading", id)
		}
		if esIdx < langIdx {
			t.Fatalf("%s: Spanish rendered outside the Languages group", id)
		}
	}
}

func TestRender_UnknownIDMatchesDefault(t *testing.T) {
	r := newTestRegistry(t)
	data := sampleData()

	def, err := r.Render(data, "modern")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	unknown, err := r.Render(data, "nonexistent-id")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !bytes.Equal(def, unknown) {
		t.Fatalf("unknown template id did not fall back to the default renderer")
	}
}

func TestResolve_AliasesAndFallback(t *testing.T) {
	r := newTestRegistry(t)
	if got := r.Resolve("classic"); got != "classic" {
		t.Fatalf("registered id rewritten to %q", got)
	}
	if got := r.Resolve("executive"); got != "professional" {
		t.Fatalf("alias not resolved, got %q", got)
	}
	if got := r.Resolve("nonexistent-id"); got != "modern" {
		t.Fatalf("unknown id did not fall back, got %q", got)
	}
}

func TestRender_DoesNotMutateInput(t *testing.T) {
	r := newTestRegistry(t)
	data := sampleData()
	data.Skills = []model.Skill{{ID: "s1", Name: "Go", Category: model.SkillTechnical}}
	before := data.Clone()

	for _, id := range r.Known() {
		if _, err := r.Render(data, id); err != nil {
			t.Fatalf("%s: render failed: %v", id, err)
		}
	}

	if data.FullName != before.FullName || len(data.Experience) != len(before.Experience) {
		t.Fatalf("render mutated input data")
	}
	for i := range data.Experience {
		if data.Experience[i] != before.Experience[i] {
			t.Fatalf("render mutated experience entry %d", i)
		}
	}
	if data.Skills[0] != before.Skills[0] {
		t.Fatalf("render mutated skills")
	}
}

func TestRender_PhotoDataURISurvivesEscaping(t *testing.T) {
	r := newTestRegistry(t)
	data := sampleData()
	data.Photo = "data:image/png;base64,iVBORw0KGgo="

	out, err := r.Render(data, "creative")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !bytes.Contains(out, []byte("data:image/png;base64,iVBORw0KGgo=")) {
		t.Fatalf("photo data URI was stripped from output")
	}
	if bytes.Contains(out, []byte("ZgotmplZ")) {
		t.Fatalf("photo URL was rejected by the sanitizer")
	}
}

func TestRender_InlinesStylesheet(t *testing.T) {
	r := newTestRegistry(t)
	out, err := r.Render(sampleData(), "minimal")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !bytes.Contains(out, []byte("<style>")) {
		t.Fatalf("stylesheet not inlined into the document")
	}
}

func TestPeriod_Derivation(t *testing.T) {
	cases := []struct {
		exp  model.Experience
		want string
	}{
		{model.Experience{StartDate: "2020", EndDate: "2022"}, "2020 - 2022"},
		{model.Experience{StartDate: "2020", EndDate: "2022", Current: true}, "2020 - Present"},
		{model.Experience{StartDate: "2020"}, "2020"},
		{model.Experience{EndDate: "2022"}, "2022"},
		{model.Experience{Current: true}, "Present"},
		{model.Experience{}, ""},
	}
	for _, tc := range cases {
		if got := period(tc.exp); got != tc.want {
			t.Fatalf("period(%+v) = %q, want %q", tc.exp, got, tc.want)
		}
	}
}

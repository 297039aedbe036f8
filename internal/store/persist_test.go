package store

import (
	"os"
	"path/filepath"
	"testing"

	"resume-builder/internal/model"
)

func TestFilePersister_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	p, err := NewFilePersister(dir, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data := model.EmptyResumeData()
	data.FullName = "Jane Doe"
	data.Skills = append(data.Skills, model.Skill{ID: "s1", Name: "Go", Category: model.SkillTechnical})
	snap := Snapshot{CurrentStep: 2, ResumeData: data, SelectedTemplate: "creative"}

	if err := p.Save(snap); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, ok, err := p.Load()
	if err != nil || !ok {
		t.Fatalf("load failed: ok=%v err=%v", ok, err)
	}
	if got.CurrentStep != 2 || got.SelectedTemplate != "creative" {
		t.Fatalf("scalar state lost: %+v", got)
	}
	if got.ResumeData.FullName != "Jane Doe" || len(got.ResumeData.Skills) != 1 || got.ResumeData.Skills[0].Name != "Go" {
		t.Fatalf("resume data lost: %+v", got.ResumeData)
	}
}

func TestFilePersister_MissingFileIsNotAnError(t *testing.T) {
	p, err := NewFilePersister(t.TempDir(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, ok, err := p.Load()
	if err != nil {
		t.Fatalf("missing file reported as error: %v", err)
	}
	if ok {
		t.Fatalf("missing file reported as present")
	}
}

func TestFilePersister_CorruptDocumentReportsError(t *testing.T) {
	dir := t.TempDir()
	p, err := NewFilePersister(dir, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, StateFileName), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	_, _, err = p.Load()
	if err == nil {
		t.Fatalf("expected error for corrupt document")
	}

	// the store tolerates it and starts fresh
	s := New(p)
	if got := s.State().ResumeData.FullName; got != "" {
		t.Fatalf("expected fresh state, got %q", got)
	}
}

func TestFilePersister_UnavailableStorageKeepsStoreInMemory(t *testing.T) {
	// dataDir nested under a regular file makes MkdirAll fail
	blocked := filepath.Join(t.TempDir(), "occupied")
	if err := os.WriteFile(blocked, []byte("x"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	fp, err := NewFilePersister(filepath.Join(blocked, "nested"), "")
	if err == nil {
		t.Fatalf("expected storage setup to fail")
	}

	// the failed construction still ends up behind the Persister
	// interface as a typed nil; the store must stay usable
	var p Persister = fp
	s := New(p)
	id := s.AddSkill()
	if id == "" {
		t.Fatalf("add on in-memory store returned no id")
	}
	if n := len(s.State().ResumeData.Skills); n != 1 {
		t.Fatalf("in-memory store lost the mutation, %d skills", n)
	}
}

func TestFilePersister_SchemaRejectsForeignDocument(t *testing.T) {
	dir := t.TempDir()
	schema := filepath.Join("..", "..", "templates", "state.schema.json")
	p, err := NewFilePersister(dir, schema)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, StateFileName), []byte(`{"something":"else"}`), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	if _, _, err := p.Load(); err == nil {
		t.Fatalf("expected schema validation error")
	}
}

func TestFilePersister_SchemaAcceptsOwnOutput(t *testing.T) {
	dir := t.TempDir()
	schema := filepath.Join("..", "..", "templates", "state.schema.json")
	p, err := NewFilePersister(dir, schema)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := New(p)
	s.UpdateResumeData(model.ResumeDataPatch{FullName: strptr("Jane Doe")})
	s.AddExperience()

	if _, ok, err := p.Load(); err != nil || !ok {
		t.Fatalf("own document failed to load: ok=%v err=%v", ok, err)
	}
}

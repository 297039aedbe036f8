package store

import (
	"log"
	"sync"

	"resume-builder/internal/model"

	"github.com/google/uuid"
)

// DefaultTemplate is the template every session starts on and the one
// unknown template ids fall back to at render time.
const DefaultTemplate = "modern"

// Snapshot is the full store state: what gets persisted and what read
// paths receive. ResumeData in a snapshot is always a deep copy, so a
// caller can never mutate the store through it.
type Snapshot struct {
	CurrentStep      int              `json:"currentStep"`
	ResumeData       model.ResumeData `json:"resumeData"`
	SelectedTemplate string           `json:"selectedTemplate"`
}

// Persister writes snapshots somewhere durable and loads the last one
// back. Implementations must tolerate being handed a stale snapshot;
// the store treats every Save as best-effort.
type Persister interface {
	Save(Snapshot) error
	Load() (Snapshot, bool, error)
}

// Store is the application-state object: current wizard step, the
// resume aggregate, and the selected template. It is owned by the
// composition root and passed to whoever needs it; every mutation
// funnels through its methods and ends with a best-effort durable
// write. A nil persister means in-memory only.
type Store struct {
	mu sync.Mutex

	currentStep      int
	resumeData       model.ResumeData
	selectedTemplate string

	persister Persister
}

// New builds a store rehydrated from p, or at defaults when p is nil,
// holds nothing, or fails to load. Load failures are tolerated: the
// session simply starts fresh.
func New(p Persister) *Store {
	s := &Store{
		resumeData:       model.EmptyResumeData(),
		selectedTemplate: DefaultTemplate,
		persister:        p,
	}
	if p == nil {
		return s
	}
	snap, ok, err := p.Load()
	if err != nil {
		log.Printf("warning: failed to load saved state, starting fresh: %v", err)
		return s
	}
	if !ok {
		return s
	}
	s.currentStep = snap.CurrentStep
	s.resumeData = snap.ResumeData.Clone()
	if snap.SelectedTemplate != "" {
		s.selectedTemplate = snap.SelectedTemplate
	}
	return s
}

// State returns a snapshot with a deep-copied aggregate.
func (s *Store) State() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		CurrentStep:      s.currentStep,
		ResumeData:       s.resumeData.Clone(),
		SelectedTemplate: s.selectedTemplate,
	}
}

// persistLocked writes the current state through the persister.
// Failures are logged and swallowed: state stays correct in memory
// even when the durable copy goes stale.
func (s *Store) persistLocked() {
	if s.persister == nil {
		return
	}
	if err := s.persister.Save(s.snapshotLocked()); err != nil {
		log.Printf("warning: failed to persist state: %v", err)
	}
}

func newID() string { return uuid.NewString() }

// UpdateResumeData shallow-merges the patch into the aggregate. Fields
// absent from the patch are untouched. No validation.
func (s *Store) UpdateResumeData(p model.ResumeDataPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resumeData = p.Apply(s.resumeData)
	s.persistLocked()
}

// ClearResumeData resets the aggregate to fully empty. Current step
// and selected template are left alone.
func (s *Store) ClearResumeData() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resumeData = model.EmptyResumeData()
	s.persistLocked()
}

// SetCurrentStep sets the step unconditionally. Bounds are the wizard
// controller's concern, not the store's.
func (s *Store) SetCurrentStep(step int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentStep = step
	s.persistLocked()
}

// SetSelectedTemplate sets the template id unconditionally; validity
// is enforced at render time by the registry fallback.
func (s *Store) SetSelectedTemplate(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedTemplate = id
	s.persistLocked()
}

// AddEducation appends an empty entry and returns its fresh id. The
// entry is also reachable as the section's last element.
func (s *Store) AddEducation() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := newID()
	s.resumeData.Education = append(s.resumeData.Education, model.Education{ID: id})
	s.persistLocked()
	return id
}

// UpdateEducation merges the patch into the entry matching id; an
// unknown id leaves the section unchanged.
func (s *Store) UpdateEducation(id string, p model.EducationPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.resumeData.Education {
		if e.ID == id {
			s.resumeData.Education[i] = p.Apply(e)
			s.persistLocked()
			return
		}
	}
}

// RemoveEducation filters out the entry matching id, preserving the
// relative order of the rest; an unknown id is a no-op.
func (s *Store) RemoveEducation(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.resumeData.Education[:0:0]
	for _, e := range s.resumeData.Education {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if kept == nil {
		kept = []model.Education{}
	}
	s.resumeData.Education = kept
	s.persistLocked()
}

func (s *Store) AddExperience() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := newID()
	s.resumeData.Experience = append(s.resumeData.Experience, model.Experience{ID: id})
	s.persistLocked()
	return id
}

// UpdateExperience merges the patch into the matching entry. When the
// patch flips current to true, endDate is forced to "Present" at that
// moment; flipping it back off leaves endDate as it stands until the
// user edits it.
func (s *Store) UpdateExperience(id string, p model.ExperiencePatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.resumeData.Experience {
		if e.ID == id {
			merged := p.Apply(e)
			if p.Current != nil && *p.Current {
				merged.EndDate = "Present"
			}
			s.resumeData.Experience[i] = merged
			s.persistLocked()
			return
		}
	}
}

func (s *Store) RemoveExperience(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.resumeData.Experience[:0:0]
	for _, e := range s.resumeData.Experience {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if kept == nil {
		kept = []model.Experience{}
	}
	s.resumeData.Experience = kept
	s.persistLocked()
}

// AddSkill appends a skill defaulting to the technical category, the
// same default the editing surface starts a new skill on.
func (s *Store) AddSkill() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := newID()
	s.resumeData.Skills = append(s.resumeData.Skills, model.Skill{ID: id, Category: model.SkillTechnical})
	s.persistLocked()
	return id
}

// UpdateSkill applies p to the skill with the given id. A category
// outside the three known ones is ignored; it would drop the skill
// from every render group.
func (s *Store) UpdateSkill(id string, p model.SkillPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.Category != nil && !model.KnownCategory(*p.Category) {
		p.Category = nil
	}
	for i, e := range s.resumeData.Skills {
		if e.ID == id {
			s.resumeData.Skills[i] = p.Apply(e)
			s.persistLocked()
			return
		}
	}
}

func (s *Store) RemoveSkill(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.resumeData.Skills[:0:0]
	for _, e := range s.resumeData.Skills {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if kept == nil {
		kept = []model.Skill{}
	}
	s.resumeData.Skills = kept
	s.persistLocked()
}

func (s *Store) AddProject() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := newID()
	s.resumeData.Projects = append(s.resumeData.Projects, model.Project{ID: id})
	s.persistLocked()
	return id
}

func (s *Store) UpdateProject(id string, p model.ProjectPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.resumeData.Projects {
		if e.ID == id {
			s.resumeData.Projects[i] = p.Apply(e)
			s.persistLocked()
			return
		}
	}
}

func (s *Store) RemoveProject(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.resumeData.Projects[:0:0]
	for _, e := range s.resumeData.Projects {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if kept == nil {
		kept = []model.Project{}
	}
	s.resumeData.Projects = kept
	s.persistLocked()
}

func (s *Store) AddCertification() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := newID()
	s.resumeData.Certifications = append(s.resumeData.Certifications, model.Certification{ID: id})
	s.persistLocked()
	return id
}

func (s *Store) UpdateCertification(id string, p model.CertificationPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.resumeData.Certifications {
		if e.ID == id {
			s.resumeData.Certifications[i] = p.Apply(e)
			s.persistLocked()
			return
		}
	}
}

func (s *Store) RemoveCertification(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.resumeData.Certifications[:0:0]
	for _, e := range s.resumeData.Certifications {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if kept == nil {
		kept = []model.Certification{}
	}
	s.resumeData.Certifications = kept
	s.persistLocked()
}

func (s *Store) AddPublication() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := newID()
	s.resumeData.Publications = append(s.resumeData.Publications, model.Publication{ID: id})
	s.persistLocked()
	return id
}

func (s *Store) UpdatePublication(id string, p model.PublicationPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.resumeData.Publications {
		if e.ID == id {
			s.resumeData.Publications[i] = p.Apply(e)
			s.persistLocked()
			return
		}
	}
}

func (s *Store) RemovePublication(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.resumeData.Publications[:0:0]
	for _, e := range s.resumeData.Publications {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if kept == nil {
		kept = []model.Publication{}
	}
	s.resumeData.Publications = kept
	s.persistLocked()
}

func (s *Store) AddAward() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := newID()
	s.resumeData.Awards = append(s.resumeData.Awards, model.Award{ID: id})
	s.persistLocked()
	return id
}

func (s *Store) UpdateAward(id string, p model.AwardPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.resumeData.Awards {
		if e.ID == id {
			s.resumeData.Awards[i] = p.Apply(e)
			s.persistLocked()
			return
		}
	}
}

func (s *Store) RemoveAward(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.resumeData.Awards[:0:0]
	for _, e := range s.resumeData.Awards {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if kept == nil {
		kept = []model.Award{}
	}
	s.resumeData.Awards = kept
	s.persistLocked()
}

func (s *Store) AddActivity() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := newID()
	s.resumeData.Activities = append(s.resumeData.Activities, model.Activity{ID: id})
	s.persistLocked()
	return id
}

func (s *Store) UpdateActivity(id string, p model.ActivityPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.resumeData.Activities {
		if e.ID == id {
			s.resumeData.Activities[i] = p.Apply(e)
			s.persistLocked()
			return
		}
	}
}

func (s *Store) RemoveActivity(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.resumeData.Activities[:0:0]
	for _, e := range s.resumeData.Activities {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if kept == nil {
		kept = []model.Activity{}
	}
	s.resumeData.Activities = kept
	s.persistLocked()
}

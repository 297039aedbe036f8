// Package wizard drives the multi-step resume form: a linear sequence
// of named steps over the store, with per-step validation gates before
// advancing and bounded direct navigation.
package wizard

import (
	"errors"
	"strings"
	"sync"

	"resume-builder/internal/model"
	"resume-builder/internal/store"
)

// ErrStepNotReached is returned by JumpTo for a step past the furthest
// one the user has legitimately reached.
var ErrStepNotReached = errors.New("step not yet reached")

// Step is one screen of the form. Validate, when set, gates Next: it
// must return nil before the wizard advances past this step. Which
// steps carry a gate is product policy, wired by name in Steps so a
// reordering cannot silently detach a gate from its step.
type Step struct {
	Name     string
	Title    string
	Required bool
	Validate func(model.ResumeData) error
}

// Steps returns the canonical step sequence.
func Steps() []Step {
	return []Step{
		{Name: "contact", Title: "Contact Info", Required: true, Validate: validateContact},
		{Name: "summary", Title: "Summary"},
		{Name: "education", Title: "Education", Required: true, Validate: validateEducation},
		{Name: "experience", Title: "Experience"},
		{Name: "skills", Title: "Skills", Required: true, Validate: validateSkills},
		{Name: "projects", Title: "Projects"},
		{Name: "certifications", Title: "Certifications"},
		{Name: "publications", Title: "Publications"},
		{Name: "awards", Title: "Awards"},
		{Name: "activities", Title: "Activities"},
	}
}

func validateContact(r model.ResumeData) error {
	if strings.TrimSpace(r.FullName) == "" ||
		strings.TrimSpace(r.Email) == "" ||
		strings.TrimSpace(r.Phone) == "" {
		return errors.New("Please fill in your name, email, and phone number.")
	}
	return nil
}

func validateEducation(r model.ResumeData) error {
	if len(r.Education) == 0 {
		return errors.New("Please add at least one education entry.")
	}
	return nil
}

func validateSkills(r model.ResumeData) error {
	if len(r.Skills) == 0 {
		return errors.New("Please add at least one skill.")
	}
	return nil
}

// Result reports where a successful transition landed. Completed is
// set when Next ran off the end of the last step: the wizard is done
// and the flow hands over to template selection.
type Result struct {
	CurrentStep int  `json:"currentStep"`
	Completed   bool `json:"completed,omitempty"`
}

// Controller owns step navigation over the store. It tracks the
// furthest step reached so JumpTo can refuse skipping ahead while
// leaving revisits free in both directions.
type Controller struct {
	mu      sync.Mutex
	store   *store.Store
	steps   []Step
	maxStep int
}

func NewController(s *store.Store, steps []Step) *Controller {
	c := &Controller{store: s, steps: steps}
	c.maxStep = c.clamp(s.State().CurrentStep)
	return c
}

func (c *Controller) clamp(i int) int {
	if i < 0 {
		return 0
	}
	if i > len(c.steps)-1 {
		return len(c.steps) - 1
	}
	return i
}

// Current returns the current step index and its configuration.
func (c *Controller) Current() (int, Step) {
	i := c.clamp(c.store.State().CurrentStep)
	return i, c.steps[i]
}

// StepCount returns the number of configured steps.
func (c *Controller) StepCount() int { return len(c.steps) }

// Config returns the configured step sequence.
func (c *Controller) Config() []Step { return c.steps }

// MaxStepReached returns the furthest index the user has advanced to.
func (c *Controller) MaxStepReached() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.maxStep
}

// Next advances one step. A gated step whose validator fails refuses
// the transition and returns the user-facing message; state is
// untouched. Advancing past the last step does not change the step,
// it reports Completed.
func (c *Controller) Next() (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := c.store.State()
	i := c.clamp(snap.CurrentStep)
	step := c.steps[i]
	if step.Validate != nil {
		if err := step.Validate(snap.ResumeData); err != nil {
			return Result{CurrentStep: i}, err
		}
	}
	if i+1 >= len(c.steps) {
		return Result{CurrentStep: i, Completed: true}, nil
	}
	c.store.SetCurrentStep(i + 1)
	if i+1 > c.maxStep {
		c.maxStep = i + 1
	}
	return Result{CurrentStep: i + 1}, nil
}

// Prev steps back one step; at step 0 it is a no-op.
func (c *Controller) Prev() Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.clamp(c.store.State().CurrentStep)
	if i > 0 {
		i--
		c.store.SetCurrentStep(i)
	}
	return Result{CurrentStep: i}
}

// JumpTo navigates directly to step j. Jumping is permitted only to
// steps already reachable through the visited prefix; anything past
// the furthest step reached is refused with ErrStepNotReached and
// state is unchanged.
func (c *Controller) JumpTo(j int) (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if j < 0 || j > c.maxStep {
		return Result{CurrentStep: c.clamp(c.store.State().CurrentStep)}, ErrStepNotReached
	}
	c.store.SetCurrentStep(j)
	return Result{CurrentStep: j}, nil
}

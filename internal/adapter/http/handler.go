package http

import (
	"encoding/json"
	"errors"

	"resume-builder/internal/export"
	"resume-builder/internal/model"
	"resume-builder/internal/render"
	"resume-builder/internal/store"
	"resume-builder/internal/wizard"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the store, the wizard, template selection, preview,
// and PDF export over HTTP.
type Handler struct {
	store    *store.Store
	wizard   *wizard.Controller
	registry *render.Registry
	exporter *export.Exporter

	sections map[string]sectionOps
}

// sectionOps adapts one section's typed store operations to the
// generic :section routes. update reports only decode failures;
// unknown ids stay silent no-ops, per the store contract.
type sectionOps struct {
	add    func() string
	update func(id string, body []byte) error
	remove func(id string)
}

func NewHandler(s *store.Store, w *wizard.Controller, r *render.Registry, e *export.Exporter) *Handler {
	h := &Handler{store: s, wizard: w, registry: r, exporter: e}
	h.sections = map[string]sectionOps{
		"education": {
			add: s.AddEducation,
			update: func(id string, body []byte) error {
				var p model.EducationPatch
				if err := json.Unmarshal(body, &p); err != nil {
					return err
				}
				s.UpdateEducation(id, p)
				return nil
			},
			remove: s.RemoveEducation,
		},
		"experience": {
			add: s.AddExperience,
			update: func(id string, body []byte) error {
				var p model.ExperiencePatch
				if err := json.Unmarshal(body, &p); err != nil {
					return err
				}
				s.UpdateExperience(id, p)
				return nil
			},
			remove: s.RemoveExperience,
		},
		"skills": {
			add: s.AddSkill,
			update: func(id string, body []byte) error {
				var p model.SkillPatch
				if err := json.Unmarshal(body, &p); err != nil {
					return err
				}
				s.UpdateSkill(id, p)
				return nil
			},
			remove: s.RemoveSkill,
		},
		"projects": {
			add: s.AddProject,
			update: func(id string, body []byte) error {
				var p model.ProjectPatch
				if err := json.Unmarshal(body, &p); err != nil {
					return err
				}
				s.UpdateProject(id, p)
				return nil
			},
			remove: s.RemoveProject,
		},
		"certifications": {
			add: s.AddCertification,
			update: func(id string, body []byte) error {
				var p model.CertificationPatch
				if err := json.Unmarshal(body, &p); err != nil {
					return err
				}
				s.UpdateCertification(id, p)
				return nil
			},
			remove: s.RemoveCertification,
		},
		"publications": {
			add: s.AddPublication,
			update: func(id string, body []byte) error {
				var p model.PublicationPatch
				if err := json.Unmarshal(body, &p); err != nil {
					return err
				}
				s.UpdatePublication(id, p)
				return nil
			},
			remove: s.RemovePublication,
		},
		"awards": {
			add: s.AddAward,
			update: func(id string, body []byte) error {
				var p model.AwardPatch
				if err := json.Unmarshal(body, &p); err != nil {
					return err
				}
				s.UpdateAward(id, p)
				return nil
			},
			remove: s.RemoveAward,
		},
		"activities": {
			add: s.AddActivity,
			update: func(id string, body []byte) error {
				var p model.ActivityPatch
				if err := json.Unmarshal(body, &p); err != nil {
					return err
				}
				s.UpdateActivity(id, p)
				return nil
			},
			remove: s.RemoveActivity,
		},
	}
	return h
}

// Register mounts every route on the app.
func (h *Handler) Register(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/health", h.Health)
	api.Get("/state", h.GetState)

	api.Put("/resume", h.UpdateResume)
	api.Post("/resume/clear", h.ClearResume)

	api.Post("/sections/:section", h.AddSectionEntry)
	api.Patch("/sections/:section/:id", h.UpdateSectionEntry)
	api.Delete("/sections/:section/:id", h.RemoveSectionEntry)

	api.Post("/wizard/next", h.WizardNext)
	api.Post("/wizard/prev", h.WizardPrev)
	api.Post("/wizard/jump", h.WizardJump)

	api.Put("/template", h.SetTemplate)
	api.Get("/templates", h.ListTemplates)

	api.Post("/export/pdf", h.ExportPDF)

	app.Get("/preview", h.Preview)
	app.Get("/print", h.Print)
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "healthy"})
}

type stepInfo struct {
	Index    int    `json:"index"`
	Name     string `json:"name"`
	Title    string `json:"title"`
	Required bool   `json:"required"`
}

func (h *Handler) GetState(c *fiber.Ctx) error {
	snap := h.store.State()
	idx, _ := h.wizard.Current()

	steps := make([]stepInfo, 0, h.wizard.StepCount())
	for i, s := range h.wizard.Config() {
		steps = append(steps, stepInfo{Index: i, Name: s.Name, Title: s.Title, Required: s.Required})
	}

	return c.JSON(fiber.Map{
		"currentStep":      idx,
		"maxStepReached":   h.wizard.MaxStepReached(),
		"resumeData":       snap.ResumeData,
		"selectedTemplate": snap.SelectedTemplate,
		"steps":            steps,
	})
}

func (h *Handler) UpdateResume(c *fiber.Ctx) error {
	var p model.ResumeDataPatch
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	// The summary cap is input-surface policy; the store itself takes
	// any string.
	if p.Summary != nil {
		if r := []rune(*p.Summary); len(r) > model.MaxSummaryLen {
			trimmed := string(r[:model.MaxSummaryLen])
			p.Summary = &trimmed
		}
	}
	h.store.UpdateResumeData(p)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) ClearResume(c *fiber.Ctx) error {
	h.store.ClearResumeData()
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) AddSectionEntry(c *fiber.Ctx) error {
	ops, ok := h.sections[c.Params("section")]
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown section"})
	}
	id := ops.add()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (h *Handler) UpdateSectionEntry(c *fiber.Ctx) error {
	ops, ok := h.sections[c.Params("section")]
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown section"})
	}
	if err := ops.update(c.Params("id"), c.Body()); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) RemoveSectionEntry(c *fiber.Ctx) error {
	ops, ok := h.sections[c.Params("section")]
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown section"})
	}
	ops.remove(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) WizardNext(c *fiber.Ctx) error {
	res, err := h.wizard.Next()
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(res)
}

func (h *Handler) WizardPrev(c *fiber.Ctx) error {
	return c.JSON(h.wizard.Prev())
}

type jumpReq struct {
	Step int `json:"step"`
}

func (h *Handler) WizardJump(c *fiber.Ctx) error {
	var req jumpReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	res, err := h.wizard.JumpTo(req.Step)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(res)
}

type templateReq struct {
	Template string `json:"template"`
}

func (h *Handler) SetTemplate(c *fiber.Ctx) error {
	var req templateReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	h.store.SetSelectedTemplate(req.Template)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) ListTemplates(c *fiber.Ctx) error {
	snap := h.store.State()
	return c.JSON(fiber.Map{
		"templates": h.registry.Known(),
		"selected":  snap.SelectedTemplate,
	})
}

// renderCurrent renders the current resume under the selected template
// (or the ?template= override, same fallback rule).
func (h *Handler) renderCurrent(c *fiber.Ctx) ([]byte, store.Snapshot, error) {
	snap := h.store.State()
	id := snap.SelectedTemplate
	if q := c.Query("template"); q != "" {
		id = q
	}
	doc, err := h.registry.Render(snap.ResumeData, id)
	return doc, snap, err
}

func (h *Handler) Preview(c *fiber.Ctx) error {
	doc, _, err := h.renderCurrent(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to render resume"})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(doc)
}

// Print serves the same document with the browser print hook attached.
func (h *Handler) Print(c *fiber.Ctx) error {
	doc, _, err := h.renderCurrent(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to render resume"})
	}
	hook := []byte("<script>window.addEventListener('load',function(){window.print()})</script>")
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(append(doc, hook...))
}

func (h *Handler) ExportPDF(c *fiber.Ctx) error {
	doc, snap, err := h.renderCurrent(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to render resume"})
	}

	pdf, filename, err := h.exporter.Export(c.Context(), string(doc), snap.ResumeData.FullName)
	if err != nil {
		if errors.Is(err, export.ErrExportInFlight) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "An export is already in progress. Please wait for it to finish."})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to generate PDF. Please try again."})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}

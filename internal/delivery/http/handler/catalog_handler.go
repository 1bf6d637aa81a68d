package handler

import (
	"strings"

	"career-navigator/internal/delivery/http/dto"
	"career-navigator/internal/demo"
	"career-navigator/internal/domain/career"
	"career-navigator/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// CatalogHandler serves the role explorer and course/job catalogs. All of it
// is reference data: array filtering over the compiled-in dataset, nothing
// computed.
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

func (h *CatalogHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/roles", h.ListRoles)
	r.Get("/skills", h.ListSkills)
	r.Get("/courses", h.ListCourses)
	r.Get("/jobs", h.ListJobs)
}

func (h *CatalogHandler) ListRoles(c fiber.Ctx) error {
	items := demo.Roles()
	res := dto.RoleListResponse{Items: items, Total: len(items)}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *CatalogHandler) ListSkills(c fiber.Ctx) error {
	items := demo.Skills()
	res := dto.SkillListResponse{Items: items, Total: len(items)}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *CatalogHandler) ListCourses(c fiber.Ctx) error {
	skill := strings.TrimSpace(c.Query("skill"))

	items := demo.Courses()
	if skill != "" {
		filtered := make([]career.Course, 0, len(items))
		for _, course := range items {
			if containsFold(course.SkillTags, skill) {
				filtered = append(filtered, course)
			}
		}
		items = filtered
	}

	res := dto.CourseListResponse{Items: items, Total: len(items)}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *CatalogHandler) ListJobs(c fiber.Ctx) error {
	skill := strings.TrimSpace(c.Query("skill"))

	items := demo.Jobs()
	if skill != "" {
		filtered := make([]career.JobPosting, 0, len(items))
		for _, job := range items {
			if containsFold(job.RequiredSkills, skill) {
				filtered = append(filtered, job)
			}
		}
		items = filtered
	}

	res := dto.JobListResponse{Items: items, Total: len(items)}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func containsFold(list []string, want string) bool {
	for _, s := range list {
		if strings.EqualFold(s, want) {
			return true
		}
	}
	return false
}

package dto

import (
	"career-navigator/internal/domain/career"
)

type RoleListResponse struct {
	Items []career.Role `json:"items"`
	Total int           `json:"total"`
}

type CourseListResponse struct {
	Items []career.Course `json:"items"`
	Total int             `json:"total"`
}

type JobListResponse struct {
	Items []career.JobPosting `json:"items"`
	Total int                 `json:"total"`
}

type SkillListResponse struct {
	Items []career.Skill `json:"items"`
	Total int            `json:"total"`
}

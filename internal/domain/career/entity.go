package career

// Reference entities rendered by the explorer and catalog pages. Outside of a
// signed-in user's saved rows these are compiled-in demo literals with no
// lifecycle.

type Profile struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	CurrentRole string `json:"current_role"`
	ResumeText  string `json:"resume_text"`
}

type Skill struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Role struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	AverageSalary  int      `json:"average_salary"`
	RequiredSkills []string `json:"required_skills"`
}

type Course struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Provider      string   `json:"provider"`
	URL           string   `json:"url"`
	DurationHours int      `json:"duration_hours"`
	SkillTags     []string `json:"skill_tags"`
}

type JobPosting struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Location       string   `json:"location"`
	URL            string   `json:"url"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"required_skills"`
	SalaryRange    string   `json:"salary_range"`
}

// SkillsOverlap reports whether any skill name appears in both lists. Job
// relevance on the dashboard is plain intersection, nothing smarter.
func SkillsOverlap(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	set := make(map[string]struct{}, len(a))
	for _, s := range a {
		set[s] = struct{}{}
	}
	for _, s := range b {
		if _, ok := set[s]; ok {
			return true
		}
	}
	return false
}

// Package demo holds the hand-authored reference dataset rendered whenever no
// authenticated roadmap exists. The literals live for the process lifetime and
// are never mutated; accessors hand out copies so callers cannot change them.
package demo

import (
	"career-navigator/internal/domain/career"
	"career-navigator/internal/domain/roadmap"
)

var profiles = []career.Profile{
	{
		ID:          "demo-1",
		Name:        "Alice Chen",
		Email:       "alice@example.com",
		CurrentRole: "Student (Computer Science)",
		ResumeText:  "BS in CS, Python, JavaScript, SQL, basic React. Interested in data engineering and machine learning.",
	},
	{
		ID:          "demo-2",
		Name:        "Bob Martinez",
		Email:       "bob@example.com",
		CurrentRole: "Full Stack Developer",
		ResumeText:  "Senior Dev with 5y experience. Expert in Node.js, React, PostgreSQL. Seeking to transition into Product Management.",
	},
}

var skills = []career.Skill{
	{ID: "skill-1", Name: "Python", Description: "General-purpose programming language"},
	{ID: "skill-2", Name: "JavaScript", Description: "Web development language"},
	{ID: "skill-3", Name: "React", Description: "Frontend UI library"},
	{ID: "skill-4", Name: "SQL", Description: "Database query language"},
	{ID: "skill-5", Name: "Data Engineering", Description: "Data pipeline design and implementation"},
	{ID: "skill-6", Name: "Machine Learning", Description: "ML algorithms and model training"},
	{ID: "skill-7", Name: "Product Management", Description: "Product strategy and roadmapping"},
	{ID: "skill-8", Name: "Node.js", Description: "Backend JavaScript runtime"},
	{ID: "skill-9", Name: "PostgreSQL", Description: "Relational database system"},
	{ID: "skill-10", Name: "AWS", Description: "Cloud infrastructure"},
}

var roles = []career.Role{
	{
		ID:             "role-1",
		Title:          "Data Engineer",
		Description:    "Design and build scalable data pipelines, ETL systems, and data warehouses. Master Python, SQL, and cloud platforms (AWS, GCP, Azure).",
		AverageSalary:  165000,
		RequiredSkills: []string{"Python", "SQL", "Data Engineering", "AWS"},
	},
	{
		ID:             "role-2",
		Title:          "Machine Learning Engineer",
		Description:    "Build and deploy machine learning models in production. Focus on MLOps, model optimization, and real-time inference systems.",
		AverageSalary:  185000,
		RequiredSkills: []string{"Python", "Machine Learning", "AWS"},
	},
	{
		ID:             "role-3",
		Title:          "Product Manager",
		Description:    "Drive product vision, roadmap, and strategy. Lead cross-functional teams and make data-driven decisions to maximize user impact.",
		AverageSalary:  170000,
		RequiredSkills: []string{"Product Management", "Communication", "Analytics"},
	},
	{
		ID:             "role-4",
		Title:          "Senior Full Stack Engineer",
		Description:    "Architect and lead backend and frontend systems. Mentor junior engineers and drive technical excellence across the stack.",
		AverageSalary:  175000,
		RequiredSkills: []string{"Node.js", "React", "PostgreSQL", "AWS"},
	},
}

var courses = []career.Course{
	{
		ID:            "course-1",
		Title:         "The Complete Python for Data Engineering",
		Provider:      "Udemy",
		URL:           "https://www.udemy.com/course/the-complete-python-for-data-engineering/",
		DurationHours: 40,
		SkillTags:     []string{"Python", "Data Engineering"},
	},
	{
		ID:            "course-2",
		Title:         "Machine Learning Specialization",
		Provider:      "Coursera",
		URL:           "https://www.coursera.org/specializations/machine-learning-introduction",
		DurationHours: 120,
		SkillTags:     []string{"Machine Learning", "Python"},
	},
	{
		ID:            "course-3",
		Title:         "Advanced SQL for Data Analysis",
		Provider:      "DataCamp",
		URL:           "https://www.datacamp.com/courses/advanced-sql-for-data-engineers",
		DurationHours: 30,
		SkillTags:     []string{"SQL"},
	},
	{
		ID:            "course-4",
		Title:         "AWS Data Engineering on AWS",
		Provider:      "Linux Academy",
		URL:           "https://www.linuxacademy.com/course/aws-data-engineering-on-aws/",
		DurationHours: 50,
		SkillTags:     []string{"AWS", "Data Engineering"},
	},
	{
		ID:            "course-5",
		Title:         "Reforge: Product Management",
		Provider:      "Reforge",
		URL:           "https://www.reforge.com/courses/product-management",
		DurationHours: 35,
		SkillTags:     []string{"Product Management"},
	},
}

var jobs = []career.JobPosting{
	{
		ID:             "job-1",
		Title:          "Senior Data Engineer",
		Company:        "Stripe",
		Location:       "San Francisco, CA (Remote)",
		URL:            "https://stripe.com/jobs/listing/senior-data-engineer",
		Description:    "Build and maintain data infrastructure for payment processing. Work with petabyte-scale datasets.",
		RequiredSkills: []string{"Python", "SQL", "Data Engineering", "AWS"},
		SalaryRange:    "$170k - $220k",
	},
	{
		ID:             "job-2",
		Title:          "Machine Learning Engineer",
		Company:        "OpenAI",
		Location:       "San Francisco, CA",
		URL:            "https://openai.com/careers/machine-learning-engineer",
		Description:    "Develop and deploy ML models for language AI. Work on cutting-edge deep learning systems.",
		RequiredSkills: []string{"Python", "Machine Learning", "AWS"},
		SalaryRange:    "$180k - $250k",
	},
	{
		ID:             "job-3",
		Title:          "Senior Product Manager",
		Company:        "Figma",
		Location:       "San Francisco, CA (Remote)",
		URL:            "https://fig.ma/jobs/product-manager-senior",
		Description:    "Lead product strategy for design collaboration tools. Shape the future of design software.",
		RequiredSkills: []string{"Product Management"},
		SalaryRange:    "$170k - $240k",
	},
	{
		ID:             "job-4",
		Title:          "Full Stack Engineer",
		Company:        "Vercel",
		Location:       "Remote",
		URL:            "https://vercel.com/careers/full-stack-engineer",
		Description:    "Build next-gen deployment and frontend infrastructure. Work on Next.js ecosystem.",
		RequiredSkills: []string{"React", "Node.js", "PostgreSQL"},
		SalaryRange:    "$150k - $220k",
	},
}

var roadmaps = []roadmap.Roadmap{
	{
		ID:            "roadmap-1",
		UserID:        "demo-1",
		TargetRole:    "Data Engineer",
		MissingSkills: []string{"Data Engineering", "AWS"},
		RecommendedCourses: []roadmap.CourseGroup{
			{Skill: "Data Engineering", Courses: []career.Course{courses[0], courses[3]}},
			{Skill: "AWS", Courses: []career.Course{courses[3]}},
		},
		TimelineWeeks: 16,
		Status:        roadmap.StatusInProgress,
		CreatedAt:     "2025-12-01T00:00:00Z",
		Milestones: []roadmap.Milestone{
			{Week: 4, Milestone: "Complete Python for Data Engineering"},
			{Week: 8, Milestone: "Build first data pipeline project"},
			{Week: 12, Milestone: "Complete AWS certification"},
			{Week: 16, Milestone: "Ready for entry-level Data Engineer role"},
		},
	},
	{
		ID:            "roadmap-2",
		UserID:        "demo-2",
		TargetRole:    "Product Manager",
		MissingSkills: []string{"Product Management"},
		RecommendedCourses: []roadmap.CourseGroup{
			{Skill: "Product Management", Courses: []career.Course{courses[4]}},
		},
		TimelineWeeks: 8,
		Status:        roadmap.StatusNotStarted,
		CreatedAt:     "2025-12-01T00:00:00Z",
		Milestones: []roadmap.Milestone{
			{Week: 4, Milestone: "Complete Product Management Masterclass"},
			{Week: 8, Milestone: "Deliver PM case studies; Ready for transition"},
		},
	},
}

func Profiles() []career.Profile { return append([]career.Profile(nil), profiles...) }

func Skills() []career.Skill { return append([]career.Skill(nil), skills...) }

func Roles() []career.Role { return append([]career.Role(nil), roles...) }

func Courses() []career.Course { return append([]career.Course(nil), courses...) }

func Jobs() []career.JobPosting { return append([]career.JobPosting(nil), jobs...) }

func Roadmaps() []roadmap.Roadmap { return append([]roadmap.Roadmap(nil), roadmaps...) }

// FirstRoadmap is the fallback shown absent any saved roadmap.
func FirstRoadmap() roadmap.Roadmap { return roadmaps[0] }

// RoleByTitle returns the demo role matching a roadmap's target role.
func RoleByTitle(title string) (career.Role, bool) {
	for _, r := range roles {
		if r.Title == title {
			return r, true
		}
	}
	return career.Role{}, false
}

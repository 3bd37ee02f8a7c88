package seed

import (
	"time"

	"github.com/jobportal-dev/job-board/backend/internal/domain"
)

// mustDay panics on a malformed date so a typo in the catalog fails at first
// use instead of silently seeding a zero date.
func mustDay(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

// DemoJobs returns the built-in demonstration catalog used to seed an empty
// store.
func DemoJobs() []domain.Job {
	return []domain.Job{
		{
			ID:          "1",
			Title:       "Senior Frontend Developer",
			Company:     "TechCorp",
			Location:    "San Francisco, CA",
			Type:        domain.JobTypeFullTime,
			Salary:      "$120,000 - $160,000",
			Description: "We are looking for an experienced Frontend Developer to join our growing team. You will be responsible for building the next generation of our web applications.",
			Requirements: []string{
				"5+ years of experience with React and TypeScript",
				"Strong understanding of modern frontend architectures",
				"Experience with state management libraries (Redux, Zustand)",
				"Excellent problem-solving skills",
				"Strong communication and teamwork abilities",
			},
			Responsibilities: []string{
				"Design and implement responsive user interfaces",
				"Collaborate with designers and backend developers",
				"Write clean, maintainable code",
				"Participate in code reviews",
				"Mentor junior developers",
			},
			PostedBy:       "2",
			PostedDate:     mustDay("2026-01-28"),
			Status:         domain.JobStatusOpen,
			ApplicantCount: 24,
		},
		{
			ID:          "2",
			Title:       "Product Manager",
			Company:     "InnovateLabs",
			Location:    "Remote",
			Type:        domain.JobTypeFullTime,
			Salary:      "$130,000 - $170,000",
			Description: "Join our product team to drive the vision and execution of our flagship products. You will work closely with engineering, design, and business teams.",
			Requirements: []string{
				"3+ years of product management experience",
				"Strong analytical and strategic thinking",
				"Experience with agile methodologies",
				"Excellent stakeholder management",
				"Technical background preferred",
			},
			Responsibilities: []string{
				"Define product roadmap and strategy",
				"Gather and prioritize requirements",
				"Work with cross-functional teams",
				"Analyze product metrics and user feedback",
				"Present to executive leadership",
			},
			PostedBy:       "2",
			PostedDate:     mustDay("2026-01-30"),
			Status:         domain.JobStatusOpen,
			ApplicantCount: 18,
		},
		{
			ID:          "3",
			Title:       "UX/UI Designer",
			Company:     "DesignHub",
			Location:    "New York, NY",
			Type:        domain.JobTypeFullTime,
			Salary:      "$90,000 - $130,000",
			Description: "We are seeking a talented UX/UI Designer to create beautiful and intuitive user experiences for our digital products.",
			Requirements: []string{
				"4+ years of UX/UI design experience",
				"Proficiency in Figma and design tools",
				"Strong portfolio demonstrating design skills",
				"Understanding of user-centered design principles",
				"Experience with design systems",
			},
			Responsibilities: []string{
				"Create wireframes, prototypes, and high-fidelity designs",
				"Conduct user research and usability testing",
				"Collaborate with product and engineering teams",
				"Maintain and evolve design system",
				"Present design concepts to stakeholders",
			},
			PostedBy:       "2",
			PostedDate:     mustDay("2026-02-01"),
			Status:         domain.JobStatusOpen,
			ApplicantCount: 31,
		},
		{
			ID:          "4",
			Title:       "Backend Engineer",
			Company:     "DataFlow Inc",
			Location:    "Austin, TX",
			Type:        domain.JobTypeFullTime,
			Salary:      "$110,000 - $150,000",
			Description: "Looking for a skilled Backend Engineer to build scalable APIs and services that power our platform.",
			Requirements: []string{
				"4+ years of backend development experience",
				"Strong knowledge of Node.js or Python",
				"Experience with PostgreSQL or MongoDB",
				"Understanding of microservices architecture",
				"Experience with cloud platforms (AWS, GCP)",
			},
			Responsibilities: []string{
				"Design and develop RESTful APIs",
				"Optimize database queries and performance",
				"Implement security best practices",
				"Write comprehensive tests",
				"Participate in system architecture decisions",
			},
			PostedBy:       "2",
			PostedDate:     mustDay("2026-02-02"),
			Status:         domain.JobStatusOpen,
			ApplicantCount: 15,
		},
		{
			ID:          "5",
			Title:       "Data Scientist",
			Company:     "AI Solutions",
			Location:    "Boston, MA",
			Type:        domain.JobTypeFullTime,
			Salary:      "$140,000 - $180,000",
			Description: "Join our data science team to build machine learning models and derive insights from large datasets.",
			Requirements: []string{
				"MS/PhD in Computer Science, Statistics, or related field",
				"Strong programming skills in Python",
				"Experience with ML frameworks (TensorFlow, PyTorch)",
				"Solid understanding of statistics and mathematics",
				"Experience with data visualization tools",
			},
			Responsibilities: []string{
				"Develop and deploy machine learning models",
				"Analyze complex datasets",
				"Collaborate with product teams",
				"Present findings to stakeholders",
				"Stay current with latest ML research",
			},
			PostedBy:       "2",
			PostedDate:     mustDay("2026-02-03"),
			Status:         domain.JobStatusOpen,
			ApplicantCount: 22,
		},
		{
			ID:          "6",
			Title:       "DevOps Engineer",
			Company:     "CloudTech",
			Location:    "Seattle, WA",
			Type:        domain.JobTypeFullTime,
			Salary:      "$120,000 - $160,000",
			Description: "We need a DevOps Engineer to improve our infrastructure, CI/CD pipelines, and deployment processes.",
			Requirements: []string{
				"3+ years of DevOps experience",
				"Strong knowledge of Docker and Kubernetes",
				"Experience with CI/CD tools (Jenkins, GitLab CI)",
				"Proficiency in scripting (Bash, Python)",
				"AWS or Azure certification preferred",
			},
			Responsibilities: []string{
				"Manage cloud infrastructure",
				"Implement and maintain CI/CD pipelines",
				"Monitor system performance and reliability",
				"Automate deployment processes",
				"Ensure security compliance",
			},
			PostedBy:       "2",
			PostedDate:     mustDay("2026-02-04"),
			Status:         domain.JobStatusOpen,
			ApplicantCount: 12,
		},
	}
}

// DemoUsers returns the fixed demo accounts. They are never persisted; the
// user directory merges them with the stored overlay at lookup time. All
// three share the configured demo password, hashed once by the caller.
func DemoUsers(passwordHash string) []domain.User {
	now := time.Now()
	return []domain.User{
		{
			ID:           "1",
			Email:        "admin@jobportal.com",
			Name:         "Admin User",
			Role:         domain.RoleAdmin,
			PasswordHash: passwordHash,
			CreatedAt:    now,
		},
		{
			ID:           "2",
			Email:        "recruiter@techcorp.com",
			Name:         "Jane Smith",
			Role:         domain.RoleRecruiter,
			Company:      "TechCorp",
			PasswordHash: passwordHash,
			CreatedAt:    now,
		},
		{
			ID:           "3",
			Email:        "john@email.com",
			Name:         "John Doe",
			Role:         domain.RoleCandidate,
			PasswordHash: passwordHash,
			CreatedAt:    now,
		},
	}
}

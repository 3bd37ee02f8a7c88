package handler

import (
	"net/http"

	"github.com/jobportal-dev/job-board/backend/internal/domain"
)

type analyticsReport struct {
	TotalUsers           int                              `json:"totalUsers"`
	TotalJobs            int                              `json:"totalJobs"`
	ActiveJobs           int                              `json:"activeJobs"`
	TotalApplications    int                              `json:"totalApplications"`
	ApplicationsPerJob   float64                          `json:"applicationsPerJob"`
	ApplicationsByStatus map[domain.ApplicationStatus]int `json:"applicationsByStatus"`
}

// Analytics aggregates the platform counters shown on the admin dashboard.
func (h *Handler) Analytics(w http.ResponseWriter, r *http.Request) {
	users, err := h.repository.ListUsers()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	jobs, err := h.repository.ListJobs()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	apps, err := h.repository.ListApplications()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	report := analyticsReport{
		TotalUsers:           len(users),
		TotalJobs:            len(jobs),
		TotalApplications:    len(apps),
		ApplicationsByStatus: map[domain.ApplicationStatus]int{},
	}
	for _, job := range jobs {
		if job.Status == domain.JobStatusOpen {
			report.ActiveJobs++
		}
	}
	for _, app := range apps {
		report.ApplicationsByStatus[app.Status]++
	}
	if len(jobs) > 0 {
		report.ApplicationsPerJob = float64(len(apps)) / float64(len(jobs))
	}

	h.successResponse(w, r, "analytics fetched", report)
}

package jobs

import (
	"strings"
	"time"
)

// Job is a single listing in the feed.
type Job struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Distance    string   `json:"distance"`
	Salary      string   `json:"salary"`
	PostedTime  string   `json:"postedTime"`
	Type        string   `json:"type"`
	Category    string   `json:"category"`
	Skills      []string `json:"skills"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	ApplyBy     string   `json:"applyBy"`
}

// Filter narrows the feed. Empty fields match everything.
type Filter struct {
	// Search matches against title, company, and skills, case-insensitive.
	Search string

	// Location, Type and Category must match the job's field exactly.
	Location string
	Type     string
	Category string
}

// Matches reports whether j passes the filter.
func (f Filter) Matches(j Job) bool {
	if f.Location != "" && j.Location != f.Location {
		return false
	}
	if f.Type != "" && j.Type != f.Type {
		return false
	}
	if f.Category != "" && j.Category != f.Category {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(j.Title), needle) &&
			!strings.Contains(strings.ToLower(j.Company), needle) &&
			!matchesSkill(j.Skills, needle) {
			return false
		}
	}
	return true
}

func matchesSkill(skills []string, needle string) bool {
	for _, s := range skills {
		if strings.Contains(strings.ToLower(s), needle) {
			return true
		}
	}
	return false
}

// ApplicationStatus tracks where an application is in the hiring pipeline.
type ApplicationStatus string

const (
	StatusPending   ApplicationStatus = "pending"
	StatusReviewing ApplicationStatus = "reviewing"
	StatusInterview ApplicationStatus = "interview"
	StatusAccepted  ApplicationStatus = "accepted"
	StatusRejected  ApplicationStatus = "rejected"
)

// Application records that the user applied to a job.
type Application struct {
	ID        string            `json:"id"`
	JobID     string            `json:"jobId"`
	JobTitle  string            `json:"jobTitle"`
	Company   string            `json:"company"`
	Status    ApplicationStatus `json:"status"`
	AppliedAt time.Time         `json:"appliedAt"`
}

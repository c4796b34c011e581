package feedback

import (
	"errors"
	"time"
)

// Feedback categories, fixed five-value set.
const (
	CategoryBug       = "Bug"
	CategoryFeature   = "Feature Request"
	CategoryUsability = "Usability Issue"
	CategoryGeneral   = "General Feedback"
	CategoryOther     = "Other"
)

var categories = map[string]bool{
	CategoryBug:       true,
	CategoryFeature:   true,
	CategoryUsability: true,
	CategoryGeneral:   true,
	CategoryOther:     true,
}

// Rating bounds and the minimum message length after trimming.
const (
	minRating        = 1
	maxRating        = 5
	minMessageLength = 5
)

// List pagination bounds.
const (
	defaultListLimit = 10
	maxListLimit     = 50
)

var ErrNotFound = errors.New("not found")

// IsCategory reports whether value is one of the known feedback categories.
func IsCategory(value string) bool {
	return categories[value]
}

// Submission is the user-supplied feedback payload.
type Submission struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Category       string `json:"category"`
	Rating         int    `json:"rating"`
	Message        string `json:"message"`
	ContactConsent bool   `json:"contactConsent"`
}

// Entry is one stored feedback record.
type Entry struct {
	ID             string    `json:"id"`
	Name           string    `json:"name,omitempty"`
	Email          string    `json:"email,omitempty"`
	Category       string    `json:"category"`
	Rating         int       `json:"rating"`
	Message        string    `json:"message"`
	ContactConsent bool      `json:"contactConsent"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Page is the paginated list response shape.
type Page struct {
	Total int     `json:"total"`
	Page  int     `json:"page"`
	Limit int     `json:"limit"`
	Data  []Entry `json:"data"`
}

package transport

import "github.com/google/uuid"

// LeadResponse represents a lead in API responses. Optional fields are
// rendered as null when absent.
type LeadResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Role        *string   `json:"role"`
	Company     *string   `json:"company"`
	Industry    *string   `json:"industry"`
	Location    *string   `json:"location"`
	LinkedInBio *string   `json:"linkedin_bio"`
	CreatedAt   string    `json:"created_at"`
}

// UploadLeadsResponse reports the outcome of a CSV upload.
type UploadLeadsResponse struct {
	Success       bool     `json:"success"`
	Message       string   `json:"message"`
	LeadsUploaded int      `json:"leads_uploaded"`
	Errors        []string `json:"errors,omitempty"`
}

// ListLeadsResponse wraps the lead listing.
type ListLeadsResponse struct {
	Success bool           `json:"success"`
	Leads   []LeadResponse `json:"leads"`
	Count   int            `json:"count"`
}

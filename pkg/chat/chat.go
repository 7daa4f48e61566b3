package chat

import "time"

// Contact is a conversation partner (employer, site manager, HR contact).
type Contact struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Company string `json:"company"`
	Role    string `json:"role"`
}

// Message is a single chat message.
type Message struct {
	ID        string    `json:"id"`
	ContactID string    `json:"contactId"`
	Text      string    `json:"text"`
	SentAt    time.Time `json:"sentAt"`

	// Inbound marks messages from the contact; outbound ones are the
	// user's own.
	Inbound bool `json:"inbound"`
}

// DefaultContacts returns the demo contact list.
func DefaultContacts() []Contact {
	return []Contact{
		{ID: "1", Name: "Rajesh Sharma", Company: "ABC Builders", Role: "Site Manager"},
		{ID: "2", Name: "Amit Kumar", Company: "City Plumbing Services", Role: "HR Manager"},
		{ID: "3", Name: "Priya Patel", Company: "Private Household", Role: "Employer"},
	}
}

package model

import "time"

// ContactStatusNew is the status every freshly submitted message starts with.
const ContactStatusNew = "new"

// ContactMessage is a contact-form submission stored in contact_messages.
type ContactMessage struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Service   string    `json:"service"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateContactRequest is the payload for POST /api/contact.
// Only presence is checked; notblank rejects whitespace-only values.
type CreateContactRequest struct {
	Name    string `json:"name" binding:"required,notblank"`
	Email   string `json:"email" binding:"required,notblank"`
	Service string `json:"service" binding:"required,notblank"`
	Message string `json:"message" binding:"required,notblank"`
}

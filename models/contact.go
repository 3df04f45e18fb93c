package models

// ContactMessage is a submission from the contact page.
type ContactMessage struct {
	Name             string `json:"name" binding:"required"`
	Email            string `json:"email" binding:"required"`
	Phone            string `json:"phone"`
	Subject          string `json:"subject"`
	PreferredContact string `json:"preferredContact"`
	Message          string `json:"message" binding:"required"`
}

// ContactDraft is a pre-filled outgoing email draft for the visitor's own
// mail client. Nothing is sent server-side and no delivery is confirmed.
type ContactDraft struct {
	MailtoURL string `json:"mailtoUrl"`
	To        string `json:"to"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}

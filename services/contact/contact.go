package contact

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"porchly/models"
)

// ContactService turns a contact page submission into an outgoing email
// draft. There is no server-side delivery and no confirmation.
type ContactService interface {
	BuildDraft(msg models.ContactMessage) (models.ContactDraft, error)
}

// DefaultContactService implements ContactService.
type DefaultContactService struct {
	// To is the destination mailbox for drafts.
	To string
}

// BuildDraft serializes the submission into a pre-filled mailto: URL the
// visitor's mail client opens.
func (s *DefaultContactService) BuildDraft(msg models.ContactMessage) (models.ContactDraft, error) {
	if strings.TrimSpace(msg.Name) == "" || strings.TrimSpace(msg.Email) == "" || strings.TrimSpace(msg.Message) == "" {
		return models.ContactDraft{}, errors.New("name, email and message are required")
	}

	subjectTopic := msg.Subject
	if subjectTopic == "" {
		subjectTopic = "general"
	}
	subject := fmt.Sprintf("New Contact Form Submission - %s", subjectTopic)

	body := fmt.Sprintf(
		"Name: %s\nEmail: %s\nPhone: %s\nSubject: %s\nPreferred Contact: %s\n\nMessage:\n%s\n",
		msg.Name, msg.Email, msg.Phone, subjectTopic, msg.PreferredContact, msg.Message,
	)

	mailto := fmt.Sprintf("mailto:%s?subject=%s&body=%s",
		s.To, escapeMailtoParam(subject), escapeMailtoParam(body))

	return models.ContactDraft{
		MailtoURL: mailto,
		To:        s.To,
		Subject:   subject,
		Body:      body,
	}, nil
}

// escapeMailtoParam percent-encodes a mailto query value. QueryEscape's "+"
// for spaces confuses some mail clients, so spaces become %20.
func escapeMailtoParam(v string) string {
	return strings.ReplaceAll(url.QueryEscape(v), "+", "%20")
}

package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// UsedEmail records a normalized email that has already claimed the signup
// bonus. Rows survive account deletion so re-registering with an alias of
// the same mailbox never re-earns the bonus.
type UsedEmail struct {
	ID              uuid.UUID
	NormalizedEmail string
	OriginalEmail   string
	CreatedAt       time.Time
}

// NormalizeEmail collapses the alias tricks mail providers allow: it
// lowercases, strips a "+suffix" from the local part, and for Gmail domains
// also strips dots, since Gmail ignores them.
func NormalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))

	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}

	local, domain := email[:at], email[at+1:]
	if plus := strings.Index(local, "+"); plus >= 0 {
		local = local[:plus]
	}
	if domain == "gmail.com" || domain == "googlemail.com" {
		local = strings.ReplaceAll(local, ".", "")
	}

	return local + "@" + domain
}

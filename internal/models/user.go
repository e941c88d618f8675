package models

import "time"

// StoredUser is a fully registered user in the "users" collection.
// CardHash is the SHA-256 hex digest of the user's physical card.
type StoredUser struct {
	ID       string `bson:"_id,omitempty" json:"id"`
	CardHash string `bson:"card_hash" json:"card_hash"`
	Username string `bson:"username" json:"username"`
}

// PendingRegistration is a registration that has been started but not
// completed yet. It lives in Redis until the companion bot finishes
// the flow or the TTL expires.
type PendingRegistration struct {
	ID        string    `json:"id"`
	CardHash  string    `json:"card_hash"`
	StartedAt time.Time `json:"started_at"`
}

// RegistrationResponse is returned when a registration is started.
// Token is the short pairing code the user types into the bot.
type RegistrationResponse struct {
	Token  string `json:"token"`
	BotURL string `json:"bot_url"`
}

const cardHashLength = 64

// ValidCardHash reports whether s looks like a SHA-256 hex digest.
func ValidCardHash(s string) bool {
	if len(s) != cardHashLength {
		return false
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// RegistrationToken derives the short pairing token from a card hash.
// Callers must validate the hash first.
func RegistrationToken(cardHash string) string {
	return cardHash[:8]
}

package models

import (
	"crypto/rand"
	"time"
)

// Jornada is a named, time-bounded round grouping a subset of a group's
// matches. It has no scoring semantics of its own; rankings just pre-filter
// matches to one jornada.
type Jornada struct {
	ID       string    `json:"id" bson:"id"`
	Name     string    `json:"name" bson:"name"`
	StartsAt time.Time `json:"starts_at" bson:"starts_at"`
	EndsAt   time.Time `json:"ends_at" bson:"ends_at"`
}

// Group is a circle of players predicting the same matches
type Group struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Code      string    `json:"code" bson:"code"` // invite code for joining
	OwnerID   string    `json:"owner_id" bson:"owner_id"`
	Members   []string  `json:"members" bson:"members"`
	Jornadas  []Jornada `json:"jornadas,omitempty" bson:"jornadas,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// HasMember returns true if the user belongs to the group
func (g *Group) HasMember(userID string) bool {
	for _, id := range g.Members {
		if id == userID {
			return true
		}
	}
	return false
}

// FindJornada returns the jornada with the given ID, or nil
func (g *Group) FindJornada(jornadaID string) *Jornada {
	for i := range g.Jornadas {
		if g.Jornadas[i].ID == jornadaID {
			return &g.Jornadas[i]
		}
	}
	return nil
}

const inviteCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateInviteCode produces a 6-character join code. Ambiguous characters
// (0/O, 1/I) are excluded from the alphabet.
func GenerateInviteCode() (string, error) {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = inviteCodeAlphabet[int(b)%len(inviteCodeAlphabet)]
	}
	return string(buf), nil
}

package domain

import (
	"fmt"
	"strings"
)

type UserID int

type MembershipTier string

const (
	MembershipBasic   MembershipTier = "Basic"
	MembershipPremium MembershipTier = "Premium"
	MembershipVIP     MembershipTier = "VIP"
)

type User struct {
	ID             UserID
	Name           string
	Email          string
	MembershipTier MembershipTier
}

// UserInput is the write model for registration and profile updates. Password is
// never read back from the user service.
type UserInput struct {
	ID             UserID
	Name           string
	Email          string
	Password       string
	MembershipTier MembershipTier
}

type Credentials struct {
	Email    string
	Password string
}

// ParseMembershipTier accepts the known tiers case-insensitively. Unknown values are
// passed through unchanged because the user service owns the enumeration.
func ParseMembershipTier(raw string) MembershipTier {
	trimmed := strings.TrimSpace(raw)
	for _, tier := range []MembershipTier{MembershipBasic, MembershipPremium, MembershipVIP} {
		if strings.EqualFold(trimmed, string(tier)) {
			return tier
		}
	}

	return MembershipTier(trimmed)
}

func (u User) Summary() string {
	return fmt.Sprintf("ID: %d, Name: %s, Email: %s, Membership Tier: %s", u.ID, u.Name, u.Email, u.MembershipTier)
}

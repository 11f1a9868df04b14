package model

import "time"

// Role separates clients ordering designs from the studio administrators.
type Role string

const (
	RoleClient Role = "CLIENT"
	RoleAdmin  Role = "ADMIN"
)

// PlanType is the subscription tier attached to an identity.
type PlanType string

const (
	PlanBasic    PlanType = "BASIC"
	PlanStandard PlanType = "STANDARD"
	PlanPremium  PlanType = "PREMIUM"
	PlanNone     PlanType = "NONE"
)

// Well-known identities handed out by the session store.
const (
	GenericIdentityID = "user-123"
	AdminIdentityID   = "admin-123"
)

// Identity is the authenticated user behind a session.
type Identity struct {
	ID        string
	Name      string
	Email     string
	Plan      PlanType
	Role      Role
	CreatedAt time.Time
}

// IsAdmin reports whether identity belongs to the studio staff.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// GenericIdentity returns the demo client every non-admin sign-in resolves to.
func GenericIdentity(now time.Time) Identity {
	return Identity{
		ID:        GenericIdentityID,
		Name:      "Demo User",
		Email:     "demo@tareffa.com",
		Plan:      PlanStandard,
		Role:      RoleClient,
		CreatedAt: now,
	}
}

// AdminIdentity returns the single studio administrator.
func AdminIdentity(now time.Time) Identity {
	return Identity{
		ID:        AdminIdentityID,
		Name:      "Admin User",
		Email:     "admin@tareffa.com",
		Plan:      PlanNone,
		Role:      RoleAdmin,
		CreatedAt: now,
	}
}

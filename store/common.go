package store

// RowStatus is the status for a row.
type RowStatus string

const (
	// Normal is the status for a normal row.
	Normal RowStatus = "NORMAL"
	// Archived is the status for an archived row.
	Archived RowStatus = "ARCHIVED"
)

func (s RowStatus) String() string {
	return string(s)
}

// Plan is a subscription plan.
type Plan string

const (
	PlanFree    Plan = "free"
	PlanPremium Plan = "premium"
)

// Role is a household member role.
type Role string

const (
	RoleParent    Role = "parent"
	RoleChild     Role = "child"
	RoleCaregiver Role = "caregiver"
)

package model

// Plan describes a subscription tier offered to clients.
type Plan struct {
	Name        PlanType
	Description string
	Price       string
	Features    []string
	Limitations []string
	Recommended bool
}

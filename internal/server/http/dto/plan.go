package dto

// PlanResponse describes a subscription tier.
type PlanResponse struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Features    []string `json:"features"`
	Limitations []string `json:"limitations"`
	Recommended bool     `json:"recommended"`
}

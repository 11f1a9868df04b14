package usecase

import "github.com/polkiloo/tareffa/internal/domain/model"

// PlanCatalog returns every subscription plan, cheapest first.
func PlanCatalog() []model.Plan {
	return []model.Plan{
		{
			Name:        model.PlanBasic,
			Description: "For individuals and small projects",
			Price:       "$49",
			Features: []string{
				"Up to 5 design requests per month",
				"48-hour turnaround time",
				"1 design at a time",
				"Web & social media designs",
			},
			Limitations: []string{"No logo or branding projects", "No unlimited revisions"},
		},
		{
			Name:        model.PlanStandard,
			Description: "Most popular for growing businesses",
			Price:       "$99",
			Features: []string{
				"Up to 15 design requests per month",
				"24-hour turnaround time",
				"2 designs at a time",
				"All design categories",
				"2 revision rounds included",
			},
			Limitations: []string{},
			Recommended: true,
		},
		{
			Name:        model.PlanPremium,
			Description: "For agencies and large businesses",
			Price:       "$199",
			Features: []string{
				"Unlimited design requests",
				"Priority 12-hour turnaround",
				"3 designs at a time",
				"All design categories",
				"Unlimited revision rounds",
				"Dedicated account manager",
			},
			Limitations: []string{},
		},
	}
}

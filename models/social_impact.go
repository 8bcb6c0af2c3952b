package models

// ImpactType classifies a vendor's or event's social contribution
type ImpactType string

const (
	ImpactCharity      ImpactType = "charity"
	ImpactTrees        ImpactType = "trees"
	ImpactCarbonOffset ImpactType = "carbon-offset"
	ImpactEducation    ImpactType = "education"
	ImpactHealthcare   ImpactType = "healthcare"
)

// IsValid reports whether t is one of the known impact types
func (t ImpactType) IsValid() bool {
	switch t {
	case ImpactCharity, ImpactTrees, ImpactCarbonOffset, ImpactEducation, ImpactHealthcare:
		return true
	}
	return false
}

// ImpactMetrics holds human-readable impact figures
type ImpactMetrics struct {
	TotalImpact     string `json:"total_impact"`
	ImpactPerTicket string `json:"impact_per_ticket"`
}

// SocialImpact describes the charitable/environmental contribution
// attached to a vendor or event. Purely informational.
type SocialImpact struct {
	Type          ImpactType    `json:"type"`
	Description   string        `json:"description"`
	AmountDonated float64       `json:"amount_donated,omitempty"`
	TreesPlanted  int           `json:"trees_planted,omitempty"`
	CarbonOffset  float64       `json:"carbon_offset,omitempty"`
	Beneficiary   string        `json:"beneficiary"`
	ImpactMetrics ImpactMetrics `json:"impact_metrics"`
}

// ImpactSummary is the cross-vendor aggregation returned by the
// event aggregator.
type ImpactSummary struct {
	TotalTreesPlanted     int          `json:"total_trees_planted"`
	TotalMoneyDonated     float64      `json:"total_money_donated"`
	CarbonOffsetPrograms  int          `json:"carbon_offset_programs"`
	TotalRewardsAvailable int          `json:"total_rewards_available"`
	ActivePlugins         int          `json:"active_plugins"`
	ImpactTypes           []ImpactType `json:"impact_types"`
}

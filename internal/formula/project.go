package formula

func projectDefinitions() []*Definition {
	return []*Definition{
		{
			ID:          "incremental_ep",
			Name:        "Incremental Economic Profit (EP)",
			Category:    CategoryProject,
			Description: "Incremental EP = Incremental Operating Profit – (Incremental Invested Capital × COIC %)",
			Variables: []Variable{
				money("incrementalEp", "Incremental Economic Profit ($)", "e.g., 5000"),
				money("incrementalOpProfit", "Incremental Operating Profit ($)", "e.g., 10000"),
				money("incrementalIc", "Incremental Invested Capital ($)", "e.g., 50000"),
				percent("coic", "COIC (%)", "e.g., 10"),
			},
			Rules: capitalChargeRules("incrementalEp", "incrementalOpProfit", "incrementalIc", "Incremental Invested Capital"),
		},
		{
			ID:          "financing_cost_delayed_payment",
			Name:        "Financing Cost of Delayed Payment",
			Category:    CategoryProject,
			Description: "Cost = Amount Receivable × COIC % × (Delay Period in months / 12)",
			Variables: []Variable{
				money("financingCostDelayed", "Financing Cost of Delay ($)", "e.g., 83.33"),
				money("amountReceivable", "Amount of Receivable ($)", "e.g., 10000"),
				percent("coic", "COIC (%)", "e.g., 10"),
				{ID: "delayPeriodMonths", Label: "Delay Period (months)", Kind: KindMonths, Placeholder: "e.g., 1"},
			},
			Rules: Rules{
				"financingCostDelayed": func(v Values) (float64, error) {
					return v["amountReceivable"] * v["coic"] * yearFraction(v), nil
				},
				"amountReceivable": func(v Values) (float64, error) {
					denom := v["coic"] * yearFraction(v)
					if isZero(denom) {
						return 0, degenerate("COIC or Delay Period cannot be zero if solving for Amount Receivable.",
							"coic", "delayPeriodMonths")
					}
					return v["financingCostDelayed"] / denom, nil
				},
				"coic": func(v Values) (float64, error) {
					denom := v["amountReceivable"] * yearFraction(v)
					if isZero(denom) {
						return 0, degenerate("Amount Receivable or Delay Period cannot be zero if solving for COIC.",
							"amountReceivable", "delayPeriodMonths")
					}
					return v["financingCostDelayed"] / denom, nil
				},
				"delayPeriodMonths": func(v Values) (float64, error) {
					perMonth := v["amountReceivable"] * v["coic"] / monthsPerYear
					if isZero(perMonth) {
						return 0, degenerate("Amount Receivable or COIC cannot be zero if solving for Delay Period.",
							"amountReceivable", "coic")
					}
					return v["financingCostDelayed"] / perMonth, nil
				},
			},
		},
	}
}

const monthsPerYear = 12

func yearFraction(v Values) float64 {
	return v["delayPeriodMonths"] / monthsPerYear
}

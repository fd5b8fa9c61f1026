package formula

// Category names, in catalog order.
const (
	CategoryBasic       = "Basic Profitability & Cost Structure"
	CategoryRatios      = "Profitability Ratios & Advanced Financial Metrics"
	CategorySensitivity = "Sensitivity & Decision Analysis"
	CategoryAllocation  = "Cost Allocation & Asset Valuation"
	CategoryPricing     = "Internal Pricing (Conceptual - Decision Helper)"
	CategoryProject     = "Specific Project/Decision Evaluation"
)

func money(id, label, placeholder string) Variable {
	return Variable{ID: id, Label: label, Kind: KindMoney, Placeholder: placeholder}
}

func percent(id, label, placeholder string) Variable {
	return Variable{ID: id, Label: label, Kind: KindPercent, Placeholder: placeholder}
}

func count(id, label, placeholder string) Variable {
	return Variable{ID: id, Label: label, Kind: KindCount, Placeholder: placeholder}
}

func factor(id, label, placeholder string) Variable {
	return Variable{ID: id, Label: label, Kind: KindFactor, Placeholder: placeholder}
}

func basicDefinitions() []*Definition {
	return []*Definition{
		{
			ID:          "revenue",
			Name:        "Revenue",
			Category:    CategoryBasic,
			Description: "Revenue = Sales Price per unit × Sales Volume (units)",
			Variables: []Variable{
				money("revenue", "Revenue ($)", "e.g., 10000"),
				money("salesPricePerUnit", "Sales Price per Unit ($)", "e.g., 50"),
				count("salesVolume", "Sales Volume (units)", "e.g., 200"),
			},
			Rules: Rules{
				"revenue": func(v Values) (float64, error) {
					return v["salesPricePerUnit"] * v["salesVolume"], nil
				},
				"salesPricePerUnit": func(v Values) (float64, error) {
					if err := nonZero(v["salesVolume"], "Sales Volume", "salesVolume"); err != nil {
						return 0, err
					}
					return v["revenue"] / v["salesVolume"], nil
				},
				"salesVolume": func(v Values) (float64, error) {
					if err := nonZero(v["salesPricePerUnit"], "Sales Price per Unit", "salesPricePerUnit"); err != nil {
						return 0, err
					}
					return v["revenue"] / v["salesPricePerUnit"], nil
				},
			},
		},
		{
			ID:          "contribution_from_revenue",
			Name:        "Contribution (from Revenue)",
			Category:    CategoryBasic,
			Description: "Contribution = Revenue – Variable Costs",
			Variables: []Variable{
				money("contribution", "Contribution ($)", "e.g., 6000"),
				money("revenue", "Revenue ($)", "e.g., 10000"),
				money("variableCosts", "Variable Costs ($)", "e.g., 4000"),
			},
			Rules: Rules{
				"contribution": func(v Values) (float64, error) {
					return v["revenue"] - v["variableCosts"], nil
				},
				"revenue": func(v Values) (float64, error) {
					return v["contribution"] + v["variableCosts"], nil
				},
				"variableCosts": func(v Values) (float64, error) {
					return v["revenue"] - v["contribution"], nil
				},
			},
		},
		{
			ID:          "contribution_from_profit",
			Name:        "Contribution (from Profit)",
			Category:    CategoryBasic,
			Description: "Contribution = Operating Profit + Fixed Costs",
			Variables: []Variable{
				money("contribution", "Contribution ($)", "e.g., 6000"),
				money("operatingProfit", "Operating Profit ($)", "e.g., 4000"),
				money("fixedCosts", "Fixed Costs ($)", "e.g., 2000"),
			},
			Rules: Rules{
				"contribution": func(v Values) (float64, error) {
					return v["operatingProfit"] + v["fixedCosts"], nil
				},
				"operatingProfit": func(v Values) (float64, error) {
					return v["contribution"] - v["fixedCosts"], nil
				},
				"fixedCosts": func(v Values) (float64, error) {
					return v["contribution"] - v["operatingProfit"], nil
				},
			},
		},
		{
			ID:          "operating_profit_from_revenue",
			Name:        "Operating Profit (from Revenue)",
			Category:    CategoryBasic,
			Description: "Operating Profit = Revenue – Operating Costs (OpCosts = VarCosts + FixedCosts)",
			Variables: []Variable{
				money("operatingProfit", "Operating Profit ($)", "e.g., 4000"),
				money("revenue", "Revenue ($)", "e.g., 10000"),
				money("variableCosts", "Variable Costs ($)", "e.g., 4000"),
				money("fixedCosts", "Fixed Costs ($)", "e.g., 2000"),
			},
			Rules: Rules{
				"operatingProfit": func(v Values) (float64, error) {
					opCosts, err := operatingCosts(v)
					if err != nil {
						return 0, err
					}
					return v["revenue"] - opCosts, nil
				},
				"revenue": func(v Values) (float64, error) {
					opCosts, err := operatingCosts(v)
					if err != nil {
						return 0, err
					}
					return v["operatingProfit"] + opCosts, nil
				},
				"variableCosts": func(v Values) (float64, error) {
					return v["revenue"] - v["operatingProfit"] - v["fixedCosts"], nil
				},
				"fixedCosts": func(v Values) (float64, error) {
					return v["revenue"] - v["operatingProfit"] - v["variableCosts"], nil
				},
			},
		},
		{
			ID:          "operating_profit_from_contribution",
			Name:        "Operating Profit (from Contribution)",
			Category:    CategoryBasic,
			Description: "Operating Profit = Contribution – Fixed Costs",
			Variables: []Variable{
				money("operatingProfit", "Operating Profit ($)", "e.g., 4000"),
				money("contribution", "Contribution ($)", "e.g., 6000"),
				money("fixedCosts", "Fixed Costs ($)", "e.g., 2000"),
			},
			Rules: Rules{
				"operatingProfit": func(v Values) (float64, error) {
					return v["contribution"] - v["fixedCosts"], nil
				},
				"contribution": func(v Values) (float64, error) {
					return v["operatingProfit"] + v["fixedCosts"], nil
				},
				"fixedCosts": func(v Values) (float64, error) {
					return v["contribution"] - v["operatingProfit"], nil
				},
			},
		},
	}
}

// operatingCosts derives VarCosts + FixedCosts. It is undefined unless both
// terms are present.
func operatingCosts(v Values) (float64, error) {
	vc, okV := v.Get("variableCosts")
	fc, okF := v.Get("fixedCosts")
	if !okV || !okF {
		return 0, errTermUndefined("operating costs")
	}
	return vc + fc, nil
}

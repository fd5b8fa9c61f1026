package formula

func sensitivityDefinitions() []*Definition {
	return []*Definition{
		{
			ID:          "operating_leverage",
			Name:        "Operating Leverage (Factor)",
			Category:    CategorySensitivity,
			Description: "Operating Leverage (Factor) = Contribution / Operating Profit",
			Variables: []Variable{
				factor("operatingLeverage", "Operating Leverage (Factor)", "e.g., 1.5"),
				money("contribution", "Contribution ($)", "e.g., 6000"),
				money("operatingProfit", "Operating Profit ($)", "e.g., 4000"),
			},
			Rules: Rules{
				"operatingLeverage": func(v Values) (float64, error) {
					if err := nonZero(v["operatingProfit"], "Operating Profit", "operatingProfit"); err != nil {
						return 0, err
					}
					return v["contribution"] / v["operatingProfit"], nil
				},
				"contribution": func(v Values) (float64, error) {
					return v["operatingLeverage"] * v["operatingProfit"], nil
				},
				"operatingProfit": func(v Values) (float64, error) {
					if err := nonZero(v["operatingLeverage"], "Operating Leverage", "operatingLeverage"); err != nil {
						return 0, err
					}
					return v["contribution"] / v["operatingLeverage"], nil
				},
			},
		},
		{
			ID:          "change_op_profit",
			Name:        "% Change in Operating Profit",
			Category:    CategorySensitivity,
			Description: "% Change in Operating Profit = % Change in Sales Volume × Operating Leverage",
			Variables: []Variable{
				percent("changeOpProfit", "% Change in Operating Profit (%)", "e.g., 15"),
				percent("changeSalesVolume", "% Change in Sales Volume (%)", "e.g., 10"),
				factor("operatingLeverage", "Operating Leverage (Factor)", "e.g., 1.5"),
			},
			Rules: Rules{
				"changeOpProfit": func(v Values) (float64, error) {
					return v["changeSalesVolume"] * v["operatingLeverage"], nil
				},
				"changeSalesVolume": func(v Values) (float64, error) {
					if err := nonZero(v["operatingLeverage"], "Operating Leverage", "operatingLeverage"); err != nil {
						return 0, err
					}
					return v["changeOpProfit"] / v["operatingLeverage"], nil
				},
				"operatingLeverage": func(v Values) (float64, error) {
					if err := nonZero(v["changeSalesVolume"], "% Change in Sales Volume", "changeSalesVolume"); err != nil {
						return 0, err
					}
					return v["changeOpProfit"] / v["changeSalesVolume"], nil
				},
			},
		},
		{
			ID:          "break_even_units",
			Name:        "Break-Even Units",
			Category:    CategorySensitivity,
			Description: "Break-Even Units = Fixed Costs / (Sales Price per Unit – Variable Cost per Unit)",
			Variables: []Variable{
				count("breakEvenUnits", "Break-Even Units", "e.g., 100"),
				money("fixedCosts", "Fixed Costs ($)", "e.g., 2000"),
				money("salesPricePerUnit", "Sales Price per Unit ($)", "e.g., 50"),
				money("varCostPerUnit", "Variable Cost per Unit ($)", "e.g., 30"),
			},
			Rules: Rules{
				"breakEvenUnits": func(v Values) (float64, error) {
					cpu, err := contributionPerUnit(v)
					if err != nil {
						return 0, err
					}
					if isZero(cpu) {
						return 0, degenerate("Contribution per unit cannot be zero (Sales Price per Unit equals Variable Cost per Unit).",
							"salesPricePerUnit", "varCostPerUnit")
					}
					return v["fixedCosts"] / cpu, nil
				},
				"fixedCosts": func(v Values) (float64, error) {
					cpu, err := contributionPerUnit(v)
					if err != nil {
						return 0, err
					}
					return v["breakEvenUnits"] * cpu, nil
				},
				"salesPricePerUnit": func(v Values) (float64, error) {
					if isZero(v["breakEvenUnits"]) {
						return 0, degenerate("Break-Even Units cannot be zero when solving for price or cost.", "breakEvenUnits")
					}
					return v["fixedCosts"]/v["breakEvenUnits"] + v["varCostPerUnit"], nil
				},
				"varCostPerUnit": func(v Values) (float64, error) {
					if isZero(v["breakEvenUnits"]) {
						return 0, degenerate("Break-Even Units cannot be zero when solving for price or cost.", "breakEvenUnits")
					}
					return v["salesPricePerUnit"] - v["fixedCosts"]/v["breakEvenUnits"], nil
				},
			},
		},
		{
			ID:          "price_volume_profit_increase",
			Name:        "Price-Volume-Profit (% Volume Increase Needed)",
			Category:    CategorySensitivity,
			Description: "Required % Volume Increase = (Old Contrib./unit - New Contrib./unit) / New Contrib./unit",
			Details: "Calculates the percentage increase in sales volume needed to maintain the same total " +
				"contribution after a price change. General case: % Vol Incr. = (Lost Total Contribution due to " +
				"price change) / (New Total Contribution at original volume)",
			Variables: []Variable{
				{
					ID:          "requiredVolumeIncrease",
					Label:       "Required % Volume Increase (%)",
					Kind:        KindPercent,
					Placeholder: "e.g., 25",
					Hint:        "Percentage increase in sales volume needed to maintain total contribution after a unit contribution change.",
				},
				money("oldContribPerUnit", "Old Contribution per unit ($)", "e.g., 20"),
				money("newContribPerUnit", "New Contribution per unit ($)", "e.g., 15"),
			},
			Rules: Rules{
				"requiredVolumeIncrease": func(v Values) (float64, error) {
					if err := positiveNewContribution(v); err != nil {
						return 0, err
					}
					return (v["oldContribPerUnit"] - v["newContribPerUnit"]) / v["newContribPerUnit"], nil
				},
				"oldContribPerUnit": func(v Values) (float64, error) {
					if err := positiveNewContribution(v); err != nil {
						return 0, err
					}
					return v["newContribPerUnit"] * (1 + v["requiredVolumeIncrease"]), nil
				},
				"newContribPerUnit": func(v Values) (float64, error) {
					denom := 1 + v["requiredVolumeIncrease"]
					if isZero(denom) {
						return 0, degenerate("A -100% Required % Volume Increase implies a zero new contribution per unit.",
							"requiredVolumeIncrease")
					}
					return v["oldContribPerUnit"] / denom, nil
				},
			},
		},
	}
}

// contributionPerUnit derives Sales Price per Unit – Variable Cost per Unit.
// It is undefined unless both terms are present.
func contributionPerUnit(v Values) (float64, error) {
	price, okP := v.Get("salesPricePerUnit")
	cost, okC := v.Get("varCostPerUnit")
	if !okP || !okC {
		return 0, errTermUndefined("contribution per unit")
	}
	return price - cost, nil
}

func positiveNewContribution(v Values) error {
	if v["newContribPerUnit"] <= 0 {
		return degenerate("New Contribution per unit must be positive.", "newContribPerUnit")
	}
	return nil
}

package formula

func ratioDefinitions() []*Definition {
	return []*Definition{
		{
			ID:          "op_profit_margin",
			Name:        "Operating Profit Margin (%)",
			Category:    CategoryRatios,
			Description: "Operating Profit Margin (%) = (Operating Profit / Revenue) × 100",
			Variables: []Variable{
				percent("opProfitMargin", "Operating Profit Margin (%)", "e.g., 40"),
				money("operatingProfit", "Operating Profit ($)", "e.g., 4000"),
				money("revenue", "Revenue ($)", "e.g., 10000"),
			},
			Rules: Rules{
				"opProfitMargin": func(v Values) (float64, error) {
					if err := nonZero(v["revenue"], "Revenue", "revenue"); err != nil {
						return 0, err
					}
					return v["operatingProfit"] / v["revenue"], nil
				},
				"operatingProfit": func(v Values) (float64, error) {
					return v["opProfitMargin"] * v["revenue"], nil
				},
				"revenue": func(v Values) (float64, error) {
					if err := nonZero(v["opProfitMargin"], "Operating Profit Margin", "opProfitMargin"); err != nil {
						return 0, err
					}
					return v["operatingProfit"] / v["opProfitMargin"], nil
				},
			},
		},
		{
			ID:          "roic",
			Name:        "Return on Invested Capital (ROIC) (%)",
			Category:    CategoryRatios,
			Description: "ROIC (%) = (Operating Profit / Invested Capital) × 100",
			Variables: []Variable{
				percent("roic", "ROIC (%)", "e.g., 20"),
				money("operatingProfit", "Operating Profit ($)", "e.g., 4000"),
				money("investedCapital", "Invested Capital ($)", "e.g., 20000"),
			},
			Rules: Rules{
				"roic": func(v Values) (float64, error) {
					if err := nonZero(v["investedCapital"], "Invested Capital", "investedCapital"); err != nil {
						return 0, err
					}
					return v["operatingProfit"] / v["investedCapital"], nil
				},
				"operatingProfit": func(v Values) (float64, error) {
					return v["roic"] * v["investedCapital"], nil
				},
				"investedCapital": func(v Values) (float64, error) {
					if err := nonZero(v["roic"], "ROIC", "roic"); err != nil {
						return 0, err
					}
					return v["operatingProfit"] / v["roic"], nil
				},
			},
		},
		{
			ID:          "financing_costs",
			Name:        "Financing Costs",
			Category:    CategoryRatios,
			Description: "Financing Costs = Invested Capital × Cost of Invested Capital (COIC %)",
			Variables: []Variable{
				money("financingCosts", "Financing Costs ($)", "e.g., 2000"),
				money("investedCapital", "Invested Capital ($)", "e.g., 20000"),
				percent("coic", "COIC (%)", "e.g., 10"),
			},
			Rules: Rules{
				"financingCosts": func(v Values) (float64, error) {
					return v["investedCapital"] * v["coic"], nil
				},
				"investedCapital": func(v Values) (float64, error) {
					if err := nonZero(v["coic"], "COIC", "coic"); err != nil {
						return 0, err
					}
					return v["financingCosts"] / v["coic"], nil
				},
				"coic": func(v Values) (float64, error) {
					if err := nonZero(v["investedCapital"], "Invested Capital", "investedCapital"); err != nil {
						return 0, err
					}
					return v["financingCosts"] / v["investedCapital"], nil
				},
			},
		},
		{
			ID:          "ep_from_financing_costs",
			Name:        "Economic Profit (EP from Financing Costs)",
			Category:    CategoryRatios,
			Description: "Economic Profit (EP) = Operating Profit – Financing Costs",
			Variables: []Variable{
				money("economicProfit", "Economic Profit ($)", "e.g., 2000"),
				money("operatingProfit", "Operating Profit ($)", "e.g., 4000"),
				money("financingCosts", "Financing Costs ($)", "e.g., 2000"),
			},
			Rules: Rules{
				"economicProfit": func(v Values) (float64, error) {
					return v["operatingProfit"] - v["financingCosts"], nil
				},
				"operatingProfit": func(v Values) (float64, error) {
					return v["economicProfit"] + v["financingCosts"], nil
				},
				"financingCosts": func(v Values) (float64, error) {
					return v["operatingProfit"] - v["economicProfit"], nil
				},
			},
		},
		{
			ID:          "ep_from_ic_coic",
			Name:        "Economic Profit (EP from IC & COIC)",
			Category:    CategoryRatios,
			Description: "Economic Profit (EP) = Operating Profit – (Invested Capital × COIC %)",
			Variables: []Variable{
				money("economicProfit", "Economic Profit ($)", "e.g., 2000"),
				money("operatingProfit", "Operating Profit ($)", "e.g., 4000"),
				money("investedCapital", "Invested Capital ($)", "e.g., 20000"),
				percent("coic", "COIC (%)", "e.g., 10"),
			},
			Rules: capitalChargeRules("economicProfit", "operatingProfit", "investedCapital", "Invested Capital"),
		},
		{
			ID:          "ep_from_roic_coic",
			Name:        "Economic Profit (EP from ROIC & COIC)",
			Category:    CategoryRatios,
			Description: "Economic Profit (EP) = (ROIC % – COIC %) × Invested Capital",
			Variables: []Variable{
				money("economicProfit", "Economic Profit ($)", "e.g., 2000"),
				percent("roic", "ROIC (%)", "e.g., 20"),
				percent("coic", "COIC (%)", "e.g., 10"),
				money("investedCapital", "Invested Capital ($)", "e.g., 20000"),
			},
			Rules: Rules{
				"economicProfit": func(v Values) (float64, error) {
					return (v["roic"] - v["coic"]) * v["investedCapital"], nil
				},
				"investedCapital": func(v Values) (float64, error) {
					spread := v["roic"] - v["coic"]
					if isZero(spread) {
						return 0, degenerate("ROIC and COIC cannot be equal when solving for Invested Capital.", "roic", "coic")
					}
					return v["economicProfit"] / spread, nil
				},
				"roic": func(v Values) (float64, error) {
					if err := nonZero(v["investedCapital"], "Invested Capital", "investedCapital"); err != nil {
						return 0, err
					}
					return v["economicProfit"]/v["investedCapital"] + v["coic"], nil
				},
				"coic": func(v Values) (float64, error) {
					if err := nonZero(v["investedCapital"], "Invested Capital", "investedCapital"); err != nil {
						return 0, err
					}
					return v["roic"] - v["economicProfit"]/v["investedCapital"], nil
				},
			},
		},
	}
}

// capitalChargeRules covers EP = OperatingProfit – Capital × COIC, shared by
// the economic profit and incremental economic profit formulas.
func capitalChargeRules(ep, profit, capital, capitalLabel string) Rules {
	return Rules{
		ep: func(v Values) (float64, error) {
			return v[profit] - v[capital]*v["coic"], nil
		},
		profit: func(v Values) (float64, error) {
			return v[ep] + v[capital]*v["coic"], nil
		},
		capital: func(v Values) (float64, error) {
			if err := nonZero(v["coic"], "COIC", "coic"); err != nil {
				return 0, err
			}
			return (v[profit] - v[ep]) / v["coic"], nil
		},
		"coic": func(v Values) (float64, error) {
			if err := nonZero(v[capital], capitalLabel, capital); err != nil {
				return 0, err
			}
			return (v[profit] - v[ep]) / v[capital], nil
		},
	}
}

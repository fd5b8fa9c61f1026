package formula

func allocationDefinitions() []*Definition {
	return []*Definition{
		{
			ID:          "full_cost_traceability",
			Name:        "Full Cost (Traceability)",
			Category:    CategoryAllocation,
			Description: "Full Cost = Direct Costs + Indirect Costs",
			Variables: []Variable{
				money("fullCost", "Full Cost ($)", "e.g., 15000"),
				money("directCosts", "Direct Costs ($)", "e.g., 10000"),
				money("indirectCosts", "Indirect Costs ($)", "e.g., 5000"),
			},
			Rules: Rules{
				"fullCost": func(v Values) (float64, error) {
					return v["directCosts"] + v["indirectCosts"], nil
				},
				"directCosts": func(v Values) (float64, error) {
					return v["fullCost"] - v["indirectCosts"], nil
				},
				"indirectCosts": func(v Values) (float64, error) {
					return v["fullCost"] - v["directCosts"], nil
				},
			},
		},
		{
			ID:          "allocated_indirect_costs",
			Name:        "Allocated Indirect Costs to Product",
			Category:    CategoryAllocation,
			Description: "Allocated Costs = Total Indirect Costs × (Product's Direct Costs / Total Direct Costs for all products)",
			Variables: []Variable{
				money("allocatedIndirectCosts", "Allocated Indirect Costs to Product ($)", "e.g., 500"),
				money("totalIndirectCosts", "Total Indirect Costs ($)", "e.g., 5000"),
				money("productDirectCosts", "Product's Direct Costs ($)", "e.g., 1000"),
				money("totalAllDirectCosts", "Total Direct Costs (all products) ($)", "e.g., 10000"),
			},
			Rules: Rules{
				"allocatedIndirectCosts": func(v Values) (float64, error) {
					if err := nonZero(v["totalAllDirectCosts"], "Total Direct Costs (all products)", "totalAllDirectCosts"); err != nil {
						return 0, err
					}
					return v["totalIndirectCosts"] * (v["productDirectCosts"] / v["totalAllDirectCosts"]), nil
				},
				"totalIndirectCosts": func(v Values) (float64, error) {
					if err := nonZero(v["totalAllDirectCosts"], "Total Direct Costs (all products)", "totalAllDirectCosts"); err != nil {
						return 0, err
					}
					ratio := v["productDirectCosts"] / v["totalAllDirectCosts"]
					if isZero(ratio) {
						if isZero(v["allocatedIndirectCosts"]) {
							return 0, nil
						}
						return 0, degenerate("Product direct cost ratio is zero, cannot allocate non-zero costs.",
							"productDirectCosts", "allocatedIndirectCosts")
					}
					return v["allocatedIndirectCosts"] / ratio, nil
				},
				"productDirectCosts": func(v Values) (float64, error) {
					if isZero(v["totalIndirectCosts"]) {
						if isZero(v["allocatedIndirectCosts"]) {
							return 0, nil
						}
						return 0, degenerate("Total Indirect Costs are zero, cannot allocate non-zero costs to the product.",
							"totalIndirectCosts", "allocatedIndirectCosts")
					}
					return v["allocatedIndirectCosts"] / v["totalIndirectCosts"] * v["totalAllDirectCosts"], nil
				},
				"totalAllDirectCosts": func(v Values) (float64, error) {
					numerator := v["totalIndirectCosts"] * v["productDirectCosts"]
					if isZero(v["allocatedIndirectCosts"]) {
						// Indeterminate: any total at least the product's own direct costs fits.
						if isZero(numerator) {
							return v["productDirectCosts"], nil
						}
						return 0, degenerate("Cannot solve for Total Direct Costs when the allocated amount is zero but the other costs are not.",
							"allocatedIndirectCosts")
					}
					return numerator / v["allocatedIndirectCosts"], nil
				},
			},
		},
		{
			ID:          "straight_line_depreciation",
			Name:        "Straight-Line Depreciation",
			Category:    CategoryAllocation,
			Description: "Depreciation = (Asset Cost – Salvage Value) / Useful Life",
			Variables: []Variable{
				money("depreciation", "Annual Depreciation ($)", "e.g., 1800"),
				money("assetCost", "Asset Cost ($)", "e.g., 10000"),
				money("salvageValue", "Salvage Value ($)", "e.g., 1000"),
				{ID: "usefulLife", Label: "Useful Life (years)", Kind: KindYears, Placeholder: "e.g., 5"},
			},
			Rules: Rules{
				"depreciation": func(v Values) (float64, error) {
					if isZero(v["usefulLife"]) {
						return 0, degenerate("Useful Life cannot be zero.", "usefulLife")
					}
					return (v["assetCost"] - v["salvageValue"]) / v["usefulLife"], nil
				},
				"assetCost": func(v Values) (float64, error) {
					return v["depreciation"]*v["usefulLife"] + v["salvageValue"], nil
				},
				"salvageValue": func(v Values) (float64, error) {
					return v["assetCost"] - v["depreciation"]*v["usefulLife"], nil
				},
				"usefulLife": func(v Values) (float64, error) {
					depreciable := v["assetCost"] - v["salvageValue"]
					if isZero(v["depreciation"]) {
						if isZero(depreciable) {
							return 0, nil
						}
						return 0, degenerate("Annual Depreciation cannot be zero if Asset Cost differs from Salvage Value.", "depreciation")
					}
					return depreciable / v["depreciation"], nil
				},
			},
		},
		{
			ID:          "asset_cost_per_product",
			Name:        "Asset Cost per Product (Depr. + Financing)",
			Category:    CategoryAllocation,
			Description: "Cost/Product = (Ann. Depr. / Ann. Prod. Vol.) + ((Asset Value × COIC %) / Ann. Prod. Vol.)",
			Variables: []Variable{
				money("assetCostPerProduct", "Asset Cost per Product ($)", "e.g., 2.50"),
				money("totalAnnualDepreciation", "Total Annual Depreciation ($)", "e.g., 1800"),
				count("annualProductionVolume", "Annual Production Volume (units)", "e.g., 10000"),
				money("assetValue", "Asset Value (for COIC calc) ($)", "e.g., 9000 (e.g. avg book value)"),
				percent("coic", "COIC (%)", "e.g., 8"),
			},
			Rules: Rules{
				"assetCostPerProduct": func(v Values) (float64, error) {
					if err := nonZero(v["annualProductionVolume"], "Annual Production Volume", "annualProductionVolume"); err != nil {
						return 0, err
					}
					return annualAssetCost(v) / v["annualProductionVolume"], nil
				},
				"totalAnnualDepreciation": func(v Values) (float64, error) {
					if err := nonZero(v["annualProductionVolume"], "Annual Production Volume", "annualProductionVolume"); err != nil {
						return 0, err
					}
					return v["assetCostPerProduct"]*v["annualProductionVolume"] - v["assetValue"]*v["coic"], nil
				},
				"annualProductionVolume": func(v Values) (float64, error) {
					total := annualAssetCost(v)
					perUnit := v["assetCostPerProduct"]
					if isZero(perUnit) {
						if isZero(total) {
							return 0, nil
						}
						return 0, degenerate("Asset Cost per Product cannot be zero if costs exist.", "assetCostPerProduct")
					}
					if perUnit < 0 && total > 0 {
						return 0, degenerate("Asset Cost per Product must be positive if total costs are positive.", "assetCostPerProduct")
					}
					return total / perUnit, nil
				},
				"assetValue": func(v Values) (float64, error) {
					if err := nonZero(v["coic"], "COIC", "coic"); err != nil {
						return 0, err
					}
					return (v["assetCostPerProduct"]*v["annualProductionVolume"] - v["totalAnnualDepreciation"]) / v["coic"], nil
				},
				"coic": func(v Values) (float64, error) {
					if err := nonZero(v["assetValue"], "Asset Value", "assetValue"); err != nil {
						return 0, err
					}
					return (v["assetCostPerProduct"]*v["annualProductionVolume"] - v["totalAnnualDepreciation"]) / v["assetValue"], nil
				},
			},
		},
	}
}

// annualAssetCost is depreciation plus the financing charge on the asset.
func annualAssetCost(v Values) float64 {
	return v["totalAnnualDepreciation"] + v["assetValue"]*v["coic"]
}

package formula

import (
	"fmt"

	"github.com/rotisserie/eris"
)

// Transfer price scenarios.
const (
	ScenarioNoCapacity  = "no_capacity"
	ScenarioHasCapacity = "has_capacity"
)

// Advice is the recommendation of a decision helper. Either Price or the
// Low/High range is set. Values are on the display scale.
type Advice struct {
	Scenario string   `json:"scenario"`
	Price    *float64 `json:"price,omitempty"`
	Low      *float64 `json:"low,omitempty"`
	High     *float64 `json:"high,omitempty"`
	Warning  string   `json:"warning,omitempty"`
	Text     string   `json:"text"`

	// Inverted is set when the supplier's cost exceeds the buyer's price, so
	// High is the cost and Low the price.
	Inverted bool `json:"inverted,omitempty"`
}

// IsRange reports whether the advice is a price range rather than a fixed price.
func (a *Advice) IsRange() bool {
	return a.Low != nil && a.High != nil
}

func pricingDefinitions() []*Definition {
	return []*Definition{
		{
			ID:          "optimal_internal_transfer_price",
			Name:        "Optimal Internal Transfer Price",
			Category:    CategoryPricing,
			Description: "Helps determine the internal transfer price based on capacity.",
			Variables: []Variable{
				money("marketPriceSupplierExternal", "Market Price (Supplier's External) ($)", "e.g., 100"),
				money("supplierVariableCost", "Supplier's Variable Cost ($)", "e.g., 60"),
				money("buyerExternalPurchasePrice", "Buyer's External Purchase Price ($)", "e.g., 95"),
			},
			Scenarios: []Scenario{
				{ID: ScenarioNoCapacity, Label: "No Available Capacity", Fields: []string{"marketPriceSupplierExternal"}},
				{ID: ScenarioHasCapacity, Label: "Has Available Capacity", Fields: []string{"supplierVariableCost", "buyerExternalPurchasePrice"}},
			},
			Advisor: transferPrice,
		},
	}
}

func transferPrice(scenario string, v Values) (*Advice, error) {
	const id = "optimal_internal_transfer_price"

	switch scenario {
	case ScenarioNoCapacity:
		market, ok := v.Get("marketPriceSupplierExternal")
		if !ok {
			return nil, &UnsolvableError{Formula: id, Field: "transfer price", Missing: "marketPriceSupplierExternal"}
		}
		return &Advice{
			Scenario: scenario,
			Price:    &market,
			Text:     "Equal to Market Price as there's no available capacity.",
		}, nil

	case ScenarioHasCapacity:
		cost, okC := v.Get("supplierVariableCost")
		if !okC {
			return nil, &UnsolvableError{Formula: id, Field: "transfer price", Missing: "supplierVariableCost"}
		}
		buyer, okB := v.Get("buyerExternalPurchasePrice")
		if !okB {
			return nil, &UnsolvableError{Formula: id, Field: "transfer price", Missing: "buyerExternalPurchasePrice"}
		}

		a := &Advice{
			Scenario: scenario,
			Text:     "Between Supplier's Variable Cost and Buyer's External Purchase Price.",
		}
		low, high := cost, buyer
		if cost > buyer {
			a.Warning = fmt.Sprintf("Supplier's Variable Cost ($%.2f) is greater than Buyer's External Purchase Price ($%.2f). "+
				"Internal transfer may not be beneficial under these terms.", cost, buyer)
			a.Inverted = true
			low, high = buyer, cost
		}
		a.Low, a.High = &low, &high
		return a, nil
	}

	return nil, eris.Wrapf(ErrUnknownScenario, "formula %s scenario %q", id, scenario)
}

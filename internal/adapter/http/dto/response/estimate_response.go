package response

import (
	"time"

	"marcenaria_site/internal/domain/entities"
)

// costLabels are the pt-BR names of the breakdown lines.
var costLabels = map[entities.CostCode]string{
	entities.CostPremiumHandles:   "Puxadores premium",
	entities.CostDrawers:          "Gavetas",
	entities.CostExtraShelves:     "Prateleiras extras",
	entities.CostSinkCabinet:      "Gabinete de pia",
	entities.CostSlidingDoors:     "Portas de correr",
	entities.CostWoodFinish:       "Acabamento interno em madeira",
	entities.CostNonFrontMaterial: "Laterais, fundo e prateleiras",
}

// CostLabel names a breakdown line. Unknown codes fall back to the code itself.
func CostLabel(code entities.CostCode) string {
	if l, ok := costLabels[code]; ok {
		return l
	}
	return string(code)
}

type CostItemResponse struct {
	Code   string  `json:"code" example:"non_front_material"`
	Label  string  `json:"label" example:"Laterais, fundo e prateleiras"`
	Amount float64 `json:"amount" example:"2956.8"`
}

type EstimateResponse struct {
	EstimateID      string             `json:"estimate_id"`
	FurnitureType   string             `json:"furniture_type" example:"wardrobe"`
	FrontArea       float64            `json:"front_area" example:"4.8"`
	TotalArea       float64            `json:"total_area" example:"10.08"`
	Sheets          int                `json:"sheets" example:"2"`
	UnitPrice       float64            `json:"unit_price" example:"800"`
	BasePrice       float64            `json:"base_price" example:"3840"`
	AdditionalCosts []CostItemResponse `json:"additional_costs"`
	AdditionalTotal float64            `json:"additional_total" example:"2956.8"`
	TotalPrice      float64            `json:"total_price" example:"6796.8"`
	CreatedAt       time.Time          `json:"created_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	costs := make([]CostItemResponse, 0, len(e.Result.AdditionalCosts))
	for _, c := range e.Result.AdditionalCosts {
		costs = append(costs, CostItemResponse{Code: string(c.Code), Label: CostLabel(c.Code), Amount: c.Amount})
	}
	return EstimateResponse{
		EstimateID:      e.ID,
		FurnitureType:   string(e.Input.FurnitureType),
		FrontArea:       e.Result.FrontArea,
		TotalArea:       e.Result.TotalArea,
		Sheets:          e.Result.Sheets,
		UnitPrice:       e.Result.UnitPrice,
		BasePrice:       e.Result.BasePrice,
		AdditionalCosts: costs,
		AdditionalTotal: e.Result.AdditionalTotal,
		TotalPrice:      e.Result.TotalPrice,
		CreatedAt:       e.CreatedAt,
	}
}

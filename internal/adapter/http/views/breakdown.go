package views

import (
	"marcenaria_site/internal/adapter/http/dto/response"
	"marcenaria_site/internal/domain/entities"
)

var furnitureLabels = map[entities.FurnitureType]string{
	entities.FurnitureKitchen:  "Cozinha",
	entities.FurnitureWardrobe: "Guarda-roupa",
}

func FurnitureLabel(t entities.FurnitureType) string {
	if l, ok := furnitureLabels[t]; ok {
		return l
	}
	return string(t)
}

type BreakdownLine struct {
	Label string
	Value string
}

// BreakdownView is the estimate result as the page shows it. Built without templates so
// the shape can be checked on its own.
type BreakdownView struct {
	EstimateID     string
	FurnitureLabel string
	Summary        []BreakdownLine
	Costs          []BreakdownLine
	AdditionalSum  string
	Total          string
	QuoteHref      string
}

func NewBreakdownView(e entities.Estimate) BreakdownView {
	r := e.Result
	v := BreakdownView{
		EstimateID:     e.ID,
		FurnitureLabel: FurnitureLabel(e.Input.FurnitureType),
		Summary: []BreakdownLine{
			{Label: "Área frontal", Value: FormatArea(r.FrontArea)},
			{Label: "Área total", Value: FormatArea(r.TotalArea)},
			{Label: "Chapas", Value: formatSheets(r.Sheets)},
			{Label: "Preço por m²", Value: FormatBRL(r.UnitPrice)},
			{Label: "Valor base", Value: FormatBRL(r.BasePrice)},
		},
		AdditionalSum: FormatBRL(r.AdditionalTotal),
		Total:         FormatBRL(r.TotalPrice),
		QuoteHref:     "/contato?origem=orcamento",
	}
	for _, c := range r.AdditionalCosts {
		v.Costs = append(v.Costs, BreakdownLine{Label: response.CostLabel(c.Code), Value: FormatBRL(c.Amount)})
	}
	return v
}

// EstimateSummary is the text the contact form is pre-filled with after "Solicitar orçamento".
func EstimateSummary(e entities.Estimate) string {
	return printer.Sprintf(
		"Olá! Fiz uma simulação no site e gostaria de um orçamento.\n\nMóvel: %s\nChapas: %d\nValor estimado: %s\nReferência: %s",
		FurnitureLabel(e.Input.FurnitureType), e.Result.Sheets, FormatBRL(e.Result.TotalPrice), e.ID,
	)
}

package services

import (
	"errors"
	"math"

	"marcenaria_site/internal/domain/entities"
)

var (
	ErrUnknownFurnitureType = errors.New("unknown furniture type")
	ErrMissingMaterial      = errors.New("material tier not selected")
	ErrMissingHandles       = errors.New("handle tier not selected")
	ErrDimensionOutOfRange  = errors.New("dimension out of range")
)

// Largest values the estimator prices. Anything above is a typo, not furniture.
const (
	MaxLength = 50.0  // meters: widths, heights, wall runs
	MaxDepth  = 300.0 // centimeters
	MaxCount  = 200   // drawers, extra shelves
)

const (
	// SheetArea is the usable area of one raw panel.
	SheetArea = 5.88

	lowerModuleHeight = 0.9
	upperModuleHeight = 0.8

	premiumHandlePerSheet = 150.0
	drawerPrice           = 250.0
	extraShelfPrice       = 80.0
	slidingDoorPerArea    = 150.0
	woodFinishPerArea     = 100.0
	nonFrontMaterialRatio = 0.7
)

var materialUnitPrices = map[entities.MaterialTier]float64{
	entities.MaterialStandard: 800,
	entities.MaterialPremium:  1200,
}

var sinkCabinetRates = map[entities.SinkCabinetType]float64{
	entities.SinkCabinetSimple:       450,
	entities.SinkCabinetWithDrawers:  800,
	entities.SinkCabinetHeatedColumn: 900,
}

// PricingCalculator turns an EstimateInput into an EstimateResult. It holds no state.
type PricingCalculator struct{}

func NewPricingCalculator() *PricingCalculator {
	return &PricingCalculator{}
}

// Validate checks the selections the formula cannot default.
func (pc *PricingCalculator) Validate(in entities.EstimateInput) error {
	switch in.FurnitureType {
	case entities.FurnitureKitchen, entities.FurnitureWardrobe:
	default:
		return ErrUnknownFurnitureType
	}
	if _, ok := materialUnitPrices[in.Material]; !ok {
		return ErrMissingMaterial
	}
	switch in.Handles {
	case entities.HandleStandard, entities.HandlePremium:
	default:
		return ErrMissingHandles
	}
	return validateRanges(in)
}

func validateRanges(in entities.EstimateInput) error {
	lengths := append([]float64{in.Width, in.Height}, in.WallWidths...)
	if in.SinkCabinet != nil {
		lengths = append(lengths, in.SinkCabinet.Width)
	}
	if in.HeatedColumn != nil {
		lengths = append(lengths, in.HeatedColumn.Height)
	}
	for _, v := range lengths {
		if !inRange(v, MaxLength) {
			return ErrDimensionOutOfRange
		}
	}
	if !inRange(in.Depth, MaxDepth) || in.Drawers > MaxCount || in.ExtraShelves > MaxCount {
		return ErrDimensionOutOfRange
	}
	return nil
}

// inRange accepts negatives (they count as zero) but not NaN, infinities or values above max.
func inRange(v, max float64) bool {
	return !math.IsNaN(v) && v <= max
}

// Calculate applies the pricing formula. Numeric fields are expected to be already
// defaulted (missing or negative values count as zero).
func (pc *PricingCalculator) Calculate(in entities.EstimateInput) (entities.EstimateResult, error) {
	if err := pc.Validate(in); err != nil {
		return entities.EstimateResult{}, err
	}

	var front, total float64
	if in.FurnitureType == entities.FurnitureKitchen {
		front = kitchenFrontArea(in)
		total = front
	} else {
		width, height, depth := nonNeg(in.Width), nonNeg(in.Height), nonNeg(in.Depth)/100
		front = roundArea(width * height)
		total = roundArea(width*height + 2*(height*depth) + 2*(width*depth))
	}

	unitPrice := materialUnitPrices[in.Material]
	sheetsF := math.Ceil(total / SheetArea)
	if !isFinite(front) || !isFinite(total) || sheetsF > math.MaxInt32 {
		return entities.EstimateResult{}, ErrDimensionOutOfRange
	}
	sheets := int(sheetsF)

	res := entities.EstimateResult{
		FrontArea: front,
		TotalArea: total,
		Sheets:    sheets,
		UnitPrice: unitPrice,
		BasePrice: roundMoney(front * unitPrice),
	}

	add := func(code entities.CostCode, amount float64) {
		amount = roundMoney(amount)
		if amount <= 0 {
			return
		}
		res.AdditionalCosts = append(res.AdditionalCosts, entities.CostItem{Code: code, Amount: amount})
		res.AdditionalTotal += amount
	}

	if in.Handles == entities.HandlePremium {
		add(entities.CostPremiumHandles, float64(sheets)*premiumHandlePerSheet)
	}
	add(entities.CostDrawers, float64(maxInt(in.Drawers, 0))*drawerPrice)
	add(entities.CostExtraShelves, float64(maxInt(in.ExtraShelves, 0))*extraShelfPrice)
	if sink := in.SinkCabinet; sink != nil {
		add(entities.CostSinkCabinet, sinkCabinetRates[sink.Type]*nonNeg(sink.Width))
	}
	if in.FurnitureType == entities.FurnitureWardrobe {
		if in.DoorStyle == entities.DoorSliding {
			add(entities.CostSlidingDoors, front*slidingDoorPerArea)
		}
		if in.InternalFinish == entities.FinishWood {
			add(entities.CostWoodFinish, total*woodFinishPerArea)
		}
	}
	add(entities.CostNonFrontMaterial, roundArea(total-front)*unitPrice*nonFrontMaterialRatio)

	res.AdditionalTotal = roundMoney(res.AdditionalTotal)
	res.TotalPrice = roundMoney(res.BasePrice + res.AdditionalTotal)
	if !isFinite(res.BasePrice) || !isFinite(res.AdditionalTotal) || !isFinite(res.TotalPrice) {
		return entities.EstimateResult{}, ErrDimensionOutOfRange
	}
	return res, nil
}

// kitchenFrontArea sums the lower run (less the sink module) and the upper run.
func kitchenFrontArea(in entities.EstimateInput) float64 {
	width := 0.0
	for _, w := range in.WallWidths {
		width += nonNeg(w)
	}

	front := 0.0
	if in.LowerModules {
		lower := width * lowerModuleHeight
		if hasSinkCabinet(in.SinkCabinet) {
			lower -= nonNeg(in.SinkCabinet.Width) * lowerModuleHeight
		}
		front += math.Max(lower, 0)
	}
	if in.UpperModules {
		front += width * upperModuleHeight
	}
	return roundArea(front)
}

func hasSinkCabinet(s *entities.SinkCabinet) bool {
	if s == nil {
		return false
	}
	_, ok := sinkCabinetRates[s.Type]
	return ok
}

func nonNeg(v float64) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func roundArea(v float64) float64 {
	return math.Round(v*10000) / 10000
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

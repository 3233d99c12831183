package entities

import "time"

// FurnitureType is the kind of piece the visitor wants priced.
type FurnitureType string

const (
	FurnitureKitchen  FurnitureType = "kitchen"
	FurnitureWardrobe FurnitureType = "wardrobe"
)

type MaterialTier string

const (
	MaterialStandard MaterialTier = "standard"
	MaterialPremium  MaterialTier = "premium"
)

type HandleTier string

const (
	HandleStandard HandleTier = "standard"
	HandlePremium  HandleTier = "premium"
)

type SinkCabinetType string

const (
	SinkCabinetNone         SinkCabinetType = "none"
	SinkCabinetSimple       SinkCabinetType = "simple"
	SinkCabinetWithDrawers  SinkCabinetType = "with_drawers"
	SinkCabinetHeatedColumn SinkCabinetType = "heated_column"
)

// DoorStyle and InternalFinish only apply to wardrobes.
type DoorStyle string

const (
	DoorHinged  DoorStyle = "hinged"
	DoorSliding DoorStyle = "sliding"
)

type InternalFinish string

const (
	FinishStandard InternalFinish = "standard"
	FinishWood     InternalFinish = "wood"
)

// SinkCabinet is the optional sink module of a kitchen. Width is linear (m).
type SinkCabinet struct {
	Type  SinkCabinetType `json:"type"`
	Width float64         `json:"width"`
}

// HeatedColumn is the optional oven tower of a kitchen. Height in meters.
type HeatedColumn struct {
	Height float64 `json:"height"`
}

// EstimateInput is everything the estimator collects.
//
// Units:
//   - Width, Height and WallWidths are meters.
//   - Depth is centimeters (wardrobes are measured that way on site).
type EstimateInput struct {
	FurnitureType FurnitureType `json:"furniture_type"`
	Material      MaterialTier  `json:"material"`
	Handles       HandleTier    `json:"handles"`

	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`

	WallWidths   []float64 `json:"wall_widths,omitempty"`
	LowerModules bool      `json:"lower_modules"`
	UpperModules bool      `json:"upper_modules"`

	Drawers      int `json:"drawers"`
	ExtraShelves int `json:"extra_shelves"`

	SinkCabinet  *SinkCabinet  `json:"sink_cabinet,omitempty"`
	HeatedColumn *HeatedColumn `json:"heated_column,omitempty"`

	DoorStyle      DoorStyle      `json:"door_style,omitempty"`
	InternalFinish InternalFinish `json:"internal_finish,omitempty"`
}

// TotalWallWidth is the run length of a kitchen.
func (in EstimateInput) TotalWallWidth() float64 {
	total := 0.0
	for _, w := range in.WallWidths {
		total += w
	}
	return total
}

// CostCode identifies one line of the additional costs breakdown.
type CostCode string

const (
	CostPremiumHandles   CostCode = "premium_handles"
	CostDrawers          CostCode = "drawers"
	CostExtraShelves     CostCode = "extra_shelves"
	CostSinkCabinet      CostCode = "sink_cabinet"
	CostSlidingDoors     CostCode = "sliding_doors"
	CostWoodFinish       CostCode = "wood_finish"
	CostNonFrontMaterial CostCode = "non_front_material"
)

type CostItem struct {
	Code   CostCode `json:"code"`
	Amount float64  `json:"amount"`
}

// EstimateResult is the derived value of one calculation. Every field is non-negative.
type EstimateResult struct {
	FrontArea       float64    `json:"front_area"`
	TotalArea       float64    `json:"total_area"`
	Sheets          int        `json:"sheets"`
	UnitPrice       float64    `json:"unit_price"`
	BasePrice       float64    `json:"base_price"`
	AdditionalCosts []CostItem `json:"additional_costs"`
	AdditionalTotal float64    `json:"additional_total"`
	TotalPrice      float64    `json:"total_price"`
}

// Estimate is the latest calculation of a visitor.
//
// Storage model (DynamoDB):
//   - PK: session_id (one estimate per session, last write wins)
type Estimate struct {
	ID        string         `json:"id"`
	SessionID string         `json:"session_id"`
	Input     EstimateInput  `json:"input"`
	Result    EstimateResult `json:"result"`
	CreatedAt time.Time      `json:"created_at"`
}

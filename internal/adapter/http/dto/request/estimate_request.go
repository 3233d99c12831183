package request

import (
	"net/url"
	"strconv"
	"strings"

	"marcenaria_site/internal/domain/entities"
)

// MaxWalls is how many wall runs the estimator form offers for a kitchen.
const MaxWalls = 4

type SinkCabinetRequest struct {
	Type  string `json:"type" example:"simple"`
	Width Number `json:"width" swaggertype:"number" example:"1.2"`
}

type HeatedColumnRequest struct {
	Height Number `json:"height" swaggertype:"number" example:"2.2"`
}

// EstimateRequest is the JSON body of POST /v1/estimates. Dimensions are meters except
// depth (cm). Numeric fields also accept strings.
type EstimateRequest struct {
	FurnitureType  string               `json:"furniture_type" example:"wardrobe"`
	Material       string               `json:"material" example:"standard"`
	Handles        string               `json:"handles" example:"standard"`
	Width          Number               `json:"width" swaggertype:"number" example:"2"`
	Height         Number               `json:"height" swaggertype:"number" example:"2.4"`
	Depth          Number               `json:"depth" swaggertype:"number" example:"60"`
	WallWidths     []Number             `json:"wall_widths" swaggertype:"array,number"`
	LowerModules   bool                 `json:"lower_modules"`
	UpperModules   bool                 `json:"upper_modules"`
	Drawers        Number               `json:"drawers" swaggertype:"integer"`
	ExtraShelves   Number               `json:"extra_shelves" swaggertype:"integer"`
	SinkCabinet    *SinkCabinetRequest  `json:"sink_cabinet,omitempty"`
	HeatedColumn   *HeatedColumnRequest `json:"heated_column,omitempty"`
	DoorStyle      string               `json:"door_style,omitempty" example:"hinged"`
	InternalFinish string               `json:"internal_finish,omitempty" example:"standard"`
}

func (r EstimateRequest) ToInput() entities.EstimateInput {
	in := entities.EstimateInput{
		FurnitureType:  entities.FurnitureType(strings.TrimSpace(r.FurnitureType)),
		Material:       entities.MaterialTier(strings.TrimSpace(r.Material)),
		Handles:        entities.HandleTier(strings.TrimSpace(r.Handles)),
		Width:          r.Width.Float(),
		Height:         r.Height.Float(),
		Depth:          r.Depth.Float(),
		LowerModules:   r.LowerModules,
		UpperModules:   r.UpperModules,
		Drawers:        r.Drawers.Int(),
		ExtraShelves:   r.ExtraShelves.Int(),
		DoorStyle:      entities.DoorStyle(strings.TrimSpace(r.DoorStyle)),
		InternalFinish: entities.InternalFinish(strings.TrimSpace(r.InternalFinish)),
	}
	for _, w := range r.WallWidths {
		in.WallWidths = append(in.WallWidths, w.Float())
	}
	if r.SinkCabinet != nil && sinkSelected(r.SinkCabinet.Type) {
		in.SinkCabinet = &entities.SinkCabinet{
			Type:  entities.SinkCabinetType(strings.TrimSpace(r.SinkCabinet.Type)),
			Width: r.SinkCabinet.Width.Float(),
		}
	}
	if r.HeatedColumn != nil {
		in.HeatedColumn = &entities.HeatedColumn{Height: r.HeatedColumn.Height.Float()}
	}
	return in
}

// Estimator form field names.
const (
	FieldFurnitureType      = "furniture_type"
	FieldMaterial           = "material"
	FieldHandles            = "handles"
	FieldWidth              = "width"
	FieldHeight             = "height"
	FieldDepth              = "depth"
	FieldLowerModules       = "lower_modules"
	FieldUpperModules       = "upper_modules"
	FieldDrawers            = "drawers"
	FieldExtraShelves       = "extra_shelves"
	FieldSinkType           = "sink_type"
	FieldSinkWidth          = "sink_width"
	FieldHeatedColumn       = "heated_column"
	FieldHeatedColumnHeight = "heated_column_height"
	FieldDoorStyle          = "door_style"
	FieldInternalFinish     = "internal_finish"
)

// WallField is the form name of the i-th wall run (1-based).
func WallField(i int) string {
	return "wall_" + strconv.Itoa(i)
}

// EstimateInputFromForm reads the estimator wizard's accumulated values. Empty wall
// boxes are skipped.
func EstimateInputFromForm(v url.Values) entities.EstimateInput {
	in := entities.EstimateInput{
		FurnitureType:  entities.FurnitureType(strings.TrimSpace(v.Get(FieldFurnitureType))),
		Material:       entities.MaterialTier(strings.TrimSpace(v.Get(FieldMaterial))),
		Handles:        entities.HandleTier(strings.TrimSpace(v.Get(FieldHandles))),
		Width:          ParseNumber(v.Get(FieldWidth)),
		Height:         ParseNumber(v.Get(FieldHeight)),
		Depth:          ParseNumber(v.Get(FieldDepth)),
		LowerModules:   checked(v.Get(FieldLowerModules)),
		UpperModules:   checked(v.Get(FieldUpperModules)),
		Drawers:        int(ParseNumber(v.Get(FieldDrawers))),
		ExtraShelves:   int(ParseNumber(v.Get(FieldExtraShelves))),
		DoorStyle:      entities.DoorStyle(strings.TrimSpace(v.Get(FieldDoorStyle))),
		InternalFinish: entities.InternalFinish(strings.TrimSpace(v.Get(FieldInternalFinish))),
	}
	for i := 1; i <= MaxWalls; i++ {
		raw := strings.TrimSpace(v.Get(WallField(i)))
		if raw == "" {
			continue
		}
		in.WallWidths = append(in.WallWidths, ParseNumber(raw))
	}
	if t := v.Get(FieldSinkType); sinkSelected(t) {
		in.SinkCabinet = &entities.SinkCabinet{
			Type:  entities.SinkCabinetType(strings.TrimSpace(t)),
			Width: ParseNumber(v.Get(FieldSinkWidth)),
		}
	}
	if checked(v.Get(FieldHeatedColumn)) {
		in.HeatedColumn = &entities.HeatedColumn{Height: ParseNumber(v.Get(FieldHeatedColumnHeight))}
	}
	return in
}

func sinkSelected(t string) bool {
	t = strings.TrimSpace(t)
	return t != "" && t != string(entities.SinkCabinetNone)
}

func checked(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on", "true", "1", "sim":
		return true
	}
	return false
}

package ui

import (
	"marcenaria_site/internal/adapter/http/dto/request"
	"marcenaria_site/internal/domain/entities"
)

var (
	isKitchen  = When(request.FieldFurnitureType, string(entities.FurnitureKitchen))
	isWardrobe = When(request.FieldFurnitureType, string(entities.FurnitureWardrobe))
)

// EstimatorSteps is the four-step estimator: type, dimensions, finish, extras.
func EstimatorSteps() []Step {
	return []Step{
		{
			Title: "Tipo de móvel",
			Fields: []Field{
				{
					Name: request.FieldFurnitureType, Label: "Tipo de móvel", Kind: FieldRadio, Required: true,
					Options: []Option{
						{Value: string(entities.FurnitureKitchen), Label: "Cozinha"},
						{Value: string(entities.FurnitureWardrobe), Label: "Guarda-roupa"},
					},
				},
			},
		},
		{
			Title: "Medidas",
			Fields: []Field{
				{Name: request.FieldWidth, Label: "Largura (m)", Kind: FieldNumber, Required: true, Placeholder: "2,00", VisibleWhen: isWardrobe},
				{Name: request.FieldHeight, Label: "Altura (m)", Kind: FieldNumber, Required: true, Placeholder: "2,40"},
				{Name: request.FieldDepth, Label: "Profundidade (cm)", Kind: FieldNumber, Required: true, Placeholder: "60", VisibleWhen: isWardrobe},
				{Name: request.WallField(1), Label: "Parede 1 (m)", Kind: FieldNumber, Required: true, Placeholder: "3,00", VisibleWhen: isKitchen},
				{Name: request.WallField(2), Label: "Parede 2 (m)", Kind: FieldNumber, Placeholder: "opcional", VisibleWhen: isKitchen},
				{Name: request.WallField(3), Label: "Parede 3 (m)", Kind: FieldNumber, Placeholder: "opcional", VisibleWhen: isKitchen},
				{Name: request.WallField(4), Label: "Parede 4 (m)", Kind: FieldNumber, Placeholder: "opcional", VisibleWhen: isKitchen},
				{Name: request.FieldLowerModules, Label: "Módulos inferiores", Kind: FieldCheckbox, VisibleWhen: isKitchen},
				{Name: request.FieldUpperModules, Label: "Módulos aéreos", Kind: FieldCheckbox, VisibleWhen: isKitchen},
			},
		},
		{
			Title: "Acabamento",
			Fields: []Field{
				{
					Name: request.FieldMaterial, Label: "Material", Kind: FieldRadio, Required: true,
					Options: []Option{
						{Value: string(entities.MaterialStandard), Label: "Padrão (MDF)"},
						{Value: string(entities.MaterialPremium), Label: "Premium"},
					},
				},
				{
					Name: request.FieldHandles, Label: "Puxadores", Kind: FieldRadio, Required: true,
					Options: []Option{
						{Value: string(entities.HandleStandard), Label: "Padrão"},
						{Value: string(entities.HandlePremium), Label: "Premium"},
					},
				},
				{
					Name: request.FieldDoorStyle, Label: "Portas", Kind: FieldSelect, VisibleWhen: isWardrobe,
					Options: []Option{
						{Value: string(entities.DoorHinged), Label: "De abrir"},
						{Value: string(entities.DoorSliding), Label: "De correr"},
					},
				},
				{
					Name: request.FieldInternalFinish, Label: "Acabamento interno", Kind: FieldSelect, VisibleWhen: isWardrobe,
					Options: []Option{
						{Value: string(entities.FinishStandard), Label: "MDF padrão"},
						{Value: string(entities.FinishWood), Label: "Madeira"},
					},
				},
			},
		},
		{
			Title: "Extras",
			Fields: []Field{
				{Name: request.FieldDrawers, Label: "Gavetas", Kind: FieldNumber, Placeholder: "0"},
				{Name: request.FieldExtraShelves, Label: "Prateleiras extras", Kind: FieldNumber, Placeholder: "0"},
				{
					Name: request.FieldSinkType, Label: "Gabinete de pia", Kind: FieldSelect, VisibleWhen: isKitchen,
					Options: []Option{
						{Value: string(entities.SinkCabinetNone), Label: "Sem gabinete"},
						{Value: string(entities.SinkCabinetSimple), Label: "Simples"},
						{Value: string(entities.SinkCabinetWithDrawers), Label: "Com gavetas"},
						{Value: string(entities.SinkCabinetHeatedColumn), Label: "Com torre quente"},
					},
				},
				{
					Name: request.FieldSinkWidth, Label: "Largura do gabinete (m)", Kind: FieldNumber, Required: true, Placeholder: "1,20",
					VisibleWhen: All(isKitchen, WhenNot(request.FieldSinkType, string(entities.SinkCabinetNone))),
				},
				{Name: request.FieldHeatedColumn, Label: "Torre quente", Kind: FieldCheckbox, VisibleWhen: isKitchen},
				{
					Name: request.FieldHeatedColumnHeight, Label: "Altura da torre (m)", Kind: FieldNumber, Required: true, Placeholder: "2,20",
					VisibleWhen: All(isKitchen, When(request.FieldHeatedColumn, "on")),
				},
			},
		},
	}
}

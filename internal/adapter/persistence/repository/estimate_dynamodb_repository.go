package repository

import (
	"context"

	"marcenaria_site/internal/domain/entities"
	"marcenaria_site/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEstimatesTableName = "estimates"

type estimateItem struct {
	SessionID string             `dynamodbav:"session_id"`
	ID        string             `dynamodbav:"id"`
	Input     estimateInputItem  `dynamodbav:"input"`
	Result    estimateResultItem `dynamodbav:"result"`
	CreatedAt string             `dynamodbav:"created_at"`
}

type estimateInputItem struct {
	FurnitureType  string            `dynamodbav:"furniture_type"`
	Material       string            `dynamodbav:"material"`
	Handles        string            `dynamodbav:"handles"`
	Width          float64           `dynamodbav:"width"`
	Height         float64           `dynamodbav:"height"`
	Depth          float64           `dynamodbav:"depth"`
	WallWidths     []float64         `dynamodbav:"wall_widths,omitempty"`
	LowerModules   bool              `dynamodbav:"lower_modules"`
	UpperModules   bool              `dynamodbav:"upper_modules"`
	Drawers        int               `dynamodbav:"drawers"`
	ExtraShelves   int               `dynamodbav:"extra_shelves"`
	SinkCabinet    *sinkCabinetItem  `dynamodbav:"sink_cabinet,omitempty"`
	HeatedColumn   *heatedColumnItem `dynamodbav:"heated_column,omitempty"`
	DoorStyle      string            `dynamodbav:"door_style,omitempty"`
	InternalFinish string            `dynamodbav:"internal_finish,omitempty"`
}

type sinkCabinetItem struct {
	Type  string  `dynamodbav:"type"`
	Width float64 `dynamodbav:"width"`
}

type heatedColumnItem struct {
	Height float64 `dynamodbav:"height"`
}

type estimateResultItem struct {
	FrontArea       float64    `dynamodbav:"front_area"`
	TotalArea       float64    `dynamodbav:"total_area"`
	Sheets          int        `dynamodbav:"sheets"`
	UnitPrice       float64    `dynamodbav:"unit_price"`
	BasePrice       float64    `dynamodbav:"base_price"`
	AdditionalCosts []costItem `dynamodbav:"additional_costs"`
	AdditionalTotal float64    `dynamodbav:"additional_total"`
	TotalPrice      float64    `dynamodbav:"total_price"`
}

type costItem struct {
	Code   string  `dynamodbav:"code"`
	Amount float64 `dynamodbav:"amount"`
}

// EstimateDynamoRepository persists the latest Estimate of each session in DynamoDB.
//
// Table requirements:
//   - PK: session_id (string)
//
// Saving overwrites the previous item, so a session never has more than one estimate.

type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client, tableName string) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultEstimatesTableName),
	}
}

func (r *EstimateDynamoRepository) SaveLatest(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	av, err := marshalItem(toEstimateItem(e))
	if err != nil {
		return entities.Estimate{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetLatestBySessionID(ctx context.Context, sessionID string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"session_id": &types.AttributeValueMemberS{Value: sessionID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := unmarshalItem(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func toEstimateItem(e entities.Estimate) estimateItem {
	in := e.Input
	input := estimateInputItem{
		FurnitureType:  string(in.FurnitureType),
		Material:       string(in.Material),
		Handles:        string(in.Handles),
		Width:          in.Width,
		Height:         in.Height,
		Depth:          in.Depth,
		WallWidths:     in.WallWidths,
		LowerModules:   in.LowerModules,
		UpperModules:   in.UpperModules,
		Drawers:        in.Drawers,
		ExtraShelves:   in.ExtraShelves,
		DoorStyle:      string(in.DoorStyle),
		InternalFinish: string(in.InternalFinish),
	}
	if in.SinkCabinet != nil {
		input.SinkCabinet = &sinkCabinetItem{Type: string(in.SinkCabinet.Type), Width: in.SinkCabinet.Width}
	}
	if in.HeatedColumn != nil {
		input.HeatedColumn = &heatedColumnItem{Height: in.HeatedColumn.Height}
	}

	res := e.Result
	costs := make([]costItem, 0, len(res.AdditionalCosts))
	for _, c := range res.AdditionalCosts {
		costs = append(costs, costItem{Code: string(c.Code), Amount: c.Amount})
	}

	return estimateItem{
		SessionID: e.SessionID,
		ID:        e.ID,
		Input:     input,
		Result: estimateResultItem{
			FrontArea:       res.FrontArea,
			TotalArea:       res.TotalArea,
			Sheets:          res.Sheets,
			UnitPrice:       res.UnitPrice,
			BasePrice:       res.BasePrice,
			AdditionalCosts: costs,
			AdditionalTotal: res.AdditionalTotal,
			TotalPrice:      res.TotalPrice,
		},
		CreatedAt: formatTime(e.CreatedAt),
	}
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	in := it.Input
	input := entities.EstimateInput{
		FurnitureType:  entities.FurnitureType(in.FurnitureType),
		Material:       entities.MaterialTier(in.Material),
		Handles:        entities.HandleTier(in.Handles),
		Width:          in.Width,
		Height:         in.Height,
		Depth:          in.Depth,
		WallWidths:     in.WallWidths,
		LowerModules:   in.LowerModules,
		UpperModules:   in.UpperModules,
		Drawers:        in.Drawers,
		ExtraShelves:   in.ExtraShelves,
		DoorStyle:      entities.DoorStyle(in.DoorStyle),
		InternalFinish: entities.InternalFinish(in.InternalFinish),
	}
	if in.SinkCabinet != nil {
		input.SinkCabinet = &entities.SinkCabinet{Type: entities.SinkCabinetType(in.SinkCabinet.Type), Width: in.SinkCabinet.Width}
	}
	if in.HeatedColumn != nil {
		input.HeatedColumn = &entities.HeatedColumn{Height: in.HeatedColumn.Height}
	}

	res := it.Result
	costs := make([]entities.CostItem, 0, len(res.AdditionalCosts))
	for _, c := range res.AdditionalCosts {
		costs = append(costs, entities.CostItem{Code: entities.CostCode(c.Code), Amount: c.Amount})
	}

	return entities.Estimate{
		ID:        it.ID,
		SessionID: it.SessionID,
		Input:     input,
		Result: entities.EstimateResult{
			FrontArea:       res.FrontArea,
			TotalArea:       res.TotalArea,
			Sheets:          res.Sheets,
			UnitPrice:       res.UnitPrice,
			BasePrice:       res.BasePrice,
			AdditionalCosts: costs,
			AdditionalTotal: res.AdditionalTotal,
			TotalPrice:      res.TotalPrice,
		},
		CreatedAt: parseTime(it.CreatedAt),
	}
}

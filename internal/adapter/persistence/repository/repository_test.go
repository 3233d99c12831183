package repository

import (
	"context"
	"testing"
	"time"

	"marcenaria_site/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEstimate(sessionID, id string) entities.Estimate {
	return entities.Estimate{
		ID:        id,
		SessionID: sessionID,
		Input: entities.EstimateInput{
			FurnitureType: entities.FurnitureKitchen,
			Material:      entities.MaterialStandard,
			Handles:       entities.HandleStandard,
			WallWidths:    []float64{3, 1.5},
			Height:        2.6,
			LowerModules:  true,
			SinkCabinet:   &entities.SinkCabinet{Type: entities.SinkCabinetSimple, Width: 1.2},
		},
		Result: entities.EstimateResult{
			FrontArea:       2.97,
			TotalArea:       2.97,
			Sheets:          1,
			UnitPrice:       800,
			BasePrice:       2376,
			AdditionalCosts: []entities.CostItem{{Code: entities.CostSinkCabinet, Amount: 540}},
			AdditionalTotal: 540,
			TotalPrice:      2916,
		},
		CreatedAt: time.Date(2026, 4, 2, 15, 4, 5, 0, time.UTC),
	}
}

func TestEstimateMemoryRepository_LastWriteWins(t *testing.T) {
	ctx := context.Background()
	r := NewEstimateMemoryRepository()

	got, err := r.GetLatestBySessionID(ctx, "sid-1")
	require.NoError(t, err)
	assert.Empty(t, got.ID)

	_, err = r.SaveLatest(ctx, sampleEstimate("sid-1", "a"))
	require.NoError(t, err)
	_, err = r.SaveLatest(ctx, sampleEstimate("sid-1", "b"))
	require.NoError(t, err)
	_, err = r.SaveLatest(ctx, sampleEstimate("sid-2", "c"))
	require.NoError(t, err)

	got, _ = r.GetLatestBySessionID(ctx, "sid-1")
	assert.Equal(t, "b", got.ID)
	got, _ = r.GetLatestBySessionID(ctx, "sid-2")
	assert.Equal(t, "c", got.ID)
}

func TestEstimateMemoryRepository_StoresCopies(t *testing.T) {
	ctx := context.Background()
	r := NewEstimateMemoryRepository()

	e := sampleEstimate("sid-1", "a")
	_, _ = r.SaveLatest(ctx, e)
	e.Input.WallWidths[0] = 99

	got, _ := r.GetLatestBySessionID(ctx, "sid-1")
	assert.Equal(t, 3.0, got.Input.WallWidths[0])
}

func TestContactMemoryRepository(t *testing.T) {
	ctx := context.Background()
	r := NewContactMemoryRepository()

	lead := entities.ContactRequest{ID: "lead-1", Name: "Ana", Status: entities.ContactStatusEnviado}
	_, err := r.Create(ctx, lead)
	require.NoError(t, err)

	_, err = r.Create(ctx, lead)
	assert.ErrorIs(t, err, ErrDuplicateID)

	got, err := r.GetByID(ctx, "lead-1")
	require.NoError(t, err)
	assert.Equal(t, lead, got)

	missing, err := r.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestEstimateItem_UsesSnakeCaseAttributes(t *testing.T) {
	e := sampleEstimate("sid-1", "a")

	av, err := marshalItem(toEstimateItem(e))
	require.NoError(t, err)

	pk, ok := av["session_id"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, "sid-1", pk.Value)

	input, ok := av["input"].(*types.AttributeValueMemberM)
	require.True(t, ok)
	assert.Contains(t, input.Value, "wall_widths")
	assert.NotContains(t, input.Value, "heated_column", "nil pointers are omitted")
	assert.NotContains(t, input.Value, "door_style", "empty wardrobe options are omitted")

	sink, ok := input.Value["sink_cabinet"].(*types.AttributeValueMemberM)
	require.True(t, ok)
	assert.Equal(t, &types.AttributeValueMemberS{Value: "simple"}, sink.Value["type"])

	result, ok := av["result"].(*types.AttributeValueMemberM)
	require.True(t, ok)
	assert.Contains(t, result.Value, "total_price")
	costs, ok := result.Value["additional_costs"].(*types.AttributeValueMemberL)
	require.True(t, ok)
	require.Len(t, costs.Value, 1)
	cost, ok := costs.Value[0].(*types.AttributeValueMemberM)
	require.True(t, ok)
	assert.Equal(t, &types.AttributeValueMemberS{Value: "sink_cabinet"}, cost.Value["code"])
	assert.Equal(t, &types.AttributeValueMemberN{Value: "540"}, cost.Value["amount"])

	var it estimateItem
	require.NoError(t, unmarshalItem(av, &it))
	assert.Equal(t, e, fromEstimateItem(it))
}

func TestContactItem_KeepsStatusAndDate(t *testing.T) {
	lead := entities.ContactRequest{
		ID:        "lead-1",
		SessionID: "sid-1",
		Name:      "Ana",
		Email:     "ana@example.com",
		Message:   "oi",
		Status:    entities.ContactStatusFalhou,
		Date:      time.Date(2026, 4, 2, 15, 4, 5, 0, time.UTC),
	}

	av, err := marshalItem(toContactItem(lead))
	require.NoError(t, err)
	_, hasPhone := av["phone"]
	assert.False(t, hasPhone)

	var it contactItem
	require.NoError(t, unmarshalItem(av, &it))
	assert.Equal(t, lead, fromContactItem(it))
}

package repository

import (
	"context"

	"marcenaria_site/internal/domain/entities"
	"marcenaria_site/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultContactsTableName = "contact_requests"

type contactItem struct {
	ID         string `dynamodbav:"id"`
	SessionID  string `dynamodbav:"session_id"`
	Name       string `dynamodbav:"name"`
	Email      string `dynamodbav:"email"`
	Phone      string `dynamodbav:"phone,omitempty"`
	Subject    string `dynamodbav:"subject,omitempty"`
	Message    string `dynamodbav:"message"`
	EstimateID string `dynamodbav:"estimate_id,omitempty"`
	Attachment string `dynamodbav:"attachment,omitempty"`
	Status     string `dynamodbav:"status"`
	Date       string `dynamodbav:"date"`
}

// ContactDynamoRepository persists ContactRequest leads in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: session_id-index (PK: session_id)

type ContactDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IContactRepository = (*ContactDynamoRepository)(nil)

func NewContactDynamoRepository(ddb *dynamodb.Client, tableName string) *ContactDynamoRepository {
	return &ContactDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultContactsTableName),
	}
}

func (r *ContactDynamoRepository) Create(ctx context.Context, c entities.ContactRequest) (entities.ContactRequest, error) {
	av, err := marshalItem(toContactItem(c))
	if err != nil {
		return entities.ContactRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.ContactRequest{}, err
	}
	return c, nil
}

func (r *ContactDynamoRepository) GetByID(ctx context.Context, id string) (entities.ContactRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ContactRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.ContactRequest{}, nil
	}

	var it contactItem
	if err := unmarshalItem(out.Item, &it); err != nil {
		return entities.ContactRequest{}, err
	}
	return fromContactItem(it), nil
}

func toContactItem(c entities.ContactRequest) contactItem {
	return contactItem{
		ID:         c.ID,
		SessionID:  c.SessionID,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		Subject:    c.Subject,
		Message:    c.Message,
		EstimateID: c.EstimateID,
		Attachment: c.Attachment,
		Status:     string(c.Status),
		Date:       formatTime(c.Date),
	}
}

func fromContactItem(it contactItem) entities.ContactRequest {
	return entities.ContactRequest{
		ID:         it.ID,
		SessionID:  it.SessionID,
		Name:       it.Name,
		Email:      it.Email,
		Phone:      it.Phone,
		Subject:    it.Subject,
		Message:    it.Message,
		EstimateID: it.EstimateID,
		Attachment: it.Attachment,
		Status:     entities.ContactStatus(it.Status),
		Date:       parseTime(it.Date),
	}
}

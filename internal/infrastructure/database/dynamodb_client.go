package database

import (
	"context"
	"errors"
	"fmt"

	"marcenaria_site/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ConnectDynamoDB creates a DynamoDB client from the storage block.
//
// With an endpoint set (e.g. http://dynamodb:8000) the static credentials are used, since
// DynamoDB Local does not validate them but the SDK requires some.
func ConnectDynamoDB(ctx context.Context, cfg config.DynamoDBConfig) (*dynamodb.Client, error) {
	awsCfg, err := NewAWSConfig(ctx, cfg.Region, cfg.Endpoint, cfg.AccessKeyID, cfg.SecretAccessKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create dynamodb config: %w", err)
	}
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}

// NewAWSConfig loads the default AWS chain, pinned to static credentials when given.
func NewAWSConfig(ctx context.Context, region, endpoint, accessKeyID, secretAccessKey string) (aws.Config, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
	}
	if endpoint != "" && accessKeyID != "" {
		creds := credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, "")
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(creds))
	}
	return awsconfig.LoadDefaultConfig(ctx, loadOpts...)
}

// EnsureTables creates the estimates and contact tables when missing. Used against
// DynamoDB Local; production tables are provisioned outside the service.
func EnsureTables(ctx context.Context, ddb *dynamodb.Client, cfg config.DynamoDBConfig) error {
	tables := []struct {
		name string
		pk   string
		gsi  string
	}{
		{name: cfg.EstimatesTable, pk: "session_id"},
		{name: cfg.ContactsTable, pk: "id", gsi: "session_id"},
	}

	for _, t := range tables {
		_, err := ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(t.name)})
		if err == nil {
			continue
		}
		var nf *types.ResourceNotFoundException
		if !errors.As(err, &nf) {
			return fmt.Errorf("describe table %s: %w", t.name, err)
		}

		in := &dynamodb.CreateTableInput{
			TableName:   aws.String(t.name),
			BillingMode: types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String(t.pk), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String(t.pk), KeyType: types.KeyTypeHash},
			},
		}
		if t.gsi != "" {
			in.AttributeDefinitions = append(in.AttributeDefinitions, types.AttributeDefinition{
				AttributeName: aws.String(t.gsi), AttributeType: types.ScalarAttributeTypeS,
			})
			in.GlobalSecondaryIndexes = []types.GlobalSecondaryIndex{{
				IndexName:  aws.String(t.gsi + "-index"),
				KeySchema:  []types.KeySchemaElement{{AttributeName: aws.String(t.gsi), KeyType: types.KeyTypeHash}},
				Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
			}}
		}
		if _, err := ddb.CreateTable(ctx, in); err != nil {
			return fmt.Errorf("create table %s: %w", t.name, err)
		}
	}
	return nil
}

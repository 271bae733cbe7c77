package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	appconfig "orcamento_api/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const tableReadyTimeout = 2 * time.Minute

// TableAPI is the subset of the DynamoDB client used to bootstrap tables.
type TableAPI interface {
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

var _ TableAPI = (*dynamodb.Client)(nil)

// TableDefinitions returns the create input of every table the API uses.
func TableDefinitions(t appconfig.TablesConfig) []*dynamodb.CreateTableInput {
	return []*dynamodb.CreateTableInput{
		simpleTable(t.CostFactors, "id", types.ScalarAttributeTypeN),
		{
			TableName: aws.String(t.BudgetRequests),
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeN},
				{AttributeName: aws.String("status"), AttributeType: types.ScalarAttributeTypeS},
				{AttributeName: aws.String("created_at"), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
			},
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
				{
					IndexName: aws.String("status-created_at-index"),
					KeySchema: []types.KeySchemaElement{
						{AttributeName: aws.String("status"), KeyType: types.KeyTypeHash},
						{AttributeName: aws.String("created_at"), KeyType: types.KeyTypeRange},
					},
					Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
				},
			},
			BillingMode: types.BillingModePayPerRequest,
		},
		simpleTable(t.AdminUsers, "username", types.ScalarAttributeTypeS),
		simpleTable(t.Sessions, "token", types.ScalarAttributeTypeS),
		{
			TableName: aws.String(t.Payments),
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
				{AttributeName: aws.String("budget_request_id"), AttributeType: types.ScalarAttributeTypeN},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
			},
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
				{
					IndexName: aws.String("budget_request_id-index"),
					KeySchema: []types.KeySchemaElement{
						{AttributeName: aws.String("budget_request_id"), KeyType: types.KeyTypeHash},
					},
					Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
				},
			},
			BillingMode: types.BillingModePayPerRequest,
		},
		simpleTable(t.Counters, "name", types.ScalarAttributeTypeS),
	}
}

func simpleTable(name, key string, keyType types.ScalarAttributeType) *dynamodb.CreateTableInput {
	return &dynamodb.CreateTableInput{
		TableName: aws.String(name),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String(key), AttributeType: keyType},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(key), KeyType: types.KeyTypeHash},
		},
		BillingMode: types.BillingModePayPerRequest,
	}
}

// EnsureTables creates every missing table and waits until it is active.
// Existing tables are left as they are.
func EnsureTables(ctx context.Context, api TableAPI, t appconfig.TablesConfig) error {
	for _, in := range TableDefinitions(t) {
		name := aws.ToString(in.TableName)

		_, err := api.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: in.TableName})
		if err == nil {
			continue
		}
		var notFound *types.ResourceNotFoundException
		if !errors.As(err, &notFound) {
			return fmt.Errorf("describe table %s: %w", name, err)
		}

		log.Printf("[dynamodb][bootstrap] creating table name=%s", name)
		if _, err := api.CreateTable(ctx, in); err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				continue
			}
			return fmt.Errorf("create table %s: %w", name, err)
		}

		waiter := dynamodb.NewTableExistsWaiter(api)
		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: in.TableName}, tableReadyTimeout); err != nil {
			return fmt.Errorf("wait table %s: %w", name, err)
		}
		log.Printf("[dynamodb][bootstrap] table ready name=%s", name)
	}
	return nil
}

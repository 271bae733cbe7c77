package repository

import (
	"context"

	"orcamento_api/internal/domain/entities"
	"orcamento_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCostFactorsTableName = "cost_factors"

// Values are stored as a map keyed by wire name, so adding a factor does not
// need a table migration: records missing a key load it from the defaults.
type costFactorsItem struct {
	ID        int64              `dynamodbav:"id"`
	Version   int64              `dynamodbav:"version"`
	UpdatedAt string             `dynamodbav:"updated_at"`
	Values    map[string]float64 `dynamodbav:"values"`
}

// CostFactorsDynamoRepository keeps the singleton cost factors record.
//
// Table requirements:
//   - PK: id (number); only id = 1 is ever written

type CostFactorsDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ICostFactorsRepository = (*CostFactorsDynamoRepository)(nil)

func NewCostFactorsDynamoRepository(ddb DynamoDBAPI, table string) *CostFactorsDynamoRepository {
	return &CostFactorsDynamoRepository{ddb: ddb, tableName: tableName(table, defaultCostFactorsTableName)}
}

func (r *CostFactorsDynamoRepository) Get(ctx context.Context) (entities.CostFactors, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": numberAttr(entities.CostFactorsID),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CostFactors{}, false, err
	}
	if len(out.Item) == 0 {
		return entities.CostFactors{}, false, nil
	}

	var it costFactorsItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CostFactors{}, false, err
	}
	return fromCostFactorsItem(it), true, nil
}

// CreateIfAbsent writes f unless a record exists. When another writer got
// there first the stored record is returned instead.
func (r *CostFactorsDynamoRepository) CreateIfAbsent(ctx context.Context, f entities.CostFactors) (entities.CostFactors, error) {
	f.ID = entities.CostFactorsID
	err := r.put(ctx, f, "attribute_not_exists(#id)", map[string]string{"#id": "id"}, nil)
	if err == nil {
		return f, nil
	}
	if !isConditionalCheckFailed(err) {
		return entities.CostFactors{}, err
	}

	stored, found, err := r.Get(ctx)
	if err != nil {
		return entities.CostFactors{}, err
	}
	if !found {
		// Only possible if the record was deleted out of band in between.
		return entities.CostFactors{}, interfaces.ErrCostFactorsVersionConflict
	}
	return stored, nil
}

func (r *CostFactorsDynamoRepository) Replace(ctx context.Context, f entities.CostFactors, expectedVersion int64) (entities.CostFactors, error) {
	f.ID = entities.CostFactorsID

	var err error
	if expectedVersion == 0 {
		err = r.put(ctx, f, "attribute_not_exists(#id)", map[string]string{"#id": "id"}, nil)
	} else {
		err = r.put(ctx, f, "#version = :expected",
			map[string]string{"#version": "version"},
			map[string]types.AttributeValue{":expected": numberAttr(expectedVersion)},
		)
	}
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.CostFactors{}, interfaces.ErrCostFactorsVersionConflict
		}
		return entities.CostFactors{}, err
	}
	return f, nil
}

func (r *CostFactorsDynamoRepository) put(ctx context.Context, f entities.CostFactors, condition string, names map[string]string, values map[string]types.AttributeValue) error {
	av, err := attributevalue.MarshalMap(toCostFactorsItem(f))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(r.tableName),
		Item:                      av,
		ConditionExpression:       aws.String(condition),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	return err
}

func toCostFactorsItem(f entities.CostFactors) costFactorsItem {
	return costFactorsItem{
		ID:        f.ID,
		Version:   f.Version,
		UpdatedAt: formatTime(f.UpdatedAt),
		Values:    f.Values(),
	}
}

func fromCostFactorsItem(it costFactorsItem) entities.CostFactors {
	f := entities.DefaultCostFactors()
	f.SetValues(it.Values)
	f.ID = it.ID
	f.Version = it.Version
	f.UpdatedAt = parseTime(it.UpdatedAt)
	return f
}

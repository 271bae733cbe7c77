package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCountersTableName = "counters"

// Sequence hands out increasing integer ids from the counters table.
//
// Table requirements:
//   - PK: name (string)
//
// Each call is a single atomic ADD, so concurrent callers never share an id.
// Ids burned by failed writes are not reused.
type Sequence struct {
	ddb       DynamoDBAPI
	tableName string
}

func NewSequence(ddb DynamoDBAPI, table string) *Sequence {
	return &Sequence{ddb: ddb, tableName: tableName(table, defaultCountersTableName)}
}

func (s *Sequence) Next(ctx context.Context, name string) (int64, error) {
	out, err := s.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: name},
		},
		UpdateExpression: aws.String("ADD #value :one"),
		ExpressionAttributeNames: map[string]string{
			"#value": "value",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": numberAttr(1),
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}

	v, ok := out.Attributes["value"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("counter %q: missing value in update response", name)
	}
	return strconv.ParseInt(v.Value, 10, 64)
}

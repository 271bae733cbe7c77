package repository

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestSequence_Next(t *testing.T) {
	t.Run("atomic add on the named counter", func(t *testing.T) {
		ddb := &fakeDynamo{updateItem: counterHook()}
		seq := NewSequence(ddb, "")

		for want := int64(1); want <= 3; want++ {
			got, err := seq.Next(context.Background(), "budget_requests")
			if err != nil || got != want {
				t.Fatalf("expected %d, got %d err=%v", want, got, err)
			}
		}

		in := ddb.updates[0]
		if aws.ToString(in.TableName) != "counters" {
			t.Fatalf("expected default counters table, got %s", aws.ToString(in.TableName))
		}
		if aws.ToString(in.UpdateExpression) != "ADD #value :one" || in.ReturnValues != types.ReturnValueUpdatedNew {
			t.Fatalf("unexpected update: %s / %s", aws.ToString(in.UpdateExpression), in.ReturnValues)
		}
		if key := in.Key["name"].(*types.AttributeValueMemberS).Value; key != "budget_requests" {
			t.Fatalf("expected counter name budget_requests, got %s", key)
		}
	})

	t.Run("missing value attribute", func(t *testing.T) {
		ddb := &fakeDynamo{updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return &dynamodb.UpdateItemOutput{}, nil
		}}
		if _, err := NewSequence(ddb, "c").Next(context.Background(), "x"); err == nil {
			t.Fatalf("expected error")
		}
	})
}

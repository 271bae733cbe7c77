package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"orcamento_api/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func sampleBudgetRequest() entities.BudgetRequest {
	created := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	return entities.BudgetRequest{
		Client: entities.ClientContact{Name: "Maria", Email: "maria@example.com", Phone: "11999999999"},
		Inputs: entities.BudgetInputs{
			Area:            100,
			WallType:        entities.WallTypeDrywall,
			FinishQuality:   entities.FinishQualityPremium,
			WallFinish:      entities.WallFinishPaint,
			Bathrooms:       2,
			CeilingType:     entities.CeilingTypePlaster,
			RoofType:        entities.RoofTypeMetal,
			FoundationType:  entities.FoundationTypeDeep,
			WastePercentage: 5,
		},
		TotalBudget: 190000,
		Status:      entities.BudgetRequestStatusPending,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
}

func marshalBudgetRequest(t *testing.T, br entities.BudgetRequest) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(toBudgetRequestItem(br))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return av
}

func TestBudgetRequestDynamoRepository_Create(t *testing.T) {
	ddb := &fakeDynamo{updateItem: counterHook()}
	repo := NewBudgetRequestDynamoRepository(ddb, NewSequence(ddb, "counters"), "")

	got, err := repo.Create(context.Background(), sampleBudgetRequest())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.ID != 1 {
		t.Fatalf("expected id from counter, got %d", got.ID)
	}

	if len(ddb.puts) != 1 {
		t.Fatalf("expected one put, got %d", len(ddb.puts))
	}
	put := ddb.puts[0]
	if aws.ToString(put.TableName) != "budget_requests" || aws.ToString(put.ConditionExpression) != "attribute_not_exists(#id)" {
		t.Fatalf("unexpected put: table=%s cond=%s", aws.ToString(put.TableName), aws.ToString(put.ConditionExpression))
	}
	if put.Item["created_at"].(*types.AttributeValueMemberS).Value != "2024-05-01T12:30:00.000000000Z" {
		t.Fatalf("expected fixed-width created_at, got %v", put.Item["created_at"])
	}
	if put.Item["wall_type"].(*types.AttributeValueMemberS).Value != "drywall" {
		t.Fatalf("expected inputs snapshot in item, got %v", put.Item["wall_type"])
	}
}

func TestBudgetRequestDynamoRepository_GetByID(t *testing.T) {
	t.Run("missing returns zero value", func(t *testing.T) {
		repo := NewBudgetRequestDynamoRepository(&fakeDynamo{}, nil, "")
		got, err := repo.GetByID(context.Background(), 5)
		if err != nil || got.ID != 0 {
			t.Fatalf("expected zero value, got %+v err=%v", got, err)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		stored := sampleBudgetRequest()
		stored.ID = 5
		ddb := &fakeDynamo{getItem: func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			if in.Key["id"].(*types.AttributeValueMemberN).Value != "5" {
				t.Fatalf("unexpected key: %v", in.Key)
			}
			return &dynamodb.GetItemOutput{Item: marshalBudgetRequest(t, stored)}, nil
		}}
		repo := NewBudgetRequestDynamoRepository(ddb, nil, "")

		got, err := repo.GetByID(context.Background(), 5)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got.ID != 5 || got.Client != stored.Client || got.Inputs != stored.Inputs || !got.CreatedAt.Equal(stored.CreatedAt) {
			t.Fatalf("round trip mismatch: %+v", got)
		}
	})
}

func TestBudgetRequestDynamoRepository_UpdateStatus(t *testing.T) {
	t.Run("unknown id leaves the table untouched", func(t *testing.T) {
		ddb := &fakeDynamo{updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			if aws.ToString(in.ConditionExpression) != "attribute_exists(#id)" {
				t.Fatalf("expected existence condition, got %s", aws.ToString(in.ConditionExpression))
			}
			return nil, conditionalCheckFailed()
		}}
		repo := NewBudgetRequestDynamoRepository(ddb, nil, "")

		got, err := repo.UpdateStatus(context.Background(), 42, entities.BudgetRequestStatusApproved, "")
		if err != nil || got.ID != 0 {
			t.Fatalf("expected zero value without error, got %+v err=%v", got, err)
		}
	})

	t.Run("returns the updated record", func(t *testing.T) {
		updated := sampleBudgetRequest()
		updated.ID = 1
		updated.Status = entities.BudgetRequestStatusApproved
		updated.Notes = "ok"
		ddb := &fakeDynamo{updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			if in.ExpressionAttributeValues[":status"].(*types.AttributeValueMemberS).Value != "APPROVED" {
				t.Fatalf("unexpected status value: %v", in.ExpressionAttributeValues[":status"])
			}
			return &dynamodb.UpdateItemOutput{Attributes: marshalBudgetRequest(t, updated)}, nil
		}}
		repo := NewBudgetRequestDynamoRepository(ddb, nil, "")

		got, err := repo.UpdateStatus(context.Background(), 1, entities.BudgetRequestStatusApproved, "ok")
		if err != nil || got.Status != entities.BudgetRequestStatusApproved || got.Notes != "ok" {
			t.Fatalf("unexpected result: %+v err=%v", got, err)
		}
	})

	t.Run("other errors propagate", func(t *testing.T) {
		ddb := &fakeDynamo{updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return nil, errors.New("throttled")
		}}
		repo := NewBudgetRequestDynamoRepository(ddb, nil, "")
		if _, err := repo.UpdateStatus(context.Background(), 1, entities.BudgetRequestStatusApproved, ""); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestBudgetRequestDynamoRepository_Queries(t *testing.T) {
	t.Run("list by status uses the index newest first", func(t *testing.T) {
		br := sampleBudgetRequest()
		br.ID = 3
		ddb := &fakeDynamo{query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{marshalBudgetRequest(t, br)}}, nil
		}}
		repo := NewBudgetRequestDynamoRepository(ddb, nil, "")

		got, err := repo.ListByStatus(context.Background(), entities.BudgetRequestStatusPending)
		if err != nil || len(got) != 1 || got[0].ID != 3 {
			t.Fatalf("unexpected result: %+v err=%v", got, err)
		}
		q := ddb.queries[0]
		if aws.ToString(q.IndexName) != "status-created_at-index" || aws.ToBool(q.ScanIndexForward) {
			t.Fatalf("unexpected query: index=%s forward=%v", aws.ToString(q.IndexName), aws.ToBool(q.ScanIndexForward))
		}
	})

	t.Run("list scans every page", func(t *testing.T) {
		first := sampleBudgetRequest()
		first.ID = 1
		second := sampleBudgetRequest()
		second.ID = 2
		ddb := &fakeDynamo{scan: func(in *dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
			if in.ExclusiveStartKey == nil {
				return &dynamodb.ScanOutput{
					Items:            []map[string]types.AttributeValue{marshalBudgetRequest(t, first)},
					LastEvaluatedKey: map[string]types.AttributeValue{"id": numberAttr(1)},
				}, nil
			}
			return &dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{marshalBudgetRequest(t, second)}}, nil
		}}
		repo := NewBudgetRequestDynamoRepository(ddb, nil, "")

		got, err := repo.List(context.Background())
		if err != nil || len(got) != 2 {
			t.Fatalf("expected two requests across pages, got %d err=%v", len(got), err)
		}
	})

	t.Run("count selects COUNT", func(t *testing.T) {
		ddb := &fakeDynamo{query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			if in.Select != types.SelectCount {
				t.Fatalf("expected COUNT select, got %s", in.Select)
			}
			return &dynamodb.QueryOutput{Count: 4}, nil
		}}
		repo := NewBudgetRequestDynamoRepository(ddb, nil, "")

		got, err := repo.CountByStatus(context.Background(), entities.BudgetRequestStatusRejected)
		if err != nil || got != 4 {
			t.Fatalf("expected 4, got %d err=%v", got, err)
		}
	})

	t.Run("sum of nothing is zero", func(t *testing.T) {
		repo := NewBudgetRequestDynamoRepository(&fakeDynamo{}, nil, "")
		got, err := repo.SumTotalBudgetByStatus(context.Background(), entities.BudgetRequestStatusApproved)
		if err != nil || got != 0 {
			t.Fatalf("expected 0, got %v err=%v", got, err)
		}
	})

	t.Run("sum adds total_budget", func(t *testing.T) {
		ddb := &fakeDynamo{query: func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{
				{"total_budget": &types.AttributeValueMemberN{Value: "1000.5"}},
				{"total_budget": &types.AttributeValueMemberN{Value: "2000"}},
			}}, nil
		}}
		repo := NewBudgetRequestDynamoRepository(ddb, nil, "")

		got, err := repo.SumTotalBudgetByStatus(context.Background(), entities.BudgetRequestStatusApproved)
		if err != nil || got != 3000.5 {
			t.Fatalf("expected 3000.5, got %v err=%v", got, err)
		}
	})
}

package repository

import (
	"context"
	"testing"
	"time"

	"orcamento_api/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestSessionDynamoStore(t *testing.T) {
	table := map[string]map[string]types.AttributeValue{}
	ddb := &fakeDynamo{
		putItem: func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			table[in.Item["token"].(*types.AttributeValueMemberS).Value] = in.Item
			return &dynamodb.PutItemOutput{}, nil
		},
		getItem: func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{Item: table[in.Key["token"].(*types.AttributeValueMemberS).Value]}, nil
		},
		deleteItem: func(in *dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error) {
			delete(table, in.Key["token"].(*types.AttributeValueMemberS).Value)
			return &dynamodb.DeleteItemOutput{}, nil
		},
	}
	store := NewSessionDynamoStore(ddb, "")
	ctx := context.Background()
	created := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	if err := store.Save(ctx, entities.Session{Token: "tok", Username: "admin", CreatedAt: created}); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Get(ctx, "tok")
	if err != nil || got.Username != "admin" || !got.CreatedAt.Equal(created) {
		t.Fatalf("unexpected session: %+v err=%v", got, err)
	}

	if err := store.Delete(ctx, "tok"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := store.Delete(ctx, "tok"); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	got, err = store.Get(ctx, "tok")
	if err != nil || got.Token != "" {
		t.Fatalf("expected no session after delete, got %+v err=%v", got, err)
	}
}

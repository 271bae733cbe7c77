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

const defaultSessionsTableName = "sessions"

type sessionItem struct {
	Token     string `dynamodbav:"token"`
	Username  string `dynamodbav:"username"`
	CreatedAt string `dynamodbav:"created_at"`
}

// SessionDynamoStore keeps bearer tokens in DynamoDB so every API instance
// sees the same sessions.
//
// Table requirements:
//   - PK: token (string)
type SessionDynamoStore struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ISessionStore = (*SessionDynamoStore)(nil)

func NewSessionDynamoStore(ddb DynamoDBAPI, table string) *SessionDynamoStore {
	return &SessionDynamoStore{ddb: ddb, tableName: tableName(table, defaultSessionsTableName)}
}

func (s *SessionDynamoStore) Save(ctx context.Context, session entities.Session) error {
	av, err := attributevalue.MarshalMap(sessionItem{
		Token:     session.Token,
		Username:  session.Username,
		CreatedAt: formatTime(session.CreatedAt),
	})
	if err != nil {
		return err
	}

	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	return err
}

func (s *SessionDynamoStore) Get(ctx context.Context, token string) (entities.Session, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"token": &types.AttributeValueMemberS{Value: token},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Session{}, err
	}
	if len(out.Item) == 0 {
		return entities.Session{}, nil
	}

	var it sessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Session{}, err
	}
	return entities.Session{Token: it.Token, Username: it.Username, CreatedAt: parseTime(it.CreatedAt)}, nil
}

func (s *SessionDynamoStore) Delete(ctx context.Context, token string) error {
	_, err := s.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"token": &types.AttributeValueMemberS{Value: token},
		},
	})
	return err
}

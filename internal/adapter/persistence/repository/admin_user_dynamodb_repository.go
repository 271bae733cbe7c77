package repository

import (
	"context"
	"time"

	"orcamento_api/internal/domain/entities"
	"orcamento_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAdminUsersTableName = "admin_users"
	adminUsersCounter          = "admin_users"
)

type adminUserItem struct {
	Username           string `dynamodbav:"username"`
	ID                 int64  `dynamodbav:"id"`
	PasswordHash       string `dynamodbav:"password_hash"`
	Active             bool   `dynamodbav:"active"`
	MustChangePassword bool   `dynamodbav:"must_change_password"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
}

// AdminUserDynamoRepository persists admin accounts.
//
// Table requirements:
//   - PK: username (string)

type AdminUserDynamoRepository struct {
	ddb       DynamoDBAPI
	seq       *Sequence
	tableName string
	now       func() time.Time
}

var _ interfaces.IAdminUserRepository = (*AdminUserDynamoRepository)(nil)

func NewAdminUserDynamoRepository(ddb DynamoDBAPI, seq *Sequence, table string) *AdminUserDynamoRepository {
	return &AdminUserDynamoRepository{
		ddb:       ddb,
		seq:       seq,
		tableName: tableName(table, defaultAdminUsersTableName),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (r *AdminUserDynamoRepository) GetByUsername(ctx context.Context, username string) (entities.AdminUser, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"username": &types.AttributeValueMemberS{Value: username},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.AdminUser{}, err
	}
	if len(out.Item) == 0 {
		return entities.AdminUser{}, nil
	}
	return unmarshalAdminUser(out.Item)
}

func (r *AdminUserDynamoRepository) CreateIfAbsent(ctx context.Context, u entities.AdminUser) (bool, error) {
	id, err := r.seq.Next(ctx, adminUsersCounter)
	if err != nil {
		return false, err
	}
	u.ID = id

	av, err := attributevalue.MarshalMap(toAdminUserItem(u))
	if err != nil {
		return false, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#username)"),
		ExpressionAttributeNames: map[string]string{
			"#username": "username",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// UpdatePassword returns a zero-value AdminUser when username does not exist.
func (r *AdminUserDynamoRepository) UpdatePassword(ctx context.Context, username, passwordHash string, mustChange bool) (entities.AdminUser, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"username": &types.AttributeValueMemberS{Value: username},
		},
		UpdateExpression:    aws.String("SET #password_hash = :password_hash, #must_change_password = :must_change, #updated_at = :updated_at"),
		ConditionExpression: aws.String("attribute_exists(#username)"),
		ExpressionAttributeNames: map[string]string{
			"#username":             "username",
			"#password_hash":        "password_hash",
			"#must_change_password": "must_change_password",
			"#updated_at":           "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":password_hash": &types.AttributeValueMemberS{Value: passwordHash},
			":must_change":   &types.AttributeValueMemberBOOL{Value: mustChange},
			":updated_at":    &types.AttributeValueMemberS{Value: formatTime(r.now())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.AdminUser{}, nil
		}
		return entities.AdminUser{}, err
	}
	return unmarshalAdminUser(out.Attributes)
}

func unmarshalAdminUser(raw map[string]types.AttributeValue) (entities.AdminUser, error) {
	var it adminUserItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.AdminUser{}, err
	}
	return entities.AdminUser{
		ID:                 it.ID,
		Username:           it.Username,
		PasswordHash:       it.PasswordHash,
		Active:             it.Active,
		MustChangePassword: it.MustChangePassword,
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}, nil
}

func toAdminUserItem(u entities.AdminUser) adminUserItem {
	return adminUserItem{
		Username:           u.Username,
		ID:                 u.ID,
		PasswordHash:       u.PasswordHash,
		Active:             u.Active,
		MustChangePassword: u.MustChangePassword,
		CreatedAt:          formatTime(u.CreatedAt),
		UpdatedAt:          formatTime(u.UpdatedAt),
	}
}

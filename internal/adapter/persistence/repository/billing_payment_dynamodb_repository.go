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

const (
	defaultPaymentsTableName     = "payments"
	paymentsBudgetRequestIDIndex = "budget_request_id-index"
)

type billingPaymentItem struct {
	ID              string                 `dynamodbav:"id"`
	BudgetRequestID int64                  `dynamodbav:"budget_request_id"`
	Amount          float64                `dynamodbav:"amount"`
	Date            string                 `dynamodbav:"date"`
	Status          string                 `dynamodbav:"status"`
	MPPayload       map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw    string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// BillingPaymentDynamoRepository persists BillingPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: budget_request_id-index (PK: budget_request_id, number)

type BillingPaymentDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IBillingPaymentRepository = (*BillingPaymentDynamoRepository)(nil)

func NewBillingPaymentDynamoRepository(ddb DynamoDBAPI, table string) *BillingPaymentDynamoRepository {
	return &BillingPaymentDynamoRepository{
		ddb:       ddb,
		tableName: tableName(table, defaultPaymentsTableName),
	}
}

func (r *BillingPaymentDynamoRepository) Create(ctx context.Context, p entities.BillingPayment) (entities.BillingPayment, error) {
	av, err := attributevalue.MarshalMap(toBillingPaymentItem(p))
	if err != nil {
		return entities.BillingPayment{}, err
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
		return entities.BillingPayment{}, err
	}
	return p, nil
}

func (r *BillingPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.BillingPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BillingPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.BillingPayment{}, nil
	}

	var it billingPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BillingPayment{}, err
	}
	return fromBillingPaymentItem(it), nil
}

func (r *BillingPaymentDynamoRepository) ListByBudgetRequestID(ctx context.Context, budgetRequestID int64) ([]entities.BillingPayment, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsBudgetRequestIDIndex),
		KeyConditionExpression: aws.String("budget_request_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": numberAttr(budgetRequestID),
		},
	})

	items := make([]entities.BillingPayment, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it billingPaymentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromBillingPaymentItem(it))
		}
	}
	return items, nil
}

func toBillingPaymentItem(p entities.BillingPayment) billingPaymentItem {
	return billingPaymentItem{
		ID:              p.ID,
		BudgetRequestID: p.BudgetRequestID,
		Amount:          p.Amount,
		Date:            formatTime(p.Date),
		Status:          string(p.Status),
		MPPayload:       p.MPPayload,
		MPPayloadRaw:    string(p.MPPayloadRaw),
	}
}

func fromBillingPaymentItem(it billingPaymentItem) entities.BillingPayment {
	return entities.BillingPayment{
		ID:              it.ID,
		BudgetRequestID: it.BudgetRequestID,
		Amount:          it.Amount,
		Date:            parseTime(it.Date),
		Status:          entities.PaymentStatus(it.Status),
		MPPayload:       it.MPPayload,
		MPPayloadRaw:    []byte(it.MPPayloadRaw),
	}
}

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
	defaultBudgetRequestsTableName = "budget_requests"
	budgetRequestsStatusIndex      = "status-created_at-index"
	budgetRequestsCounter          = "budget_requests"
)

type budgetRequestItem struct {
	ID          int64  `dynamodbav:"id"`
	ClientName  string `dynamodbav:"client_name"`
	ClientEmail string `dynamodbav:"client_email"`
	ClientPhone string `dynamodbav:"client_phone,omitempty"`

	Area            float64 `dynamodbav:"area"`
	WallType        string  `dynamodbav:"wall_type"`
	FinishQuality   string  `dynamodbav:"finish_quality"`
	WallFinish      string  `dynamodbav:"wall_finish"`
	FrameArea       float64 `dynamodbav:"frame_area"`
	Bathrooms       int     `dynamodbav:"bathrooms"`
	FloorArea       float64 `dynamodbav:"floor_area"`
	CeilingArea     float64 `dynamodbav:"ceiling_area"`
	CeilingType     string  `dynamodbav:"ceiling_type"`
	RoofType        string  `dynamodbav:"roof_type"`
	RoofArea        float64 `dynamodbav:"roof_area"`
	FoundationType  string  `dynamodbav:"foundation_type"`
	WastePercentage float64 `dynamodbav:"waste_percentage"`

	TotalBudget float64 `dynamodbav:"total_budget"`
	Status      string  `dynamodbav:"status"`
	Notes       string  `dynamodbav:"notes"`
	CreatedAt   string  `dynamodbav:"created_at"`
	UpdatedAt   string  `dynamodbav:"updated_at"`
}

// BudgetRequestDynamoRepository persists BudgetRequest entities in DynamoDB.
//
// Table requirements:
//   - PK: id (number)
//   - GSI: status-created_at-index (PK: status, SK: created_at)

type BudgetRequestDynamoRepository struct {
	ddb       DynamoDBAPI
	seq       *Sequence
	tableName string
	now       func() time.Time
}

var _ interfaces.IBudgetRequestRepository = (*BudgetRequestDynamoRepository)(nil)

func NewBudgetRequestDynamoRepository(ddb DynamoDBAPI, seq *Sequence, table string) *BudgetRequestDynamoRepository {
	return &BudgetRequestDynamoRepository{
		ddb:       ddb,
		seq:       seq,
		tableName: tableName(table, defaultBudgetRequestsTableName),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (r *BudgetRequestDynamoRepository) Create(ctx context.Context, br entities.BudgetRequest) (entities.BudgetRequest, error) {
	id, err := r.seq.Next(ctx, budgetRequestsCounter)
	if err != nil {
		return entities.BudgetRequest{}, err
	}
	br.ID = id
	if br.CreatedAt.IsZero() {
		br.CreatedAt = r.now()
	}
	if br.UpdatedAt.IsZero() {
		br.UpdatedAt = br.CreatedAt
	}
	if br.Status == "" {
		br.Status = entities.BudgetRequestStatusPending
	}

	av, err := attributevalue.MarshalMap(toBudgetRequestItem(br))
	if err != nil {
		return entities.BudgetRequest{}, err
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
		return entities.BudgetRequest{}, err
	}
	return fromBudgetRequestItem(toBudgetRequestItem(br)), nil
}

func (r *BudgetRequestDynamoRepository) GetByID(ctx context.Context, id int64) (entities.BudgetRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": numberAttr(id),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BudgetRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.BudgetRequest{}, nil
	}
	return unmarshalBudgetRequest(out.Item)
}

func (r *BudgetRequestDynamoRepository) List(ctx context.Context) ([]entities.BudgetRequest, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	items := make([]entities.BudgetRequest, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			br, err := unmarshalBudgetRequest(raw)
			if err != nil {
				return nil, err
			}
			items = append(items, br)
		}
	}
	return items, nil
}

func (r *BudgetRequestDynamoRepository) ListByStatus(ctx context.Context, status entities.BudgetRequestStatus) ([]entities.BudgetRequest, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, r.statusQuery(status))

	items := make([]entities.BudgetRequest, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			br, err := unmarshalBudgetRequest(raw)
			if err != nil {
				return nil, err
			}
			items = append(items, br)
		}
	}
	return items, nil
}

// UpdateStatus replaces status and notes. An unknown id leaves the table
// untouched and returns a zero-value BudgetRequest.
func (r *BudgetRequestDynamoRepository) UpdateStatus(ctx context.Context, id int64, status entities.BudgetRequestStatus, notes string) (entities.BudgetRequest, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": numberAttr(id),
		},
		UpdateExpression:    aws.String("SET #status = :status, #notes = :notes, #updated_at = :updated_at"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#notes":      "notes",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":notes":      &types.AttributeValueMemberS{Value: notes},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(r.now())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.BudgetRequest{}, nil
		}
		return entities.BudgetRequest{}, err
	}
	return unmarshalBudgetRequest(out.Attributes)
}

func (r *BudgetRequestDynamoRepository) CountByStatus(ctx context.Context, status entities.BudgetRequestStatus) (int64, error) {
	in := r.statusQuery(status)
	in.Select = types.SelectCount

	var count int64
	p := dynamodb.NewQueryPaginator(r.ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		count += int64(page.Count)
	}
	return count, nil
}

// SumTotalBudgetByStatus returns 0 when no request has status.
func (r *BudgetRequestDynamoRepository) SumTotalBudgetByStatus(ctx context.Context, status entities.BudgetRequestStatus) (float64, error) {
	in := r.statusQuery(status)
	in.ProjectionExpression = aws.String("#total_budget")
	in.ExpressionAttributeNames["#total_budget"] = "total_budget"

	var total float64
	p := dynamodb.NewQueryPaginator(r.ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		for _, raw := range page.Items {
			var it struct {
				TotalBudget float64 `dynamodbav:"total_budget"`
			}
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return 0, err
			}
			total += it.TotalBudget
		}
	}
	return total, nil
}

func (r *BudgetRequestDynamoRepository) statusQuery(status entities.BudgetRequestStatus) *dynamodb.QueryInput {
	return &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(budgetRequestsStatusIndex),
		KeyConditionExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ScanIndexForward: aws.Bool(false),
	}
}

func unmarshalBudgetRequest(raw map[string]types.AttributeValue) (entities.BudgetRequest, error) {
	var it budgetRequestItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.BudgetRequest{}, err
	}
	return fromBudgetRequestItem(it), nil
}

func toBudgetRequestItem(br entities.BudgetRequest) budgetRequestItem {
	in := br.Inputs
	return budgetRequestItem{
		ID:              br.ID,
		ClientName:      br.Client.Name,
		ClientEmail:     br.Client.Email,
		ClientPhone:     br.Client.Phone,
		Area:            in.Area,
		WallType:        string(in.WallType),
		FinishQuality:   string(in.FinishQuality),
		WallFinish:      string(in.WallFinish),
		FrameArea:       in.FrameArea,
		Bathrooms:       in.Bathrooms,
		FloorArea:       in.FloorArea,
		CeilingArea:     in.CeilingArea,
		CeilingType:     string(in.CeilingType),
		RoofType:        string(in.RoofType),
		RoofArea:        in.RoofArea,
		FoundationType:  string(in.FoundationType),
		WastePercentage: in.WastePercentage,
		TotalBudget:     br.TotalBudget,
		Status:          string(br.Status),
		Notes:           br.Notes,
		CreatedAt:       formatTime(br.CreatedAt),
		UpdatedAt:       formatTime(br.UpdatedAt),
	}
}

func fromBudgetRequestItem(it budgetRequestItem) entities.BudgetRequest {
	return entities.BudgetRequest{
		ID: it.ID,
		Client: entities.ClientContact{
			Name:  it.ClientName,
			Email: it.ClientEmail,
			Phone: it.ClientPhone,
		},
		Inputs: entities.BudgetInputs{
			Area:            it.Area,
			WallType:        entities.WallType(it.WallType),
			FinishQuality:   entities.FinishQuality(it.FinishQuality),
			WallFinish:      entities.WallFinish(it.WallFinish),
			FrameArea:       it.FrameArea,
			Bathrooms:       it.Bathrooms,
			FloorArea:       it.FloorArea,
			CeilingArea:     it.CeilingArea,
			CeilingType:     entities.CeilingType(it.CeilingType),
			RoofType:        entities.RoofType(it.RoofType),
			RoofArea:        it.RoofArea,
			FoundationType:  entities.FoundationType(it.FoundationType),
			WastePercentage: it.WastePercentage,
		},
		TotalBudget: it.TotalBudget,
		Status:      entities.BudgetRequestStatus(it.Status),
		Notes:       it.Notes,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}

package repository

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/tino-ryan/restaurant-app/internal/domain/entities"
	"github.com/tino-ryan/restaurant-app/internal/usecase/interfaces"
)

const (
	defaultWaiterCallsTableName = "waiter_calls"
	waiterCallsStatusIndex      = "status-index"
)

type waiterCallItem struct {
	ID        string `dynamodbav:"id"`
	Table     string `dynamodbav:"table"`
	Timestamp string `dynamodbav:"timestamp"`
	Status    string `dynamodbav:"status"`
}

// WaiterCallDynamoRepository persists WaiterCall entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: status-index (PK: status)

type WaiterCallDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWaiterCallRepository = (*WaiterCallDynamoRepository)(nil)

func NewWaiterCallDynamoRepository(ddb *dynamodb.Client) *WaiterCallDynamoRepository {
	return &WaiterCallDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WAITER_CALLS_TABLE", defaultWaiterCallsTableName),
	}
}

func (r *WaiterCallDynamoRepository) Create(ctx context.Context, c entities.WaiterCall) (entities.WaiterCall, error) {
	it := waiterCallItem{
		ID:        c.ID,
		Table:     c.Table,
		Timestamp: c.Timestamp.UTC().Format(time.RFC3339Nano),
		Status:    string(c.Status),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.WaiterCall{}, err
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
		return entities.WaiterCall{}, wrapStoreErr(err)
	}
	return c, nil
}

func (r *WaiterCallDynamoRepository) GetByID(ctx context.Context, id string) (entities.WaiterCall, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WaiterCall{}, wrapStoreErr(err)
	}
	if len(out.Item) == 0 {
		return entities.WaiterCall{}, nil
	}

	var it waiterCallItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WaiterCall{}, err
	}
	return fromWaiterCallItem(it), nil
}

func (r *WaiterCallDynamoRepository) ListByStatus(ctx context.Context, status entities.WaiterCallStatus) ([]entities.WaiterCall, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(waiterCallsStatusIndex),
		KeyConditionExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	})
	if err != nil {
		return nil, wrapStoreErr(err)
	}

	calls := make([]entities.WaiterCall, 0, len(out.Items))
	for _, raw := range out.Items {
		var it waiterCallItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		calls = append(calls, fromWaiterCallItem(it))
	}
	return calls, nil
}

func (r *WaiterCallDynamoRepository) SetStatus(ctx context.Context, id string, status entities.WaiterCallStatus) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	})
	if err != nil {
		return wrapStoreErr(err)
	}
	return nil
}

func fromWaiterCallItem(it waiterCallItem) entities.WaiterCall {
	ts, _ := time.Parse(time.RFC3339Nano, it.Timestamp)
	return entities.WaiterCall{
		ID:        it.ID,
		Table:     it.Table,
		Timestamp: ts,
		Status:    entities.WaiterCallStatus(it.Status),
	}
}

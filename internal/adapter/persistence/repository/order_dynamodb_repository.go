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
	defaultOrdersTableName = "order"
	ordersTableIndex       = "table-index"
	ordersStatusIndex      = "status-index"
)

type orderLineItem struct {
	Name     string  `dynamodbav:"name"`
	Quantity int     `dynamodbav:"quantity"`
	Price    float64 `dynamodbav:"price"`
	Notes    string  `dynamodbav:"notes,omitempty"`
	Person   string  `dynamodbav:"person,omitempty"`
}

type orderItem struct {
	ID        string          `dynamodbav:"id"`
	Table     string          `dynamodbav:"table"`
	Items     []orderLineItem `dynamodbav:"items"`
	Status    string          `dynamodbav:"status"`
	CreatedAt string          `dynamodbav:"createdAt"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: table-index (PK: table)
//   - GSI: status-index (PK: status)
//
// "table" and "status" are DynamoDB reserved words, so every expression that
// touches them goes through ExpressionAttributeNames.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	it := toOrderItem(o)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, wrapStoreErr(err)
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, wrapStoreErr(err)
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) ListByTableAndStatus(ctx context.Context, table string, status entities.OrderStatus) ([]entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersTableIndex),
		KeyConditionExpression: aws.String("#table = :table"),
		FilterExpression:       aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#table":  "table",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":table":  &types.AttributeValueMemberS{Value: table},
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	})
	if err != nil {
		return nil, wrapStoreErr(err)
	}
	return unmarshalOrders(out.Items)
}

func (r *OrderDynamoRepository) ListByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersStatusIndex),
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
	return unmarshalOrders(out.Items)
}

func (r *OrderDynamoRepository) ListAll(ctx context.Context) ([]entities.Order, error) {
	var orders []entities.Order
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, wrapStoreErr(err)
		}
		page, err := unmarshalOrders(out.Items)
		if err != nil {
			return nil, err
		}
		orders = append(orders, page...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return orders, nil
}

// SetStatus updates the status field by id. No transition validation happens
// here; legality is the order use case's job.
func (r *OrderDynamoRepository) SetStatus(ctx context.Context, id string, status entities.OrderStatus) error {
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

func unmarshalOrders(raw []map[string]types.AttributeValue) ([]entities.Order, error) {
	orders := make([]entities.Order, 0, len(raw))
	for _, item := range raw {
		var it orderItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		orders = append(orders, fromOrderItem(it))
	}
	return orders, nil
}

func toOrderItem(o entities.Order) orderItem {
	lines := make([]orderLineItem, len(o.Items))
	for i, l := range o.Items {
		lines[i] = orderLineItem{
			Name:     l.Name,
			Quantity: l.Quantity,
			Price:    l.Price,
			Notes:    l.Notes,
			Person:   l.Person,
		}
	}
	return orderItem{
		ID:        o.ID,
		Table:     o.Table,
		Items:     lines,
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	lines := make([]entities.OrderLine, len(it.Items))
	for i, l := range it.Items {
		lines[i] = entities.OrderLine{
			Name:     l.Name,
			Quantity: l.Quantity,
			Price:    l.Price,
			Notes:    l.Notes,
			Person:   l.Person,
		}
	}
	return entities.Order{
		ID:        it.ID,
		Table:     it.Table,
		Items:     lines,
		Status:    entities.OrderStatus(it.Status),
		CreatedAt: createdAt,
	}
}

package repository

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/tino-ryan/restaurant-app/internal/domain/entities"
	"github.com/tino-ryan/restaurant-app/internal/usecase/interfaces"
)

const defaultMenuTableName = "menu"

type menuItemRecord struct {
	ID          string  `dynamodbav:"id"`
	Name        string  `dynamodbav:"name"`
	Price       float64 `dynamodbav:"price"`
	Category    string  `dynamodbav:"category"`
	Description string  `dynamodbav:"description,omitempty"`
	Allergens   string  `dynamodbav:"allergens,omitempty"`
	ImageURL    string  `dynamodbav:"imageUrl,omitempty"`
	Active      bool    `dynamodbav:"active"`
	CreatedAt   string  `dynamodbav:"createdAt"`
}

// MenuDynamoRepository persists MenuItem entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Active filtering scans with a filter expression; menus are small and the
// customer read happens far less often than order traffic.

type MenuDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMenuRepository = (*MenuDynamoRepository)(nil)

func NewMenuDynamoRepository(ddb *dynamodb.Client) *MenuDynamoRepository {
	return &MenuDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MENU_TABLE", defaultMenuTableName),
	}
}

func (r *MenuDynamoRepository) Create(ctx context.Context, m entities.MenuItem) (entities.MenuItem, error) {
	av, err := attributevalue.MarshalMap(toMenuItemRecord(m))
	if err != nil {
		return entities.MenuItem{}, err
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
		return entities.MenuItem{}, wrapStoreErr(err)
	}
	return m, nil
}

func (r *MenuDynamoRepository) GetByID(ctx context.Context, id string) (entities.MenuItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.MenuItem{}, wrapStoreErr(err)
	}
	if len(out.Item) == 0 {
		return entities.MenuItem{}, nil
	}

	var it menuItemRecord
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.MenuItem{}, err
	}
	return fromMenuItemRecord(it), nil
}

func (r *MenuDynamoRepository) ListActive(ctx context.Context) ([]entities.MenuItem, error) {
	return r.scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#active = :active"),
		ExpressionAttributeNames: map[string]string{
			"#active": "active",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":active": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
}

func (r *MenuDynamoRepository) ListAll(ctx context.Context) ([]entities.MenuItem, error) {
	return r.scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
}

func (r *MenuDynamoRepository) scan(ctx context.Context, input *dynamodb.ScanInput) ([]entities.MenuItem, error) {
	var items []entities.MenuItem
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, wrapStoreErr(err)
		}
		for _, raw := range out.Items {
			var it menuItemRecord
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromMenuItemRecord(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func (r *MenuDynamoRepository) Update(ctx context.Context, id string, fields entities.MenuItemUpdate) (entities.MenuItem, error) {
	expr := ""
	values := map[string]types.AttributeValue{}
	names := map[string]string{}

	set := func(attr string, value types.AttributeValue) {
		placeholder := "#" + attr
		if expr == "" {
			expr = "SET " + placeholder + " = :" + attr
		} else {
			expr += ", " + placeholder + " = :" + attr
		}
		names[placeholder] = attr
		values[":"+attr] = value
	}

	if fields.Name != nil {
		set("name", &types.AttributeValueMemberS{Value: *fields.Name})
	}
	if fields.Price != nil {
		set("price", &types.AttributeValueMemberN{Value: floatToString(*fields.Price)})
	}
	if fields.Category != nil {
		set("category", &types.AttributeValueMemberS{Value: *fields.Category})
	}
	if fields.Description != nil {
		set("description", &types.AttributeValueMemberS{Value: *fields.Description})
	}
	if fields.Allergens != nil {
		set("allergens", &types.AttributeValueMemberS{Value: *fields.Allergens})
	}
	if fields.ImageURL != nil {
		set("imageUrl", &types.AttributeValueMemberS{Value: *fields.ImageURL})
	}
	if expr == "" {
		return r.GetByID(ctx, id)
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.MenuItem{}, nil
		}
		return entities.MenuItem{}, wrapStoreErr(err)
	}
	if len(out.Attributes) == 0 {
		return entities.MenuItem{}, nil
	}
	var it menuItemRecord
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.MenuItem{}, err
	}
	return fromMenuItemRecord(it), nil
}

func (r *MenuDynamoRepository) SetActive(ctx context.Context, id string, active bool) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #active = :active"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#active": "active",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":active": &types.AttributeValueMemberBOOL{Value: active},
		},
	})
	if err != nil {
		return wrapStoreErr(err)
	}
	return nil
}

func toMenuItemRecord(m entities.MenuItem) menuItemRecord {
	return menuItemRecord{
		ID:          m.ID,
		Name:        m.Name,
		Price:       m.Price,
		Category:    m.Category,
		Description: m.Description,
		Allergens:   m.Allergens,
		ImageURL:    m.ImageURL,
		Active:      m.Active,
		CreatedAt:   m.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromMenuItemRecord(it menuItemRecord) entities.MenuItem {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.MenuItem{
		ID:          it.ID,
		Name:        it.Name,
		Price:       it.Price,
		Category:    it.Category,
		Description: it.Description,
		Allergens:   it.Allergens,
		ImageURL:    it.ImageURL,
		Active:      it.Active,
		CreatedAt:   createdAt,
	}
}

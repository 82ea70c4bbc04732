package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/tino-ryan/restaurant-app/internal/domain/entities"
	"github.com/tino-ryan/restaurant-app/internal/usecase/interfaces"
)

const defaultBillingTableName = "billing_complete"

type billingFactItem struct {
	ID        string `dynamodbav:"id"`
	Table     string `dynamodbav:"table"`
	TotalPaid string `dynamodbav:"totalPaid"`
	SettledAt string `dynamodbav:"settledAt"`
}

// BillingDynamoRepository persists BillingFact records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// TotalPaid is stored as a formatted string so the value round-trips exactly;
// settledAt range listings scan with a filter since facts stay small and the
// insights screens read them all anyway.

type BillingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBillingRepository = (*BillingDynamoRepository)(nil)

func NewBillingDynamoRepository(ddb *dynamodb.Client) *BillingDynamoRepository {
	return &BillingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BILLING_TABLE", defaultBillingTableName),
	}
}

func (r *BillingDynamoRepository) Create(ctx context.Context, f entities.BillingFact) (entities.BillingFact, error) {
	it := billingFactItem{
		ID:        f.ID,
		Table:     f.Table,
		TotalPaid: floatToString(f.TotalPaid),
		SettledAt: f.SettledAt.UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.BillingFact{}, err
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
		return entities.BillingFact{}, wrapStoreErr(err)
	}
	return f, nil
}

func (r *BillingDynamoRepository) ListBySettledRange(ctx context.Context, from, to time.Time) ([]entities.BillingFact, error) {
	return r.scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("settledAt >= :from AND settledAt < :to"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: from.UTC().Format(time.RFC3339Nano)},
			":to":   &types.AttributeValueMemberS{Value: to.UTC().Format(time.RFC3339Nano)},
		},
	})
}

func (r *BillingDynamoRepository) ListAll(ctx context.Context) ([]entities.BillingFact, error) {
	return r.scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
}

func (r *BillingDynamoRepository) scan(ctx context.Context, input *dynamodb.ScanInput) ([]entities.BillingFact, error) {
	var facts []entities.BillingFact
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, wrapStoreErr(err)
		}
		for _, raw := range out.Items {
			var it billingFactItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			facts = append(facts, fromBillingFactItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			return facts, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func fromBillingFactItem(it billingFactItem) entities.BillingFact {
	settledAt, _ := time.Parse(time.RFC3339Nano, it.SettledAt)
	total, _ := strconv.ParseFloat(it.TotalPaid, 64)
	return entities.BillingFact{
		ID:        it.ID,
		Table:     it.Table,
		TotalPaid: total,
		SettledAt: settledAt,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

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
	defaultReviewsTableName = "reviews"
	reviewsTableIndex       = "table-index"
)

type reviewItem struct {
	ID         string  `dynamodbav:"id"`
	Table      string  `dynamodbav:"table"`
	Rating     int     `dynamodbav:"rating"`
	ReviewNote string  `dynamodbav:"reviewNote"`
	Tip        float64 `dynamodbav:"tip"`
	Timestamp  string  `dynamodbav:"timestamp"`
}

// ReviewDynamoRepository persists Review facts in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: table-index (PK: table)
//
// Append-only: there is deliberately no update path.

type ReviewDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IReviewRepository = (*ReviewDynamoRepository)(nil)

func NewReviewDynamoRepository(ddb *dynamodb.Client) *ReviewDynamoRepository {
	return &ReviewDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REVIEWS_TABLE", defaultReviewsTableName),
	}
}

func (r *ReviewDynamoRepository) Create(ctx context.Context, rev entities.Review) (entities.Review, error) {
	it := reviewItem{
		ID:         rev.ID,
		Table:      rev.Table,
		Rating:     rev.Rating,
		ReviewNote: rev.ReviewNote,
		Tip:        rev.Tip,
		Timestamp:  rev.Timestamp.UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Review{}, err
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
		return entities.Review{}, wrapStoreErr(err)
	}
	return rev, nil
}

func (r *ReviewDynamoRepository) ListByTable(ctx context.Context, table string) ([]entities.Review, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(reviewsTableIndex),
		KeyConditionExpression: aws.String("#table = :table"),
		ExpressionAttributeNames: map[string]string{
			"#table": "table",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":table": &types.AttributeValueMemberS{Value: table},
		},
	})
	if err != nil {
		return nil, wrapStoreErr(err)
	}

	reviews := make([]entities.Review, 0, len(out.Items))
	for _, raw := range out.Items {
		var it reviewItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		reviews = append(reviews, fromReviewItem(it))
	}
	return reviews, nil
}

func fromReviewItem(it reviewItem) entities.Review {
	ts, _ := time.Parse(time.RFC3339Nano, it.Timestamp)
	return entities.Review{
		ID:         it.ID,
		Table:      it.Table,
		Rating:     it.Rating,
		ReviewNote: it.ReviewNote,
		Tip:        it.Tip,
		Timestamp:  ts,
	}
}

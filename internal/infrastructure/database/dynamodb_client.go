package database

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ConnectDynamoDB creates a DynamoDB client using environment variables.
//
// Supported env vars (local-friendly):
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID (default: local)
//   - AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
func ConnectDynamoDB() *dynamodb.Client {
	cfg, err := NewDynamoDBConfigFromEnv(context.Background())
	if err != nil {
		log.Fatalf("failed to create dynamodb config: %v", err)
	}
	return dynamodb.NewFromConfig(cfg)
}

func NewDynamoDBConfigFromEnv(ctx context.Context) (aws.Config, error) {
	region := getenvDefault("AWS_REGION", "us-east-1")
	endpoint := os.Getenv("DYNAMODB_ENDPOINT")

	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(
		getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		"",
	)

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
		config.WithCredentialsProvider(creds),
	}

	if endpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == dynamodb.ServiceID {
				return aws.Endpoint{URL: endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, config.WithEndpointResolverWithOptions(resolver))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}

// tableSpec describes one restaurant collection for local bootstrap.
type tableSpec struct {
	name string
	gsis []string
}

// EnsureLocalTables creates the restaurant collections against a local
// DynamoDB endpoint so development works without a provisioning step. Every
// table keys on id; the listed GSIs are simple string hash keys backing the
// repositories' equality-predicate queries. Existing tables are left alone.
// In AWS the tables come from infrastructure code, not from here.
func EnsureLocalTables(ctx context.Context, ddb *dynamodb.Client) error {
	specs := []tableSpec{
		{name: getenvDefault("ORDERS_TABLE", "order"), gsis: []string{"table", "status"}},
		{name: getenvDefault("REVIEWS_TABLE", "reviews"), gsis: []string{"table"}},
		{name: getenvDefault("BILLING_TABLE", "billing_complete")},
		{name: getenvDefault("WAITER_CALLS_TABLE", "waiter_calls"), gsis: []string{"status"}},
		{name: getenvDefault("MENU_TABLE", "menu")},
	}
	for _, spec := range specs {
		if err := ensureTable(ctx, ddb, spec); err != nil {
			return err
		}
	}
	return nil
}

func ensureTable(ctx context.Context, ddb *dynamodb.Client, spec tableSpec) error {
	attrs := []types.AttributeDefinition{
		{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
	}
	var gsis []types.GlobalSecondaryIndex
	for _, key := range spec.gsis {
		attrs = append(attrs, types.AttributeDefinition{
			AttributeName: aws.String(key),
			AttributeType: types.ScalarAttributeTypeS,
		})
		gsis = append(gsis, types.GlobalSecondaryIndex{
			IndexName: aws.String(key + "-index"),
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String(key), KeyType: types.KeyTypeHash},
			},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}

	input := &dynamodb.CreateTableInput{
		TableName:   aws.String(spec.name),
		BillingMode: types.BillingModePayPerRequest,
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
		AttributeDefinitions: attrs,
	}
	if len(gsis) > 0 {
		input.GlobalSecondaryIndexes = gsis
	}

	_, err := ddb.CreateTable(ctx, input)
	if err != nil {
		var exists *types.ResourceInUseException
		if errors.As(err, &exists) {
			return nil
		}
		return err
	}
	log.Printf("[database] created local table %s", spec.name)
	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

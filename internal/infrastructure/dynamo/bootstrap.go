package dynamo

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"github.com/go-api-posts/internal/config"
)

type tableCreator interface {
	CreateTable(ctx context.Context, in *dynamodb.CreateTableInput, opts ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

// Bootstrap creates the posts table and the title lock table if they don't
// already exist. Safe to call on every startup.
func Bootstrap(ctx context.Context, client tableCreator, tables config.DynamoTables, log *zap.Logger) error {
	if err := createTable(ctx, client, log, &dynamodb.CreateTableInput{
		TableName:   aws.String(tables.Posts),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String(attrPostID), AttributeType: types.ScalarAttributeTypeN},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(attrPostID), KeyType: types.KeyTypeHash},
		},
	}); err != nil {
		return err
	}

	return createTable(ctx, client, log, &dynamodb.CreateTableInput{
		TableName:   aws.String(tables.PostTitles),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String(attrTitle), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(attrTitle), KeyType: types.KeyTypeHash},
		},
	})
}

func createTable(ctx context.Context, client tableCreator, log *zap.Logger, input *dynamodb.CreateTableInput) error {
	table := aws.ToString(input.TableName)
	_, err := client.CreateTable(ctx, input)
	if err == nil {
		log.Info("created table", zap.String("table", table))
		return nil
	}
	// ResourceInUseException means the table already exists.
	var riue *types.ResourceInUseException
	if errors.As(err, &riue) {
		log.Debug("table exists", zap.String("table", table))
		return nil
	}
	log.Warn("could not create table", zap.String("table", table), zap.Error(err))
	return err
}

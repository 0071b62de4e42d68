package dynamo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const tableActiveTimeout = 2 * time.Minute

// EnsureTable creates the table and its pair index when missing, then waits
// for it to become ACTIVE. Meant for DynamoDB Local and test setups; real
// deployments provision the table out of band.
func (r *Repository) EnsureTable(ctx context.Context) error {
	_, err := r.api.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(r.table)})
	if err == nil {
		return nil
	}
	if !isResourceNotFound(err) {
		return mapError(err, "describe table")
	}

	_, err = r.api.CreateTable(ctx, r.createTableInput())
	if err != nil {
		return mapError(err, "create table")
	}

	waiter := dynamodb.NewTableExistsWaiter(r.api)
	if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(r.table)}, tableActiveTimeout); err != nil {
		return fmt.Errorf("waiting for table %s: %w", r.table, err)
	}

	r.logger.InfoContext(ctx, "created dynamodb table",
		slog.String("table", r.table),
		slog.String("index", r.index),
	)

	return nil
}

func (r *Repository) createTableInput() *dynamodb.CreateTableInput {
	return &dynamodb.CreateTableInput{
		TableName:   aws.String(r.table),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String(attrID), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String(attrQuote), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String(attrQuoter), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(attrID), KeyType: types.KeyTypeHash},
		},
		GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
			{
				IndexName: aws.String(r.index),
				KeySchema: []types.KeySchemaElement{
					{AttributeName: aws.String(attrQuote), KeyType: types.KeyTypeHash},
					{AttributeName: aws.String(attrQuoter), KeyType: types.KeyTypeRange},
				},
				Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
			},
		},
	}
}

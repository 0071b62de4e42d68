// Package dynamo stores quotes in a DynamoDB table keyed by id, with a
// global secondary index on (quote, quoter) for duplicate detection.
//
// DynamoDB cannot conditionally write across the main key and the index
// without a transaction, so Put does not enforce pair uniqueness. Two
// concurrent creates of the same pair can both pass the duplicate check.
package dynamo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/jsamuelsen/quotes-service/internal/domain"
)

// Default table layout.
const (
	DefaultTableName = "Quotes"
	DefaultIndexName = "quote-quoter-index"
)

// API is the subset of *dynamodb.Client the repository calls. Tests swap in
// a func-field fake.
type API interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

var _ API = (*dynamodb.Client)(nil)

// Repository implements ports.QuoteStore on DynamoDB.
type Repository struct {
	api    API
	table  string
	index  string
	logger *slog.Logger
}

// Options configures New. Zero values fall back to the defaults.
type Options struct {
	TableName string
	IndexName string
	Logger    *slog.Logger
}

// New wraps an API client. It does not touch the network.
func New(api API, opts Options) *Repository {
	if api == nil {
		panic("dynamo: api client is required")
	}

	r := &Repository{
		api:    api,
		table:  opts.TableName,
		index:  opts.IndexName,
		logger: opts.Logger,
	}
	if r.table == "" {
		r.table = DefaultTableName
	}
	if r.index == "" {
		r.index = DefaultIndexName
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}

	return r
}

// Name implements ports.HealthChecker.
func (r *Repository) Name() string { return "dynamodb" }

// Check implements ports.HealthChecker by describing the table.
func (r *Repository) Check(ctx context.Context) error {
	_, err := r.api.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(r.table)})

	return mapError(err, "describe table")
}

// Close implements ports.QuoteStore. The SDK client holds no resources that
// need releasing.
func (r *Repository) Close() error { return nil }

func (r *Repository) Get(ctx context.Context, id string) (*domain.Quote, error) {
	key, err := idKey(id)
	if err != nil {
		return nil, err
	}

	out, err := r.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key:       key,
	})
	if err != nil {
		return nil, mapError(err, "get item "+id)
	}
	if len(out.Item) == 0 {
		return nil, domain.NewNotFoundError(domain.EntityQuote, id)
	}

	return unmarshalQuote(out.Item)
}

func (r *Repository) Put(ctx context.Context, q *domain.Quote) error {
	av, err := marshalQuote(q)
	if err != nil {
		return err
	}

	_, err = r.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      av,
	})

	return mapError(err, "put item "+q.ID)
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	key, err := idKey(id)
	if err != nil {
		return err
	}

	_, err = r.api.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.table),
		Key:       key,
	})

	return mapError(err, "delete item "+id)
}

// Scan reads every page of the table, applying the filter server-side.
func (r *Repository) Scan(ctx context.Context, filter domain.Filter) ([]*domain.Quote, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.table)}

	expr, ok, err := buildScanFilter(filter)
	if err != nil {
		return nil, err
	}
	if ok {
		input.FilterExpression = expr.Filter()
		input.ExpressionAttributeNames = expr.Names()
		input.ExpressionAttributeValues = expr.Values()
	}

	quotes := []*domain.Quote{}
	pages := dynamodb.NewScanPaginator(r.api, input)
	for pages.HasMorePages() {
		page, err := pages.NextPage(ctx)
		if err != nil {
			return nil, mapError(err, "scan")
		}

		batch, err := unmarshalQuotes(page.Items)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, batch...)
	}

	return quotes, nil
}

func (r *Repository) QueryByQuoteAndQuoter(ctx context.Context, quote, quoter string) ([]*domain.Quote, error) {
	expr, err := buildPairQuery(quote, quoter)
	if err != nil {
		return nil, fmt.Errorf("building pair query: %w", err)
	}

	quotes := []*domain.Quote{}
	pages := dynamodb.NewQueryPaginator(r.api, &dynamodb.QueryInput{
		TableName:                 aws.String(r.table),
		IndexName:                 aws.String(r.index),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	for pages.HasMorePages() {
		page, err := pages.NextPage(ctx)
		if err != nil {
			return nil, mapError(err, "query "+r.index)
		}

		batch, err := unmarshalQuotes(page.Items)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, batch...)
	}

	return quotes, nil
}

// Package dynamo contains the concrete implementation of the persistence layer
// backed by DynamoDB. Products, carts, and orders live in three tables keyed by
// composite partition/sort keys; no secondary indexes are used.
package dynamo

import (
	"context"
	"log/slog"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/errors"

	"go.uber.org/fx"
)

// API is the subset of the DynamoDB client the repositories use.
// Declaring it here keeps the repositories testable with in-memory fakes.
type API interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New creates a DynamoDB client from configuration. A non-empty Endpoint
// points the client at a local emulator, which is how the integration
// environment runs.
func New(params Params) (API, error) {
	cfg := params.Config.DynamoDB
	if cfg == nil {
		return nil, errors.New("dynamodb config must be provided")
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, cfg.SessionToken),
		))
	}

	loadCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	awsCfg, err := awsconfig.LoadDefaultConfig(loadCtx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AWS config")
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = &cfg.Endpoint
		}
	})

	params.Logger.Info("DynamoDB client initialized",
		slog.String("region", cfg.Region),
		slog.Bool("customEndpoint", cfg.Endpoint != ""),
	)

	return client, nil
}

// callContext bounds every DynamoDB call with the configured per-call timeout.
func callContext(ctx context.Context, cfg *config.DynamoDBConfig) (context.Context, context.CancelFunc) {
	timeout := lifecycle.DefaultTimeout
	if cfg != nil && cfg.CallTimeout > 0 {
		timeout = cfg.CallTimeout
	}

	return context.WithTimeout(ctx, timeout)
}

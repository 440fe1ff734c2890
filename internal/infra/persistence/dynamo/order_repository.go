package dynamo

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// shippingAddressRecord is the embedded delivery address on an order.
type shippingAddressRecord struct {
	Street     string `dynamodbav:"street"`
	City       string `dynamodbav:"city"`
	State      string `dynamodbav:"state"`
	PostalCode string `dynamodbav:"postal_code"`
	Phone      string `dynamodbav:"phone,omitempty"`
}

// orderRecord is the DynamoDB shape of an order, keyed by user_id (partition)
// and order_id (sort). Order identifiers are time-ordered, so sort-key order
// within a partition is creation order.
type orderRecord struct {
	UserID           string                `dynamodbav:"user_id"`
	OrderID          string                `dynamodbav:"order_id"`
	Items            []cartItemRecord      `dynamodbav:"items"`
	TotalAmountCents int64                 `dynamodbav:"total_amount_cents"`
	ShippingAddress  shippingAddressRecord `dynamodbav:"shipping_address"`
	Status           string                `dynamodbav:"status"`
	CreatedAt        string                `dynamodbav:"created_at"`
}

// orderRepository implements repository.OrderRepository on DynamoDB.
type orderRepository struct {
	client API
	cfg    *config.DynamoDBConfig
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(client API, cfg *config.Config) repository.OrderRepository {
	return &orderRepository{client: client, cfg: cfg.DynamoDB}
}

// Create persists a new order item.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	item, err := attributevalue.MarshalMap(fromOrderDomain(order))
	if err != nil {
		return errors.Wrap(err, "failed to marshal order")
	}

	callCtx, cancel := callContext(ctx, repo.cfg)
	defer cancel()

	_, err = repo.client.PutItem(callCtx, &dynamodb.PutItemInput{
		TableName: aws.String(repo.cfg.OrdersTable),
		Item:      item,
	})
	if err != nil {
		return errors.Wrap(err, "failed to put order")
	}

	return nil
}

// ListByUser returns the user's orders newest first. ScanIndexForward=false
// reverses the sort-key order, and order identifiers sort by creation time.
func (repo *orderRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Order, error) {
	keyCond := expression.Key("user_id").Equal(expression.Value(userID))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query expression")
	}

	orders := make([]*entity.Order, 0)
	var startKey map[string]types.AttributeValue
	for {
		callCtx, cancel := callContext(ctx, repo.cfg)
		out, err := repo.client.Query(callCtx, &dynamodb.QueryInput{
			TableName:                 aws.String(repo.cfg.OrdersTable),
			KeyConditionExpression:    expr.KeyCondition(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ScanIndexForward:          aws.Bool(false),
			ExclusiveStartKey:         startKey,
		})
		cancel()
		if err != nil {
			return nil, errors.Wrap(err, "failed to query orders")
		}

		for _, item := range out.Items {
			order, err := unmarshalOrder(item)
			if err != nil {
				return nil, err
			}
			orders = append(orders, order)
		}

		if out.LastEvaluatedKey == nil {
			return orders, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

// Find retrieves one order by its full composite key. The user scoping in the
// key doubles as the ownership check.
func (repo *orderRepository) Find(ctx context.Context, userID, orderID string) (*entity.Order, error) {
	callCtx, cancel := callContext(ctx, repo.cfg)
	defer cancel()

	out, err := repo.client.GetItem(callCtx, &dynamodb.GetItemInput{
		TableName: aws.String(repo.cfg.OrdersTable),
		Key: map[string]types.AttributeValue{
			"user_id":  &types.AttributeValueMemberS{Value: userID},
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get order")
	}
	if out.Item == nil {
		return nil, repository.ErrOrderNotFound
	}

	return unmarshalOrder(out.Item)
}

func unmarshalOrder(item map[string]types.AttributeValue) (*entity.Order, error) {
	var record orderRecord
	if err := attributevalue.UnmarshalMap(item, &record); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal order")
	}

	return toOrderDomain(&record), nil
}

// --- Mapper Functions ---

func fromOrderDomain(data *entity.Order) *orderRecord {
	return &orderRecord{
		UserID:           data.UserID,
		OrderID:          data.ID,
		Items:            fromCartItemsDomain(data.Items),
		TotalAmountCents: data.TotalAmount.Cents(),
		ShippingAddress: shippingAddressRecord{
			Street:     data.ShippingAddress.Street,
			City:       data.ShippingAddress.City,
			State:      data.ShippingAddress.State,
			PostalCode: data.ShippingAddress.PostalCode,
			Phone:      data.ShippingAddress.Phone,
		},
		Status:    string(data.Status),
		CreatedAt: data.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toOrderDomain(record *orderRecord) *entity.Order {
	createdAt, _ := time.Parse(time.RFC3339, record.CreatedAt)

	return &entity.Order{
		UserID:      record.UserID,
		ID:          record.OrderID,
		Items:       toCartItemsDomain(record.Items),
		TotalAmount: entity.NewMoneyFromCents(record.TotalAmountCents),
		ShippingAddress: entity.ShippingAddress{
			Street:     record.ShippingAddress.Street,
			City:       record.ShippingAddress.City,
			State:      record.ShippingAddress.State,
			PostalCode: record.ShippingAddress.PostalCode,
			Phone:      record.ShippingAddress.Phone,
		},
		Status:    entity.OrderStatus(record.Status),
		CreatedAt: createdAt,
	}
}

package dynamo

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// cartItemRecord is an embedded line item inside a cart or order document.
type cartItemRecord struct {
	ProductID  string `dynamodbav:"product_id"`
	Category   string `dynamodbav:"category"`
	Name       string `dynamodbav:"name"`
	PriceCents int64  `dynamodbav:"price_cents"`
	Quantity   int    `dynamodbav:"quantity"`
}

// cartRecord is the DynamoDB shape of a cart: one document per user, keyed by
// user_id alone, replaced wholesale on every save.
type cartRecord struct {
	UserID    string           `dynamodbav:"user_id"`
	Items     []cartItemRecord `dynamodbav:"items"`
	UpdatedAt string           `dynamodbav:"updated_at"`
}

// cartRepository implements repository.CartRepository on DynamoDB.
type cartRepository struct {
	client API
	cfg    *config.DynamoDBConfig
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(client API, cfg *config.Config) repository.CartRepository {
	return &cartRepository{client: client, cfg: cfg.DynamoDB}
}

// Get loads the user's cart. A user with no stored cart gets an empty one;
// absence is not an error.
func (repo *cartRepository) Get(ctx context.Context, userID string) (*entity.Cart, error) {
	callCtx, cancel := callContext(ctx, repo.cfg)
	defer cancel()

	out, err := repo.client.GetItem(callCtx, &dynamodb.GetItemInput{
		TableName: aws.String(repo.cfg.CartTable),
		Key:       cartKey(userID),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get cart")
	}
	if out.Item == nil {
		return entity.EmptyCart(userID), nil
	}

	var record cartRecord
	if err := attributevalue.UnmarshalMap(out.Item, &record); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal cart")
	}

	return toCartDomain(&record), nil
}

// Save replaces the stored cart wholesale. Concurrent saves resolve
// last-write-wins at the store.
func (repo *cartRepository) Save(ctx context.Context, userID string, items []entity.CartItem) (*entity.Cart, error) {
	cart := &entity.Cart{
		UserID:    userID,
		Items:     items,
		UpdatedAt: time.Now().UTC(),
	}

	item, err := attributevalue.MarshalMap(fromCartDomain(cart))
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal cart")
	}

	callCtx, cancel := callContext(ctx, repo.cfg)
	defer cancel()

	_, err = repo.client.PutItem(callCtx, &dynamodb.PutItemInput{
		TableName: aws.String(repo.cfg.CartTable),
		Item:      item,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	return cart, nil
}

// Clear removes the user's cart document. Clearing an absent cart succeeds.
func (repo *cartRepository) Clear(ctx context.Context, userID string) error {
	callCtx, cancel := callContext(ctx, repo.cfg)
	defer cancel()

	_, err := repo.client.DeleteItem(callCtx, &dynamodb.DeleteItemInput{
		TableName: aws.String(repo.cfg.CartTable),
		Key:       cartKey(userID),
	})
	if err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

func cartKey(userID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"user_id": &types.AttributeValueMemberS{Value: userID},
	}
}

// --- Mapper Functions ---

func fromCartDomain(data *entity.Cart) *cartRecord {
	return &cartRecord{
		UserID:    data.UserID,
		Items:     fromCartItemsDomain(data.Items),
		UpdatedAt: data.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func toCartDomain(record *cartRecord) *entity.Cart {
	updatedAt, _ := time.Parse(time.RFC3339, record.UpdatedAt)

	return &entity.Cart{
		UserID:    record.UserID,
		Items:     toCartItemsDomain(record.Items),
		UpdatedAt: updatedAt,
	}
}

func fromCartItemsDomain(items []entity.CartItem) []cartItemRecord {
	records := make([]cartItemRecord, 0, len(items))
	for _, item := range items {
		records = append(records, cartItemRecord{
			ProductID:  item.ProductID,
			Category:   item.Category,
			Name:       item.Name,
			PriceCents: item.Price.Cents(),
			Quantity:   item.Quantity,
		})
	}

	return records
}

func toCartItemsDomain(records []cartItemRecord) []entity.CartItem {
	items := make([]entity.CartItem, 0, len(records))
	for _, record := range records {
		items = append(items, entity.CartItem{
			ProductID: record.ProductID,
			Category:  record.Category,
			Name:      record.Name,
			Price:     entity.NewMoneyFromCents(record.PriceCents),
			Quantity:  record.Quantity,
		})
	}

	return items
}

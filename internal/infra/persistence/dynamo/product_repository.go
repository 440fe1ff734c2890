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

// productRecord is the DynamoDB shape of a product. The table is keyed by
// product_id (partition) and category (sort); prices are stored as integer
// cents so no precision is lost in transit.
type productRecord struct {
	ProductID   string `dynamodbav:"product_id"`
	Category    string `dynamodbav:"category"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description,omitempty"`
	PriceCents  int64  `dynamodbav:"price_cents"`
	ImageURL    string `dynamodbav:"image_url,omitempty"`
	Stock       int    `dynamodbav:"stock"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// productRepository implements repository.ProductRepository on DynamoDB.
type productRepository struct {
	client API
	cfg    *config.DynamoDBConfig
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(client API, cfg *config.Config) repository.ProductRepository {
	return &productRepository{client: client, cfg: cfg.DynamoDB}
}

// Create persists a new product item.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	item, err := attributevalue.MarshalMap(fromProductDomain(product))
	if err != nil {
		return errors.Wrap(err, "failed to marshal product")
	}

	callCtx, cancel := callContext(ctx, repo.cfg)
	defer cancel()

	_, err = repo.client.PutItem(callCtx, &dynamodb.PutItemInput{
		TableName: aws.String(repo.cfg.ProductsTable),
		Item:      item,
	})
	if err != nil {
		return errors.Wrap(err, "failed to put product")
	}

	return nil
}

// List returns every product, or the products in one category. The table is
// partitioned by product_id, so a category listing cannot be a Query; it is a
// scan with a filter expression, paginated through LastEvaluatedKey.
func (repo *productRepository) List(ctx context.Context, category string) ([]*entity.Product, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(repo.cfg.ProductsTable),
	}
	if category != "" {
		filter := expression.Name("category").Equal(expression.Value(category))
		expr, err := expression.NewBuilder().WithFilter(filter).Build()
		if err != nil {
			return nil, errors.Wrap(err, "failed to build scan expression")
		}
		input.FilterExpression = expr.Filter()
		input.ExpressionAttributeNames = expr.Names()
		input.ExpressionAttributeValues = expr.Values()
	}

	products := make([]*entity.Product, 0)
	var startKey map[string]types.AttributeValue
	for {
		input.ExclusiveStartKey = startKey

		callCtx, cancel := callContext(ctx, repo.cfg)
		out, err := repo.client.Scan(callCtx, input)
		cancel()
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan products")
		}

		batch, err := unmarshalProducts(out.Items)
		if err != nil {
			return nil, err
		}
		products = append(products, batch...)

		if out.LastEvaluatedKey == nil {
			return products, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

// Find retrieves one product by its full composite key.
func (repo *productRepository) Find(ctx context.Context, id, category string) (*entity.Product, error) {
	callCtx, cancel := callContext(ctx, repo.cfg)
	defer cancel()

	out, err := repo.client.GetItem(callCtx, &dynamodb.GetItemInput{
		TableName: aws.String(repo.cfg.ProductsTable),
		Key:       productKey(id, category),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get product")
	}
	if out.Item == nil {
		return nil, repository.ErrProductNotFound
	}

	return unmarshalProduct(out.Item)
}

// FindByID locates a product when only its identifier is known. The table has
// no index on product_id alone, so this walks the table with a filtered scan.
// Acceptable for the public detail endpoint at catalog sizes; callers that
// know the category should use Find.
func (repo *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	filter := expression.Name("product_id").Equal(expression.Value(id))
	expr, err := expression.NewBuilder().WithFilter(filter).Build()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build scan expression")
	}

	var startKey map[string]types.AttributeValue
	for {
		callCtx, cancel := callContext(ctx, repo.cfg)
		out, err := repo.client.Scan(callCtx, &dynamodb.ScanInput{
			TableName:                 aws.String(repo.cfg.ProductsTable),
			FilterExpression:          expr.Filter(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ExclusiveStartKey:         startKey,
		})
		cancel()
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan for product")
		}

		if len(out.Items) > 0 {
			return unmarshalProduct(out.Items[0])
		}

		if out.LastEvaluatedKey == nil {
			return nil, repository.ErrProductNotFound
		}
		startKey = out.LastEvaluatedKey
	}
}

// Update applies the non-nil patch fields atomically and returns the updated
// product. The condition on the key attributes turns an update of a missing
// item into ErrProductNotFound instead of an upsert.
func (repo *productRepository) Update(ctx context.Context, id, category string, patch repository.ProductPatch) (*entity.Product, error) {
	if patch.IsEmpty() {
		return nil, repository.ErrEmptyPatch
	}

	update := expression.UpdateBuilder{}
	if patch.Name != nil {
		update = update.Set(expression.Name("name"), expression.Value(*patch.Name))
	}
	if patch.Description != nil {
		update = update.Set(expression.Name("description"), expression.Value(*patch.Description))
	}
	if patch.Price != nil {
		update = update.Set(expression.Name("price_cents"), expression.Value(patch.Price.Cents()))
	}
	if patch.ImageURL != nil {
		update = update.Set(expression.Name("image_url"), expression.Value(*patch.ImageURL))
	}
	if patch.Stock != nil {
		update = update.Set(expression.Name("stock"), expression.Value(*patch.Stock))
	}

	cond := expression.AttributeExists(expression.Name("product_id"))
	expr, err := expression.NewBuilder().WithUpdate(update).WithCondition(cond).Build()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build update expression")
	}

	callCtx, cancel := callContext(ctx, repo.cfg)
	defer cancel()

	out, err := repo.client.UpdateItem(callCtx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(repo.cfg.ProductsTable),
		Key:                       productKey(id, category),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var condFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condFailed) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	return unmarshalProduct(out.Attributes)
}

// Delete removes a product and reports whether an item actually existed.
func (repo *productRepository) Delete(ctx context.Context, id, category string) (bool, error) {
	callCtx, cancel := callContext(ctx, repo.cfg)
	defer cancel()

	out, err := repo.client.DeleteItem(callCtx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(repo.cfg.ProductsTable),
		Key:          productKey(id, category),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to delete product")
	}

	return len(out.Attributes) > 0, nil
}

func productKey(id, category string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"product_id": &types.AttributeValueMemberS{Value: id},
		"category":   &types.AttributeValueMemberS{Value: category},
	}
}

func unmarshalProducts(items []map[string]types.AttributeValue) ([]*entity.Product, error) {
	products := make([]*entity.Product, 0, len(items))
	for _, item := range items {
		product, err := unmarshalProduct(item)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, nil
}

func unmarshalProduct(item map[string]types.AttributeValue) (*entity.Product, error) {
	var record productRecord
	if err := attributevalue.UnmarshalMap(item, &record); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal product")
	}

	return toProductDomain(&record), nil
}

// --- Mapper Functions ---

func fromProductDomain(data *entity.Product) *productRecord {
	return &productRecord{
		Category:    data.Category,
		ProductID:   data.ID,
		Name:        data.Name,
		Description: data.Description,
		PriceCents:  data.Price.Cents(),
		ImageURL:    data.ImageURL,
		Stock:       data.Stock,
		CreatedAt:   data.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toProductDomain(record *productRecord) *entity.Product {
	createdAt, _ := time.Parse(time.RFC3339, record.CreatedAt)

	return &entity.Product{
		ID:          record.ProductID,
		Category:    record.Category,
		Name:        record.Name,
		Description: record.Description,
		Price:       entity.NewMoneyFromCents(record.PriceCents),
		ImageURL:    record.ImageURL,
		Stock:       record.Stock,
		CreatedAt:   createdAt,
	}
}

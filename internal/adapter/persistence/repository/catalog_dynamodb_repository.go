package repository

import (
	"context"

	"movequote/internal/domain/entities"
	"movequote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCatalogItemsTableName = "catalog_items"

type catalogItemRecord struct {
	ID              string   `dynamodbav:"id"`
	TenantID        string   `dynamodbav:"tenant_id"`
	Name            string   `dynamodbav:"name"`
	Aliases         []string `dynamodbav:"aliases,omitempty"`
	Category        string   `dynamodbav:"category,omitempty"`
	BaseCubicFeet   string   `dynamodbav:"base_cubic_feet,omitempty"`
	LaborMultiplier string   `dynamodbav:"labor_multiplier"`
	IsActive        bool     `dynamodbav:"is_active"`
	CreatedAt       string   `dynamodbav:"created_at"`
	UpdatedAt       string   `dynamodbav:"updated_at"`
}

// CatalogDynamoRepository persists CatalogItem entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI tenant_id-index: tenant_id (string) / created_at (string)
//
// List queries the index in ascending created_at order, so listings always
// come back in insertion order. The matcher depends on that order being
// stable.

type CatalogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CATALOG_ITEMS_TABLE", defaultCatalogItemsTableName),
	}
}

func (r *CatalogDynamoRepository) Create(ctx context.Context, item entities.CatalogItem) (entities.CatalogItem, error) {
	av, err := attributevalue.MarshalMap(toCatalogItemRecord(item))
	if err != nil {
		return entities.CatalogItem{}, err
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
		return entities.CatalogItem{}, err
	}
	return item, nil
}

func (r *CatalogDynamoRepository) GetByID(ctx context.Context, tenantID, id string) (entities.CatalogItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CatalogItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.CatalogItem{}, nil
	}

	var it catalogItemRecord
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CatalogItem{}, err
	}
	if it.TenantID != tenantID {
		return entities.CatalogItem{}, nil
	}
	return fromCatalogItemRecord(it), nil
}

func (r *CatalogDynamoRepository) List(ctx context.Context, tenantID string) ([]entities.CatalogItem, error) {
	return r.queryByTenant(ctx, tenantID, false)
}

func (r *CatalogDynamoRepository) ListActive(ctx context.Context, tenantID string) ([]entities.CatalogItem, error) {
	return r.queryByTenant(ctx, tenantID, true)
}

func (r *CatalogDynamoRepository) queryByTenant(ctx context.Context, tenantID string, activeOnly bool) ([]entities.CatalogItem, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("tenant_id-index"),
		KeyConditionExpression: aws.String("#tenant_id = :tenant_id"),
		ExpressionAttributeNames: map[string]string{
			"#tenant_id": "tenant_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tenant_id": &types.AttributeValueMemberS{Value: tenantID},
		},
		ScanIndexForward: aws.Bool(true),
	}
	if activeOnly {
		input.FilterExpression = aws.String("#is_active = :true")
		input.ExpressionAttributeNames["#is_active"] = "is_active"
		input.ExpressionAttributeValues[":true"] = &types.AttributeValueMemberBOOL{Value: true}
	}

	var items []entities.CatalogItem
	paginator := dynamodb.NewQueryPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var records []catalogItemRecord
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &records); err != nil {
			return nil, err
		}
		for _, rec := range records {
			items = append(items, fromCatalogItemRecord(rec))
		}
	}
	return items, nil
}

func (r *CatalogDynamoRepository) Update(ctx context.Context, item entities.CatalogItem) (entities.CatalogItem, error) {
	av, err := attributevalue.MarshalMap(toCatalogItemRecord(item))
	if err != nil {
		return entities.CatalogItem{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.CatalogItem{}, err
	}
	return item, nil
}

func (r *CatalogDynamoRepository) Delete(ctx context.Context, tenantID, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("#tenant_id = :tenant_id"),
		ExpressionAttributeNames: map[string]string{
			"#tenant_id": "tenant_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tenant_id": &types.AttributeValueMemberS{Value: tenantID},
		},
	})
	return err
}

func toCatalogItemRecord(item entities.CatalogItem) catalogItemRecord {
	return catalogItemRecord{
		ID:              item.ID,
		TenantID:        item.TenantID,
		Name:            item.Name,
		Aliases:         item.Aliases,
		Category:        item.Category,
		BaseCubicFeet:   decimalPtrString(item.BaseCubicFeet),
		LaborMultiplier: item.LaborMultiplier.String(),
		IsActive:        item.IsActive,
		CreatedAt:       formatTime(item.CreatedAt),
		UpdatedAt:       formatTime(item.UpdatedAt),
	}
}

func fromCatalogItemRecord(it catalogItemRecord) entities.CatalogItem {
	return entities.CatalogItem{
		ID:              it.ID,
		TenantID:        it.TenantID,
		Name:            it.Name,
		Aliases:         it.Aliases,
		Category:        it.Category,
		BaseCubicFeet:   parseDecimalPtr(it.BaseCubicFeet),
		LaborMultiplier: parseDecimal(it.LaborMultiplier),
		IsActive:        it.IsActive,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}

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

const defaultTenantsTableName = "tenants"

type tenantItem struct {
	ID        string            `dynamodbav:"id"`
	Slug      string            `dynamodbav:"slug"`
	Name      string            `dynamodbav:"name"`
	Domain    string            `dynamodbav:"domain,omitempty"`
	LogoURL   string            `dynamodbav:"logo_url,omitempty"`
	Settings  map[string]string `dynamodbav:"settings,omitempty"`
	IsActive  bool              `dynamodbav:"is_active"`
	CreatedAt string            `dynamodbav:"created_at"`
	UpdatedAt string            `dynamodbav:"updated_at"`
}

// TenantDynamoRepository persists Tenant entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI slug-index: slug (string)
//
// Slug is the public identifier used by the widget; it is unique across
// tenants.

type TenantDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITenantRepository = (*TenantDynamoRepository)(nil)

func NewTenantDynamoRepository(ddb *dynamodb.Client) *TenantDynamoRepository {
	return &TenantDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TENANTS_TABLE", defaultTenantsTableName),
	}
}

func (r *TenantDynamoRepository) GetByID(ctx context.Context, id string) (entities.Tenant, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Tenant{}, err
	}
	if len(out.Item) == 0 {
		return entities.Tenant{}, nil
	}

	var it tenantItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Tenant{}, err
	}
	return fromTenantItem(it), nil
}

func (r *TenantDynamoRepository) GetBySlug(ctx context.Context, slug string) (entities.Tenant, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("slug-index"),
		KeyConditionExpression: aws.String("#slug = :slug"),
		ExpressionAttributeNames: map[string]string{
			"#slug": "slug",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":slug": &types.AttributeValueMemberS{Value: slug},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Tenant{}, err
	}
	if len(out.Items) == 0 {
		return entities.Tenant{}, nil
	}

	var it tenantItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Tenant{}, err
	}
	return fromTenantItem(it), nil
}

func fromTenantItem(it tenantItem) entities.Tenant {
	return entities.Tenant{
		ID:        it.ID,
		Slug:      it.Slug,
		Name:      it.Name,
		Domain:    it.Domain,
		LogoURL:   it.LogoURL,
		Settings:  it.Settings,
		IsActive:  it.IsActive,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}

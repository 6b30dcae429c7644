package repository

import (
	"context"
	"time"

	"movequote/internal/domain/entities"
	"movequote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPricingRulesTableName = "pricing_rules"

type pricingRuleItem struct {
	ID                  string `dynamodbav:"id"`
	TenantID            string `dynamodbav:"tenant_id"`
	Name                string `dynamodbav:"name"`
	RatePerCubicFoot    string `dynamodbav:"rate_per_cubic_foot"`
	LaborRatePerHour    string `dynamodbav:"labor_rate_per_hour"`
	MinimumCharge       string `dynamodbav:"minimum_charge"`
	DistanceRatePerMile string `dynamodbav:"distance_rate_per_mile"`
	IsDefault           bool   `dynamodbav:"is_default"`
	IsActive            bool   `dynamodbav:"is_active"`
	CreatedAt           string `dynamodbav:"created_at"`
	UpdatedAt           string `dynamodbav:"updated_at"`
}

// PricingRuleDynamoRepository persists PricingRule entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI tenant_id-index: tenant_id (string) / created_at (string)
//
// SetDefault flips the default flag in one TransactWriteItems call: the
// previous default is cleared and the new one set atomically, so two defaults
// can never coexist.

type PricingRuleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPricingRuleRepository = (*PricingRuleDynamoRepository)(nil)

func NewPricingRuleDynamoRepository(ddb *dynamodb.Client) *PricingRuleDynamoRepository {
	return &PricingRuleDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRICING_RULES_TABLE", defaultPricingRulesTableName),
	}
}

func (r *PricingRuleDynamoRepository) Create(ctx context.Context, rule entities.PricingRule) (entities.PricingRule, error) {
	av, err := attributevalue.MarshalMap(toPricingRuleItem(rule))
	if err != nil {
		return entities.PricingRule{}, err
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
		return entities.PricingRule{}, err
	}
	return rule, nil
}

func (r *PricingRuleDynamoRepository) GetByID(ctx context.Context, tenantID, id string) (entities.PricingRule, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PricingRule{}, err
	}
	if len(out.Item) == 0 {
		return entities.PricingRule{}, nil
	}

	var it pricingRuleItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PricingRule{}, err
	}
	if it.TenantID != tenantID {
		return entities.PricingRule{}, nil
	}
	return fromPricingRuleItem(it), nil
}

func (r *PricingRuleDynamoRepository) GetDefault(ctx context.Context, tenantID string) (entities.PricingRule, error) {
	rules, err := r.List(ctx, tenantID)
	if err != nil {
		return entities.PricingRule{}, err
	}
	for _, rule := range rules {
		if rule.IsDefault && rule.IsActive {
			return rule, nil
		}
	}
	return entities.PricingRule{}, nil
}

func (r *PricingRuleDynamoRepository) List(ctx context.Context, tenantID string) ([]entities.PricingRule, error) {
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

	var rules []entities.PricingRule
	paginator := dynamodb.NewQueryPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var records []pricingRuleItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &records); err != nil {
			return nil, err
		}
		for _, rec := range records {
			rules = append(rules, fromPricingRuleItem(rec))
		}
	}
	return rules, nil
}

func (r *PricingRuleDynamoRepository) Update(ctx context.Context, rule entities.PricingRule) (entities.PricingRule, error) {
	av, err := attributevalue.MarshalMap(toPricingRuleItem(rule))
	if err != nil {
		return entities.PricingRule{}, err
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
		return entities.PricingRule{}, err
	}
	return rule, nil
}

// SetDefault marks the rule as the tenant's default and clears any other
// default in the same transaction.
func (r *PricingRuleDynamoRepository) SetDefault(ctx context.Context, tenantID, id string) (entities.PricingRule, error) {
	rules, err := r.List(ctx, tenantID)
	if err != nil {
		return entities.PricingRule{}, err
	}

	now := time.Now().UTC()
	nowStr := formatTime(now)

	writes := []types.TransactWriteItem{
		{
			Update: &types.Update{
				TableName: aws.String(r.tableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: id},
				},
				ConditionExpression: aws.String("attribute_exists(#id) AND #tenant_id = :tenant_id"),
				UpdateExpression:    aws.String("SET #is_default = :true, #updated_at = :updated_at"),
				ExpressionAttributeNames: map[string]string{
					"#id":         "id",
					"#tenant_id":  "tenant_id",
					"#is_default": "is_default",
					"#updated_at": "updated_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":tenant_id":  &types.AttributeValueMemberS{Value: tenantID},
					":true":       &types.AttributeValueMemberBOOL{Value: true},
					":updated_at": &types.AttributeValueMemberS{Value: nowStr},
				},
			},
		},
	}
	for _, rule := range rules {
		if !rule.IsDefault || rule.ID == id {
			continue
		}
		writes = append(writes, types.TransactWriteItem{
			Update: &types.Update{
				TableName: aws.String(r.tableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: rule.ID},
				},
				UpdateExpression: aws.String("SET #is_default = :false, #updated_at = :updated_at"),
				ExpressionAttributeNames: map[string]string{
					"#is_default": "is_default",
					"#updated_at": "updated_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":false":      &types.AttributeValueMemberBOOL{Value: false},
					":updated_at": &types.AttributeValueMemberS{Value: nowStr},
				},
			},
		})
	}

	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: writes,
	}); err != nil {
		return entities.PricingRule{}, err
	}

	return r.GetByID(ctx, tenantID, id)
}

func (r *PricingRuleDynamoRepository) Delete(ctx context.Context, tenantID, id string) error {
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

func toPricingRuleItem(rule entities.PricingRule) pricingRuleItem {
	return pricingRuleItem{
		ID:                  rule.ID,
		TenantID:            rule.TenantID,
		Name:                rule.Name,
		RatePerCubicFoot:    rule.RatePerCubicFoot.String(),
		LaborRatePerHour:    rule.LaborRatePerHour.String(),
		MinimumCharge:       rule.MinimumCharge.String(),
		DistanceRatePerMile: rule.DistanceRatePerMile.String(),
		IsDefault:           rule.IsDefault,
		IsActive:            rule.IsActive,
		CreatedAt:           formatTime(rule.CreatedAt),
		UpdatedAt:           formatTime(rule.UpdatedAt),
	}
}

func fromPricingRuleItem(it pricingRuleItem) entities.PricingRule {
	return entities.PricingRule{
		ID:                  it.ID,
		TenantID:            it.TenantID,
		Name:                it.Name,
		RatePerCubicFoot:    parseDecimal(it.RatePerCubicFoot),
		LaborRatePerHour:    parseDecimal(it.LaborRatePerHour),
		MinimumCharge:       parseDecimal(it.MinimumCharge),
		DistanceRatePerMile: parseDecimal(it.DistanceRatePerMile),
		IsDefault:           it.IsDefault,
		IsActive:            it.IsActive,
		CreatedAt:           parseTime(it.CreatedAt),
		UpdatedAt:           parseTime(it.UpdatedAt),
	}
}

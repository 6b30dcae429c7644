package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"movequote/internal/domain/entities"
	"movequote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName     = "quotes"
	defaultQuoteItemsTableName = "quote_items"
	defaultQuoteMediaTableName = "quote_media"
)

type quoteItem struct {
	ID              string `dynamodbav:"id"`
	TenantID        string `dynamodbav:"tenant_id"`
	CustomerID      string `dynamodbav:"customer_id,omitempty"`
	QuoteNumber     string `dynamodbav:"quote_number"`
	Status          string `dynamodbav:"status"`
	CustomerEmail   string `dynamodbav:"customer_email"`
	CustomerPhone   string `dynamodbav:"customer_phone,omitempty"`
	CustomerName    string `dynamodbav:"customer_name,omitempty"`
	PickupAddress   string `dynamodbav:"pickup_address,omitempty"`
	DeliveryAddress string `dynamodbav:"delivery_address,omitempty"`
	MoveDate        string `dynamodbav:"move_date,omitempty"`
	Notes           string `dynamodbav:"notes,omitempty"`
	DistanceMiles   string `dynamodbav:"distance_miles"`
	TotalCubicFeet  string `dynamodbav:"total_cubic_feet"`
	TotalLaborHours string `dynamodbav:"total_labor_hours"`
	Subtotal        string `dynamodbav:"subtotal"`
	TaxAmount       string `dynamodbav:"tax_amount"`
	TotalAmount     string `dynamodbav:"total_amount"`
	PricingRuleID   string `dynamodbav:"pricing_rule_id,omitempty"`
	ExpiresAt       string `dynamodbav:"expires_at,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

type lineItemRecord struct {
	QuoteID       string `dynamodbav:"quote_id"`
	ID            string `dynamodbav:"id"`
	CatalogItemID string `dynamodbav:"catalog_item_id,omitempty"`
	DetectedName  string `dynamodbav:"detected_name,omitempty"`
	Quantity      int    `dynamodbav:"quantity"`
	CubicFeet     string `dynamodbav:"cubic_feet,omitempty"`
	LaborHours    string `dynamodbav:"labor_hours,omitempty"`
	UnitPrice     string `dynamodbav:"unit_price,omitempty"`
	TotalPrice    string `dynamodbav:"total_price,omitempty"`
	Confidence    string `dynamodbav:"confidence_score,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
}

type quoteMediaRecord struct {
	QuoteID     string `dynamodbav:"quote_id"`
	ID          string `dynamodbav:"id"`
	FileName    string `dynamodbav:"file_name"`
	FilePath    string `dynamodbav:"file_path"`
	FileSize    int64  `dynamodbav:"file_size,omitempty"`
	MimeType    string `dynamodbav:"mime_type,omitempty"`
	IsProcessed bool   `dynamodbav:"is_processed"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// QuoteDynamoRepository persists quotes, their line items and their media in
// DynamoDB.
//
// Table requirements:
//   - quotes:      PK id (string); GSI tenant_id-index: tenant_id / created_at
//   - quote_items: PK quote_id (string) + SK id (string)
//   - quote_media: PK quote_id (string) + SK id (string)
//
// Quote-number uniqueness is enforced with a guard row in the quotes table
// keyed "QN#<tenant_id>#<number>". Create puts the quote and its guard in one
// transaction; a conflicting number cancels the whole transaction and surfaces
// as ErrQuoteNumberConflict.
//
// Line-item writes always carry the recomputed quote totals in the same
// transaction, so a stored quote can never disagree with its items.

type QuoteDynamoRepository struct {
	ddb        *dynamodb.Client
	tableName  string
	itemsTable string
	mediaTable string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:        ddb,
		tableName:  getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
		itemsTable: getenvDefault("QUOTE_ITEMS_TABLE", defaultQuoteItemsTableName),
		mediaTable: getenvDefault("QUOTE_MEDIA_TABLE", defaultQuoteMediaTableName),
	}
}

func quoteNumberGuardID(tenantID, number string) string {
	return fmt.Sprintf("QN#%s#%s", tenantID, number)
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote, items []entities.LineItem) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}

	writes := []types.TransactWriteItem{
		{
			Put: &types.Put{
				TableName: aws.String(r.tableName),
				Item: map[string]types.AttributeValue{
					"id":        &types.AttributeValueMemberS{Value: quoteNumberGuardID(q.TenantID, q.QuoteNumber)},
					"tenant_id": &types.AttributeValueMemberS{Value: q.TenantID},
					"quote_id":  &types.AttributeValueMemberS{Value: q.ID},
				},
				ConditionExpression: aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			},
		},
		{
			Put: &types.Put{
				TableName:           aws.String(r.tableName),
				Item:                av,
				ConditionExpression: aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			},
		},
	}

	for _, item := range items {
		itemAV, err := attributevalue.MarshalMap(toLineItemRecord(item))
		if err != nil {
			return entities.Quote{}, err
		}
		writes = append(writes, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(r.itemsTable),
				Item:      itemAV,
			},
		})
	}

	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: writes,
	}); err != nil {
		var canceled *types.TransactionCanceledException
		if errors.As(err, &canceled) {
			for _, reason := range canceled.CancellationReasons {
				// The quote id is a fresh UUID, so a condition failure can only
				// be the number guard.
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
					return entities.Quote{}, interfaces.ErrQuoteNumberConflict
				}
			}
		}
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, tenantID, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	if it.TenantID != tenantID {
		return entities.Quote{}, nil
	}
	return fromQuoteItem(it), nil
}

// List returns the tenant's quotes newest first. Guard rows live in the same
// table but have no quote_number attribute and are filtered out.
// GetByNumber resolves a quote through its number guard row, so the lookup
// costs two point reads instead of an index query.
func (r *QuoteDynamoRepository) GetByNumber(ctx context.Context, tenantID, quoteNumber string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: quoteNumberGuardID(tenantID, quoteNumber)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	quoteID, ok := out.Item["quote_id"].(*types.AttributeValueMemberS)
	if !ok || quoteID.Value == "" {
		return entities.Quote{}, nil
	}
	return r.GetByID(ctx, tenantID, quoteID.Value)
}

func (r *QuoteDynamoRepository) List(ctx context.Context, tenantID string) ([]entities.Quote, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("tenant_id-index"),
		KeyConditionExpression: aws.String("#tenant_id = :tenant_id"),
		FilterExpression:       aws.String("attribute_exists(#quote_number)"),
		ExpressionAttributeNames: map[string]string{
			"#tenant_id":    "tenant_id",
			"#quote_number": "quote_number",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tenant_id": &types.AttributeValueMemberS{Value: tenantID},
		},
		ScanIndexForward: aws.Bool(false),
	}

	var quotes []entities.Quote
	paginator := dynamodb.NewQueryPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var records []quoteItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &records); err != nil {
			return nil, err
		}
		for _, rec := range records {
			quotes = append(quotes, fromQuoteItem(rec))
		}
	}
	return quotes, nil
}

func (r *QuoteDynamoRepository) Update(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) UpdateTotals(ctx context.Context, tenantID, id string, totals entities.QuoteTotals) (entities.Quote, error) {
	expr, names, values := totalsUpdate(totals, time.Now().UTC())
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #tenant_id = :tenant_id"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id", "#tenant_id": "tenant_id"}),
		ExpressionAttributeValues: mergeValues(values, map[string]types.AttributeValue{":tenant_id": &types.AttributeValueMemberS{Value: tenantID}}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) ListItems(ctx context.Context, quoteID string) ([]entities.LineItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.itemsTable),
		KeyConditionExpression: aws.String("#quote_id = :quote_id"),
		ExpressionAttributeNames: map[string]string{
			"#quote_id": "quote_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":quote_id": &types.AttributeValueMemberS{Value: quoteID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	var records []lineItemRecord
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &records); err != nil {
		return nil, err
	}
	items := make([]entities.LineItem, 0, len(records))
	for _, rec := range records {
		items = append(items, fromLineItemRecord(rec))
	}
	// The sort key is the item id; present items in insertion order instead.
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func (r *QuoteDynamoRepository) AddLineItem(ctx context.Context, item entities.LineItem, totals entities.QuoteTotals) (entities.LineItem, error) {
	if err := r.AddLineItems(ctx, item.QuoteID, []entities.LineItem{item}, totals); err != nil {
		return entities.LineItem{}, err
	}
	return item, nil
}

func (r *QuoteDynamoRepository) AddLineItems(ctx context.Context, quoteID string, items []entities.LineItem, totals entities.QuoteTotals) error {
	if len(items) == 0 {
		return nil
	}

	writes := make([]types.TransactWriteItem, 0, len(items)+1)
	for _, item := range items {
		av, err := attributevalue.MarshalMap(toLineItemRecord(item))
		if err != nil {
			return err
		}
		writes = append(writes, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(r.itemsTable),
				Item:      av,
			},
		})
	}
	writes = append(writes, r.totalsWrite(quoteID, totals))

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: writes,
	})
	return err
}

func (r *QuoteDynamoRepository) RemoveLineItem(ctx context.Context, quoteID, itemID string, totals entities.QuoteTotals) error {
	writes := []types.TransactWriteItem{
		{
			Delete: &types.Delete{
				TableName: aws.String(r.itemsTable),
				Key: map[string]types.AttributeValue{
					"quote_id": &types.AttributeValueMemberS{Value: quoteID},
					"id":       &types.AttributeValueMemberS{Value: itemID},
				},
			},
		},
		r.totalsWrite(quoteID, totals),
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: writes,
	})
	return err
}

func (r *QuoteDynamoRepository) AddMedia(ctx context.Context, media entities.QuoteMedia) (entities.QuoteMedia, error) {
	av, err := attributevalue.MarshalMap(toQuoteMediaRecord(media))
	if err != nil {
		return entities.QuoteMedia{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.mediaTable),
		Item:      av,
	})
	if err != nil {
		return entities.QuoteMedia{}, err
	}
	return media, nil
}

func (r *QuoteDynamoRepository) ListMedia(ctx context.Context, quoteID string) ([]entities.QuoteMedia, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.mediaTable),
		KeyConditionExpression: aws.String("#quote_id = :quote_id"),
		ExpressionAttributeNames: map[string]string{
			"#quote_id": "quote_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":quote_id": &types.AttributeValueMemberS{Value: quoteID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	var records []quoteMediaRecord
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &records); err != nil {
		return nil, err
	}
	media := make([]entities.QuoteMedia, 0, len(records))
	for _, rec := range records {
		media = append(media, fromQuoteMediaRecord(rec))
	}
	sort.SliceStable(media, func(i, j int) bool {
		return media[i].CreatedAt.Before(media[j].CreatedAt)
	})
	return media, nil
}

func (r *QuoteDynamoRepository) totalsWrite(quoteID string, totals entities.QuoteTotals) types.TransactWriteItem {
	expr, names, values := totalsUpdate(totals, time.Now().UTC())
	return types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: quoteID},
			},
			ConditionExpression:       aws.String("attribute_exists(#id)"),
			UpdateExpression:          aws.String(expr),
			ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
			ExpressionAttributeValues: values,
		},
	}
}

func totalsUpdate(totals entities.QuoteTotals, now time.Time) (string, map[string]string, map[string]types.AttributeValue) {
	expr := "SET #total_cubic_feet = :total_cubic_feet, #total_labor_hours = :total_labor_hours, " +
		"#subtotal = :subtotal, #tax_amount = :tax_amount, #total_amount = :total_amount, #updated_at = :updated_at"
	names := map[string]string{
		"#total_cubic_feet":  "total_cubic_feet",
		"#total_labor_hours": "total_labor_hours",
		"#subtotal":          "subtotal",
		"#tax_amount":        "tax_amount",
		"#total_amount":      "total_amount",
		"#updated_at":        "updated_at",
	}
	values := map[string]types.AttributeValue{
		":total_cubic_feet":  &types.AttributeValueMemberS{Value: totals.TotalCubicFeet.String()},
		":total_labor_hours": &types.AttributeValueMemberS{Value: totals.TotalLaborHours.String()},
		":subtotal":          &types.AttributeValueMemberS{Value: totals.Subtotal.String()},
		":tax_amount":        &types.AttributeValueMemberS{Value: totals.TaxAmount.String()},
		":total_amount":      &types.AttributeValueMemberS{Value: totals.TotalAmount.String()},
		":updated_at":        &types.AttributeValueMemberS{Value: formatTime(now)},
	}
	return expr, names, values
}

func mergeValues(a, b map[string]types.AttributeValue) map[string]types.AttributeValue {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]types.AttributeValue, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		ID:              q.ID,
		TenantID:        q.TenantID,
		CustomerID:      q.CustomerID,
		QuoteNumber:     q.QuoteNumber,
		Status:          string(q.Status),
		CustomerEmail:   q.CustomerEmail,
		CustomerPhone:   q.CustomerPhone,
		CustomerName:    q.CustomerName,
		PickupAddress:   q.PickupAddress,
		DeliveryAddress: q.DeliveryAddress,
		MoveDate:        formatTimePtr(q.MoveDate),
		Notes:           q.Notes,
		DistanceMiles:   q.DistanceMiles.String(),
		TotalCubicFeet:  q.Totals.TotalCubicFeet.String(),
		TotalLaborHours: q.Totals.TotalLaborHours.String(),
		Subtotal:        q.Totals.Subtotal.String(),
		TaxAmount:       q.Totals.TaxAmount.String(),
		TotalAmount:     q.Totals.TotalAmount.String(),
		PricingRuleID:   q.PricingRuleID,
		ExpiresAt:       formatTimePtr(q.ExpiresAt),
		CreatedAt:       formatTime(q.CreatedAt),
		UpdatedAt:       formatTime(q.UpdatedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	return entities.Quote{
		ID:              it.ID,
		TenantID:        it.TenantID,
		CustomerID:      it.CustomerID,
		QuoteNumber:     it.QuoteNumber,
		Status:          entities.QuoteStatus(it.Status),
		CustomerEmail:   it.CustomerEmail,
		CustomerPhone:   it.CustomerPhone,
		CustomerName:    it.CustomerName,
		PickupAddress:   it.PickupAddress,
		DeliveryAddress: it.DeliveryAddress,
		MoveDate:        parseTimePtr(it.MoveDate),
		Notes:           it.Notes,
		DistanceMiles:   parseDecimal(it.DistanceMiles),
		Totals: entities.QuoteTotals{
			TotalCubicFeet:  parseDecimal(it.TotalCubicFeet),
			TotalLaborHours: parseDecimal(it.TotalLaborHours),
			Subtotal:        parseDecimal(it.Subtotal),
			TaxAmount:       parseDecimal(it.TaxAmount),
			TotalAmount:     parseDecimal(it.TotalAmount),
		},
		PricingRuleID: it.PricingRuleID,
		ExpiresAt:     parseTimePtr(it.ExpiresAt),
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}

func toLineItemRecord(item entities.LineItem) lineItemRecord {
	return lineItemRecord{
		QuoteID:       item.QuoteID,
		ID:            item.ID,
		CatalogItemID: item.CatalogItemID,
		DetectedName:  item.DetectedName,
		Quantity:      item.Quantity,
		CubicFeet:     decimalPtrString(item.CubicFeet),
		LaborHours:    decimalPtrString(item.LaborHours),
		UnitPrice:     decimalPtrString(item.UnitPrice),
		TotalPrice:    decimalPtrString(item.TotalPrice),
		Confidence:    decimalPtrString(item.Confidence),
		CreatedAt:     formatTime(item.CreatedAt),
	}
}

func fromLineItemRecord(it lineItemRecord) entities.LineItem {
	return entities.LineItem{
		QuoteID:       it.QuoteID,
		ID:            it.ID,
		CatalogItemID: it.CatalogItemID,
		DetectedName:  it.DetectedName,
		Quantity:      it.Quantity,
		CubicFeet:     parseDecimalPtr(it.CubicFeet),
		LaborHours:    parseDecimalPtr(it.LaborHours),
		UnitPrice:     parseDecimalPtr(it.UnitPrice),
		TotalPrice:    parseDecimalPtr(it.TotalPrice),
		Confidence:    parseDecimalPtr(it.Confidence),
		CreatedAt:     parseTime(it.CreatedAt),
	}
}

func toQuoteMediaRecord(media entities.QuoteMedia) quoteMediaRecord {
	return quoteMediaRecord{
		QuoteID:     media.QuoteID,
		ID:          media.ID,
		FileName:    media.FileName,
		FilePath:    media.FilePath,
		FileSize:    media.FileSize,
		MimeType:    media.MimeType,
		IsProcessed: media.IsProcessed,
		CreatedAt:   formatTime(media.CreatedAt),
	}
}

func fromQuoteMediaRecord(it quoteMediaRecord) entities.QuoteMedia {
	return entities.QuoteMedia{
		QuoteID:     it.QuoteID,
		ID:          it.ID,
		FileName:    it.FileName,
		FilePath:    it.FilePath,
		FileSize:    it.FileSize,
		MimeType:    it.MimeType,
		IsProcessed: it.IsProcessed,
		CreatedAt:   parseTime(it.CreatedAt),
	}
}

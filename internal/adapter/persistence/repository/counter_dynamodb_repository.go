package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"movequote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCountersTableName = "counters"

// CounterDynamoRepository backs both the quote-number sequence and the rate
// limiter with one DynamoDB table of atomic counters.
//
// Table requirements:
//   - PK: pk (string)
//
// Rows:
//   - "SEQ#<tenant_id>#<period>": monotonically increasing quote sequence
//   - "RL#<tenant_id>#<ip>#<endpoint>#<window_start>": request count for one
//     fixed rate-limit window, with window_start kept for retention purges
//
// Both paths rely on the ADD action being atomic: concurrent callers each get
// a distinct sequence value, and the rate window rejects the request that
// would exceed the cap inside the same conditional update that counts it.

type CounterDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICounterStore = (*CounterDynamoRepository)(nil)

func NewCounterDynamoRepository(ddb *dynamodb.Client) *CounterDynamoRepository {
	return &CounterDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
	}
}

func sequenceKey(tenantID, period string) string {
	return fmt.Sprintf("SEQ#%s#%s", tenantID, period)
}

func rateWindowKey(tenantID, ip, endpoint string, windowStart time.Time) string {
	return fmt.Sprintf("RL#%s#%s#%s#%s", tenantID, ip, endpoint, windowStart.UTC().Format(time.RFC3339))
}

// NextSequence increments and returns the per-tenant-per-period sequence. The
// first call for a period creates the row and returns 1.
func (r *CounterDynamoRepository) NextSequence(ctx context.Context, tenantID, period string) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"pk": &types.AttributeValueMemberS{Value: sequenceKey(tenantID, period)},
		},
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return 0, err
	}

	attr, ok := out.Attributes["seq"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("counter %s returned no numeric seq", sequenceKey(tenantID, period))
	}
	return strconv.ParseInt(attr.Value, 10, 64)
}

// IncrementWindow counts one request against the window and returns the new
// count. Exceeding max fails the condition before the count changes, reported
// as ErrLimitExceeded.
func (r *CounterDynamoRepository) IncrementWindow(ctx context.Context, tenantID, ip, endpoint string, windowStart time.Time, max int) (int, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"pk": &types.AttributeValueMemberS{Value: rateWindowKey(tenantID, ip, endpoint, windowStart)},
		},
		ConditionExpression: aws.String("attribute_not_exists(#count) OR #count < :max"),
		UpdateExpression:    aws.String("ADD #count :one SET #window_start = if_not_exists(#window_start, :window_start)"),
		ExpressionAttributeNames: map[string]string{
			"#count":        "request_count",
			"#window_start": "window_start",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one":          &types.AttributeValueMemberN{Value: "1"},
			":max":          &types.AttributeValueMemberN{Value: strconv.Itoa(max)},
			":window_start": &types.AttributeValueMemberS{Value: formatTime(windowStart)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return 0, interfaces.ErrLimitExceeded
		}
		return 0, err
	}

	attr, ok := out.Attributes["request_count"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("rate window returned no numeric count")
	}
	count, err := strconv.Atoi(attr.Value)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// PurgeExpired deletes rate-limit windows older than cutoff and returns how
// many rows were removed. Sequence rows carry no window_start and are never
// touched.
func (r *CounterDynamoRepository) PurgeExpired(ctx context.Context, cutoff time.Time) (int, error) {
	input := &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("attribute_exists(#window_start) AND #window_start < :cutoff"),
		ExpressionAttributeNames: map[string]string{
			"#window_start": "window_start",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cutoff": &types.AttributeValueMemberS{Value: formatTime(cutoff)},
		},
		ProjectionExpression: aws.String("pk"),
	}

	deleted := 0
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return deleted, err
		}
		for _, item := range page.Items {
			pk, ok := item["pk"].(*types.AttributeValueMemberS)
			if !ok {
				continue
			}
			if _, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
				TableName: aws.String(r.tableName),
				Key: map[string]types.AttributeValue{
					"pk": &types.AttributeValueMemberS{Value: pk.Value},
				},
			}); err != nil {
				return deleted, err
			}
			deleted++
		}
	}
	return deleted, nil
}

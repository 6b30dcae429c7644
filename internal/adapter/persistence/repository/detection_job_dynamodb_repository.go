package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"movequote/internal/domain/entities"
	"movequote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultDetectionJobsTableName = "detection_jobs"

type detectionJobItem struct {
	ID           string   `dynamodbav:"id"`
	TenantID     string   `dynamodbav:"tenant_id"`
	QuoteID      string   `dynamodbav:"quote_id"`
	MediaIDs     []string `dynamodbav:"media_ids,omitempty"`
	JobType      string   `dynamodbav:"job_type"`
	Prompt       string   `dynamodbav:"prompt,omitempty"`
	AutoAddItems bool     `dynamodbav:"auto_add_items"`
	Status       string   `dynamodbav:"status"`
	Results      string   `dynamodbav:"results,omitempty"`
	ErrorMessage string   `dynamodbav:"error_message,omitempty"`
	CreatedAt    string   `dynamodbav:"created_at"`
	CompletedAt  string   `dynamodbav:"completed_at,omitempty"`
}

// DetectionJobDynamoRepository persists DetectionJob entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI tenant_id-index: tenant_id (string) / created_at (string)
//
// Status transitions are guarded by conditional updates: MarkProcessing only
// succeeds from pending, Complete/Fail only from processing. A lost race
// surfaces as ErrJobNotPending instead of silently re-running a job.

type DetectionJobDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDetectionJobRepository = (*DetectionJobDynamoRepository)(nil)

func NewDetectionJobDynamoRepository(ddb *dynamodb.Client) *DetectionJobDynamoRepository {
	return &DetectionJobDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DETECTION_JOBS_TABLE", defaultDetectionJobsTableName),
	}
}

func (r *DetectionJobDynamoRepository) Create(ctx context.Context, job entities.DetectionJob) (entities.DetectionJob, error) {
	it, err := toDetectionJobItem(job)
	if err != nil {
		return entities.DetectionJob{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.DetectionJob{}, err
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
		return entities.DetectionJob{}, err
	}
	return job, nil
}

func (r *DetectionJobDynamoRepository) GetByID(ctx context.Context, tenantID, id string) (entities.DetectionJob, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.DetectionJob{}, err
	}
	if len(out.Item) == 0 {
		return entities.DetectionJob{}, nil
	}

	var it detectionJobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.DetectionJob{}, err
	}
	if it.TenantID != tenantID {
		return entities.DetectionJob{}, nil
	}
	return fromDetectionJobItem(it)
}

func (r *DetectionJobDynamoRepository) List(ctx context.Context, tenantID string) ([]entities.DetectionJob, error) {
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
		ScanIndexForward: aws.Bool(false),
	}

	var jobs []entities.DetectionJob
	paginator := dynamodb.NewQueryPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var records []detectionJobItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &records); err != nil {
			return nil, err
		}
		for _, rec := range records {
			job, err := fromDetectionJobItem(rec)
			if err != nil {
				return nil, err
			}
			jobs = append(jobs, job)
		}
	}
	return jobs, nil
}

// MarkProcessing transitions the job from pending to processing. Any other
// current status fails the condition and is reported as ErrJobNotPending.
func (r *DetectionJobDynamoRepository) MarkProcessing(ctx context.Context, id string) (entities.DetectionJob, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
		UpdateExpression:    aws.String("SET #status = :processing"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":    &types.AttributeValueMemberS{Value: string(entities.DetectionJobStatusPending)},
			":processing": &types.AttributeValueMemberS{Value: string(entities.DetectionJobStatusProcessing)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.DetectionJob{}, interfaces.ErrJobNotPending
		}
		return entities.DetectionJob{}, err
	}

	var it detectionJobItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.DetectionJob{}, err
	}
	return fromDetectionJobItem(it)
}

func (r *DetectionJobDynamoRepository) Complete(ctx context.Context, id string, results entities.DetectionResults, completedAt time.Time) (entities.DetectionJob, error) {
	raw, err := json.Marshal(results)
	if err != nil {
		return entities.DetectionJob{}, err
	}

	return r.finish(ctx, id, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #results = :results, #completed_at = :completed_at"
		values := map[string]types.AttributeValue{
			":status":       &types.AttributeValueMemberS{Value: string(entities.DetectionJobStatusCompleted)},
			":results":      &types.AttributeValueMemberS{Value: string(raw)},
			":completed_at": &types.AttributeValueMemberS{Value: formatTime(completedAt)},
		}
		names := map[string]string{
			"#status":       "status",
			"#results":      "results",
			"#completed_at": "completed_at",
		}
		return expr, values, names
	})
}

func (r *DetectionJobDynamoRepository) Fail(ctx context.Context, id, errorMessage string, completedAt time.Time) (entities.DetectionJob, error) {
	return r.finish(ctx, id, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #error_message = :error_message, #completed_at = :completed_at"
		values := map[string]types.AttributeValue{
			":status":        &types.AttributeValueMemberS{Value: string(entities.DetectionJobStatusFailed)},
			":error_message": &types.AttributeValueMemberS{Value: errorMessage},
			":completed_at":  &types.AttributeValueMemberS{Value: formatTime(completedAt)},
		}
		names := map[string]string{
			"#status":        "status",
			"#error_message": "error_message",
			"#completed_at":  "completed_at",
		}
		return expr, values, names
	})
}

func (r *DetectionJobDynamoRepository) finish(
	ctx context.Context,
	id string,
	build func() (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.DetectionJob, error) {
	updateExpr, values, names := build()
	values[":processing"] = &types.AttributeValueMemberS{Value: string(entities.DetectionJobStatusProcessing)}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :processing"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id", "#status": "status"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.DetectionJob{}, interfaces.ErrJobNotPending
		}
		return entities.DetectionJob{}, err
	}

	var it detectionJobItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.DetectionJob{}, err
	}
	return fromDetectionJobItem(it)
}

func toDetectionJobItem(job entities.DetectionJob) (detectionJobItem, error) {
	it := detectionJobItem{
		ID:           job.ID,
		TenantID:     job.TenantID,
		QuoteID:      job.QuoteID,
		MediaIDs:     job.MediaIDs,
		JobType:      string(job.JobType),
		Prompt:       job.Prompt,
		AutoAddItems: job.AutoAddItems,
		Status:       string(job.Status),
		ErrorMessage: job.ErrorMessage,
		CreatedAt:    formatTime(job.CreatedAt),
		CompletedAt:  formatTimePtr(job.CompletedAt),
	}
	if job.Results != nil {
		raw, err := json.Marshal(job.Results)
		if err != nil {
			return detectionJobItem{}, err
		}
		it.Results = string(raw)
	}
	return it, nil
}

func fromDetectionJobItem(it detectionJobItem) (entities.DetectionJob, error) {
	job := entities.DetectionJob{
		ID:           it.ID,
		TenantID:     it.TenantID,
		QuoteID:      it.QuoteID,
		MediaIDs:     it.MediaIDs,
		JobType:      entities.DetectionJobType(it.JobType),
		Prompt:       it.Prompt,
		AutoAddItems: it.AutoAddItems,
		Status:       entities.DetectionJobStatus(it.Status),
		ErrorMessage: it.ErrorMessage,
		CreatedAt:    parseTime(it.CreatedAt),
		CompletedAt:  parseTimePtr(it.CompletedAt),
	}
	if it.Results != "" {
		var results entities.DetectionResults
		if err := json.Unmarshal([]byte(it.Results), &results); err != nil {
			return entities.DetectionJob{}, err
		}
		job.Results = &results
	}
	return job, nil
}

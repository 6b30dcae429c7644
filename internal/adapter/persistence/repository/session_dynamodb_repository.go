package repository

import (
	"context"
	"time"

	"movequote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSessionsTableName = "sessions"

type sessionItem struct {
	Token     string `dynamodbav:"token"`
	UserID    string `dynamodbav:"user_id"`
	ExpiresAt string `dynamodbav:"expires_at"`
}

// SessionDynamoRepository resolves bearer tokens against a DynamoDB sessions
// table.
//
// Table requirements:
//   - PK: token (string)
//
// Expired rows are treated as absent; a TTL attribute on expires_at is
// expected to reap them eventually.

type SessionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISessionResolver = (*SessionDynamoRepository)(nil)

func NewSessionDynamoRepository(ddb *dynamodb.Client) *SessionDynamoRepository {
	return &SessionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SESSIONS_TABLE", defaultSessionsTableName),
	}
}

func (r *SessionDynamoRepository) Resolve(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", interfaces.ErrNoSession
	}

	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"token": &types.AttributeValueMemberS{Value: token},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", err
	}
	if len(out.Item) == 0 {
		return "", interfaces.ErrNoSession
	}

	var it sessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return "", err
	}
	if it.UserID == "" {
		return "", interfaces.ErrNoSession
	}
	if it.ExpiresAt != "" && !parseTime(it.ExpiresAt).After(time.Now().UTC()) {
		return "", interfaces.ErrNoSession
	}
	return it.UserID, nil
}

package repository

import (
	"context"
	"errors"
	"time"

	"freightdesk/internal/domain/entities"
	"freightdesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSessionsTableName = "sessions"

type sessionItem struct {
	ID          string `dynamodbav:"id"`
	Token       string `dynamodbav:"token"`
	Role        string `dynamodbav:"role"`
	Username    string `dynamodbav:"username"`
	CompanyName string `dynamodbav:"company_name"`
	CreatedAt   string `dynamodbav:"created_at"`
	ExpiresAt   string `dynamodbav:"expires_at"`
	TTL         int64  `dynamodbav:"ttl"`
}

// SessionDynamoRepository persists Session entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - TTL attribute: ttl (epoch seconds), so abandoned sessions expire
//     without a reaper process.
type SessionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISessionRepository = (*SessionDynamoRepository)(nil)

func NewSessionDynamoRepository(ddb *dynamodb.Client) *SessionDynamoRepository {
	return &SessionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SESSIONS_TABLE", defaultSessionsTableName),
	}
}

func (r *SessionDynamoRepository) Create(ctx context.Context, s entities.Session) (entities.Session, error) {
	it := toSessionItem(s)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Session{}, err
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
		return entities.Session{}, err
	}
	return s, nil
}

func (r *SessionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Session, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Session{}, err
	}
	if len(out.Item) == 0 {
		return entities.Session{}, nil
	}

	var it sessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Session{}, err
	}
	return fromSessionItem(it), nil
}

func (r *SessionDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		// Deleting an already-gone session is fine; logout must not fail.
		var rnfe *types.ResourceNotFoundException
		if errors.As(err, &rnfe) {
			return nil
		}
		return err
	}
	return nil
}

func toSessionItem(s entities.Session) sessionItem {
	ttl := s.ExpiresAt
	if ttl.IsZero() {
		ttl = s.CreatedAt.Add(24 * time.Hour)
	}
	return sessionItem{
		ID:          s.ID,
		Token:       s.Token,
		Role:        string(s.Role),
		Username:    s.Username,
		CompanyName: s.CompanyName,
		CreatedAt:   s.CreatedAt.UTC().Format(time.RFC3339Nano),
		ExpiresAt:   s.ExpiresAt.UTC().Format(time.RFC3339Nano),
		TTL:         ttl.UTC().Unix(),
	}
}

func fromSessionItem(it sessionItem) entities.Session {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	expiresAt, _ := time.Parse(time.RFC3339Nano, it.ExpiresAt)
	return entities.Session{
		ID:          it.ID,
		Token:       it.Token,
		Role:        entities.Role(it.Role),
		Username:    it.Username,
		CompanyName: it.CompanyName,
		CreatedAt:   createdAt,
		ExpiresAt:   expiresAt,
	}
}

package dynamo

import (
	"context"
	"time"

	"khitma/config"
	"khitma/internal/domain/entity"
	"khitma/internal/domain/repository"
	"khitma/internal/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// leaseAPI is the subset of the DynamoDB client the lease needs.
type leaseAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// leaseItem is one row of the lock table. Times are epoch milliseconds so the
// condition expression can compare them; ttl lets DynamoDB expire abandoned rows.
type leaseItem struct {
	JobName    string `dynamodbav:"job_name"`
	Owner      string `dynamodbav:"owner"`
	AcquiredAt int64  `dynamodbav:"acquired_at"`
	ExpiresAt  int64  `dynamodbav:"expires_at"`
	TTL        int64  `dynamodbav:"ttl"`
}

type jobLockRepository struct {
	client    leaseAPI
	tableName string
}

// NewJobLockRepository builds the DynamoDB lease from the dynamo config section.
func NewJobLockRepository(ctx context.Context, cfg *config.DynamoConfig) (repository.JobLockRepository, error) {
	client, err := NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return newJobLockRepository(client, cfg.LockTable), nil
}

func newJobLockRepository(client leaseAPI, tableName string) *jobLockRepository {
	if tableName == "" {
		tableName = defaultLockTable
	}

	return &jobLockRepository{client: client, tableName: tableName}
}

// Acquire writes the lease unless a live one exists. A failed condition means
// another run holds it and is not an error.
func (r *jobLockRepository) Acquire(ctx context.Context, lease *entity.JobLease) (bool, error) {
	item, err := attributevalue.MarshalMap(leaseItem{
		JobName:    lease.JobName,
		Owner:      lease.Owner,
		AcquiredAt: lease.AcquiredAt.UnixMilli(),
		ExpiresAt:  lease.ExpiresAt.UnixMilli(),
		TTL:        lease.ExpiresAt.Add(time.Hour).Unix(),
	})
	if err != nil {
		return false, errors.Wrap(err, "marshal job lease")
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(job_name) OR expires_at < :now"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":now": item["acquired_at"],
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return false, nil
		}

		return false, errors.Wrapf(err, "failed to acquire job lease %s", lease.JobName)
	}

	return true, nil
}

// Release deletes the lease only while owner still holds it.
func (r *jobLockRepository) Release(ctx context.Context, jobName, owner string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"job_name": &types.AttributeValueMemberS{Value: jobName},
		},
		ConditionExpression:      aws.String("#owner = :owner"),
		ExpressionAttributeNames: map[string]string{"#owner": "owner"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner": &types.AttributeValueMemberS{Value: owner},
		},
	})
	if err != nil && !isConditionFailed(err) {
		return errors.Wrapf(err, "failed to release job lease %s", jobName)
	}

	return nil
}

func isConditionFailed(err error) bool {
	var conditionFailed *types.ConditionalCheckFailedException

	return errors.As(err, &conditionFailed)
}

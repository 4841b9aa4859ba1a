package repository

import (
	"context"
	"errors"
	"time"

	"movematch/internal/domain/entities"
	"movematch/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultDesignationsTableName = "designated_drivers"

type designationItem struct {
	RequestID string `dynamodbav:"request_id"`
	DriverID  string `dynamodbav:"driver_id"`
	ID        string `dynamodbav:"id"`
	CreatedAt string `dynamodbav:"created_at"`
}

// DesignationDynamoRepository persists DesignatedDriver entities in DynamoDB.
//
// Table requirements:
//   - PK: request_id (string), SK: driver_id (string)

type DesignationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDesignationRepository = (*DesignationDynamoRepository)(nil)

func NewDesignationDynamoRepository(ddb *dynamodb.Client) *DesignationDynamoRepository {
	return &DesignationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DESIGNATIONS_TABLE", defaultDesignationsTableName),
	}
}

func (r *DesignationDynamoRepository) Create(ctx context.Context, d entities.DesignatedDriver) (entities.DesignatedDriver, error) {
	it := toDesignationItem(d)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.DesignatedDriver{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#request_id)"),
		ExpressionAttributeNames: map[string]string{
			"#request_id": "request_id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.DesignatedDriver{}, interfaces.ErrDesignationExists
		}
		return entities.DesignatedDriver{}, err
	}
	return d, nil
}

func (r *DesignationDynamoRepository) ListByRequestID(ctx context.Context, requestID string) ([]entities.DesignatedDriver, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#request_id = :request_id"),
		ExpressionAttributeNames: map[string]string{
			"#request_id": "request_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":request_id": &types.AttributeValueMemberS{Value: requestID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.DesignatedDriver, 0, len(out.Items))
	for _, raw := range out.Items {
		var it designationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromDesignationItem(it))
	}
	return items, nil
}

func (r *DesignationDynamoRepository) Exists(ctx context.Context, requestID, driverID string) (bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            pairKey(requestID, driverID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	return len(out.Item) > 0, nil
}

func toDesignationItem(d entities.DesignatedDriver) designationItem {
	return designationItem{
		RequestID: d.RequestID,
		DriverID:  d.DriverID,
		ID:        d.ID,
		CreatedAt: d.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromDesignationItem(it designationItem) entities.DesignatedDriver {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.DesignatedDriver{
		ID:        it.ID,
		RequestID: it.RequestID,
		DriverID:  it.DriverID,
		CreatedAt: createdAt,
	}
}

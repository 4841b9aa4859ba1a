package repository

import (
	"context"
	"time"

	"movematch/internal/domain/entities"
	"movematch/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultRejectionsTableName = "estimate_rejections"

type rejectionItem struct {
	RequestID string `dynamodbav:"request_id"`
	DriverID  string `dynamodbav:"driver_id"`
	ID        string `dynamodbav:"id"`
	Reason    string `dynamodbav:"reason,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

// RejectionDynamoRepository persists EstimateRejection entities in DynamoDB.
//
// Table requirements:
//   - PK: request_id (string), SK: driver_id (string)
//
// Create mirrors EstimateDynamoRepository.CreateProposed from the other side:
// the same transaction shape guarantees a pair never holds both a rejection
// and a live estimate, whichever write lands first.

type RejectionDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	estimatesName string
	requestsName  string
}

var _ interfaces.IRejectionRepository = (*RejectionDynamoRepository)(nil)

func NewRejectionDynamoRepository(ddb *dynamodb.Client) *RejectionDynamoRepository {
	return &RejectionDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("REJECTIONS_TABLE", defaultRejectionsTableName),
		estimatesName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
		requestsName:  getenvDefault("MOVE_REQUESTS_TABLE", defaultMoveRequestsTableName),
	}
}

func (r *RejectionDynamoRepository) Create(ctx context.Context, rej entities.EstimateRejection) (entities.EstimateRejection, error) {
	it := toRejectionItem(rej)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.EstimateRejection{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                av,
					ConditionExpression: aws.String("attribute_not_exists(#request_id)"),
					ExpressionAttributeNames: map[string]string{
						"#request_id": "request_id",
					},
				},
			},
			{
				ConditionCheck: &types.ConditionCheck{
					TableName:           aws.String(r.estimatesName),
					Key:                 pairKey(rej.RequestID, rej.DriverID),
					ConditionExpression: aws.String("attribute_not_exists(#request_id) OR attribute_exists(#deleted_at)"),
					ExpressionAttributeNames: map[string]string{
						"#request_id": "request_id",
						"#deleted_at": "deleted_at",
					},
				},
			},
			requestPendingCheck(r.requestsName, rej.RequestID),
		},
	})
	if err != nil {
		if reason := canceledReason(err); reason >= 0 {
			if reason <= 1 {
				return entities.EstimateRejection{}, interfaces.ErrResponseExists
			}
			return entities.EstimateRejection{}, interfaces.ErrRequestNotOpen
		}
		return entities.EstimateRejection{}, err
	}
	return rej, nil
}

func (r *RejectionDynamoRepository) GetForDriver(ctx context.Context, requestID, driverID string) (entities.EstimateRejection, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            pairKey(requestID, driverID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.EstimateRejection{}, err
	}
	if len(out.Item) == 0 {
		return entities.EstimateRejection{}, nil
	}

	var it rejectionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.EstimateRejection{}, err
	}
	return fromRejectionItem(it), nil
}

func toRejectionItem(r entities.EstimateRejection) rejectionItem {
	return rejectionItem{
		RequestID: r.RequestID,
		DriverID:  r.DriverID,
		ID:        r.ID,
		Reason:    r.Reason,
		CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromRejectionItem(it rejectionItem) entities.EstimateRejection {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.EstimateRejection{
		ID:        it.ID,
		RequestID: it.RequestID,
		DriverID:  it.DriverID,
		Reason:    it.Reason,
		CreatedAt: createdAt,
	}
}

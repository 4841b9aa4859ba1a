package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"movematch/internal/domain/entities"
	"movematch/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEstimatesTableName = "estimates"
	estimatesIDIndex          = "id-index"
	estimatesDriverIDIndex    = "driver_id-index"
)

type estimateItem struct {
	RequestID    string `dynamodbav:"request_id"`
	DriverID     string `dynamodbav:"driver_id"`
	ID           string `dynamodbav:"id"`
	Price        string `dynamodbav:"price"`
	Comment      string `dynamodbav:"comment,omitempty"`
	IsDesignated bool   `dynamodbav:"is_designated"`
	Status       string `dynamodbav:"status"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
	DeletedAt    string `dynamodbav:"deleted_at,omitempty"`
}

// EstimateDynamoRepository persists Estimate entities in DynamoDB.
//
// Table requirements:
//   - PK: request_id (string), SK: driver_id (string)
//   - GSI: id-index (PK: id)
//   - GSI: driver_id-index (PK: driver_id)
//
// Keying on (request_id, driver_id) makes "one response per driver per
// request" a primary-key fact rather than an application-level check. The
// cross-table invariants (no coexisting rejection, request still PENDING) are
// enforced by TransactWriteItems condition checks against the rejections and
// move_requests tables.

type EstimateDynamoRepository struct {
	ddb            *dynamodb.Client
	tableName      string
	rejectionsName string
	requestsName   string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:            ddb,
		tableName:      getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
		rejectionsName: getenvDefault("REJECTIONS_TABLE", defaultRejectionsTableName),
		requestsName:   getenvDefault("MOVE_REQUESTS_TABLE", defaultMoveRequestsTableName),
	}
}

func (r *EstimateDynamoRepository) CreateProposed(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	it := toEstimateItem(e)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Estimate{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName: aws.String(r.tableName),
					Item:      av,
					// A soft-deleted row may be replaced; a live one may not.
					ConditionExpression: aws.String("attribute_not_exists(#request_id) OR attribute_exists(#deleted_at)"),
					ExpressionAttributeNames: map[string]string{
						"#request_id": "request_id",
						"#deleted_at": "deleted_at",
					},
				},
			},
			{
				ConditionCheck: &types.ConditionCheck{
					TableName:           aws.String(r.rejectionsName),
					Key:                 pairKey(e.RequestID, e.DriverID),
					ConditionExpression: aws.String("attribute_not_exists(#request_id)"),
					ExpressionAttributeNames: map[string]string{
						"#request_id": "request_id",
					},
				},
			},
			requestPendingCheck(r.requestsName, e.RequestID),
		},
	})
	if err != nil {
		// Reason order matches TransactItems order: estimate put, rejection
		// check, request check.
		if reason := canceledReason(err); reason >= 0 {
			if reason <= 1 {
				return entities.Estimate{}, interfaces.ErrResponseExists
			}
			return entities.Estimate{}, interfaces.ErrRequestNotOpen
		}
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(estimatesIDIndex),
		KeyConditionExpression: aws.String("#id = :id"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: id},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Items) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func (r *EstimateDynamoRepository) GetForDriver(ctx context.Context, requestID, driverID string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            pairKey(requestID, driverID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func (r *EstimateDynamoRepository) CountOpenByDriver(ctx context.Context, driverID string) (int, error) {
	total := 0
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(estimatesDriverIDIndex),
			KeyConditionExpression: aws.String("#driver_id = :driver_id"),
			FilterExpression:       aws.String("#status = :proposed AND #is_designated = :no AND attribute_not_exists(#deleted_at)"),
			Select:                 types.SelectCount,
			ExpressionAttributeNames: map[string]string{
				"#driver_id":     "driver_id",
				"#status":        "status",
				"#is_designated": "is_designated",
				"#deleted_at":    "deleted_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":driver_id": &types.AttributeValueMemberS{Value: driverID},
				":proposed":  &types.AttributeValueMemberS{Value: string(entities.EstimateStatusProposed)},
				":no":        &types.AttributeValueMemberBOOL{Value: false},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return 0, err
		}
		total += int(out.Count)
		if out.LastEvaluatedKey == nil {
			return total, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

// Accept flips the estimate to ACCEPTED and its parent request to APPROVED in
// one transaction, re-checking both statuses at commit time.
func (r *EstimateDynamoRepository) Accept(ctx context.Context, requestID, driverID string) (entities.Estimate, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName:           aws.String(r.tableName),
					Key:                 pairKey(requestID, driverID),
					ConditionExpression: aws.String("#status = :proposed AND attribute_not_exists(#deleted_at)"),
					UpdateExpression:    aws.String("SET #status = :accepted, #updated_at = :updated_at"),
					ExpressionAttributeNames: map[string]string{
						"#status":     "status",
						"#updated_at": "updated_at",
						"#deleted_at": "deleted_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":proposed":   &types.AttributeValueMemberS{Value: string(entities.EstimateStatusProposed)},
						":accepted":   &types.AttributeValueMemberS{Value: string(entities.EstimateStatusAccepted)},
						":updated_at": &types.AttributeValueMemberS{Value: now},
					},
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(r.requestsName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: requestID},
					},
					ConditionExpression: aws.String("#status = :pending AND attribute_not_exists(#deleted_at)"),
					UpdateExpression:    aws.String("SET #status = :approved, #updated_at = :updated_at"),
					ExpressionAttributeNames: map[string]string{
						"#status":     "status",
						"#updated_at": "updated_at",
						"#deleted_at": "deleted_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":pending":    &types.AttributeValueMemberS{Value: string(entities.RequestStatusPending)},
						":approved":   &types.AttributeValueMemberS{Value: string(entities.RequestStatusApproved)},
						":updated_at": &types.AttributeValueMemberS{Value: now},
					},
				},
			},
		},
	})
	if err != nil {
		if reason := canceledReason(err); reason >= 0 {
			if reason == 0 {
				return entities.Estimate{}, interfaces.ErrEstimateNotOpen
			}
			return entities.Estimate{}, interfaces.ErrRequestNotOpen
		}
		return entities.Estimate{}, err
	}

	return r.GetForDriver(ctx, requestID, driverID)
}

// pairKey builds the (request_id, driver_id) composite key shared by the
// estimates, rejections and designations tables.
func pairKey(requestID, driverID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"request_id": &types.AttributeValueMemberS{Value: requestID},
		"driver_id":  &types.AttributeValueMemberS{Value: driverID},
	}
}

// requestPendingCheck asserts the parent request is still PENDING and live.
func requestPendingCheck(tableName, requestID string) types.TransactWriteItem {
	return types.TransactWriteItem{
		ConditionCheck: &types.ConditionCheck{
			TableName: aws.String(tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: requestID},
			},
			ConditionExpression: aws.String("#status = :pending AND attribute_not_exists(#deleted_at)"),
			ExpressionAttributeNames: map[string]string{
				"#status":     "status",
				"#deleted_at": "deleted_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pending": &types.AttributeValueMemberS{Value: string(entities.RequestStatusPending)},
			},
		},
	}
}

// canceledReason returns the index of the first failed condition in a
// canceled transaction, or -1 when the error is not a condition failure.
func canceledReason(err error) int {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return -1
	}
	for i, reason := range tce.CancellationReasons {
		if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
			return i
		}
	}
	return -1
}

func toEstimateItem(e entities.Estimate) estimateItem {
	it := estimateItem{
		RequestID:    e.RequestID,
		DriverID:     e.DriverID,
		ID:           e.ID,
		Price:        floatToString(e.Price),
		Comment:      e.Comment,
		IsDesignated: e.IsDesignated,
		Status:       string(e.Status),
		CreatedAt:    e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if e.DeletedAt != nil {
		it.DeletedAt = e.DeletedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	price, _ := strconv.ParseFloat(it.Price, 64)
	e := entities.Estimate{
		ID:           it.ID,
		RequestID:    it.RequestID,
		DriverID:     it.DriverID,
		Price:        price,
		Comment:      it.Comment,
		IsDesignated: it.IsDesignated,
		Status:       entities.EstimateStatus(it.Status),
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
	if it.DeletedAt != "" {
		if deletedAt, err := time.Parse(time.RFC3339Nano, it.DeletedAt); err == nil {
			e.DeletedAt = &deletedAt
		}
	}
	return e
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

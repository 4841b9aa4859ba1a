package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"movematch/internal/domain/entities"
	"movematch/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultMoveRequestsTableName = "move_requests"
	moveRequestsStatusIndex      = "status-index"

	// moveDateLayout keeps move_date lexically orderable in the status-index
	// sort key (RFC3339Nano fractions would break lexical ordering).
	moveDateLayout = "2006-01-02"
)

type moveRequestItem struct {
	ID          string `dynamodbav:"id"`
	CustomerID  string `dynamodbav:"customer_id"`
	MoveType    string `dynamodbav:"move_type"`
	MoveDate    string `dynamodbav:"move_date"`
	FromAddress string `dynamodbav:"from_address"`
	ToAddress   string `dynamodbav:"to_address"`
	Status      string `dynamodbav:"status"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
	DeletedAt   string `dynamodbav:"deleted_at,omitempty"`
}

// MoveRequestDynamoRepository persists MoveRequest entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: status-index (PK: status, SK: move_date)
//
// Soft-deleted rows keep a deleted_at attribute; every query here filters on
// attribute_not_exists(deleted_at) so they never reach the engine.

type MoveRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMoveRequestRepository = (*MoveRequestDynamoRepository)(nil)

func NewMoveRequestDynamoRepository(ddb *dynamodb.Client) *MoveRequestDynamoRepository {
	return &MoveRequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MOVE_REQUESTS_TABLE", defaultMoveRequestsTableName),
	}
}

func (r *MoveRequestDynamoRepository) Create(ctx context.Context, req entities.MoveRequest) (entities.MoveRequest, error) {
	it := toMoveRequestItem(req)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.MoveRequest{}, err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.MoveRequest{}, interfaces.ErrIDExists
		}
		return entities.MoveRequest{}, err
	}
	return req, nil
}

func (r *MoveRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.MoveRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.MoveRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.MoveRequest{}, nil
	}

	var it moveRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.MoveRequest{}, err
	}
	return fromMoveRequestItem(it), nil
}

// CompletableIDs selects up to limit ids of live requests whose move_date lies
// strictly before the given day and whose status is still PENDING or APPROVED,
// sorted by id so batches are deterministic and reproducible.
func (r *MoveRequestDynamoRepository) CompletableIDs(ctx context.Context, before time.Time, limit int) ([]string, error) {
	ids := make([]string, 0, limit)
	for _, status := range []entities.RequestStatus{entities.RequestStatusPending, entities.RequestStatusApproved} {
		statusIDs, err := r.completableIDsByStatus(ctx, status, before, limit)
		if err != nil {
			return nil, err
		}
		ids = append(ids, statusIDs...)
	}

	sort.Strings(ids)
	if len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

func (r *MoveRequestDynamoRepository) completableIDsByStatus(ctx context.Context, status entities.RequestStatus, before time.Time, limit int) ([]string, error) {
	var ids []string
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(moveRequestsStatusIndex),
			KeyConditionExpression: aws.String("#status = :status AND #move_date < :before"),
			FilterExpression:       aws.String("attribute_not_exists(#deleted_at)"),
			ProjectionExpression:   aws.String("#id"),
			ExpressionAttributeNames: map[string]string{
				"#id":         "id",
				"#status":     "status",
				"#move_date":  "move_date",
				"#deleted_at": "deleted_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":status": &types.AttributeValueMemberS{Value: string(status)},
				":before": &types.AttributeValueMemberS{Value: before.UTC().Format(moveDateLayout)},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it moveRequestItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			ids = append(ids, it.ID)
		}
		if len(ids) >= limit || out.LastEvaluatedKey == nil {
			return ids, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

// CountCompletable uses the identical predicate as CompletableIDs so the
// reported backlog never drifts from the actual selection.
func (r *MoveRequestDynamoRepository) CountCompletable(ctx context.Context, before time.Time) (int, error) {
	total := 0
	for _, status := range []entities.RequestStatus{entities.RequestStatusPending, entities.RequestStatusApproved} {
		var startKey map[string]types.AttributeValue
		for {
			out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
				TableName:              aws.String(r.tableName),
				IndexName:              aws.String(moveRequestsStatusIndex),
				KeyConditionExpression: aws.String("#status = :status AND #move_date < :before"),
				FilterExpression:       aws.String("attribute_not_exists(#deleted_at)"),
				Select:                 types.SelectCount,
				ExpressionAttributeNames: map[string]string{
					"#status":     "status",
					"#move_date":  "move_date",
					"#deleted_at": "deleted_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":status": &types.AttributeValueMemberS{Value: string(status)},
					":before": &types.AttributeValueMemberS{Value: before.UTC().Format(moveDateLayout)},
				},
				ExclusiveStartKey: startKey,
			})
			if err != nil {
				return 0, err
			}
			total += int(out.Count)
			if out.LastEvaluatedKey == nil {
				break
			}
			startKey = out.LastEvaluatedKey
		}
	}
	return total, nil
}

// Complete marks each id COMPLETED, re-checking in the update's own condition
// that the row is still PENDING or APPROVED and live. Rows stolen by a
// concurrent writer fail their check and are skipped; the returned count is
// the number of rows actually updated.
func (r *MoveRequestDynamoRepository) Complete(ctx context.Context, ids []string) (int, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	count := 0
	for _, id := range ids {
		_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			},
			ConditionExpression: aws.String("(#status = :pending OR #status = :approved) AND attribute_not_exists(#deleted_at)"),
			UpdateExpression:    aws.String("SET #status = :completed, #updated_at = :updated_at"),
			ExpressionAttributeNames: map[string]string{
				"#status":     "status",
				"#updated_at": "updated_at",
				"#deleted_at": "deleted_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pending":    &types.AttributeValueMemberS{Value: string(entities.RequestStatusPending)},
				":approved":   &types.AttributeValueMemberS{Value: string(entities.RequestStatusApproved)},
				":completed":  &types.AttributeValueMemberS{Value: string(entities.RequestStatusCompleted)},
				":updated_at": &types.AttributeValueMemberS{Value: now},
			},
		})
		if err != nil {
			var cfe *types.ConditionalCheckFailedException
			if errors.As(err, &cfe) {
				continue
			}
			return count, err
		}
		count++
	}
	return count, nil
}

func toMoveRequestItem(r entities.MoveRequest) moveRequestItem {
	it := moveRequestItem{
		ID:          r.ID,
		CustomerID:  r.CustomerID,
		MoveType:    string(r.MoveType),
		MoveDate:    r.MoveDate.UTC().Format(moveDateLayout),
		FromAddress: r.FromAddress,
		ToAddress:   r.ToAddress,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   r.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if r.DeletedAt != nil {
		it.DeletedAt = r.DeletedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromMoveRequestItem(it moveRequestItem) entities.MoveRequest {
	moveDate, _ := time.Parse(moveDateLayout, it.MoveDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	r := entities.MoveRequest{
		ID:          it.ID,
		CustomerID:  it.CustomerID,
		MoveType:    entities.MoveType(it.MoveType),
		MoveDate:    moveDate,
		FromAddress: it.FromAddress,
		ToAddress:   it.ToAddress,
		Status:      entities.RequestStatus(it.Status),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
	if it.DeletedAt != "" {
		if deletedAt, err := time.Parse(time.RFC3339Nano, it.DeletedAt); err == nil {
			r.DeletedAt = &deletedAt
		}
	}
	return r
}

package repository

import (
	"context"
	"errors"

	"estimate_engine/internal/domain/entities"
	"estimate_engine/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const paymentsIDIndex = "id-index"

type paymentItem struct {
	EstimateID     string  `dynamodbav:"estimate_id"`
	ID             string  `dynamodbav:"id"`
	OrganizationID string  `dynamodbav:"organization_id"`
	Amount         float64 `dynamodbav:"amount"`
	Method         string  `dynamodbav:"payment_method"`
	Reference      string  `dynamodbav:"reference,omitempty"`
	PaymentDate    string  `dynamodbav:"payment_date"`
	CreatedAt      string  `dynamodbav:"created_at"`
}

// PaymentDynamoRepository persists the payment ledger in DynamoDB.
//
// Table requirements:
//   - PK: estimate_id (string), SK: id (string)
//   - GSI: id-index (PK: id)
//
// Keying by estimate lets the ledger be read with a consistent query.
type PaymentDynamoRepository struct {
	ddb            *dynamodb.Client
	tableName      string
	estimatesTable string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client, tableName, estimatesTable string) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{ddb: ddb, tableName: tableName, estimatesTable: estimatesTable}
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsIDIndex),
		KeyConditionExpression: aws.String("id = :id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: id},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Items) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ListByEstimateID(ctx context.Context, estimateID string) ([]entities.Payment, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("estimate_id = :eid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":eid": &types.AttributeValueMemberS{Value: estimateID},
		},
		ConsistentRead: aws.Bool(true),
	})

	payments := make([]entities.Payment, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it paymentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			payments = append(payments, fromPaymentItem(it))
		}
	}
	return payments, nil
}

// CreateWithEstimate writes the payment and the estimate summary in one
// transaction. If the estimate's version moved, neither item is written.
func (r *PaymentDynamoRepository) CreateWithEstimate(ctx context.Context, p entities.Payment, e entities.Estimate) (entities.Estimate, error) {
	pav, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Estimate{}, err
	}
	estPut, next, err := estimatePut(r.estimatesTable, e)
	if err != nil {
		return entities.Estimate{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:           aws.String(r.tableName),
				Item:                pav,
				ConditionExpression: aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			}},
			{Put: &estPut},
		},
	})
	if err != nil {
		return entities.Estimate{}, classifyTransactionFailure(err)
	}
	return next, nil
}

// classifyTransactionFailure maps a cancelled ledger transaction the same way
// classifyConditionFailure maps a single put: nil when the estimate row is gone
// (the caller then returns a zero estimate), ErrVersionConflict when it moved.
// The estimate guard is the second transaction item.
func classifyTransactionFailure(err error) error {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return err
	}
	reasons := tce.CancellationReasons
	if len(reasons) > 1 && aws.ToString(reasons[1].Code) == "ConditionalCheckFailed" {
		if len(reasons[1].Item) == 0 {
			return nil
		}
		return interfaces.ErrVersionConflict
	}
	return err
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		EstimateID:     p.EstimateID,
		ID:             p.ID,
		OrganizationID: p.OrganizationID,
		Amount:         p.Amount,
		Method:         string(p.Method),
		Reference:      p.Reference,
		PaymentDate:    formatTime(p.PaymentDate),
		CreatedAt:      formatTime(p.CreatedAt),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	return entities.Payment{
		ID:             it.ID,
		EstimateID:     it.EstimateID,
		OrganizationID: it.OrganizationID,
		Amount:         it.Amount,
		Method:         entities.PaymentMethod(it.Method),
		Reference:      it.Reference,
		PaymentDate:    parseTime(it.PaymentDate),
		CreatedAt:      parseTime(it.CreatedAt),
	}
}

package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"

	"estimate_engine/internal/domain/entities"
	"estimate_engine/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	estimatesPublicTokenIndex  = "public_token-index"
	estimatesOrganizationIndex = "organization_id-index"
)

type lineItemRecord struct {
	ID          string  `dynamodbav:"id"`
	Description string  `dynamodbav:"description"`
	Quantity    float64 `dynamodbav:"quantity"`
	UnitPrice   float64 `dynamodbav:"unit_price"`
	TotalPrice  float64 `dynamodbav:"total_price"`
}

type estimateItem struct {
	ID             string           `dynamodbav:"id"`
	OrganizationID string           `dynamodbav:"organization_id"`
	ClientName     string           `dynamodbav:"client_name"`
	ClientEmail    string           `dynamodbav:"client_email,omitempty"`
	ClientPhone    string           `dynamodbav:"client_phone,omitempty"`
	AddressLine1   string           `dynamodbav:"address_line1,omitempty"`
	AddressLine2   string           `dynamodbav:"address_line2,omitempty"`
	City           string           `dynamodbav:"city,omitempty"`
	State          string           `dynamodbav:"state,omitempty"`
	PostalCode     string           `dynamodbav:"postal_code,omitempty"`
	ProjectType    string           `dynamodbav:"project_type,omitempty"`
	Status         string           `dynamodbav:"status"`
	Items          []lineItemRecord `dynamodbav:"items"`
	Subtotal       float64          `dynamodbav:"subtotal"`
	TaxRate        float64          `dynamodbav:"tax_rate"`
	TaxAmount      float64          `dynamodbav:"tax_amount"`
	DiscountAmount float64          `dynamodbav:"discount_amount"`
	TotalAmount    float64          `dynamodbav:"total_amount"`
	AmountPaid     float64          `dynamodbav:"amount_paid"`
	BalanceDue     float64          `dynamodbav:"balance_due"`
	PaymentStatus  string           `dynamodbav:"payment_status"`
	Notes          string           `dynamodbav:"notes,omitempty"`
	Terms          string           `dynamodbav:"terms,omitempty"`
	ValidUntil     string           `dynamodbav:"valid_until,omitempty"`
	SentAt         string           `dynamodbav:"sent_at,omitempty"`
	ApprovedAt     string           `dynamodbav:"approved_at,omitempty"`
	PublicToken    string           `dynamodbav:"public_token"`
	CreatedAt      string           `dynamodbav:"created_at"`
	UpdatedAt      string           `dynamodbav:"updated_at"`
	Version        int64            `dynamodbav:"version"`
}

// EstimateDynamoRepository persists Estimate entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: public_token-index (PK: public_token)
//   - GSI: organization_id-index (PK: organization_id)
type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client, tableName string) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	av, err := attributevalue.MarshalMap(toEstimateItem(e))
	if err != nil {
		return entities.Estimate{}, err
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
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}
	return unmarshalEstimate(out.Item)
}

// GetByPublicToken resolves the id through the index, then re-reads the row
// consistently so the caller always sees the latest version.
func (r *EstimateDynamoRepository) GetByPublicToken(ctx context.Context, token string) (entities.Estimate, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(estimatesPublicTokenIndex),
		KeyConditionExpression: aws.String("public_token = :token"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":token": &types.AttributeValueMemberS{Value: token},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Items) == 0 {
		return entities.Estimate{}, nil
	}

	var ref struct {
		ID string `dynamodbav:"id"`
	}
	if err := attributevalue.UnmarshalMap(out.Items[0], &ref); err != nil {
		return entities.Estimate{}, err
	}
	return r.GetByID(ctx, ref.ID)
}

func (r *EstimateDynamoRepository) ListByOrganizationID(ctx context.Context, organizationID string) ([]entities.Estimate, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(estimatesOrganizationIndex),
		KeyConditionExpression: aws.String("organization_id = :org"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":org": &types.AttributeValueMemberS{Value: organizationID},
		},
	})

	estimates := make([]entities.Estimate, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			e, err := unmarshalEstimate(raw)
			if err != nil {
				return nil, err
			}
			estimates = append(estimates, e)
		}
	}
	sort.Slice(estimates, func(i, j int) bool { return estimates[i].CreatedAt.After(estimates[j].CreatedAt) })
	return estimates, nil
}

func (r *EstimateDynamoRepository) Update(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	next, err := r.put(ctx, e)
	if token, ok := storedToken(err, e); ok {
		// The token is immutable; keep the stored one and write again.
		e.PublicToken = token
		next, err = r.put(ctx, e)
	}
	if err != nil {
		if handled, cerr := classifyConditionFailure(err); handled {
			return entities.Estimate{}, cerr
		}
		return entities.Estimate{}, err
	}
	return next, nil
}

func (r *EstimateDynamoRepository) put(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	put, next, err := estimatePut(r.tableName, e)
	if err != nil {
		return entities.Estimate{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                           put.TableName,
		Item:                                put.Item,
		ConditionExpression:                 put.ConditionExpression,
		ExpressionAttributeNames:            put.ExpressionAttributeNames,
		ExpressionAttributeValues:           put.ExpressionAttributeValues,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	return next, nil
}

// storedToken reports the stored public token when a put failed only because
// the caller carried a different token at the expected version.
func storedToken(err error, e entities.Estimate) (string, bool) {
	var cfe *types.ConditionalCheckFailedException
	if !errors.As(err, &cfe) || len(cfe.Item) == 0 {
		return "", false
	}
	stored, uerr := unmarshalEstimate(cfe.Item)
	if uerr != nil || stored.Version != e.Version || stored.PublicToken == e.PublicToken {
		return "", false
	}
	return stored.PublicToken, true
}

// estimatePut builds the guarded put that stores e with its version bumped.
// It is shared by Update and the ledger transaction.
func estimatePut(tableName string, e entities.Estimate) (types.Put, entities.Estimate, error) {
	next := e.Clone()
	next.Version = e.Version + 1

	av, err := attributevalue.MarshalMap(toEstimateItem(next))
	if err != nil {
		return types.Put{}, entities.Estimate{}, err
	}
	cond, names, values := versionGuard(e.Version, e.PublicToken)
	return types.Put{
		TableName:                           aws.String(tableName),
		Item:                                av,
		ConditionExpression:                 cond,
		ExpressionAttributeNames:            names,
		ExpressionAttributeValues:           values,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	}, next, nil
}

func unmarshalEstimate(raw map[string]types.AttributeValue) (entities.Estimate, error) {
	var it estimateItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func toEstimateItem(e entities.Estimate) estimateItem {
	items := make([]lineItemRecord, 0, len(e.Items))
	for _, li := range e.Items {
		items = append(items, lineItemRecord{
			ID:          li.ID,
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			TotalPrice:  li.TotalPrice,
		})
	}
	return estimateItem{
		ID:             e.ID,
		OrganizationID: e.OrganizationID,
		ClientName:     e.ClientName,
		ClientEmail:    e.ClientEmail,
		ClientPhone:    e.ClientPhone,
		AddressLine1:   e.AddressLine1,
		AddressLine2:   e.AddressLine2,
		City:           e.City,
		State:          e.State,
		PostalCode:     e.PostalCode,
		ProjectType:    e.ProjectType,
		Status:         string(e.Status),
		Items:          items,
		Subtotal:       e.Subtotal,
		TaxRate:        e.TaxRate,
		TaxAmount:      e.TaxAmount,
		DiscountAmount: e.DiscountAmount,
		TotalAmount:    e.TotalAmount,
		AmountPaid:     e.AmountPaid,
		BalanceDue:     e.BalanceDue,
		PaymentStatus:  string(e.PaymentStatus),
		Notes:          e.Notes,
		Terms:          e.Terms,
		ValidUntil:     formatTimePtr(e.ValidUntil),
		SentAt:         formatTimePtr(e.SentAt),
		ApprovedAt:     formatTimePtr(e.ApprovedAt),
		PublicToken:    e.PublicToken,
		CreatedAt:      formatTime(e.CreatedAt),
		UpdatedAt:      formatTime(e.UpdatedAt),
		Version:        e.Version,
	}
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	items := make([]entities.LineItem, 0, len(it.Items))
	for _, li := range it.Items {
		items = append(items, entities.LineItem{
			ID:          li.ID,
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			TotalPrice:  li.TotalPrice,
		})
	}
	return entities.Estimate{
		ID:             it.ID,
		OrganizationID: it.OrganizationID,
		ClientName:     it.ClientName,
		ClientEmail:    it.ClientEmail,
		ClientPhone:    it.ClientPhone,
		AddressLine1:   it.AddressLine1,
		AddressLine2:   it.AddressLine2,
		City:           it.City,
		State:          it.State,
		PostalCode:     it.PostalCode,
		ProjectType:    it.ProjectType,
		Status:         entities.EstimateStatus(it.Status),
		Items:          items,
		Subtotal:       it.Subtotal,
		TaxRate:        it.TaxRate,
		TaxAmount:      it.TaxAmount,
		DiscountAmount: it.DiscountAmount,
		TotalAmount:    it.TotalAmount,
		AmountPaid:     it.AmountPaid,
		BalanceDue:     it.BalanceDue,
		PaymentStatus:  entities.PaymentStatus(it.PaymentStatus),
		Notes:          it.Notes,
		Terms:          it.Terms,
		ValidUntil:     parseTimePtr(it.ValidUntil),
		SentAt:         parseTimePtr(it.SentAt),
		ApprovedAt:     parseTimePtr(it.ApprovedAt),
		PublicToken:    it.PublicToken,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
		Version:        it.Version,
	}
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

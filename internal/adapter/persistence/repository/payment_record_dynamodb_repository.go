package repository

import (
	"context"
	"errors"
	"log"

	"casamento_presentes/internal/domain/entities"
	"casamento_presentes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "payments"
	PaymentsGiftIDIndex      = "gift_id-index"

	maxSaveAttempts = 3
)

type paymentRecordItem struct {
	ID         string `dynamodbav:"id"`
	CheckoutID string `dynamodbav:"checkout_id"`
	GiftID     string `dynamodbav:"gift_id,omitempty"`
	Gateway    string `dynamodbav:"gateway"`
	Method     string `dynamodbav:"method"`
	Status     string `dynamodbav:"status"`
	Amount     int64  `dynamodbav:"amount_cents"`
	GuestName  string `dynamodbav:"guest_name"`
	GuestEmail string `dynamodbav:"guest_email,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
	Raw        string `dynamodbav:"raw,omitempty"`
}

// dynamoAPI is the part of *dynamodb.Client the repository uses.
type dynamoAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// PaymentRecordDynamoRepository persists PaymentRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: gift_id-index (PK: gift_id)
type PaymentRecordDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IPaymentRecordRepository = (*PaymentRecordDynamoRepository)(nil)

func NewPaymentRecordDynamoRepository(ddb *dynamodb.Client, tableName string) *PaymentRecordDynamoRepository {
	return newPaymentRecordDynamoRepository(ddb, tableName)
}

func newPaymentRecordDynamoRepository(ddb dynamoAPI, tableName string) *PaymentRecordDynamoRepository {
	if tableName == "" {
		tableName = defaultPaymentsTableName
	}
	return &PaymentRecordDynamoRepository{ddb: ddb, tableName: tableName}
}

// Save re-reads and re-merges when a conditional write loses to a concurrent
// writer, up to maxSaveAttempts times.
func (r *PaymentRecordDynamoRepository) Save(ctx context.Context, rec entities.PaymentRecord) (entities.PaymentRecord, bool, error) {
	var err error
	for attempt := 1; attempt <= maxSaveAttempts; attempt++ {
		var (
			out     entities.PaymentRecord
			changed bool
		)
		out, changed, err = r.trySave(ctx, rec)
		var ccf *types.ConditionalCheckFailedException
		if !errors.As(err, &ccf) {
			return out, changed, err
		}
		log.Printf("[payment][ledger] conditional write lost payment_id=%s attempt=%d", rec.ID, attempt)
	}
	return entities.PaymentRecord{}, false, err
}

func (r *PaymentRecordDynamoRepository) trySave(ctx context.Context, rec entities.PaymentRecord) (entities.PaymentRecord, bool, error) {
	existing, err := r.GetByID(ctx, rec.ID)
	switch {
	case errors.Is(err, interfaces.ErrPaymentRecordNotFound):
		rec = stamp(rec)
		if err := r.put(ctx, rec, "attribute_not_exists(#id)", nil); err != nil {
			return entities.PaymentRecord{}, false, err
		}
		return rec, true, nil
	case err != nil:
		return entities.PaymentRecord{}, false, err
	}

	merged, changed := mergeRecord(existing, rec)
	if !changed {
		return existing, false, nil
	}
	prev := map[string]types.AttributeValue{
		":prev": &types.AttributeValueMemberS{Value: string(existing.Status)},
	}
	if err := r.put(ctx, merged, "#status = :prev", prev); err != nil {
		return entities.PaymentRecord{}, false, err
	}
	return merged, true, nil
}

func (r *PaymentRecordDynamoRepository) put(ctx context.Context, rec entities.PaymentRecord, cond string, values map[string]types.AttributeValue) error {
	av, err := attributevalue.MarshalMap(toPaymentRecordItem(rec))
	if err != nil {
		return err
	}
	names := map[string]string{"#id": "id"}
	if values != nil {
		names = map[string]string{"#status": "status"}
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(r.tableName),
		Item:                      av,
		ConditionExpression:       aws.String(cond),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	return err
}

func (r *PaymentRecordDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentRecord{}, interfaces.ErrPaymentRecordNotFound
	}

	var it paymentRecordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentRecord{}, err
	}
	return fromPaymentRecordItem(it), nil
}

func (r *PaymentRecordDynamoRepository) ListByGiftID(ctx context.Context, giftID string) ([]entities.PaymentRecord, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(PaymentsGiftIDIndex),
		KeyConditionExpression: aws.String("gift_id = :gid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":gid": &types.AttributeValueMemberS{Value: giftID},
		},
	})

	items := make([]entities.PaymentRecord, 0)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it paymentRecordItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromPaymentRecordItem(it))
		}
	}
	sortByCreatedAt(items)
	return items, nil
}

func toPaymentRecordItem(r entities.PaymentRecord) paymentRecordItem {
	return paymentRecordItem{
		ID:         r.ID,
		CheckoutID: r.CheckoutID,
		GiftID:     r.GiftID,
		Gateway:    r.Gateway,
		Method:     string(r.Method),
		Status:     string(r.Status),
		Amount:     int64(r.Amount),
		GuestName:  r.GuestName,
		GuestEmail: r.GuestEmail,
		CreatedAt:  formatTime(r.CreatedAt),
		UpdatedAt:  formatTime(r.UpdatedAt),
		Raw:        string(r.Raw),
	}
}

func fromPaymentRecordItem(it paymentRecordItem) entities.PaymentRecord {
	rec := entities.PaymentRecord{
		ID:         it.ID,
		CheckoutID: it.CheckoutID,
		GiftID:     it.GiftID,
		Gateway:    it.Gateway,
		Method:     entities.PaymentMethodID(it.Method),
		Status:     entities.PaymentStatus(it.Status),
		Amount:     entities.Cents(it.Amount),
		GuestName:  it.GuestName,
		GuestEmail: it.GuestEmail,
		CreatedAt:  parseTime(it.CreatedAt),
		UpdatedAt:  parseTime(it.UpdatedAt),
	}
	if it.Raw != "" {
		rec.Raw = []byte(it.Raw)
	}
	return rec
}

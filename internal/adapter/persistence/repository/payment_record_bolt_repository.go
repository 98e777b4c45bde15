package repository

import (
	"bytes"
	"context"
	"encoding/json"

	bolt "go.etcd.io/bbolt"

	"casamento_presentes/internal/domain/entities"
	"casamento_presentes/internal/usecase/interfaces"
)

const (
	BoltPaymentsBucket = "payments"
	BoltGiftIndex      = "payments_by_gift"
)

// PaymentRecordBoltRepository keeps the ledger in an embedded BoltDB file.
//
// Layout:
//   - bucket payments: id -> JSON record
//   - bucket payments_by_gift: gift_id + "\x00" + id -> empty
type PaymentRecordBoltRepository struct {
	db *bolt.DB
}

var _ interfaces.IPaymentRecordRepository = (*PaymentRecordBoltRepository)(nil)

// NewPaymentRecordBoltRepository expects db to have both buckets, see database.OpenBolt.
func NewPaymentRecordBoltRepository(db *bolt.DB) *PaymentRecordBoltRepository {
	return &PaymentRecordBoltRepository{db: db}
}

func (r *PaymentRecordBoltRepository) Save(ctx context.Context, rec entities.PaymentRecord) (entities.PaymentRecord, bool, error) {
	if err := ctx.Err(); err != nil {
		return entities.PaymentRecord{}, false, err
	}

	var (
		out     entities.PaymentRecord
		changed bool
	)
	err := r.db.Update(func(tx *bolt.Tx) error {
		payments := tx.Bucket([]byte(BoltPaymentsBucket))

		if raw := payments.Get([]byte(rec.ID)); raw != nil {
			var existing entities.PaymentRecord
			if err := json.Unmarshal(raw, &existing); err != nil {
				return err
			}
			out, changed = mergeRecord(existing, rec)
			if !changed {
				return nil
			}
		} else {
			out, changed = stamp(rec), true
		}

		b, err := json.Marshal(out)
		if err != nil {
			return err
		}
		if err := payments.Put([]byte(out.ID), b); err != nil {
			return err
		}
		if out.GiftID != "" {
			return tx.Bucket([]byte(BoltGiftIndex)).Put(giftKey(out.GiftID, out.ID), []byte{})
		}
		return nil
	})
	if err != nil {
		return entities.PaymentRecord{}, false, err
	}
	return out, changed, nil
}

func (r *PaymentRecordBoltRepository) GetByID(ctx context.Context, id string) (entities.PaymentRecord, error) {
	var rec entities.PaymentRecord
	err := r.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket([]byte(BoltPaymentsBucket)).Get([]byte(id))
		if raw == nil {
			return interfaces.ErrPaymentRecordNotFound
		}
		return json.Unmarshal(raw, &rec)
	})
	return rec, err
}

func (r *PaymentRecordBoltRepository) ListByGiftID(ctx context.Context, giftID string) ([]entities.PaymentRecord, error) {
	items := make([]entities.PaymentRecord, 0)
	err := r.db.View(func(tx *bolt.Tx) error {
		payments := tx.Bucket([]byte(BoltPaymentsBucket))
		prefix := giftKey(giftID, "")

		c := tx.Bucket([]byte(BoltGiftIndex)).Cursor()
		for k, _ := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = c.Next() {
			raw := payments.Get(k[len(prefix):])
			if raw == nil {
				continue
			}
			var rec entities.PaymentRecord
			if err := json.Unmarshal(raw, &rec); err != nil {
				return err
			}
			items = append(items, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sortByCreatedAt(items)
	return items, nil
}

func giftKey(giftID, id string) []byte {
	return []byte(giftID + "\x00" + id)
}

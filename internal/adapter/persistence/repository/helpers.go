package repository

import (
	"sort"
	"time"

	"casamento_presentes/internal/domain/entities"
)

// mergeRecord decides what Save writes when a record with the same id already
// exists. Only a status change is worth a write; everything else about a
// payment is fixed once it is created.
func mergeRecord(existing, incoming entities.PaymentRecord) (entities.PaymentRecord, bool) {
	if existing.Status == incoming.Status {
		return existing, false
	}
	// Terminal statuses are final; a late PENDING write must not reopen them.
	if existing.Status.IsTerminal() && !incoming.Status.IsTerminal() {
		return existing, false
	}
	merged := existing
	merged.Status = incoming.Status
	merged.UpdatedAt = incoming.UpdatedAt
	if merged.UpdatedAt.IsZero() {
		merged.UpdatedAt = time.Now().UTC()
	}
	if len(incoming.Raw) > 0 {
		merged.Raw = incoming.Raw
	}
	if merged.GiftID == "" {
		merged.GiftID = incoming.GiftID
	}
	if merged.Method == "" {
		merged.Method = incoming.Method
	}
	return merged, true
}

// stamp fills the timestamps of a record about to be created.
func stamp(r entities.PaymentRecord) entities.PaymentRecord {
	now := time.Now().UTC()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = r.CreatedAt
	}
	return r
}

func sortByCreatedAt(records []entities.PaymentRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.Before(records[j].CreatedAt)
	})
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

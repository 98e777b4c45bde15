package checkout

import (
	"context"
	"errors"
	"log"
	"time"

	"casamento_presentes/internal/domain/entities"
)

// startPollLocked launches the status poll loop for paymentID. The loop stops
// on a terminal status, on cancellation, or when the poll timeout elapses.
func (s *Session) startPollLocked(epoch uint64, paymentID string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.pollTimeout)
	s.cancelPoll = cancel
	s.wg.Add(1)
	go s.pollLoop(ctx, epoch, paymentID)
}

func (s *Session) stopPollLocked() {
	if s.cancelPoll != nil {
		s.cancelPoll()
		s.cancelPoll = nil
	}
}

func (s *Session) pollLoop(ctx context.Context, epoch uint64, paymentID string) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				s.expire(epoch, paymentID)
			}
			return
		case <-ticker.C:
			resp, err := s.gateway.GetPaymentStatus(ctx, paymentID)
			if err != nil {
				if ctx.Err() == nil {
					log.Printf("[checkout][poll] status_check_failed payment_id=%s err=%v", paymentID, err)
				}
				continue
			}
			if s.applyPollResult(epoch, resp) {
				return
			}
		}
	}
}

// applyPollResult records a poll response and reports whether polling is over.
func (s *Session) applyPollResult(epoch uint64, resp entities.PaymentResponse) bool {
	s.mu.Lock()
	if epoch != s.epoch || (s.state != StatePixPending && s.state != StateCardPending) {
		s.mu.Unlock()
		return true
	}

	merged := *s.payment
	merged.Status = resp.Status
	if merged.Status == "" {
		merged.Status = entities.PaymentStatusPending
	}
	if !resp.UpdatedAt.IsZero() {
		merged.UpdatedAt = resp.UpdatedAt
	} else {
		merged.UpdatedAt = s.now()
	}
	if resp.ApprovedAt != nil {
		merged.ApprovedAt = resp.ApprovedAt
	}
	if resp.PixCode != "" {
		merged.PixCode = resp.PixCode
	}
	if resp.QRCodeBase64 != "" {
		merged.QRCodeBase64 = resp.QRCodeBase64
	}
	if resp.CheckoutURL != "" {
		merged.CheckoutURL = resp.CheckoutURL
	}
	s.payment = &merged
	if s.pix != nil {
		s.pix.Status = merged.Status
	}

	if !merged.Status.IsTerminal() {
		s.mu.Unlock()
		return false
	}

	log.Printf("[checkout][poll] terminal payment_id=%s status=%s", merged.ID, merged.Status)
	notify := s.finishLocked(merged)
	s.mu.Unlock()
	notify()
	return true
}

// expire handles the poll timeout. A pending PIX becomes a pix-expired error; a
// pending card payment keeps its state since the guest may still finish it on
// the hosted page.
func (s *Session) expire(epoch uint64, paymentID string) {
	s.mu.Lock()
	if epoch != s.epoch {
		s.mu.Unlock()
		return
	}
	s.stopPollLocked()

	if s.state != StatePixPending {
		s.mu.Unlock()
		log.Printf("[checkout][poll] timeout payment_id=%s", paymentID)
		return
	}

	log.Printf("[checkout][poll] pix_expired payment_id=%s", paymentID)
	notify := s.failLocked(ErrPixExpired)
	s.mu.Unlock()
	notify()
}

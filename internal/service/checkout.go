package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/KMO142310/el-americano-delivery/internal/domain/model"
	"github.com/KMO142310/el-americano-delivery/internal/metrics"
	"github.com/KMO142310/el-americano-delivery/internal/whatsapp"
)

const (
	// DefaultCooldown is the minimum time between accepted checkout attempts.
	DefaultCooldown = 3 * time.Second
	// DefaultResetDelay is how long after a handoff the cart is cleared and
	// the processing flag released, giving the handoff time to register.
	DefaultResetDelay = 800 * time.Millisecond
	// DefaultPaymentMethod is used when the form leaves the field empty.
	DefaultPaymentMethod = "Efectivo"
	// DefaultSessionTTL is how long idle session state is retained before
	// the sweeper drops it, matching the cart store's session lifetime.
	DefaultSessionTTL = 24 * time.Hour
)

// CheckoutConfig configures the checkout orchestrator.
type CheckoutConfig struct {
	Cooldown       time.Duration
	ResetDelay     time.Duration
	SessionTTL     time.Duration
	DefaultPayment string
}

// DefaultCheckoutConfig returns the orchestrator defaults.
func DefaultCheckoutConfig() CheckoutConfig {
	return CheckoutConfig{
		Cooldown:       DefaultCooldown,
		ResetDelay:     DefaultResetDelay,
		SessionTTL:     DefaultSessionTTL,
		DefaultPayment: DefaultPaymentMethod,
	}
}

// checkoutState tracks one session's progress through the checkout flow.
// processing is the only mutual-exclusion device in the flow: it blocks
// re-entrant submissions while a handoff is in flight.
type checkoutState struct {
	processing  bool
	lastAttempt time.Time
	lastSeen    time.Time
	step        model.CheckoutStep
	resetTimer  *time.Timer
}

// CheckoutOrchestrator coordinates a checkout submission: entry guards,
// cooldown, validation, message building, and the handoff link. The
// post-handoff cleanup runs on a timer owned by the orchestrator; Close
// cancels pending timers and a disposed flag turns late fires into no-ops,
// so nothing mutates state after teardown.
type CheckoutOrchestrator struct {
	carts CartService
	links *whatsapp.LinkBuilder
	audit LoggingService // optional
	cfg   CheckoutConfig

	mu       sync.Mutex
	sessions map[string]*checkoutState
	disposed bool
	stopCh   chan struct{}
}

// NewCheckoutOrchestrator creates a checkout orchestrator.
func NewCheckoutOrchestrator(carts CartService, links *whatsapp.LinkBuilder, audit LoggingService, cfg CheckoutConfig) *CheckoutOrchestrator {
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = DefaultCooldown
	}
	if cfg.ResetDelay <= 0 {
		cfg.ResetDelay = DefaultResetDelay
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = DefaultSessionTTL
	}
	if cfg.DefaultPayment == "" {
		cfg.DefaultPayment = DefaultPaymentMethod
	}
	o := &CheckoutOrchestrator{
		carts:    carts,
		links:    links,
		audit:    audit,
		cfg:      cfg,
		sessions: make(map[string]*checkoutState),
		stopCh:   make(chan struct{}),
	}
	go o.cleanup()
	return o
}

// cleanup periodically evicts idle session state until Close is called.
func (o *CheckoutOrchestrator) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			o.evictIdle(time.Now())
		case <-o.stopCh:
			return
		}
	}
}

// evictIdle drops settled session state that has been idle longer than the
// session TTL. In-flight handoffs are skipped until their reset timer
// settles them.
func (o *CheckoutOrchestrator) evictIdle(now time.Time) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for id, st := range o.sessions {
		if st.processing || st.resetTimer != nil {
			continue
		}
		if now.Sub(st.lastSeen) > o.cfg.SessionTTL {
			delete(o.sessions, id)
		}
	}
}

// Step returns the session's current checkout step for display.
func (o *CheckoutOrchestrator) Step(sessionID string) model.CheckoutStep {
	o.mu.Lock()
	defer o.mu.Unlock()
	if st, ok := o.sessions[sessionID]; ok {
		return st.step
	}
	return model.StepBrowsing
}

// Submit runs one checkout attempt for the session.
//
// The returned HandoffResult resolves the attempt, not the delivery: the
// messaging application is opaque and a blocked or abandoned link is
// indistinguishable from a delivered one. After a successful submission the
// cart is cleared and the processing flag released on a delayed timer.
func (o *CheckoutOrchestrator) Submit(ctx context.Context, sessionID string, details model.CheckoutDetails) (*model.HandoffResult, error) {
	o.mu.Lock()
	if o.disposed {
		o.mu.Unlock()
		return nil, ErrOrchestratorClosed
	}
	st := o.sessions[sessionID]

	// Entry guards: no state changes on rejection, and unseen sessions
	// stay untracked until an attempt makes it past the guards.
	if st != nil && st.processing {
		o.mu.Unlock()
		metrics.RecordCheckout("in_progress")
		return nil, ErrCheckoutInProgress
	}
	cart, _ := o.carts.Get(ctx, sessionID)
	if cart.IsEmpty() {
		o.mu.Unlock()
		metrics.RecordCheckout("empty_cart")
		return nil, ErrCartEmpty
	}

	// Cooldown: one timestamp per session, refreshed only on attempts that
	// make it past the guards above.
	now := time.Now()
	if st != nil {
		if elapsed := now.Sub(st.lastAttempt); elapsed < o.cfg.Cooldown {
			o.mu.Unlock()
			metrics.RecordCheckout("rate_limited")
			return nil, &CooldownError{RetryAfter: o.cfg.Cooldown - elapsed}
		}
	} else {
		st = &checkoutState{step: model.StepBrowsing}
		o.sessions[sessionID] = st
	}
	st.lastAttempt = now
	st.lastSeen = now

	if details.PaymentMethod == "" {
		details.PaymentMethod = o.cfg.DefaultPayment
	}

	if result := ValidateCheckout(details.Name, details.Phone, details.Address); !result.Valid {
		// The customer is at the form; reflect that in the step indicator.
		st.step = model.StepDetails
		o.mu.Unlock()
		metrics.RecordCheckout("validation_failed")
		return nil, &ValidationFailure{Reason: result.Reason}
	}

	st.processing = true
	st.step = model.StepConfirming

	message := BuildOrderMessage(cart, details)
	handoff := &model.HandoffResult{
		URL:     o.links.Build(message),
		Message: message,
	}

	totals := cart.Totals()
	st.resetTimer = time.AfterFunc(o.cfg.ResetDelay, func() {
		o.finishHandoff(sessionID)
	})
	o.mu.Unlock()

	o.auditCheckout(sessionID, details, totals, len(cart.Items))
	metrics.RecordCheckout("handed_off")
	log.Info().
		Str("session_id", sessionID).
		Int("items", len(cart.Items)).
		Int64("total_price", totals.TotalPrice).
		Msg("Order handed off")

	return handoff, nil
}

// finishHandoff is the delayed post-handoff cleanup: clear the cart, reset
// the step indicator and release the processing flag.
func (o *CheckoutOrchestrator) finishHandoff(sessionID string) {
	o.mu.Lock()
	if o.disposed {
		o.mu.Unlock()
		return
	}
	st, ok := o.sessions[sessionID]
	if !ok {
		o.mu.Unlock()
		return
	}
	st.processing = false
	st.step = model.StepBrowsing
	st.resetTimer = nil
	st.lastSeen = time.Now()
	o.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	o.carts.Clear(ctx, sessionID)
}

// auditCheckout records the accepted submission in the audit log, if one is
// configured. Best-effort and asynchronous.
func (o *CheckoutOrchestrator) auditCheckout(sessionID string, details model.CheckoutDetails, totals model.Totals, itemCount int) {
	if o.audit == nil {
		return
	}

	entry := &model.LogEntry{
		Timestamp:  time.Now(),
		Level:      "info",
		Message:    "Checkout handed off",
		SessionID:  sessionID,
		ActionType: "checkout",
		Fields: map[string]interface{}{
			"items":          itemCount,
			"total_quantity": totals.TotalQuantity,
			"total_price":    totals.TotalPrice,
			"payment_method": details.PaymentMethod,
			"has_phone":      details.Phone != "",
		},
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = o.audit.CreateLog(ctx, entry)
	}()
}

// Close disposes the orchestrator: pending cleanup timers are cancelled and
// any that already fired become no-ops.
func (o *CheckoutOrchestrator) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.disposed {
		return
	}
	o.disposed = true
	close(o.stopCh)
	for _, st := range o.sessions {
		if st.resetTimer != nil {
			st.resetTimer.Stop()
			st.resetTimer = nil
		}
	}
}

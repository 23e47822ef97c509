package sessions

import (
	"fmt"
	"sync"

	"code.cloudfoundry.org/clock"

	"mall-bidding/internal/ledger"
	"mall-bidding/internal/marketerrors"
	"mall-bidding/internal/models"
	"mall-bidding/internal/push"
	"mall-bidding/internal/repository"
	"mall-bidding/utils"
)

// DefaultShopperID is assumed when a search arrives without a shopper
// identifier, matching the demo application's behavior.
const DefaultShopperID = "shopper_demo"

// Registry creates and owns search sessions and drives their
// lifecycle from active to completed or abandoned. All transitions for
// a session run under that session's own mutex; PlaceBid borrows the
// same mutex via LockSession so a bid can never interleave with a
// terminal transition.
type Registry struct {
	db     repository.MarketplaceDB
	coins  *ledger.CoinLedger
	sender push.Sender
	clk    clock.Clock

	mu           sync.Mutex
	sessionLocks map[string]*sync.Mutex
}

// NewRegistry creates a session registry.
func NewRegistry(db repository.MarketplaceDB, coins *ledger.CoinLedger, sender push.Sender, clk clock.Clock) *Registry {
	return &Registry{
		db:           db,
		coins:        coins,
		sender:       sender,
		clk:          clk,
		sessionLocks: make(map[string]*sync.Mutex),
	}
}

// LockSession locks the named session's mutex and returns the unlock
// function. Used by the bidding service to serialize debit-and-append
// against lifecycle transitions.
func (r *Registry) LockSession(sessionID string) func() {
	r.mu.Lock()
	lock, ok := r.sessionLocks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		r.sessionLocks[sessionID] = lock
	}
	r.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// Create opens a new active session for a shopper query.
func (r *Registry) Create(shopperID, query string, filters map[string]string) (models.SearchSession, error) {
	if shopperID == "" {
		shopperID = DefaultShopperID
	}

	session := models.SearchSession{
		SessionID: utils.GenerateID(),
		ShopperID: shopperID,
		Query:     query,
		Filters:   filters,
		Status:    models.SessionActive,
		CreatedAt: r.clk.Now().UTC(),
	}

	if err := r.db.SaveSession(session); err != nil {
		return models.SearchSession{}, fmt.Errorf("sessions: failed to create session for %q: %w", query, err)
	}
	return session, nil
}

// Get returns the session with the given ID.
func (r *Registry) Get(sessionID string) (models.SearchSession, error) {
	session, err := r.db.GetSession(sessionID)
	if err != nil {
		return models.SearchSession{}, fmt.Errorf("sessions: %w", err)
	}
	return session, nil
}

// Complete selects the winning agent for an active session. The
// winner's top-ranked active bid transitions to won, every other
// active bid in the session to lost, the winner's success counter is
// incremented, and the winning agent is notified best-effort.
func (r *Registry) Complete(sessionID, winnerAgentID string) (models.SearchSession, error) {
	unlock := r.LockSession(sessionID)

	session, err := r.db.GetSession(sessionID)
	if err != nil {
		unlock()
		return models.SearchSession{}, fmt.Errorf("sessions: %w", err)
	}
	if session.Status != models.SessionActive {
		unlock()
		return models.SearchSession{}, fmt.Errorf("sessions: complete session %s in state %s: %w",
			sessionID, session.Status, marketerrors.ErrInvalidStateTransition)
	}

	winningBid, ok := topActiveBid(session.Bids, winnerAgentID)
	if !ok {
		unlock()
		return models.SearchSession{}, fmt.Errorf("sessions: agent %s has no active bid in session %s: %w",
			winnerAgentID, sessionID, marketerrors.ErrAgentNotFound)
	}

	for _, bid := range session.Bids {
		if bid.Status != models.BidActive {
			continue
		}
		status := models.BidLost
		if bid.BidID == winningBid.BidID {
			status = models.BidWon
		}
		if err := r.db.UpdateBidStatus(sessionID, bid.BidID, status); err != nil {
			unlock()
			return models.SearchSession{}, fmt.Errorf("sessions: failed to resolve bid %s: %w", bid.BidID, err)
		}
	}

	now := r.clk.Now().UTC()
	session.Status = models.SessionCompleted
	session.SelectedAgentID = winnerAgentID
	session.CompletedAt = &now
	session.Bids = nil // keep the statuses just written
	if err := r.db.SaveSession(session); err != nil {
		unlock()
		return models.SearchSession{}, fmt.Errorf("sessions: failed to save completed session %s: %w", sessionID, err)
	}
	unlock()

	winner, err := r.coins.RecordWin(winnerAgentID)
	if err != nil {
		return models.SearchSession{}, fmt.Errorf("sessions: failed to record win for agent %s: %w", winnerAgentID, err)
	}

	// Push delivery is best-effort and happens outside every lock.
	r.notifyWinner(winner, session)

	return r.db.GetSession(sessionID)
}

// Abandon drops an active session without selecting a winner. Bids
// already placed keep their active status; no resolution occurred.
func (r *Registry) Abandon(sessionID string) (models.SearchSession, error) {
	unlock := r.LockSession(sessionID)
	defer unlock()

	session, err := r.db.GetSession(sessionID)
	if err != nil {
		return models.SearchSession{}, fmt.Errorf("sessions: %w", err)
	}
	if session.Status != models.SessionActive {
		return models.SearchSession{}, fmt.Errorf("sessions: abandon session %s in state %s: %w",
			sessionID, session.Status, marketerrors.ErrInvalidStateTransition)
	}

	now := r.clk.Now().UTC()
	session.Status = models.SessionAbandoned
	session.CompletedAt = &now
	if err := r.db.SaveSession(session); err != nil {
		return models.SearchSession{}, fmt.Errorf("sessions: failed to save abandoned session %s: %w", sessionID, err)
	}
	return session, nil
}

func (r *Registry) notifyWinner(winner models.Agent, session models.SearchSession) {
	err := r.sender.Send(winner,
		"You won the shopper's visit!",
		fmt.Sprintf("Your bid won the search for %q", session.Query),
		map[string]string{
			"type":       "bid_won",
			"session_id": session.SessionID,
			"query":      session.Query,
		})
	if err != nil {
		utils.Warn("sessions: winner push delivery failed", map[string]any{
			"agent_id":   winner.AgentID,
			"session_id": session.SessionID,
			"error":      err.Error(),
		})
	}
}

// topActiveBid returns the winner agent's best active bid: highest
// coins, earliest timestamp among equals.
func topActiveBid(bids []models.Bid, agentID string) (models.Bid, bool) {
	var best models.Bid
	found := false
	for _, bid := range bids {
		if bid.AgentID != agentID || bid.Status != models.BidActive {
			continue
		}
		if !found ||
			bid.CoinsBid > best.CoinsBid ||
			(bid.CoinsBid == best.CoinsBid && bid.CreatedAt.Before(best.CreatedAt)) {
			best = bid
			found = true
		}
	}
	return best, found
}

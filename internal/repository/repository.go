package repository

import (
	"fmt"
	"sort"
	"sync"

	"mall-bidding/internal/marketerrors"
	model "mall-bidding/internal/models"
)

// MarketplaceDB defines the persistence contract for agents, search
// sessions and bids. The engine depends only on this interface; the
// in-memory implementation below is the demo backend.
type MarketplaceDB interface {
	GetAgent(agentID string) (model.Agent, error)
	SaveAgent(agent model.Agent) error
	ListAgents() ([]model.Agent, error)

	GetSession(sessionID string) (model.SearchSession, error)
	SaveSession(session model.SearchSession) error

	AppendBid(bid model.Bid) error
	ListBids(sessionID string) ([]model.Bid, error)
	UpdateBidStatus(sessionID, bidID string, status model.BidStatus) error
}

// MemoryRepo is a concurrency-safe in-memory implementation of MarketplaceDB
type MemoryRepo struct {
	mu       sync.RWMutex
	agents   map[string]model.Agent
	sessions map[string]model.SearchSession
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		agents:   make(map[string]model.Agent),
		sessions: make(map[string]model.SearchSession),
	}
}

// GetAgent returns the agent with the given ID
func (r *MemoryRepo) GetAgent(agentID string) (model.Agent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	agent, ok := r.agents[agentID]
	if !ok {
		return model.Agent{}, fmt.Errorf("get agent %s: %w", agentID, marketerrors.ErrAgentNotFound)
	}
	return agent, nil
}

// SaveAgent creates or replaces an agent record
func (r *MemoryRepo) SaveAgent(agent model.Agent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if agent.AgentID == "" {
		return fmt.Errorf("save agent: %w - empty agent ID", marketerrors.ErrInvalidBid)
	}
	r.agents[agent.AgentID] = agent
	return nil
}

// ListAgents returns all agent records
func (r *MemoryRepo) ListAgents() ([]model.Agent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	agents := make([]model.Agent, 0, len(r.agents))
	for _, a := range r.agents {
		agents = append(agents, a)
	}
	sort.Slice(agents, func(i, j int) bool { return agents[i].AgentID < agents[j].AgentID })
	return agents, nil
}

// GetSession returns a copy of the session with the given ID,
// including its bids.
func (r *MemoryRepo) GetSession(sessionID string) (model.SearchSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[sessionID]
	if !ok {
		return model.SearchSession{}, fmt.Errorf("get session %s: %w", sessionID, marketerrors.ErrSessionNotFound)
	}
	session.Bids = append([]model.Bid(nil), session.Bids...)
	return session, nil
}

// SaveSession creates or replaces a session record, preserving bids
// already appended when the caller's copy has none.
func (r *MemoryRepo) SaveSession(session model.SearchSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if session.SessionID == "" {
		return fmt.Errorf("save session: %w - empty session ID", marketerrors.ErrSessionNotFound)
	}
	if existing, ok := r.sessions[session.SessionID]; ok && session.Bids == nil {
		session.Bids = existing.Bids
	}
	r.sessions[session.SessionID] = session
	return nil
}

// AppendBid appends a bid to its owning session. Appends are rejected
// once the session has left the active state.
func (r *MemoryRepo) AppendBid(bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[bid.SessionID]
	if !ok {
		return fmt.Errorf("append bid to session %s: %w", bid.SessionID, marketerrors.ErrSessionNotFound)
	}
	if session.Status != model.SessionActive {
		return fmt.Errorf("append bid to session %s: %w", bid.SessionID, marketerrors.ErrSessionNotActive)
	}

	session.Bids = append(session.Bids, bid)
	r.sessions[bid.SessionID] = session
	return nil
}

// ListBids returns a session's bids ordered by coins descending, with
// earlier bids first among equal amounts.
func (r *MemoryRepo) ListBids(sessionID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("list bids for session %s: %w", sessionID, marketerrors.ErrSessionNotFound)
	}

	bids := append([]model.Bid(nil), session.Bids...)
	sort.SliceStable(bids, func(i, j int) bool {
		if bids[i].CoinsBid != bids[j].CoinsBid {
			return bids[i].CoinsBid > bids[j].CoinsBid
		}
		return bids[i].CreatedAt.Before(bids[j].CreatedAt)
	})
	return bids, nil
}

// UpdateBidStatus transitions a single bid's status
func (r *MemoryRepo) UpdateBidStatus(sessionID, bidID string, status model.BidStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[sessionID]
	if !ok {
		return fmt.Errorf("update bid %s: %w", bidID, marketerrors.ErrSessionNotFound)
	}
	for i := range session.Bids {
		if session.Bids[i].BidID == bidID {
			session.Bids[i].Status = status
			r.sessions[sessionID] = session
			return nil
		}
	}
	return fmt.Errorf("update bid %s in session %s: %w", bidID, sessionID, marketerrors.ErrInvalidBid)
}

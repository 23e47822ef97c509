package bidding

import (
	"fmt"

	"code.cloudfoundry.org/clock"

	"mall-bidding/internal/catalog"
	"mall-bidding/internal/fanout"
	"mall-bidding/internal/ledger"
	"mall-bidding/internal/marketerrors"
	"mall-bidding/internal/models"
	"mall-bidding/internal/repository"
	"mall-bidding/internal/sessions"
	"mall-bidding/utils"
)

// Service defines the business logic for the mall marketplace: shopper
// searches, agent bids, leaderboards and winner selection.
type Service struct {
	db       repository.MarketplaceDB
	coins    *ledger.CoinLedger
	registry *sessions.Registry
	fan      *fanout.Service
	matcher  *catalog.Matcher
	clk      clock.Clock
}

// NewService creates a marketplace Service instance.
func NewService(
	db repository.MarketplaceDB,
	coins *ledger.CoinLedger,
	registry *sessions.Registry,
	fan *fanout.Service,
	matcher *catalog.Matcher,
	clk clock.Clock,
) *Service {
	return &Service{
		db:       db,
		coins:    coins,
		registry: registry,
		fan:      fan,
		matcher:  matcher,
		clk:      clk,
	}
}

// SearchResult is the outcome of one shopper search: the session, the
// matched stores and the published notification.
type SearchResult struct {
	Session      models.SearchSession `json:"session"`
	Matches      []models.StoreMatch  `json:"matching_stores"`
	Notification models.Notification  `json:"notification"`
}

// Search creates a session for the shopper query, matches it against
// the store catalog and fans the notification out to subscribed agents.
func (s *Service) Search(shopperID, query string, filters map[string]string) (SearchResult, error) {
	if query == "" {
		return SearchResult{}, fmt.Errorf("service: %w - empty search query", marketerrors.ErrInvalidBid)
	}

	session, err := s.registry.Create(shopperID, query, filters)
	if err != nil {
		return SearchResult{}, fmt.Errorf("service: failed to create search session: %w", err)
	}

	matches := s.matcher.Match(query)
	notification := s.fan.Publish(session, matches)

	return SearchResult{
		Session:      session,
		Matches:      matches,
		Notification: notification,
	}, nil
}

// PlaceBid validates a bid, debits the agent's coins and appends the
// bid to the session. The whole sequence runs under the session's
// mutex, so a bid can never reach the coin ledger once the session has
// left the active state.
func (s *Service) PlaceBid(sessionID, agentID string, coins int, message string) (models.Bid, error) {
	if sessionID == "" || agentID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing sessionID or agentID", marketerrors.ErrInvalidBid)
	}
	if coins <= 0 {
		return models.Bid{}, fmt.Errorf("service: %w - non-positive coin amount", marketerrors.ErrInvalidBid)
	}

	unlock := s.registry.LockSession(sessionID)
	defer unlock()

	session, err := s.db.GetSession(sessionID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: %w", err)
	}
	if session.Status != models.SessionActive {
		return models.Bid{}, fmt.Errorf("service: bid on session %s in state %s: %w",
			sessionID, session.Status, marketerrors.ErrSessionNotActive)
	}

	if _, err := s.coins.Debit(agentID, coins); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to debit agent %s: %w", agentID, err)
	}

	bid := models.Bid{
		BidID:     utils.GenerateID(),
		SessionID: sessionID,
		AgentID:   agentID,
		CoinsBid:  coins,
		Message:   message,
		Status:    models.BidActive,
		CreatedAt: s.clk.Now().UTC(),
	}

	if err := s.db.AppendBid(bid); err != nil {
		// Unreachable while the session lock is held; the debit stands.
		return models.Bid{}, fmt.Errorf("service: failed to append bid for agent %s: %w", agentID, err)
	}
	return bid, nil
}

// Leaderboard returns the ranked, annotated view of a session's bids.
func (s *Service) Leaderboard(sessionID string) ([]LeaderboardEntry, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("service: %w - empty session ID", marketerrors.ErrSessionNotFound)
	}

	bids, err := s.db.ListBids(sessionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list bids for session %s: %w", sessionID, err)
	}
	return buildLeaderboard(bids, s.clk.Now()), nil
}

// GetSession returns a session with its bids.
func (s *Service) GetSession(sessionID string) (models.SearchSession, error) {
	return s.registry.Get(sessionID)
}

// Complete selects the session winner and propagates bid resolution.
func (s *Service) Complete(sessionID, winnerAgentID string) (models.SearchSession, error) {
	if winnerAgentID == "" {
		return models.SearchSession{}, fmt.Errorf("service: %w - empty winner agent ID", marketerrors.ErrInvalidBid)
	}
	return s.registry.Complete(sessionID, winnerAgentID)
}

// Abandon drops an active session without resolution.
func (s *Service) Abandon(sessionID string) (models.SearchSession, error) {
	return s.registry.Abandon(sessionID)
}

// GetAgent returns an agent's current balance and counters.
func (s *Service) GetAgent(agentID string) (models.Agent, error) {
	agent, err := s.db.GetAgent(agentID)
	if err != nil {
		return models.Agent{}, fmt.Errorf("service: %w", err)
	}
	return agent, nil
}

// ActiveNotifications returns the unexpired notifications annotated
// with their session's bid count and a relative timestamp.
func (s *Service) ActiveNotifications() []NotificationView {
	now := s.clk.Now()
	active := s.fan.Active()

	views := make([]NotificationView, 0, len(active))
	for _, n := range active {
		bidCount := 0
		if bids, err := s.db.ListBids(n.SessionID); err == nil {
			bidCount = len(bids)
		}
		views = append(views, NotificationView{
			Notification: n,
			TimeAgo:      TimeAgo(n.CreatedAt, now),
			BidCount:     bidCount,
		})
	}
	return views
}

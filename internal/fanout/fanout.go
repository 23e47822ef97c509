package fanout

import (
	"sort"
	"sync"
	"time"

	"code.cloudfoundry.org/clock"

	"mall-bidding/internal/models"
	"mall-bidding/internal/repository"
	"mall-bidding/utils"
)

// NotificationTTL is the fixed validity window of a search
// notification from its creation.
const NotificationTTL = 10 * time.Minute

// Callback receives a notification for a subscribed agent.
type Callback func(models.Notification)

// DeliveryPolicy selects which subscribers a published notification
// reaches.
type DeliveryPolicy int

const (
	// DeliverMatched notifies only subscribers whose store appears in
	// the candidate list.
	DeliverMatched DeliveryPolicy = iota
	// DeliverAll notifies every subscriber unconditionally, ignoring
	// the candidate list.
	DeliverAll
)

// Service fans search notifications out to subscribed agents. One
// callback per agent; re-subscribing overwrites the previous callback.
type Service struct {
	db     repository.MarketplaceDB
	clk    clock.Clock
	policy DeliveryPolicy

	mu            sync.RWMutex
	subscribers   map[string]Callback
	notifications []models.Notification
}

// NewService creates a fan-out service with the given delivery policy.
func NewService(db repository.MarketplaceDB, clk clock.Clock, policy DeliveryPolicy) *Service {
	return &Service{
		db:          db,
		clk:         clk,
		policy:      policy,
		subscribers: make(map[string]Callback),
	}
}

// Subscribe registers an agent's notification callback. Last writer
// wins.
func (s *Service) Subscribe(agentID string, cb Callback) {
	s.mu.Lock()
	s.subscribers[agentID] = cb
	s.mu.Unlock()

	utils.Info("fanout: agent subscribed", map[string]any{"agent_id": agentID})
}

// Unsubscribe removes an agent's callback.
func (s *Service) Unsubscribe(agentID string) {
	s.mu.Lock()
	delete(s.subscribers, agentID)
	s.mu.Unlock()

	utils.Info("fanout: agent unsubscribed", map[string]any{"agent_id": agentID})
}

// Publish builds a notification for the session and delivers it to
// subscribers according to the delivery policy. A failing subscriber
// never prevents delivery to the others.
func (s *Service) Publish(session models.SearchSession, candidates []models.StoreMatch) models.Notification {
	now := s.clk.Now().UTC()
	notification := models.Notification{
		NotificationID: utils.GenerateID(),
		SessionID:      session.SessionID,
		Query:          session.Query,
		MatchingStores: candidates,
		CreatedAt:      now,
		ExpiresAt:      now.Add(NotificationTTL),
		Status:         models.NotificationActive,
	}

	s.mu.Lock()
	s.notifications = append(s.notifications, notification)
	targets := make(map[string]Callback, len(s.subscribers))
	for agentID, cb := range s.subscribers {
		targets[agentID] = cb
	}
	s.mu.Unlock()

	candidateStores := make(map[string]bool, len(candidates))
	for _, match := range candidates {
		candidateStores[match.StoreID] = true
	}

	notified := 0
	for agentID, cb := range targets {
		if s.policy == DeliverMatched && !s.storeMatches(agentID, candidateStores) {
			continue
		}
		s.deliver(agentID, cb, notification)
		notified++
	}

	utils.Info("fanout: search notification published", map[string]any{
		"session_id":  session.SessionID,
		"query":       session.Query,
		"matches":     len(candidates),
		"notified":    notified,
		"subscribers": len(targets),
	})
	return notification
}

// storeMatches reports whether the subscribed agent's store is among
// the candidate stores. Unknown agents are skipped.
func (s *Service) storeMatches(agentID string, candidateStores map[string]bool) bool {
	agent, err := s.db.GetAgent(agentID)
	if err != nil {
		utils.Warn("fanout: subscriber lookup failed", map[string]any{
			"agent_id": agentID,
			"error":    err.Error(),
		})
		return false
	}
	return candidateStores[agent.StoreID]
}

// deliver invokes one subscriber callback, isolating its faults from
// the rest of the fan-out.
func (s *Service) deliver(agentID string, cb Callback, notification models.Notification) {
	defer func() {
		if rec := recover(); rec != nil {
			utils.Error("fanout: subscriber callback panicked", map[string]any{
				"agent_id":        agentID,
				"notification_id": notification.NotificationID,
				"panic":           rec,
			})
		}
	}()
	cb(notification)
}

// Active returns the unexpired notifications, newest first. Expiry is
// evaluated lazily against the injected clock.
func (s *Service) Active() []models.Notification {
	now := s.clk.Now()

	s.mu.RLock()
	defer s.mu.RUnlock()

	var active []models.Notification
	for _, n := range s.notifications {
		if n.Status == models.NotificationActive && n.ExpiresAt.After(now) {
			active = append(active, n)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].CreatedAt.After(active[j].CreatedAt)
	})
	return active
}

// ClearExpired drops expired notifications to bound memory and returns
// how many were removed. Lazy filtering in Active stays authoritative;
// this only reclaims space.
func (s *Service) ClearExpired() int {
	now := s.clk.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.notifications[:0]
	removed := 0
	for _, n := range s.notifications {
		if n.ExpiresAt.After(now) {
			kept = append(kept, n)
		} else {
			removed++
		}
	}
	s.notifications = kept
	return removed
}

// StartSweeper runs ClearExpired on the given interval until the
// returned stop function is called.
func (s *Service) StartSweeper(interval time.Duration) func() {
	ticker := s.clk.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.C():
				if removed := s.ClearExpired(); removed > 0 {
					utils.Info("fanout: cleared expired notifications", map[string]any{"removed": removed})
				}
			case <-done:
				ticker.Stop()
				return
			}
		}
	}()

	return func() { close(done) }
}

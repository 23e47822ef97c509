package models

import "time"

// SessionStatus is the lifecycle state of a search session.
type SessionStatus string

const (
	SessionActive    SessionStatus = "active"
	SessionCompleted SessionStatus = "completed"
	SessionAbandoned SessionStatus = "abandoned"
)

// BidStatus is the resolution state of a bid. It transitions exactly
// once from BidActive to one of the terminal states.
type BidStatus string

const (
	BidActive  BidStatus = "active"
	BidWon     BidStatus = "won"
	BidLost    BidStatus = "lost"
	BidExpired BidStatus = "expired"
)

// NotificationStatus is the validity state of a search notification.
type NotificationStatus string

const (
	NotificationActive  NotificationStatus = "active"
	NotificationExpired NotificationStatus = "expired"
)

// Store is static reference data describing a mall store and the
// keyword phrases its inventory answers to. Immutable for the process
// lifetime.
type Store struct {
	StoreID   string   `json:"store_id"`
	Name      string   `json:"store_name"`
	Inventory []string `json:"inventory"`
	Group     string   `json:"group"`
}

// Agent is a store operator that bids coins to win shopper visits.
type Agent struct {
	AgentID        string    `json:"agent_id"`
	Name           string    `json:"agent_name"`
	StoreID        string    `json:"store_id"`
	StoreName      string    `json:"store_name"`
	Coins          int       `json:"coins"`
	TotalBids      int       `json:"total_bids"`
	SuccessfulBids int       `json:"successful_bids"`
	ConversionRate float64   `json:"conversion_rate"`
	IsActive       bool      `json:"is_active"`
	IsOnline       bool      `json:"is_online"`
	LastSeen       time.Time `json:"last_seen"`
}

// SearchSession is one shopper query and its accumulated bids.
type SearchSession struct {
	SessionID       string            `json:"session_id"`
	ShopperID       string            `json:"shopper_id"`
	Query           string            `json:"search_query"`
	Filters         map[string]string `json:"search_filters,omitempty"`
	Status          SessionStatus     `json:"status"`
	SelectedAgentID string            `json:"selected_agent_id,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	CompletedAt     *time.Time        `json:"completed_at,omitempty"`
	Bids            []Bid             `json:"bids"`
}

// Bid is a coin-denominated offer by an agent against a session.
// Immutable once created except for Status.
type Bid struct {
	BidID     string    `json:"bid_id"`
	SessionID string    `json:"session_id"`
	AgentID   string    `json:"agent_id"`
	CoinsBid  int       `json:"coins_bid"`
	Message   string    `json:"bid_message,omitempty"`
	Status    BidStatus `json:"bid_status"`
	CreatedAt time.Time `json:"created_at"`
}

// StoreMatch is one catalog match with its relevance score.
type StoreMatch struct {
	StoreID        string `json:"store_id"`
	StoreName      string `json:"store_name"`
	RelevanceScore int    `json:"relevance_score"`
}

// Notification is the fan-out record for one search session.
type Notification struct {
	NotificationID string             `json:"notification_id"`
	SessionID      string             `json:"session_id"`
	Query          string             `json:"search_query"`
	MatchingStores []StoreMatch       `json:"matching_stores"`
	CreatedAt      time.Time          `json:"created_at"`
	ExpiresAt      time.Time          `json:"expires_at"`
	Status         NotificationStatus `json:"status"`
}

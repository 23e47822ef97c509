package helpers

// Request/Response DTOs
type SearchRequest struct {
	ShopperID string            `json:"shopper_id"`
	Query     string            `json:"search_query" binding:"required"`
	Filters   map[string]string `json:"search_filters"`
}

type PlaceBidRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	AgentID   string `json:"agent_id" binding:"required"`
	Coins     int    `json:"coins_bid" binding:"required,gt=0"`
	Message   string `json:"bid_message"`
}

type CompleteSessionRequest struct {
	AgentID string `json:"agent_id" binding:"required"`
}

type BidResponse struct {
	BidID     string `json:"bid_id"`
	SessionID string `json:"session_id"`
	AgentID   string `json:"agent_id"`
	CoinsBid  int    `json:"coins_bid"`
	Message   string `json:"bid_message,omitempty"`
	Status    string `json:"bid_status"`
	CreatedAt string `json:"created_at"`
}

package bidding

import (
	"fmt"
	"time"

	"mall-bidding/internal/models"
)

// Priority classes for bid display.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Coin thresholds for priority classes.
const (
	highPriorityCoins   = 100
	mediumPriorityCoins = 50
)

// LeaderboardEntry is one bid in the shopper-facing leaderboard,
// annotated with presentation fields recomputed on every read.
type LeaderboardEntry struct {
	models.Bid
	Rank         int    `json:"rank"`
	TimeAgo      string `json:"time_ago"`
	Priority     string `json:"bid_priority"`
	PriorityIcon string `json:"bid_priority_icon"`
}

// NotificationView is an active notification annotated for display.
type NotificationView struct {
	models.Notification
	TimeAgo  string `json:"time_ago"`
	BidCount int    `json:"bid_count"`
}

// buildLeaderboard annotates ranked bids with rank, relative time and
// priority. The input must already be ordered by coins descending,
// earliest first among equals.
func buildLeaderboard(bids []models.Bid, now time.Time) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(bids))
	for i, bid := range bids {
		priority := BidPriority(bid.CoinsBid)
		entries = append(entries, LeaderboardEntry{
			Bid:          bid,
			Rank:         i + 1,
			TimeAgo:      TimeAgo(bid.CreatedAt, now),
			Priority:     priority,
			PriorityIcon: PriorityIcon(priority),
		})
	}
	return entries
}

// TimeAgo formats the elapsed time since t bucketed at second, minute
// or hour granularity.
func TimeAgo(t, now time.Time) string {
	seconds := int(now.Sub(t).Seconds())
	if seconds < 0 {
		seconds = 0
	}
	switch {
	case seconds < 60:
		return fmt.Sprintf("%ds ago", seconds)
	case seconds < 3600:
		return fmt.Sprintf("%dm ago", seconds/60)
	default:
		return fmt.Sprintf("%dh ago", seconds/3600)
	}
}

// BidPriority classifies a bid amount.
func BidPriority(coins int) string {
	switch {
	case coins >= highPriorityCoins:
		return PriorityHigh
	case coins >= mediumPriorityCoins:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// PriorityIcon returns the display icon for a priority class.
func PriorityIcon(priority string) string {
	switch priority {
	case PriorityHigh:
		return "🔥"
	case PriorityMedium:
		return "⭐"
	case PriorityLow:
		return "💡"
	default:
		return "🪙"
	}
}

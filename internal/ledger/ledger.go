package ledger

import (
	"fmt"
	"sync"

	"code.cloudfoundry.org/clock"

	"mall-bidding/internal/marketerrors"
	"mall-bidding/internal/models"
	"mall-bidding/internal/repository"
)

// CoinLedger is the sole writer of agent coin balances and bid
// counters. Every balance mutation for an agent runs under that
// agent's own mutex, so two concurrent debits can never both observe
// sufficient funds when their combined amount exceeds the balance.
type CoinLedger struct {
	db  repository.MarketplaceDB
	clk clock.Clock

	mu         sync.Mutex
	agentLocks map[string]*sync.Mutex
}

// NewCoinLedger creates a CoinLedger over the given storage backend.
func NewCoinLedger(db repository.MarketplaceDB, clk clock.Clock) *CoinLedger {
	return &CoinLedger{
		db:         db,
		clk:        clk,
		agentLocks: make(map[string]*sync.Mutex),
	}
}

// lockFor returns the mutex guarding one agent's balance, creating it
// on first use.
func (l *CoinLedger) lockFor(agentID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock, ok := l.agentLocks[agentID]
	if !ok {
		lock = &sync.Mutex{}
		l.agentLocks[agentID] = lock
	}
	return lock
}

// CanAfford reports whether the agent's balance covers the amount.
func (l *CoinLedger) CanAfford(agentID string, amount int) (bool, error) {
	agent, err := l.db.GetAgent(agentID)
	if err != nil {
		return false, fmt.Errorf("ledger: %w", err)
	}
	return agent.Coins >= amount, nil
}

// Debit atomically decrements the agent's balance by amount and
// increments its bid counter. It returns ErrInsufficientFunds and
// performs no mutation when the balance does not cover the amount.
func (l *CoinLedger) Debit(agentID string, amount int) (models.Agent, error) {
	if amount <= 0 {
		return models.Agent{}, fmt.Errorf("ledger: %w - non-positive debit amount", marketerrors.ErrInvalidBid)
	}

	lock := l.lockFor(agentID)
	lock.Lock()
	defer lock.Unlock()

	agent, err := l.db.GetAgent(agentID)
	if err != nil {
		return models.Agent{}, fmt.Errorf("ledger: %w", err)
	}
	if agent.Coins < amount {
		return models.Agent{}, fmt.Errorf("ledger: debit %d from agent %s with balance %d: %w",
			amount, agentID, agent.Coins, marketerrors.ErrInsufficientFunds)
	}

	agent.Coins -= amount
	agent.TotalBids++
	agent.LastSeen = l.clk.Now().UTC()

	if err := l.db.SaveAgent(agent); err != nil {
		return models.Agent{}, fmt.Errorf("ledger: failed to save agent %s after debit: %w", agentID, err)
	}
	return agent, nil
}

// Credit adds coins back to an agent's balance.
func (l *CoinLedger) Credit(agentID string, amount int) (models.Agent, error) {
	if amount <= 0 {
		return models.Agent{}, fmt.Errorf("ledger: %w - non-positive credit amount", marketerrors.ErrInvalidBid)
	}

	lock := l.lockFor(agentID)
	lock.Lock()
	defer lock.Unlock()

	agent, err := l.db.GetAgent(agentID)
	if err != nil {
		return models.Agent{}, fmt.Errorf("ledger: %w", err)
	}

	agent.Coins += amount
	if err := l.db.SaveAgent(agent); err != nil {
		return models.Agent{}, fmt.Errorf("ledger: failed to save agent %s after credit: %w", agentID, err)
	}
	return agent, nil
}

// RecordWin increments the agent's success counter and recomputes its
// conversion rate. Winning never refunds or charges coins.
func (l *CoinLedger) RecordWin(agentID string) (models.Agent, error) {
	lock := l.lockFor(agentID)
	lock.Lock()
	defer lock.Unlock()

	agent, err := l.db.GetAgent(agentID)
	if err != nil {
		return models.Agent{}, fmt.Errorf("ledger: %w", err)
	}

	agent.SuccessfulBids++
	agent.ConversionRate = conversionRate(agent.SuccessfulBids, agent.TotalBids)
	agent.LastSeen = l.clk.Now().UTC()

	if err := l.db.SaveAgent(agent); err != nil {
		return models.Agent{}, fmt.Errorf("ledger: failed to save agent %s after win: %w", agentID, err)
	}
	return agent, nil
}

func conversionRate(successful, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(successful) / float64(total)
}

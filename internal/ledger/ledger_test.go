package ledger

import (
	"sync"
	"testing"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"mall-bidding/internal/marketerrors"
	model "mall-bidding/internal/models"
	"mall-bidding/internal/repository"
)

var ledgerEpoch = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func seedAgent(t *testing.T, repo *repository.MemoryRepo, agentID string, coins int) {
	t.Helper()
	require.NoError(t, repo.SaveAgent(model.Agent{
		AgentID:   agentID,
		Name:      agentID,
		StoreID:   agentID,
		StoreName: agentID + " Store",
		Coins:     coins,
		IsActive:  true,
	}))
}

// Tests Debit
func TestCoinLedger_Debit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		balance     int
		amount      int
		wantErr     error
		wantBalance int
		wantBids    int
	}{
		{name: "valid_debit", balance: 5000, amount: 800, wantBalance: 4200, wantBids: 1},
		{name: "exact_balance", balance: 100, amount: 100, wantBalance: 0, wantBids: 1},
		{name: "insufficient_funds", balance: 50, amount: 60, wantErr: marketerrors.ErrInsufficientFunds},
		{name: "zero_amount", balance: 100, amount: 0, wantErr: marketerrors.ErrInvalidBid},
		{name: "negative_amount", balance: 100, amount: -10, wantErr: marketerrors.ErrInvalidBid},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo := repository.NewMemoryRepo()
			seedAgent(t, repo, "agent1", tc.balance)
			ledger := NewCoinLedger(repo, fakeclock.NewFakeClock(ledgerEpoch))

			agent, err := ledger.Debit("agent1", tc.amount)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)

				// A rejected debit performs no mutation.
				stored, getErr := repo.GetAgent("agent1")
				require.NoError(t, getErr)
				require.Equal(t, tc.balance, stored.Coins)
				require.Equal(t, 0, stored.TotalBids)
			} else {
				require.NoError(t, err)
				require.Equal(t, tc.wantBalance, agent.Coins)
				require.Equal(t, tc.wantBids, agent.TotalBids)
				require.Equal(t, ledgerEpoch, agent.LastSeen)
			}
		})
	}
}

func TestCoinLedger_DebitUnknownAgent(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockMarketplaceDB(ctrl)
	ledger := NewCoinLedger(mockRepo, fakeclock.NewFakeClock(ledgerEpoch))

	mockRepo.EXPECT().GetAgent("ghost").Return(model.Agent{}, marketerrors.ErrAgentNotFound)
	// No SaveAgent expected: a failed lookup must not write anything.

	_, err := ledger.Debit("ghost", 10)
	require.ErrorIs(t, err, marketerrors.ErrAgentNotFound)
}

func TestCoinLedger_CanAfford(t *testing.T) {
	t.Parallel()

	repo := repository.NewMemoryRepo()
	seedAgent(t, repo, "agent1", 100)
	ledger := NewCoinLedger(repo, fakeclock.NewFakeClock(ledgerEpoch))

	ok, err := ledger.CanAfford("agent1", 100)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = ledger.CanAfford("agent1", 101)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = ledger.CanAfford("ghost", 1)
	require.ErrorIs(t, err, marketerrors.ErrAgentNotFound)
}

func TestCoinLedger_Credit(t *testing.T) {
	t.Parallel()

	repo := repository.NewMemoryRepo()
	seedAgent(t, repo, "agent1", 100)
	ledger := NewCoinLedger(repo, fakeclock.NewFakeClock(ledgerEpoch))

	agent, err := ledger.Credit("agent1", 50)
	require.NoError(t, err)
	require.Equal(t, 150, agent.Coins)

	_, err = ledger.Credit("agent1", 0)
	require.ErrorIs(t, err, marketerrors.ErrInvalidBid)
}

// Tests RecordWin conversion rate arithmetic
func TestCoinLedger_RecordWin(t *testing.T) {
	t.Parallel()

	repo := repository.NewMemoryRepo()
	seedAgent(t, repo, "agent1", 5000)
	ledger := NewCoinLedger(repo, fakeclock.NewFakeClock(ledgerEpoch))

	// One bid, one win: conversion rate 1.0 and no coin movement.
	_, err := ledger.Debit("agent1", 800)
	require.NoError(t, err)

	agent, err := ledger.RecordWin("agent1")
	require.NoError(t, err)
	require.Equal(t, 1, agent.SuccessfulBids)
	require.Equal(t, 1.0, agent.ConversionRate)
	require.Equal(t, 4200, agent.Coins)

	// Second bid without a win halves the rate.
	_, err = ledger.Debit("agent1", 100)
	require.NoError(t, err)

	stored, err := repo.GetAgent("agent1")
	require.NoError(t, err)
	require.Equal(t, 0.5, conversionRate(stored.SuccessfulBids, stored.TotalBids))
}

func TestConversionRate_ZeroBids(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0.0, conversionRate(0, 0))
}

// Two concurrent debits of 60 against a balance of 100: exactly one
// succeeds and the final balance is 40.
func TestCoinLedger_ConcurrentDebitsSerialize(t *testing.T) {
	t.Parallel()

	repo := repository.NewMemoryRepo()
	seedAgent(t, repo, "agent1", 100)
	ledger := NewCoinLedger(repo, fakeclock.NewFakeClock(ledgerEpoch))

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	wg.Add(2)
	for i := 0; i < 2; i++ {
		go func() {
			defer wg.Done()
			_, err := ledger.Debit("agent1", 60)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	succeeded, rejected := 0, 0
	for err := range errs {
		if err == nil {
			succeeded++
		} else {
			require.ErrorIs(t, err, marketerrors.ErrInsufficientFunds)
			rejected++
		}
	}
	require.Equal(t, 1, succeeded)
	require.Equal(t, 1, rejected)

	agent, err := repo.GetAgent("agent1")
	require.NoError(t, err)
	require.Equal(t, 40, agent.Coins)
	require.Equal(t, 1, agent.TotalBids)
}

// Stress: many concurrent debits never drive a balance negative.
func TestCoinLedger_ConcurrentDebitStress(t *testing.T) {
	t.Parallel()

	repo := repository.NewMemoryRepo()
	seedAgent(t, repo, "agent1", 1000)
	ledger := NewCoinLedger(repo, fakeclock.NewFakeClock(ledgerEpoch))

	const workers = 100
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, _ = ledger.Debit("agent1", 30)
		}()
	}
	wg.Wait()

	agent, err := repo.GetAgent("agent1")
	require.NoError(t, err)
	require.GreaterOrEqual(t, agent.Coins, 0)
	require.Equal(t, 1000-30*agent.TotalBids, agent.Coins)
}

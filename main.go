package main

import (
	"fmt"
	"os"
	"time"

	"code.cloudfoundry.org/clock"

	bidding "mall-bidding/internal/biddingService"
	"mall-bidding/internal/catalog"
	"mall-bidding/internal/fanout"
	"mall-bidding/internal/ledger"
	"mall-bidding/internal/push"
	"mall-bidding/internal/repository"
	"mall-bidding/internal/server"
	"mall-bidding/internal/sessions"
)

const notificationSweepInterval = time.Minute

func main() {

	clk := clock.NewClock()
	repo := repository.NewMemoryRepo()

	seedAgents(repo)

	coins := ledger.NewCoinLedger(repo, clk)
	sender := push.NewLogSender()
	registry := sessions.NewRegistry(repo, coins, sender, clk)
	fan := fanout.NewService(repo, clk, fanout.DeliverMatched)
	matcher := catalog.NewDemoMatcher()

	marketplaceSvc := bidding.NewService(repo, coins, registry, fan, matcher, clk)

	stopSweeper := fan.StartSweeper(notificationSweepInterval)
	defer stopSweeper()

	router := server.SetupRouter(marketplaceSvc)

	port := getPort()
	fmt.Printf("Starting mall marketplace server on %s...\n", port)
	if err := router.Run(port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// seedAgents registers the 25 demo store agents in the repository
func seedAgents(repo *repository.MemoryRepo) {
	for _, agent := range catalog.SeedAgents() {
		if err := repo.SaveAgent(agent); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to seed agent %s: %v\n", agent.AgentID, err)
			os.Exit(1)
		}
	}
}

// getPort returns the server port from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}

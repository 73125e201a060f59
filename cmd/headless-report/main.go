package main

import (
	"flag"
	"fmt"
	"math/rand"
	"strings"

	"github.com/Garsondee/snake/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64
	ticks    int

	games       int
	foods       int
	wallCrashes int
	selfCrashes int
	steers      int
	bestScore   int
	bestLength  int
	longestGame int // ticks

	violations []string
}

var steerCommands = [...]game.Command{game.CmdUp, game.CmdDown, game.CmdLeft, game.CmdRight}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var turnChance float64
	var verbose bool

	flag.IntVar(&runs, "runs", 5, "number of headless runs")
	flag.IntVar(&ticks, "ticks", 3600, "ticks per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.Float64Var(&turnChance, "turn-chance", 0.2, "probability of a random steer per tick")
	flag.BoolVar(&verbose, "v", false, "list every invariant violation")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	if turnChance < 0 || turnChance > 1 {
		fmt.Println("error: -turn-chance must be within [0,1]")
		return
	}

	fmt.Printf("=== Headless Snake Report ===\n")
	fmt.Printf("runs=%d ticks=%d seed_base=%d seed_step=%d turn_chance=%.2f\n\n", runs, ticks, seedBase, seedStep, turnChance)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		rs := runScript(i+1, seed, ticks, turnChance)
		all = append(all, rs)
		printRun(rs, verbose)
	}
	printAggregate(all)
}

// runScript plays one seeded session with random steering, resetting after
// every crash, and checks each advance against the growth and scoring rules.
func runScript(runIndex int, seed int64, ticks int, turnChance float64) runStats {
	h := game.NewHarness(game.WithSeed(seed))
	e := h.Engine
	foodScore := e.Config().FoodScore
	script := rand.New(rand.NewSource(seed ^ 0x5eed)) // #nosec G404 -- input script

	rs := runStats{runIndex: runIndex, seed: seed, ticks: ticks, games: 1}
	gameStart := 0
	for t := 0; t < ticks; t++ {
		before := e.Snapshot()
		if e.GameOver() {
			h.Press(game.CmdReset)
			rs.games++
			gameStart = t
		} else if script.Float64() < turnChance {
			h.Press(steerCommands[script.Intn(len(steerCommands))])
		}
		out, _ := h.Step()
		after := e.Snapshot()

		if before.State == game.StatePlaying {
			for _, v := range game.StepViolations(before, after, out, foodScore) {
				rs.violations = append(rs.violations, fmt.Sprintf("T=%d %s", after.Tick, v))
			}
		}
		switch out {
		case game.OutcomeAte:
			rs.foods++
		case game.OutcomeCrashed:
			switch e.Crash() {
			case game.CrashWall:
				rs.wallCrashes++
			case game.CrashSelf:
				rs.selfCrashes++
			}
			if n := t - gameStart + 1; n > rs.longestGame {
				rs.longestGame = n
			}
		}
		if after.Score > rs.bestScore {
			rs.bestScore = after.Score
		}
		if after.Length > rs.bestLength {
			rs.bestLength = after.Length
		}
	}
	// The last game may still be running when the run ends.
	if !e.GameOver() {
		if n := ticks - gameStart; n > rs.longestGame {
			rs.longestGame = n
		}
	}
	rs.steers = e.Events().Count(game.EventSteer)
	return rs
}

func printRun(rs runStats, verbose bool) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("games=%d foods=%d steers=%d best_score=%d best_length=%d longest_game=%d\n",
		rs.games, rs.foods, rs.steers, rs.bestScore, rs.bestLength, rs.longestGame)
	fmt.Printf("crashes: wall=%d self=%d\n", rs.wallCrashes, rs.selfCrashes)
	fmt.Printf("violations=%d\n", len(rs.violations))
	if verbose {
		for _, v := range rs.violations {
			fmt.Printf("  %s\n", v)
		}
	}
	fmt.Println()
}

func printAggregate(all []runStats) {
	totalGames := 0
	totalFoods := 0
	totalWall := 0
	totalSelf := 0
	totalViolations := 0
	bestScore := 0
	bestRun := 0
	for _, rs := range all {
		totalGames += rs.games
		totalFoods += rs.foods
		totalWall += rs.wallCrashes
		totalSelf += rs.selfCrashes
		totalViolations += len(rs.violations)
		if rs.bestScore > bestScore {
			bestScore = rs.bestScore
			bestRun = rs.runIndex
		}
	}

	fmt.Printf("=== Aggregate (%d runs) ===\n", len(all))
	fmt.Printf("games=%d foods=%d foods_per_game=%.2f\n", totalGames, totalFoods, avg(totalFoods, totalGames))
	fmt.Printf("crash_split: wall=%s self=%s\n", pct(totalWall, totalWall+totalSelf), pct(totalSelf, totalWall+totalSelf))
	fmt.Printf("best_score=%d (run %d)\n", bestScore, bestRun)
	if totalViolations == 0 {
		fmt.Println("invariants: ok")
	} else {
		fmt.Printf("invariants: %d violations in runs %s\n", totalViolations, failingRuns(all))
	}
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func pct(part, total int) string {
	if total <= 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", 100*float64(part)/float64(total))
}

func failingRuns(all []runStats) string {
	var ids []string
	for _, rs := range all {
		if len(rs.violations) > 0 {
			ids = append(ids, fmt.Sprint(rs.runIndex))
		}
	}
	if len(ids) == 0 {
		return "none"
	}
	return strings.Join(ids, ",")
}

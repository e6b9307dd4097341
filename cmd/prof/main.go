// Profiling harness for the search: self-plays a shallow opening, then
// searches the resulting midgame position at a fixed depth.
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/pkg/profile"

	"github.com/menezesd/othello/internal/board"
	"github.com/menezesd/othello/internal/search"
)

// 浅层自对弈的手数，得到一个有代表性的中局
const openingPlies = 12

func main() {
	var (
		depth   = flag.Int("depth", 10, "search depth")
		memProf = flag.Bool("mem", false, "profile memory instead of CPU")
	)
	flag.Parse()

	if *memProf {
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	} else {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	bd := board.New()
	eng := search.NewEngine(bd, 0) // 不限时，深度封顶

	player := board.Black
	for i := 0; i < openingPlies; i++ {
		mv, ok := eng.IterativeDeepening(player, 2)
		if !ok {
			mv = bd.FirstLegal(player)
		}
		if mv >= 0 {
			bd.MakeMove(mv, player)
		}
		player = board.Opponent(player)
	}

	fmt.Printf("Searching depth %d...\n", *depth)
	start := time.Now()
	mv, ok := eng.IterativeDeepening(player, *depth)
	elapsed := time.Since(start)

	fmt.Printf("best move: %d (ok=%v)\n", mv, ok)
	fmt.Printf("nodes: %d  tt hits: %d  time: %v  nps: %.0f\n",
		eng.Nodes, eng.TTHits, elapsed, float64(eng.Nodes)/elapsed.Seconds())
}

package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/minaorangina/palace/ai"
	"github.com/minaorangina/palace/game"
	"github.com/minaorangina/palace/players"
)

type config struct {
	Name          string `env:"SHED_NAME,default=Me"`
	Opponents     int    `env:"SHED_OPPONENTS,default=1"`
	Seed          int64  `env:"SHED_SEED,default=0"`
	Autoplay      bool   `env:"SHED_AUTOPLAY,default=false"`
	MaxTurns      int    `env:"SHED_MAX_TURNS,default=2000"`
	LooseSeenRule bool   `env:"SHED_LOOSE_SEEN_RULE,default=false"`
}

var computerNames = []string{"Harry", "Sally", "Marie"}

func loadConfig() (config, error) {
	var cfg config
	if err := envdecode.Decode(&cfg); err != nil && err != envdecode.ErrNoTargetFieldsAreSet {
		return cfg, err
	}
	return cfg, nil
}

func newPlayers(cfg config, r *rand.Rand) []*game.Player {
	ps := []*game.Player{}

	if cfg.Autoplay {
		ps = append(ps, game.NewPlayer(cfg.Name, ai.NewComputer(r)))
	} else {
		human := game.NewPlayer(cfg.Name, players.NewCLIPlayer(os.Stdin, os.Stdout))
		human.RequireEightFollowUp = true
		ps = append(ps, human)
	}

	for i := 0; i < cfg.Opponents && i < len(computerNames); i++ {
		ps = append(ps, game.NewPlayer(computerNames[i], ai.NewComputer(r)))
	}

	return ps
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))
	log.Printf("Dealing with seed %d", seed)

	g, err := game.NewGame(newPlayers(cfg, r), game.GameOpts{
		Rules:    game.Rules{LooseSeen: cfg.LooseSeenRule},
		MaxTurns: cfg.MaxTurns,
		Rand:     r,
		Notifier: players.NewDisplay(os.Stdout),
	})
	if err != nil {
		log.Fatal(err)
	}

	winner, err := g.Run()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("\n%s wins after %d turns.\n", winner.Name, g.Turns())
}

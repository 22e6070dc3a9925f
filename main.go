package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/logrusorgru/aurora"
	"github.com/samuelfneumann/mephistophelia/agent/qlearning"
	"github.com/samuelfneumann/mephistophelia/environment/envconfig"
	"github.com/samuelfneumann/mephistophelia/environment/platformer"
	"github.com/samuelfneumann/mephistophelia/experiment"
	"github.com/samuelfneumann/mephistophelia/experiment/plot"
	"github.com/samuelfneumann/mephistophelia/experiment/tracker"
	"github.com/samuelfneumann/mephistophelia/experiment/trackers"
	ts "github.com/samuelfneumann/mephistophelia/timestep"
	"github.com/samuelfneumann/mephistophelia/utils/progressbar"
)

// progress is a Tracker that advances a progress bar on every tick
type progress struct {
	bar   *progressbar.ManualProgressBar
	score float64
}

func (p *progress) Track(t ts.TimeStep) {
	if t.First() {
		p.score = 0
		return
	}
	p.score += t.Reward
	p.bar.Increment()
	if t.Last() || t.Number%500 == 0 {
		p.bar.SetStatus("episode score: %.0f", p.score)
		p.bar.Display()
	}
}

func (p *progress) Save() error {
	p.bar.Finish()
	return nil
}

func main() {
	configFile := flag.String("config", "", "experiment configuration "+
		"file, defaults to a radar agent on levels/tutorial.txt")
	ticks := flag.Uint("ticks", 0, "number of ticks to run, overrides the "+
		"configuration")
	qtable := flag.String("qtable", "", "load action values from this file "+
		"before training, if it exists")
	save := flag.String("save", "", "save action values to this file after "+
		"training")
	explore := flag.Bool("explore", false, "start with full exploration, "+
		"after loading action values if any")
	checkpoint := flag.Uint("checkpoint", 0, "checkpoint the action values "+
		"every this many ticks, named after -save")
	returns := flag.String("returns", "", "save episodic returns to this file")
	plotFile := flag.String("plot", "", "save an HTML learning curve to this "+
		"file")
	window := flag.Int("window", 20, "moving average window of the learning "+
		"curve")
	render := flag.String("render", "", "save a PNG of the level after "+
		"training to this file")
	seed := flag.Uint64("seed", 0, "random seed")
	flag.Parse()

	// Configure the experiment
	config := experiment.Config{
		MaxTicks:  100_000,
		EndPolicy: experiment.AutoContinue,
		EnvConf:   envconfig.NewConfig("levels/tutorial.txt", ""),
		AgentConf: qlearning.DefaultConfig(),
	}
	if *configFile != "" {
		var err error
		if config, err = experiment.LoadConfig(*configFile); err != nil {
			log.Fatalf("could not load configuration: %v", err)
		}
	}
	if *ticks > 0 {
		config.MaxTicks = *ticks
	}
	if *checkpoint > 0 {
		if *save == "" {
			log.Fatalf("-checkpoint requires -save")
		}
		config.CheckpointEvery = *checkpoint
		config.Checkpoint = *save
	}
	if config.CheckpointEvery > 0 {
		dir := filepath.Dir(config.Checkpoint)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("could not create checkpoint directory: %v", err)
		}
	}

	// Track returns and episode lengths
	returnsFile := *returns
	if returnsFile == "" {
		returnsFile = os.DevNull
	}
	ret := trackers.NewReturn(returnsFile)
	length := trackers.NewEpisodeLength(os.DevNull)
	t := []tracker.Tracker{ret, length}

	exp, err := config.CreateExp(*seed, t, nil)
	if err != nil {
		log.Fatalf("could not create experiment: %v", err)
	}

	if *qtable != "" {
		ok, err := exp.LoadAgent(*qtable)
		if err != nil {
			log.Fatalf("could not load action values: %v", err)
		}
		if ok {
			log.Printf("loaded action values from %v", *qtable)
		}
	}
	if *explore {
		exp.Explore()
	}

	if config.MaxTicks > 0 {
		bar := progressbar.NewManualProgressBar(os.Stdout, 50,
			int(config.MaxTicks))
		exp.Register(&progress{bar: bar})
	}

	// Run until the tick limit or an interrupt
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := exp.Run(ctx); err != nil && err != context.Canceled {
		log.Fatalf("could not run experiment: %v", err)
	}

	if err := exp.Save(); err != nil {
		log.Fatalf("could not save tracked data: %v", err)
	}
	if *save != "" {
		if err := exp.SaveAgent(*save); err != nil {
			log.Fatalf("could not save action values: %v", err)
		}
	}

	// Summarise the run
	summary := tracker.Summarise(ret.Data())
	fmt.Println(aurora.Bold(fmt.Sprintf("ticks: %d", exp.Ticks())))
	if summary.N == 0 {
		fmt.Println(aurora.Red("the goal was never reached"))
	} else {
		fmt.Println(aurora.Green(summary.String()))
		lengths := tracker.Summarise(length.Data())
		fmt.Println(aurora.Cyan(fmt.Sprintf("episode length: %.1f ± %.1f",
			lengths.Mean, lengths.Std)))
	}
	fmt.Println(aurora.Yellow(fmt.Sprintf("noise: %.4f", exp.Agent().Noise())))

	if *plotFile != "" {
		err := plot.SaveLearningCurve(*plotFile, "Learning curve", *window,
			plot.Series{Name: "Return", Values: ret.Data()},
			plot.Series{Name: "Episode length", Values: length.Data()},
		)
		if err != nil {
			log.Fatalf("could not plot: %v", err)
		}
	}

	if *render != "" {
		p, ok := exp.Environment().(*platformer.Platformer)
		if !ok {
			log.Fatalf("cannot render %T", exp.Environment())
		}
		if err := p.SavePNG(*render); err != nil {
			log.Fatalf("could not render: %v", err)
		}
	}
}

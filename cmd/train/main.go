package main

import (
	"flag"
	"log"

	"relunet/internal/trainer"
)

func main() {
	def := trainer.Default()

	examples := flag.Int("examples", def.Examples, "Training examples per batch")
	inputDim := flag.Int("input-dim", def.InputDim, "Input features")
	hiddenDim := flag.Int("hidden-dim", def.HiddenDim, "Hidden units")
	outputDim := flag.Int("output-dim", def.OutputDim, "Output features")
	lr := flag.Float64("lr", def.LearningRate, "Learning rate")
	iterations := flag.Int("iterations", def.Iterations, "Iteration count")
	seed := flag.Uint64("seed", 0, "PRNG seed (0 = unseeded, non-reproducible)")
	logEvery := flag.Int("log-every", 50, "Log every N iterations")
	history := flag.String("history", "", "Optional CSV path for the loss history")

	flag.Parse()

	cfg := trainer.Config{
		Examples:     *examples,
		InputDim:     *inputDim,
		HiddenDim:    *hiddenDim,
		OutputDim:    *outputDim,
		LearningRate: *lr,
		Iterations:   *iterations,
		Seed:         *seed,
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	callbacks := []trainer.Callback{trainer.Logger{Interval: *logEvery}}
	if *history != "" {
		callbacks = append(callbacks, trainer.NewCSVLogger(*history, false))
	}

	res, err := trainer.Run(cfg, callbacks...)
	if err != nil {
		log.Fatalf("training failed: %v", err)
	}

	last := len(res.History.Train) - 1
	log.Printf("done iterations=%d final_train_loss=%.6e final_val_loss=%.6e",
		cfg.Iterations, res.History.Train[last], res.History.Val[last])
	if *history != "" {
		log.Printf("loss history written to %s", *history)
	}
}

// Command lossplot renders a training loss-history CSV (as written by
// cmd/train) to a PNG with the train and validation curves.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

func main() {
	in := flag.String("in", "history.csv", "Loss history CSV")
	out := flag.String("out", "loss.png", "Output image path")
	title := flag.String("title", "Training and validation loss", "Plot title")
	logY := flag.Bool("log-y", false, "Logarithmic loss axis")

	flag.Parse()

	train, val, err := readHistory(*in)
	if err != nil {
		log.Fatalf("read history: %v", err)
	}

	p := plot.New()
	p.Title.Text = *title
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = "loss"
	if *logY {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}

	if err := plotutil.AddLinePoints(p, "train", train, "validation", val); err != nil {
		log.Fatalf("add curves: %v", err)
	}

	if err := p.Save(8*vg.Inch, 5*vg.Inch, *out); err != nil {
		log.Fatalf("save plot: %v", err)
	}
	log.Printf("wrote %s (%d iterations)", *out, train.Len())
}

// readHistory parses the iteration, train_loss and val_loss columns.
func readHistory(path string) (train, val plotter.XYs, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 2 {
		return nil, nil, fmt.Errorf("%s: no data rows", path)
	}

	for i, rec := range records[1:] {
		if len(rec) < 3 {
			return nil, nil, fmt.Errorf("%s: row %d has %d columns, want at least 3", path, i+2, len(rec))
		}
		iter, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: row %d: iteration: %w", path, i+2, err)
		}
		trainLoss, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: row %d: train_loss: %w", path, i+2, err)
		}
		valLoss, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: row %d: val_loss: %w", path, i+2, err)
		}
		train = append(train, plotter.XY{X: iter, Y: trainLoss})
		val = append(val, plotter.XY{X: iter, Y: valLoss})
	}
	return train, val, nil
}

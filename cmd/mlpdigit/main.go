// Package main provides the mlpdigit CLI: classify a raw 28×28 image with a
// four-layer perceptron loaded from raw float32 parameter files.
package main

import (
	"encoding/binary"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/born-ml/mlp/internal/matrix"
	"github.com/born-ml/mlp/internal/nn"
	"github.com/born-ml/mlp/internal/serialization"
)

const version = "v0.1.0"

// numArgs is 4 weight files, 4 bias files and the image.
const numArgs = 2*nn.NumLayers + 1

var errUsage = errors.New("usage error")

func main() {
	log.SetFlags(0)
	log.SetPrefix("mlpdigit: ")

	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, errUsage) {
			log.Print(err)
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

// config holds the parsed command line.
type config struct {
	weights [nn.NumLayers]string
	biases  [nn.NumLayers]string
	image   string
	opts    serialization.ReaderOptions
}

func parseArgs(args []string, stderr io.Writer) (*config, error) {
	fs := flag.NewFlagSet("mlpdigit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	lenient := fs.Bool("lenient", false, "Accept parameter files with trailing bytes")
	bigEndian := fs.Bool("big-endian", false, "Decode files as big-endian float32")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: mlpdigit [flags] w1 w2 w3 w4 b1 b2 b3 b4 image\n")
		fmt.Fprintf(stderr, "       mlpdigit version\n\nFlags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", errUsage, err)
	}

	if fs.NArg() != numArgs {
		fs.Usage()
		return nil, fmt.Errorf("%w: expected %d file arguments, got %d", errUsage, numArgs, fs.NArg())
	}

	cfg := &config{opts: serialization.DefaultReaderOptions()}
	if *lenient {
		cfg.opts.ValidationLevel = serialization.ValidationNormal
	}
	if *bigEndian {
		cfg.opts.ByteOrder = binary.BigEndian
	}
	files := fs.Args()
	copy(cfg.weights[:], files[:nn.NumLayers])
	copy(cfg.biases[:], files[nn.NumLayers:2*nn.NumLayers])
	cfg.image = files[2*nn.NumLayers]
	return cfg, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 1 && args[0] == "version" {
		fmt.Fprintf(stdout, "mlpdigit %s\n", version)
		return nil
	}

	cfg, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}

	params, err := serialization.LoadParameters(cfg.weights, cfg.biases, cfg.opts)
	if err != nil {
		return err
	}
	mlp, err := params.Network()
	if err != nil {
		return err
	}
	if err := mlp.Validate(); err != nil {
		return err
	}

	img, err := serialization.LoadImage(cfg.image, cfg.opts)
	if err != nil {
		return err
	}
	return classify(mlp, img, stdout)
}

// classify prints the image and the network's verdict.
func classify(mlp *nn.MLP, img *matrix.Matrix, stdout io.Writer) error {
	fmt.Fprintln(stdout, "Image processed:")
	if err := img.Render(stdout); err != nil {
		return err
	}

	digit, err := mlp.Evaluate(img)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Mlp result: %s\n", digit)
	return nil
}

// SPDX-License-Identifier: MIT

// Command squaremat walks through the Square matrix operations on two 3×3
// matrices and prints every intermediate result to stdout.
package main

import (
	"fmt"
	"os"

	"github.com/op/go-logging"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/katalvlaran/squaremat/matrix"
)

const version = "squaremat 0.1.0"

var log = logging.MustGetLogger("squaremat")
var formatter = logging.MustStringFormatter(`%{message}`)

// command-line options
var (
	app = kingpin.New("squaremat", "square matrix arithmetic walkthrough").Version(version)

	power       = app.Flag("power", "exponent used for the power step").Default("2").Int()
	binaryPower = app.Flag("binary-power", "use exponentiation by squaring instead of repeated multiplication").Bool()
	precision   = app.Flag("precision", "significant digits when printing values").Default("6").Int()
	warnDim     = app.Flag("det-warn", "warn when the determinant is expanded on matrices this large").Default("10").Int()

	outLogF  = app.Flag("log", "write log to a file").String()
	logLevel = app.Flag("loglevel", "set loglevel "+
		"('critical', 'error', 'warning', 'notice', 'info', 'debug')").
		Default("notice").
		Enum("critical", "error", "warning", "notice", "info", "debug")
)

// config is the parsed command line in library terms.
type config struct {
	power int
	opts  []matrix.Option
}

// newConfig validates flag values before they reach option constructors,
// which panic on nonsense.
func newConfig(power int, binary bool, precision, warnDim int) (config, error) {
	if power < 0 {
		return config{}, fmt.Errorf("--power must be >= 0, got %d", power)
	}
	if precision < 1 || precision > 17 {
		return config{}, fmt.Errorf("--precision must be in [1, 17], got %d", precision)
	}
	if warnDim < 1 {
		return config{}, fmt.Errorf("--det-warn must be >= 1, got %d", warnDim)
	}

	c := config{
		power: power,
		opts: []matrix.Option{
			matrix.WithPrecision(precision),
			matrix.WithDeterminantWarnDim(warnDim),
		},
	}
	if binary {
		c.opts = append(c.opts, matrix.WithBinaryPower())
	}

	return c, nil
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	// logging
	logging.SetFormatter(formatter)

	var backend *logging.LogBackend
	if *outLogF != "" {
		f, err := os.OpenFile(*outLogF, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Fatal("Error creating log file:", err)
		}
		defer f.Close()
		backend = logging.NewLogBackend(f, "", 0)
	} else {
		backend = logging.NewLogBackend(os.Stderr, "", 0)
	}
	logging.SetBackend(backend)

	level, err := logging.LogLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	logging.SetLevel(level, "squaremat")
	logging.SetLevel(level, "matrix")

	log.Info(version)
	log.Info("Command line:", os.Args)

	cfg, err := newConfig(*power, *binaryPower, *precision, *warnDim)
	if err != nil {
		log.Fatal(err)
	}

	if err := run(os.Stdout, cfg); err != nil {
		log.Fatal(err)
	}
}

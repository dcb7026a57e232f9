// SPDX-License-Identifier: MIT

package matrix

import "github.com/op/go-logging"

// logModule is the go-logging module name; binaries tune it with
// logging.SetLevel(level, "matrix").
const logModule = "matrix"

// log is the package logger. The core never writes to stdout; the only
// diagnostics are warnings about factorial-cost determinants and debug
// traces of the power strategy.
var log = logging.MustGetLogger(logModule)

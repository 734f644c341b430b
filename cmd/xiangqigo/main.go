/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package main

import (
	"flag"
	"os"
	"runtime"
	"sort"

	gologging "github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/xiangqigo/internal/attacks"
	"github.com/frankkopp/xiangqigo/internal/board"
	"github.com/frankkopp/xiangqigo/internal/config"
	"github.com/frankkopp/xiangqigo/internal/logging"
	"github.com/frankkopp/xiangqigo/internal/perft"
)

var out = message.NewPrinter(language.English)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config/config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "log level\n(off|critical|error|warning|notice|info|debug)")
	fen := flag.String("fen", board.StartPositionString, "position string for perft\n(defaults to the Xiangqi start position)")
	depth := flag.Int("perft", 0, "runs perft to the given depth and exits\n0 disables perft entirely")
	divide := flag.Bool("divide", false, "when set with -perft, prints the per-root-move subtree counts instead of just the total")
	workers := flag.Int("workers", runtime.NumCPU(), "worker pool size for -divide")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	config.ConfFile = *configFile
	config.Setup()
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	log := logging.Get("cmd")

	if *depth <= 0 {
		flag.Usage()
		return
	}

	attacks.Init()

	if *divide {
		runDivide(log, *fen, *depth, *workers)
		return
	}
	runPerft(log, *fen, *depth)
}

func runPerft(log *gologging.Logger, fen string, depth int) {
	r, err := perft.Run(fen, depth)
	if err != nil {
		log.Errorf("invalid position %q: %v", fen, err)
		os.Exit(1)
	}
	out.Print(perft.Report(fen, depth, r))
}

func runDivide(log *gologging.Logger, fen string, depth int, workers int) {
	divided, err := perft.Divide(fen, depth, workers)
	if err != nil {
		log.Errorf("invalid position %q: %v", fen, err)
		os.Exit(1)
	}

	moveStrings := make([]string, 0, len(divided))
	for m := range divided {
		moveStrings = append(moveStrings, m)
	}
	sort.Strings(moveStrings)

	out.Printf("Divide for depth %d from %s\n", depth, fen)
	for _, m := range moveStrings {
		out.Printf("%-8s: %d\n", m, divided[m])
	}
	out.Printf("Total moves: %d\n", len(divided))
	out.Printf("Total nodes: %d\n", perft.Total(divided))
}

func printVersionInfo() {
	out.Println("xiangqigo")
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}

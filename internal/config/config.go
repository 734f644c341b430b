//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package config holds the process-wide configuration for the engine
// core: log level, the debug full-audit toggle, and undo-history
// sizing. None of it affects position semantics, only how much the
// core double-checks and reports about itself. Search, evaluation and
// UCI configuration are a search driver's concern and live outside
// this module.
package config

import (
	"log"

	"github.com/BurntSushi/toml"

	"github.com/frankkopp/xiangqigo/internal/util"
)

// globally available config values.
var (
	// ConfFile holds the path to the used config file (relative to working directory).
	ConfFile = "./config/config.toml"

	// LogLevel defines the general log level - can be overwritten by the config file.
	LogLevel = 2

	// Settings is the global configuration read in from file.
	Settings = conf{
		Board: boardConfiguration{HistoryBlockSize: 64},
	}

	initialized = false
)

// LogLevels maps the command-line/config-file spelling of a log level to
// the numeric level github.com/op/go-logging expects.
var LogLevels = map[string]int{
	"off":      -1,
	"critical": 0,
	"error":    1,
	"warning":  2,
	"notice":   3,
	"info":     4,
	"debug":    5,
}

type conf struct {
	Log   logConfiguration
	Board boardConfiguration
	Debug debugConfiguration
}

type logConfiguration struct {
	Level int
}

// boardConfiguration controls the growable undo stack in
// internal/board: HistoryBlockSize is its initial capacity. Past that
// the stack grows by Go's append, not in HistoryBlockSize steps.
type boardConfiguration struct {
	HistoryBlockSize int
}

// debugConfiguration gates the optional invariant checks described in
// spec §7: FullAudit recomputes the Zobrist keys and re-derives the
// mailbox from the bitboards after every make/unmake and panics on
// divergence. Off by default because it is O(squares) per move.
type debugConfiguration struct {
	FullAudit bool
}

// Setup reads the configuration file and sets Settings and LogLevel
// from it, falling back to defaults when the file is absent or
// malformed.
func Setup() {
	if initialized {
		return
	}

	path, _ := util.ResolveFile(ConfFile)
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Println("Config file not found. Using defaults. (", err, ")")
	}

	setupLogLvl()
	if Settings.Board.HistoryBlockSize <= 0 {
		Settings.Board.HistoryBlockSize = 64
	}
	initialized = true
}

func setupLogLvl() {
	if Settings.Log.Level != 0 {
		LogLevel = Settings.Log.Level
	}
}

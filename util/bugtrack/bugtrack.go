//go:build bugs
// +build bugs

// Copyright (C) 2023 - 2026 iDigitalFlame
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.
//

package bugtrack

import (
	"os"
	"path/filepath"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/PurpleSec/logx"
)

// Enabled indicates if debug tracing was compiled in.
//
// This is true only when the "bugs" build tag is used.
const Enabled = true

var log logx.Log

func init() {
	f, err := openLog()
	if err != nil {
		panic("bugtrack: log setup failed: " + err.Error())
	}
	log = logx.Multiple(f, logx.Writer(os.Stderr, logx.Trace))
	log.SetPrefix("BUGTRACK")
	log.Info("Trace log ready, PID %d.", os.Getpid())
}
func openLog() (logx.Log, error) {
	d := os.TempDir()
	if err := os.MkdirAll(d, 0755); err != nil {
		return nil, err
	}
	return logx.File(
		filepath.Join(d, "xthread-"+strconv.Itoa(os.Getpid())+".log"),
		logx.Append, logx.Trace,
	)
}

// Track writes a trace entry to the bug log. Arguments follow the
// 'fmt.Sprintf' convention.
//
// Call sites should be guarded with 'if bugtrack.Enabled' so the argument
// construction is compiled out with the log itself.
func Track(s string, m ...interface{}) {
	log.Trace(s, m...)
}

// Recover is a deferred guard that logs a panic with its stack trace before
// letting execution continue.
//
//	if bugtrack.Enabled {
//	    defer bugtrack.Recover("thread-walk")
//	}
//
// A short sleep after logging gives the file sink time to flush when the
// process is about to die anyway.
func Recover(v string) {
	if r := recover(); r != nil {
		log.Error("Recovered %s: [%s]", v, r)
		log.Error("Trace: %s", debug.Stack())
		time.Sleep(30 * time.Second)
	}
}

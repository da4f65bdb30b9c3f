// SPDX-License-Identifier: GPL-2.0-or-later

// Package conlog routes console output. The embedding renderer injects
// its own console printer; without one everything goes to log.Printf.
package conlog

import (
	"log"
)

var (
	p  func(string, ...interface{}) = log.Printf
	sp func(string, ...interface{}) = log.Printf
)

func SetPrintf(f func(string, ...interface{})) {
	p = f
}

func SetSafePrintf(f func(string, ...interface{})) {
	sp = f
}

func Printf(format string, v ...interface{}) {
	p(format, v...)
}

func SafePrintf(format string, v ...interface{}) {
	sp(format, v...)
}

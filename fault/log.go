// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
)

// last chance logging channel
var lastChance struct {
	sync.Mutex
	log *logger.L
}

// Initialise - setup a log channel for last attempt to log something
//
// must be called after logger.Initialise
func Initialise() error {
	lastChance.Lock()
	defer lastChance.Unlock()

	if nil != lastChance.log {
		return ErrAlreadyInitialised
	}
	lastChance.log = logger.New("PANIC")
	if nil == lastChance.log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data and release the channel
func Finalise() {
	lastChance.Lock()
	defer lastChance.Unlock()

	if nil != lastChance.log {
		lastChance.log.Flush()
		lastChance.log = nil
	}
}

// Criticalf - log a formatted string prefixed by the caller's file and line
func Criticalf(format string, arguments ...interface{}) {
	criticalf(2, format, arguments...)
}

// PanicIfError - log and panic when err is set
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	s := fmt.Sprintf("%s failed with error: %v", message, err)
	criticalf(2, "%s", s)
	time.Sleep(100 * time.Millisecond) // to allow logging output
	panic(s)
}

func criticalf(skip int, format string, arguments ...interface{}) {
	if _, file, line, ok := runtime.Caller(skip); ok {
		format = "(%q:%d) " + format
		arguments = append([]interface{}{file, line}, arguments...)
	}

	lastChance.Lock()
	defer lastChance.Unlock()

	// uninitialised channel goes to stdout
	if nil == lastChance.log {
		fmt.Printf("*** "+format+"\n", arguments...)
		return
	}
	lastChance.log.Criticalf(format, arguments...)
	lastChance.log.Flush()
}

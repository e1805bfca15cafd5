// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"github.com/pkg/errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type IntegrityError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised     = ExistsError("already initialised")
	ErrConfigurationNotTable  = InvalidError("configuration did not return a table")
	ErrDatabaseIsNotSet       = ProcessError("database is not set")
	ErrDatabaseVersion        = InvalidError("database version is newer than supported")
	ErrInterrupted            = ProcessError("interrupted")
	ErrInvalidCacheSize       = InvalidError("invalid cache size")
	ErrInvalidChain           = InvalidError("invalid chain")
	ErrInvalidCount           = InvalidError("invalid count")
	ErrInvalidDataDirectory   = InvalidError("invalid data directory")
	ErrInvalidDenomination    = InvalidError("invalid denomination")
	ErrInvalidDifficulty      = InvalidError("invalid difficulty bits")
	ErrInvalidFileName        = InvalidError("invalid file name")
	ErrInvalidHashLength      = LengthError("invalid hash length")
	ErrInvalidLoggerChannel   = InvalidError("invalid logger channel")
	ErrInvalidPrefix          = InvalidError("invalid pool prefix")
	ErrInvalidStructPointer   = InvalidError("invalid struct pointer")
	ErrKeyNotInRange          = InvalidError("key is not in pool range")
	ErrMintExists             = ExistsError("commitment already minted by another transaction")
	ErrNotInitialised         = NotFoundError("not initialised")
	ErrProofOfWork            = IntegrityError("proof of work check failed")
	ErrRecordTrailingData     = RecordError("record has trailing data")
	ErrRecordTruncated        = RecordError("record is truncated")
	ErrRecordVersion          = RecordError("record version is not supported")
	ErrRecordValueOutOfRange  = RecordError("record value out of range")
	ErrUnknownWipeKind        = InvalidError("unknown wipe kind")
	ErrUnresolvableReference  = IntegrityError("block index reference cannot be resolved")
	ErrZeroHashBlockIndexNode = IntegrityError("block index record has zero hash")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string    { return string(e) }
func (e IntegrityError) Error() string { return string(e) }
func (e InvalidError) Error() string   { return string(e) }
func (e LengthError) Error() string    { return string(e) }
func (e NotFoundError) Error() string  { return string(e) }
func (e ProcessError) Error() string   { return string(e) }
func (e RecordError) Error() string    { return string(e) }

// determine the class of an error
//
// wrapped errors are unwrapped to their root cause first
func IsErrExists(e error) bool    { _, ok := errors.Cause(e).(ExistsError); return ok }
func IsErrIntegrity(e error) bool { _, ok := errors.Cause(e).(IntegrityError); return ok }
func IsErrInvalid(e error) bool   { _, ok := errors.Cause(e).(InvalidError); return ok }
func IsErrLength(e error) bool    { _, ok := errors.Cause(e).(LengthError); return ok }
func IsErrNotFound(e error) bool  { _, ok := errors.Cause(e).(NotFoundError); return ok }
func IsErrProcess(e error) bool   { _, ok := errors.Cause(e).(ProcessError); return ok }
func IsErrRecord(e error) bool    { _, ok := errors.Cause(e).(RecordError); return ok }

// IsErrDeserialize - record decode failures and length failures
// both mean the on-disk bytes could not be turned into a value
func IsErrDeserialize(e error) bool {
	return IsErrRecord(e) || IsErrLength(e)
}

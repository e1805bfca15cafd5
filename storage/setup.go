// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"os"
	"reflect"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/filter"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/chaindb/fault"
)

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

// Options - how to open a database
type Options struct {
	CacheSize int  // bytes, split between block cache and write buffer
	Memory    bool // no files, data is lost on Close
	Wipe      bool // remove any existing database first
	ReadOnly  bool
	Version   int // current format version, 0 means do not check
}

// Handle - an open database
type Handle struct {
	sync.RWMutex
	name     string
	database Database
	version  int
	log      *logger.L
}

// Open - open (or create) the database in directory
func Open(directory string, options Options) (*Handle, error) {

	if options.Wipe && !options.Memory && !options.ReadOnly {
		if err := os.RemoveAll(directory); nil != err {
			return nil, errors.Wrapf(err, "wipe database: %s", directory)
		}
	}

	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: options.ReadOnly,
		ReadOnly:       options.ReadOnly,
		Compression:    ldb_opt.NoCompression,
		Filter:         filter.NewBloomFilter(10),
	}
	if options.CacheSize > 0 {
		opt.BlockCacheCapacity = options.CacheSize / 2
		opt.WriteBuffer = options.CacheSize / 4
	}

	var db *leveldb.DB
	var err error
	if options.Memory {
		db, err = leveldb.Open(ldb_storage.NewMemStorage(), opt)
	} else {
		db, err = leveldb.OpenFile(directory, opt)
	}
	if nil != err {
		return nil, errors.Wrapf(err, "open database: %s", directory)
	}

	h, err := NewHandle(directory, db, options)
	if nil != err {
		db.Close()
		return nil, err
	}
	return h, nil
}

// NewHandle - wrap an already open database
func NewHandle(name string, database Database, options Options) (*Handle, error) {
	if nil == database {
		return nil, fault.ErrDatabaseIsNotSet
	}

	h := &Handle{
		name:     name,
		database: database,
		log:      logger.New("storage"),
	}

	version, err := getVersion(database)
	if nil != err {
		return nil, err
	}

	// ensure no database downgrade
	if options.Version > 0 && version > options.Version {
		h.log.Criticalf("database: %s  version: %d > current version: %d", name, version, options.Version)
		return nil, errors.Wrapf(fault.ErrDatabaseVersion, "database: %s  version: %d > current version: %d", name, version, options.Version)
	}

	// database was empty so tag as current version
	if options.Version > 0 && 0 == version && !options.ReadOnly {
		if err := putVersion(database, options.Version); nil != err {
			return nil, errors.Wrapf(err, "database: %s  set version", name)
		}
		version = options.Version
	}
	h.version = version

	h.log.Infof("opened: %q  version: %d", name, version)
	return h, nil
}

// Close - close the database, the handle must not be used afterwards
func (h *Handle) Close() error {
	h.Lock()
	defer h.Unlock()
	if nil == h.database {
		return nil
	}
	err := h.database.Close()
	h.database = nil
	h.log.Infof("closed: %q", h.name)
	return err
}

// Name - the directory (or label) of the database
func (h *Handle) Name() string {
	return h.name
}

// Version - the format version recorded in the database, 0 if none
func (h *Handle) Version() int {
	return h.version
}

// return version number, 0 if none is recorded
func getVersion(db Database) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db Database, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}

// Bind - set every *PoolHandle field of the struct pointed to by pools
//
// each field must be exported and carry a single character prefix tag
func (h *Handle) Bind(pools interface{}) error {

	// since interface{} is untyped, have to verify type compatibility at run-time
	rv := reflect.ValueOf(pools)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fault.ErrInvalidStructPointer
	}
	poolValue := rv.Elem()
	if poolValue.Kind() != reflect.Struct {
		return fault.ErrInvalidStructPointer
	}
	poolType := poolValue.Type()

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return errors.Wrapf(fault.ErrInvalidPrefix, "pool: %s has invalid prefix: %q", fieldInfo.Name, prefixTag)
		}

		if fieldInfo.Type != reflect.TypeOf((*PoolHandle)(nil)) {
			return errors.Wrapf(fault.ErrInvalidStructPointer, "pool: %s is not a *PoolHandle", fieldInfo.Name)
		}

		poolValue.Field(i).Set(reflect.ValueOf(h.Pool(prefixTag[0])))
	}
	return nil
}

// Tags - the prefix tag and field name of every pool in a pools struct
func Tags(pools interface{}) map[string]string {
	result := make(map[string]string)
	poolType := reflect.TypeOf(pools)
	if poolType.Kind() == reflect.Ptr {
		poolType = poolType.Elem()
	}
	if poolType.Kind() != reflect.Struct {
		return result
	}
	for i := 0; i < poolType.NumField(); i += 1 {
		fieldInfo := poolType.Field(i)
		if prefixTag := fieldInfo.Tag.Get("prefix"); "" != prefixTag {
			result[prefixTag] = fieldInfo.Name
		}
	}
	return result
}

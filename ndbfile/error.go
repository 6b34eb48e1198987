package ndbfile

import "errors"

// ErrMissingHeader indicates a store file had no NDB_HEAD section before
// EOF (spec §7 StoreLoadFailed: "bad header").
var ErrMissingHeader = errors.New("ndbfile: missing NDB_HEAD section")

package state

import "errors"

var ErrSnapshotNotFound = errors.New("state snapshot not found")

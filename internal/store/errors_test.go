package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStorageErrorHidesDriverDetail(t *testing.T) {
	driverErr := errors.New("pq: connection reset by peer on host 10.0.0.3")
	err := storageErr("recipe insert", driverErr)

	// The message crossing the boundary names the operation only.
	assert.Equal(t, "storage failure during recipe insert", err.Error())

	// The original cause stays reachable for in-process logging.
	assert.ErrorIs(t, err, driverErr)

	var storageError *StorageError
	assert.ErrorAs(t, err, &storageError)
	assert.Equal(t, "recipe insert", storageError.Op)
}

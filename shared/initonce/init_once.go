package initonce

import (
	"github.com/otterize/logging-reader-provisioner/shared/errors"
	"sync"
)

// InitOnce runs an initialization function until it succeeds once.
type InitOnce struct {
	mutex sync.Mutex
	done  bool
}

// Do calls f unless a previous call to f through this InitOnce returned nil. Failed attempts are not
// remembered, so the next call to Do retries. Concurrent callers block until the running attempt ends.
func (i *InitOnce) Do(f func() error) error {
	i.mutex.Lock()
	defer i.mutex.Unlock()

	if i.done {
		return nil
	}

	if err := f(); err != nil {
		return errors.Wrap(err)
	}
	i.done = true
	return nil
}

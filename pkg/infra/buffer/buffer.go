package buffer

import (
	"sync"

	"github.com/m-mizutani/psdemo/pkg/domain/model"
)

// Buffer keeps received records in arrival order. With a zero limit it grows without bound, which
// is only acceptable for demonstration and tests.
type Buffer struct {
	mutex   sync.Mutex
	records []model.Record
	limit   int
}

// New creates a buffer holding at most limit records; older records are evicted first. A limit of
// zero or less means unbounded.
func New(limit int) *Buffer {
	if limit < 0 {
		limit = 0
	}
	return &Buffer{limit: limit}
}

func (x *Buffer) Unbounded() bool { return x.limit == 0 }

func (x *Buffer) Append(record model.Record) {
	x.mutex.Lock()
	defer x.mutex.Unlock()

	x.records = append(x.records, record)
	if x.limit > 0 && len(x.records) > x.limit {
		x.records = append(x.records[:0:0], x.records[len(x.records)-x.limit:]...)
	}
}

// Records returns a copy of the buffered records.
func (x *Buffer) Records() []model.Record {
	x.mutex.Lock()
	defer x.mutex.Unlock()

	records := make([]model.Record, len(x.records))
	copy(records, x.records)
	return records
}

func (x *Buffer) Len() int {
	x.mutex.Lock()
	defer x.mutex.Unlock()
	return len(x.records)
}

func (x *Buffer) Clear() {
	x.mutex.Lock()
	defer x.mutex.Unlock()
	x.records = nil
}

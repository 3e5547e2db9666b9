package upload

import (
	"io"
	"sync/atomic"

	"github.com/google/uuid"
)

// Item tracks one file of a batch while the batch is in flight. It
// lives only for the duration of one UploadBatch call.
type Item struct {
	FileName string

	// PhotoID is set once the photo record is created. Safe to read
	// after the batch join.
	PhotoID uuid.UUID

	progress atomic.Int64
	failure  atomic.Value
}

// Progress reports the byte-level upload progress, 0-100.
func (i *Item) Progress() int {
	return int(i.progress.Load())
}

// setProgress only ever moves progress forward.
func (i *Item) setProgress(pct int) {
	for {
		cur := i.progress.Load()
		if int64(pct) <= cur {
			return
		}
		if i.progress.CompareAndSwap(cur, int64(pct)) {
			return
		}
	}
}

// Err returns the item's terminal failure, if any.
func (i *Item) Err() error {
	if v := i.failure.Load(); v != nil {
		return v.(error)
	}
	return nil
}

func (i *Item) fail(err error) {
	i.failure.Store(err)
}

// progressReader mirrors bytes read from the blob-write body into the
// item's progress field.
type progressReader struct {
	r     io.Reader
	total int64
	read  int64
	item  *Item
}

func (pr *progressReader) Read(p []byte) (int, error) {
	n, err := pr.r.Read(p)

	if n > 0 && pr.total > 0 {
		pr.read += int64(n)

		pct := int(pr.read * 100 / pr.total)
		if pct > 100 {
			pct = 100
		}
		pr.item.setProgress(pct)
	}

	return n, err
}

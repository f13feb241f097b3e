package block

import (
	"sync"
	"sync/atomic"
)

// parallelMinRecords is the smallest block decoded with more than one
// worker.
const parallelMinRecords = 8192

// decodeAll decodes the whole records in data. Records keep their file
// order regardless of the worker count.
func decodeAll[T any](data []byte, layout Layout[T], workers int) ([]T, error) {
	count := len(data) / layout.RecordSize
	if count == 0 {
		return nil, nil
	}
	out := make([]T, count)
	if workers < 2 {
		return out, decodeSerial(out, data, layout)
	}
	return out, decodeParallel(out, data, layout, workers)
}

func decodeSerial[T any](out []T, data []byte, layout Layout[T]) error {
	for i := range out {
		if err := decodeOne(out, data, layout, i); err != nil {
			return err
		}
	}
	return nil
}

// decodeParallel strides records across workers. The first error stops all
// workers.
func decodeParallel[T any](out []T, data []byte, layout Layout[T], workers int) error {
	var stop atomic.Bool
	errCh := make(chan error, 1)
	var wg sync.WaitGroup

	for w := range workers {
		wg.Add(1)
		go func(start int) {
			defer wg.Done()
			for i := start; i < len(out); i += workers {
				if stop.Load() {
					return
				}
				if err := decodeOne(out, data, layout, i); err != nil {
					if stop.CompareAndSwap(false, true) {
						errCh <- err
					}
					return
				}
			}
		}(w)
	}
	wg.Wait()

	select {
	case err := <-errCh:
		return err
	default:
		return nil
	}
}

func decodeOne[T any](out []T, data []byte, layout Layout[T], i int) error {
	off := i * layout.RecordSize
	rec, err := layout.Decode(data[off : off+layout.RecordSize])
	if err != nil {
		return withOffset(err, int64(off))
	}
	if layout.SetOrdinal != nil {
		layout.SetOrdinal(&rec, int32(i))
	}
	out[i] = rec
	return nil
}

package shishua

import (
	"runtime"
	"sync"
)

// FillParallel fills dst using several independent generators at once.
//
// dst is split into workers contiguous segments whose boundaries fall on
// BlockSize multiples and whose block counts differ by at most one. Segment i
// is filled from New(seed.Stream(i)). The result depends only on seed,
// len(dst) and the worker count, but it is NOT the sequential stream of
// New(seed). A workers value <= 0 uses
// runtime.NumCPU(), which makes the output machine dependent.
func FillParallel(seed Seed, dst []byte, workers int) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	blocks := (len(dst) + BlockSize - 1) / BlockSize
	if blocks == 0 {
		return
	}
	if workers > blocks {
		workers = blocks
	}

	// the first blocks%workers segments take one extra block
	perWorker, extra := blocks/workers, blocks%workers

	var wg sync.WaitGroup
	end := 0
	for w := 0; w < workers; w++ {
		start := end
		n := perWorker
		if w < extra {
			n++
		}
		end = start + n*BlockSize
		if end > len(dst) {
			end = len(dst)
		}

		wg.Add(1)
		go func(workerID int, segment []byte) {
			defer wg.Done()
			New(seed.Stream(uint64(workerID))).Fill(segment)
		}(w, dst[start:end])
	}

	wg.Wait()
}

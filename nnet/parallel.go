package nnet

import (
	"runtime"
	"sync"
)

// chunkSpans splits [0, n) into half-open [start, end) spans of roughly taskSize
// values each. taskSize <= 0 picks one span per CPU.
func chunkSpans(n, taskSize int) [][2]int {
	if taskSize <= 0 {
		taskSize = (n + runtime.NumCPU() - 1) / runtime.NumCPU()
	}
	if taskSize < 1 {
		taskSize = 1
	}

	var spans [][2]int
	for start := 0; start < n; start += taskSize {
		end := start + taskSize
		if end > n {
			end = n
		}
		spans = append(spans, [2]int{start, end})
	}

	return spans
}

// runChunks runs f once per span, each in its own goroutine, and waits for all of them.
// f is given the span's index alongside its bounds so that callers can write to
// per-span buffers without locking. The first error encountered (in span order) is
// returned.
func runChunks(spans [][2]int, f func(i, start, end int) error) error {
	var wg sync.WaitGroup
	errs := make([]error, len(spans))

	for i, s := range spans {
		wg.Add(1)
		go func(i, start, end int) {
			defer wg.Done()
			errs[i] = f(i, start, end)
		}(i, s[0], s[1])
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}

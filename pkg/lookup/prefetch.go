package lookup

import (
	"context"
	"sync"
)

// Prefetch resolves a batch of distinct base forms concurrently with a
// fixed number of workers and returns word → meaning blob. Lookup never
// fails, so every requested word gets an entry. The per-word work is the
// only asynchronous part of the application; callers wait for the whole
// batch.
func (g *Gateway) Prefetch(ctx context.Context, words []string, workers int) map[string]string {
	if workers <= 0 {
		workers = 4
	}

	// Dedupe while preserving nothing about order; the result is a map.
	unique := make(map[string]struct{}, len(words))
	for _, w := range words {
		unique[w] = struct{}{}
	}

	jobs := make(chan string, len(unique))
	for w := range unique {
		jobs <- w
	}
	close(jobs)

	var (
		mu  sync.Mutex
		out = make(map[string]string, len(unique))
		wg  sync.WaitGroup
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for w := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
				}
				meaning := g.Lookup(ctx, w)
				mu.Lock()
				out[w] = meaning
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	return out
}

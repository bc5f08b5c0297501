package analysis

import (
	"context"
	"sync"

	"github.com/san-kum/tesseract/internal/config"
	"github.com/san-kum/tesseract/internal/hypercube"
)

// TraceAll traces every vertex concurrently, each on its own headless loop.
// Results are indexed by vertex.
func TraceAll(ctx context.Context, cfg config.Config, n int) ([]TraceResult, error) {
	results := make([]TraceResult, hypercube.VertexCount)
	errs := make([]error, hypercube.VertexCount)

	var wg sync.WaitGroup
	for i := 0; i < hypercube.VertexCount; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx], errs[idx] = Trace(ctx, cfg, idx, n)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}

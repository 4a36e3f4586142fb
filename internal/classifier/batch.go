package classifier

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ClassifyTitles classifies each distinct title once, using up to workers
// goroutines. workers <= 0 uses GOMAXPROCS.
func (c *Classifier) ClassifyTitles(ctx context.Context, titles []string, workers int) (map[string]Result, error) {
	unique := make([]string, 0, len(titles))
	index := make(map[string]struct{}, len(titles))
	for _, t := range titles {
		if _, ok := index[t]; ok {
			continue
		}
		index[t] = struct{}{}
		unique = append(unique, t)
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(unique))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, title := range unique {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			cat, stage := c.Classify(title)
			results[i] = Result{Category: cat, Stage: stage}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make(map[string]Result, len(unique))
	for i, t := range unique {
		out[t] = results[i]
	}
	return out, nil
}

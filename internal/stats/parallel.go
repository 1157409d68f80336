package stats

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"battista/internal/core"
)

// AggregateParallel is Aggregate with the accumulation pass sharded across
// workers. Bucket updates are commutative sums, so the partial builders can
// be merged in any order before the single finalize pass; the output is
// identical to the sequential build. Worth it only for large inputs.
func AggregateParallel(ctx context.Context, transactions []core.Transaction, today core.Date, windows []int, shards int) (*Collection, error) {
	if shards <= 0 {
		shards = runtime.GOMAXPROCS(0)
	}
	if shards > len(transactions) {
		shards = len(transactions)
	}
	if shards <= 1 {
		return Aggregate(transactions, today, windows)
	}

	partials := make([]*builder, 0, shards)
	chunk := (len(transactions) + shards - 1) / shards

	g, ctx := errgroup.WithContext(ctx)
	for lo := 0; lo < len(transactions); lo += chunk {
		hi := lo + chunk
		if hi > len(transactions) {
			hi = len(transactions)
		}
		b := newBuilder(today, windows)
		partials = append(partials, b)
		slice := transactions[lo:hi]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for _, t := range slice {
				b.fold(t)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := partials[0]
	for _, b := range partials[1:] {
		merged.merge(b)
	}
	return merged.finalize()
}

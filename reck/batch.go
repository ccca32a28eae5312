// SPDX-License-Identifier: MIT

package reck

import (
	"context"
	"fmt"
	"runtime"

	"github.com/katalvlaran/qoptics/cmatrix"
	"golang.org/x/sync/errgroup"
)

// DecomposeBatch decomposes independent unitaries concurrently, at most
// GOMAXPROCS at a time. Results keep the order of inputs.
//
// The first failure cancels the rest; its error is returned prefixed with the
// input index. A cancelled ctx stops work that has not started yet.
func DecomposeBatch(ctx context.Context, inputs []*cmatrix.Dense, modes int, opts ...Option) ([]*Decomposition, error) {
	out := make([]*Decomposition, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, m := range inputs {
		i, m := i, m
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			d, err := Decompose(m, modes, opts...)
			if err != nil {
				return fmt.Errorf("DecomposeBatch[%d]: %w", i, err)
			}
			out[i] = d

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

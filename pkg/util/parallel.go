// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package util

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ParJob represents a unit of work which can be executed independently of
// other jobs.
type ParJob interface {
	// Run this job, returning early if the context is cancelled.
	Run(ctx context.Context) error
}

// ParExec executes a set of independent jobs in parallel using at most limit
// go-routines (where a non-positive limit means no limit).  The first error
// encountered cancels the remaining jobs, and is returned.
func ParExec[J ParJob](ctx context.Context, limit int, worklist []J) error {
	group, ctx := errgroup.WithContext(ctx)
	//
	if limit > 0 {
		group.SetLimit(limit)
	}
	//
	for _, job := range worklist {
		group.Go(func() error {
			// Skip jobs once cancelled
			if err := ctx.Err(); err != nil {
				return err
			}
			//
			return job.Run(ctx)
		})
	}
	//
	return group.Wait()
}

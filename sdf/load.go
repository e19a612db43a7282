/*
 * load.go, part of gomol.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package sdf

import (
	"context"
	"fmt"
	"time"

	chem "github.com/rmera/gomol"
	"github.com/rmera/gomol/mdl"
	"golang.org/x/sync/errgroup"
)

//Result is the outcome of reading one record.
type Result struct {
	Index    int            //position of the record in the file, from 0
	Molecule *chem.Molecule //nil if Err is not nil
	Err      error
}

//Load reads all the remaining records of it with r, using several goroutines.
//The results are returned in file order. A record that can't be read
//doesn't stop the others: its error is logged and stored in its Result.
//Load fails only if ctx is canceled or the records can't be read from the file.
//r's hooks are called from several goroutines at the same time.
func Load(ctx context.Context, it *Iterator, r *mdl.V2000Reader, o *Options) ([]Result, error) {
	if o == nil {
		o = DefaultOptions()
	}
	workers := o.Workers()
	if workers < 1 {
		workers = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	//each goroutine writes only to its own Result.
	var pending []*Result
	for gctx.Err() == nil && it.Next() {
		res := &Result{Index: it.Index()}
		lines := it.Record()
		pending = append(pending, res)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			m, err := r.Parse(lines, o.SkipCtab(), o.SkipProps(), o.SkipTags())
			o.Metrics().observe(m, err, time.Since(start))
			res.Molecule, res.Err = m, err
			if err != nil && o.Logger() != nil {
				o.Logger().Printf("sdf: record %d: %v", res.Index, err)
			}
			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err == nil {
		err = it.Err()
	}
	if err != nil {
		return nil, fmt.Errorf("sdf: Load: %w", err)
	}
	ret := make([]Result, len(pending))
	for i, v := range pending {
		ret[i] = *v
	}
	return ret, nil
}

/*
 * metrics.go, part of gomol.
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
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	chem "github.com/rmera/gomol"
)

const (
	outcomeOK     = "ok"
	outcomeFailed = "failed"
)

//Metrics collects Prometheus metrics for the records read by Load.
type Metrics struct {
	records *prometheus.CounterVec
	atoms   prometheus.Histogram
	seconds prometheus.Histogram
}

//NewMetrics creates the metrics and registers them in reg.
//Like promauto, it panics if they are already registered there.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		records: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gomol_sdf_records_total",
			Help: "SD file records read, by outcome (ok or failed).",
		}, []string{"outcome"}),
		atoms: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "gomol_sdf_atoms_per_record",
			Help:    "Number of atoms in the records read successfully.",
			Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500},
		}),
		seconds: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "gomol_sdf_parse_seconds",
			Help:    "Time spent parsing one record.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
	}
}

//observe records the outcome of one parse. It does nothing on a nil receiver.
func (M *Metrics) observe(m *chem.Molecule, err error, d time.Duration) {
	if M == nil {
		return
	}
	M.seconds.Observe(d.Seconds())
	if err != nil {
		M.records.WithLabelValues(outcomeFailed).Inc()
		return
	}
	M.records.WithLabelValues(outcomeOK).Inc()
	M.atoms.Observe(float64(m.NumAtoms()))
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package models

import (
	"fmt"
	"math"
)

// MachineFailure infers whether a production line is in its failure
// mode from counts of defective items. The line is in one of two
// states, nominal or failed, each with its own defect rate, and is
// failed a priori with probability PFail.
//
// The zero counts are the state before any data is seen. Data
// accumulates with Update; updating in several batches gives exactly
// the same answer as updating once with the totals.
type MachineFailure struct {
	// NominalRate and FailedRate are the probabilities that an
	// item is defective in the nominal and failed states.
	NominalRate, FailedRate float64

	// PFail is the prior probability of the failed state.
	PFail float64

	// Items and Defects are the total counts seen so far.
	Items, Defects int
}

// NewMachineFailure returns a MachineFailure with no data.
func NewMachineFailure(nominalRate, failedRate, pFail float64) *MachineFailure {
	return &MachineFailure{NominalRate: nominalRate, FailedRate: failedRate, PFail: pFail}
}

// Update adds a batch of n items, nf of which were defective.
func (m *MachineFailure) Update(n, nf int) {
	m.Items += n
	m.Defects += nf
}

// Likelihoods returns the likelihoods of the data in the nominal and
// failed states.
func (m *MachineFailure) Likelihoods() (nominal, failed float64) {
	nf, ok := float64(m.Defects), float64(m.Items-m.Defects)
	nominal = math.Pow(m.NominalRate, nf) * math.Pow(1-m.NominalRate, ok)
	failed = math.Pow(m.FailedRate, nf) * math.Pow(1-m.FailedRate, ok)
	return
}

// LogLikelihoods returns the log likelihoods of the data in the
// nominal and failed states.
func (m *MachineFailure) LogLikelihoods() (nominal, failed float64) {
	nf, ok := float64(m.Defects), float64(m.Items-m.Defects)
	nominal = xlogy(nf, m.NominalRate) + xlogy(ok, 1-m.NominalRate)
	failed = xlogy(nf, m.FailedRate) + xlogy(ok, 1-m.FailedRate)
	return
}

// PostFailed returns the posterior probability that the line has
// failed.
func (m *MachineFailure) PostFailed() float64 {
	lNom, lFail := m.Likelihoods()
	return m.PFail * lFail / (m.PFail*lFail + (1-m.PFail)*lNom)
}

// PostFailedLog is PostFailed computed from the log likelihoods,
// factoring out the failed-state likelihood. It remains accurate when
// the counts are too large for the likelihoods themselves.
func (m *MachineFailure) PostFailedLog() float64 {
	llNom, llFail := m.LogLikelihoods()
	return m.PFail / (m.PFail + (1-m.PFail)*math.Exp(llNom-llFail))
}

func (m *MachineFailure) String() string {
	return fmt.Sprintf("machine failure: P(failed)=%.3f, defect rates (nominal, failed)=(%.3f, %.3f), data (items, defects)=(%d, %d)",
		m.PFail, m.NominalRate, m.FailedRate, m.Items, m.Defects)
}

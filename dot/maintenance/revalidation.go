// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package maintenance

import (
	"sync"
	"time"
)

type revalidationPhase uint8

const (
	phaseNotScheduled revalidationPhase = iota
	phaseScheduled
	phaseInProgress
)

// revalidationStatus schedules periodic revalidation rounds of the ready
// queue. The zero value is ready to use. The lock is only held for the
// scheduling decision itself, never across queue calls.
type revalidationStatus struct {
	mu        sync.Mutex
	phase     revalidationPhase
	nextAt    *time.Time
	nextBlock *uint64
}

// isRequired reports whether a revalidation round is due at the given block.
// The first call after a clear only arms the schedule and returns false. A
// scheduled round fires exactly once, when the time target or the block
// target is reached; the status then stays in progress until clear is
// called. With both periods nil the schedule is armed without any target and
// never fires.
func (s *revalidationStatus) isRequired(block uint64,
	timePeriod *time.Duration, blockPeriod *uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.phase {
	case phaseNotScheduled:
		if timePeriod != nil {
			at := time.Now().Add(*timePeriod)
			s.nextAt = &at
		}
		if blockPeriod != nil {
			next := block + *blockPeriod
			s.nextBlock = &next
		}
		s.phase = phaseScheduled
		return false
	case phaseScheduled:
		due := (s.nextAt != nil && !time.Now().Before(*s.nextAt)) ||
			(s.nextBlock != nil && block >= *s.nextBlock)
		if due {
			s.phase = phaseInProgress
		}
		return due
	default:
		return false
	}
}

// clear resets the status so the next isRequired call arms a fresh schedule
func (s *revalidationStatus) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.phase = phaseNotScheduled
	s.nextAt = nil
	s.nextBlock = nil
}

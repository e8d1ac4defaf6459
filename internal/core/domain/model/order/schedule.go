package order

import "time"

// CutoffHour is the anchor-local hour at or after which an order placed on a
// weekday incurs one extra calendar day: the clock effectively starts the
// next day when the order arrives after business close.
const CutoffHour = 16

// EstimateDelivery computes the expected delivery timestamp for a stage,
// anchored at the given time. It is a pure function of its inputs and the
// fixed business calendar (Saturday and Sunday are non-business days, no
// holiday calendar).
//
// Calendar days are added one at a time; only weekdays count against the
// stage's lead time, so weekend days are skipped without consuming the
// offset. The result keeps the anchor's time of day. If the anchor itself is
// a weekday at or after CutoffHour, one extra calendar day is added; that
// push intentionally may land the result on a weekend, matching the historic
// behavior of the scheduling rules.
//
// A terminal stage returns the anchor unchanged: the estimate is no longer
// extended once the order is delivered.
func EstimateDelivery(anchor time.Time, stage Status) time.Time {
	if stage.IsTerminal() {
		return anchor
	}

	candidate := anchor
	for remaining := stage.LeadDays(); remaining > 0; {
		candidate = candidate.AddDate(0, 0, 1)
		if !isWeekend(candidate) {
			remaining--
		}
	}

	// The cut-off check uses the original anchor, not the candidate.
	if !isWeekend(anchor) && anchor.Hour() >= CutoffHour {
		candidate = candidate.AddDate(0, 0, 1)
	}

	return candidate
}

func isWeekend(t time.Time) bool {
	return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
}

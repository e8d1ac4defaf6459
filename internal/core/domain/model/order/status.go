package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. The pipeline is strictly
// linear with no skipping and no backward transitions:
//
//	Created ──> Delivery ──> Delivered (terminal)
//
// The pipeline is held as an explicit ordered list so adding or removing a
// stage is a one-place change and out-of-range advancement is impossible by
// construction.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status assigned at order creation.
	Created

	// Delivery indicates the order is on its way to the customer.
	Delivery

	// Delivered indicates the order has reached the customer.
	// This is the terminal state with no further transitions.
	Delivered
)

// statusPipeline is the single source of truth for ordering and transitions.
var statusPipeline = []Status{Created, Delivery, Delivered}

// stageLeadDays maps each stage to its business-day delivery offset.
var stageLeadDays = map[Status]int{
	Created:   2,
	Delivery:  1,
	Delivered: 0,
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Created:   "Created",
		Delivery:  "Delivery",
		Delivered: "Delivered",
	}
}

// Validate checks that the Status is one of the pipeline stages.
// Unknown and any other values are invalid.
func (s Status) Validate() error {
	for _, stage := range statusPipeline {
		if s == stage {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status is the last pipeline stage.
func (s Status) IsTerminal() bool {
	return s == statusPipeline[len(statusPipeline)-1]
}

// Next returns the status one step further along the pipeline and true, or
// the status itself and false when it is already terminal. Calling Next on an
// invalid status returns Unknown and false.
func (s Status) Next() (Status, bool) {
	for i, stage := range statusPipeline {
		if s != stage {
			continue
		}
		if i == len(statusPipeline)-1 {
			return s, false
		}
		return statusPipeline[i+1], true
	}
	return Unknown, false
}

// LeadDays returns the number of business days a delivery estimate extends
// past its anchor for this stage.
func (s Status) LeadDays() int {
	return stageLeadDays[s]
}

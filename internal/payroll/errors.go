package payroll

import "github.com/pkg/errors"

// Sentinel errors for the calculation core. All of these are expected,
// caller-recoverable conditions; compare with errors.Is.
var (
	// ErrNoJobAssignment means the employee has no assignment for the job,
	// so neither attendance nor payroll may proceed for that pairing.
	ErrNoJobAssignment = errors.New("no job assignment for employee")

	// ErrShiftIncomplete means the attendance log has no clock-out yet.
	ErrShiftIncomplete = errors.New("shift attendance incomplete")

	// ErrInvalidAttendanceWindow means clock-out precedes clock-in.
	ErrInvalidAttendanceWindow = errors.New("invalid attendance window")

	// ErrAlreadyClockedOut means the shift already has a closed log.
	ErrAlreadyClockedOut = errors.New("shift already clocked out")

	// ErrNothingToApprove means the period has no payroll items.
	ErrNothingToApprove = errors.New("nothing to approve")

	// ErrPeriodLocked means the period is COMPLETED and will not recompute.
	ErrPeriodLocked = errors.New("payroll period locked")
)

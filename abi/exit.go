package abi

import "fmt"

// ExitReason describes why execution stopped. Most reasons name an exception;
// ExitApplication reports a normal exit with an exit code.
type ExitReason uintptr

const (
	ExitBranchThroughZero   ExitReason = 0x00
	ExitUndefinedInstr      ExitReason = 0x01
	ExitSoftwareInterrupt   ExitReason = 0x02
	ExitPrefetchAbort       ExitReason = 0x03
	ExitDataAbort           ExitReason = 0x04
	ExitAddressException    ExitReason = 0x05
	ExitIRQ                 ExitReason = 0x06
	ExitFIQ                 ExitReason = 0x07
	ExitBreakPoint          ExitReason = 0x20
	ExitWatchPoint          ExitReason = 0x21
	ExitStepComplete        ExitReason = 0x22
	ExitRunTimeErrorUnknown ExitReason = 0x23
	ExitInternalError       ExitReason = 0x24
	ExitUserInterruption    ExitReason = 0x25
	ExitApplication         ExitReason = 0x26
	ExitStackOverflow       ExitReason = 0x27
	ExitDivisionByZero      ExitReason = 0x28
	ExitOSSpecific          ExitReason = 0x29
)

// StoppedMarker is merged into every exit reason before it is sent to the host.
const StoppedMarker = 0x20000

var exitNames = map[ExitReason]string{
	ExitBranchThroughZero:   "branch-through-zero",
	ExitUndefinedInstr:      "undefined-instruction",
	ExitSoftwareInterrupt:   "software-interrupt",
	ExitPrefetchAbort:       "prefetch-abort",
	ExitDataAbort:           "data-abort",
	ExitAddressException:    "address-exception",
	ExitIRQ:                 "irq",
	ExitFIQ:                 "fiq",
	ExitBreakPoint:          "breakpoint",
	ExitWatchPoint:          "watchpoint",
	ExitStepComplete:        "step-complete",
	ExitRunTimeErrorUnknown: "runtime-error",
	ExitInternalError:       "internal-error",
	ExitUserInterruption:    "user-interruption",
	ExitApplication:         "application-exit",
	ExitStackOverflow:       "stack-overflow",
	ExitDivisionByZero:      "division-by-zero",
	ExitOSSpecific:          "os-specific",
}

// Code returns the value sent to the host for r.
func (r ExitReason) Code() uintptr {
	return StoppedMarker | uintptr(r)
}

func (r ExitReason) String() string {
	if n, ok := exitNames[r]; ok {
		return n
	}
	return fmt.Sprintf("ExitReason(0x%x)", uintptr(r))
}

// ParseExitReason parses the name returned by ExitReason.String.
func ParseExitReason(s string) (ExitReason, error) {
	for r, n := range exitNames {
		if n == s {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown exit reason '%v'", s)
}

package semihost

import "github.com/pgavlin/semihost/abi"

// Exit reports to the host that execution has stopped for reason, with code as
// the exit status, and does not return. A host that resumes execution anyway
// causes a panic with FaultResumed.
func (c *Client) Exit(reason abi.ExitReason, code int) {
	c.logger.Debug("exiting", "reason", reason, "code", code)

	b := abi.ExitBlock{Reason: reason.Code(), Code: uintptr(code)}
	invoke(c, &b)

	panic(FaultResumed)
}

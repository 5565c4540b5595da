package ports

import "context"

// Trigger drives scan cycles. Run blocks until ctx is done, invoking
// cycle whenever the implementation decides a scan is due. Callers are
// responsible for single-flight; triggers may fire while a previous
// cycle is still running.
type Trigger interface {
	Run(ctx context.Context, cycle func(context.Context)) error
}

// Package order implements the Order aggregate: a customer's lines, their total and
// the Draft -> Placed -> Paid lifecycle (with Cancelled as an alternate end).
//
// Orders are immutable snapshots. New and Restore are the only ways to obtain one,
// AddLine / Place / MarkPaid / Cancel return a new snapshot, and each of those
// snapshots is re-validated against the Record schema before it is returned.
// Expected rule violations are reported as errs.BusinessRuleViolationError.
package order

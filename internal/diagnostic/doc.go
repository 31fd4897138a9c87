// Package diagnostic collects non-fatal findings from the mend passes.
//
// The passes are deliberately lenient: a record that fails to match the
// expected convention is skipped, a missing ancestor truncates traversal,
// a cycle stops it. None of that aborts a run, so success counts alone
// cannot distinguish "nothing needed fixing" from "something failed to
// match". Diagnostics carry that distinction to the caller.
package diagnostic

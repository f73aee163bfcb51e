package slices

import "go.ytsaurus.tech/library/go/core/xerrors"

// ErrNilPredicate is reported by operations that require a predicate when
// the given predicate is nil. The check runs before any element is
// inspected, so the slice is never partially mutated.
var ErrNilPredicate = xerrors.NewSentinel("slices: nil predicate")

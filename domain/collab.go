package domain

import "time"

// IDGenerator mints the random part of entity ids. Repositories add their
// entity prefix ("thread-", "comment-", ...). Injected so tests can supply
// deterministic values.
type IDGenerator func() string

// Clock supplies the current time. Injected for the same reason.
type Clock func() time.Time

package database

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"hash/fnv"
)

// Advisory-lock class for unit-alias learning. Keeps alias locks from
// colliding with any other advisory-lock user of the database.
const aliasLockClass = 0x4C44 // "LD"

// AliasLockKey hashes an alias to the 32-bit advisory-lock key space.
func AliasLockKey(alias string) int32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(alias))
	return int32(h.Sum32())
}

// WithAliasLock acquires pg_advisory_lock(aliasLockClass, key) on a single
// dedicated connection, runs fn on that connection, and releases the lock.
//
// Advisory locks are session-scoped: acquire and release must happen on the
// same connection, and the deferred unlock guarantees release on every exit
// path. If the connection dies the server drops the lock with the session.
func (c *Client) WithAliasLock(ctx context.Context, alias string, fn func(conn *stdsql.Conn) error) error {
	conn, err := c.app.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection for alias lock: %w", err)
	}
	defer func() { _ = conn.Close() }()

	key := AliasLockKey(alias)
	if _, err := conn.ExecContext(ctx,
		`SELECT pg_advisory_lock($1, $2)`, aliasLockClass, key); err != nil {
		return fmt.Errorf("acquire alias lock %q: %w", alias, err)
	}
	defer func() {
		_, _ = conn.ExecContext(context.WithoutCancel(ctx),
			`SELECT pg_advisory_unlock($1, $2)`, aliasLockClass, key)
	}()

	return fn(conn)
}

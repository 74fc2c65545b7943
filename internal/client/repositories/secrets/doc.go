// Package secrets implements the local secret store that keeps the session
// credentials (access token, refresh token) and the cached user profile.
//
// Three implementations of Store are provided:
//
//   - SQLiteStore: persistent, one row per key in the "secrets" table.
//   - EncryptedStore: decorator that seals every value with AES-GCM under a
//     key derived from the device secret; reserved bookkeeping keys start
//     with "__" and are hidden from List.
//   - MemoryStore: process-local map, used by tests and ephemeral runs.
//
// Contract shared by all implementations: Get returns (nil, nil) for an absent
// key, Remove of an absent key is not an error, and Set overwrites.
package secrets

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginMethod tags how a session was authenticated. It decides both where the
// vault lives and which identifier the key material is derived from.
type LoginMethod string

const (
	// LoginMethodGoogle marks sessions backed by an external identity
	// provider. Their vault is stored remotely, one document per account.
	LoginMethodGoogle LoginMethod = "google"

	// LoginMethodManual marks sessions opened with a typed username. Their
	// vault never leaves the device.
	LoginMethodManual LoginMethod = "manual"
)

// Valid reports whether m is one of the known login methods.
func (m LoginMethod) Valid() bool {
	return m == LoginMethodGoogle || m == LoginMethodManual
}

// String implements [fmt.Stringer].
func (m LoginMethod) String() string {
	return string(m)
}

// VaultEntry is a plaintext credential. It exists only in memory and in
// explicit exports.
type VaultEntry struct {
	Site        string      `json:"site"`
	Username    string      `json:"username"`
	Password    string      `json:"password"`
	LoginMethod LoginMethod `json:"loginMethod"`
}

// IndexedEntry pairs an entry with its position in the vault list. Position is
// the only address an entry has.
type IndexedEntry struct {
	Index int
	Entry VaultEntry
}

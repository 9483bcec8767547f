package entity

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// workspaceIDLen is the number of hash bytes kept for a workspace ID.
const workspaceIDLen = 16

// WorkspaceIDFor derives the stable ID of a workspace from its config location.
// The same normalized location always yields the same ID.
func WorkspaceIDFor(configLocation Location) string {
	sum := blake2b.Sum256([]byte(configLocation.Normalize()))
	return hex.EncodeToString(sum[:workspaceIDLen])
}

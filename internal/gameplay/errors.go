// Package gameplay holds the frame-driven state machines behind the game's
// scripts: the guard's patrol/chase loop, the player's damage and respawn
// sequence, the book counter and player locomotion. Nothing here touches the
// scene graph; collaborators come in through small interfaces.
package gameplay

import "errors"

var (
	// ErrMissingDependency reports that a required collaborator was not supplied.
	ErrMissingDependency = errors.New("missing dependency")
	// ErrConfigurationMismatch reports inconsistent authored data, such as
	// parallel lists of different lengths.
	ErrConfigurationMismatch = errors.New("configuration mismatch")
)

// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: termprops/errors.go
// Summary: sentinel errors for Registry.Install/InstallAlias, grounded
// on termpropsregistry.cc's install()/install_alias() rejection paths
// (each g_warning + return -1 becomes one sentinel here).

package termprops

import "github.com/pkg/errors"

var (
	// ErrAlreadyInstalled is returned by Install when name is already
	// registered with a different Type or Flags.
	ErrAlreadyInstalled = errors.New("termprops: name already installed with different type or flags")
	// ErrNameReserved is returned by Install when name is not on the
	// well-known list and does not carry the caller-extension prefix.
	ErrNameReserved = errors.New("termprops: name is not well-known and lacks the extension prefix")
	// ErrTypeMismatch is returned by Install when name is well-known
	// but was installed with a different type or flags than the
	// well-known table specifies.
	ErrTypeMismatch = errors.New("termprops: well-known name installed with incorrect type or flags")
	// ErrBlocklisted is returned by Install/InstallAlias when name is
	// on the blocklist.
	ErrBlocklisted = errors.New("termprops: name is blocklisted")
	// ErrUnknownAlias is returned by InstallAlias when target is not
	// already registered.
	ErrUnknownAlias = errors.New("termprops: alias target is not registered")
	// ErrAliasWellKnown is returned by InstallAlias when name itself
	// is a well-known property name (aliases may not shadow one).
	ErrAliasWellKnown = errors.New("termprops: cannot install a well-known name as an alias")
	// ErrAliasExists is returned by InstallAlias when name is already
	// registered (as a property or another alias).
	ErrAliasExists = errors.New("termprops: alias name already registered")
	// ErrAliasTargetMismatch is returned by InstallAlias when name is
	// a well-known alias but target does not match its fixed target.
	ErrAliasTargetMismatch = errors.New("termprops: well-known alias installed with an incorrect target")
	// ErrUnknownProperty names the case of an id that does not name a
	// registered property. Registry.Parse does not return it: Parse
	// reports an unknown id as ok == false.
	ErrUnknownProperty = errors.New("termprops: unknown property id")
)

// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: termprops/wellknown.go
// Summary: the public OSC termprop namespace's well-known property
// table, grounded on original_source/src/termpropsregistry.cc's
// TermpropsRegistry constructor (install_many call).

package termprops

// Well-known OSC termprop ids, in the order termpropsregistry.cc
// installs them.
const (
	IDCurrentDirectoryURI = iota + 1
	IDCurrentFileURI
	IDXtermTitle
	IDContainerName
	IDContainerRuntime
	IDContainerUID
	IDShellPrecmd
	IDShellPreexec
	IDShellPostexec
	IDProgressHint
	IDProgressValue
	IDIconColor
	IDIconImage
)

// Well-known OSC termprop names, grounded on vteglobals.h's
// VTE_TERMPROP_* string macros (vte.cwd, vte.cwf, vte.title are
// literal there; the rest follow the same "vte.<area>.<attr>"
// convention termpropsregistry.cc's identifiers imply).
const (
	NameCurrentDirectoryURI = "vte.cwd"
	NameCurrentFileURI      = "vte.cwf"
	NameXtermTitle          = "vte.title"
	NameContainerName       = "vte.container.name"
	NameContainerRuntime    = "vte.container.runtime"
	NameContainerUID        = "vte.container.uid"
	NameShellPrecmd         = "vte.shell.precmd"
	NameShellPreexec        = "vte.shell.preexec"
	NameShellPostexec       = "vte.shell.postexec"
	NameProgressHint        = "vte.progress.hint"
	NameProgressValue       = "vte.progress.value"
	NameIconColor           = "vte.icon.color"
	NameIconImage           = "vte.icon.image"
)

// NewTermpropsRegistry constructs the public OSC termprop Registry,
// pre-installed with the well-known table above and requiring the
// "vte.ext." prefix for any caller-installed extension property.
func NewTermpropsRegistry(opts ...Option) *Registry {
	r := NewRegistry(ExtensionPrefix, opts...)

	r.addWellKnown(wellKnownEntry{IDCurrentDirectoryURI, NameCurrentDirectoryURI, URI, NoOSC, parseCWD})
	r.addWellKnown(wellKnownEntry{IDCurrentFileURI, NameCurrentFileURI, URI, NoOSC, nil})
	r.addWellKnown(wellKnownEntry{IDXtermTitle, NameXtermTitle, String, NoOSC, nil})
	r.addWellKnown(wellKnownEntry{IDContainerName, NameContainerName, String, None, nil})
	r.addWellKnown(wellKnownEntry{IDContainerRuntime, NameContainerRuntime, String, None, nil})
	r.addWellKnown(wellKnownEntry{IDContainerUID, NameContainerUID, Uint, None, nil})
	r.addWellKnown(wellKnownEntry{IDShellPrecmd, NameShellPrecmd, Valueless, None, nil})
	r.addWellKnown(wellKnownEntry{IDShellPreexec, NameShellPreexec, Valueless, None, nil})
	r.addWellKnown(wellKnownEntry{IDShellPostexec, NameShellPostexec, Uint, Ephemeral, nil})
	r.addWellKnown(wellKnownEntry{IDProgressHint, NameProgressHint, Int, None, rangedInt(0, 4)})
	r.addWellKnown(wellKnownEntry{IDProgressValue, NameProgressValue, Uint, None, rangedUint(0, 100)})
	r.addWellKnown(wellKnownEntry{IDIconColor, NameIconColor, RGB, None, nil})
	r.addWellKnown(wellKnownEntry{IDIconImage, NameIconImage, Image, None, nil})

	r.installWellKnownTable()
	return r
}

// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: termprops/registry.go
// Summary: Registry — the name/id/alias tables and install/lookup/
// parse operations, grounded on original_source/src/termpropsregistry.cc
// (TermpropsRegistry::install/install_alias) and the base
// vte::property::Registry it extends (properties.hh, not in the
// filtered source pack, so its install()/lookup() shape is inferred
// from how the derived class calls it).

package termprops

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/framegrace/vtparse/vtlog"
)

// ExtensionPrefix is the name prefix a caller-installed (non-well-
// known) property must carry (termpropsregistry.cc's
// VTE_TERMPROP_NAME_PREFIX).
const ExtensionPrefix = "vte.ext."

// wellKnownEntry is one row of a well-known name table: a fixed id,
// type, and flags a caller cannot override.
type wellKnownEntry struct {
	id    int
	name  string
	typ   Type
	flags Flags
	parse ParseFunc
}

// wellKnownAlias is one row of a well-known alias table: a fixed
// alias name resolving to a fixed target.
type wellKnownAlias struct {
	name   string
	target string
}

// Option configures a Registry at construction time.
type Option func(*Registry)

// WithLogger attaches a logger for diagnostic events (rejected
// install, unknown parse target).
func WithLogger(l vtlog.Logger) Option {
	return func(r *Registry) { r.log = l }
}

// Registry holds the installed properties, the id index, and the
// alias table for one property namespace (the public OSC termprop
// namespace, or the internal systemd context namespace).
type Registry struct {
	byName map[string]*PropertyInfo
	byID   map[int]*PropertyInfo
	alias  map[string]string
	nextID int

	wellKnown      []wellKnownEntry
	wellKnownAlias []wellKnownAlias
	blocklist      map[string]bool
	aliasBlocklist map[string]bool
	prefix         string

	log vtlog.Logger
}

// NewRegistry constructs an empty Registry requiring prefix on any
// caller-installed (non-well-known) name. Pass "" to accept any
// prefix (used by the internal systemd registry, which has no
// caller-extension concept).
func NewRegistry(prefix string, opts ...Option) *Registry {
	r := &Registry{
		byName:         make(map[string]*PropertyInfo),
		byID:           make(map[int]*PropertyInfo),
		alias:          make(map[string]string),
		blocklist:      make(map[string]bool),
		aliasBlocklist: make(map[string]bool),
		prefix:         prefix,
		log:            vtlog.Nop(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Blocklist marks names as rejected by Install/InstallAlias.
func (r *Registry) Blocklist(names ...string) {
	for _, n := range names {
		r.blocklist[n] = true
	}
}

// BlocklistAlias marks alias names as rejected by InstallAlias.
func (r *Registry) BlocklistAlias(names ...string) {
	for _, n := range names {
		r.aliasBlocklist[n] = true
	}
}

// addWellKnown records a fixed-id, fixed-type/flags property the
// registry pre-installs and protects from conflicting re-installation.
func (r *Registry) addWellKnown(e wellKnownEntry) {
	r.wellKnown = append(r.wellKnown, e)
}

// addWellKnownAlias records a fixed alias the registry pre-installs.
func (r *Registry) addWellKnownAlias(a wellKnownAlias) {
	r.wellKnownAlias = append(r.wellKnownAlias, a)
}

func (r *Registry) lookupWellKnown(name string) (wellKnownEntry, bool) {
	for _, e := range r.wellKnown {
		if e.name == name {
			return e, true
		}
	}
	return wellKnownEntry{}, false
}

func (r *Registry) lookupWellKnownAlias(name string) (wellKnownAlias, bool) {
	for _, a := range r.wellKnownAlias {
		if a.name == name {
			return a, true
		}
	}
	return wellKnownAlias{}, false
}

// installWellKnownTable installs every row added via addWellKnown,
// and is called once by the constructors in wellknown.go/systemd.go
// after the table is fully populated.
func (r *Registry) installWellKnownTable() {
	for _, e := range r.wellKnown {
		id := e.id
		r.byName[e.name] = &PropertyInfo{ID: id, Name: e.name, Type: e.typ, Flags: e.flags, ParseFn: e.parse}
		r.byID[id] = r.byName[e.name]
		if id >= r.nextID {
			r.nextID = id + 1
		}
	}
	for _, a := range r.wellKnownAlias {
		r.alias[a.name] = a.target
	}
}

// Install registers name with the given type and flags, returning its
// stable id. Grounded on TermpropsRegistry::install: a well-known name
// must match its fixed type/flags; any other name must carry the
// registry's extension prefix; blocklisted names are always rejected;
// re-installing with identical type/flags is a no-op returning the
// existing id.
func (r *Registry) Install(name string, typ Type, flags Flags) (int, error) {
	if info, ok := r.byName[name]; ok {
		if info.Type != typ || info.Flags != flags {
			r.log.Warn("termprops: install rejected, already installed with different type or flags", vtlog.String("name", name))
			return -1, errors.WithMessage(ErrAlreadyInstalled, name)
		}
		return info.ID, nil
	}

	wk, wellKnown := r.lookupWellKnown(name)
	if wellKnown && (wk.typ != typ || wk.flags != flags) {
		r.log.Warn("termprops: install rejected, incorrect type or flags for well-known name", vtlog.String("name", name))
		return -1, errors.WithMessage(ErrTypeMismatch, name)
	}
	if !wellKnown && r.prefix != "" && !strings.HasPrefix(name, r.prefix) {
		r.log.Warn("termprops: install rejected, name lacks extension prefix", vtlog.String("name", name))
		return -1, errors.WithMessage(ErrNameReserved, name)
	}
	if r.blocklist[name] {
		r.log.Warn("termprops: install rejected, blocklisted name", vtlog.String("name", name))
		return -1, errors.WithMessage(ErrBlocklisted, name)
	}

	id := r.nextID
	r.nextID++
	r.byName[name] = &PropertyInfo{ID: id, Name: name, Type: typ, Flags: flags}
	r.byID[id] = r.byName[name]
	return id, nil
}

// InstallAlias registers name as an alias resolving to target's
// PropertyInfo. Grounded on TermpropsRegistry::install_alias.
func (r *Registry) InstallAlias(name, target string) (int, error) {
	if _, wellKnown := r.lookupWellKnownAlias(name); !wellKnown {
		if _, isWK := r.lookupWellKnown(name); isWK {
			r.log.Warn("termprops: alias rejected, name is itself well-known", vtlog.String("name", name))
			return -1, errors.WithMessage(ErrAliasWellKnown, name)
		}
	}
	if r.blocklist[name] || r.aliasBlocklist[name] {
		r.log.Warn("termprops: alias rejected, blocklisted name", vtlog.String("name", name))
		return -1, errors.WithMessage(ErrBlocklisted, name)
	}
	if _, exists := r.byName[name]; exists {
		r.log.Warn("termprops: alias rejected, name already registered", vtlog.String("name", name))
		return -1, errors.WithMessage(ErrAliasExists, name)
	}
	if _, exists := r.alias[name]; exists {
		r.log.Warn("termprops: alias rejected, name already registered", vtlog.String("name", name))
		return -1, errors.WithMessage(ErrAliasExists, name)
	}

	if wk, wellKnown := r.lookupWellKnownAlias(name); wellKnown && wk.target != target {
		r.log.Warn("termprops: alias rejected, incorrect target for well-known alias", vtlog.String("name", name), vtlog.String("target", target))
		return -1, errors.WithMessage(ErrAliasTargetMismatch, name)
	}
	if r.prefix != "" {
		if _, wellKnown := r.lookupWellKnownAlias(name); !wellKnown && !strings.HasPrefix(name, r.prefix) {
			r.log.Warn("termprops: alias rejected, name lacks extension prefix", vtlog.String("name", name))
			return -1, errors.WithMessage(ErrNameReserved, name)
		}
	}

	info, ok := r.byName[target]
	if !ok {
		r.log.Warn("termprops: alias rejected, unknown target", vtlog.String("name", name), vtlog.String("target", target))
		return -1, errors.WithMessage(ErrUnknownAlias, target)
	}
	r.alias[name] = target
	return info.ID, nil
}

// resolve follows at most one alias hop (the registry never chains
// aliases, matching install_alias's target-must-already-exist rule).
func (r *Registry) resolve(name string) string {
	if target, ok := r.alias[name]; ok {
		return target
	}
	return name
}

// Lookup returns the PropertyInfo for name, following an alias if
// name is one.
func (r *Registry) Lookup(name string) (*PropertyInfo, bool) {
	info, ok := r.byName[r.resolve(name)]
	return info, ok
}

// LookupByID returns the PropertyInfo registered under id.
func (r *Registry) LookupByID(id int) (*PropertyInfo, bool) {
	info, ok := r.byID[id]
	return info, ok
}

// Parse resolves id's PropertyInfo and converts text into its typed
// Value. A parse failure, or an unknown id, yields ok == false — the
// caller treats the property as cleared (spec.md §4.3 "Failure
// semantics").
func (r *Registry) Parse(id int, text string) (Value, bool) {
	info, ok := r.byID[id]
	if !ok {
		r.log.Warn("termprops: parse requested for unknown id", vtlog.Int("id", id))
		return Value{}, false
	}
	if info.ParseFn != nil {
		return info.ParseFn(text)
	}
	return defaultParse(info.Type, text)
}

func defaultParse(typ Type, text string) (Value, bool) {
	switch typ {
	case Valueless:
		return valuelessValue(), true
	case String:
		return parseString(text)
	case Int:
		return parseInt(text, nil)
	case Uint:
		return parseUint(text, nil)
	case RGB:
		return parseRGB(text)
	case URI:
		return parseURI(text)
	case UUID:
		return parseUUID(text)
	case Image:
		return parseImage(text)
	}
	return Value{}, false
}

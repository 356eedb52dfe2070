// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: termprops/parse_uri.go
// Summary: URI parsing via net/url, grounded on spec.md §4.3 ("parsed
// and re-serialised via a URI library; CWD-style parsing additionally
// promotes a bare path to file://…") and on
// original_source/src/systemdpropsregistry.cc's impl::parse_cwd,
// which does exactly this promotion for the systemd "current
// directory" property. No third-party URI/URL library appears
// anywhere in the example corpus (see SPEC_FULL.md §5), so this is
// the one stdlib-only parser in the package.

package termprops

import "net/url"

// parseURI parses text as an absolute URI.
func parseURI(text string) (Value, bool) {
	u, err := url.Parse(text)
	if err != nil || !u.IsAbs() {
		return Value{}, false
	}
	return uriValue(u), true
}

// parseCWD is parse_cwd's Go counterpart: a bare absolute path is
// promoted to a file:// URI; anything already parseable as an
// absolute URI with scheme "file" is used as-is; any other scheme is
// rejected, since a working directory can only ever be a local path.
func parseCWD(text string) (Value, bool) {
	if u, err := url.Parse(text); err == nil && u.IsAbs() {
		if u.Scheme != "file" {
			return Value{}, false
		}
		return uriValue(u), true
	}
	return uriValue(&url.URL{Scheme: "file", Path: text}), true
}

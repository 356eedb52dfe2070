// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: termprops/parse_uuid.go
// Summary: UUID parsing via google/uuid, grounded on spec.md §4.3
// ("parsed as dashed hex") and SPEC_FULL.md §5's google/uuid wiring.

package termprops

import "github.com/google/uuid"

func parseUUID(text string) (Value, bool) {
	id, err := uuid.Parse(text)
	if err != nil {
		return Value{}, false
	}
	return uuidValue(id), true
}

// Lunchmap - Team Restaurant Sharing and Geographic Rating
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lunchmap

package models

import "github.com/goccy/go-json"

// UnmarshalJSON accepts both the current {"name":..,"code":..} object form
// and the legacy bare-string form departments were stored as before join
// codes existed. Legacy entries come back with an empty Code; the store's
// migration fills them in on the next Load.
func (d *Department) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		d.Name = s
		d.Code = ""
		return nil
	}

	type department Department // drop methods to avoid recursion
	var obj department
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*d = Department(obj)
	return nil
}

// Copyright (C) 2025 Hailstone Labs (dev@hailstonelabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package ui embeds the static web page served at /ui.
//
// Embedding keeps the service a single binary; there is no on-disk asset
// directory to mount at deploy time.
package ui

import (
	"embed"
	"io/fs"
)

//go:embed static
var staticFiles embed.FS

// FS returns the embedded asset tree rooted at the static directory, so
// index.html is served at the mount root.
func FS() (fs.FS, error) {
	return fs.Sub(staticFiles, "static")
}

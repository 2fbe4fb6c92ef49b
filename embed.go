// Package clovable exposes assets embedded at the repository root.
package clovable

import "embed"

// Migrations contains the goose SQL migrations used to provision the schema.
//
//go:embed migrations/*.sql
var Migrations embed.FS

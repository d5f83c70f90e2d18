// Package data holds the static vehicle dataset shipped inside the binary.
package data

import _ "embed"

//go:embed vehicles.json
var Vehicles []byte

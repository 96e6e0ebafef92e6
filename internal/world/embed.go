package world

import _ "embed"

//go:embed gladewood.yaml
var defaultDocument []byte

// DefaultDocument returns the built-in Gladewood world document, used when
// no world file is configured.
func DefaultDocument() []byte {
	return defaultDocument
}

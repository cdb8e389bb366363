package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 6
)

// GenerateID produces the short alphanumeric identifiers used as primary
// keys for locally created rows.
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, idLength)
}

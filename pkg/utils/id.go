package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID returns a short random ID safe for file names
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}

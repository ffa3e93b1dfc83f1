package utils

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

func GenerateID() string {
	id, err := gonanoid.Generate(idAlphabet, 7)
	if err != nil {
		return ""
	}
	return id
}

// GenerateJobCode returns the short human-facing code printed on job sheets.
func GenerateJobCode() string {
	id, err := gonanoid.Generate("0123456789ABCDEFGHJKMNPQRSTVWXYZ", 7)
	if err != nil {
		return ""
	}
	return "PSW-" + id
}

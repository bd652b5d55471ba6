package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	runIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	runIDLength   = 10
)

// NewRunID identifica uma execução de importação nos logs e no resultado
func NewRunID() (string, error) {
	return gonanoid.Generate(runIDAlphabet, runIDLength)
}

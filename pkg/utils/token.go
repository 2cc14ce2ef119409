package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateTelegramToken gera o token de registro que vai no deep link
// t.me/<bot>?start=<token>_<locale>. O alfabeto não tem underscore; o
// sufixo de locale é separado por underscore.
func GenerateTelegramToken() (string, error) {
	return gonanoid.Generate(characters, 12)
}

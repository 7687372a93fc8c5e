package domain

import (
	"strings"
	"unicode/utf8"
)

type TeamMember struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

const avatarLength = 2

// DeriveAvatar строит аватар из первых букв слов имени, не более двух символов
func DeriveAvatar(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(r)
	}

	initials := []rune(strings.ToUpper(b.String()))
	if len(initials) > avatarLength {
		initials = initials[:avatarLength]
	}
	return string(initials)
}

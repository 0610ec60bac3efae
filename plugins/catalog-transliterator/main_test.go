package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	settingsdomain "japa/internal/modules/settings/domain"
)

func TestLookup(t *testing.T) {
	t.Parallel()
	catalog := settingsdomain.DefaultCatalog()
	cases := []struct {
		text, language, want string
		ok                   bool
	}{
		{"Radha", "Hindi", "राधा", true},
		{"  om namah   shivaya ", "tamil", "ஓம் நம சிவாய", true},
		{"Radha Krishna", "Bengali", "রাধা কৃষ্ণ", true},
		{"Radha Govinda", "Hindi", "", false},
		{"Ram", "Klingon", "", false},
		{"Hello", "Hindi", "", false},
	}
	for _, tc := range cases {
		got, ok := lookup(catalog, tc.text, tc.language)
		assert.Equal(t, tc.ok, ok, tc.text)
		assert.Equal(t, tc.want, got, tc.text)
	}
}

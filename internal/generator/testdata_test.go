package generator

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scaffoldhq/scaffold/internal/domain"
)

func TestTestDataDerivesValuesByType(t *testing.T) {
	data := NewTestDataGenerator().Generate(settingsPage())

	// email input
	assert.Equal(t, "test@example.com", data.Valid["email"])
	assert.Equal(t, "invalid-email", data.Invalid["email"])
	require.Contains(t, data.Boundary, "email")
	assert.Equal(t, "a@b.c", data.Boundary["email"]["min"])
	assert.Equal(t, strings.Repeat("a", 50)+"@example.com", data.Boundary["email"]["max"])
}

func TestTestDataPasswordAndDefaults(t *testing.T) {
	data := NewTestDataGenerator().Generate(loginPage())

	assert.Equal(t, "ValidPass123!", data.Valid["password"])
	assert.Equal(t, "123", data.Invalid["password"])
	assert.Equal(t, strings.Repeat("a", 100), data.Boundary["password"]["max"])

	// text input falls through to defaults
	assert.Equal(t, "test_value", data.Valid["username"])
	assert.Equal(t, "", data.Invalid["username"])
	assert.Equal(t, "@#$%^&*()", data.Boundary["username"]["special"])
	assert.Equal(t, strings.Repeat("x", 256), data.Boundary["username"]["max"])
}

func TestTestDataOnlyCoversInputs(t *testing.T) {
	data := NewTestDataGenerator().Generate(loginPage())

	// buttons and links contribute no data rows
	assert.Len(t, data.Valid, 2)
	assert.Len(t, data.Invalid, 2)
	assert.Len(t, data.Boundary, 2)
}

func TestFieldKeyFallback(t *testing.T) {
	tests := []struct {
		name string
		el   domain.PageElement
		want string
	}{
		{"name preferred", domain.PageElement{Name: "email", ID: "email-input"}, "email"},
		{"id fallback", domain.PageElement{ID: "email-input"}, "email-input"},
		{"generic fallback", domain.PageElement{}, "field"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fieldKey(tt.el))
		})
	}
}

func TestTestDataLastWriteWinsOnCollision(t *testing.T) {
	info := &domain.PageInfo{
		URL:      "https://app.example.com/signup",
		PageType: domain.PageTypeRegister,
		Elements: []domain.PageElement{
			{Kind: domain.KindInput, Name: "contact", Attributes: domain.ElementAttributes{Type: "email"}},
			{Kind: domain.KindInput, Name: "contact", Attributes: domain.ElementAttributes{Type: "tel"}},
		},
	}

	data := NewTestDataGenerator().Generate(info)

	require.Len(t, data.Valid, 1)
	assert.Equal(t, "13800138000", data.Valid["contact"], "later field should overwrite the earlier one")
}

func TestTestDataRender(t *testing.T) {
	out, err := NewTestDataGenerator().Generate(loginPage()).Render()
	require.NoError(t, err)

	var decoded TestData
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "https://app.example.com/login", decoded.PageInfo.URL)
	assert.Equal(t, domain.PageTypeLogin, decoded.PageInfo.Type)
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestTestDataRenderIsDeterministic(t *testing.T) {
	gen := NewTestDataGenerator()
	first, err := gen.Generate(loginPage()).Render()
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := gen.Generate(loginPage()).Render()
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

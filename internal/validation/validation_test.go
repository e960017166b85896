package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrationValid(t *testing.T) {
	verr := Registration("jane@example.com", "Passw0rd", "Jane", "Doe")
	assert.Nil(t, verr)
}

func TestRegistrationAggregatesAllViolations(t *testing.T) {
	verr := Registration("not-an-email", "short", "J", "")
	require.NotNil(t, verr)

	fields := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		fields = append(fields, f.Field)
	}
	// one email, two password (length + composition), one firstName, one lastName
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
	assert.Contains(t, fields, "firstName")
	assert.Contains(t, fields, "lastName")
	assert.GreaterOrEqual(t, len(verr.Fields), 4)
}

func TestPasswordPolicy(t *testing.T) {
	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"all requirements", "Passw0rd", true},
		{"exactly six chars", "Pass1a", true},
		{"long but valid", "Aa1" + strings.Repeat("x", 100), true},
		{"too short", "Aa1", false},
		{"too long", "Aa1" + strings.Repeat("x", 126), false},
		{"no uppercase", "passw0rd", false},
		{"no lowercase", "PASSW0RD", false},
		{"no digit", "Password", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := NewPassword(tt.password)
			if tt.valid {
				assert.Nil(t, verr)
			} else {
				assert.NotNil(t, verr)
			}
		})
	}
}

func TestFirstNameRules(t *testing.T) {
	tests := []struct {
		name  string
		first string
		valid bool
	}{
		{"plain", "Jane", true},
		{"hyphenated", "Mary-Jane", true},
		{"apostrophe", "O'Brien", true},
		{"with space", "Anna Maria", true},
		{"single char", "J", false},
		{"digits", "Jane2", false},
		{"too long", strings.Repeat("a", 51), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := Registration("jane@example.com", "Passw0rd", tt.first, "Doe")
			if tt.valid {
				assert.Nil(t, verr)
			} else {
				require.NotNil(t, verr)
				assert.Equal(t, "firstName", verr.Fields[0].Field)
				assert.Contains(t, verr.Fields[0].Message, "First name")
			}
		})
	}
}

func TestLastNameRules(t *testing.T) {
	// Unlike firstName, lastName carries no charset or minimum-length rule;
	// only presence and the column width are enforced.
	tests := []struct {
		name  string
		last  string
		valid bool
	}{
		{"plain", "Doe", true},
		{"single char", "X", true},
		{"digits allowed", "Doe 3rd", true},
		{"at column width", strings.Repeat("a", 100), true},
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"over column width", strings.Repeat("a", 101), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := Registration("jane@example.com", "Passw0rd", "Jane", tt.last)
			if tt.valid {
				assert.Nil(t, verr)
			} else {
				require.NotNil(t, verr)
				assert.Equal(t, "lastName", verr.Fields[0].Field)
			}
		})
	}
}

func TestSkillsLimits(t *testing.T) {
	fifty := make([]string, MaxSkills)
	for i := range fifty {
		fifty[i] = "go"
	}
	assert.Nil(t, ProfileUpdate(nil, &fifty))

	fiftyOne := append(fifty, "extra")
	verr := ProfileUpdate(nil, &fiftyOne)
	require.NotNil(t, verr)
	assert.Equal(t, "skills", verr.Fields[0].Field)

	bad := []string{"go", "  ", strings.Repeat("x", MaxSkillLength+1)}
	verr = ProfileUpdate(nil, &bad)
	require.NotNil(t, verr)
	// both the empty entry and the oversized one are reported
	assert.Len(t, verr.Fields, 2)
}

func TestProfileUpdateSkipsAbsentFields(t *testing.T) {
	assert.Nil(t, ProfileUpdate(nil, nil))
}

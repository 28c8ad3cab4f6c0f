package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"a@b.co", true},
		{"poetree@co.ke", true},
		{"not-an-email", false},
		{"", false},
		{"missing@", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEmail(tt.in))
		})
	}
}

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("http://poetree.art"))
	assert.True(t, IsURL("https://cdn.poetree.art/u/1.png"))
	assert.False(t, IsURL("http:// poetree.art"))
	assert.False(t, IsURL("poetree"))
	assert.False(t, IsURL(""))
}

func TestIsHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"#ffffff", true},
		{"#A1b2C3", true},
		{"#fff", false},
		{"ffffff", false},
		{"#fffffff", false},
		{"#gggggg", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsHexColor(tt.in))
		})
	}
}

func TestAge(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, 15, Age(time.Date(2009, 6, 15, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, 14, Age(time.Date(2009, 6, 16, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, 14, Age(time.Date(2009, 7, 1, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, 15, Age(time.Date(2009, 5, 31, 0, 0, 0, 0, time.UTC), now))
}

type profile struct {
	Name   string `json:"name" validate:"notblank"`
	DOB    string `json:"date_of_birth" validate:"date,minage=15"`
	Gender *int   `json:"gender" validate:"required,oneof=0 1"`
	Bio    string `json:"bio" validate:"max=125"`
}

func TestStruct_AgeGate(t *testing.T) {
	orig := Now
	defer func() { Now = orig }()
	Now = func() time.Time { return time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC) }

	zero := 0

	err := Struct(profile{Name: "ann", DOB: "15-06-2009", Gender: &zero})
	assert.NoError(t, err, "exactly 15 years old is accepted")

	err = Struct(profile{Name: "ann", DOB: "16-06-2009", Gender: &zero})
	assert.EqualError(t, err, "user should be 15 years or older")
}

func TestStruct_Messages(t *testing.T) {
	orig := Now
	defer func() { Now = orig }()
	Now = func() time.Time { return time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC) }

	zero, two := 0, 2
	long := make([]byte, 126)
	for i := range long {
		long[i] = 'a'
	}

	tests := []struct {
		name string
		in   profile
		msg  string
	}{
		{"blank name", profile{Name: "  ", DOB: "01-01-2000", Gender: &zero}, "name cannot be blank"},
		{"bad date", profile{Name: "a", DOB: "2000-01-01", Gender: &zero}, "invalid date, expected dd-MM-yyyy"},
		{"bad gender", profile{Name: "a", DOB: "01-01-2000", Gender: &two}, "invalid gender"},
		{"missing gender", profile{Name: "a", DOB: "01-01-2000"}, "gender cannot be blank"},
		{"long bio", profile{Name: "a", DOB: "01-01-2000", Gender: &zero, Bio: string(long)}, "bio must be at most 125 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, Struct(tt.in), tt.msg)
		})
	}
}

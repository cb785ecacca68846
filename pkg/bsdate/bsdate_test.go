package bsdate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sajiloprint/press-api/pkg/bsdate"
)

func TestValid(t *testing.T) {
	cases := []struct {
		date string
		ok   bool
	}{
		{"2081-01-01", true},
		{"2081-12-32", true}, // BS months can have 32 days
		{"2081-12-30", true},
		{"2081-13-01", false},
		{"2081-00-10", false},
		{"2081-01-00", false},
		{"2081-01-33", false},
		{"1500-01-01", false},
		{"2081-1-1", false},
		{"2081/01/01", false},
		{"", false},
		{"not-a-date", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, bsdate.Valid(tc.date), "date %q", tc.date)
	}
}

func TestCompare(t *testing.T) {
	assert.Equal(t, -1, bsdate.Compare("2081-01-01", "2081-01-05"))
	assert.Equal(t, 1, bsdate.Compare("2082-01-01", "2081-12-30"))
	assert.Equal(t, 0, bsdate.Compare("2081-04-15", "2081-04-15"))
}

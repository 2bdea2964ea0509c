package changelog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChangeType(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input   string
		want    ChangeType
		wantErr bool
	}{
		"lowercase created":  {input: "created", want: ChangeCreated},
		"capitalized edited": {input: "Edited", want: ChangeEdited},
		"uppercase deleted":  {input: "DELETED", want: ChangeDeleted},
		"padded input":       {input: "  created ", want: ChangeCreated},
		"unknown value":      {input: "renamed", wantErr: true},
		"empty value":        {input: "", wantErr: true},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseChangeType(tc.input)
			if tc.wantErr {
				var vErr *ValidationError
				assert.ErrorAs(t, err, &vErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestChangeType_IsValid(t *testing.T) {
	t.Parallel()

	for _, ct := range ValidChangeTypes() {
		assert.True(t, ct.IsValid(), "%s should be valid", ct)
	}
	assert.False(t, ChangeType("Renamed").IsValid())
	assert.False(t, ChangeType("").IsValid())
	assert.False(t, ChangeType("created").IsValid(), "stored values are capitalized")
}

func TestEntry_Validate(t *testing.T) {
	t.Parallel()

	valid := Entry{
		ID:          "ab12cd34",
		ChangeType:  ChangeCreated,
		Description: "add login form",
		Timestamp:   time.Now(),
	}

	tests := map[string]struct {
		mutate    func(e Entry) Entry
		wantField string
	}{
		"valid entry":        {mutate: func(e Entry) Entry { return e }},
		"missing id":         {mutate: func(e Entry) Entry { e.ID = ""; return e }, wantField: "id"},
		"bad change type":    {mutate: func(e Entry) Entry { e.ChangeType = "Nuked"; return e }, wantField: "change_type"},
		"blank description":  {mutate: func(e Entry) Entry { e.Description = " \n\t"; return e }, wantField: "description"},
		"zero timestamp":     {mutate: func(e Entry) Entry { e.Timestamp = time.Time{}; return e }, wantField: "timestamp"},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := tc.mutate(valid).Validate()
			if tc.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.wantField, vErr.Field)
		})
	}
}

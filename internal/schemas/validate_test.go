package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateExtractedDetails(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		wantErr bool
	}{
		{
			name: "nested sections with string leaves",
			json: `{"Personal Information": {"Full Name": "Ravi Kumar", "Date of Birth": "12/05/1990"}}`,
		},
		{
			name: "list of strings leaf",
			json: `{"Contact Information": {"Phone Number(s)": ["9876543210"]}}`,
		},
		{
			name: "null leaf allowed",
			json: `{"Personal Information": {"Mother's Name": null}}`,
		},
		{
			name: "empty object",
			json: `{}`,
		},
		{
			name:    "numeric leaf rejected",
			json:    `{"Personal Information": {"Age": 34}}`,
			wantErr: true,
		},
		{
			name:    "mixed list rejected",
			json:    `{"Contact Information": {"Phone Number(s)": ["9876543210", 42]}}`,
			wantErr: true,
		},
		{
			name:    "top-level array rejected",
			json:    `["not", "a", "record"]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateExtractedDetails(tt.json)
			if tt.wantErr {
				require.Error(t, err)
				var ve *ValidationError
				assert.ErrorAs(t, err, &ve)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateExtractedDetailsMalformedJSON(t *testing.T) {
	err := ValidateExtractedDetails(`{"unterminated": `)
	require.Error(t, err)

	var le *SchemaLoadError
	assert.ErrorAs(t, err, &le)
}

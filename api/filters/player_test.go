package filters

import (
	"testing"

	"riftrewind/pkg/regions"

	"github.com/stretchr/testify/assert"
)

func TestSplitRiotId(t *testing.T) {
	tests := []struct {
		name         string
		riotId       string
		expectedName string
		expectedTag  string
		expectError  bool
	}{
		{
			name:         "valid riot id",
			riotId:       "Faker#KR1",
			expectedName: "Faker",
			expectedTag:  "KR1",
		},
		{
			name:         "name with spaces",
			riotId:       "Hide on bush#KR1",
			expectedName: "Hide on bush",
			expectedTag:  "KR1",
		},
		{
			name:         "extra hash stays in the tag",
			riotId:       "Player#NA#1",
			expectedName: "Player",
			expectedTag:  "NA#1",
		},
		{
			name:        "missing hash",
			riotId:      "FakerKR1",
			expectError: true,
		},
		{
			name:        "empty name",
			riotId:      "#KR1",
			expectError: true,
		},
		{
			name:        "empty tag",
			riotId:      "Faker#",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, tag, err := SplitRiotId(tt.riotId)

			if tt.expectError {
				assert.ErrorIs(t, err, ErrInvalidRiotId)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedName, name)
			assert.Equal(t, tt.expectedTag, tag)
		})
	}
}

func TestParseRegion(t *testing.T) {
	region, err := ParseRegion("na1")
	assert.NoError(t, err)
	assert.Equal(t, regions.SubRegion("NA1"), region)

	region, err = ParseRegion("EUW1")
	assert.NoError(t, err)
	assert.Equal(t, regions.SubRegion("EUW1"), region)

	_, err = ParseRegion("MOON1")
	assert.ErrorIs(t, err, ErrInvalidRegion)
}

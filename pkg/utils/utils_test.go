package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeChecksum(t *testing.T) {
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", ComputeChecksum(nil))
	assert.Equal(t, ComputeChecksum([]byte("coverage")), ComputeChecksum([]byte("coverage")))
	assert.NotEqual(t, ComputeChecksum([]byte("a")), ComputeChecksum([]byte("b")))
}

func TestGenerateUUID(t *testing.T) {
	first := GenerateUUID()
	second := GenerateUUID()
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{32}$`), first)
	assert.NotEqual(t, first, second)
}

type sample struct {
	Name    string `json:"name" validate:"required"`
	DryRun  bool   `json:"dry-run"`
	ID      int    `json:"id" validate:"required_unless=DryRun true"`
	Format  string `json:"format" validate:"oneof=a b"`
	Ignored string `json:"-" validate:"required"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name string
		in   sample
		want []FieldError
	}{
		{
			"valid",
			sample{Name: "n", ID: 1, Format: "a", Ignored: "x"},
			nil,
		},
		{
			"dry run makes id optional",
			sample{Name: "n", DryRun: true, Format: "b", Ignored: "x"},
			nil,
		},
		{
			"missing fields are named by their json tag",
			sample{Format: "a"},
			[]FieldError{
				{Field: "name", Tag: "required", Message: "name field is required!"},
				{Field: "id", Tag: "required_unless", Message: "id field is required!"},
				{Field: "Ignored", Tag: "required", Message: "Ignored field is required!"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateStruct(&tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateStruct_OneOf(t *testing.T) {
	got, err := ValidateStruct(&sample{Name: "n", ID: 1, Format: "c", Ignored: "x"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "format", got[0].Field)
	assert.Equal(t, "oneof", got[0].Tag)
	assert.Contains(t, got[0].Message, "format must be one of [a b]")
}

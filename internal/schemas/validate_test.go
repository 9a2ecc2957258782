package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateJobPostingMarkup_Valid(t *testing.T) {
	doc := `{
		"@type": "JobPosting",
		"title": "Senior Go Engineer",
		"hiringOrganization": {"name": "Acme"},
		"description": "Build backend services."
	}`
	assert.NoError(t, ValidateJobPostingMarkup(doc))
}

func TestValidateJobPostingMarkup_TypeArray(t *testing.T) {
	doc := `{"@type": ["JobPosting"], "title": "Engineer"}`
	assert.NoError(t, ValidateJobPostingMarkup(doc))
}

func TestValidateJobPostingMarkup_StringOrganization(t *testing.T) {
	doc := `{"@type": "JobPosting", "hiringOrganization": "Acme"}`
	assert.NoError(t, ValidateJobPostingMarkup(doc))
}

func TestValidateJobPostingMarkup_MissingType(t *testing.T) {
	err := ValidateJobPostingMarkup(`{"title": "Engineer"}`)
	require.Error(t, err)

	var valErr *ValidationError
	assert.ErrorAs(t, err, &valErr)
	assert.NotEmpty(t, valErr.Errors)
}

func TestValidateJobPostingMarkup_WrongFieldType(t *testing.T) {
	err := ValidateJobPostingMarkup(`{"@type": "JobPosting", "title": 42}`)
	require.Error(t, err)
}

func TestValidateJobPostingMarkup_InvalidJSON(t *testing.T) {
	err := ValidateJobPostingMarkup(`{not json`)
	require.Error(t, err)
}

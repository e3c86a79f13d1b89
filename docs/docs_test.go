package docs

import (
	"encoding/json"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerSpecRenders(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var spec struct {
		Paths       map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &spec))
	assert.NotEmpty(t, spec.Paths)
	assert.NotEmpty(t, spec.Definitions)
}

func TestSwaggerSpecRefsResolve(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var spec struct {
		Definitions map[string]json.RawMessage `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &spec))

	refs := regexp.MustCompile(`#/definitions/([^"]+)`).FindAllStringSubmatch(raw, -1)
	require.NotEmpty(t, refs)
	for _, m := range refs {
		assert.Contains(t, spec.Definitions, m[1])
	}

	// The response DTOs named in the handler annotations must be defined.
	for _, name := range []string{
		"dto.ErrorResponse",
		"dto.InterviewDetailDTO",
		"dto.InterviewSummaryDTO",
		"dto.QuestionResultDTO",
		"dto.UserResponseDTO",
		"dto.UserStatsDTO",
		"dto.BadgeDTO",
		"dto.LeaderboardEntryDTO",
	} {
		assert.Contains(t, spec.Definitions, name)
	}
}

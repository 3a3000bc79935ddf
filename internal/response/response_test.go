package response

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeShape(t *testing.T) {
	raw, err := json.Marshal(Success(map[string]int{"n": 1}, nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":{"n":1}}`, string(raw))

	raw, err = json.Marshal(Fail(409, "last activity"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":{"code":409,"message":"last activity"}}`, string(raw))

	assert.Equal(t, 401, Unauthorized("no").Error.Code)
}

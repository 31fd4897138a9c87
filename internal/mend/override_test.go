package mend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"model-mender/internal/override"
)

func TestApplyOverrides(t *testing.T) {
	table, err := override.Parse([]byte(`
records:
  - name: ChatRequest
    body: |
      request_id: str
      input: str
      logging_level: Optional[str] = None
  - name: NotInSource
    body: |
      x: int
`))
	require.NoError(t, err)

	src := `@dataclass
class ChatRequest:
    input: str

@dataclass
class Untouched:
    x: int
`

	got, count := ApplyOverrides(src, table)

	// One replacement: the name with no matching record is skipped silently.
	assert.Equal(t, 1, count)
	assert.Contains(t, got, "@dataclass\nclass ChatRequest:\n    request_id: str\n    input: str\n    logging_level: Optional[str] = None")
	assert.Contains(t, got, "@dataclass\nclass Untouched:\n    x: int")
	assert.NotContains(t, got, "NotInSource")
}

func TestApplyOverridesReplacesFlattenedShape(t *testing.T) {
	// The override is unconditional: whatever the computed shape was,
	// including a parent-bearing one, is replaced outright.
	src := "@dataclass\nclass CancelRequest(Request):\n    pass\n"

	got, count := ApplyOverrides(src, override.Default())
	assert.Equal(t, 1, count)
	assert.NotContains(t, got, "(Request)")
	assert.Contains(t, got, "request_id: str")
	assert.Contains(t, got, "request_metadata: Optional[Dict[str, Any]] = field(default_factory=dict)")
}

func TestApplyOverridesNoMatches(t *testing.T) {
	src := "@dataclass\nclass Unknown:\n    x: int\n"

	got, count := ApplyOverrides(src, override.Default())
	assert.Equal(t, 0, count)
	assert.Equal(t, src, got)
}

package mend

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"model-mender/internal/pymodel"
)

func mustFlatten(t *testing.T, src string, policy MissingParentPolicy) (string, int) {
	t.Helper()

	got, count, _, err := FlattenHierarchy(src, policy)
	require.NoError(t, err)

	return got, count
}

func fieldNames(fields []pymodel.Field) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}

	return names
}

func TestFlattenThreeLevelChain(t *testing.T) {
	src := `@dataclass
class A:
    x: str

@dataclass
class B(A):
    y: str

@dataclass
class C(B):
    z: str
`

	got, count := mustFlatten(t, src, MissingParentFail)
	assert.Equal(t, 2, count)

	records := pymodel.Scan(got)
	require.Len(t, records, 3)

	for _, rec := range records {
		assert.False(t, rec.HasParent(), "record %s still has a parent", rec.Name)
	}

	// Every level of the chain accumulates, in root-to-child order.
	c := records[2]
	assert.Equal(t, "C", c.Name)
	assert.Equal(t, []string{"x", "y", "z"}, fieldNames(c.Fields))
}

func TestFlattenOverrideWins(t *testing.T) {
	src := `@dataclass
class A:
    foo: int
    bar: str

@dataclass
class C(A):
    foo: str
`

	got, _ := mustFlatten(t, src, MissingParentFail)

	records := pymodel.Scan(got)
	require.Len(t, records, 2)

	c := records[1]
	require.Equal(t, "C", c.Name)

	// Exactly one foo survives, typed per the most-derived declaration, at
	// its merge position (after bar, since the child redeclared it last).
	assert.Equal(t, []string{"bar", "foo"}, fieldNames(c.Fields))
	assert.Equal(t, "str", c.Fields[1].Type)
}

func TestFlattenRequiredBeforeDefaulted(t *testing.T) {
	src := `@dataclass
class P:
    a: int
    b: str = 'x'

@dataclass
class C(P):
    c: int
    d: int = 0
`

	got, _ := mustFlatten(t, src, MissingParentFail)

	records := pymodel.Scan(got)
	require.Len(t, records, 2)

	c := records[1]
	require.Equal(t, "C", c.Name)
	assert.Equal(t, []string{"a", "c", "b", "d"}, fieldNames(c.Fields))
	assert.False(t, c.Fields[0].HasDefault)
	assert.False(t, c.Fields[1].HasDefault)
	assert.True(t, c.Fields[2].HasDefault)
	assert.True(t, c.Fields[3].HasDefault)
}

func TestFlattenIdempotent(t *testing.T) {
	src := `@dataclass
class A:
    x: str

@dataclass
class B(A):
    y: str
`

	once, count := mustFlatten(t, src, MissingParentFail)
	assert.Equal(t, 1, count)
	assert.NotContains(t, once, "(A)")

	twice, count := mustFlatten(t, once, MissingParentFail)
	assert.Equal(t, 0, count)
	assert.Equal(t, once, twice)
}

func TestFlattenEmptyChildBody(t *testing.T) {
	src := `@dataclass
class Request:
    request_id: str
    logging_level: Optional[str] = None

@dataclass
class CancelRequest(Request):
    pass
`

	got, count := mustFlatten(t, src, MissingParentFail)
	assert.Equal(t, 1, count)

	records := pymodel.Scan(got)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"request_id", "logging_level"}, fieldNames(records[1].Fields))
}

func TestFlattenCycleTruncates(t *testing.T) {
	src := `@dataclass
class A(B):
    x: str

@dataclass
class B(A):
    y: str
`

	got, count, diags, err := FlattenHierarchy(src, MissingParentFail)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.True(t, diags.HasWarnings())

	records := pymodel.Scan(got)
	require.Len(t, records, 2)

	// Traversal stops at the first revisited ancestor: each record picks up
	// the other's fields exactly once.
	assert.Equal(t, []string{"y", "x"}, fieldNames(records[0].Fields))
	assert.Equal(t, []string{"x", "y"}, fieldNames(records[1].Fields))
}

func TestFlattenSelfReferenceTruncates(t *testing.T) {
	src := "@dataclass\nclass A(A):\n    x: str\n"

	got, count, diags, err := FlattenHierarchy(src, MissingParentFail)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.True(t, diags.HasWarnings())
	assert.Contains(t, got, "class A:")
}

func TestFlattenMissingParentFail(t *testing.T) {
	src := "@dataclass\nclass C(Ghost):\n    z: str\n"

	got, count, _, err := FlattenHierarchy(src, MissingParentFail)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Ghost")
	assert.Contains(t, err.Error(), "C")
	assert.Equal(t, src, got)
	assert.Equal(t, 0, count)
}

func TestFlattenMissingParentOwnFields(t *testing.T) {
	src := "@dataclass\nclass C(Ghost):\n    z: str\n"

	got, count, diags, err := FlattenHierarchy(src, MissingParentOwnFields)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.True(t, diags.HasWarnings())
	assert.Equal(t, "@dataclass\nclass C:\n    z: str\n", got)
}

func TestFlattenMissingParentKeep(t *testing.T) {
	src := "@dataclass\nclass C(Ghost):\n    z: str\n"

	got, count, diags, err := FlattenHierarchy(src, MissingParentKeep)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.True(t, diags.HasWarnings())
	assert.Equal(t, src, got)
}

func TestFlattenMissingGrandparentOwnFields(t *testing.T) {
	src := `@dataclass
class B(Ghost):
    y: str

@dataclass
class C(B):
    z: str
`

	got, _ := mustFlatten(t, src, MissingParentOwnFields)

	records := pymodel.Scan(got)
	require.Len(t, records, 2)

	// The missing segment is dropped; everything below it still accumulates.
	assert.Equal(t, []string{"y", "z"}, fieldNames(records[1].Fields))
}

func TestFlattenLeavesSurroundingTextAlone(t *testing.T) {
	src := `from dataclasses import dataclass


class FinishReason(Enum):
    success = 'success'


@dataclass
class A:
    x: str

@dataclass
class B(A):
    y: str
`

	got, _ := mustFlatten(t, src, MissingParentFail)
	assert.True(t, strings.HasPrefix(got, "from dataclasses import dataclass"))
	assert.Contains(t, got, "class FinishReason(Enum):\n    success = 'success'")
}

func TestParseMissingParentPolicy(t *testing.T) {
	tests := []struct {
		input   string
		want    MissingParentPolicy
		wantErr bool
	}{
		{"fail", MissingParentFail, false},
		{"own-fields", MissingParentOwnFields, false},
		{"keep", MissingParentKeep, false},
		{"bogus", MissingParentFail, true},
		{"", MissingParentFail, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMissingParentPolicy(tt.input)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMissingParentPolicyString(t *testing.T) {
	assert.Equal(t, "MissingParentFail", MissingParentFail.String())
	assert.Equal(t, "MissingParentOwnFields", MissingParentOwnFields.String())
	assert.Equal(t, "MissingParentKeep", MissingParentKeep.String())
}

package contract

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPath(t *testing.T) {
	assert.Equal(t, "/api/resumes/abc", BuildPath("/api/resumes/:id", map[string]string{"id": "abc"}))
	assert.Equal(t, "/api/resumes", BuildPath("/api/resumes", nil))
	// Unknown params leave the placeholder so the mistake is visible.
	assert.Equal(t, "/api/resumes/:id", BuildPath("/api/resumes/:id", map[string]string{"other": "x"}))
	// Values are path-escaped.
	assert.Equal(t, "/api/resumes/a%2Fb", BuildPath("/api/resumes/:id", map[string]string{"id": "a/b"}))
}

func TestObjectRuleReportsFirstField(t *testing.T) {
	rule := Object[DocumentInput]()

	err := rule(DocumentInput{Content: "body"})
	require.Error(t, err)
	fe, ok := err.(*FieldError)
	require.True(t, ok, "expected *FieldError, got %T", err)
	assert.Equal(t, "title", fe.Field)
	assert.Equal(t, "is required", fe.Message)

	assert.NoError(t, rule(DocumentInput{Title: "My resume", Content: "body"}))
	// Pointer values validate the same way.
	assert.NoError(t, rule(&DocumentInput{Title: "My resume", Content: "body"}))
}

func TestObjectRuleRejectsWrongType(t *testing.T) {
	rule := Object[DocumentInput]()
	err := rule("not a struct")
	require.Error(t, err)
}

func TestListRuleValidatesElements(t *testing.T) {
	rule := List[Resume]()

	good := []Resume{{ID: "1", UserID: "u1", Title: "t", Content: "c"}}
	assert.NoError(t, rule(good))

	bad := []Resume{{ID: "1", UserID: "u1", Title: "t", Content: "c"}, {UserID: "u1", Title: "missing id"}}
	err := rule(bad)
	require.Error(t, err)
	fe, ok := err.(*FieldError)
	require.True(t, ok)
	assert.Equal(t, "id", fe.Field)
}

func TestRangeTags(t *testing.T) {
	rule := Object[ResumeAnalysis]()

	err := rule(ResumeAnalysis{MatchScore: 120, Suggestions: []string{"x"}})
	require.Error(t, err)
	fe := err.(*FieldError)
	assert.Equal(t, "matchScore", fe.Field)

	assert.NoError(t, rule(ResumeAnalysis{MatchScore: 80, Suggestions: []string{"x"}}))
}

func TestDefaultRegistryIsComplete(t *testing.T) {
	reg := Default()
	ops := reg.Operations()
	require.NotEmpty(t, ops)

	seen := map[string]bool{}
	for _, op := range ops {
		assert.NotEmpty(t, op.Name)
		assert.NotEmpty(t, op.Method)
		assert.NotEmpty(t, op.Path)
		assert.NotEmpty(t, op.Responses, "operation %s has no response rules", op.Name)
		assert.False(t, seen[op.Method+" "+op.Path], "duplicate route %s %s", op.Method, op.Path)
		seen[op.Method+" "+op.Path] = true
	}

	// Mutating operations with a body declare an input rule.
	for _, name := range []string{OpResumesCreate, OpResumesUpdate, OpCoverLettersCreate, OpJobsFetch, OpStripeVerify} {
		op := reg.MustGet(name)
		assert.NotNil(t, op.Input, "operation %s should declare an input rule", name)
	}
}

func TestRegistryDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate operation name")
		}
	}()
	NewRegistry(
		Operation{Name: "dup", Method: http.MethodGet, Path: "/a"},
		Operation{Name: "dup", Method: http.MethodGet, Path: "/b"},
	)
}

package validation

import (
	"testing"

	"github.com/narsgo/reasoner/internal/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTermRejectsMalformedInput(t *testing.T) {
	_, err := ParseTerm("<A --> ")
	require.Error(t, err)
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, KindInvalidNarsese, verr.Kind)
}

func TestParseTermAcceptsCanonicalForm(t *testing.T) {
	_, err := ParseTerm("<A --> B>")
	assert.NoError(t, err)
}

func TestRequireConstantRejectsVariable(t *testing.T) {
	v := term.MakeRawVariable(term.VarIndependent, "x")
	err := RequireConstant(v)
	require.Error(t, err)
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, KindInvalidConstruction, verr.Kind)
}

func TestRequireKnownInspectTarget(t *testing.T) {
	assert.NoError(t, RequireKnownInspectTarget("summary"))
	err := RequireKnownInspectTarget("bogus")
	require.Error(t, err)
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, KindUnknownInspectTarget, verr.Kind)
}

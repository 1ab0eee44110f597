package apperr_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/parkervanroy/sith/internal/apperr"
)

var errTemplate = &apperr.Error{
	Message: "unable to read %s",
}

func TestFmtKeepsIdentity(t *testing.T) {
	err := errTemplate.Fmt("summary.json")

	assert.Equal(t, "unable to read summary.json", err.Error())
	assert.ErrorIs(t, err, errTemplate)
}

func TestWrapExposesCause(t *testing.T) {
	err := errTemplate.Fmt("config.json").Wrap(io.ErrUnexpectedEOF)

	assert.Equal(t, "unable to read config.json: unexpected EOF", err.Error())
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.ErrorIs(t, err, errTemplate)
}

func TestDistinctTemplates(t *testing.T) {
	other := &apperr.Error{Message: "unable to read %s"}

	assert.False(t, errors.Is(errTemplate.Fmt("x"), other))
}

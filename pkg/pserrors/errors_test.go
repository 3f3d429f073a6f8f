package pserrors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/macropower/pathstring/pkg/pserrors"
)

func TestWrapping(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("%w: %s", pserrors.ErrWriteFile, "out.json")

	assert.ErrorIs(t, err, pserrors.ErrWriteFile)
	assert.ErrorIs(t, err, pserrors.ErrWrite)
	assert.NotErrorIs(t, err, pserrors.ErrRead)
	assert.ErrorIs(t, pserrors.ErrReadFile, pserrors.ErrRead)
}

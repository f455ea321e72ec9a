package regex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gbabichev/Simple-Renamer/internal/domain"
)

func TestEngine_ExpandShortcuts(t *testing.T) {
	e := &Engine{}

	assert.Equal(t, `img(\d+)`, e.ExpandShortcuts("img[number]"))
	assert.Equal(t, `(.*)_([a-zA-Z]+)`, e.ExpandShortcuts("[any]_[alpha]"))
	assert.Equal(t, "plain", e.ExpandShortcuts("plain"))
}

func TestEngine_Match(t *testing.T) {
	e := &Engine{}

	ok, err := e.Match(`img\d+`, "img42")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = e.Match(`img\d+`, "photo")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = e.Match("(", "anything")
	assert.ErrorIs(t, err, domain.ErrInvalidPattern)
}

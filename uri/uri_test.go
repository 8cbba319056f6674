package uri

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	u, err := Parse("/q?file=install.sh&machine=x86_64")
	require.NoError(t, err)

	assert.Equal(t, "/q", u.Path())
	assert.Equal(t, "/q?file=install.sh&machine=x86_64", u.String())
	assert.Equal(t, "install.sh", u.Query("file"))
	assert.Equal(t, "x86_64", u.Query("machine"))
	assert.Equal(t, "", u.Query("absent"))
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse("://missing-scheme")
	assert.Error(t, err)
}

func TestRoot(t *testing.T) {
	u := Root()
	assert.Equal(t, "/", u.String())
	assert.Equal(t, "/", u.Path())
	assert.Equal(t, "", u.Query("anything"))
}

func TestNilSafety(t *testing.T) {
	var u *URI
	assert.Equal(t, "", u.String())
	assert.Equal(t, "", u.Path())
	assert.Equal(t, "", u.Query("x"))
}

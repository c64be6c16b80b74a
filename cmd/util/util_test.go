package util

import (
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uzaira123/Uzaira-Library-lsm/lib/common"
	"github.com/uzaira123/Uzaira-Library-lsm/lib/db"
	"path/filepath"
	"strings"
	"testing"
)

func TestWrapString(t *testing.T) {
	text := strings.Repeat("word ", 30)
	for _, line := range strings.Split(WrapString(text), "\n") {
		assert.LessOrEqual(t, len(line), Wrap)
	}
	assert.Equal(t, "short help", WrapString("  short   help "))
}

func TestGetDBFactory(t *testing.T) {
	conf := common.DefaultConfig()
	conf.DataFile = filepath.Join(t.TempDir(), "books.gob")
	conf.Format = "gob"

	factory, err := GetDBFactory(conf)
	require.NoError(t, err)
	info := factory().GetInfo()
	assert.Equal(t, db.ImplFile, info.DbType)
	assert.Equal(t, "gob", info.Format)
	assert.Equal(t, conf.DataFile, info.Location)

	conf.Ephemeral = true
	factory, err = GetDBFactory(conf)
	require.NoError(t, err)
	assert.Equal(t, db.ImplMemory, factory().GetInfo().DbType)

	conf.Ephemeral = false
	conf.Format = "yaml"
	_, err = GetDBFactory(conf)
	assert.Error(t, err)
}

func TestIsMutating(t *testing.T) {
	assert.True(t, IsMutating(&cobra.Command{Annotations: Mutating()}))
	assert.False(t, IsMutating(&cobra.Command{}))
}

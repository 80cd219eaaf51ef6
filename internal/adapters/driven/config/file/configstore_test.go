package file

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, FileName), store.Path())
	assert.Empty(t, store.Keys())
}

func TestNewConfigStore_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "zalgo")

	_, err := NewConfigStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewConfigStore_MkdirAllError(t *testing.T) {
	store, err := NewConfigStore("/dev/null/cannot/create/dirs")

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNewConfigStore_CorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()
	err := os.WriteFile(filepath.Join(tmpDir, FileName), []byte("this is not valid TOML {{{[["), 0o600)
	require.NoError(t, err)

	store, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestConfigStore_SetDoesNotPersistUntilSave(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("decoration.intensity", "large"))
	assert.Equal(t, "large", store.GetString("decoration.intensity"))

	_, err = os.Stat(store.Path())
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, store.Save())
	_, err = os.Stat(store.Path())
	assert.NoError(t, err)
}

func TestConfigStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()
	store1, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store1.Set("decoration.kinds", []string{"above", "below"}))
	require.NoError(t, store1.Set("decoration.intensity", "exact:1,2,3"))
	require.NoError(t, store1.Set("random.seed", int64(42)))
	require.NoError(t, store1.Set("output.rate", 30))
	require.NoError(t, store1.Set("verbose", true))
	require.NoError(t, store1.Save())

	store2, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, []string{"above", "below"}, store2.GetStringSlice("decoration.kinds"))
	assert.Equal(t, "exact:1,2,3", store2.GetString("decoration.intensity"))
	assert.Equal(t, 42, store2.GetInt("random.seed"))
	assert.Equal(t, 30, store2.GetInt("output.rate"))
	assert.True(t, store2.GetBool("verbose"))
	assert.Equal(t, []string{"decoration.intensity", "decoration.kinds", "output.rate", "random.seed", "verbose"}, store2.Keys())
}

func TestConfigStore_WritesNestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("random.source", "pcg"))
	require.NoError(t, store.Save())

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[random]")
	assert.Regexp(t, `source = ['"]pcg['"]`, string(data))
}

func TestConfigStore_ReadsHandWrittenFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := "[decoration]\nintensity = \"maxi\"\nkinds = [\"up\", \"down\"]\n\n[random]\nsource = \"chacha8\"\nseed = 7\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, FileName), []byte(content), 0o600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "maxi", store.GetString("decoration.intensity"))
	assert.Equal(t, []string{"up", "down"}, store.GetStringSlice("decoration.kinds"))
	assert.Equal(t, "chacha8", store.GetString("random.source"))
	assert.Equal(t, 7, store.GetInt("random.seed"))
}

func TestConfigStore_Delete(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("random.seed", 1))
	require.NoError(t, store.Delete("random.seed"))
	require.NoError(t, store.Delete("missing"))

	_, ok := store.Get("random.seed")
	assert.False(t, ok)
}

func TestConfigStore_SetEmptyKey(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, store.Set("", "value"))
}

func TestConfigStore_TypeMismatch(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("key", "string"))
	assert.Zero(t, store.GetInt("key"))
	assert.False(t, store.GetBool("key"))
	assert.Nil(t, store.GetStringSlice("key"))
	assert.Empty(t, store.GetString("missing"))
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("test", "value"))
	require.NoError(t, store.Save())

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestConfigStore_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, FileName), []byte{}, 0o600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	_, ok := store.Get("any_key")
	assert.False(t, ok)
}

func TestConfigStore_Save_WriteError(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, os.Mkdir(store.Path(), 0o700))
	require.NoError(t, store.Set("test", "value"))

	assert.Error(t, store.Save())
}

func TestConfigStore_Save_UnmarshallableValue(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("channel", make(chan int)))

	assert.Error(t, store.Save())
}

func TestConfigStore_Load_InvalidTOML(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(store.Path(), []byte("invalid toml syntax ][}{"), 0o600))

	assert.Error(t, store.Load())
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			key := "key" + string(rune('0'+id))
			_ = store.Set(key, id)
			_ = store.GetInt(key)
			_ = store.GetString(key)
			_ = store.Keys()
			_ = store.Save()
		}(i)
	}
	wg.Wait()

	assert.Len(t, store.Keys(), 10)
}

func TestDefaultDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot determine home directory")
	}

	dir, err := DefaultDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, DirName), dir)
}

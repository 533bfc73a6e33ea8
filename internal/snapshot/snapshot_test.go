package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSnapshot(t *testing.T) {
	a := assert.New(t)

	obj := map[string]interface{}{"rows": []string{"Ah", "10c"}}
	filename := filepath.Join("testdata", "snapshot.TestValidateSnapshot-0.json")
	_ = os.Remove(filename)
	defer os.Remove(filename)

	// the first call writes the snapshot
	ValidateSnapshot(t, obj, 0)
	a.FileExists(filename)

	// the second call (a new index) writes another, so compare against the first directly
	b, err := os.ReadFile(filename)
	a.NoError(err)
	a.JSONEq(`{"rows":["Ah","10c"]}`, string(b))

	funcCount["snapshot.TestValidateSnapshot"] = 0
	ValidateSnapshot(t, obj, 0)
}

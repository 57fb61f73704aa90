package log

import (
	"testing"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
)

func TestEnableTrace(t *testing.T) {
	old := L.GetLevel()
	defer L.SetLevel(old)

	L.SetLevel(hclog.Info)
	t.Setenv("TRACE", "1")
	EnableTrace()
	assert.True(t, L.IsTrace())
}

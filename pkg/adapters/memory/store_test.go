package memory_test

import (
	"testing"

	"github.com/chalkdeck/chalk/pkg/adapters/memory"
	"github.com/chalkdeck/chalk/pkg/ports"
)

func TestMemoryStore_Contract(t *testing.T) {
	ports.RunCursorStoreContract(t, memory.NewStore())
}

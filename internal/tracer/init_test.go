package tracer

import (
	"context"
	"testing"

	"markethub-be/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestInitTracer_DisabledIsNoop(t *testing.T) {
	shutdown := InitTracer(config.TracingConfig{Enabled: false})
	assert.NoError(t, shutdown(context.Background()))
}

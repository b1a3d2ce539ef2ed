package views

import (
	"testing"

	"github.com/Cyclone1070/pharmtui/internal/ui/models"
	"github.com/stretchr/testify/assert"
)

func TestRenderStatus_Ready(t *testing.T) {
	state := createTestState(80, 24)

	result := RenderStatus(state, nil, DefaultTheme())

	assert.Contains(t, result, "Ready")
}

func TestRenderStatus_CountsBusyPanels(t *testing.T) {
	state := createTestState(80, 24)
	state.Panel(models.PanelSearch).Busy = true
	state.Panel(models.PanelSeed).Busy = true

	result := RenderStatus(state, nil, DefaultTheme())

	assert.Contains(t, result, "2 requests in flight")
	assert.NotContains(t, result, "Ready")
}

func TestRenderStatus_Help(t *testing.T) {
	state := createTestState(80, 24)

	result := RenderStatus(state, testKeys{}, DefaultTheme())

	assert.Contains(t, result, "quit")
}

//go:build integration

package ui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Cyclone1070/pharmtui/internal/api"
	"github.com/Cyclone1070/pharmtui/internal/ui/models"
	uiservices "github.com/Cyclone1070/pharmtui/internal/ui/services"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPanels_AgainstHTTPBackend(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/drugs/search", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items":[{"id":"1","name":"Warfarin","brand_names":["Coumadin","Jantoven"],"class_name":"Anticoagulant","indications":["AF"],"side_effects":["Bleeding"]}]}`))
	})
	mux.HandleFunc("/api/interactions/simulate", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Drugs []string `json:"drugs"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []string{"warfarin", "fluconazole", "metoprolol"}, body.Drugs)
		_, _ = w.Write([]byte(`{"pairs":[{"drug_a":"warfarin","drug_b":"fluconazole","severity":"major","description":"Raises INR"}]}`))
	})
	mux.HandleFunc("/api/seed", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"seeded":{"drugs":12}}`))
	})
	mux.HandleFunc("/api/chat", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client, err := api.NewClient(server.URL)
	require.NoError(t, err)

	model := createTestModel(client)
	model.renderer = uiservices.NewGlamourRendererWithStyle("notty")

	// Search
	model, cmd := submit(t, model)
	model = settle(t, model, cmd)
	assert.Contains(t, model.View(), "Coumadin, Jantoven")

	// Interactions
	model = focus(t, model, models.PanelInteractions)
	model, cmd = submit(t, model)
	model = settle(t, model, cmd)
	assert.Contains(t, model.View(), "warfarin × fluconazole")

	// Chat failure
	model = focus(t, model, models.PanelChat)
	model, cmd = submit(t, model)
	model = settle(t, model, cmd)
	assert.Equal(t, "Backend returned 500", model.state.Panel(models.PanelChat).Err)
	assert.False(t, model.state.HasReply)

	// Seed
	model, cmd = update(t, model, tea.KeyMsg{Type: tea.KeyCtrlS})
	model = settle(t, model, cmd)
	assert.Equal(t, "Seeded 12 drugs and undefined rules", model.state.SeedStatus)
}

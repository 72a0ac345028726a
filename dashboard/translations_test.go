package dashboard_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/AbdullahAliSapry/Customer-Dashboard-sub002/api"
	"github.com/AbdullahAliSapry/Customer-Dashboard-sub002/dashboard"
	"github.com/AbdullahAliSapry/Customer-Dashboard-sub002/internal/testutil"
	"github.com/go-chi/chi/v5"
	"github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// echoTranslation answers a PUT with the translation it received.
func echoTranslation(w http.ResponseWriter, r *http.Request) {
	var t dashboard.Translation
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		testutil.WriteEnvelope(w, http.StatusBadRequest, false, err.Error(), nil)
		return
	}
	t.Language = chi.URLParam(r, "lang")
	testutil.WriteEnvelope(w, http.StatusOK, true, "Translation saved", t)
}

func TestTranslationService_List(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.respond(http.MethodGet, "/products/{id}/translations", http.StatusOK, true, "", []dashboard.Translation{
		{Language: "de", Name: "Becher"},
		{Language: "fr", Name: "Tasse", Auto: true},
	})

	translations, err := h.dash.Translations().List(context.Background(), "p1").Unwrap()

	require.NoError(t, err)
	require.Len(t, translations, 2)
	assert.True(t, translations[1].Auto)
	assert.Equal(t, "/products/p1/translations", h.backend.LastRequest(t).Path)
}

func TestTranslationService_Save(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.backend.Handle(http.MethodPut, "/products/{id}/translations/{lang}", echoTranslation)

	saved, err := h.dash.Translations().Save(context.Background(), "p1", dashboard.Translation{
		Language: "de",
		Name:     "Becher",
	}).Unwrap()

	require.NoError(t, err)
	assert.Equal(t, "Becher", saved.Name)
	assert.Equal(t, "/products/p1/translations/de", h.backend.LastRequest(t).Path)
	assert.Equal(t, []api.Notification{{Message: "Translation saved", Severity: api.SeveritySuccess}}, h.toasts.All())
}

func TestTranslationService_Auto(t *testing.T) {
	t.Parallel()

	t.Run("translated synchronously", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t)
		h.respond(http.MethodPost, "/products/{id}/translations/auto", http.StatusOK, true, "", []dashboard.Translation{
			{Language: "es", Name: "Taza", Auto: true},
		})

		res := h.dash.Translations().Auto(context.Background(), "p1", dashboard.AutoTranslateRequest{
			SourceLanguage:  "en",
			TargetLanguages: []string{"es"},
		})

		translations, present := res.Value()
		require.True(t, present)
		assert.Equal(t, "Taza", translations[0].Name)
		assert.JSONEq(t,
			`{"sourceLanguage":"en","targetLanguages":["es"],"overwriteExisting":false}`,
			string(h.backend.LastRequest(t).Body))
	})

	t.Run("accepted without body", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t)
		h.backend.Handle(http.MethodPost, "/products/{id}/translations/auto", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})

		res := h.dash.Translations().Auto(context.Background(), "p1", dashboard.AutoTranslateRequest{
			TargetLanguages: []string{"es", "it"},
		})

		require.True(t, res.Ok())
		_, present := res.Value()
		assert.False(t, present)
		assert.Equal(t, "Item created successfully", h.toasts.All()[0].Message)
	})
}

func TestTranslationService_Delete(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.respond(http.MethodDelete, "/products/{id}/translations/{lang}", http.StatusOK, true, "", nil)

	lang, err := h.dash.Translations().Delete(context.Background(), "p1", "de").Unwrap()

	require.NoError(t, err)
	assert.Equal(t, "de", lang)
	assert.Equal(t, "/products/p1/translations/de", h.backend.LastRequest(t).Path)
}

func TestTranslationService_SaveAll(t *testing.T) {
	t.Parallel()

	translations := []dashboard.Translation{
		{Language: "de", Name: "Becher"},
		{Language: "fr", Name: "Tasse"},
		{Language: "es", Name: "Taza"},
	}

	t.Run("single toast", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t)
		h.backend.Handle(http.MethodPut, "/products/{id}/translations/{lang}", echoTranslation)

		err := h.dash.Translations().SaveAll(context.Background(), "p1", translations)

		require.NoError(t, err)
		assert.Len(t, h.backend.Requests(), 3)
		assert.Equal(t, []api.Notification{
			{Message: "Translations saved successfully", Severity: api.SeveritySuccess},
		}, h.toasts.All())
	})

	t.Run("stops at first failure", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t)
		h.backend.Handle(http.MethodPut, "/products/{id}/translations/{lang}", func(w http.ResponseWriter, r *http.Request) {
			if chi.URLParam(r, "lang") == "fr" {
				testutil.WriteJSON(w, http.StatusBadRequest, map[string]any{
					"message": "Invalid translation",
					"errors":  map[string]any{"name": "Name is too long"},
				})
				return
			}
			echoTranslation(w, r)
		})

		err := h.dash.Translations().SaveAll(context.Background(), "p1", translations)

		var d *api.ErrorDescriptor
		require.ErrorAs(t, err, &d)
		assert.Equal(t, api.KindValidation, d.Kind)
		assert.Equal(t, []string{"Name is too long"}, d.FieldErrors["name"])
		assert.Len(t, h.backend.Requests(), 2)
		assert.Empty(t, h.toasts.All())
		snap := h.state.Snapshot()
		require.NotNil(t, snap.Message)
		assert.Equal(t, "Invalid translation", *snap.Message)
		assert.Equal(t, 1, h.state.Writes())
	})

	t.Run("nothing to save", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t)

		err := h.dash.Translations().SaveAll(context.Background(), "p1", nil)

		assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
		assert.Empty(t, h.backend.Requests())
	})
}

func TestTranslationService_Languages(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.respond(http.MethodGet, "/languages", http.StatusOK, true, "", []dashboard.Language{
		{Code: "en", Name: "English", IsDefault: true},
		{Code: "de", Name: "Deutsch"},
	})

	languages, err := h.dash.Translations().Languages(context.Background(), api.Silent()).Unwrap()

	require.NoError(t, err)
	assert.Len(t, languages, 2)
	assert.Empty(t, h.toasts.All())
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/fred-engine/internal/fred"
)

func TestSearchOptionsFromFlags(t *testing.T) {
	require.NoError(t, searchCmd.Flags().Set("query", "mortgage rates"))
	require.NoError(t, searchCmd.Flags().Set("tags", "usa,weekly"))
	require.NoError(t, searchCmd.Flags().Set("limit", "5"))
	require.NoError(t, searchCmd.Flags().Set("filter-variable", "frequency"))
	require.NoError(t, searchCmd.Flags().Set("filter-value", "Weekly"))

	assert.Equal(t, fred.SearchOptions{
		SearchText:     "mortgage rates",
		TagNames:       "usa,weekly",
		Limit:          5,
		FilterVariable: "frequency",
		FilterValue:    "Weekly",
	}, searchOptionsFromFlags(searchCmd))
}

func TestInfoCommandEndToEnd(t *testing.T) {
	var gotKey, gotID string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("api_key")
		gotID = r.URL.Query().Get("series_id")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"seriess":[{"id":"DGS10","title":"Market Yield on U.S. Treasury Securities at 10-Year Constant Maturity",
			"observation_start":"1962-01-02","observation_end":"2026-10-16","frequency":"Daily","frequency_short":"D",
			"units":"Percent","units_short":"%","seasonal_adjustment":"Not Seasonally Adjusted","seasonal_adjustment_short":"NSA",
			"last_updated":"2026-10-17 15:16:01-05","popularity":97}]}`)
	}))
	defer ts.Close()

	chdirForTest(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("FRED_ENGINE_FRED_BASE_URL", ts.URL)
	t.Setenv("FRED_ENGINE_FRED_API_KEY", "test-key")
	t.Setenv("FRED_ENGINE_LOG_LEVEL", "error")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"info", "DGS10"})
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetOut(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "DGS10", gotID)

	var detail map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &detail))
	assert.Equal(t, "DGS10", detail["id"])
	assert.Equal(t, "1962-01-02 to 2026-10-16", detail["observation_range"])
	assert.EqualValues(t, 97, detail["popularity"])
}

// chdirForTest mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

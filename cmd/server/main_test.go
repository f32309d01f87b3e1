package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roomcast/roomcast-server/pkg/routing"
	"github.com/roomcast/roomcast-server/pkg/telemetry/prometheus"
)

type testStruct struct {
	configFileName string
	configBody     string

	expectedError      error
	expectedConfigBody string
}

func TestGetConfigString(t *testing.T) {
	dir := t.TempDir()
	tests := []testStruct{
		{"", "", nil, ""},
		{"", "configBody", nil, "configBody"},
		{filepath.Join(dir, "file"), "configBody", nil, "configBody"},
		{filepath.Join(dir, "file"), "", nil, "fileContent"},
	}
	for _, test := range tests {
		func() {
			writeConfigFile(test, t)
			defer os.Remove(test.configFileName)

			configBody, err := getConfigString(test.configFileName, test.configBody)
			require.Equal(t, test.expectedError, err)
			require.Equal(t, test.expectedConfigBody, configBody)
		}()
	}
}

func TestShouldReturnErrorIfConfigFileDoesNotExist(t *testing.T) {
	configBody, err := getConfigString("notExistingFile", "")
	require.Error(t, err)
	require.Empty(t, configBody)
}

func TestFetchNodeInfo(t *testing.T) {
	t.Run("healthy node", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/healthz", r.URL.Path)
			_ = json.NewEncoder(w).Encode(routing.NodeInfo{
				ID:    "ND_test",
				IP:    "10.0.0.1",
				State: routing.NodeStateServing,
				Stats: &prometheus.NodeStats{NumWorkers: 2, NumRooms: 3, MemoryUsed: 1 << 20},
			})
		}))
		defer srv.Close()

		info, err := fetchNodeInfo(srv.URL + "/healthz")
		require.NoError(t, err)
		require.Equal(t, "ND_test", info.ID)
		require.Equal(t, int32(3), info.Stats.NumRooms)

		var out bytes.Buffer
		renderNodeInfo(&out, info)
		require.Contains(t, out.String(), "ND_test")
		require.Contains(t, out.String(), "serving")
	})

	t.Run("unhealthy node", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "node is shutting_down", http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		_, err := fetchNodeInfo(srv.URL + "/healthz")
		require.ErrorContains(t, err, "shutting_down")
	})

	t.Run("missing stats render placeholders", func(t *testing.T) {
		var out bytes.Buffer
		renderNodeInfo(&out, &routing.NodeInfo{ID: "ND_bare", State: routing.NodeStateStarting})
		require.Contains(t, out.String(), "ND_bare")
		require.Contains(t, out.String(), "-")
	})
}

func writeConfigFile(test testStruct, t *testing.T) {
	if test.configFileName != "" {
		d1 := []byte(test.expectedConfigBody)
		err := os.WriteFile(test.configFileName, d1, 0o644)
		require.NoError(t, err)
	}
}

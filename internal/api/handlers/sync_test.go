package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/statikk/ddmirror/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, url, body string) (*http.Response, map[string]any) {
	t.Helper()

	resp, err := http.Post(url, "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func getJSON(t *testing.T, url string, out any) *http.Response {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	return resp
}

func TestSyncEndpoints(t *testing.T) {
	ts := testutil.NewTestServer(t)

	// Full sync over a fresh database syncs everything.
	resp, body := postJSON(t, ts.APIURL("/sync/all"), ``)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "success", body["status"])
	assert.Len(t, body["reports"], 4)

	var statuses map[string]map[string]any
	resp = getJSON(t, ts.APIURL("/sync/status"), &statuses)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, statuses, 4)
	for entity, status := range statuses {
		assert.Equal(t, "13.9.1", status["currentVersion"], "entity %s", entity)
		assert.Equal(t, false, status["updateAvailable"], "entity %s", entity)
	}

	// Already current, so a repeat is a skip.
	resp, body = postJSON(t, ts.APIURL("/sync/champions"), `{}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "skipped", body["status"])

	// A forced background run is accepted with a job ID.
	resp, body = postJSON(t, ts.APIURL("/sync/champions"), `{"force": true, "background": true}`)
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Equal(t, "scheduled", body["status"])
	assert.NotEmpty(t, body["jobId"])
	ts.Runner.Wait()
}

func TestSyncEndpoints_UnknownEntity(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp, err := http.Post(ts.APIURL("/sync/wards"), "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSyncEndpoints_UpstreamDown(t *testing.T) {
	ts := testutil.NewTestServer(t)
	ts.Dragon.FailNext("versions.json", 10)

	// Single-type failure surfaces as a gateway error.
	resp, body := postJSON(t, ts.APIURL("/sync/items"), ``)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, "failed", body["status"])
}

func TestSyncEndpoints_ConcurrentSyncConflicts(t *testing.T) {
	ts := testutil.NewTestServer(t)

	entered, release := ts.Dragon.Stall("item.json")
	defer release()

	firstDone := make(chan struct{})
	go func() {
		defer close(firstDone)
		resp, err := http.Post(ts.APIURL("/sync/items"), "application/json", nil)
		if err == nil {
			resp.Body.Close()
		}
	}()
	<-entered

	// The in-flight sync holds the items guard, so a second request conflicts.
	resp, body := postJSON(t, ts.APIURL("/sync/items"), ``)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "busy", body["status"])

	release()
	<-firstDone
}

func TestSyncEndpoints_AggregateAlwaysResponds(t *testing.T) {
	ts := testutil.NewTestServer(t)
	ts.Dragon.FailNext("runesReforged.json", 10)

	resp, body := postJSON(t, ts.APIURL("/sync/all"), ``)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "partial_failure", body["status"])
}

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
)

// Dev helper: trigger a full sync against a locally running server and dump
// the per-entity outcome.
//
// Usage: go run scripts/trigger-sync.go [--force]

const apiBase = "http://localhost:8080/api/v1"

func main() {
	force := len(os.Args) > 1 && os.Args[1] == "--force"

	body, _ := json.Marshal(map[string]bool{"force": force})
	resp, err := http.Post(apiBase+"/sync/all", "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Fprintf(os.Stderr, "sync request failed: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	var report struct {
		Status  string `json:"status"`
		Message string `json:"message"`
		Reports []struct {
			EntityType    string `json:"entityType"`
			Status        string `json:"status"`
			Message       string `json:"message"`
			FailedRecords int    `json:"failedRecords"`
			Result        struct {
				Inserted int `json:"inserted"`
				Updated  int `json:"updated"`
				Removed  int `json:"removed"`
			} `json:"result"`
		} `json:"reports"`
	}
	raw, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(raw, &report); err != nil {
		fmt.Fprintf(os.Stderr, "unexpected response (%d): %s\n", resp.StatusCode, raw)
		os.Exit(1)
	}

	fmt.Printf("%s: %s\n", report.Status, report.Message)
	for _, r := range report.Reports {
		fmt.Printf("  %-16s %-16s +%d ~%d -%d (failed records: %d) %s\n",
			r.EntityType, r.Status,
			r.Result.Inserted, r.Result.Updated, r.Result.Removed,
			r.FailedRecords, r.Message)
	}

	status, err := http.Get(apiBase + "/sync/status")
	if err != nil {
		fmt.Fprintf(os.Stderr, "status request failed: %v\n", err)
		os.Exit(1)
	}
	defer status.Body.Close()

	var statuses map[string]struct {
		CurrentVersion  string `json:"currentVersion"`
		LatestVersion   string `json:"latestVersion"`
		UpdateAvailable bool   `json:"updateAvailable"`
	}
	if err := json.NewDecoder(status.Body).Decode(&statuses); err != nil {
		fmt.Fprintf(os.Stderr, "bad status response: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("versions:")
	for entity, s := range statuses {
		marker := ""
		if s.UpdateAvailable {
			marker = " (update available)"
		}
		fmt.Printf("  %-16s current=%s latest=%s%s\n", entity, s.CurrentVersion, s.LatestVersion, marker)
	}
}

//go:build basic || database

package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

var (
	// sharedTrajectoryPath holds the path to a shared trajectory binary built once for all tests.
	sharedTrajectoryPath string

	// buildOnce ensures we only build the binary once.
	buildOnce sync.Once

	// buildMutex protects the shared binary path.
	buildMutex sync.Mutex

	// tempDir holds the temp directory for cleanup.
	tempDir string
)

// TestMain handles setup and cleanup for all integration tests.
func TestMain(m *testing.M) {
	code := m.Run()

	// Cleanup the shared binary after all tests
	if tempDir != "" {
		_ = os.RemoveAll(tempDir)
	}

	os.Exit(code)
}

// getTrajectoryBinary returns the path to the trajectory binary, building it once if needed.
func getTrajectoryBinary() string {
	buildMutex.Lock()
	defer buildMutex.Unlock()

	buildOnce.Do(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "trajectory-integration-*")
		if err != nil {
			panic(fmt.Sprintf("failed to create temp dir: %v", err))
		}

		binPath := filepath.Join(tempDir, "trajectory")
		buildCmd := exec.Command("go", "build", "-o", binPath, ".")
		buildCmd.Dir = ".." // Build from parent directory (project root)
		if err := buildCmd.Run(); err != nil {
			panic(fmt.Sprintf("failed to build trajectory: %v", err))
		}

		sharedTrajectoryPath = binPath
	})

	return sharedTrajectoryPath
}

// feedCountry is one country served by the fake upstream feed.
type feedCountry struct {
	Slug  string
	Name  string
	Start string
	Cases []int64
}

var feedCountries = []feedCountry{
	{Slug: "italy", Name: "Italy", Start: "2020-01-31", Cases: []int64{2, 2, 3, 3, 10, 20, 40, 80, 150, 300}},
	{Slug: "united-states", Name: "United States of America", Start: "2020-01-21", Cases: []int64{1, 1, 2, 2, 5, 5, 5, 6, 8, 12, 20, 35}},
	{Slug: "korea-south", Name: "Korea (South)", Start: "2020-01-20", Cases: []int64{1, 1, 1, 2, 3, 4, 6, 9, 15, 24}},
}

// newFeedServer serves a covid19api-compatible summary and day-one histories.
func newFeedServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/summary", func(w http.ResponseWriter, _ *http.Request) {
		type entry struct {
			Country        string
			Slug           string
			TotalConfirmed int64
		}
		summary := struct{ Countries []entry }{}
		summary.Countries = append(summary.Countries, entry{Country: "Sentinel", Slug: "-sentinel"})
		for _, c := range feedCountries {
			summary.Countries = append(summary.Countries, entry{Country: c.Name, Slug: c.Slug, TotalConfirmed: c.Cases[len(c.Cases)-1]})
		}
		_ = json.NewEncoder(w).Encode(summary)
	})
	mux.HandleFunc("/total/dayone/country/", func(w http.ResponseWriter, r *http.Request) {
		slug := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/total/dayone/country/"), "/status/confirmed")
		for _, c := range feedCountries {
			if c.Slug != slug {
				continue
			}
			start, _ := time.Parse("2006-01-02", c.Start)
			type record struct {
				Date  string
				Cases int64
			}
			records := make([]record, len(c.Cases))
			for i, n := range c.Cases {
				records[i] = record{Date: start.AddDate(0, 0, i).Format(time.RFC3339), Cases: n}
			}
			_ = json.NewEncoder(w).Encode(records)
			return
		}
		http.NotFound(w, r)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// runTrajectoryCommand runs the binary in an isolated working directory with
// the feed URL and extra environment, returning its combined output.
func runTrajectoryCommand(t *testing.T, dir, feedURL string, env []string, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(getTrajectoryBinary(), args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"HOME="+dir,
		"TRAJECTORY_API_URL="+feedURL,
		"TRAJECTORY_EMOJI=no",
		"TRAJECTORY_COLOR=no",
	)
	cmd.Env = append(cmd.Env, env...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
	}
	return string(output), err
}

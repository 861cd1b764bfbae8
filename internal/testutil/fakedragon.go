package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// FakeDragon is an in-process stand-in for the Data Dragon CDN. Fixture
// payloads are mutable so tests can publish a new version, change records, or
// inject transient failures mid-test.
type FakeDragon struct {
	Server *httptest.Server

	mu        sync.Mutex
	versions  []string
	published map[string]bool
	champions map[string]json.RawMessage
	items     map[string]json.RawMessage
	runePaths []json.RawMessage
	spells    map[string]json.RawMessage
	failNext  map[string]int
	stall     *stallPoint
	hits      map[string]int
}

type stallPoint struct {
	fragment string
	entered  chan struct{}
	release  chan struct{}
}

func NewFakeDragon(t *testing.T) *FakeDragon {
	t.Helper()

	fd := &FakeDragon{
		published: map[string]bool{},
		champions: map[string]json.RawMessage{},
		items:     map[string]json.RawMessage{},
		spells:    map[string]json.RawMessage{},
		failNext:  map[string]int{},
		hits:      map[string]int{},
	}
	fd.Server = httptest.NewServer(http.HandlerFunc(fd.handle))
	t.Cleanup(fd.Server.Close)
	return fd
}

func (fd *FakeDragon) BaseURL() string {
	return fd.Server.URL
}

// SetVersions replaces the published version list, newest first.
func (fd *FakeDragon) SetVersions(versions ...string) {
	fd.mu.Lock()
	defer fd.mu.Unlock()
	fd.versions = versions
	fd.published = make(map[string]bool, len(versions))
	for _, v := range versions {
		fd.published[v] = true
	}
}

// Unpublish keeps a version in the list but makes its data URLs 404, like a
// release that is announced before the CDN has it.
func (fd *FakeDragon) Unpublish(version string) {
	fd.mu.Lock()
	defer fd.mu.Unlock()
	fd.published[version] = false
}

func (fd *FakeDragon) SetChampion(id, raw string) {
	fd.mu.Lock()
	defer fd.mu.Unlock()
	fd.champions[id] = json.RawMessage(raw)
}

func (fd *FakeDragon) RemoveChampion(id string) {
	fd.mu.Lock()
	defer fd.mu.Unlock()
	delete(fd.champions, id)
}

func (fd *FakeDragon) SetItem(id, raw string) {
	fd.mu.Lock()
	defer fd.mu.Unlock()
	fd.items[id] = json.RawMessage(raw)
}

func (fd *FakeDragon) RemoveItem(id string) {
	fd.mu.Lock()
	defer fd.mu.Unlock()
	delete(fd.items, id)
}

func (fd *FakeDragon) SetRunePaths(raws ...string) {
	fd.mu.Lock()
	defer fd.mu.Unlock()
	fd.runePaths = fd.runePaths[:0]
	for _, raw := range raws {
		fd.runePaths = append(fd.runePaths, json.RawMessage(raw))
	}
}

func (fd *FakeDragon) SetSpell(id, raw string) {
	fd.mu.Lock()
	defer fd.mu.Unlock()
	fd.spells[id] = json.RawMessage(raw)
}

// FailNext makes the next n requests whose path contains the fragment return
// a 500.
func (fd *FakeDragon) FailNext(pathFragment string, n int) {
	fd.mu.Lock()
	defer fd.mu.Unlock()
	fd.failNext[pathFragment] = n
}

// Stall makes requests whose path contains the fragment block until release
// is called. The entered channel receives once per blocked request, so a test
// can wait for a request to be in flight before acting. release is safe to
// call more than once.
func (fd *FakeDragon) Stall(pathFragment string) (entered <-chan struct{}, release func()) {
	s := &stallPoint{
		fragment: pathFragment,
		entered:  make(chan struct{}, 16),
		release:  make(chan struct{}),
	}
	fd.mu.Lock()
	fd.stall = s
	fd.mu.Unlock()

	var once sync.Once
	return s.entered, func() {
		once.Do(func() {
			fd.mu.Lock()
			fd.stall = nil
			fd.mu.Unlock()
			close(s.release)
		})
	}
}

// Hits counts requests whose path contains the fragment.
func (fd *FakeDragon) Hits(pathFragment string) int {
	fd.mu.Lock()
	defer fd.mu.Unlock()
	total := 0
	for path, n := range fd.hits {
		if strings.Contains(path, pathFragment) {
			total += n
		}
	}
	return total
}

// SeedDefaults loads a small consistent fixture set for version 13.9.1.
func (fd *FakeDragon) SeedDefaults() {
	fd.SetVersions("13.9.1")
	fd.SetChampion("Aatrox", ChampionAatroxJSON)
	fd.SetChampion("Ahri", ChampionAhriJSON)
	fd.SetItem("1001", ItemBootsJSON)
	fd.SetItem("3006", ItemGreavesJSON)
	fd.SetItem("6672", ItemKrakenJSON)
	fd.SetRunePaths(RunePathDominationJSON, RunePathPrecisionJSON)
	fd.SetSpell("SummonerFlash", SpellFlashJSON)
	fd.SetSpell("SummonerDot", SpellIgniteJSON)
}

func (fd *FakeDragon) handle(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	fd.mu.Lock()
	fd.hits[path]++
	failed := false
	for fragment, n := range fd.failNext {
		if n > 0 && strings.Contains(path, fragment) {
			fd.failNext[fragment] = n - 1
			failed = true
			break
		}
	}
	stall := fd.stall
	fd.mu.Unlock()

	if failed {
		http.Error(w, "upstream exploded", http.StatusInternalServerError)
		return
	}
	// Block outside the mutex so a stalled request does not freeze the server.
	if stall != nil && strings.Contains(path, stall.fragment) {
		select {
		case stall.entered <- struct{}{}:
		default:
		}
		<-stall.release
	}

	fd.mu.Lock()
	defer fd.mu.Unlock()

	if path == "/api/versions.json" {
		writeFixture(w, fd.versions)
		return
	}

	// /cdn/{version}/data/{lang}/...
	parts := strings.Split(strings.TrimPrefix(path, "/"), "/")
	if len(parts) < 5 || parts[0] != "cdn" || parts[2] != "data" {
		http.NotFound(w, r)
		return
	}
	if !fd.published[parts[1]] {
		http.NotFound(w, r)
		return
	}

	switch {
	case len(parts) == 5 && parts[4] == "champion.json":
		index := map[string]json.RawMessage{}
		for id := range fd.champions {
			index[id] = json.RawMessage(fmt.Sprintf(`{"id":%q}`, id))
		}
		writeFixture(w, map[string]any{"data": index})
	case len(parts) == 6 && parts[4] == "champion":
		id := strings.TrimSuffix(parts[5], ".json")
		raw, ok := fd.champions[id]
		if !ok {
			http.NotFound(w, r)
			return
		}
		writeFixture(w, map[string]any{"data": map[string]json.RawMessage{id: raw}})
	case len(parts) == 5 && parts[4] == "item.json":
		writeFixture(w, map[string]any{"data": fd.items})
	case len(parts) == 5 && parts[4] == "runesReforged.json":
		paths := fd.runePaths
		if paths == nil {
			paths = []json.RawMessage{}
		}
		writeFixture(w, paths)
	case len(parts) == 5 && parts[4] == "summoner.json":
		writeFixture(w, map[string]any{"data": fd.spells})
	default:
		http.NotFound(w, r)
	}
}

func writeFixture(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

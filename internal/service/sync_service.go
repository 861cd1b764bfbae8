package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/statikk/ddmirror/internal/datadragon"
	"github.com/statikk/ddmirror/internal/domain"
	"github.com/statikk/ddmirror/internal/repository"
	"github.com/statikk/ddmirror/internal/task"
)

// SyncService orchestrates the fetch-normalize-write pipeline. At most one
// sync per entity type runs at a time; a second request for a busy type is
// rejected with ErrSyncInProgress instead of queueing.
type SyncService struct {
	repos  *repository.Repositories
	dragon *datadragon.Client
	runner task.Runner

	guards map[domain.EntityType]*sync.Mutex
}

func NewSyncService(repos *repository.Repositories, dragon *datadragon.Client, runner task.Runner) *SyncService {
	guards := make(map[domain.EntityType]*sync.Mutex, len(domain.AllEntityTypes()))
	for _, et := range domain.AllEntityTypes() {
		guards[et] = &sync.Mutex{}
	}
	return &SyncService{
		repos:  repos,
		dragon: dragon,
		runner: runner,
		guards: guards,
	}
}

// NeedsSync reports whether the stored version for an entity type lags the
// latest published version.
func (s *SyncService) NeedsSync(ctx context.Context, entityType domain.EntityType) (bool, error) {
	latest, err := s.dragon.LatestVersion(ctx)
	if err != nil {
		return false, err
	}
	current, err := s.repos.Version.Current(ctx, entityType)
	if err != nil {
		return false, err
	}
	return current != latest, nil
}

// SyncOne syncs a single entity type. With background set, the work is handed
// to the runner and a scheduled report with a job ID returns immediately; the
// detached run gets a fresh context so an HTTP disconnect cannot abort it.
func (s *SyncService) SyncOne(ctx context.Context, entityType domain.EntityType, force, background bool) *domain.SyncReport {
	if background {
		jobID := uuid.NewString()
		s.runner.Submit(func() {
			report := s.syncInline(context.Background(), entityType, force)
			log.Printf("INFO [sync.%s] background job %s finished: %s (%+v)", entityType, jobID, report.Status, report.Result)
		})
		return &domain.SyncReport{
			EntityType: entityType,
			Status:     domain.SyncScheduled,
			Message:    fmt.Sprintf("%s sync scheduled", entityType),
			JobID:      jobID,
		}
	}
	return s.syncInline(ctx, entityType, force)
}

// SyncAll syncs every entity type sequentially. One type failing does not stop
// the rest; the aggregate status reflects the mix of outcomes.
func (s *SyncService) SyncAll(ctx context.Context, force, background bool) *domain.AggregateReport {
	if background {
		jobID := uuid.NewString()
		s.runner.Submit(func() {
			report := s.syncAllInline(context.Background(), force)
			log.Printf("INFO [sync.all] background job %s finished: %s", jobID, report.Status)
		})
		return &domain.AggregateReport{
			Status:  domain.SyncScheduled,
			Message: "full sync scheduled",
			JobID:   jobID,
		}
	}
	return s.syncAllInline(ctx, force)
}

func (s *SyncService) syncAllInline(ctx context.Context, force bool) *domain.AggregateReport {
	var (
		reports []domain.SyncReport
		failed  int
		skipped int
		version string
	)
	for _, et := range domain.AllEntityTypes() {
		report := s.syncInline(ctx, et, force)
		reports = append(reports, *report)
		switch report.Status {
		case domain.SyncFailed, domain.SyncBusy:
			failed++
		case domain.SyncSkipped:
			skipped++
		}
		if report.CurrentVersion != "" {
			version = report.CurrentVersion
		}
	}

	agg := &domain.AggregateReport{
		CurrentVersion: version,
		Reports:        reports,
	}
	switch {
	case failed == len(reports):
		agg.Status = domain.SyncFailed
		agg.Message = "all entity types failed to sync"
	case failed > 0:
		agg.Status = domain.SyncPartialFailure
		agg.Message = fmt.Sprintf("%d of %d entity types failed to sync", failed, len(reports))
	case skipped == len(reports):
		agg.Status = domain.SyncSkipped
		agg.Message = "all entity types already up to date"
	default:
		agg.Status = domain.SyncSuccess
		agg.Message = "sync complete"
	}
	return agg
}

// syncInline runs the full pipeline for one entity type under its guard.
// The version marker is only advanced after the writer transaction commits.
func (s *SyncService) syncInline(ctx context.Context, entityType domain.EntityType, force bool) *domain.SyncReport {
	guard := s.guards[entityType]
	if !guard.TryLock() {
		return &domain.SyncReport{
			EntityType: entityType,
			Status:     domain.SyncBusy,
			Message:    fmt.Sprintf("%s sync already in progress", entityType),
			Err:        domain.ErrSyncInProgress,
		}
	}
	defer guard.Unlock()

	latest, err := s.dragon.LatestVersion(ctx)
	if err != nil {
		return s.failedReport(entityType, fmt.Errorf("resolve latest version: %w", err))
	}
	current, err := s.repos.Version.Current(ctx, entityType)
	if err != nil {
		return s.failedReport(entityType, fmt.Errorf("load current version: %w", err))
	}
	if current == latest && !force {
		return &domain.SyncReport{
			EntityType:      entityType,
			Status:          domain.SyncSkipped,
			Message:         fmt.Sprintf("%s already at version %s", entityType, latest),
			PreviousVersion: current,
			CurrentVersion:  latest,
		}
	}

	var (
		result        domain.UpsertResult
		failedRecords int
	)
	switch entityType {
	case domain.EntityChampions:
		result, failedRecords, err = s.syncChampions(ctx, latest)
	case domain.EntityItems:
		result, failedRecords, err = s.syncItems(ctx, latest)
	case domain.EntityRunes:
		result, failedRecords, err = s.syncRunes(ctx, latest)
	case domain.EntitySummonerSpells:
		result, failedRecords, err = s.syncSummonerSpells(ctx, latest)
	default:
		err = fmt.Errorf("%w: %s", domain.ErrUnknownEntity, entityType)
	}
	if err != nil {
		return s.failedReport(entityType, err)
	}

	if err := s.repos.Version.Set(ctx, entityType, latest); err != nil {
		return s.failedReport(entityType, fmt.Errorf("record version marker: %w", err))
	}

	log.Printf("INFO [sync.%s] %s -> %s: +%d ~%d -%d (%d records failed)",
		entityType, orNone(current), latest, result.Inserted, result.Updated, result.Removed, failedRecords)
	return &domain.SyncReport{
		EntityType:      entityType,
		Status:          domain.SyncSuccess,
		Message:         fmt.Sprintf("%s synced to version %s", entityType, latest),
		PreviousVersion: current,
		CurrentVersion:  latest,
		FailedRecords:   failedRecords,
		Result:          result,
	}
}

func (s *SyncService) failedReport(entityType domain.EntityType, err error) *domain.SyncReport {
	log.Printf("ERROR [sync.%s]: %v", entityType, err)
	return &domain.SyncReport{
		EntityType: entityType,
		Status:     domain.SyncFailed,
		Message:    err.Error(),
		Err:        err,
	}
}

// syncChampions fetches the index, then each champion's detail record. A bad
// individual record is counted and skipped; the index failing, or every
// record failing, fails the type.
func (s *SyncService) syncChampions(ctx context.Context, version string) (domain.UpsertResult, int, error) {
	ids, err := s.dragon.FetchChampionIndex(ctx, version)
	if err != nil {
		return domain.UpsertResult{}, 0, fmt.Errorf("fetch champion index: %w", err)
	}
	sort.Strings(ids)

	var (
		champions []*domain.Champion
		failed    int
	)
	for _, id := range ids {
		raw, err := s.dragon.FetchChampionDetail(ctx, version, id)
		if err != nil {
			log.Printf("WARN [sync.champions] fetch %s failed, skipping: %v", id, err)
			failed++
			continue
		}
		champion, err := normalizeChampion(s.dragon, version, id, raw)
		if err != nil {
			log.Printf("WARN [sync.champions] normalize %s failed, skipping: %v", id, err)
			failed++
			continue
		}
		champions = append(champions, champion)
	}
	if len(ids) > 0 && len(champions) == 0 {
		return domain.UpsertResult{}, failed, fmt.Errorf("all %d champion records failed", failed)
	}

	result, err := s.repos.Champion.ReplaceAll(ctx, champions)
	if err != nil {
		return domain.UpsertResult{}, failed, err
	}
	return result, failed, nil
}

func (s *SyncService) syncItems(ctx context.Context, version string) (domain.UpsertResult, int, error) {
	records, err := s.dragon.FetchItems(ctx, version)
	if err != nil {
		return domain.UpsertResult{}, 0, fmt.Errorf("fetch items: %w", err)
	}

	payloadIDs := make(map[string]bool, len(records))
	ids := make([]string, 0, len(records))
	for id := range records {
		payloadIDs[id] = true
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var (
		items  []*domain.Item
		failed int
	)
	for _, id := range ids {
		item, err := normalizeItem(s.dragon, version, id, records[id], payloadIDs)
		if err != nil {
			log.Printf("WARN [sync.items] normalize %s failed, skipping: %v", id, err)
			failed++
			continue
		}
		items = append(items, item)
	}
	if len(ids) > 0 && len(items) == 0 {
		return domain.UpsertResult{}, failed, fmt.Errorf("all %d item records failed", failed)
	}

	result, err := s.repos.Item.ReplaceAll(ctx, items)
	if err != nil {
		return domain.UpsertResult{}, failed, err
	}
	return result, failed, nil
}

func (s *SyncService) syncRunes(ctx context.Context, version string) (domain.UpsertResult, int, error) {
	records, err := s.dragon.FetchRunes(ctx, version)
	if err != nil {
		return domain.UpsertResult{}, 0, fmt.Errorf("fetch runes: %w", err)
	}

	var (
		paths  []*domain.RunePath
		runes  []*domain.Rune
		failed int
	)
	for _, raw := range records {
		path, pathRunes, err := normalizeRunePath(version, raw)
		if err != nil {
			log.Printf("WARN [sync.runes] normalize path failed, skipping: %v", err)
			failed++
			continue
		}
		paths = append(paths, path)
		runes = append(runes, pathRunes...)
	}
	if len(records) > 0 && len(paths) == 0 {
		return domain.UpsertResult{}, failed, fmt.Errorf("all %d rune path records failed", failed)
	}

	result, err := s.repos.Rune.ReplaceAll(ctx, paths, runes)
	if err != nil {
		return domain.UpsertResult{}, failed, err
	}
	return result, failed, nil
}

func (s *SyncService) syncSummonerSpells(ctx context.Context, version string) (domain.UpsertResult, int, error) {
	records, err := s.dragon.FetchSummonerSpells(ctx, version)
	if err != nil {
		return domain.UpsertResult{}, 0, fmt.Errorf("fetch summoner spells: %w", err)
	}

	ids := make([]string, 0, len(records))
	for id := range records {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var (
		spells []*domain.SummonerSpell
		failed int
	)
	for _, id := range ids {
		spell, err := normalizeSummonerSpell(s.dragon, version, id, records[id])
		if err != nil {
			log.Printf("WARN [sync.summoner-spells] normalize %s failed, skipping: %v", id, err)
			failed++
			continue
		}
		spells = append(spells, spell)
	}
	if len(ids) > 0 && len(spells) == 0 {
		return domain.UpsertResult{}, failed, fmt.Errorf("all %d summoner spell records failed", failed)
	}

	result, err := s.repos.SummonerSpell.ReplaceAll(ctx, spells)
	if err != nil {
		return domain.UpsertResult{}, failed, err
	}
	return result, failed, nil
}

// Status reports every entity type's stored version against the latest
// published one. An unreachable upstream degrades the report instead of
// failing it: stored versions still return, with the latest column empty.
// A type that has never synced always reports an update available.
func (s *SyncService) Status(ctx context.Context) (map[domain.EntityType]domain.EntityStatus, error) {
	stored, err := s.repos.Version.All(ctx)
	if err != nil {
		return nil, err
	}
	byType := make(map[domain.EntityType]string, len(stored))
	for _, gv := range stored {
		byType[gv.EntityType] = gv.CurrentVersion
	}

	latest, err := s.dragon.LatestVersion(ctx)
	if err != nil {
		log.Printf("WARN [sync.status] latest version unavailable: %v", err)
		latest = ""
	}

	statuses := make(map[domain.EntityType]domain.EntityStatus, len(domain.AllEntityTypes()))
	for _, et := range domain.AllEntityTypes() {
		current := byType[et]
		statuses[et] = domain.EntityStatus{
			CurrentVersion:  current,
			LatestVersion:   latest,
			UpdateAvailable: current == "" || (latest != "" && current != latest),
		}
	}
	return statuses, nil
}

func orNone(version string) string {
	if version == "" {
		return "none"
	}
	return version
}

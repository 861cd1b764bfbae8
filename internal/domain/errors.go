package domain

import "errors"

// Upstream (Data Dragon) errors
var (
	ErrUpstreamUnavailable   = errors.New("upstream unavailable")
	ErrVersionNotFound       = errors.New("version not published upstream")
	ErrMalformedUpstreamData = errors.New("malformed upstream data")
)

// Sync errors
var (
	ErrNormalization  = errors.New("record failed normalization")
	ErrWriteConflict  = errors.New("write conflict")
	ErrSyncInProgress = errors.New("sync already in progress for this entity type")
	ErrUnknownEntity  = errors.New("unknown entity type")
)

// Lookup errors
var (
	ErrChampionNotFound      = errors.New("champion not found")
	ErrItemNotFound          = errors.New("item not found")
	ErrRunePathNotFound      = errors.New("rune path not found")
	ErrSummonerSpellNotFound = errors.New("summoner spell not found")
)

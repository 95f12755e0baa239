package subscriptions

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"subreddit-tracker/models/constants"
	settingsRepo "subreddit-tracker/repositories/settings"
	redditService "subreddit-tracker/services/reddit"

	"github.com/rs/zerolog/log"
)

// New loads the subscription list from storage. Both keys must have been
// seeded beforehand; a missing or malformed key is a configuration error,
// not something this service papers over with defaults.
func New(repo settingsRepo.Repository, client redditService.Client) (*Impl, error) {
	names, err := repo.Names()
	if err != nil {
		return nil, fmt.Errorf("failed to load subreddit names: %w", err)
	}

	enabled, err := repo.Enabled()
	if err != nil {
		return nil, fmt.Errorf("failed to load enabled flags: %w", err)
	}

	if len(names) != len(enabled) {
		return nil, fmt.Errorf("%w: %d names, %d flags", ErrLengthMismatch, len(names), len(enabled))
	}

	entries := make([]Entry, len(names))
	for i := range names {
		entries[i] = Entry{Name: names[i], Enabled: enabled[i]}
	}

	return &Impl{entries: entries, repo: repo, client: client}, nil
}

// Entries returns a snapshot copy of the current list.
func (service *Impl) Entries() []Entry {
	service.mu.RLock()
	defer service.mu.RUnlock()

	entries := make([]Entry, len(service.entries))
	copy(entries, service.entries)
	return entries
}

// Add appends an entry, re-sorts the list by name and persists both keys.
// Uniqueness is not checked here: Validate must have accepted the name first.
func (service *Impl) Add(name string, enabled bool) error {
	service.mu.Lock()
	defer service.mu.Unlock()

	service.entries = append(service.entries, Entry{Name: name, Enabled: enabled})
	sort.SliceStable(service.entries, func(i, j int) bool {
		return service.entries[i].Name < service.entries[j].Name
	})

	return service.persist()
}

// Remove deletes the entry at index and persists both keys. An out-of-range
// index is a caller bug and panics.
func (service *Impl) Remove(index int) error {
	service.mu.Lock()
	defer service.mu.Unlock()

	service.mustBeInRange(index)
	service.entries = append(service.entries[:index], service.entries[index+1:]...)

	return service.persist()
}

// SetEnabled flips one flag and persists only the enabled key; the names are
// untouched and not rewritten. An out-of-range index is a caller bug and panics.
func (service *Impl) SetEnabled(index int, enabled bool) error {
	service.mu.Lock()
	defer service.mu.Unlock()

	service.mustBeInRange(index)
	service.entries[index].Enabled = enabled

	if err := service.repo.SaveEnabled(service.enabledFlags()); err != nil {
		return fmt.Errorf("failed to persist enabled flags: %w", err)
	}

	return nil
}

// Selector joins the enabled names with '+' in list order, forming the
// multireddit selector; empty when nothing is enabled.
func (service *Impl) Selector() string {
	service.mu.RLock()
	defer service.mu.RUnlock()

	var names []string
	for _, entry := range service.entries {
		if entry.Enabled {
			names = append(names, entry.Name)
		}
	}

	return strings.Join(names, "+")
}

// Validate runs the pre-insertion checks in order and reports the first
// failure. The remote round trip happens outside the list lock; the caller
// always gets a definite Outcome, never an error, and nothing is added here.
// No retry and no timeout beyond the client's transport default.
func (service *Impl) Validate(ctx context.Context, name string) Outcome {
	if name == "" {
		return OutcomeEmptyString
	}

	if service.contains(name) {
		return OutcomeDuplicate
	}

	if _, err := service.client.ListingURL(name); err != nil {
		return OutcomeInvalidURL
	}

	listing, err := service.client.NewPosts(ctx, name)
	if err != nil {
		outcome := OutcomeNetworkError
		if errors.Is(err, redditService.ErrRemoteError) || errors.Is(err, redditService.ErrUnexpectedPayload) {
			outcome = OutcomeUnknownError
		}
		log.Warn().Err(err).
			Str(constants.LogSubreddit, name).
			Str(constants.LogOutcome, outcome.String()).
			Msgf("Subreddit validation failed")
		return outcome
	}

	if len(listing.Data.Children) == 0 {
		return OutcomeNoNewPosts
	}

	return OutcomeSuccess
}

func (service *Impl) contains(name string) bool {
	service.mu.RLock()
	defer service.mu.RUnlock()

	for _, entry := range service.entries {
		if strings.EqualFold(entry.Name, name) {
			return true
		}
	}

	return false
}

// persist mirrors both keys to storage. The two writes are independent
// upserts, best-effort rather than atomic. Callers hold the write lock.
func (service *Impl) persist() error {
	names := make([]string, len(service.entries))
	for i, entry := range service.entries {
		names[i] = entry.Name
	}

	if err := service.repo.SaveNames(names); err != nil {
		return fmt.Errorf("failed to persist subreddit names: %w", err)
	}

	if err := service.repo.SaveEnabled(service.enabledFlags()); err != nil {
		return fmt.Errorf("failed to persist enabled flags: %w", err)
	}

	return nil
}

func (service *Impl) enabledFlags() []bool {
	flags := make([]bool, len(service.entries))
	for i, entry := range service.entries {
		flags[i] = entry.Enabled
	}
	return flags
}

func (service *Impl) mustBeInRange(index int) {
	if index < 0 || index >= len(service.entries) {
		panic(fmt.Sprintf("subscriptions: index %d out of range with length %d", index, len(service.entries)))
	}
}

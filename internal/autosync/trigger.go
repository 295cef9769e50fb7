package autosync

import (
	"context"
	"fmt"
	"strings"

	"github.com/fbkclanna/vaultdvc/internal/dvc"
	"github.com/fbkclanna/vaultdvc/internal/metrics"
	"github.com/fbkclanna/vaultdvc/internal/settings"
	"github.com/fbkclanna/vaultdvc/internal/vault"
	"go.uber.org/zap"
)

// EmbedSource returns the embed links of a vault-relative note.
type EmbedSource interface {
	Embeds(note string) ([]string, error)
}

// Puller pulls tracked data.
type Puller interface {
	Pull(ctx context.Context, arg dvc.Argument, show bool) (string, error)
}

// Trigger reacts to file-activation events.
type Trigger struct {
	policy *settings.SyncPolicy
	index  *vault.Index
	embeds EmbedSource
	puller Puller
	log    *zap.Logger
}

// New creates a Trigger. The policy is read on every event.
func New(policy *settings.SyncPolicy, index *vault.Index, embeds EmbedSource, puller Puller, log *zap.Logger) *Trigger {
	if log == nil {
		log = zap.NewNop()
	}
	return &Trigger{
		policy: policy,
		index:  index,
		embeds: embeds,
		puller: puller,
		log:    log,
	}
}

// HandleOpen handles the activation of note. It returns the markers it
// pulled, which is empty when the event was skipped or nothing matched.
func (t *Trigger) HandleOpen(ctx context.Context, note string) ([]vault.MarkerFile, error) {
	log := t.log.With(zap.String("note", note))

	if err := t.index.Ensure(); err != nil {
		metrics.AutoSyncEvent("failed")
		return nil, fmt.Errorf("refreshing tracked file index: %w", err)
	}
	if !t.policy.AutoPull || t.index.Len() == 0 {
		log.Debug("auto-pull skipped", zap.Bool("autopull", t.policy.AutoPull), zap.Int("tracked", t.index.Len()))
		metrics.AutoSyncEvent("skipped")
		return nil, nil
	}

	links, err := t.embeds.Embeds(note)
	if err != nil {
		metrics.AutoSyncEvent("failed")
		return nil, fmt.Errorf("reading embeds of %s: %w", note, err)
	}

	markers := t.Resolve(links)
	if len(markers) == 0 {
		log.Debug("no tracked embeds", zap.Int("embeds", len(links)))
		metrics.AutoSyncEvent("no_match")
		return nil, nil
	}

	paths := make([]string, len(markers))
	for i, m := range markers {
		paths[i] = m.Path
	}
	log.Info("auto-pulling embeds", zap.Strings("markers", paths))
	if _, err := t.puller.Pull(ctx, dvc.Files(paths...), true); err != nil {
		metrics.AutoSyncEvent("failed")
		return markers, err
	}
	metrics.AutoSyncEvent("pulled")
	return markers, nil
}

// Resolve maps embed links to marker files. A link is considered only if it
// contains one of the allow-listed extensions anywhere in its text; it then
// resolves to the marker whose basename equals the link exactly.
func (t *Trigger) Resolve(links []string) []vault.MarkerFile {
	var markers []vault.MarkerFile
	for _, link := range links {
		if !allowed(link, t.policy.AutoPullExtensions) {
			continue
		}
		if m, ok := t.index.FindByBasename(link); ok {
			markers = append(markers, m)
		}
	}
	return markers
}

func allowed(link string, extensions []string) bool {
	for _, ext := range extensions {
		if strings.Contains(link, ext) {
			return true
		}
	}
	return false
}

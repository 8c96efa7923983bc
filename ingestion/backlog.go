package ingestion

import (
	"context"
	"sync"

	"github.com/projecthog/synergy/core"
)

// Profile is the author information resolved for a message. All fields are
// optional; display name wins over real name when both are set.
type Profile struct {
	DisplayName string
	RealName    string
	Email       string
}

// Directory resolves user ids to author profiles, typically against the
// chat platform's user API or a local export.
type Directory interface {
	Lookup(ctx context.Context, userID string) (*Profile, error)
}

// Result is the outcome of indexing one backlog message.
type Result struct {
	DocumentID string
	ChannelID  string
	TS         string
	Err        error
	Skipped    bool // blank message, nothing to index
}

// Report summarizes one backlog run.
type Report struct {
	Results []Result
}

// Indexed returns the number of messages successfully indexed.
func (r *Report) Indexed() int {
	n := 0
	for _, res := range r.Results {
		if res.Err == nil && !res.Skipped {
			n++
		}
	}
	return n
}

// Skipped returns the number of messages skipped as blank.
func (r *Report) Skipped() int {
	n := 0
	for _, res := range r.Results {
		if res.Skipped {
			n++
		}
	}
	return n
}

// Failed returns the number of messages that failed to index.
func (r *Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Err != nil {
			n++
		}
	}
	return n
}

// IndexBacklog indexes a batch of historical messages. Author profiles for
// all distinct user ids are resolved concurrently up front; the messages
// themselves are then indexed strictly in input order, one at a time, so a
// chronologically sorted backlog yields monotone checkpoints.
//
// Indexing is best-effort per message: a failure is recorded in the report
// and the run continues. Only context cancellation aborts the run early,
// and that error is returned alongside the partial report.
func (p *Pipeline) IndexBacklog(ctx context.Context, msgs []core.SourceMessage, dir Directory) (*Report, error) {
	if dir == nil {
		return nil, ErrDirectoryRequired
	}

	profiles := p.resolveAuthors(ctx, msgs, dir)

	report := &Report{Results: make([]Result, 0, len(msgs))}
	lastTS := make(map[string]string)

	for _, msg := range msgs {
		if err := ctx.Err(); err != nil {
			p.saveCheckpoints(lastTS)
			return report, err
		}

		if prof, ok := profiles[msg.UserID]; ok {
			msg.UserName = authorName(prof)
			if prof != nil && prof.Email != "" {
				msg.UserEmail = prof.Email
			}
		}

		doc := core.BuildDocument(msg)
		if doc == nil {
			report.Results = append(report.Results, Result{
				ChannelID: msg.ChannelID,
				TS:        msg.TS,
				Skipped:   true,
			})
			continue
		}

		res := Result{DocumentID: doc.ID, ChannelID: msg.ChannelID, TS: msg.TS}
		if err := p.IndexDocument(ctx, doc); err != nil {
			res.Err = err
			p.logger.Warn("backlog message failed", "id", doc.ID, "err", err)
		} else {
			lastTS[msg.ChannelID] = msg.TS
		}
		report.Results = append(report.Results, res)
	}

	p.saveCheckpoints(lastTS)
	return report, nil
}

// resolveAuthors looks up every distinct author of msgs over the worker
// pool. Lookup failures fall back to the placeholder name; a backlog import
// never stalls on a missing user record.
func (p *Pipeline) resolveAuthors(ctx context.Context, msgs []core.SourceMessage, dir Directory) map[string]*Profile {
	ids := make(map[string]struct{})
	for _, msg := range msgs {
		if msg.UserID != "" && msg.UserName == "" {
			ids[msg.UserID] = struct{}{}
		}
	}

	profiles := make(map[string]*Profile, len(ids))
	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for id := range ids {
		wg.Add(1)
		submitErr := p.pool.Submit(func() {
			defer wg.Done()

			prof, err := dir.Lookup(ctx, id)
			if err != nil {
				p.logger.Warn("author lookup failed", "user", id, "err", err)
				prof = nil
			}
			mu.Lock()
			profiles[id] = prof
			mu.Unlock()
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			profiles[id] = nil
			mu.Unlock()
		}
	}
	wg.Wait()

	return profiles
}

// saveCheckpoints persists the highest successfully indexed timestamp per
// channel. Best-effort: the rows are already in the vector store.
func (p *Pipeline) saveCheckpoints(lastTS map[string]string) {
	if p.checkpoints == nil || len(lastTS) == 0 {
		return
	}

	ctx := context.Background()
	for channelID, ts := range lastTS {
		cp := &core.Checkpoint{ChannelID: channelID, LastTS: ts}
		if err := p.checkpoints.SaveCheckpoint(ctx, cp); err != nil {
			p.logger.Warn("failed to save checkpoint", "channel", channelID, "err", err)
		}
	}
}

const unknownAuthor = "Unknown"

// authorName picks the display name for a resolved profile, preferring the
// user-chosen display name over the real name.
func authorName(prof *Profile) string {
	if prof == nil {
		return unknownAuthor
	}
	if prof.DisplayName != "" {
		return prof.DisplayName
	}
	if prof.RealName != "" {
		return prof.RealName
	}
	return unknownAuthor
}

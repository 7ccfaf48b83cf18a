package worlds

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/KirkDiggler/starjumper/internal/errors"
	redisclient "github.com/KirkDiggler/starjumper/internal/redis"
)

// scanBatch is the COUNT hint passed to SCAN.
const scanBatch = 100

// CheckReport lists the problems found in stored world data.
type CheckReport struct {
	// Number of world keys examined
	Checked int

	// World keys whose value does not decode or holds an impossible profile
	Corrupt []string

	// Subsector index entries naming a world that is not stored, keyed by
	// index key
	Dangling map[string][]string

	// True when the problems above were removed
	Repaired bool
}

// HasProblems reports whether anything needs repair.
func (r *CheckReport) HasProblems() bool {
	return len(r.Corrupt) > 0 || len(r.Dangling) > 0
}

// CheckRedis scans the stored worlds and subsector indexes. With repair set
// it deletes corrupt worlds and removes dangling index entries.
func CheckRedis(ctx context.Context, client redisclient.Client, repair bool) (*CheckReport, error) {
	if client == nil {
		return nil, errors.InvalidArgument("client cannot be nil")
	}

	report := &CheckReport{Dangling: make(map[string][]string)}
	corrupt := make(map[string]bool)

	iter := client.Scan(ctx, 0, worldKeyPrefix+"*", scanBatch).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		report.Checked++

		raw, err := client.Get(ctx, key).Result()
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read world").WithMeta("key", key)
		}

		var data WorldData
		if err := json.Unmarshal([]byte(raw), &data); err != nil || data.World == nil {
			slog.Warn("Undecodable world", "key", key)
			report.Corrupt = append(report.Corrupt, key)
			corrupt[key] = true
			continue
		}
		if err := data.World.Profile.Validate(); err != nil {
			slog.Warn("Impossible world profile", "key", key, "error", err)
			report.Corrupt = append(report.Corrupt, key)
			corrupt[key] = true
		}
	}
	if err := iter.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to scan worlds")
	}

	indexes := client.Scan(ctx, 0, subsectorKeyPrefix+"*"+membersKeySuffix, scanBatch).Iterator()
	for indexes.Next(ctx) {
		indexKey := indexes.Val()
		ids, err := client.SMembers(ctx, indexKey).Result()
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read subsector index").WithMeta("key", indexKey)
		}
		for _, id := range ids {
			n, err := client.Exists(ctx, worldKey(id)).Result()
			if err != nil {
				return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to check world").WithMeta("world_id", id)
			}
			if n == 0 || corrupt[worldKey(id)] {
				report.Dangling[indexKey] = append(report.Dangling[indexKey], id)
			}
		}
	}
	if err := indexes.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to scan subsector indexes")
	}

	if !repair || !report.HasProblems() {
		return report, nil
	}

	pipe := client.TxPipeline()
	if len(report.Corrupt) > 0 {
		pipe.Del(ctx, report.Corrupt...)
	}
	for indexKey, ids := range report.Dangling {
		members := make([]interface{}, len(ids))
		for i, id := range ids {
			members[i] = id
		}
		pipe.SRem(ctx, indexKey, members...)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to repair world data")
	}

	slog.Info("World data repaired",
		"corrupt_deleted", len(report.Corrupt),
		"dangling_indexes", len(report.Dangling))

	report.Repaired = true
	return report, nil
}

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/starjumper/internal/description"
	"github.com/KirkDiggler/starjumper/internal/entities"
	"github.com/KirkDiggler/starjumper/internal/errors"
)

// Output formats
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func validateFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatYAML:
		return nil
	default:
		return errors.InvalidArgumentf("unknown output format %q (expected text, json or yaml)", format)
	}
}

// worldDocument is the structured form printed for json and yaml output.
type worldDocument struct {
	entities.World `yaml:",inline"`
	UWP            string `json:"uwp" yaml:"uwp"`
	Seed           uint64 `json:"seed,omitempty" yaml:"seed,omitempty"`
	SubsectorID    string `json:"subsector_id,omitempty" yaml:"subsector_id,omitempty"`
}

// writeWorlds prints worlds in the requested format. Text output is one
// summary line per world, with a header when header is set.
func writeWorlds(w io.Writer, format string, header bool, docs []worldDocument) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		var v any = docs
		if len(docs) == 1 && !header {
			v = docs[0]
		}
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "failed to encode json")
		}
		return nil
	case formatYAML:
		enc := yaml.NewEncoder(w)
		defer func() { _ = enc.Close() }()
		var v any = docs
		if len(docs) == 1 && !header {
			v = docs[0]
		}
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "failed to encode yaml")
		}
		return nil
	default:
		if header {
			if _, err := fmt.Fprintln(w, description.Header()); err != nil {
				return err
			}
		}
		for _, doc := range docs {
			if _, err := fmt.Fprintln(w, description.Render(&doc.World)); err != nil {
				return err
			}
		}
		return nil
	}
}

func newDocument(w *entities.World, seed uint64, subsectorID string) worldDocument {
	return worldDocument{World: *w, UWP: w.UWP(), Seed: seed, SubsectorID: subsectorID}
}

// writeSubsector prints a subsector's worlds. Text output starts with a
// title line naming the seed so the map can be regenerated.
func writeSubsector(w io.Writer, format string, sub *entities.Subsector, list []*entities.World) error {
	if format == formatText {
		_, err := fmt.Fprintf(w, "%s (%s, seed %d, id %s)\n", sub.Name, sub.Density, sub.Seed, sub.ID)
		if err != nil {
			return err
		}
	}

	docs := make([]worldDocument, len(list))
	for i, world := range list {
		docs[i] = newDocument(world, sub.Seed, sub.ID)
	}
	return writeWorlds(w, format, true, docs)
}

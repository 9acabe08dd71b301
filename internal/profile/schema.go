package profile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const (
	playersDataSchemaURL = "schema://players_data.json"
	profileSchemaURL     = "schema://profile.json"
)

// playersDataSchema describes the players_data envelope. Profiles are
// checked one by one against profileSchema so a bad record only costs
// itself.
var playersDataSchema = map[string]any{
	"type": "object",
}

// profileSchema describes a single stored profile.
var profileSchema = map[string]any{
	"type":     "object",
	"required": []any{"createdAt", "history"},
	"properties": map[string]any{
		"createdAt":    map[string]any{"type": "string"},
		"lastActivity": map[string]any{"type": "string"},
		"history": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"id", "result", "timestamp", "date"},
				"properties": map[string]any{
					"id":        map[string]any{"type": "string"},
					"result":    map[string]any{"type": "string"},
					"timestamp": map[string]any{"type": "string"},
					"date":      map[string]any{"type": "string"},
				},
			},
		},
	},
}

type compiledSchemas struct {
	playersData *jsonschema.Schema
	profile     *jsonschema.Schema
}

var (
	compileOnce sync.Once
	compiled    compiledSchemas
	compileErr  error
)

func schemas() (compiledSchemas, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource(playersDataSchemaURL, playersDataSchema); err != nil {
			compileErr = fmt.Errorf("add players data schema: %w", err)
			return
		}
		if err := c.AddResource(profileSchemaURL, profileSchema); err != nil {
			compileErr = fmt.Errorf("add profile schema: %w", err)
			return
		}
		if compiled.playersData, compileErr = c.Compile(playersDataSchemaURL); compileErr != nil {
			return
		}
		compiled.profile, compileErr = c.Compile(profileSchemaURL)
	})
	return compiled, compileErr
}

// splitPlayersData checks that raw is a JSON object and returns its
// members undecoded.
func splitPlayersData(raw string) (map[string]json.RawMessage, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	sch, err := schemas()
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	if err := sch.playersData.Validate(doc); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}
	var members map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &members); err != nil {
		return nil, fmt.Errorf("decode players data: %w", err)
	}
	return members, nil
}

// decodeProfile validates one stored profile and decodes it.
func decodeProfile(raw json.RawMessage) (*Profile, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	sch, err := schemas()
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	if err := sch.profile.Validate(doc); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}
	var p Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &p, nil
}

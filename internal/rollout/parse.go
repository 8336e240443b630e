package rollout

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"math"
	"os"
)

// envelope is the outer JSON structure of every rollout line. Payload stays
// raw so unknown record types cost nothing to skip.
type envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type sessionMetaPayload struct {
	ID            string `json:"id"`
	CLIVersion    string `json:"cli_version"`
	ModelProvider string `json:"model_provider"`
}

type turnContextPayload struct {
	Model string `json:"model"`
}

type tokenCountPayload struct {
	Type string `json:"type"`
	// Newer schema nests the usage under "info"; legacy top-level
	// token_count records carry the fields directly on the payload.
	Info       *tokenCountInfo `json:"info"`
	RateLimits *rateLimitsBody `json:"rate_limits"`
	tokenCountInfo
}

type tokenCountInfo struct {
	TotalTokenUsage struct {
		InputTokens  int64 `json:"input_tokens"`
		OutputTokens int64 `json:"output_tokens"`
		TotalTokens  int64 `json:"total_tokens"`
	} `json:"total_token_usage"`
	ModelContextWindow *int64 `json:"model_context_window"`
}

type rateLimitsBody struct {
	Primary   *rateLimitWindow `json:"primary"`
	Secondary *rateLimitWindow `json:"secondary"`
}

type rateLimitWindow struct {
	UsedPercent *float64 `json:"used_percent"`
}

// ParseFile folds one rollout file into a snapshot. Malformed lines and
// unknown record types are skipped; later matching records overwrite earlier
// ones, so the snapshot reflects the newest state in the file.
func ParseFile(path string) (Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return Snapshot{}, err
	}
	defer f.Close()

	var snap Snapshot
	reader := bufio.NewReaderSize(f, 64*1024)
	for {
		line, err := reader.ReadBytes('\n')
		if err != nil && err != io.EOF {
			return Snapshot{}, err
		}
		line = bytes.TrimSpace(line)
		if len(line) > 0 {
			applyLine(line, &snap)
		}
		if err == io.EOF {
			break
		}
	}

	if snap.Model == "" && snap.Session != nil {
		snap.Model = snap.Session.ModelProvider
	}
	return snap, nil
}

func applyLine(line []byte, snap *Snapshot) {
	var env envelope
	if json.Unmarshal(line, &env) != nil {
		return
	}

	switch env.Type {
	case "session_meta":
		var payload sessionMetaPayload
		if json.Unmarshal(env.Payload, &payload) != nil {
			return
		}
		snap.Session = &SessionMeta{
			ThreadID:      payload.ID,
			CLIVersion:    payload.CLIVersion,
			ModelProvider: payload.ModelProvider,
		}
		if snap.Model == "" {
			snap.Model = payload.ModelProvider
		}
	case "turn_context":
		var payload turnContextPayload
		if json.Unmarshal(env.Payload, &payload) != nil {
			return
		}
		if snap.Model == "" && payload.Model != "" {
			snap.Model = payload.Model
		}
	case "event_msg":
		var payload tokenCountPayload
		if json.Unmarshal(env.Payload, &payload) != nil {
			return
		}
		if payload.Type != "token_count" {
			return
		}
		applyTokenCount(payload, snap)
	case "token_count":
		var payload tokenCountPayload
		if json.Unmarshal(env.Payload, &payload) != nil {
			return
		}
		applyTokenCount(payload, snap)
	}
}

func applyTokenCount(payload tokenCountPayload, snap *Snapshot) {
	info := payload.tokenCountInfo
	if payload.Info != nil {
		info = *payload.Info
	}

	usage := &TokenUsage{
		InputTokens:        info.TotalTokenUsage.InputTokens,
		OutputTokens:       info.TotalTokenUsage.OutputTokens,
		TotalTokens:        info.TotalTokenUsage.TotalTokens,
		ModelContextWindow: info.ModelContextWindow,
	}
	if w := info.ModelContextWindow; w != nil && *w > 0 {
		used := int64(math.Round(float64(usage.TotalTokens) / float64(*w) * 100))
		if used < 0 {
			used = 0
		}
		if used > 100 {
			used = 100
		}
		remaining := 100 - used
		usage.UsedPercent = &used
		usage.RemainingPercent = &remaining
	}
	snap.Usage = usage

	if rl := payload.RateLimits; rl != nil {
		limits := &RateLimits{}
		if rl.Primary != nil {
			limits.PrimaryUsedPercent = rl.Primary.UsedPercent
		}
		if rl.Secondary != nil {
			limits.SecondaryUsedPercent = rl.Secondary.UsedPercent
		}
		if limits.PrimaryUsedPercent != nil || limits.SecondaryUsedPercent != nil {
			snap.Limits = limits
		}
	}
}

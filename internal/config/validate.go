package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Review.validate(); err != nil {
		return fmt.Errorf("review: %w", err)
	}

	if err := c.Identity.validate(); err != nil {
		return fmt.Errorf("identity: %w", err)
	}

	if err := c.Relevance.validate(); err != nil {
		return fmt.Errorf("relevance: %w", err)
	}

	if c.Embedding.Enabled() && c.Embedding.MaxInputChars <= 0 {
		return fmt.Errorf("embedding: max_input_chars must be > 0 (got %d)", c.Embedding.MaxInputChars)
	}

	return nil
}

func (r *ReviewConfig) validate() error {
	if r.LockTimeout <= 0 {
		return fmt.Errorf("lock_timeout must be > 0 (got %v)", r.LockTimeout)
	}
	if r.NarrativeQuoteMax <= 0 {
		return fmt.Errorf("narrative_quote_max must be > 0 (got %d)", r.NarrativeQuoteMax)
	}
	if strings.TrimSpace(r.NarratorName) == "" {
		return fmt.Errorf("narrator_name is required")
	}
	return nil
}

func (i *IdentityConfig) validate() error {
	switch i.Scorer {
	case "levenshtein", "token_set":
	default:
		return fmt.Errorf("scorer must be levenshtein or token_set (got %q)", i.Scorer)
	}
	if i.FuzzyMaxDistance < 0 || i.FuzzyMaxDistance > 1 {
		return fmt.Errorf("fuzzy_max_distance must be within [0,1] (got %v)", i.FuzzyMaxDistance)
	}
	if i.ConfirmationConfidence < 0 || i.ConfirmationConfidence > 1 {
		return fmt.Errorf("confirmation_confidence must be within [0,1] (got %v)", i.ConfirmationConfidence)
	}
	if i.MaxCandidates <= 0 {
		return fmt.Errorf("max_candidates must be > 0 (got %d)", i.MaxCandidates)
	}

	i.RoomKeywords = ParseKeywords(i.RoomKeywordsRaw)
	if len(i.RoomKeywords) == 0 {
		return fmt.Errorf("conference_room_keywords must not be empty")
	}
	return nil
}

func (r *RelevanceConfig) validate() error {
	if r.Limit <= 0 {
		return fmt.Errorf("limit must be > 0 (got %d)", r.Limit)
	}
	if r.MinSimilarity < -1 || r.MinSimilarity > 1 {
		return fmt.Errorf("min_similarity must be within [-1,1] (got %v)", r.MinSimilarity)
	}
	if r.MaxTranscriptChars <= 0 {
		return fmt.Errorf("max_transcript_chars must be > 0 (got %d)", r.MaxTranscriptChars)
	}
	return nil
}

// ParseKeywords splits a comma-separated list into lowercase, trimmed,
// non-empty keywords. An empty string returns a nil slice.
func ParseKeywords(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

package gemini

import "google.golang.org/genai"

// generateContentRequest is the JSON body of a generateContent call.
type generateContentRequest struct {
	Contents         []*genai.Content  `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

// generationConfig requests deterministic, bounded output.
type generationConfig struct {
	Temperature     float32 `json:"temperature"`
	MaxOutputTokens int32   `json:"maxOutputTokens"`
}

// newGenerateContentRequest wraps prompt as a single user turn.
func newGenerateContentRequest(prompt string, maxOutputTokens int) generateContentRequest {
	return generateContentRequest{
		Contents: []*genai.Content{
			{
				Role:  "user",
				Parts: []*genai.Part{{Text: prompt}},
			},
		},
		GenerationConfig: &generationConfig{
			Temperature:     0,
			MaxOutputTokens: int32(maxOutputTokens),
		},
	}
}

// extractText concatenates, in order, the text parts of the first candidate
// and returns it with the candidate's finish reason.
func extractText(resp *genai.GenerateContentResponse) (string, genai.FinishReason) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return "", ""
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return "", candidate.FinishReason
	}

	var text string
	for _, part := range candidate.Content.Parts {
		if part != nil && part.Text != "" {
			text += part.Text
		}
	}
	return text, candidate.FinishReason
}

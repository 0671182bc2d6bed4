package phrasegen

// generateRequest is the body of POST {baseURL}.
type generateRequest struct {
	Prompt      string  `json:"prompt"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
	Task        string  `json:"task,omitempty"`
}

// generateResponse is the success body. Text is a pointer so a missing
// field can be told apart from an empty one in logs.
type generateResponse struct {
	Text *string `json:"text"`
}

// errorResponse is the optional body of a non-2xx response.
type errorResponse struct {
	Detail string `json:"detail"`
}

// phraseRecord is one element of the JSON array the model returns.
// All four fields are required; nil marks an absent or null key.
type phraseRecord struct {
	Text        *string
	Translation *string
	Category    *string
	Difficulty  *string
}

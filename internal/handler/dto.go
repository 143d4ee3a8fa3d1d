package handler

type SuggestTitlesRequest struct {
	Content        string `json:"content"`
	MaxSuggestions int    `json:"max_suggestions"`
}

type SuggestionResponse struct {
	Title      string  `json:"title"`
	Confidence float64 `json:"confidence"`
	Method     string  `json:"method"`
}

type SuggestTitlesResponse struct {
	Success        bool                 `json:"success"`
	Suggestions    []SuggestionResponse `json:"suggestions"`
	ProcessingTime float64              `json:"processing_time"`
}

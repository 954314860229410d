package recognizer

import "encoding/json"

// Response ответ сервиса распознавания
type Response struct {
	Query            string     `json:"query"`
	TopScoringIntent IntentInfo `json:"topScoringIntent"`
	Entities         []Entity   `json:"entities"`
}

// IntentInfo намерение с уверенностью
type IntentInfo struct {
	Intent string  `json:"intent"`
	Score  float64 `json:"score"`
}

// Entity сущность в ответе. Значения resolution бывают строками (списки) или объектами (даты).
type Entity struct {
	Entity     string      `json:"entity"`
	Type       string      `json:"type"`
	StartIndex int         `json:"startIndex"`
	EndIndex   int         `json:"endIndex"`
	Resolution *Resolution `json:"resolution,omitempty"`
}

// Resolution нормализованные значения сущности
type Resolution struct {
	Values []json.RawMessage `json:"values"`
}

// DateTimeValue значение сущности даты/времени
type DateTimeValue struct {
	Timex string `json:"timex"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

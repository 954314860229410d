package validation

import (
	"strconv"
	"strings"

	"github.com/m04kA/SMC-CarWashBot/internal/domain"
)

// SkipWord declines a recommendation
const SkipWord = "skip"

// Choice is a resolved answer to a choice prompt
type Choice struct {
	List    domain.ChoiceList `json:"list"`
	Index   int               `json:"index"`
	Skipped bool              `json:"skipped,omitempty"`
}

// ResolveChoice matches input against presented labels.
// Accepted forms: structured {"choice": n} (zero-based), the label itself (case-insensitive),
// its 1-based position, or a fragment contained in exactly one label.
func ResolveChoice(in domain.Input, labels []string) (int, bool) {
	if idx, ok := valueIndex(in.Value, "choice"); ok {
		return idx, idx >= 0 && idx < len(labels)
	}

	text := strings.TrimSpace(in.Text)
	if text == "" {
		return 0, false
	}

	for i, label := range labels {
		if strings.EqualFold(label, text) {
			return i, true
		}
	}

	if n, err := strconv.Atoi(text); err == nil {
		return n - 1, n >= 1 && n <= len(labels)
	}

	lower := strings.ToLower(text)
	found := -1
	for i, label := range labels {
		if strings.Contains(strings.ToLower(label), lower) {
			if found >= 0 {
				return 0, false
			}
			found = i
		}
	}
	return found, found >= 0
}

func valueIndex(value map[string]any, key string) (int, bool) {
	raw, ok := value[key]
	if !ok {
		return 0, false
	}
	switch v := raw.(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case string:
		n, err := strconv.Atoi(v)
		return n, err == nil
	}
	return 0, false
}

// RecommendedSlot accepts "skip" or one of the recommended slots
func RecommendedSlot(in domain.Input, draft *domain.ReservationDraft) (Choice, error) {
	if strings.EqualFold(strings.TrimSpace(in.Text), SkipWord) {
		return Choice{List: domain.ChoiceListRecommended, Skipped: true}, nil
	}

	idx, ok := ResolveChoice(in, draft.ChoiceLabels)
	if !ok {
		return Choice{}, reject(MsgChooseOptionOrSkip)
	}
	return Choice{List: domain.ChoiceListRecommended, Index: idx}, nil
}

// Slot accepts one of the open slots presented for the chosen day
func Slot(in domain.Input, draft *domain.ReservationDraft) (Choice, error) {
	idx, ok := ResolveChoice(in, draft.ChoiceLabels)
	if !ok {
		return Choice{}, reject(MsgChooseSlot)
	}
	return Choice{List: domain.ChoiceListSlots, Index: idx}, nil
}

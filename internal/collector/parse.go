package collector

import "trip-data-collector/internal/domain"

// parseElementTexts extracts the distance and duration text fields from
// rows[0].elements[0] of a Distance Matrix response.
//
// The fallback is atomic: any structural mismatch along the path (missing
// key, wrong type, empty array) yields BOTH fields absent, never a partial
// result. A response carrying distance but not duration still reports both
// absent.
func parseElementTexts(raw domain.RawResponse) (distance, duration domain.Text) {
	rows, ok := raw["rows"].([]any)
	if !ok || len(rows) == 0 {
		return domain.Text{}, domain.Text{}
	}

	row, ok := rows[0].(map[string]any)
	if !ok {
		return domain.Text{}, domain.Text{}
	}

	elements, ok := row["elements"].([]any)
	if !ok || len(elements) == 0 {
		return domain.Text{}, domain.Text{}
	}

	element, ok := elements[0].(map[string]any)
	if !ok {
		return domain.Text{}, domain.Text{}
	}

	distanceText, ok := textField(element, "distance")
	if !ok {
		return domain.Text{}, domain.Text{}
	}

	durationText, ok := textField(element, "duration")
	if !ok {
		return domain.Text{}, domain.Text{}
	}

	return domain.Text{Value: distanceText, OK: true},
		domain.Text{Value: durationText, OK: true}
}

func textField(element map[string]any, key string) (string, bool) {
	m, ok := element[key].(map[string]any)
	if !ok {
		return "", false
	}
	s, ok := m["text"].(string)
	return s, ok
}

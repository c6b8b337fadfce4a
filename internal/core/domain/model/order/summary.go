package order

import (
	"fmt"
	"strings"
	"unicode"
)

// GenerateStageSummary renders the form answers of stages 1..currentStage.
// Each stage contributes a header line followed by one "• Label: value" line
// per non-blank answer whose key carries the stage prefix, in formData order.
// A stage without answers renders as a bare header.
func GenerateStageSummary(formData FormData, currentStage Stage) string {
	var lines []string
	for stage := FirstStage; stage <= currentStage && stage <= FinalStage; stage++ {
		lines = append(lines, fmt.Sprintf("Stage %d - %s:", int(stage), stage.Name()))

		prefix := stage.FieldPrefix()
		for _, field := range formData {
			if !strings.HasPrefix(field.Key, prefix) {
				continue
			}
			value := strings.TrimSpace(field.Value)
			if value == "" {
				continue
			}
			lines = append(lines, fmt.Sprintf("• %s: %s", FormatFieldName(field.Key), value))
		}
	}
	return strings.Join(lines, "\n")
}

// FormatFieldName turns a form key into display text:
//
//	stage1_fabricType -> Fabric Type
//	delivery_address  -> Delivery Address
//	stage5_GSMValue   -> GSM Value
func FormatFieldName(key string) string {
	runes := []rune(trimStagePrefix(key))

	var words []string
	var current []rune
	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = nil
		}
	}

	for i, r := range runes {
		if r == '_' || r == '-' || unicode.IsSpace(r) {
			flush()
			continue
		}
		if unicode.IsUpper(r) && len(current) > 0 {
			prev := runes[i-1]
			nextIsLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextIsLower) {
				flush()
			}
		}
		current = append(current, r)
	}
	flush()

	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// trimStagePrefix drops a leading "stage<digits>_" if present.
func trimStagePrefix(key string) string {
	rest, ok := strings.CutPrefix(key, "stage")
	if !ok {
		return key
	}
	i := 0
	for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
		i++
	}
	if i == 0 || i+1 >= len(rest) || rest[i] != '_' {
		return key
	}
	return rest[i+1:]
}

package prompt

import (
	"bytes"
	"embed"
	"encoding/json"
	"log/slog"
	"strings"
	"text/template"

	"github.com/phrazzld/wordguess/internal/domain"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// wordData feeds word.tmpl and batch.tmpl.
type wordData struct {
	Mode            domain.Mode
	Category        string
	Difficulty      domain.Difficulty
	Count           int
	Random          bool
	Rules           []string
	AvoidCategories string
}

// validationData feeds validation.tmpl.
type validationData struct {
	Category string
	Items    string
	Count    int
}

// validationItem is a candidate as embedded in the validation prompt.
// Category is omitted.
type validationItem struct {
	RU string `json:"ru"`
	EN string `json:"en"`
}

// BuildWordPrompt renders the instruction for a single word pair.
func BuildWordPrompt(mode domain.Mode, category string, difficulty domain.Difficulty) string {
	difficulty = difficulty.OrDefault()
	return render("word.tmpl", wordData{
		Mode:       mode,
		Category:   strings.TrimSpace(category),
		Difficulty: difficulty,
		Rules:      rulesFor(difficulty),
	})
}

// BuildWordBatchPrompt renders the instruction for an array of count pairs.
func BuildWordBatchPrompt(mode domain.Mode, category string, count int, difficulty domain.Difficulty) string {
	difficulty = difficulty.OrDefault()
	return render("batch.tmpl", wordData{
		Mode:            mode,
		Category:        strings.TrimSpace(category),
		Difficulty:      difficulty,
		Count:           count,
		Random:          mode != domain.ModeCategory,
		Rules:           rulesFor(difficulty),
		AvoidCategories: strings.Join(commonCategories, ", "),
	})
}

// BuildCategoryValidationPrompt renders the instruction asking the model to
// re-check items against category. The answer is expected to be a boolean
// array aligned with items.
func BuildCategoryValidationPrompt(category string, items []domain.WordPair) string {
	list := make([]validationItem, 0, len(items))
	for _, item := range items {
		n := domain.NewWordPair(item.Category, item.RU, item.EN)
		list = append(list, validationItem{RU: n.RU, EN: n.EN})
	}

	// Marshalling plain string fields cannot fail.
	encoded, _ := json.Marshal(list)

	return render("validation.tmpl", validationData{
		Category: strings.TrimSpace(category),
		Items:    string(encoded),
		Count:    len(list),
	})
}

// render executes the named template and returns the trimmed text. An
// execution error is logged and returns whatever was written before it.
func render(name string, data any) string {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Default().Error("prompt template execution failed",
			slog.String("template", name),
			slog.String("error", err.Error()))
	}
	return strings.TrimSpace(buf.String())
}

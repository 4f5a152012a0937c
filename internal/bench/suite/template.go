package suite

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

type QuestionTemplate struct {
	ID       string `yaml:"id"`
	Question string `yaml:"question"`
}

type TemplateParams map[string]any

var placeholderRegex = regexp.MustCompile(`\{\{(\w+)\}\}`)

func (t *QuestionTemplate) Render(params TemplateParams) (string, error) {
	result := placeholderRegex.ReplaceAllStringFunc(t.Question, func(match string) string {
		key := match[2 : len(match)-2]
		if val, ok := params[key]; ok {
			return formatValue(val)
		}
		return match
	})

	missing := placeholderNames(result)
	if len(missing) > 0 {
		return "", fmt.Errorf("template %q missing params: %v", t.ID, missing)
	}

	return result, nil
}

func (t *QuestionTemplate) RequiredParams() []string {
	return placeholderNames(t.Question)
}

func (t *QuestionTemplate) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("template has no id")
	}
	if t.Question == "" {
		return fmt.Errorf("template %q has no question", t.ID)
	}
	return nil
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case []string:
		return strings.Join(val, ", ")
	case []any:
		strs := make([]string, len(val))
		for i, item := range val {
			strs[i] = formatValue(item)
		}
		return strings.Join(strs, ", ")
	default:
		return fmt.Sprintf("%v", v)
	}
}

func placeholderNames(s string) []string {
	matches := placeholderRegex.FindAllStringSubmatch(s, -1)
	names := lo.Map(matches, func(m []string, _ int) string { return m[1] })
	if len(names) == 0 {
		return nil
	}
	return lo.Uniq(names)
}

type TemplateRegistry struct {
	templates map[string]*QuestionTemplate
}

func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		templates: make(map[string]*QuestionTemplate),
	}
}

func (r *TemplateRegistry) Register(t *QuestionTemplate) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if _, exists := r.templates[t.ID]; exists {
		return fmt.Errorf("template %q already registered", t.ID)
	}
	r.templates[t.ID] = t
	return nil
}

func (r *TemplateRegistry) Get(id string) (*QuestionTemplate, bool) {
	t, ok := r.templates[id]
	return t, ok
}

func (r *TemplateRegistry) RenderQuestion(templateID string, params TemplateParams) (string, error) {
	t, ok := r.Get(templateID)
	if !ok {
		return "", fmt.Errorf("template %q not found", templateID)
	}
	return t.Render(params)
}

func (r *TemplateRegistry) List() []string {
	return lo.Keys(r.templates)
}

// Package core holds the template helpers shared by every page.
package core

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"strconv"
	"strings"
	"time"

	"github.com/dojoworks/dojo-admin/internal/domain/academy"
)

// Deps holds optional dependencies for constructing the core template func map.
type Deps struct {
	Template           **template.Template
	ContentTemplateFor func(string) string
}

// Funcs returns a template.FuncMap containing helpers that are broadly useful across templates.
func Funcs(deps Deps) template.FuncMap {
	funcs := template.FuncMap{
		"sectionTmpl":  deps.ContentTemplateFor,
		"dict":         Dict,
		"add":          func(a, b int) int { return a + b },
		"sub":          func(a, b int) int { return a - b },
		"contains":     strings.Contains,
		"formatNumber": formatNumberTemplate,
		"truncateText": TruncateText,
		"beltClass":    BeltClass,
		"statusClass":  StatusClass,
		"displayDate":  DisplayDate,
		"inputDate":    InputDate,
		"ageOn":        AgeToday,
		"percent":      Percent,
	}

	addRenderFuncs(funcs, deps)
	return funcs
}

func addRenderFuncs(funcs template.FuncMap, deps Deps) {
	funcs["renderSection"] = func(page string, data any) (template.HTML, error) {
		if deps.Template == nil || *deps.Template == nil {
			return "", errors.New("template not initialized")
		}
		if deps.ContentTemplateFor == nil {
			return "", errors.New("content template resolver not configured")
		}
		var buf bytes.Buffer
		if err := (*deps.Template).ExecuteTemplate(&buf, deps.ContentTemplateFor(page), data); err != nil {
			return "", err
		}
		// #nosec G203 - The HTML here is rendered by our own trusted templates (html/template),
		// and is embedded back into the same template set. User-provided values were already
		// auto-escaped during ExecuteTemplate above.
		return template.HTML(buf.String()), nil
	}

	funcs["toJSON"] = func(v any) (string, error) {
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

// Dict builds a map from alternating keys and values so partials can take several arguments.
func Dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, errors.New("dict: odd number of arguments")
	}
	out := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", pairs[i])
		}
		out[key] = pairs[i+1]
	}
	return out, nil
}

// BeltClass returns the badge class for a belt.
func BeltClass(b academy.Belt) string {
	if b.Rank() < 0 {
		return "belt belt-unknown"
	}
	return "belt belt-" + strings.ToLower(string(b))
}

// StatusClass maps any status value to a badge class.
func StatusClass(status any) string {
	switch strings.ToUpper(fmt.Sprint(status)) {
	case string(academy.StudentActive), string(academy.EnrollmentActive), "TRUE":
		return "badge-success"
	case string(academy.StudentInactive), string(academy.EnrollmentInactive), "FALSE":
		return "badge-secondary"
	case string(academy.ClassScheduled):
		return "badge-info"
	case string(academy.ClassInProgress):
		return "badge-warning"
	case string(academy.ClassFinished):
		return "badge-success"
	case string(academy.ClassCanceled):
		return "badge-danger"
	default:
		return "badge-light"
	}
}

// DisplayDate formats an API date (or a time) as dd/mm/yyyy.
func DisplayDate(v any) string {
	switch d := v.(type) {
	case academy.Date:
		return d.Display()
	case *academy.Date:
		if d != nil {
			return d.Display()
		}
	case time.Time:
		if !d.IsZero() {
			return d.Format(academy.DisplayDateLayout)
		}
	case string:
		if parsed, err := academy.ParseDate(d); err == nil {
			return parsed.Display()
		}
		return d
	}
	return ""
}

// InputDate formats a date for an <input type="date"> value.
func InputDate(d academy.Date) string {
	return d.String()
}

// AgeToday returns the age in full years of someone born on d.
func AgeToday(d academy.Date) int {
	return d.AgeOn(time.Now())
}

// Percent formats an integer percentage.
func Percent(n int) string {
	return strconv.Itoa(n) + "%"
}

// formatNumberTemplate formats any integer type with comma separators for thousands.
// Handles negative numbers and values of any size.
func formatNumberTemplate(v any) string {
	var s string
	var neg bool

	switch x := v.(type) {
	case int:
		s, neg = formatInt64(int64(x))
	case int64:
		s, neg = formatInt64(x)
	case int32:
		s, neg = formatInt64(int64(x))
	case uint:
		s = strconv.FormatUint(uint64(x), 10)
	case uint64:
		s = strconv.FormatUint(x, 10)
	default:
		return fmt.Sprint(v)
	}

	if len(s) <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}

	return formatWithCommas(s, neg)
}

// formatInt64 converts int64 to string and tracks sign.
func formatInt64(x int64) (string, bool) {
	if x < 0 {
		return strconv.FormatUint(uint64(-x), 10), true
	}
	return strconv.FormatUint(uint64(x), 10), false
}

// formatWithCommas formats a numeric string with comma separators.
func formatWithCommas(s string, neg bool) string {
	var b strings.Builder
	b.Grow(len(s) + (len(s)-1)/3)

	prefix := len(s) % 3
	if prefix == 0 {
		prefix = 3
	}

	b.WriteString(s[:prefix])
	for i := prefix; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// TruncateText truncates a string to a maximum number of runes (not bytes).
// Adds an ellipsis (…) when truncated.
func TruncateText(s string, maxLen any) string {
	n, ok := toIntSafe(maxLen)
	if !ok || n <= 0 {
		return s
	}

	runes := []rune(s)
	if len(runes) <= n {
		return s
	}

	if n > 1 {
		return string(runes[:n-1]) + "…"
	}

	return string(runes[:1])
}

func toIntSafe(v any) (int, bool) {
	switch val := v.(type) {
	case int:
		return val, true
	case int64:
		return int(val), true
	case float64:
		return int(val), true
	default:
		return 0, false
	}
}

package httpx

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// returnTo is the list URL (with page and filters) an action should reload.
// Only same-site paths under base are accepted.
func returnTo(raw, base string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return base
	}
	u, err := url.Parse(raw)
	if err != nil || u.IsAbs() || u.Host != "" || (u.Path != base && !strings.HasPrefix(u.Path, base+"/")) {
		return base
	}
	return u.RequestURI()
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func formValue(r *http.Request, name string) string {
	return strings.TrimSpace(r.PostFormValue(name))
}

// formBool reads a checkbox; a checkbox paired with a hidden "false" input
// submits both, so any truthy value wins.
func formBool(r *http.Request, name string) bool {
	if r.PostForm == nil {
		_ = r.ParseForm()
	}
	for _, v := range r.PostForm[name] {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "on", StrTrue, "1", "yes":
			return true
		}
	}
	return false
}

func emptyToNil(m map[string]string) map[string]string {
	if len(m) == 0 {
		return nil
	}
	return m
}
